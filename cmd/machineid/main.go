package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/magicaleks/machineid/internal/config"
	"github.com/magicaleks/machineid/internal/infra/logger"
	"github.com/magicaleks/machineid/internal/infra/paths"
	"github.com/magicaleks/machineid/pkg/machineid"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("machineid", flag.ContinueOnError)
	flags.SetOutput(stderr)
	format := flags.String("format", "", "output format: uuid, hex, raw (default: from config or uuid)")
	appID := flags.String("app-id", "", "derive an identifier scoped to this application")
	digest := flags.String("digest", "", "digest engine: sha256, blake2b (default: from config or sha256)")
	nullTerminate := flags.Bool("null-terminate", false, "append a NUL byte (raw format only)")
	quiet := flags.Bool("quiet", false, "print only the identifier")
	version := flags.Bool("version", false, "print version and exit")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *version {
		fmt.Fprintf(stdout, "machineid %s (built %s)\n", config.Version, config.BuildTime)
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "configuration error: %v\n", err)
		return 1
	}

	// Command-line flags override config values.
	if *format != "" {
		cfg.Format = *format
	}
	if *appID != "" {
		cfg.AppID = *appID
	}
	if *digest != "" {
		cfg.Digest = *digest
	}
	if *nullTerminate {
		cfg.NullTerminate = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "configuration error: %v\n", err)
		return 1
	}

	logFile, fellBack := "", false
	if cfg.Log.File != "" {
		logFile, fellBack = paths.Resolve(cfg.Log.File, "machineid.log")
	}
	log, closer, err := logger.NewWithFile(cfg.LogLevel(), cfg.Log.Format, stderr, logFile)
	if err != nil {
		fmt.Fprintf(stderr, "logger error: %v\n", err)
		return 1
	}
	defer closer.Close()
	if fellBack {
		log.Warn("log directory unavailable, using fallback", "preferred", cfg.Log.File, "path", logFile)
	}

	out, code, err := generate(cfg, log)
	if err != nil {
		log.Error("machine id generation failed", "code", code.String(), "err", err)
		return 1
	}
	if code == machineid.CodeFallback {
		log.Warn("no platform identifier found, value is random for this run", "code", code.String())
	}

	if cfg.Format == config.FormatRaw {
		_, _ = stdout.Write(out)
		return 0
	}
	if *quiet {
		fmt.Fprintln(stdout, string(out))
		return 0
	}
	fmt.Fprintf(stdout, "machine id: %s\n", out)
	return 0
}

func generate(cfg *config.Config, log *slog.Logger) ([]byte, machineid.Code, error) {
	digester, err := machineid.DigesterByName(cfg.Digest)
	if err != nil {
		return nil, machineid.CodeHashFailure, err
	}
	generator := machineid.New(
		machineid.WithDigest(digester),
		machineid.WithAppID(cfg.AppID),
		machineid.WithLogger(log),
	)

	if cfg.Format == config.FormatHex {
		id, code, err := generator.Hex()
		return []byte(id), code, err
	}

	var flags machineid.Flags
	if cfg.Format == config.FormatUUID {
		flags |= machineid.FlagAsUUID
	}
	// Text renderings are printed as strings; only raw output carries a terminator.
	if cfg.NullTerminate && cfg.Format == config.FormatRaw {
		flags |= machineid.FlagNullTerminate
	}

	buf := make([]byte, machineid.RequiredSize(flags))
	code, err := generator.Generate(buf, flags)
	if err != nil {
		return nil, code, err
	}
	return buf, code, nil
}
