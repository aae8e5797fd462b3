package machineid

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/magicaleks/machineid/internal/infra/system"
)

// RawIdentifierSize is the capacity offered to a RawIdentifierSource.
const RawIdentifierSize = 256

// RawIdentifierSource resolves the raw host identifier into buf and returns
// the number of bytes written. Any failure is reported as 0.
type RawIdentifierSource interface {
	ReadRaw(buf []byte) int
}

// Generator derives the host identifier. It holds no per-call state, so one
// Generator may serve concurrent callers that each own their output buffer.
type Generator struct {
	source  RawIdentifierSource
	entropy io.Reader
	digest  Digester
	appID   []byte
	logger  *slog.Logger
}

func New(opts ...Option) *Generator {
	g := &Generator{
		entropy: defaultEntropy(),
		digest:  DigestSHA256,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.source == nil {
		g.source = system.NewProbe(system.WithLogger(g.logger))
	}
	return g
}

// Generate writes the identifier into out. On success the code is CodeNone,
// or CodeFallback when no raw identifier resolved and the value is random for
// this call only. On failure out is left untouched and err is an *Error.
func (g *Generator) Generate(out []byte, flags Flags) (Code, error) {
	if out == nil {
		return CodeNullOutputBuffer, ErrNullOutputBuffer
	}
	if len(out) < RequiredSize(flags) {
		return CodeShortOutputBuffer, ErrShortOutputBuffer
	}

	var raw [RawIdentifierSize]byte
	n := g.source.ReadRaw(raw[:])
	if n < 0 || n > len(raw) {
		n = 0
	}
	input := raw[:n]
	code := CodeNone

	if len(input) == 0 {
		var fallback [FallbackSize]byte
		if err := drawFallback(g.entropy, &fallback); err != nil {
			g.logger.Error("fallback entropy unavailable", "err", err)
			return CodeRNG, &Error{Op: "fallback", Code: CodeRNG, Err: err}
		}
		g.logger.Debug("raw identifier unavailable, using fallback entropy")
		copy(raw[:], fallback[:])
		input = raw[:FallbackSize]
		code = CodeFallback
	} else {
		g.logger.Debug("raw identifier resolved", "bytes", len(input))
	}

	var digest [HashSize]byte
	var err error
	if len(g.appID) > 0 {
		err = g.digest.Sum(input, g.appID, &digest)
	} else {
		err = g.digest.Sum(nil, input, &digest)
	}
	clear(raw[:])
	if err != nil {
		g.logger.Error("digest failed", "err", err)
		return CodeHashFailure, &Error{Op: "digest", Code: CodeHashFailure, Err: err}
	}

	formatDigest(out, &digest, flags)
	return code, nil
}

// ID returns the identifier rendered as a UUID string.
func (g *Generator) ID() (string, Code, error) {
	var buf [UUIDSize]byte
	code, err := g.Generate(buf[:], FlagAsUUID)
	if err != nil {
		return "", code, err
	}
	return string(buf[:]), code, nil
}

// Hex returns the full digest as 64 upper-case hex characters.
func (g *Generator) Hex() (string, Code, error) {
	var buf [HashSize]byte
	code, err := g.Generate(buf[:], FlagDefault)
	if err != nil {
		return "", code, err
	}
	var sb strings.Builder
	sb.Grow(2 * HashSize)
	for _, b := range buf {
		sb.WriteByte(hexAlphabet[b>>4])
		sb.WriteByte(hexAlphabet[b&0x0f])
	}
	return sb.String(), code, nil
}

// UUID returns the UUID rendering as a uuid.UUID.
func (g *Generator) UUID() (uuid.UUID, Code, error) {
	id, code, err := g.ID()
	if err != nil {
		return uuid.Nil, code, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, CodeHashFailure, &Error{Op: "format", Code: CodeHashFailure, Err: err}
	}
	return parsed, code, nil
}
