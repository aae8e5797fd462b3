// Package system resolves the raw host identifier from the operating system.
package system

import (
	"context"
	"log/slog"

	"github.com/viant/afs"

	"github.com/magicaleks/machineid/internal/infra/fsread"
)

// Probe reads the platform's raw machine identifier without modifying any
// system state. Every failure, whatever the cause, is reported as zero bytes.
type Probe struct {
	files  *fsread.Reader
	paths  []string
	logger *slog.Logger
}

type Option func(p *Probe)

// WithFS routes identifier file reads through fs.
func WithFS(fs afs.Service) Option {
	return func(p *Probe) {
		p.files = fsread.New(fs)
	}
}

// WithPaths replaces the platform's identifier file list, in priority order.
func WithPaths(paths ...string) Option {
	return func(p *Probe) {
		p.paths = paths
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Probe) {
		if logger != nil {
			p.logger = logger
		}
	}
}

func NewProbe(opts ...Option) *Probe {
	p := &Probe{
		paths:  defaultPaths,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.files == nil {
		p.files = fsread.New(nil)
	}
	return p
}

// ReadRaw fills buf with the raw identifier and returns the number of bytes
// written, or 0 when nothing could be resolved.
func (p *Probe) ReadRaw(buf []byte) int {
	if len(buf) == 0 {
		return 0
	}
	return p.readRaw(buf)
}

// readFiles returns the first identifier file that yields content.
func (p *Probe) readFiles(buf []byte) int {
	ctx := context.Background()
	for _, path := range p.paths {
		n, err := p.files.Into(ctx, path, buf)
		if err != nil {
			p.logger.Debug("identifier file unreadable", "path", path, "err", err)
			continue
		}
		if n > 0 {
			p.logger.Debug("identifier file resolved", "path", path, "bytes", n)
			return n
		}
		p.logger.Debug("identifier file empty", "path", path)
	}
	return 0
}

// copyIfFits copies value into buf only when it fits entirely.
func copyIfFits(buf []byte, value string) int {
	if value == "" || len(value) > len(buf) {
		return 0
	}
	return copy(buf, value)
}
