package machineid

import (
	"io"
	"log/slog"
)

// Option configures a Generator.
type Option func(g *Generator)

// WithSource replaces the platform resolver, e.g. with a fake in tests.
func WithSource(source RawIdentifierSource) Option {
	return func(g *Generator) {
		if source != nil {
			g.source = source
		}
	}
}

// WithEntropy sets the reader fallback bytes are drawn from.
func WithEntropy(r io.Reader) Option {
	return func(g *Generator) {
		if r != nil {
			g.entropy = r
		}
	}
}

// WithDigest sets the digest engine. DigestSHA256 is the default.
func WithDigest(d Digester) Option {
	return func(g *Generator) {
		if d != nil {
			g.digest = d
		}
	}
}

// WithAppID derives an application-scoped identifier: the digest is keyed
// by the resolved identifier and computed over appID, so two applications
// on one host get unrelated values.
func WithAppID(appID string) Option {
	return func(g *Generator) {
		g.appID = []byte(appID)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}
