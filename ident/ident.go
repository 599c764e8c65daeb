package ident

import (
	"math/rand"

	"github.com/google/uuid"
)

// SourceFunc fills p with random bytes, returning an error when the source
// is unavailable. It mirrors the encoder's delegate shape: inject one for
// testing, omit it for the crypto-backed default.
type SourceFunc func(p []byte) error

// Generator produces RFC 4122 version 4 UUIDs. The zero value delegates to
// the crypto-rand backed github.com/google/uuid source; when that source
// fails, generation falls back to a pseudo-random fill rather than
// reporting an error. Identifier generation, like encoding, is total.
type Generator struct {
	source SourceFunc
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource injects a random source, replacing the crypto default.
func WithSource(fn SourceFunc) Option {
	return func(g *Generator) { g.source = fn }
}

// NewGenerator returns a Generator configured by opts.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// UUID returns a lowercase hyphenated v4 UUID.
func (g *Generator) UUID() string {
	if g.source == nil {
		if id, err := uuid.NewRandom(); err == nil {
			return id.String()
		}
		return g.fallback()
	}

	var b [16]byte
	if err := g.source(b[:]); err != nil {
		return g.fallback()
	}
	return format(b)
}

// fallback fills the identifier from math/rand. Not cryptographically
// strong, but collision-resistant enough for telemetry correlation ids
// when the crypto source is unavailable.
func (g *Generator) fallback() string {
	var b [16]byte
	for i := 0; i < len(b); i += 8 {
		v := rand.Uint64()
		for j := 0; j < 8; j++ {
			b[i+j] = byte(v >> (8 * j))
		}
	}
	return format(b)
}

// format forces the version and variant bits and renders the canonical
// 8-4-4-4-12 form.
func format(b [16]byte) string {
	b[6] = b[6]&0x0F | 0x40 // version 4
	b[8] = b[8]&0x3F | 0x80 // RFC 4122 variant
	return uuid.UUID(b).String()
}

var defaultGenerator = NewGenerator()

// UUID returns a v4 UUID from the package default Generator.
func UUID() string {
	return defaultGenerator.UUID()
}
