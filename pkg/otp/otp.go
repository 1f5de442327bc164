package otp

import (
	"crypto/hmac"
	"hash"
	"log/slog"
	"time"
)

// Generator computes one-time passcodes. It holds no per-call state and is
// safe for concurrent use; the zero configuration (see New) discards
// diagnostics and resolves hashes from the default registry.
type Generator struct {
	hashes HashProvider
	log    *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithHashProvider replaces the hash registry the generator resolves
// algorithm names against.
func WithHashProvider(p HashProvider) Option {
	return func(g *Generator) {
		if p != nil {
			g.hashes = p
		}
	}
}

// WithLogger sets the destination for diagnostic records such as
// deprecated-field and unknown-algorithm notices. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// New creates a Generator. Without options it resolves algorithms from the
// package's default registry and drops diagnostics.
func New(opts ...Option) *Generator {
	g := &Generator{
		hashes: defaultRegistry,
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var (
	defaultRegistry  = NewRegistry()
	defaultGenerator = New()
)

// Digest computes the raw HMAC digest over the request's encoded counter
// using the decoded, length-normalized secret as key.
func (g *Generator) Digest(req Request) ([]byte, error) {
	r := req.canonical(g.log)
	if err := r.validate(); err != nil {
		return nil, err
	}
	return g.digest(r)
}

// digest runs the pipeline on an already canonicalized request.
func (g *Generator) digest(r Request) ([]byte, error) {
	if !r.hasSecret() {
		return nil, ErrMissingSecret
	}
	if r.Counter == nil {
		return nil, ErrMissingCounter
	}

	secret, err := decodeSecret(r)
	if err != nil {
		return nil, err
	}
	key := normalizeSecret(secret, r.Algorithm, g.log)

	newHash, err := g.hashes.Resolve(r.Algorithm)
	if err != nil {
		return nil, err
	}

	mac := hmac.New(newHash, key)
	mac.Write(encodeCounter(*r.Counter))
	return mac.Sum(nil), nil
}

// HOTP generates an RFC 4226 counter-based code. Secret and counter are
// required even when a precomputed digest is supplied; the digest merely
// short-circuits the HMAC step.
func (g *Generator) HOTP(req Request) (string, error) {
	r := req.canonical(g.log)
	if err := r.validate(); err != nil {
		return "", err
	}
	return g.hotp(r)
}

func (g *Generator) hotp(r Request) (string, error) {
	if !r.hasSecret() {
		return "", ErrMissingSecret
	}
	if r.Counter == nil {
		return "", ErrMissingCounter
	}

	digest := r.Digest
	if digest == nil {
		var err error
		if digest, err = g.digest(r); err != nil {
			return "", err
		}
	}
	return truncate(digest, r.Digits)
}

// TOTP generates an RFC 6238 time-based code. When the request carries no
// counter it is derived from Time (wall clock if zero), Step and Epoch,
// then the computation proceeds exactly as HOTP.
func (g *Generator) TOTP(req Request) (string, error) {
	r := req.canonical(g.log)
	if err := r.validate(); err != nil {
		return "", err
	}
	if !r.hasSecret() {
		return "", ErrMissingSecret
	}

	if r.Counter == nil {
		t := r.Time
		if t.IsZero() {
			t = time.Now()
		}
		counter := deriveCounter(t, r.Step, r.Epoch)
		r.Counter = &counter
	}
	return g.hotp(r)
}

// Digest computes the raw keyed digest using the default generator.
func Digest(req Request) ([]byte, error) { return defaultGenerator.Digest(req) }

// HOTP generates a counter-based code using the default generator.
func HOTP(req Request) (string, error) { return defaultGenerator.HOTP(req) }

// TOTP generates a time-based code using the default generator.
func TOTP(req Request) (string, error) { return defaultGenerator.TOTP(req) }

// Register adds a hash constructor to the default registry, making the
// algorithm name available to every generator that has not overridden the
// provider.
func Register(name string, fn func() hash.Hash) { defaultRegistry.Register(name, fn) }
