package otp

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"strings"
	"sync"

	"golang.org/x/crypto/sha3"
)

// HashProvider resolves an algorithm name to a hash constructor suitable
// for crypto/hmac. It is the engine's only external collaborator; swapping
// it lets tests feed the truncation path deterministic fake digests.
type HashProvider interface {
	Resolve(algorithm string) (func() hash.Hash, error)
}

// Registry is a concurrency-safe, case-insensitive HashProvider backed by a
// name-to-constructor map.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]func() hash.Hash
}

// NewRegistry returns a Registry seeded with the RFC 4226/6238 algorithms
// (sha1, sha256, sha512) plus the SHA-3 family for callers that want a
// non-standard hash without writing a provider of their own.
func NewRegistry() *Registry {
	return &Registry{
		funcs: map[string]func() hash.Hash{
			"sha1":     sha1.New,
			"sha256":   sha256.New,
			"sha512":   sha512.New,
			"sha3-256": sha3.New256,
			"sha3-384": sha3.New384,
			"sha3-512": sha3.New512,
		},
	}
}

// Register adds or replaces a hash constructor under the given name.
func (r *Registry) Register(name string, fn func() hash.Hash) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[strings.ToLower(name)] = fn
}

// Resolve implements HashProvider.
func (r *Registry) Resolve(algorithm string) (func() hash.Hash, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[strings.ToLower(algorithm)]
	if !ok {
		return nil, errors.Join(ErrUnsupportedAlgorithm, fmt.Errorf("no hash registered for %q", algorithm))
	}
	return fn, nil
}
