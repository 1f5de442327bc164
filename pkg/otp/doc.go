// Package otp computes one-time passcodes compliant with RFC 4226 (HOTP)
// and RFC 6238 (TOTP), compatible with Google Authenticator, 1Password and
// other standard authenticator applications.
//
// The package is the complete algorithmic pipeline: secret decoding and
// length normalization, big-endian counter encoding, HMAC digest
// computation over a pluggable hash provider, RFC 4226 dynamic truncation,
// and time-step counter derivation for TOTP. It deliberately stops there —
// secret provisioning, otpauth:// URI generation, used-counter persistence
// and replay-window verification belong to the hosting application.
//
// # Architecture
//
// Internally the package is divided into small cohesive units.
//
//   • secret   – secret.go decodes ascii/hex/base32/base64 secrets and
//     normalizes their length to the hash algorithm's canonical key size
//     by cyclic repetition, so short secrets stay compatible across
//     algorithms and implementations.
//
//   • digest   – counter.go and hash.go encode the moving factor as the
//     8-byte big-endian message of RFC 4226 and resolve algorithm names
//     (sha1, sha256, sha512, plus the SHA-3 family) to hash constructors
//     through an extensible, concurrency-safe registry.
//
//   • code     – truncate.go extracts the 31-bit dynamic-truncation value
//     and formats it as a zero-padded decimal string.
//
//   • facade   – otp.go exposes Digest, HOTP and TOTP on a Generator and
//     as package-level functions over a shared default generator.
//
// # Usage
//
// Generating and checking a time-based code:
//
//	package main
//
//	import (
//	    "fmt"
//	    "github.com/dmitrymomot/otpkit/pkg/otp"
//	)
//
//	func main() {
//	    code, err := otp.TOTP(otp.Request{
//	        Secret:   "JBSWY3DPEHPK3PXP",
//	        Encoding: otp.EncodingBase32,
//	    })
//	    if err != nil {
//	        panic(err)
//	    }
//	    fmt.Println(code) // e.g. 492039
//	}
//
// Counter-based codes need an explicit moving factor; a pointer keeps the
// legitimate counter value 0 distinguishable from an omitted one:
//
//	counter := uint64(0)
//	code, err := otp.HOTP(otp.Request{
//	    Secret:  "12345678901234567890",
//	    Counter: &counter,
//	})
//
// All operations are pure and deterministic given explicit inputs; the only
// wall-clock dependency is TOTP's default when Request.Time is left zero.
// Generators are safe for concurrent use from multiple goroutines.
//
// # Diagnostics
//
// The engine never writes to the console. Deprecated-field notices and
// unknown-algorithm warnings go to an injectable *slog.Logger
// (WithLogger), which defaults to slog.DiscardHandler.
//
// # Error Handling
//
// Every exported operation returns a descriptive error that may be wrapped
// using errors.Join. Inspect errors with errors.Is against package level
// sentinels such as ErrMissingSecret, ErrMissingCounter,
// ErrUnsupportedAlgorithm and ErrDecodeSecret.
//
// # See Also
//
//   • RFC 4226 – HMAC-Based One-Time Password (HOTP) Algorithm
//   • RFC 6238 – Time-Based One-Time Password (TOTP) Algorithm
package otp
