package otp

import (
	"log/slog"
	"strings"
	"time"
)

const (
	DefaultDigits    = 6      // Standard 6-digit codes
	DefaultStep      = 30     // 30-second time step (RFC 6238 standard)
	DefaultAlgorithm = "sha1" // HMAC-SHA1 (RFC 4226/6238 standard)
)

// Encoding identifies the text encoding of a Request secret.
type Encoding string

const (
	EncodingASCII  Encoding = "ascii"  // Secret text used as raw bytes
	EncodingHex    Encoding = "hex"    // Hexadecimal
	EncodingBase32 Encoding = "base32" // RFC 4648 base32, the authenticator-app convention
	EncodingBase64 Encoding = "base64" // Standard base64
)

// Request carries the inputs for a single code computation. The zero value
// of every optional field means "use the documented default"; only Secret
// (or SecretBytes) and, for HOTP, Counter are required.
type Request struct {
	// Secret is the shared secret as text, interpreted per Encoding.
	Secret string
	// SecretBytes is the shared secret as raw bytes. When set it takes
	// precedence over Secret and Encoding is ignored for decoding.
	SecretBytes []byte
	// Encoding declares how Secret is encoded. Default: EncodingASCII.
	Encoding Encoding
	// Algorithm names the HMAC hash function, case-insensitive.
	// Default: sha1. Names outside sha1/sha256/sha512 are passed through
	// to the hash provider unmodified.
	Algorithm string
	// Counter is the HOTP moving factor. A pointer so that counter 0
	// (the first RFC 4226 test vector) is distinguishable from unset.
	// Required for HOTP; derived from Time/Step/Epoch for TOTP when nil.
	Counter *uint64
	// Digest, when non-nil, is used instead of computing the HMAC.
	Digest []byte
	// Digits is the length of the generated code. Default: 6.
	Digits int
	// Step is the TOTP time-step duration in seconds. Default: 30.
	Step int
	// Epoch is the TOTP reference offset in unix seconds. Default: 0.
	Epoch int64
	// Time is the moment a TOTP code is computed for. The zero value
	// means current wall-clock time.
	Time time.Time

	// Key is the shared secret as text.
	//
	// Deprecated: use Secret.
	Key string
	// Length is the length of the generated code.
	//
	// Deprecated: use Digits.
	Length int
	// InitialTime is the TOTP reference offset in unix seconds.
	//
	// Deprecated: use Epoch.
	InitialTime int64
}

// canonical resolves deprecated aliases (canonical fields win) and applies
// defaults, returning a copy ready for the engine. Alias use is reported on
// the diagnostic logger so callers can migrate.
func (r Request) canonical(log *slog.Logger) Request {
	if r.Secret == "" && r.Key != "" {
		log.Warn("otp: field key is deprecated, use secret")
		r.Secret = r.Key
	}
	if r.Digits == 0 && r.Length != 0 {
		log.Warn("otp: field length is deprecated, use digits")
		r.Digits = r.Length
	}
	if r.Epoch == 0 && r.InitialTime != 0 {
		log.Warn("otp: field initial_time is deprecated, use epoch")
		r.Epoch = r.InitialTime
	}

	if r.Encoding == "" {
		r.Encoding = EncodingASCII
	}
	if r.Algorithm == "" {
		r.Algorithm = DefaultAlgorithm
	}
	r.Algorithm = strings.ToLower(r.Algorithm)
	if r.Digits == 0 {
		r.Digits = DefaultDigits
	}
	if r.Step == 0 {
		r.Step = DefaultStep
	}
	return r
}

// validate checks the canonicalized request for caller errors that defaults
// cannot repair.
func (r Request) validate() error {
	if r.Digits < 0 {
		return ErrInvalidDigits
	}
	if r.Step < 0 {
		return ErrInvalidStep
	}
	switch r.Encoding {
	case EncodingASCII, EncodingHex, EncodingBase32, EncodingBase64:
	default:
		return ErrUnknownEncoding
	}
	return nil
}

// hasSecret reports whether any form of the shared secret was supplied.
// Alias resolution happens in canonical, so only canonical fields matter here.
func (r Request) hasSecret() bool {
	return len(r.SecretBytes) > 0 || r.Secret != ""
}
