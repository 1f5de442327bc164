package otp

import (
	"bytes"
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"log/slog"
	"strings"
)

// hmacKeySizes maps the well-known algorithms to the key size expected by
// the authenticator ecosystem: the hash output size. Algorithms absent from
// this table get their secret passed through without length normalization.
var hmacKeySizes = map[string]int{
	"sha1":   20,
	"sha256": 32,
	"sha512": 64,
}

// decodeSecret turns the request's secret into raw bytes according to the
// declared encoding. Raw SecretBytes bypass decoding entirely.
func decodeSecret(r Request) ([]byte, error) {
	if len(r.SecretBytes) > 0 {
		return r.SecretBytes, nil
	}

	switch r.Encoding {
	case EncodingASCII:
		return []byte(r.Secret), nil
	case EncodingHex:
		raw, err := hex.DecodeString(r.Secret)
		if err != nil {
			return nil, errors.Join(ErrDecodeSecret, err)
		}
		return raw, nil
	case EncodingBase32:
		raw, err := decodeBase32(r.Secret)
		if err != nil {
			return nil, errors.Join(ErrDecodeSecret, err)
		}
		return raw, nil
	case EncodingBase64:
		raw, err := base64.StdEncoding.DecodeString(r.Secret)
		if err != nil {
			return nil, errors.Join(ErrDecodeSecret, err)
		}
		return raw, nil
	default:
		return nil, ErrUnknownEncoding
	}
}

// decodeBase32 decodes RFC 4648 base32 the way authenticator tooling emits
// it: case-insensitive, whitespace ignored, padding optional.
func decodeBase32(s string) ([]byte, error) {
	clean := strings.ToUpper(strings.Join(strings.Fields(s), ""))
	clean = strings.TrimRight(clean, "=")
	if n := len(clean) % 8; n != 0 {
		clean += strings.Repeat("=", 8-n)
	}
	return base32.StdEncoding.DecodeString(clean)
}

// normalizeSecret resizes the raw secret to the algorithm's canonical key
// size by cyclic repetition: short secrets are repeated until the target
// length is reached, longer ones are cut at the target. This keeps a short
// secret producing the same codes other authenticator implementations
// produce for it regardless of the hash chosen. Algorithms without a known
// key size skip normalization with a diagnostic.
func normalizeSecret(secret []byte, algorithm string, log *slog.Logger) []byte {
	target, ok := hmacKeySizes[algorithm]
	if !ok {
		log.Warn("otp: no canonical key size for algorithm, secret used as-is",
			slog.String("algorithm", algorithm))
		return secret
	}
	if len(secret) == target || len(secret) == 0 {
		return secret
	}
	if len(secret) > target {
		return secret[:target]
	}
	repeated := bytes.Repeat(secret, target/len(secret)+1)
	return repeated[:target]
}
