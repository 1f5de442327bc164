package otp

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCounter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		counter uint64
		want    []byte
	}{
		{0, []byte{0, 0, 0, 0, 0, 0, 0, 0}},
		{1, []byte{0, 0, 0, 0, 0, 0, 0, 1}},
		{0x0123456789abcdef, []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}},
		{^uint64(0), []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, encodeCounter(tt.counter))
	}
}

func TestDeriveCounter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		time  int64
		step  int
		epoch int64
		want  uint64
	}{
		{name: "first window", time: 0, step: 30, want: 0},
		{name: "last second of first window", time: 29, step: 30, want: 0},
		{name: "second window", time: 30, step: 30, want: 1},
		{name: "rfc vector time", time: 1111111109, step: 30, want: 37037036},
		{name: "epoch offset", time: 1059, step: 30, epoch: 1000, want: 1},
		{name: "wide step", time: 3599, step: 3600, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, deriveCounter(time.Unix(tt.time, 0), tt.step, tt.epoch))
		})
	}
}

func TestTruncateMaxOffset(t *testing.T) {
	t.Parallel()

	// Last nibble 0x0f selects the maximum offset; bytes 15..18 must still
	// sit inside a 20-byte SHA-1 digest.
	digest := make([]byte, 20)
	digest[15] = 0x7f
	digest[16] = 0xff
	digest[17] = 0xff
	digest[18] = 0xff
	digest[19] = 0x0f

	code, err := truncate(digest, 10)
	require.NoError(t, err)
	assert.Equal(t, "2147483647", code, "masked 31-bit maximum")
}

func TestTruncateMasksSignBit(t *testing.T) {
	t.Parallel()

	digest := make([]byte, 20)
	digest[0] = 0xff // top bit must be discarded
	digest[19] = 0x00

	code, err := truncate(digest, 10)
	require.NoError(t, err)
	assert.Equal(t, "2130706432", code) // 0x7f000000
}

func TestTruncateShortDigest(t *testing.T) {
	t.Parallel()

	_, err := truncate(nil, 6)
	assert.ErrorIs(t, err, ErrDigestTooShort)

	// Offset 1 needs bytes 1..4, one past the end of a 4-byte digest.
	_, err = truncate([]byte{0x00, 0x00, 0x00, 0x01}, 6)
	assert.ErrorIs(t, err, ErrDigestTooShort)
}

func TestNormalizeSecretBytes(t *testing.T) {
	t.Parallel()

	discard := slog.New(slog.DiscardHandler)

	short := []byte("1234567890")
	got := normalizeSecret(short, "sha1", discard)
	assert.Len(t, got, 20)
	assert.Equal(t, append(append([]byte{}, short...), short...), got)

	got = normalizeSecret(short, "sha256", discard)
	assert.Len(t, got, 32)
	assert.Equal(t, []byte("12345678901234567890123456789012"), got)

	got = normalizeSecret(short, "sha512", discard)
	assert.Len(t, got, 64)
	assert.True(t, bytes.HasPrefix(got, short))

	long := []byte("123456789012345678901234567890")
	assert.Equal(t, long[:20], normalizeSecret(long, "sha1", discard))

	// Unknown algorithms pass the secret through untouched.
	assert.Equal(t, short, normalizeSecret(short, "whirlpool", discard))
}
