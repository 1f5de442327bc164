package otp

import (
	"strconv"
	"strings"
)

// truncate applies RFC 4226 §5.3 dynamic truncation: the digest's last
// nibble selects a 4-byte window, whose top bit is masked off to yield a
// 31-bit integer, formatted as a zero-padded decimal string of exactly
// digits characters. Taking the last digits characters of the padded string
// is the source convention equivalent to p mod 10^digits; digit counts
// beyond the 10 decimal digits a 31-bit value can fill simply gain leading
// zeros.
func truncate(digest []byte, digits int) (string, error) {
	if len(digest) == 0 {
		return "", ErrDigestTooShort
	}
	offset := int(digest[len(digest)-1] & 0x0f)
	if offset+4 > len(digest) {
		return "", ErrDigestTooShort
	}

	p := uint32(digest[offset]&0x7f)<<24 |
		uint32(digest[offset+1])<<16 |
		uint32(digest[offset+2])<<8 |
		uint32(digest[offset+3])

	s := strconv.FormatUint(uint64(p), 10)
	if len(s) < digits {
		s = strings.Repeat("0", digits-len(s)) + s
	}
	return s[len(s)-digits:], nil
}
