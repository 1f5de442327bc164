package otp

import "time"

// encodeCounter converts the moving factor to the 8-byte big-endian message
// HMAC'd by RFC 4226, most significant byte first.
func encodeCounter(counter uint64) []byte {
	buf := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		buf[i] = byte(counter & 0xff)
		counter >>= 8
	}
	return buf
}

// deriveCounter computes the number of whole time steps elapsed between the
// epoch offset and t. The arithmetic is done in milliseconds to match the
// convention shared by compatible authenticator implementations.
func deriveCounter(t time.Time, step int, epoch int64) uint64 {
	stepMS := int64(step) * 1000
	elapsedMS := t.UnixMilli() - epoch*1000
	return uint64(elapsedMS / stepMS)
}
