package otp

import "errors"

var (
	ErrMissingSecret        = errors.New("missing secret")
	ErrMissingCounter       = errors.New("missing counter")
	ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")
	ErrUnknownEncoding      = errors.New("unknown secret encoding")
	ErrDecodeSecret         = errors.New("failed to decode secret")
	ErrDigestTooShort       = errors.New("digest too short for dynamic truncation")
	ErrInvalidDigits        = errors.New("invalid digit count, must be greater than 0")
	ErrInvalidStep          = errors.New("invalid time step, must be greater than 0")
)
