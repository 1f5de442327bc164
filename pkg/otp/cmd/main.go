// Command-line code generator for quick verification against authenticator
// apps. Defaults come from the OTP_* environment variables (see
// otp.LoadConfig); flags override them.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/samber/lo"

	"github.com/dmitrymomot/otpkit/pkg/otp"
)

func main() {
	cfg, err := otp.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load environment config: %v", err)
	}

	var (
		mode      = flag.String("mode", "totp", "Code type: totp or hotp")
		secret    = flag.String("secret", cfg.Secret, "Shared secret")
		encoding  = flag.String("encoding", cfg.Encoding, "Secret encoding: ascii, hex, base32, base64")
		algorithm = flag.String("algorithm", cfg.Algorithm, "HMAC hash algorithm")
		digits    = flag.Int("digits", cfg.Digits, "Code length")
		step      = flag.Int("step", cfg.Step, "TOTP step in seconds")
		epoch     = flag.Int64("epoch", 0, "TOTP epoch offset in unix seconds")
		at        = flag.Int64("time", 0, "TOTP time in unix seconds (default: now)")
		counter   = flag.Uint64("counter", 0, "HOTP counter")
	)
	flag.Parse()

	req := otp.Request{
		Secret:    *secret,
		Encoding:  otp.Encoding(*encoding),
		Algorithm: *algorithm,
		Digits:    *digits,
		Step:      *step,
		Epoch:     *epoch,
	}

	var code string
	switch *mode {
	case "hotp":
		req.Counter = lo.ToPtr(*counter)
		code, err = otp.HOTP(req)
	case "totp":
		if *at != 0 {
			req.Time = time.Unix(*at, 0)
		}
		code, err = otp.TOTP(req)
	default:
		log.Fatalf("Unknown mode %q: must be totp or hotp", *mode)
	}
	if err != nil {
		log.Fatalf("Failed to generate %s code: %v", *mode, err)
	}

	fmt.Println(code)
}
