package otp

import (
	"sync"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

var (
	cfg     Config
	cfgOnce sync.Once
)

// Config carries environment-supplied request defaults, used by the bundled
// CLI and convenient for services that configure one shared secret per
// deployment. The library itself never reads it implicitly.
type Config struct {
	Secret    string `env:"OTP_SECRET"`                      // Shared secret, interpreted per Encoding
	Encoding  string `env:"OTP_ENCODING" envDefault:"ascii"` // ascii, hex, base32 or base64
	Algorithm string `env:"OTP_ALGORITHM" envDefault:"sha1"` // HMAC hash algorithm name
	Digits    int    `env:"OTP_DIGITS" envDefault:"6"`       // Code length
	Step      int    `env:"OTP_STEP" envDefault:"30"`        // TOTP step in seconds
}

// LoadConfig parses the OTP_* environment variables once per process and
// returns the cached result on subsequent calls.
func LoadConfig() (Config, error) {
	var err error
	cfgOnce.Do(func() {
		err = env.Parse(&cfg)
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Request converts the environment defaults into a Request skeleton the
// caller completes with a counter or time.
func (c Config) Request() Request {
	return Request{
		Secret:    c.Secret,
		Encoding:  Encoding(c.Encoding),
		Algorithm: c.Algorithm,
		Digits:    c.Digits,
		Step:      c.Step,
	}
}
