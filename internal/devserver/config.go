package devserver

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/profiledash/internal/flagx"
)

// Config holds the dev server settings.
type Config struct {
	Address   string
	SecretKey string
	TokenTTL  time.Duration
	LogLevel  string
}

// LoadDefaults sets values suitable for local use only.
func (c *Config) LoadDefaults() {
	c.Address = "127.0.0.1:8085"
	c.SecretKey = "dev-secret"
	c.TokenTTL = DefaultTokenTTL
	c.LogLevel = "info"
}

// LoadConfig applies defaults and then the flags found in args.
//
//	-a string  listen address
//	-s string  HMAC secret for issued tokens
//	-t int     token validity, minutes
//	-l string  log level
//
// A malformed value panics.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()

	fs := flag.NewFlagSet("devserver", flag.ContinueOnError)
	fs.StringVar(&cfg.Address, "a", cfg.Address, "address and port to listen on")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "token secret key")
	ttl := fs.Int("t", int(cfg.TokenTTL.Minutes()), "token validity (in minutes)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-a", "-s", "-t", "-l"})); err != nil {
		panic(err)
	}

	cfg.TokenTTL = time.Duration(*ttl) * time.Minute
	return cfg
}
