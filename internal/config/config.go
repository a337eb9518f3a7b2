// internal/config/config.go
//
// Server configuration, read from the environment (and a .env file in
// development, loaded by main before Load is called).
//
// Environment variables:
//   PORT                   listen port (default 5175)
//   LOG_LEVEL              zerolog level name (default info)
//   WORD_SOURCE            "remote", "list" or "daily" (default remote)
//   WORD_URL               remote random-word endpoint
//   WORD_TIMEOUT           HTTP client timeout for the remote source (default 5s)
//   WORDS_FILE             word list for "list"/"daily" (default: embedded)
//   DAILY_SALT             HMAC key choosing the daily word
//   STORE_DSN              SQLite file for live rounds (default: in memory)
//   JWT_SECRET             HMAC key for session cookies
//   SESSION_EXPIRES_DAYS   session cookie lifetime (default 14)
//   COOKIE_NAME            session cookie name (default hangman_session)
//   SECURE_COOKIES         mark cookies Secure/SameSite=None (default false)
//   CLIENT_ORIGIN          single CORS origin (default http://localhost:5173)

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	SourceRemote = "remote"
	SourceList   = "list"
	SourceDaily  = "daily"
)

// Config is the full server configuration.
type Config struct {
	Port     string `env:"PORT" envDefault:"5175"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	WordSource  string        `env:"WORD_SOURCE" envDefault:"remote"`
	WordURL     string        `env:"WORD_URL" envDefault:"https://random-word-api.herokuapp.com/word?lang=es"`
	WordTimeout time.Duration `env:"WORD_TIMEOUT" envDefault:"5s"`
	WordsFile   string        `env:"WORDS_FILE"`
	DailySalt   string        `env:"DAILY_SALT" envDefault:"local_dev_salt"`

	StoreDSN string `env:"STORE_DSN"`

	JWTSecret     string `env:"JWT_SECRET" envDefault:"dev_secret_change_me"`
	SessionDays   int    `env:"SESSION_EXPIRES_DAYS" envDefault:"14"`
	CookieName    string `env:"COOKIE_NAME" envDefault:"hangman_session"`
	SecureCookies bool   `env:"SECURE_COOKIES" envDefault:"false"`
	ClientOrigin  string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values env tags cannot express.
func (c Config) Validate() error {
	switch c.WordSource {
	case SourceRemote, SourceList, SourceDaily:
	default:
		return fmt.Errorf("config: WORD_SOURCE must be %q, %q or %q, got %q", SourceRemote, SourceList, SourceDaily, c.WordSource)
	}
	if c.WordSource == SourceRemote && c.WordURL == "" {
		return fmt.Errorf("config: WORD_URL is empty")
	}
	if c.SessionDays <= 0 {
		return fmt.Errorf("config: SESSION_EXPIRES_DAYS must be positive, got %d", c.SessionDays)
	}
	return nil
}
