package config

import (
	"errors"
	"time"

	"github.com/dmitrymomot/ophite/pkg/validator"
)

// Settings holds the library and command line tunables.
type Settings struct {
	LogLevel  string `env:"OPHITE_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"OPHITE_LOG_FORMAT" envDefault:"text"`

	// Seed for the shared random source. Zero seeds from the clock.
	Seed int64 `env:"OPHITE_SEED" envDefault:"0"`

	HexUpper bool `env:"OPHITE_HEX_UPPER" envDefault:"true"`

	RegexCacheSize int           `env:"OPHITE_REGEX_CACHE_SIZE" envDefault:"128"`
	RegexTimeout   time.Duration `env:"OPHITE_REGEX_TIMEOUT" envDefault:"1s"`
}

// Validate checks what env tags cannot express. The returned error matches
// ErrInvalidSetting and carries validator.ValidationErrors keyed by variable.
func (s Settings) Validate() error {
	err := validator.Apply(
		validator.OneOf("OPHITE_LOG_FORMAT", s.LogFormat, "text", "json"),
		validator.Min("OPHITE_REGEX_CACHE_SIZE", s.RegexCacheSize, 0),
		validator.Min("OPHITE_REGEX_TIMEOUT", s.RegexTimeout, 0),
	)
	if err != nil {
		return errors.Join(ErrInvalidSetting, err)
	}
	return nil
}

// LoadSettings loads and validates Settings from the process environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := Load(&s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
