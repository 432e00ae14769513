package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"schnapsen/internal/bot"
	"schnapsen/internal/domain"
)

// EnvPrefix namespaces the module's keys in the Nakama runtime environment.
const EnvPrefix = "schnapsen_"

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the per-match settings.
type Config struct {
	// Language selects the message catalog ("en" or "de").
	Language string `env:"lang" envDefault:"en"`
	// CardSet names the card images a client should use. Display only.
	CardSet string `env:"cardset" envDefault:"default"`
	// Cards is an optional fixed pack used for every deal.
	Cards string `env:"cards"`
	// LogLevel gates the AI decision traces, 0 (silent) to 3.
	LogLevel int `env:"loglevel" envDefault:"0"`
	// Fast halves pacing delays of a second or more.
	Fast bool `env:"fast" envDefault:"false"`

	BotLevel          string  `env:"bot_level" envDefault:"standard"`
	BotMinDelaySec    float64 `env:"bot_min_delay_sec" envDefault:"0.5"`
	BotMaxDelaySec    float64 `env:"bot_max_delay_sec" envDefault:"1.5"`
	BotIdentitiesPath string  `env:"bot_identities" envDefault:"data/bot_identities.json"`

	// StakePerPoint is the gold moved per game point; 0 disables settlement.
	StakePerPoint int64 `env:"stake_per_point" envDefault:"10"`
}

// Parse reads the configuration from a Nakama runtime environment map,
// applies defaults and validates the result.
func Parse(environment map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{
		Environment: environment,
		Prefix:      EnvPrefix,
	}
	if environment == nil {
		opts.Environment = map[string]string{}
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration with every default applied.
func Default() Config {
	cfg, err := Parse(nil)
	if err != nil {
		panic(fmt.Sprintf("default config: %v", err))
	}
	return cfg
}

// Validate checks ranges and the fixed pack.
func (c Config) Validate() error {
	switch c.Language {
	case "en", "de":
	default:
		return fmt.Errorf("%w: lang %q", ErrInvalidConfig, c.Language)
	}
	if c.LogLevel < bot.LogSilent || c.LogLevel > bot.LogTrace {
		return fmt.Errorf("%w: loglevel %d", ErrInvalidConfig, c.LogLevel)
	}
	if _, err := c.Stock(); err != nil {
		return fmt.Errorf("%w: cards: %v", ErrInvalidConfig, err)
	}
	if _, err := bot.ParseBotLevel(c.BotLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.BotMinDelaySec < 0 || c.BotMaxDelaySec < c.BotMinDelaySec {
		return fmt.Errorf("%w: bot delay %.2f..%.2f", ErrInvalidConfig, c.BotMinDelaySec, c.BotMaxDelaySec)
	}
	if c.StakePerPoint < 0 {
		return fmt.Errorf("%w: stake_per_point %d", ErrInvalidConfig, c.StakePerPoint)
	}
	return nil
}

// Stock returns the fixed pack, or nil when deals are shuffled.
func (c Config) Stock() (domain.Cards, error) {
	if c.Cards == "" {
		return nil, nil
	}
	return domain.StockFromString(c.Cards)
}

// Level returns the configured AI strategy level.
func (c Config) Level() bot.BotLevel {
	level, err := bot.ParseBotLevel(c.BotLevel)
	if err != nil {
		return bot.BotLevelStandard
	}
	return level
}
