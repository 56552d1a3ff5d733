// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the settings for the CLI
type Config struct {
	// LogLevel is the minimum log level
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LogPretty switches to console formatted logs
	LogPretty bool `env:"LOG_PRETTY" envDefault:"false"`

	// MessageLimit caps the number of messages written. Zero means no limit.
	MessageLimit int `env:"MESSAGE_LIMIT" envDefault:"0"`

	// Redis holds the archive store settings
	Redis RedisConfig `envPrefix:"REDIS_"`

	// Discord holds the publishing settings
	Discord DiscordConfig `envPrefix:"DISCORD_"`
}

// RedisConfig holds the archive store settings. An empty Addr disables archiving.
type RedisConfig struct {
	Addr       string        `env:"ADDR"`
	Password   string        `env:"PASSWORD"`
	DB         int           `env:"DB" envDefault:"0"`
	ArchiveTTL time.Duration `env:"ARCHIVE_TTL" envDefault:"0s"`
}

// DiscordConfig holds the publishing settings
type DiscordConfig struct {
	Token     string `env:"TOKEN"`
	ChannelID string `env:"CHANNEL_ID"`
}

// ArchiveEnabled reports whether a Redis address is configured
func (c *Config) ArchiveEnabled() bool {
	return c.Redis.Addr != ""
}

// PublishEnabled reports whether Discord credentials are configured
func (c *Config) PublishEnabled() bool {
	return c.Discord.Token != "" && c.Discord.ChannelID != ""
}

// Load reads the given .env files, if present, then parses the environment.
// Variables already set in the environment win over .env values.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.MessageLimit < 0 {
		return nil, errors.New("MESSAGE_LIMIT cannot be negative")
	}

	return cfg, nil
}
