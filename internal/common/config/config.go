// internal/common/config/config.go
package config

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Tracker TrackerConfig `mapstructure:"tracker"`
	Feed    FeedConfig    `mapstructure:"feed"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// TrackerConfig points the transport at the issue tracker repository the
// submissions live in. Labels must select open, approved job postings;
// the core trusts this filtering and never re-verifies it.
type TrackerConfig struct {
	BaseURL    string   `mapstructure:"base_url"`
	Owner      string   `mapstructure:"owner"`
	Repo       string   `mapstructure:"repo"`
	Token      string   `mapstructure:"token"`
	Labels     []string `mapstructure:"labels"`
	PerPage    int      `mapstructure:"per_page"`
	Timeout    int      `mapstructure:"timeout"`     // milliseconds
	MaxRetries int      `mapstructure:"max_retries"` // fetch retry attempts
}

type FeedConfig struct {
	OutputPath string `mapstructure:"output_path"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Validate checks the fields a run cannot proceed without.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.Tracker,
		validation.Field(&c.Tracker.BaseURL, validation.Required, is.URL),
		validation.Field(&c.Tracker.Owner, validation.Required),
		validation.Field(&c.Tracker.Repo, validation.Required),
		validation.Field(&c.Tracker.Labels, validation.Required),
		validation.Field(&c.Tracker.PerPage, validation.Min(1), validation.Max(100)),
	); err != nil {
		return err
	}

	return validation.ValidateStruct(&c.Feed,
		validation.Field(&c.Feed.OutputPath, validation.Required),
	)
}

// GetTimeout converts the tracker timeout from config to a Duration.
func (t TrackerConfig) GetTimeout() time.Duration {
	return time.Duration(t.Timeout) * time.Millisecond
}
