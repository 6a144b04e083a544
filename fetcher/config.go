package fetcher

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied by New when the corresponding Config field is zero.
const (
	// DefaultBaseURL is the production API root.
	DefaultBaseURL = "https://api.twitter.com/2"

	// DefaultPageSize is the service's per-request maximum.
	DefaultPageSize = 500
)

// Config carries everything one acquisition run needs. Explicit by
// design: there is no ambient credentials file or shared session —
// construct a Config, hand it to New, discard both when the run ends.
type Config struct {
	// BearerToken authenticates every request. Required.
	BearerToken string `yaml:"bearer_token"`

	// BaseURL overrides the API root; empty selects DefaultBaseURL.
	// Tests point this at a local server.
	BaseURL string `yaml:"base_url"`

	// StartTime and EndTime bound the archive-search window.
	StartTime time.Time `yaml:"start_time"`
	EndTime   time.Time `yaml:"end_time"`

	// PageSize caps results per request; zero selects DefaultPageSize.
	PageSize int `yaml:"page_size"`

	// MaxPostsPerUser, when positive, fetches a single page of at most
	// that many posts per user instead of paginating the whole window.
	MaxPostsPerUser int `yaml:"max_posts_per_user"`

	// WaitOnRateLimit makes the client sleep through HTTP 429 until
	// the announced reset instead of failing.
	WaitOnRateLimit bool `yaml:"wait_on_rate_limit"`
}

// LoadConfig reads a YAML Config from path. Validation happens in New,
// not here, so a partially-templated file can still be loaded and
// completed programmatically.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("fetcher: read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("fetcher: parse config: %w", err)
	}

	return cfg, nil
}

// validate checks the resolved Config. Called by New after defaults.
func (c Config) validate() error {
	if c.BearerToken == "" {
		return ErrMissingToken
	}
	if c.PageSize < 1 || c.PageSize > DefaultPageSize {
		return fmt.Errorf("fetcher: PageSize=%d: %w", c.PageSize, ErrBadPageSize)
	}
	if !c.StartTime.IsZero() && !c.EndTime.IsZero() && !c.EndTime.After(c.StartTime) {
		return fmt.Errorf("fetcher: window [%s, %s]: %w",
			c.StartTime.Format(time.RFC3339), c.EndTime.Format(time.RFC3339), ErrBadWindow)
	}

	return nil
}
