package commands

import (
	"errors"
	"os"
	"time"
	"wikifeet-go/internal/components/fetch"
	"wikifeet-go/internal/history"
	"wikifeet-go/lib/configutil"
)

// Config is read from wikifeet.json5.
type Config struct {
	UserAgent        string         `json:"user_agent"`
	TimeoutSeconds   int            `json:"timeout_seconds"`
	RateLimit        float64        `json:"rate_limit"`
	RateBurst        int            `json:"rate_burst"`
	CloudflareBypass *bool          `json:"cloudflare_bypass"`
	History          history.Config `json:"history"`
}

func defaultConfig() Config {
	opts := fetch.DefaultOptions()
	bypass := opts.CloudflareBypass
	return Config{
		UserAgent:        opts.UserAgent,
		TimeoutSeconds:   int(opts.Timeout / time.Second),
		RateLimit:        opts.RateLimit,
		RateBurst:        opts.RateBurst,
		CloudflareBypass: &bypass,
	}
}

// loadConfig reads the config file (and its .local override), unset keys keep their
// defaults and a missing file yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg, err := configutil.ReadConfig[Config](path)
	if errors.Is(err, os.ErrNotExist) {
		return defaultConfig(), nil
	}
	if err != nil {
		return Config{}, err
	}
	return cfg.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	def := defaultConfig()
	if c.UserAgent == "" {
		c.UserAgent = def.UserAgent
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = def.TimeoutSeconds
	}
	if c.RateLimit == 0 {
		c.RateLimit = def.RateLimit
	}
	if c.RateBurst <= 0 {
		c.RateBurst = def.RateBurst
	}
	if c.CloudflareBypass == nil {
		c.CloudflareBypass = def.CloudflareBypass
	}
	return c
}

func (c Config) fetchOptions() fetch.Options {
	opts := fetch.DefaultOptions()
	opts.UserAgent = c.UserAgent
	opts.Timeout = time.Duration(c.TimeoutSeconds) * time.Second
	// a negative rate_limit disables limiting
	opts.RateLimit = max(c.RateLimit, 0)
	opts.RateBurst = c.RateBurst
	if c.CloudflareBypass != nil {
		opts.CloudflareBypass = *c.CloudflareBypass
	}
	return opts
}
