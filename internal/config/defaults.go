package config

import "time"

// ApplyDefaults fills every zero-valued field with its production default.
// Called by the loader after unmarshalling so partial config files and bare
// environments both yield a runnable configuration.
func (c *Config) ApplyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
	if len(c.Log.OutputPaths) == 0 {
		c.Log.OutputPaths = []string{"stdout"}
	}

	if c.Remote.BaseURL == "" {
		c.Remote.BaseURL = "https://api.openai.com/v1"
	}
	if c.Remote.Model == "" {
		c.Remote.Model = "gpt-4o-mini"
	}
	if c.Remote.Timeout == 0 {
		c.Remote.Timeout = 30 * time.Second
	}
	if c.Remote.MaxInputChars == 0 {
		c.Remote.MaxInputChars = 15000
	}

	if c.Models.Backend == "" {
		c.Models.Backend = "fs"
	}
	if c.Models.Dir == "" {
		c.Models.Dir = "models"
	}
	if c.Models.MinConfidence == 0 {
		c.Models.MinConfidence = 0.3
	}

	if c.MinIO.Prefix == "" {
		c.MinIO.Prefix = "models"
	}

	if c.Cache.TTL == 0 {
		c.Cache.TTL = time.Hour
	}
	if c.Cache.KeyPrefix == "" {
		c.Cache.KeyPrefix = "legalai:analysis:"
	}

	if c.Training.Seed == 0 {
		c.Training.Seed = 42
	}
	if c.Training.TestFraction == 0 {
		c.Training.TestFraction = 0.2
	}

	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "legalai"
	}
}

// DefaultConfig returns a Config with all defaults applied and nothing else
// set.  Handy for tests and for library embedders that configure in code.
func DefaultConfig() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}
