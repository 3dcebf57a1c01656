// Package config defines all configuration structures for the LegalAI
// analysis module.  No I/O or parsing logic lives here, only plain data
// types and validation.  Loading is handled by loader.go.
package config

import (
	"fmt"
	"strings"
	"time"
)

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level       string   `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format      string   `mapstructure:"format"` // "json" | "console"
	OutputPaths []string `mapstructure:"output_paths"`
}

// RemoteConfig holds parameters for the remote-language-model strategy.
// The strategy is attempted only when credentials are present; an empty or
// placeholder API key disables it entirely.
type RemoteConfig struct {
	BaseURL       string        `mapstructure:"base_url"`
	APIKey        string        `mapstructure:"api_key"`
	Model         string        `mapstructure:"model"`
	Timeout       time.Duration `mapstructure:"timeout"`
	Temperature   float64       `mapstructure:"temperature"`
	MaxInputChars int           `mapstructure:"max_input_chars"`
}

// Enabled reports whether the remote strategy should be attempted at all.
// Placeholder keys ("YOUR_...") count as absent so shipped example configs
// do not trigger doomed network calls.
func (c RemoteConfig) Enabled() bool {
	return c.APIKey != "" && !strings.HasPrefix(c.APIKey, "YOUR_")
}

// ModelsConfig holds trained-artifact storage and inference parameters.
type ModelsConfig struct {
	// Backend selects the artifact store: "fs" (default) or "minio".
	Backend string `mapstructure:"backend"`

	// Dir is the filesystem directory for the "fs" backend.
	Dir string `mapstructure:"dir"`

	// MinConfidence is the acceptance threshold for statistical clause-type
	// predictions; candidates at or below it are dropped rather than guessed.
	MinConfidence float64 `mapstructure:"min_confidence"`

	// Watch enables fsnotify-driven hot reload of artifacts written by an
	// offline training run.
	Watch bool `mapstructure:"watch"`
}

// MinIOConfig holds S3-compatible object-store parameters for the "minio"
// artifact backend.
type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	Prefix    string `mapstructure:"prefix"`
}

// CacheConfig holds the optional redis analysis-result cache parameters.
// An empty Addr disables caching.
type CacheConfig struct {
	Addr      string        `mapstructure:"addr"`
	Password  string        `mapstructure:"password"`
	DB        int           `mapstructure:"db"`
	TTL       time.Duration `mapstructure:"ttl"`
	KeyPrefix string        `mapstructure:"key_prefix"`
}

// Enabled reports whether the cache should be used.
func (c CacheConfig) Enabled() bool { return c.Addr != "" }

// TrainingConfig holds offline model-training parameters.
type TrainingConfig struct {
	// Seed fixes every random choice in training (split shuffling, tree
	// bagging) so retrains on identical data yield identical artifacts.
	Seed int64 `mapstructure:"seed"`

	// TestFraction is the held-out share for the accuracy report.
	TestFraction float64 `mapstructure:"test_fraction"`

	// DataDir optionally supplies extra labeled examples as JSON files; the
	// built-in seed corpus is always included.
	DataDir string `mapstructure:"data_dir"`
}

// MetricsConfig holds prometheus metrics parameters.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

// Config is the root configuration object.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Remote   RemoteConfig   `mapstructure:"remote"`
	Models   ModelsConfig   `mapstructure:"models"`
	MinIO    MinIOConfig    `mapstructure:"minio"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Training TrainingConfig `mapstructure:"training"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// Validate checks cross-field consistency and returns the first error found.
func (c *Config) Validate() error {
	switch c.Models.Backend {
	case "fs", "minio":
	default:
		return fmt.Errorf("models.backend must be \"fs\" or \"minio\", got %q", c.Models.Backend)
	}
	if c.Models.Backend == "minio" {
		if c.MinIO.Endpoint == "" || c.MinIO.Bucket == "" {
			return fmt.Errorf("minio.endpoint and minio.bucket are required for the minio backend")
		}
	}
	if c.Models.MinConfidence < 0 || c.Models.MinConfidence >= 1 {
		return fmt.Errorf("models.min_confidence must be in [0,1), got %v", c.Models.MinConfidence)
	}
	if c.Training.TestFraction <= 0 || c.Training.TestFraction > 0.5 {
		return fmt.Errorf("training.test_fraction must be in (0,0.5], got %v", c.Training.TestFraction)
	}
	if c.Remote.Enabled() && c.Remote.Timeout <= 0 {
		return fmt.Errorf("remote.timeout must be positive when the remote strategy is enabled")
	}
	return nil
}
