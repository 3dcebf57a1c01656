package config

import (
	"strings"

	"github.com/spf13/viper"

	apperrors "github.com/premsagar786/LegalAI/pkg/errors"
)

// EnvPrefix is the prefix for environment-variable overrides, e.g.
// LEGALAI_REMOTE_API_KEY overrides remote.api_key.
const EnvPrefix = "LEGALAI"

// Load reads configuration from the named file (optional), layers environment
// overrides on top, applies defaults, and validates the result.
//
// Precedence, highest first: environment variables, config file, defaults.
// An empty path skips the file stage entirely, which is the normal mode for
// library embedders that configure through the environment.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about, so every
	// overridable key must be registered up front.
	registerDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeConfig, "failed to read config file")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeConfig, "failed to unmarshal config")
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeConfig, "invalid configuration")
	}
	return cfg, nil
}

func registerDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.output_paths", d.Log.OutputPaths)

	v.SetDefault("remote.base_url", d.Remote.BaseURL)
	v.SetDefault("remote.api_key", "")
	v.SetDefault("remote.model", d.Remote.Model)
	v.SetDefault("remote.timeout", d.Remote.Timeout)
	v.SetDefault("remote.temperature", d.Remote.Temperature)
	v.SetDefault("remote.max_input_chars", d.Remote.MaxInputChars)

	v.SetDefault("models.backend", d.Models.Backend)
	v.SetDefault("models.dir", d.Models.Dir)
	v.SetDefault("models.min_confidence", d.Models.MinConfidence)
	v.SetDefault("models.watch", d.Models.Watch)

	v.SetDefault("minio.endpoint", "")
	v.SetDefault("minio.access_key", "")
	v.SetDefault("minio.secret_key", "")
	v.SetDefault("minio.bucket", "")
	v.SetDefault("minio.use_ssl", false)
	v.SetDefault("minio.prefix", d.MinIO.Prefix)

	v.SetDefault("cache.addr", "")
	v.SetDefault("cache.password", "")
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("cache.key_prefix", d.Cache.KeyPrefix)

	v.SetDefault("training.seed", d.Training.Seed)
	v.SetDefault("training.test_fraction", d.Training.TestFraction)
	v.SetDefault("training.data_dir", "")

	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("metrics.namespace", d.Metrics.Namespace)
}
