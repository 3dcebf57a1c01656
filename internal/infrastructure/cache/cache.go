// Package cache provides the optional analysis-result cache.  Identical
// documents produce identical analyses, so results are keyed by the sha256 of
// the input text.  The cache is strictly best-effort: every failure is logged
// and swallowed, and a request never fails because redis is down.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/premsagar786/LegalAI/internal/config"
	"github.com/premsagar786/LegalAI/internal/infrastructure/monitoring/logging"
	"github.com/premsagar786/LegalAI/pkg/types/legal"
)

// AnalysisCache stores completed analyses keyed by document text.
type AnalysisCache interface {
	// Get returns the cached analysis for the text, or (nil, false) on miss
	// or error.
	Get(ctx context.Context, text string) (*legal.DocumentAnalysis, bool)

	// Set stores the analysis.  Failures are swallowed.
	Set(ctx context.Context, text string, analysis *legal.DocumentAnalysis)
}

// Key derives the cache key for a document text.
func Key(prefix, text string) string {
	sum := sha256.Sum256([]byte(text))
	return prefix + hex.EncodeToString(sum[:])
}

// ---------------------------------------------------------------------------
// redis implementation
// ---------------------------------------------------------------------------

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
	logger logging.Logger
}

// NewRedisCache connects to redis per cfg.  The connection is verified with a
// short ping; on failure the cache degrades to a no-op rather than blocking
// startup.
func NewRedisCache(ctx context.Context, cfg config.CacheConfig, logger logging.Logger) AnalysisCache {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	logger = logger.Named("cache")

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unreachable, caching disabled", logging.Err(err))
		_ = client.Close()
		return NewNopCache()
	}

	return &redisCache{
		client: client,
		ttl:    cfg.TTL,
		prefix: cfg.KeyPrefix,
		logger: logger,
	}
}

func (c *redisCache) Get(ctx context.Context, text string) (*legal.DocumentAnalysis, bool) {
	data, err := c.client.Get(ctx, Key(c.prefix, text)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache read failed", logging.Err(err))
		}
		return nil, false
	}
	analysis := &legal.DocumentAnalysis{}
	if err := json.Unmarshal(data, analysis); err != nil {
		c.logger.Warn("cache entry undecodable, dropping", logging.Err(err))
		return nil, false
	}
	return analysis, true
}

func (c *redisCache) Set(ctx context.Context, text string, analysis *legal.DocumentAnalysis) {
	data, err := json.Marshal(analysis)
	if err != nil {
		c.logger.Warn("failed to encode analysis for cache", logging.Err(err))
		return
	}
	if err := c.client.Set(ctx, Key(c.prefix, text), data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", logging.Err(err))
	}
}

// ---------------------------------------------------------------------------
// no-op implementation
// ---------------------------------------------------------------------------

type nopCache struct{}

func (nopCache) Get(context.Context, string) (*legal.DocumentAnalysis, bool) { return nil, false }
func (nopCache) Set(context.Context, string, *legal.DocumentAnalysis)        {}

// NewNopCache returns a cache that stores nothing.  Used when no redis
// address is configured.
func NewNopCache() AnalysisCache { return nopCache{} }
