package session

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Belphemur/ShowSearch/internal/cache"
	"github.com/Belphemur/ShowSearch/internal/config"
)

const (
	snapshotNamespace = "showsearch:session:"
	snapshotGroup     = "sessions"
)

// zerologCacheLogger forwards cache errors to zerolog
type zerologCacheLogger struct {
	logger zerolog.Logger
}

func (l zerologCacheLogger) Error(msg string, err error) {
	l.logger.Error().Err(err).Msg(msg)
}

// NewSnapshotCache builds the snapshot cache configured under cache.* and session.*
func NewSnapshotCache(cfg *config.Config) (cache.Cache, error) {
	ttl, err := SessionTTL(cfg)
	if err != nil {
		return nil, err
	}

	provider := cfg.Cache.Type
	if provider == "" {
		provider = cache.ProviderMemory
	}

	size := cfg.Session.Size
	if provider == cache.ProviderMemory {
		// the snapshot cache also holds widgets evicted from the live set
		size *= 2
	}

	return cache.Open(cache.Options{
		Provider:  provider,
		Size:      size,
		TTL:       ttl,
		Namespace: snapshotNamespace,
		Logger:    zerologCacheLogger{logger: config.GetLogger()},
		Redis: cache.RedisOptions{
			Address:  cfg.Cache.Redis.Address,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		},
		Group: snapshotGroup,
	})
}

// SessionTTL parses session.ttl, defaulting to 30 minutes.
func SessionTTL(cfg *config.Config) (time.Duration, error) {
	if cfg.Session.TTL == "" {
		return 30 * time.Minute, nil
	}
	ttl, err := time.ParseDuration(cfg.Session.TTL)
	if err != nil {
		return 0, fmt.Errorf("invalid session ttl %q: %w", cfg.Session.TTL, err)
	}
	return ttl, nil
}
