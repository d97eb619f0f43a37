package cache

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

// Store backends
const (
	ProviderMemory = "memory"
	ProviderRedis  = "redis"
)

// DefaultNamespace prefixes every key when Options.Namespace is empty.
const DefaultNamespace = "showsearch:"

// Options describes a snapshot store.
type Options struct {
	// Provider selects the backend, ProviderMemory when empty.
	Provider string

	// Size bounds the number of entries; a redis store with Size <= 0 never evicts.
	Size int

	// TTL expires an entry after its last Set.
	TTL time.Duration

	// Namespace prefixes every key so several stores can share one backend.
	// Callers never see it: OnEvict receives keys as passed to Set.
	Namespace string

	OnEvict EvictCallback

	// Logger receives errors the Cache interface cannot return. May be nil.
	Logger Logger

	Redis RedisOptions

	// Group labels the store's Prometheus series. Empty disables instrumentation.
	Group string
}

// RedisOptions locates the Redis/Valkey server of a redis store.
type RedisOptions struct {
	Address  string
	Password string
	DB       int
}

func (o Options) namespace() string {
	if o.Namespace == "" {
		return DefaultNamespace
	}
	return o.Namespace
}

type opener func(opts Options) (Cache, error)

var openers = map[string]opener{
	ProviderMemory: openMemory,
	ProviderRedis:  openRedis,
}

// Open builds the store described by opts.
func Open(opts Options) (Cache, error) {
	name := opts.Provider
	if name == "" {
		name = ProviderMemory
	}

	open, ok := openers[name]
	if !ok {
		return nil, fmt.Errorf("cache: unknown provider %q (known: %s)", name, strings.Join(Providers(), ", "))
	}
	if opts.Group == "" {
		return open(opts)
	}
	return openInstrumented(open, opts)
}

// Providers lists the known backends in name order.
func Providers() []string {
	return slices.Sorted(maps.Keys(openers))
}
