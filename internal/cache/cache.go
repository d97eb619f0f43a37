package cache

// EvictCallback is called when an entry is evicted from the cache.
// Redis reports evicted keys with a nil value.
type EvictCallback func(key string, value []byte)

// Logger receives errors that cache operations cannot return to the caller.
type Logger interface {
	Error(msg string, err error)
}

// Cache is a bounded key-value store with LRU eviction and per-entry TTL.
// It holds serialized session pages; implementations may live in process or
// in Redis/Valkey so that several server instances share sessions.
type Cache interface {
	// Get retrieves a value by key and refreshes its recency.
	Get(key string) ([]byte, bool)

	// Set stores a value, overwriting any previous one and resetting its TTL.
	Set(key string, value []byte)

	// Delete removes a key. Deleting an absent key is a no-op.
	Delete(key string)

	// Contains checks whether a key exists without affecting LRU ordering.
	Contains(key string) bool

	// Len returns the number of entries currently in the cache.
	Len() int

	// Close releases any resources held by the cache.
	Close() error
}
