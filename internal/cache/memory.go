package cache

import (
	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

// memoryCache keeps entries in an expirable LRU inside the process.
// Keys are namespaced like the Redis provider so both behave the same.
// The expirable LRU reports deletions and expiries through OnEvict as well.
type memoryCache struct {
	inner     *lru.LRU[string, []byte]
	namespace string
}

func openMemory(opts Options) (Cache, error) {
	namespace := opts.namespace()

	var onEvict func(string, []byte)
	if opts.OnEvict != nil {
		onEvict = func(key string, value []byte) {
			opts.OnEvict(key[len(namespace):], value)
		}
	}
	return &memoryCache{
		inner:     lru.NewLRU[string, []byte](opts.Size, onEvict, opts.TTL),
		namespace: namespace,
	}, nil
}

func (m *memoryCache) Get(key string) ([]byte, bool) {
	return m.inner.Get(m.namespace + key)
}

func (m *memoryCache) Set(key string, value []byte) {
	m.inner.Add(m.namespace+key, value)
}

func (m *memoryCache) Delete(key string) {
	m.inner.Remove(m.namespace + key)
}

func (m *memoryCache) Contains(key string) bool {
	return m.inner.Contains(m.namespace + key)
}

func (m *memoryCache) Len() int {
	return m.inner.Len()
}

func (m *memoryCache) Close() error {
	return nil
}
