package cache

// instrumentedCache records hits, misses and the entry count of inner under
// a group label. Evictions are counted by the OnEvict hook of openInstrumented.
type instrumentedCache struct {
	inner Cache
	group string
}

// openInstrumented opens the store with an OnEvict hook counting evictions and
// wraps it so lookups and the entry count are reported under opts.Group.
func openInstrumented(open opener, opts Options) (Cache, error) {
	group := opts.Group
	next := opts.OnEvict
	opts.OnEvict = func(key string, value []byte) {
		EvictionsTotal.WithLabelValues(group).Inc()
		if next != nil {
			next(key, value)
		}
	}

	inner, err := open(opts)
	if err != nil {
		return nil, err
	}
	return newInstrumentedCache(inner, group), nil
}

func newInstrumentedCache(inner Cache, group string) *instrumentedCache {
	registerEntriesCollector(group, inner.Len)
	return &instrumentedCache{inner: inner, group: group}
}

func (c *instrumentedCache) Get(key string) ([]byte, bool) {
	val, ok := c.inner.Get(key)
	outcome := MissesTotal
	if ok {
		outcome = HitsTotal
	}
	outcome.WithLabelValues(c.group).Inc()
	return val, ok
}

func (c *instrumentedCache) Set(key string, value []byte) {
	c.inner.Set(key, value)
}

func (c *instrumentedCache) Delete(key string) {
	c.inner.Delete(key)
}

func (c *instrumentedCache) Contains(key string) bool {
	return c.inner.Contains(key)
}

func (c *instrumentedCache) Len() int {
	return c.inner.Len()
}

// Close unregisters the entries collector and closes the underlying cache.
func (c *instrumentedCache) Close() error {
	unregisterEntriesCollector(c.group)
	return c.inner.Close()
}
