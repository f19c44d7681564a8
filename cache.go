package fastecs

// indexCache maps string keys to small integer indices assigned in
// first-seen order. Assignment is monotonic and stable for the cache's
// lifetime; keys are never evicted. The scheduler uses one for system
// names, the message queue another for payload kind names.
type indexCache struct {
	indices map[string]int16
	keys    []string
}

func newIndexCache() *indexCache {
	return &indexCache{indices: make(map[string]int16)}
}

// GetIndex returns the index assigned to key, if any.
func (c *indexCache) GetIndex(key string) (int16, bool) {
	index, ok := c.indices[key]
	return index, ok
}

// Register returns the index for key, assigning the next free index on
// first use.
func (c *indexCache) Register(key string) int16 {
	if index, ok := c.indices[key]; ok {
		return index
	}
	index := int16(len(c.keys))
	c.indices[key] = index
	c.keys = append(c.keys, key)
	return index
}

// Len reports how many keys have been registered.
func (c *indexCache) Len() int {
	return len(c.keys)
}
