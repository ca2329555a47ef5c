package skiplist

import "sync"

// ConcurrentSkipList is the thread-safe entry point. It is constructed from
// an existing SkipList by deep-copying its entries into a fresh engine, so
// the two share no nodes and mutating either cannot corrupt the other. Every
// public operation holds one exclusive lock for its full duration, including
// snapshot traversals, so no caller can observe a torn range.
type ConcurrentSkipList[K, V any] struct {
	mu   sync.Mutex
	list *SkipList[K, V]
}

// NewConcurrent returns a thread-safe deep copy of src. The copy uses the
// same comparator and configuration; tower heights are resampled, which does
// not affect ordering.
func NewConcurrent[K, V any](src *SkipList[K, V]) *ConcurrentSkipList[K, V] {
	cfg := src.cfg
	cfg.source = nil
	dst := &SkipList[K, V]{
		compare: src.compare,
		cfg:     cfg,
		head:    newHead[K, V](cfg.MaxLevel),
		level:   1,
		gen:     newLevelGen(cfg),
	}
	for n := src.head.forwards[0]; n != nil; n = n.forwards[0] {
		dst.Put(n.key, n.value)
	}
	return &ConcurrentSkipList[K, V]{list: dst}
}

// Put inserts or replaces the value for key.
func (c *ConcurrentSkipList[K, V]) Put(key K, value V) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Put(key, value)
}

// Get returns the value stored for key.
func (c *ConcurrentSkipList[K, V]) Get(key K) (V, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Get(key)
}

// Contains reports whether the key is present.
func (c *ConcurrentSkipList[K, V]) Contains(key K) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Contains(key)
}

// Remove deletes the entry for key and returns its value.
func (c *ConcurrentSkipList[K, V]) Remove(key K) (V, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Remove(key)
}

// Min returns the smallest entry by the comparator.
func (c *ConcurrentSkipList[K, V]) Min() (Entry[K, V], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Min()
}

// Max returns the largest entry by the comparator.
func (c *ConcurrentSkipList[K, V]) Max() (Entry[K, V], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Max()
}

// Ceiling returns the smallest entry whose key is >= key.
func (c *ConcurrentSkipList[K, V]) Ceiling(key K) (Entry[K, V], bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Ceiling(key)
}

// Floor returns the largest entry whose key is <= key.
func (c *ConcurrentSkipList[K, V]) Floor(key K) (Entry[K, V], bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Floor(key)
}

// Higher returns the smallest entry whose key is strictly > key.
func (c *ConcurrentSkipList[K, V]) Higher(key K) (Entry[K, V], bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Higher(key)
}

// Lower returns the largest entry whose key is strictly < key.
func (c *ConcurrentSkipList[K, V]) Lower(key K) (Entry[K, V], bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Lower(key)
}

// Sublist returns every entry with start <= key <= end. The traversal runs
// entirely under the lock, so the snapshot is never torn.
func (c *ConcurrentSkipList[K, V]) Sublist(start, end K) ([]Entry[K, V], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Sublist(start, end)
}

// Entries returns all entries in ascending key order.
func (c *ConcurrentSkipList[K, V]) Entries() []Entry[K, V] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Entries()
}

// Keys returns all keys in ascending order.
func (c *ConcurrentSkipList[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Keys()
}

// Values returns all values in ascending key order.
func (c *ConcurrentSkipList[K, V]) Values() []V {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Values()
}

// Len returns the number of entries.
func (c *ConcurrentSkipList[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Len()
}

// Comparator returns the comparator the list was built with.
func (c *ConcurrentSkipList[K, V]) Comparator() Compare[K] {
	return c.list.Comparator()
}

// Clear removes all entries.
func (c *ConcurrentSkipList[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list.Clear()
}

// LevelStats returns the number of nodes present on each active level.
func (c *ConcurrentSkipList[K, V]) LevelStats() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.LevelStats()
}
