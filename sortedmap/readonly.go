package sortedmap

import skiplist "github.com/dimits-exe/SkipLists"

// ReadOnlyMap rejects every mutating call with ErrReadOnly and forwards all
// reads to the wrapped map. It does not copy the underlying list, so
// mutation through the original reference stays visible here.
type ReadOnlyMap[K, V any] struct {
	m *Map[K, V]
}

// ReadOnly wraps a map in a read-only decorator.
func ReadOnly[K, V any](m *Map[K, V]) *ReadOnlyMap[K, V] {
	return &ReadOnlyMap[K, V]{m: m}
}

// Set fails with ErrReadOnly.
func (r *ReadOnlyMap[K, V]) Set(key K, value V) error { return ErrReadOnly }

// Add fails with ErrReadOnly.
func (r *ReadOnlyMap[K, V]) Add(key K, value V) error { return ErrReadOnly }

// Remove fails with ErrReadOnly.
func (r *ReadOnlyMap[K, V]) Remove(key K) (bool, error) { return false, ErrReadOnly }

// Clear fails with ErrReadOnly.
func (r *ReadOnlyMap[K, V]) Clear() error { return ErrReadOnly }

// Get returns the value for key.
func (r *ReadOnlyMap[K, V]) Get(key K) (V, bool) { return r.m.Get(key) }

// ContainsKey reports whether the key is present.
func (r *ReadOnlyMap[K, V]) ContainsKey(key K) bool { return r.m.ContainsKey(key) }

// First returns the smallest entry.
func (r *ReadOnlyMap[K, V]) First() (skiplist.Entry[K, V], bool) { return r.m.First() }

// Last returns the largest entry.
func (r *ReadOnlyMap[K, V]) Last() (skiplist.Entry[K, V], bool) { return r.m.Last() }

// Ceiling returns the smallest entry whose key is >= key.
func (r *ReadOnlyMap[K, V]) Ceiling(key K) (skiplist.Entry[K, V], bool) { return r.m.Ceiling(key) }

// Floor returns the largest entry whose key is <= key.
func (r *ReadOnlyMap[K, V]) Floor(key K) (skiplist.Entry[K, V], bool) { return r.m.Floor(key) }

// Higher returns the smallest entry whose key is strictly > key.
func (r *ReadOnlyMap[K, V]) Higher(key K) (skiplist.Entry[K, V], bool) { return r.m.Higher(key) }

// Lower returns the largest entry whose key is strictly < key.
func (r *ReadOnlyMap[K, V]) Lower(key K) (skiplist.Entry[K, V], bool) { return r.m.Lower(key) }

// Sublist returns every entry with start <= key <= end.
func (r *ReadOnlyMap[K, V]) Sublist(start, end K) ([]skiplist.Entry[K, V], error) {
	return r.m.Sublist(start, end)
}

// Entries returns all entries in ascending key order.
func (r *ReadOnlyMap[K, V]) Entries() []skiplist.Entry[K, V] { return r.m.Entries() }

// Keys returns all keys in ascending order.
func (r *ReadOnlyMap[K, V]) Keys() []K { return r.m.Keys() }

// Values returns all values in ascending key order.
func (r *ReadOnlyMap[K, V]) Values() []V { return r.m.Values() }

// CopyTo copies all entries into dst starting at index at.
func (r *ReadOnlyMap[K, V]) CopyTo(dst []skiplist.Entry[K, V], at int) error {
	return r.m.CopyTo(dst, at)
}

// Len returns the number of entries.
func (r *ReadOnlyMap[K, V]) Len() int { return r.m.Len() }

// Comparator returns the comparator the map was built with.
func (r *ReadOnlyMap[K, V]) Comparator() skiplist.Compare[K] { return r.m.Comparator() }
