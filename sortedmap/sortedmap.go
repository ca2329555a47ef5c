// Package sortedmap exposes the skip-list engine through a conventional
// key/value collection surface: an ordered map, a read-only decorator and a
// thread-safe factory.
package sortedmap

import (
	"errors"

	skiplist "github.com/dimits-exe/SkipLists"
)

var (
	// ErrKeyExists is returned by Add when the key is already present.
	ErrKeyExists = errors.New("sortedmap: key already exists")

	// ErrReadOnly is returned by every mutating call on a read-only map.
	ErrReadOnly = errors.New("sortedmap: map is read-only")

	// ErrShortBuffer is returned by CopyTo when the destination cannot hold
	// every entry.
	ErrShortBuffer = errors.New("sortedmap: destination too short")
)

// engine is the contract the adapter needs from a backing list. Both
// *skiplist.SkipList and *skiplist.ConcurrentSkipList satisfy it.
type engine[K, V any] interface {
	Put(key K, value V) error
	Get(key K) (V, bool, error)
	Contains(key K) (bool, error)
	Remove(key K) (V, bool, error)
	Min() (skiplist.Entry[K, V], bool)
	Max() (skiplist.Entry[K, V], bool)
	Ceiling(key K) (skiplist.Entry[K, V], bool, error)
	Floor(key K) (skiplist.Entry[K, V], bool, error)
	Higher(key K) (skiplist.Entry[K, V], bool, error)
	Lower(key K) (skiplist.Entry[K, V], bool, error)
	Sublist(start, end K) ([]skiplist.Entry[K, V], error)
	Entries() []skiplist.Entry[K, V]
	Keys() []K
	Values() []V
	Len() int
	Comparator() skiplist.Compare[K]
	Clear()
}

// Interface is the full ordered-map contract, satisfied by *Map and
// *ReadOnlyMap so callers can hold either.
type Interface[K, V any] interface {
	Set(key K, value V) error
	Add(key K, value V) error
	Remove(key K) (bool, error)
	Clear() error

	Get(key K) (V, bool)
	ContainsKey(key K) bool
	First() (skiplist.Entry[K, V], bool)
	Last() (skiplist.Entry[K, V], bool)
	Ceiling(key K) (skiplist.Entry[K, V], bool)
	Floor(key K) (skiplist.Entry[K, V], bool)
	Higher(key K) (skiplist.Entry[K, V], bool)
	Lower(key K) (skiplist.Entry[K, V], bool)
	Sublist(start, end K) ([]skiplist.Entry[K, V], error)
	Entries() []skiplist.Entry[K, V]
	Keys() []K
	Values() []V
	CopyTo(dst []skiplist.Entry[K, V], at int) error
	Len() int
	Comparator() skiplist.Compare[K]
}

var (
	_ Interface[int, int] = (*Map[int, int])(nil)
	_ Interface[int, int] = (*ReadOnlyMap[int, int])(nil)
)

// Map is an ordered map backed by a skip list. The zero value is not usable;
// construct with New, NewWith or Wrap.
type Map[K, V any] struct {
	eng engine[K, V]
}

// New returns an empty map ordered by the key type's natural order.
func New[K, V any](opts ...skiplist.Option) (*Map[K, V], error) {
	list, err := skiplist.New[K, V](opts...)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{eng: list}, nil
}

// NewWith returns an empty map ordered by the given comparator.
func NewWith[K, V any](compare skiplist.Compare[K], opts ...skiplist.Option) (*Map[K, V], error) {
	list, err := skiplist.NewWith[K, V](compare, opts...)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{eng: list}, nil
}

// Wrap adapts an existing skip list. The map shares the list; mutations
// through either are visible through both.
func Wrap[K, V any](list *skiplist.SkipList[K, V]) *Map[K, V] {
	return &Map[K, V]{eng: list}
}

// Set inserts or replaces the value for key.
func (m *Map[K, V]) Set(key K, value V) error {
	return m.eng.Put(key, value)
}

// Add inserts a new key, failing with ErrKeyExists when the key is already
// present.
func (m *Map[K, V]) Add(key K, value V) error {
	found, err := m.eng.Contains(key)
	if err != nil {
		return err
	}
	if found {
		return ErrKeyExists
	}
	return m.eng.Put(key, value)
}

// Remove deletes the entry for key, reporting whether it was present.
func (m *Map[K, V]) Remove(key K) (bool, error) {
	_, found, err := m.eng.Remove(key)
	return found, err
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() error {
	m.eng.Clear()
	return nil
}

// Get returns the value for key. The boolean is false when the key is absent
// or nil; an absent key is not an error.
func (m *Map[K, V]) Get(key K) (V, bool) {
	value, found, err := m.eng.Get(key)
	if err != nil {
		var zero V
		return zero, false
	}
	return value, found
}

// ContainsKey reports whether the key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	found, err := m.eng.Contains(key)
	return err == nil && found
}

// First returns the smallest entry.
func (m *Map[K, V]) First() (skiplist.Entry[K, V], bool) {
	return m.eng.Min()
}

// Last returns the largest entry.
func (m *Map[K, V]) Last() (skiplist.Entry[K, V], bool) {
	return m.eng.Max()
}

// Ceiling returns the smallest entry whose key is >= key.
func (m *Map[K, V]) Ceiling(key K) (skiplist.Entry[K, V], bool) {
	entry, found, err := m.eng.Ceiling(key)
	return entry, err == nil && found
}

// Floor returns the largest entry whose key is <= key.
func (m *Map[K, V]) Floor(key K) (skiplist.Entry[K, V], bool) {
	entry, found, err := m.eng.Floor(key)
	return entry, err == nil && found
}

// Higher returns the smallest entry whose key is strictly > key.
func (m *Map[K, V]) Higher(key K) (skiplist.Entry[K, V], bool) {
	entry, found, err := m.eng.Higher(key)
	return entry, err == nil && found
}

// Lower returns the largest entry whose key is strictly < key.
func (m *Map[K, V]) Lower(key K) (skiplist.Entry[K, V], bool) {
	entry, found, err := m.eng.Lower(key)
	return entry, err == nil && found
}

// Sublist returns every entry with start <= key <= end, in ascending order.
func (m *Map[K, V]) Sublist(start, end K) ([]skiplist.Entry[K, V], error) {
	return m.eng.Sublist(start, end)
}

// Entries returns all entries in ascending key order.
func (m *Map[K, V]) Entries() []skiplist.Entry[K, V] {
	return m.eng.Entries()
}

// Keys returns all keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	return m.eng.Keys()
}

// Values returns all values in ascending key order.
func (m *Map[K, V]) Values() []V {
	return m.eng.Values()
}

// CopyTo copies all entries into dst starting at index at.
func (m *Map[K, V]) CopyTo(dst []skiplist.Entry[K, V], at int) error {
	if at < 0 || at > len(dst) {
		return ErrShortBuffer
	}
	entries := m.eng.Entries()
	if len(dst)-at < len(entries) {
		return ErrShortBuffer
	}
	copy(dst[at:], entries)
	return nil
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.eng.Len()
}

// Comparator returns the comparator the map was built with.
func (m *Map[K, V]) Comparator() skiplist.Compare[K] {
	return m.eng.Comparator()
}

// Synchronized returns a thread-safe copy of m: the entries are deep-copied
// into a fresh engine whose every operation is serialized. The original map
// is left untouched and unguarded.
func Synchronized[K, V any](m *Map[K, V]) *Map[K, V] {
	if base, ok := m.eng.(*skiplist.SkipList[K, V]); ok {
		return &Map[K, V]{eng: skiplist.NewConcurrent(base)}
	}
	// Already guarded (or foreign): rebuild a base engine from a snapshot
	// and wrap that.
	base, err := skiplist.NewWith[K, V](m.Comparator())
	if err != nil {
		// NewWith only fails on invalid config and none is passed.
		panic(err)
	}
	for _, e := range m.Entries() {
		if err := base.Put(e.Key, e.Value); err != nil {
			panic(err)
		}
	}
	return &Map[K, V]{eng: skiplist.NewConcurrent(base)}
}
