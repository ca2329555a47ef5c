// Package skiplist implements an ordered key-to-value map backed by a skip
// list: a probabilistically balanced, multi-level linked structure with
// expected O(log n) search, insert, delete and ordered neighbor/range
// queries.
//
// A SkipList has no internal synchronization. Unsynchronized concurrent
// mutation is undefined behavior and may corrupt the tower graph; the only
// thread-safe entry point is ConcurrentSkipList.
package skiplist

// SkipList is a generic ordered map. Construct one with New or NewWith.
type SkipList[K, V any] struct {
	compare Compare[K]
	cfg     Config
	head    *node[K, V]
	// level is the number of active levels: always >= the tallest live
	// node's height and <= cfg.MaxLevel. It shrinks eagerly on Remove.
	level  int
	length int
	gen    *levelGen
}

// New returns an empty SkipList ordered by the key type's natural order.
// Key types without a natural order (see NaturalOrder) yield
// ErrUnsupportedType.
func New[K, V any](opts ...Option) (*SkipList[K, V], error) {
	compare, err := NaturalOrder[K]()
	if err != nil {
		return nil, err
	}
	return NewWith[K, V](compare, opts...)
}

// NewWith returns an empty SkipList ordered by the given comparator.
func NewWith[K, V any](compare Compare[K], opts ...Option) (*SkipList[K, V], error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &SkipList[K, V]{
		compare: compare,
		cfg:     cfg,
		head:    newHead[K, V](cfg.MaxLevel),
		level:   1,
		gen:     newLevelGen(cfg),
	}, nil
}

// find is the single traversal every operation reduces to. Starting at the
// head on the highest active level it advances while the next key is strictly
// less than key, recording at each level the last node visited before
// dropping down. It returns that update trail together with the landed node:
// the first level-0 node whose key is not less than key (nil at the tail).
func (l *SkipList[K, V]) find(key K) (update []*node[K, V], next *node[K, V]) {
	update = make([]*node[K, V], l.cfg.MaxLevel)
	n := l.head
	for i := l.level - 1; i >= 0; i-- {
		for n.forwards[i] != nil && l.compare(n.forwards[i].key, key) < 0 {
			n = n.forwards[i]
		}
		update[i] = n
	}
	return update, n.forwards[0]
}

// Put inserts the key/value pair, replacing the value in place when the key
// is already present (the node keeps its tower).
func (l *SkipList[K, V]) Put(key K, value V) error {
	if isNilKey(key) {
		return ErrNilKey
	}

	update, next := l.find(key)
	if next != nil && l.compare(next.key, key) == 0 {
		next.value = value
		return nil
	}

	height := l.gen.next()
	if height > l.level {
		for i := l.level; i < height; i++ {
			update[i] = l.head
		}
		l.level = height
	}

	n := newNode(key, value, height)
	for i := 0; i < height; i++ {
		n.forwards[i] = update[i].forwards[i]
		update[i].forwards[i] = n
	}
	l.length++
	return nil
}

// Get returns the value stored for key. The boolean is false when the key is
// absent; a missing key is never an error.
func (l *SkipList[K, V]) Get(key K) (V, bool, error) {
	var zero V
	if isNilKey(key) {
		return zero, false, ErrNilKey
	}
	_, next := l.find(key)
	if next == nil || l.compare(next.key, key) != 0 {
		return zero, false, nil
	}
	return next.value, true, nil
}

// Contains reports whether the key is present.
func (l *SkipList[K, V]) Contains(key K) (bool, error) {
	_, found, err := l.Get(key)
	return found, err
}

// Remove deletes the entry for key and returns its value. Removing an absent
// key returns false and leaves the list untouched.
func (l *SkipList[K, V]) Remove(key K) (V, bool, error) {
	var zero V
	if isNilKey(key) {
		return zero, false, ErrNilKey
	}

	update, next := l.find(key)
	if next == nil || l.compare(next.key, key) != 0 {
		return zero, false, nil
	}

	for i := range next.forwards {
		if update[i].forwards[i] != next {
			break
		}
		update[i].forwards[i] = next.forwards[i]
	}
	for l.level > 1 && l.head.forwards[l.level-1] == nil {
		l.level--
	}
	l.length--
	return next.value, true, nil
}

// Min returns the smallest entry by the comparator.
func (l *SkipList[K, V]) Min() (Entry[K, V], bool) {
	n := l.head.forwards[0]
	if n == nil {
		return Entry[K, V]{}, false
	}
	return Entry[K, V]{Key: n.key, Value: n.value}, true
}

// Max returns the largest entry by the comparator. It descends from the top
// level staying rightmost, so no backward links are needed.
func (l *SkipList[K, V]) Max() (Entry[K, V], bool) {
	n := l.head
	for i := l.level - 1; i >= 0; i-- {
		for n.forwards[i] != nil {
			n = n.forwards[i]
		}
	}
	if n == l.head {
		return Entry[K, V]{}, false
	}
	return Entry[K, V]{Key: n.key, Value: n.value}, true
}

// Ceiling returns the smallest entry whose key is >= key.
func (l *SkipList[K, V]) Ceiling(key K) (Entry[K, V], bool, error) {
	if isNilKey(key) {
		return Entry[K, V]{}, false, ErrNilKey
	}
	_, next := l.find(key)
	if next == nil {
		return Entry[K, V]{}, false, nil
	}
	return Entry[K, V]{Key: next.key, Value: next.value}, true, nil
}

// Floor returns the largest entry whose key is <= key.
func (l *SkipList[K, V]) Floor(key K) (Entry[K, V], bool, error) {
	if isNilKey(key) {
		return Entry[K, V]{}, false, ErrNilKey
	}
	update, next := l.find(key)
	if next != nil && l.compare(next.key, key) == 0 {
		return Entry[K, V]{Key: next.key, Value: next.value}, true, nil
	}
	pred := update[0]
	if pred == l.head {
		return Entry[K, V]{}, false, nil
	}
	return Entry[K, V]{Key: pred.key, Value: pred.value}, true, nil
}

// Higher returns the smallest entry whose key is strictly > key.
func (l *SkipList[K, V]) Higher(key K) (Entry[K, V], bool, error) {
	if isNilKey(key) {
		return Entry[K, V]{}, false, ErrNilKey
	}
	_, next := l.find(key)
	if next != nil && l.compare(next.key, key) == 0 {
		next = next.forwards[0]
	}
	if next == nil {
		return Entry[K, V]{}, false, nil
	}
	return Entry[K, V]{Key: next.key, Value: next.value}, true, nil
}

// Lower returns the largest entry whose key is strictly < key.
func (l *SkipList[K, V]) Lower(key K) (Entry[K, V], bool, error) {
	if isNilKey(key) {
		return Entry[K, V]{}, false, ErrNilKey
	}
	update, _ := l.find(key)
	pred := update[0]
	if pred == l.head {
		return Entry[K, V]{}, false, nil
	}
	return Entry[K, V]{Key: pred.key, Value: pred.value}, true, nil
}

// Sublist returns every entry with start <= key <= end, in ascending order.
// The result is a snapshot; later mutation of the list does not affect it.
// A start that orders after end yields ErrInvalidRange.
func (l *SkipList[K, V]) Sublist(start, end K) ([]Entry[K, V], error) {
	if isNilKey(start) || isNilKey(end) {
		return nil, ErrNilKey
	}
	if l.compare(start, end) > 0 {
		return nil, ErrInvalidRange
	}

	var entries []Entry[K, V]
	_, n := l.find(start)
	for n != nil && l.compare(n.key, end) <= 0 {
		entries = append(entries, Entry[K, V]{Key: n.key, Value: n.value})
		n = n.forwards[0]
	}
	return entries, nil
}

// Entries returns all entries in ascending key order.
func (l *SkipList[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, l.length)
	for n := l.head.forwards[0]; n != nil; n = n.forwards[0] {
		entries = append(entries, Entry[K, V]{Key: n.key, Value: n.value})
	}
	return entries
}

// Keys returns all keys in ascending order.
func (l *SkipList[K, V]) Keys() []K {
	keys := make([]K, 0, l.length)
	for n := l.head.forwards[0]; n != nil; n = n.forwards[0] {
		keys = append(keys, n.key)
	}
	return keys
}

// Values returns all values in ascending key order.
func (l *SkipList[K, V]) Values() []V {
	values := make([]V, 0, l.length)
	for n := l.head.forwards[0]; n != nil; n = n.forwards[0] {
		values = append(values, n.value)
	}
	return values
}

// Len returns the number of entries.
func (l *SkipList[K, V]) Len() int {
	return l.length
}

// Comparator returns the comparator the list was built with.
func (l *SkipList[K, V]) Comparator() Compare[K] {
	return l.compare
}

// Clear removes all entries, resetting the list to its initial state.
func (l *SkipList[K, V]) Clear() {
	l.head = newHead[K, V](l.cfg.MaxLevel)
	l.level = 1
	l.length = 0
}

// LevelStats returns the number of nodes present on each active level,
// lowest first. Level 0 holds every node; each higher level thins out by
// roughly the promotion probability.
func (l *SkipList[K, V]) LevelStats() []int {
	counts := make([]int, l.level)
	for i := 0; i < l.level; i++ {
		for n := l.head.forwards[i]; n != nil; n = n.forwards[i] {
			counts[i]++
		}
	}
	return counts
}
