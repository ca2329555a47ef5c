package skiplist

// Iterator provides a forward-only view over the list. It starts positioned
// before the first element. Iterators share the base list's synchronization
// contract: do not mutate the list from another goroutine while iterating.
type Iterator[K, V any] struct {
	list    *SkipList[K, V]
	current *node[K, V]
	valid   bool
}

// Iterator returns a new iterator positioned before the first element.
func (l *SkipList[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{list: l}
}

// Valid reports whether the iterator currently points at an element.
func (it *Iterator[K, V]) Valid() bool {
	return it != nil && it.valid
}

// Key returns the key at the iterator's current position. It should only be
// called when Valid reports true.
func (it *Iterator[K, V]) Key() K {
	if !it.Valid() {
		var zero K
		return zero
	}
	return it.current.key
}

// Value returns the value at the iterator's current position. It should only
// be called when Valid reports true.
func (it *Iterator[K, V]) Value() V {
	if !it.Valid() {
		var zero V
		return zero
	}
	return it.current.value
}

// Next advances to the next element and reports whether it moved. If the
// iterator was not valid prior to the call, it advances to the first element.
func (it *Iterator[K, V]) Next() bool {
	if it == nil || it.list == nil {
		return false
	}
	pos := it.current
	if !it.valid {
		pos = it.list.head
	}
	next := pos.forwards[0]
	if next == nil {
		it.current = nil
		it.valid = false
		return false
	}
	it.current = next
	it.valid = true
	return true
}

// SeekGE positions the iterator at the first element whose key is greater
// than or equal to key, reporting whether such an element exists.
func (it *Iterator[K, V]) SeekGE(key K) bool {
	if it == nil || it.list == nil || isNilKey(key) {
		return false
	}
	_, next := it.list.find(key)
	if next == nil {
		it.current = nil
		it.valid = false
		return false
	}
	it.current = next
	it.valid = true
	return true
}
