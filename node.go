package skiplist

// node holds one key/value pair and its tower of forward links. forwards[i]
// is the next node on level i; the slice length is the node's height, chosen
// once at creation.
type node[K, V any] struct {
	key      K
	value    V
	forwards []*node[K, V]
}

func newNode[K, V any](key K, value V, height int) *node[K, V] {
	return &node[K, V]{
		key:      key,
		value:    value,
		forwards: make([]*node[K, V], height),
	}
}

// newHead returns the head sentinel. It carries no entry, spans every
// configured level and is never removed.
func newHead[K, V any](maxLevel int) *node[K, V] {
	return &node[K, V]{forwards: make([]*node[K, V], maxLevel)}
}
