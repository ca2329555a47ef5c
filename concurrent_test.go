package skiplist

import (
	"math/rand"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConcurrentIntList(t *testing.T) *ConcurrentSkipList[int, int] {
	t.Helper()
	base, err := New[int, int]()
	require.NoError(t, err)
	return NewConcurrent(base)
}

func TestNewConcurrentCopiesEntries(t *testing.T) {
	t.Parallel()
	base := newIntList(t)
	for _, k := range []int{3, 1, 2} {
		require.NoError(t, base.Put(k, "v"))
	}

	conc := NewConcurrent(base)
	assert.Equal(t, base.Entries(), conc.Entries())
	assert.Equal(t, 3, conc.Len())
}

func TestConcurrentCopyIsolation(t *testing.T) {
	t.Parallel()
	base := newIntList(t)
	require.NoError(t, base.Put(1, "original"))
	require.NoError(t, base.Put(2, "original"))

	conc := NewConcurrent(base)

	// Mutating the source is invisible in the copy.
	require.NoError(t, base.Put(1, "changed"))
	_, _, err := base.Remove(2)
	require.NoError(t, err)

	got, found, err := conc.Get(1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "original", got)
	has, err := conc.Contains(2)
	require.NoError(t, err)
	assert.True(t, has)

	// And vice versa.
	require.NoError(t, conc.Put(3, "copy-only"))
	has, err = base.Contains(3)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestConcurrentMixedOperationsStorm(t *testing.T) {
	seed := time.Now().UnixNano()
	t.Logf("test seed=%d", seed)

	c := newConcurrentIntList(t)

	const keySpace = 128
	const operationsPerGoroutine = 2000
	goroutines := 2 * runtime.GOMAXPROCS(0)
	if goroutines < 4 {
		goroutines = 4
	}

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(s int64) {
			defer wg.Done()
			r := rand.New(rand.NewSource(s))
			for i := 0; i < operationsPerGoroutine; i++ {
				key := r.Intn(keySpace)
				switch r.Intn(5) {
				case 0:
					_ = c.Put(key, r.Intn(1<<16))
				case 1:
					_, _, _ = c.Remove(key)
				case 2:
					_, _, _ = c.Get(key)
				case 3:
					_, _ = c.Sublist(0, keySpace)
				case 4:
					c.Len()
				}
			}
		}(seed + int64(g))
	}
	wg.Wait()

	// The structure must come out intact.
	assertInvariants(t, c.list)
	assert.Equal(t, c.Len(), len(c.Entries()))
}

func TestConcurrentSublistNeverTorn(t *testing.T) {
	c := newConcurrentIntList(t)

	// Writers flip the whole key range between present and absent; every
	// snapshot must observe entries in strict order with consistent
	// values, never a half-applied batch out of order.
	const n = 64
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for round := 0; ; round++ {
			select {
			case <-stop:
				return
			default:
			}
			for k := 0; k < n; k++ {
				_ = c.Put(k, round)
			}
			for k := 0; k < n; k++ {
				_, _, _ = c.Remove(k)
			}
		}
	}()

	for i := 0; i < 500; i++ {
		entries, err := c.Sublist(0, n)
		require.NoError(t, err)
		for j := 1; j < len(entries); j++ {
			require.Less(t, entries[j-1].Key, entries[j].Key)
		}
	}
	close(stop)
	wg.Wait()
}

func TestConcurrentClearAndReuse(t *testing.T) {
	t.Parallel()
	c := newConcurrentIntList(t)
	require.NoError(t, c.Put(1, 1))
	c.Clear()
	assert.Equal(t, 0, c.Len())
	require.NoError(t, c.Put(2, 2))
	got, found, err := c.Get(2)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, got)
}

func TestConcurrentOrderStatistics(t *testing.T) {
	t.Parallel()
	c := newConcurrentIntList(t)
	for _, k := range []int{5, 1, 3} {
		require.NoError(t, c.Put(k, k*10))
	}

	min, ok := c.Min()
	require.True(t, ok)
	assert.Equal(t, 1, min.Key)
	max, ok := c.Max()
	require.True(t, ok)
	assert.Equal(t, 5, max.Key)

	ceiling, ok, err := c.Ceiling(2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, ceiling.Key)
	floor, ok, err := c.Floor(2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, floor.Key)
	higher, ok, err := c.Higher(3)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 5, higher.Key)
	lower, ok, err := c.Lower(3)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, lower.Key)
}

func TestConcurrentKeepsComparator(t *testing.T) {
	t.Parallel()
	natural, err := NaturalOrder[int]()
	require.NoError(t, err)
	base, err := NewWith[int, int](Reverse(natural))
	require.NoError(t, err)
	for _, k := range []int{1, 2, 3} {
		require.NoError(t, base.Put(k, k))
	}

	conc := NewConcurrent(base)
	assert.Equal(t, []int{3, 2, 1}, conc.Keys())
}
