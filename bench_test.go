package skiplist

import (
	"math/rand"
	"testing"
)

const benchKeySpace = 1 << 16

func benchList(b *testing.B, prefill int) *SkipList[int, int] {
	b.Helper()
	list, err := New[int, int](WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	r := rand.New(rand.NewSource(1))
	for i := 0; i < prefill; i++ {
		if err := list.Put(r.Intn(benchKeySpace), i); err != nil {
			b.Fatal(err)
		}
	}
	return list
}

func BenchmarkPut(b *testing.B) {
	list := benchList(b, 0)
	r := rand.New(rand.NewSource(2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = list.Put(r.Intn(benchKeySpace), i)
	}
}

func BenchmarkGet(b *testing.B) {
	list := benchList(b, benchKeySpace/2)
	r := rand.New(rand.NewSource(2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = list.Get(r.Intn(benchKeySpace))
	}
}

func BenchmarkRemovePut(b *testing.B) {
	list := benchList(b, benchKeySpace/2)
	r := rand.New(rand.NewSource(2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := r.Intn(benchKeySpace)
		if i%2 == 0 {
			_, _, _ = list.Remove(key)
		} else {
			_ = list.Put(key, i)
		}
	}
}

func BenchmarkCeiling(b *testing.B) {
	list := benchList(b, benchKeySpace/2)
	r := rand.New(rand.NewSource(2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = list.Ceiling(r.Intn(benchKeySpace))
	}
}

func BenchmarkConcurrentGet(b *testing.B) {
	base := benchList(b, benchKeySpace/2)
	c := NewConcurrent(base)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		r := rand.New(rand.NewSource(3))
		for pb.Next() {
			_, _, _ = c.Get(r.Intn(benchKeySpace))
		}
	})
}
