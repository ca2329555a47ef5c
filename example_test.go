package skiplist_test

import (
	"fmt"

	skiplist "github.com/dimits-exe/SkipLists"
)

func ExampleSkipList_Put() {
	list, _ := skiplist.New[int, string]()
	list.Put(2, "two")
	list.Put(1, "one")
	list.Put(2, "TWO")

	value, found, _ := list.Get(2)
	fmt.Println(list.Len(), value, found)
	// Output: 2 TWO true
}

func ExampleSkipList_Ceiling() {
	list, _ := skiplist.New[int, string]()
	list.Put(5, "a")
	list.Put(1, "b")
	list.Put(3, "c")

	entry, _, _ := list.Ceiling(2)
	fmt.Printf("%d:%s\n", entry.Key, entry.Value)
	// Output: 3:c
}

func ExampleSkipList_Sublist() {
	list, _ := skiplist.New[int, int]()
	for i := 1; i <= 10; i++ {
		list.Put(i, i*i)
	}

	entries, _ := list.Sublist(3, 5)
	for _, e := range entries {
		fmt.Printf("%d:%d ", e.Key, e.Value)
	}
	fmt.Println()
	// Output: 3:9 4:16 5:25
}

func ExampleNewConcurrent() {
	base, _ := skiplist.New[string, int]()
	base.Put("a", 1)

	safe := skiplist.NewConcurrent(base)
	base.Put("b", 2) // invisible in the copy

	fmt.Println(safe.Len())
	// Output: 1
}
