package chainmap_test

import (
	"fmt"
	"slices"

	"github.com/rogpeppe/chainmap"
	"github.com/rogpeppe/chainmap/strhash"
)

// This example counts words, merging duplicate
// inserts by adding their counts.
func Example() {
	t, err := chainmap.New[int](4)
	if err != nil {
		panic(err)
	}
	for _, w := range []string{"x", "y", "x", "z", "x"} {
		t.Insert(w, 1, chainmap.Add[int])
	}
	for _, w := range []string{"x", "y", "w"} {
		n, ok := t.Get(w)
		fmt.Println(w, n, ok)
	}
	t.Destroy(nil)
	// Output:
	// x 3 true
	// y 1 true
	// w 0 false
}

// This example shows a DestroyFunc releasing the
// values the table lets go of.
func ExampleTable_Remove() {
	t := chainmap.MustNew[[]byte](8, chainmap.WithHash(strhash.FNV1a))
	t.Insert("a", make([]byte, 10), nil)
	t.Insert("b", make([]byte, 20), nil)

	release := func(buf []byte) {
		fmt.Println("released", len(buf), "bytes")
	}
	fmt.Println(t.Remove("a", release))
	fmt.Println(t.Remove("a", release))
	t.Destroy(release)
	// Output:
	// released 10 bytes
	// true
	// false
	// released 20 bytes
}

func ExampleTable_All() {
	t := chainmap.MustNew[string](16)
	t.Insert("go", "gopher", nil)
	t.Insert("c", "cee", nil)
	t.Insert("go", "golang", chainmap.Keep[string])

	var lines []string
	for k, v := range t.All() {
		lines = append(lines, k+"="+v)
	}
	slices.Sort(lines)
	fmt.Println(lines)
	// Output:
	// [c=cee go=gopher]
}
