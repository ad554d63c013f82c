package chainmap

import "fmt"

// Stats describes how entries are spread across a table's buckets.
type Stats struct {
	// Buckets holds the number of buckets.
	Buckets int
	// Entries holds the number of stored entries.
	Entries int
	// Empty holds the number of buckets with no entries.
	Empty int
	// LongestChain holds the length of the longest chain.
	LongestChain int
	// LoadFactor holds Entries / Buckets.
	LoadFactor float64
}

func (s Stats) String() string {
	return fmt.Sprintf("%d entries in %d buckets (%d empty, longest chain %d, load %.2f)",
		s.Entries, s.Buckets, s.Empty, s.LongestChain, s.LoadFactor)
}

// Len returns the number of entries in the table.
func (t *Table[V]) Len() int {
	t.check("Len")
	return t.length
}

// BucketCount returns the number of buckets, as passed to [New].
func (t *Table[V]) BucketCount() int {
	t.check("BucketCount")
	return len(t.buckets)
}

// BucketLen returns the length of the chain in bucket i.
// It panics if i is out of range.
func (t *Table[V]) BucketLen(i int) int {
	t.check("BucketLen")
	if i < 0 || i >= len(t.buckets) {
		panic(fmt.Errorf("chainmap: BucketLen: bucket %d out of range [0, %d)", i, len(t.buckets)))
	}
	return chainLen(t.buckets[i])
}

// Stats returns statistics on the current shape of the table.
func (t *Table[V]) Stats() Stats {
	t.check("Stats")
	s := Stats{
		Buckets: len(t.buckets),
		Entries: t.length,
	}
	for _, head := range t.buckets {
		n := chainLen(head)
		if n == 0 {
			s.Empty++
		}
		s.LongestChain = max(s.LongestChain, n)
	}
	s.LoadFactor = float64(s.Entries) / float64(s.Buckets)
	return s
}

func chainLen[V any](e *entry[V]) int {
	n := 0
	for ; e != nil; e = e.next {
		n++
	}
	return n
}
