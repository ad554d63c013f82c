// Package chainmap implements a hash table from string keys to
// arbitrary values with a fixed number of buckets and
// separate chaining.
//
// The bucket count is chosen when the table is created and never
// changes: there is no rehashing. Keys that hash to the same bucket
// are kept in a singly linked chain, newest first.
//
// What happens when a key is inserted twice is decided by the caller,
// who passes a [CollisionFunc] to [Table.Insert]. Similarly,
// [Table.Remove] and [Table.Destroy] take a [DestroyFunc] that
// is called with each value that the table lets go of.
//
// A Table is not safe for concurrent use.
//
// Calling any method on a nil *Table or on a table that has been
// destroyed panics with an error that wraps [ErrNilTable] or
// [ErrDestroyed] respectively.
package chainmap

import (
	"errors"
	"fmt"
	"iter"

	"github.com/rogpeppe/chainmap/strhash"
)

var (
	// ErrNilTable is wrapped by the panic value when
	// a method is called on a nil *Table.
	ErrNilTable = errors.New("nil table")

	// ErrDestroyed is wrapped by the panic value when
	// a method is called on a destroyed table.
	ErrDestroyed = errors.New("table has been destroyed")

	// ErrBucketCount is returned by New when the
	// bucket count is not positive.
	ErrBucketCount = errors.New("bucket count must be at least 1")
)

// CollisionFunc decides which value survives when a key that is already
// present is inserted again. It is called with the stored value and the
// value being inserted, and the value it returns is stored.
// It must not use the table it was called from.
type CollisionFunc[V any] func(old, new V) V

// DestroyFunc releases whatever resources are held by a value
// that is being removed from a table.
type DestroyFunc[V any] func(v V)

// Table is a fixed-size hash table from string keys to values of type V.
type Table[V any] struct {
	// buckets holds the head of each chain.
	// Its length is fixed at creation; it is nil once
	// the table has been destroyed.
	buckets []*entry[V]
	hash    strhash.Func
	length  int
}

// entry is an association in a bucket chain.
type entry[V any] struct {
	key  string
	val  V
	next *entry[V]
}

// New returns a new empty table with the given number of buckets.
// By default keys are hashed with [strhash.Additive].
func New[V any](bucketCount int, opts ...Option) (*Table[V], error) {
	if bucketCount < 1 {
		return nil, fmt.Errorf("chainmap: cannot make table with %d buckets: %w", bucketCount, ErrBucketCount)
	}
	o := options{
		hash: strhash.Additive,
	}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, fmt.Errorf("chainmap: %w", err)
		}
	}
	return &Table[V]{
		buckets: make([]*entry[V], bucketCount),
		hash:    o.hash,
	}, nil
}

// MustNew is like [New] but panics on error.
func MustNew[V any](bucketCount int, opts ...Option) *Table[V] {
	t, err := New[V](bucketCount, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// check panics if t cannot be used.
func (t *Table[V]) check(op string) {
	if t == nil {
		panic(fmt.Errorf("chainmap: %s: %w", op, ErrNilTable))
	}
	if t.buckets == nil {
		panic(fmt.Errorf("chainmap: %s: %w", op, ErrDestroyed))
	}
}

func (t *Table[V]) bucketOf(key string) int {
	return int(t.hash(key) % uint64(len(t.buckets)))
}

// BucketOf returns the index of the bucket that key belongs to.
func (t *Table[V]) BucketOf(key string) int {
	t.check("BucketOf")
	return t.bucketOf(key)
}

// Insert associates v with key.
//
// If key is not already present, a new entry is added and Insert
// returns true. Otherwise the stored value is replaced by
// resolve(stored, v), the originally inserted key is retained and
// Insert returns false. A nil resolve behaves like [Replace].
func (t *Table[V]) Insert(key string, v V, resolve CollisionFunc[V]) bool {
	t.check("Insert")
	b := t.bucketOf(key)
	for e := t.buckets[b]; e != nil; e = e.next {
		if e.key == key {
			if resolve == nil {
				e.val = v
			} else {
				e.val = resolve(e.val, v)
			}
			return false
		}
	}
	t.buckets[b] = &entry[V]{
		key:  key,
		val:  v,
		next: t.buckets[b],
	}
	t.length++
	return true
}

// Get returns the value stored for key and reports whether
// it was found. If it was not, the zero value is returned.
func (t *Table[V]) Get(key string) (V, bool) {
	t.check("Get")
	if e := t.find(key); e != nil {
		return e.val, true
	}
	return *new(V), false
}

// Contains reports whether key is present in the table.
func (t *Table[V]) Contains(key string) bool {
	t.check("Contains")
	return t.find(key) != nil
}

func (t *Table[V]) find(key string) *entry[V] {
	for e := t.buckets[t.bucketOf(key)]; e != nil; e = e.next {
		if e.key == key {
			return e
		}
	}
	return nil
}

// Remove removes the entry for key, if present, and reports whether
// it was found. If destroy is non-nil, it is called with the
// removed value before the entry is discarded.
//
// Removing a key that is not present leaves the table untouched.
func (t *Table[V]) Remove(key string, destroy DestroyFunc[V]) bool {
	t.check("Remove")
	b := t.bucketOf(key)
	var prev *entry[V]
	for e := t.buckets[b]; e != nil; prev, e = e, e.next {
		if e.key != key {
			continue
		}
		if destroy != nil {
			destroy(e.val)
		}
		if prev == nil {
			t.buckets[b] = e.next
		} else {
			prev.next = e.next
		}
		e.next = nil
		t.length--
		return true
	}
	return false
}

// Iterate calls visit for each entry in the table. Entries are
// visited in bucket order and, within a bucket, most recently
// inserted first, but callers should not rely on that.
//
// The table must not be changed while Iterate is running.
func (t *Table[V]) Iterate(visit func(key string, v V)) {
	t.check("Iterate")
	for _, head := range t.buckets {
		for e := head; e != nil; e = e.next {
			visit(e.key, e.val)
		}
	}
}

// All returns an iterator over (key, value) pairs in the same
// order as [Table.Iterate].
//
// The table must not be changed during the iteration.
func (t *Table[V]) All() iter.Seq2[string, V] {
	t.check("All")
	return func(yield func(string, V) bool) {
		t.check("All")
		for _, head := range t.buckets {
			for e := head; e != nil; e = e.next {
				if !yield(e.key, e.val) {
					return
				}
			}
		}
	}
}

// Keys returns an iterator over the keys in the table.
func (t *Table[V]) Keys() iter.Seq[string] {
	t.check("Keys")
	return func(yield func(string) bool) {
		t.check("Keys")
		for _, head := range t.buckets {
			for e := head; e != nil; e = e.next {
				if !yield(e.key) {
					return
				}
			}
		}
	}
}

// Values returns an iterator over the values in the table.
func (t *Table[V]) Values() iter.Seq[V] {
	t.check("Values")
	return func(yield func(V) bool) {
		t.check("Values")
		for _, head := range t.buckets {
			for e := head; e != nil; e = e.next {
				if !yield(e.val) {
					return
				}
			}
		}
	}
}

// Destroy removes every entry from the table, calling destroy (if
// non-nil) once with each stored value. After Destroy returns the
// table must not be used again.
func (t *Table[V]) Destroy(destroy DestroyFunc[V]) {
	t.check("Destroy")
	for i, head := range t.buckets {
		for e := head; e != nil; {
			next := e.next
			if destroy != nil {
				destroy(e.val)
			}
			e.next = nil
			e = next
		}
		t.buckets[i] = nil
	}
	t.buckets = nil
	t.length = 0
}

// Destroyed reports whether [Table.Destroy] has been called on t.
// It is the only method that may be called on a destroyed table.
func (t *Table[V]) Destroyed() bool {
	if t == nil {
		panic(fmt.Errorf("chainmap: Destroyed: %w", ErrNilTable))
	}
	return t.buckets == nil
}
