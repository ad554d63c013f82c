// Package strhash provides deterministic string hash functions
// for use as the bucket selector of a chainmap.Table.
//
// None of the functions here are cryptographically strong; they only
// need to spread keys across buckets. Equal keys always hash equal.
package strhash

import (
	"errors"
	"fmt"
	"hash/maphash"
	"slices"

	"github.com/cespare/xxhash/v2"
	dmaphash "github.com/dolthub/maphash"
)

// Func maps a key to an unbounded hash value. The caller reduces
// it modulo the bucket count.
type Func func(key string) uint64

// ErrUnknown is returned by Lookup for a name it does not recognise.
var ErrUnknown = errors.New("unknown hash function")

// Additive returns the sum of the byte values of key.
// The empty key hashes to zero and anagrams collide.
func Additive(key string) uint64 {
	var sum uint64
	for i := 0; i < len(key); i++ {
		sum += uint64(key[i])
	}
	return sum
}

const (
	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

// FNV1a returns the 64-bit FNV-1a hash of key.
func FNV1a(key string) uint64 {
	h := uint64(offset64)
	for i := 0; i < len(key); i++ {
		h ^= uint64(key[i])
		h *= prime64
	}
	return h
}

// XXHash returns the 64-bit xxHash of key.
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Seeded returns a hash function with a freshly chosen random seed.
// The result is stable for the lifetime of the returned Func but
// differs between calls to Seeded.
func Seeded() Func {
	h := dmaphash.NewHasher[string]()
	return h.Hash
}

// Maphash returns a hash function that uses [maphash.String]
// with the given seed.
func Maphash(seed maphash.Seed) Func {
	return func(key string) uint64 {
		return maphash.String(seed, key)
	}
}

var byName = map[string]func() Func{
	"additive": func() Func { return Additive },
	"fnv1a":    func() Func { return FNV1a },
	"xxhash":   func() Func { return XXHash },
	"seeded":   Seeded,
}

// Lookup returns the hash function registered under name.
func Lookup(name string) (Func, error) {
	mk, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("strhash: %q: %w", name, ErrUnknown)
	}
	return mk(), nil
}

// Names returns the names accepted by Lookup in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
