package strhash_test

import (
	"hash/maphash"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/chainmap/strhash"
)

func TestAdditive(t *testing.T) {
	qt.Assert(t, qt.Equals(strhash.Additive(""), 0))
	qt.Assert(t, qt.Equals(strhash.Additive("a"), 'a'))
	qt.Assert(t, qt.Equals(strhash.Additive("ab"), 'a'+'b'))

	// Anagrams collide.
	qt.Assert(t, qt.Equals(strhash.Additive("listen"), strhash.Additive("silent")))

	// Bytes are summed, not runes.
	qt.Assert(t, qt.Equals(strhash.Additive("é"), 0xc3+0xa9))
}

func TestFNV1a(t *testing.T) {
	// Reference values for 64-bit FNV-1a.
	qt.Assert(t, qt.Equals(strhash.FNV1a(""), 0xcbf29ce484222325))
	qt.Assert(t, qt.Equals(strhash.FNV1a("a"), 0xaf63dc4c8601ec8c))
	qt.Assert(t, qt.Not(qt.Equals(strhash.FNV1a("listen"), strhash.FNV1a("silent"))))
}

func TestDeterministic(t *testing.T) {
	keys := []string{"", "a", "hello", "hello world", "\x00\xff"}
	funcs := map[string]strhash.Func{
		"additive": strhash.Additive,
		"fnv1a":    strhash.FNV1a,
		"xxhash":   strhash.XXHash,
		"seeded":   strhash.Seeded(),
		"maphash":  strhash.Maphash(maphash.MakeSeed()),
	}
	for name, f := range funcs {
		t.Run(name, func(t *testing.T) {
			for _, k := range keys {
				// Build an equal key with a different backing array.
				k2 := string([]byte(k))
				qt.Assert(t, qt.Equals(f(k2), f(k)), qt.Commentf("key %q", k))
			}
		})
	}
}

func TestMaphashSameSeed(t *testing.T) {
	seed := maphash.MakeSeed()
	f, g := strhash.Maphash(seed), strhash.Maphash(seed)
	qt.Assert(t, qt.Equals(f("key"), g("key")))
}

func TestLookup(t *testing.T) {
	for _, name := range strhash.Names() {
		f, err := strhash.Lookup(name)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.IsTrue(f != nil))
	}
	f, err := strhash.Lookup("xxhash")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(f("abc"), strhash.XXHash("abc")))

	_, err = strhash.Lookup("md5")
	qt.Assert(t, qt.ErrorIs(err, strhash.ErrUnknown))
	qt.Assert(t, qt.ErrorMatches(err, `strhash: "md5": unknown hash function`))
}

func TestNames(t *testing.T) {
	qt.Assert(t, qt.DeepEquals(strhash.Names(), []string{"additive", "fnv1a", "seeded", "xxhash"}))
}
