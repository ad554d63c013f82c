package chainmap

import (
	"errors"

	"github.com/rogpeppe/chainmap/strhash"
)

// ErrNilHash is returned by New when [WithHash] is given a nil function.
var ErrNilHash = errors.New("nil hash function")

// Option configures a table created by [New].
type Option func(*options) error

type options struct {
	hash strhash.Func
}

// WithHash sets the function used to choose a key's bucket.
// Any deterministic function will do; see package strhash
// for some choices.
func WithHash(hash strhash.Func) Option {
	return func(o *options) error {
		if hash == nil {
			return ErrNilHash
		}
		o.hash = hash
		return nil
	}
}
