package chainmap

// Replace is a [CollisionFunc] that keeps the newly inserted value.
func Replace[V any](old, new V) V {
	return new
}

// Keep is a [CollisionFunc] that keeps the value already stored.
func Keep[V any](old, new V) V {
	return old
}

// Number is implemented by the types that [Add] works with.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Add is a [CollisionFunc] that stores the sum of
// the old and new values.
func Add[V Number](old, new V) V {
	return old + new
}
