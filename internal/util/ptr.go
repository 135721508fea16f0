package util

// ToPtr returns a pointer to a copy of the value.
func ToPtr[T any](v T) *T {
	return &v
}

// ValOrDefault dereferences the pointer, or returns the fallback if the pointer is nil.
func ValOrDefault[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}

	return *p
}

// Must panics if err is non-nil, otherwise returns the value.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}
