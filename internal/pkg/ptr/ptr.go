package ptr

// Of returns a pointer to v.
func Of[T any](v T) *T {
	return &v
}

// Deref returns the pointed value, or the zero value for nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
