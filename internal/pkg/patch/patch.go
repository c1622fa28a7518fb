// Package patch resolves partial updates where an omitted field keeps its stored value.
package patch

// Coalesce returns *ptr when the field was supplied, otherwise current.
func Coalesce[T any](ptr *T, current T) T {
	if ptr != nil {
		return *ptr
	}
	return current
}

// CoalesceSlice treats an empty slice as omitted.
func CoalesceSlice[S ~[]E, E any](next, current S) S {
	if len(next) > 0 {
		return next
	}
	return current
}
