// Package growth implements the capacity policy shared by the growable
// containers: start at InitialCapacity, then double. Containers shrink only
// when asked to.
package growth

// InitialCapacity is the capacity allocated by the first growth step.
const InitialCapacity = 16

// Next returns the capacity that follows capa.
func Next(capa int) int {
	if capa <= 0 {
		return InitialCapacity
	}
	return capa * 2
}

// Grow returns s with its capacity raised by one policy step when it is full.
// Length and contents are preserved. A slice with spare capacity is returned
// unchanged.
func Grow[T any](s []T) []T {
	if len(s) < cap(s) {
		return s
	}
	grown := make([]T, len(s), Next(cap(s)))
	copy(grown, s)
	return grown
}

// Append appends v to s, growing by the policy instead of the runtime's
// append heuristics.
func Append[T any](s []T, v T) []T {
	s = Grow(s)
	return append(s, v)
}

// ShrinkToFit returns s reallocated so that cap equals len.
// A slice that is already exact is returned unchanged.
func ShrinkToFit[T any](s []T) []T {
	if len(s) == cap(s) {
		return s
	}
	if len(s) == 0 {
		return nil
	}
	exact := make([]T, len(s))
	copy(exact, s)
	return exact
}
