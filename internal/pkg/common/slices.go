package common

func Map[I, O any](p func(I) O, xs []I) []O {
	result := make([]O, len(xs))
	for i, x := range xs {
		result[i] = p(x)
	}
	return result
}

// Find returns the first element of xs satisfying p.
func Find[T any](p func(T) bool, xs []T) (T, bool) {
	for _, x := range xs {
		if p(x) {
			return x, true
		}
	}

	var x T
	return x, false
}

// MapError maps xs through p, stopping at the first error (the pass's
// error propagation is strictly sequential, per spec.md §5).
func MapError[I, O any](p func(I) (O, error), xs []I) ([]O, error) {
	result := make([]O, len(xs))
	for i, x := range xs {
		o, err := p(x)
		if err != nil {
			return nil, err
		}
		result[i] = o
	}
	return result, nil
}

// Contains reports whether x appears in xs, using comparable equality.
func Contains[T comparable](xs []T, x T) bool {
	for _, y := range xs {
		if x == y {
			return true
		}
	}
	return false
}
