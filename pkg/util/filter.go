package util

// InPlaceFilter retains the elements matching the predicate, reusing the
// slice's backing array.
func InPlaceFilter[T any](s *[]T, p func(T) bool) {
	kept := (*s)[:0]

	for _, element := range *s {
		if p(element) {
			kept = append(kept, element)
		}
	}

	*s = kept
}
