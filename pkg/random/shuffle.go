package random

// Shuffle permutes items in place using the Fisher-Yates algorithm.
// Nil and single-element slices are left untouched.
func Shuffle[T any](src *Source, items []T) {
	if len(items) < 2 {
		return
	}
	src.mu.Lock()
	defer src.mu.Unlock()
	for i := len(items) - 1; i >= 1; i-- {
		j := src.rnd.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Pick returns a random element of items. It reports false for an empty slice.
func Pick[T any](src *Source, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[src.Intn(len(items))], true
}
