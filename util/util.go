package util

// Filter returns a new slice containing only elements that satisfy the predicate.
func Filter[T any](slice []T, predicate func(T) bool) []T {
	result := make([]T, 0)
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms a slice using the given function.
func Map[T any, U any](slice []T, transform func(T) U) []U {
	result := make([]U, len(slice))
	for i, item := range slice {
		result[i] = transform(item)
	}
	return result
}

// GroupBy partitions a slice into a map keyed by the given function.
func GroupBy[T any, K comparable](slice []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range slice {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// CountBy counts slice elements per key.
func CountBy[T any, K comparable](slice []T, key func(T) K) map[K]int {
	counts := make(map[K]int)
	for _, item := range slice {
		counts[key(item)]++
	}
	return counts
}
