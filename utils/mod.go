package utils

// FindIndex returns the index of item in slice, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Next returns the element following item, wrapping around. It panics when
// item is not in slice.
func Next[T comparable](slice []T, item T) T {
	i := FindIndex(slice, item)
	if i < 0 {
		panic("item not found")
	}
	return slice[(i+1)%len(slice)]
}
