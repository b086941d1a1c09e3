package utils

type ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsInRange checks if a value is within [lo, hi], both inclusive.
func IsInRange[T ordered](lo T, value T, hi T) bool {
	return lo <= value && value <= hi
}
