package util

// BoolToInt converts a boolean to 0 or 1 for SQLite columns.
func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func IntToBool(i int) bool {
	return i != 0
}

// Clamp constrains a value to [lo, hi].
func Clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// Wrap moves value by delta around a ring of n slots.
func Wrap(value, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return ((value+delta)%n + n) % n
}
