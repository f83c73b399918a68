package domain

// CheckedAdd fails on overflow instead of wrapping.
func CheckedAdd(a, b uint64, counter string) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, OverflowError{Counter: counter}
	}
	return sum, nil
}

// CheckedSub fails on a would-be-negative result instead of wrapping.
func CheckedSub(a, b uint64, counter string) (uint64, error) {
	if b > a {
		return 0, UnderflowError{Counter: counter}
	}
	return a - b, nil
}
