package vars

// FirstNonZero returns the first value that is not the zero value of T.
// Used to layer a command line flag over config file values.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}
