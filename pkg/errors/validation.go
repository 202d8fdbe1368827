package errors

// ValidateNonNegative checks that a named numeric parameter is >= 0.
// Formula constructors use it to reject sizes like a negative number of
// pigeons or a negative clause width before any clause is built.
func ValidateNonNegative(name string, value int) error {
	if value < 0 {
		return New(ErrCodeInvalidParameter, "%s must be non-negative, got %d", name, value)
	}
	return nil
}

// ValidatePositive checks that a named numeric parameter is >= 1.
func ValidatePositive(name string, value int) error {
	if value < 1 {
		return New(ErrCodeInvalidParameter, "%s must be positive, got %d", name, value)
	}
	return nil
}

// ValidateProbability checks that p is a probability in [0,1].
func ValidateProbability(name string, p float64) error {
	if p < 0 || p > 1 {
		return New(ErrCodeInvalidParameter, "%s must be in [0,1], got %g", name, p)
	}
	return nil
}

// ValidateRank checks a substitution rank. Every substitution needs at
// least one fresh variable per original variable.
func ValidateRank(rank int) error {
	if rank < 1 {
		return New(ErrCodeInvalidParameter, "substitution rank must be at least 1, got %d", rank)
	}
	return nil
}
