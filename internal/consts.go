package internal

const (
	// Epsilon is the tolerance for coincidence of two values
	Epsilon = 1e-10

	// Tolerance is the geometric tolerance for distance comparisons
	Tolerance = 1e-6
)
