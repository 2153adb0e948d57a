package numtheory

import "fmt"

// GCD returns the greatest common divisor of a and b.
// gcd(0, 0) is undefined and returns ErrInvalidArgument.
func GCD(a, b uint64) (uint64, error) {
	if a == 0 && b == 0 {
		return 0, fmt.Errorf("numtheory.GCD: gcd(0, 0): %w", ErrInvalidArgument)
	}
	return gcd(a, b), nil
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b, or 0 if either is 0.
func LCM(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	return a / gcd(a, b) * b
}

// IsCoprime returns true if gcd(a, n) = 1.
func IsCoprime(a, n uint64) bool {
	return gcd(a, n) == 1
}
