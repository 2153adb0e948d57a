package numtheory

import "errors"

var (
	// ErrInvalidArgument is returned for malformed numeric input, such as a zero
	// modulus or gcd(0, 0).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotCoprime is returned by order queries on a pair with gcd(a, n) ≠ 1.
	ErrNotCoprime = errors.New("not coprime")
	// ErrNoPrimitiveRoot is returned when the unit group modulo n is not cyclic.
	ErrNoPrimitiveRoot = errors.New("no primitive root exists")
)
