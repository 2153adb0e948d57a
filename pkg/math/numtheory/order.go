package numtheory

import (
	"fmt"

	"github.com/prdtools/prd/internal/params"
	"github.com/tuneinsight/lattigo/v6/ring"
)

const maxModulus = params.MaxModulus

func checkModulus(op string, n uint64) error {
	if n == 0 {
		return fmt.Errorf("numtheory.%s: modulus 0: %w", op, ErrInvalidArgument)
	}
	if n > maxModulus {
		return fmt.Errorf("numtheory.%s: modulus %d exceeds %d: %w", op, n, uint64(maxModulus), ErrInvalidArgument)
	}
	return nil
}

// modExp returns xᵉ (mod n) for n ≥ 2.
func modExp(x, e, n uint64) uint64 {
	return ring.ModExp(x%n, e, n)
}

// MultiplicativeOrder returns the smallest k ≥ 1 with aᵏ ≡ 1 (mod n).
//
// The order divides λ(n), so it is found by stripping prime factors from λ(n)
// while the power stays 1.
func MultiplicativeOrder(a, n uint64) (uint64, error) {
	if err := checkModulus("MultiplicativeOrder", n); err != nil {
		return 0, err
	}
	if !IsCoprime(a, n) {
		return 0, fmt.Errorf("numtheory.MultiplicativeOrder: gcd(%d, %d) = %d: %w", a, n, gcd(a, n), ErrNotCoprime)
	}
	if n == 1 {
		return 1, nil
	}
	return orderWithExponent(a, n, Carmichael(n)), nil
}

// orderWithExponent returns the order of a modulo n, given some multiple e of it.
func orderWithExponent(a, n, e uint64) uint64 {
	k := e
	for _, q := range primeFactors(e) {
		for k%q == 0 && modExp(a, k/q, n) == 1 {
			k /= q
		}
	}
	return k
}
