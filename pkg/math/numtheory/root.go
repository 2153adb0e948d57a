package numtheory

import "fmt"

// HasPrimitiveRoot returns true if the unit group modulo n is cyclic, that is
// if n is 1, 2, 4, pᵏ or 2⋅pᵏ for an odd prime p. Equivalently φ(n) = λ(n).
func HasPrimitiveRoot(n uint64) bool {
	if n == 0 {
		return false
	}
	return cyclic(Factorize(n))
}

func cyclic(f Factorization) bool {
	switch len(f) {
	case 0:
		return true
	case 1:
		// 2, 4 or an odd prime power
		return f[0].P != 2 || f[0].K <= 2
	case 2:
		// 2⋅pᵏ
		return f[0].P == 2 && f[0].K == 1
	default:
		return false
	}
}

// IsPrimitiveRoot returns true if the multiplicative order of g modulo n is
// φ(n). It is false whenever g is not coprime to n or n has no primitive root.
func IsPrimitiveRoot(g, n uint64) bool {
	if n == 0 || n > maxModulus || !IsCoprime(g, n) {
		return false
	}
	f := Factorize(n)
	if !cyclic(f) {
		return false
	}
	phi := totientOf(f)
	return isGenerator(g, n, phi, primeFactors(phi))
}

// isGenerator tests gᵠ/q ≠ 1 for every prime q dividing φ = φ(n), which for
// cyclic n is equivalent to ord(g) = φ.
func isGenerator(g, n, phi uint64, phiPrimes []uint64) bool {
	if n <= 2 {
		return g%n == 1%n
	}
	for _, q := range phiPrimes {
		if modExp(g, phi/q, n) == 1 {
			return false
		}
	}
	return true
}

// FindPrimitiveRoot returns the smallest primitive root g ∈ [2, n-1] of n.
// The moduli 1 and 2 have the single unit 1, which is returned as their root.
//
// ErrNoPrimitiveRoot is returned if n is not 1, 2, 4, pᵏ or 2⋅pᵏ.
func FindPrimitiveRoot(n uint64) (uint64, error) {
	if err := checkModulus("FindPrimitiveRoot", n); err != nil {
		return 0, err
	}
	return findPrimitiveRoot(n, Factorize(n))
}

func findPrimitiveRoot(n uint64, f Factorization) (uint64, error) {
	if !cyclic(f) {
		return 0, fmt.Errorf("numtheory.FindPrimitiveRoot: n = %d: %w", n, ErrNoPrimitiveRoot)
	}
	if n <= 2 {
		return 1, nil
	}
	phi := totientOf(f)
	phiPrimes := primeFactors(phi)
	for g := uint64(2); g < n; g++ {
		if !IsCoprime(g, n) {
			continue
		}
		if isGenerator(g, n, phi, phiPrimes) {
			return g, nil
		}
	}
	// unreachable for cyclic n
	return 0, fmt.Errorf("numtheory.FindPrimitiveRoot: n = %d: %w", n, ErrNoPrimitiveRoot)
}

// PrimitiveRoots returns every primitive root of n in increasing order.
// It is empty when n has none; n ∈ {1, 2} yields [1].
func PrimitiveRoots(n uint64) []uint64 {
	if n == 0 || n > maxModulus {
		return nil
	}
	f := Factorize(n)
	if !cyclic(f) {
		return nil
	}
	if n <= 2 {
		return []uint64{1}
	}
	phi := totientOf(f)
	phiPrimes := primeFactors(phi)
	roots := make([]uint64, 0, Totient(phi))
	for g := uint64(2); g < n; g++ {
		if IsCoprime(g, n) && isGenerator(g, n, phi, phiPrimes) {
			roots = append(roots, g)
		}
	}
	return roots
}

// NumPrimitiveRoots returns the number of primitive roots of n, φ(φ(n)), or 0
// when n has none.
func NumPrimitiveRoots(n uint64) uint64 {
	if !HasPrimitiveRoot(n) {
		return 0
	}
	return Totient(Totient(n))
}
