package numtheory

// Totient computes Euler's totient function φ(n), the number of integers in
// [1, n] coprime to n. By convention φ(n) = 1 for n ≤ 1.
func Totient(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	return totientOf(Factorize(n))
}

func totientOf(f Factorization) uint64 {
	phi := uint64(1)
	for _, pp := range f {
		// φ(pᵏ) = pᵏ⁻¹⋅(p - 1)
		phi *= pp.P - 1
		for i := 1; i < pp.K; i++ {
			phi *= pp.P
		}
	}
	return phi
}

// Carmichael computes the Carmichael function λ(n), the smallest m such that
// aᵐ ≡ 1 (mod n) for every a coprime to n. λ(n) = 1 for n ≤ 1.
func Carmichael(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	return carmichaelOf(Factorize(n))
}

func carmichaelOf(f Factorization) uint64 {
	lambda := uint64(1)
	for _, pp := range f {
		var l uint64
		switch {
		case pp.P == 2 && pp.K <= 2:
			// λ(2) = 1, λ(4) = 2
			l = uint64(1) << (pp.K - 1)
		case pp.P == 2:
			// λ(2ᵏ) = 2ᵏ⁻²
			l = uint64(1) << (pp.K - 2)
		default:
			l = totientOf(Factorization{pp})
		}
		lambda = LCM(lambda, l)
	}
	return lambda
}
