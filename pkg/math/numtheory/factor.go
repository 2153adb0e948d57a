package numtheory

import (
	"math/big"
	"sort"

	"github.com/prdtools/prd/internal/params"
	"github.com/tuneinsight/lattigo/v6/ring"
	"github.com/tuneinsight/lattigo/v6/utils/factorization"
)

// PrimePower represents pᵏ.
type PrimePower struct {
	P uint64
	K int
}

// Factorization is the prime decomposition of an integer, in increasing order
// of primes.
type Factorization []PrimePower

// Value returns the integer represented by f.
func (f Factorization) Value() uint64 {
	v := uint64(1)
	for _, pp := range f {
		for i := 0; i < pp.K; i++ {
			v *= pp.P
		}
	}
	return v
}

// Primes returns the distinct primes of f.
func (f Factorization) Primes() []uint64 {
	out := make([]uint64, len(f))
	for i, pp := range f {
		out[i] = pp.P
	}
	return out
}

// IsPrime returns true if n is prime.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	return ring.IsPrime(n)
}

// Factorize returns the prime decomposition of n.
// 0 and 1 have an empty factorization.
//
// Divisors up to params.TrialDivisorLimit are found by trial division, which
// fully factors every modulus the kernel accepts. A composite cofactor left
// over is split with lattigo's Pollard/ECM factorizer.
func Factorize(n uint64) Factorization {
	var f Factorization
	if n < 2 {
		return f
	}
	for p := uint64(2); p <= params.TrialDivisorLimit && p*p <= n; p++ {
		if n%p != 0 {
			continue
		}
		k := 0
		for n%p == 0 {
			n /= p
			k++
		}
		f = append(f, PrimePower{P: p, K: k})
	}
	if n == 1 {
		return f
	}
	if IsPrime(n) {
		return append(f, PrimePower{P: n, K: 1})
	}
	for _, factor := range factorization.GetFactors(new(big.Int).SetUint64(n)) {
		p := factor.Uint64()
		k := 0
		for n%p == 0 {
			n /= p
			k++
		}
		if k > 0 {
			f = append(f, PrimePower{P: p, K: k})
		}
	}
	sort.Slice(f, func(i, j int) bool { return f[i].P < f[j].P })
	return f
}

// primeFactors returns the distinct primes dividing n.
func primeFactors(n uint64) []uint64 {
	return Factorize(n).Primes()
}
