package numtheory

// Pair is an unordered factorization n = A⋅B with A ≤ B.
type Pair struct {
	A, B uint64
}

// Divisors returns every pair (a, b) with a⋅b = n and 2 ≤ a ≤ b, in
// increasing order of a. Primes, 0 and 1 have none.
func Divisors(n uint64) []Pair {
	var out []Pair
	for a := uint64(2); a*a <= n; a++ {
		if n%a == 0 {
			out = append(out, Pair{A: a, B: n / a})
		}
	}
	return out
}

// CoprimePairs returns the pairs of Divisors(n) whose members are coprime.
func CoprimePairs(n uint64) []Pair {
	var out []Pair
	for _, pair := range Divisors(n) {
		if IsCoprime(pair.A, pair.B) {
			out = append(out, pair)
		}
	}
	return out
}

// NextPrime returns the smallest prime strictly greater than n.
func NextPrime(n uint64) uint64 {
	for x := n + 1; ; x++ {
		if IsPrime(x) {
			return x
		}
	}
}
