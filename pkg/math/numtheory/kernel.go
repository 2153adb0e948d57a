package numtheory

import "fmt"

// Entry holds the values a Kernel memoises for one modulus n.
type Entry struct {
	Totient    uint64
	Carmichael uint64
	// Root is the smallest primitive root of n, or 0 when there is none.
	Root uint64
	// PhiPrimes are the distinct primes dividing φ(n).
	PhiPrimes []uint64
}

// HasRoot returns true if the entry's modulus has a primitive root.
func (e Entry) HasRoot() bool {
	return e.Root != 0
}

// Cache stores kernel entries by modulus. Implementations must be safe for
// concurrent use and may evict entries at any time.
type Cache interface {
	Get(n uint64) (Entry, bool)
	Put(n uint64, e Entry)
}

// Kernel answers number theoretic queries about moduli, memoising the
// per-modulus work in an optional Cache.
//
// A nil *Kernel, or one without a cache, computes everything on demand.
type Kernel struct {
	cache Cache
}

// NewKernel returns a Kernel backed by cache, which may be nil.
func NewKernel(cache Cache) *Kernel {
	return &Kernel{cache: cache}
}

// Lookup returns the entry for n, computing and caching it if needed.
func (k *Kernel) Lookup(n uint64) (Entry, error) {
	if err := checkModulus("Lookup", n); err != nil {
		return Entry{}, err
	}
	if k != nil && k.cache != nil {
		if e, ok := k.cache.Get(n); ok {
			return e, nil
		}
	}
	e := computeEntry(n)
	if k != nil && k.cache != nil {
		k.cache.Put(n, e)
	}
	return e, nil
}

func computeEntry(n uint64) Entry {
	if n <= 2 {
		return Entry{Totient: 1, Carmichael: 1, Root: 1}
	}
	f := Factorize(n)
	phi := totientOf(f)
	e := Entry{
		Totient:    phi,
		Carmichael: carmichaelOf(f),
		PhiPrimes:  primeFactors(phi),
	}
	if root, err := findPrimitiveRoot(n, f); err == nil {
		e.Root = root
	}
	return e
}

// Totient returns φ(n), with φ(0) = 1 by convention.
func (k *Kernel) Totient(n uint64) uint64 {
	e, err := k.Lookup(n)
	if err != nil {
		return Totient(n)
	}
	return e.Totient
}

// Carmichael returns λ(n), with λ(0) = 1 by convention.
func (k *Kernel) Carmichael(n uint64) uint64 {
	e, err := k.Lookup(n)
	if err != nil {
		return Carmichael(n)
	}
	return e.Carmichael
}

// HasPrimitiveRoot returns true if n has a primitive root.
func (k *Kernel) HasPrimitiveRoot(n uint64) bool {
	e, err := k.Lookup(n)
	return err == nil && e.HasRoot()
}

// FindPrimitiveRoot returns the smallest primitive root of n.
func (k *Kernel) FindPrimitiveRoot(n uint64) (uint64, error) {
	e, err := k.Lookup(n)
	if err != nil {
		return 0, err
	}
	if !e.HasRoot() {
		return 0, fmt.Errorf("numtheory.FindPrimitiveRoot: n = %d: %w", n, ErrNoPrimitiveRoot)
	}
	return e.Root, nil
}

// IsPrimitiveRoot returns true if g is a primitive root of n.
func (k *Kernel) IsPrimitiveRoot(g, n uint64) bool {
	e, err := k.Lookup(n)
	if err != nil || !e.HasRoot() || !IsCoprime(g, n) {
		return false
	}
	return isGenerator(g, n, e.Totient, e.PhiPrimes)
}

// MultiplicativeOrder returns the smallest k ≥ 1 with aᵏ ≡ 1 (mod n).
func (k *Kernel) MultiplicativeOrder(a, n uint64) (uint64, error) {
	e, err := k.Lookup(n)
	if err != nil {
		return 0, err
	}
	if !IsCoprime(a, n) {
		return 0, fmt.Errorf("numtheory.MultiplicativeOrder: gcd(%d, %d) = %d: %w", a, n, gcd(a, n), ErrNotCoprime)
	}
	if n == 1 {
		return 1, nil
	}
	return orderWithExponent(a, n, e.Carmichael), nil
}
