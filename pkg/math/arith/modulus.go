package arith

import (
	"math/bits"

	"github.com/cronokirby/saferith"
)

// Modulus holds a word-sized modulus n for repeated modular arithmetic.
//
// Odd moduli are handled by saferith directly. Montgomery reduction needs an
// odd modulus, so an even n is split as n = a⋅b with a = 2ᵏ and b odd:
// powers modulo a are taken with wrapping word arithmetic, powers modulo b
// with saferith, and the results are recombined with the CRT.
type Modulus struct {
	n uint64
	// odd is n itself when n is odd and greater than 1
	odd *saferith.Modulus
	// n = a⋅b, a = 2ᵏ, b odd
	a, b uint64
	bMod *saferith.Modulus
	// aInv = a⁻¹ (mod b)
	aInv uint64
}

// ModulusFromUint64 creates a Modulus for n ≥ 1.
func ModulusFromUint64(n uint64) *Modulus {
	if n == 0 {
		panic("arith: modulus 0")
	}
	if n&1 == 1 {
		m := &Modulus{n: n}
		if n > 1 {
			m.odd = saferith.ModulusFromUint64(n)
		}
		return m
	}
	a := n & -n
	return ModulusFromFactors(a, n/a)
}

// ModulusFromFactors creates the cached values for arithmetic modulo
// n = a⋅b, where a is a power of two and b is odd. Any other split is
// ignored and the factors of a⋅b are recomputed.
func ModulusFromFactors(a, b uint64) *Modulus {
	if a == 0 || b == 0 || a&(a-1) != 0 || b&1 == 0 {
		return ModulusFromUint64(a * b)
	}
	if a == 1 {
		return ModulusFromUint64(b)
	}
	m := &Modulus{n: a * b, a: a, b: b}
	if b > 1 {
		m.bMod = saferith.ModulusFromUint64(b)
		aNat := new(saferith.Nat).SetUint64(a % b)
		m.aInv = new(saferith.Nat).ModInverse(aNat, m.bMod).Uint64()
	}
	return m
}

// Uint64 returns n.
func (m *Modulus) Uint64() uint64 {
	return m.n
}

// Exp returns xᵉ (mod n).
func (m *Modulus) Exp(x, e uint64) uint64 {
	switch {
	case m.n == 1:
		return 0
	case m.odd != nil:
		return natExp(x, e, m.odd)
	}
	// x₁ = xᵉ (mod a)
	xa := pow2Exp(x, e, m.a)
	if m.b == 1 {
		return xa
	}
	// x₂ = xᵉ (mod b)
	xb := natExp(x, e, m.bMod)
	// r = x₁ + a ⋅ [a⁻¹ (mod b)] ⋅ [x₂ - x₁] (mod n)
	d := (xb + m.b - xa%m.b) % m.b
	t := mulMod(d, m.aInv, m.b)
	return xa + m.a*t
}

// Mul returns x⋅y (mod n).
func (m *Modulus) Mul(x, y uint64) uint64 {
	return mulMod(x%m.n, y%m.n, m.n)
}

// Powers returns [x^start, x^(start+1), …] (mod n), count elements long.
func (m *Modulus) Powers(x, start uint64, count int) []uint64 {
	out := make([]uint64, count)
	if count == 0 {
		return out
	}
	x %= m.n
	cur := m.Exp(x, start)
	for i := range out {
		out[i] = cur
		cur = m.Mul(cur, x)
	}
	return out
}

func (m *Modulus) hasFactorization() bool {
	return m.a > 1
}

// natExp computes xᵉ modulo an odd saferith modulus.
func natExp(x, e uint64, mod *saferith.Modulus) uint64 {
	base := new(saferith.Nat).Mod(new(saferith.Nat).SetUint64(x), mod)
	return new(saferith.Nat).Exp(base, new(saferith.Nat).SetUint64(e), mod).Uint64()
}

// pow2Exp computes xᵉ modulo a power of two a. Wrapping multiplication is
// exact modulo 2⁶⁴ and therefore modulo a.
func pow2Exp(x, e, a uint64) uint64 {
	mask := a - 1
	result, base := uint64(1), x
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			result *= base
		}
		base *= base
	}
	return result & mask
}

func mulMod(x, y, n uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	return bits.Rem64(hi, lo, n)
}
