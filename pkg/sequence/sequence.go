// Package sequence generates primitive root residue sequences
// Sₖ = gᵏ (mod n), the 1-D building block of a primitive root diffuser.
package sequence

import (
	"errors"
	"fmt"

	"github.com/prdtools/prd/pkg/math/arith"
	"github.com/prdtools/prd/pkg/math/numtheory"
)

// ErrNotPrimitiveRoot is returned when an explicit root for a modulus with a
// cyclic unit group is not one of its primitive roots.
var ErrNotPrimitiveRoot = fmt.Errorf("not a primitive root: %w", numtheory.ErrInvalidArgument)

// Sequence is the ordered list [g^s, g^(s+1), …, g^(s+L-1)] (mod n).
type Sequence struct {
	modulus uint64
	root    uint64
	start   uint64
	values  []uint64
}

type config struct {
	root   uint64
	start  uint64
	kernel *numtheory.Kernel
}

// Option configures Generate.
type Option func(*config)

// WithRoot uses g instead of searching for the smallest primitive root.
// g = 0 is the same as omitting the option.
func WithRoot(g uint64) Option {
	return func(c *config) { c.root = g }
}

// WithStart makes the sequence begin at exponent k instead of 0.
func WithStart(k uint64) Option {
	return func(c *config) { c.start = k }
}

// WithKernel routes number theoretic queries through k and its cache.
func WithKernel(k *numtheory.Kernel) Option {
	return func(c *config) { c.kernel = k }
}

// Generate returns the residue sequence of n.
//
// Without an explicit root the smallest primitive root of n is used and the
// sequence has length φ(n); ErrNoPrimitiveRoot is returned when n has none.
// An explicit root for a cyclic n must be a primitive root. An explicit root
// for a non-cyclic n must be coprime to n, and the sequence then has the
// length of its multiplicative order.
//
// n = 1 yields the empty sequence and n = 2 yields [1], both with root 1.
func Generate(n uint64, opts ...Option) (Sequence, error) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	k := c.kernel

	switch n {
	case 0:
		return Sequence{}, fmt.Errorf("sequence: modulus 0: %w", numtheory.ErrInvalidArgument)
	case 1:
		return Sequence{modulus: 1, root: 1, start: c.start, values: []uint64{}}, nil
	case 2:
		if c.root != 0 && c.root%2 == 0 {
			return Sequence{}, fmt.Errorf("sequence: root %d modulo 2: %w", c.root, numtheory.ErrNotCoprime)
		}
		return Sequence{modulus: 2, root: 1, start: c.start, values: []uint64{1}}, nil
	}

	entry, err := k.Lookup(n)
	if err != nil {
		return Sequence{}, fmt.Errorf("sequence: %w", err)
	}

	g := c.root
	var length uint64
	switch {
	case g == 0:
		if !entry.HasRoot() {
			return Sequence{}, fmt.Errorf("sequence: n = %d: %w", n, numtheory.ErrNoPrimitiveRoot)
		}
		g, length = entry.Root, entry.Totient
	case entry.HasRoot():
		if !k.IsPrimitiveRoot(g, n) {
			return Sequence{}, fmt.Errorf("sequence: %d modulo %d: %w", g, n, ErrNotPrimitiveRoot)
		}
		length = entry.Totient
	default:
		length, err = k.MultiplicativeOrder(g, n)
		if err != nil {
			return Sequence{}, fmt.Errorf("sequence: %w", err)
		}
	}

	m := arith.ModulusFromUint64(n)
	return Sequence{
		modulus: n,
		root:    g % n,
		start:   c.start,
		values:  m.Powers(g, c.start, int(length)),
	}, nil
}

// Modulus returns n.
func (s Sequence) Modulus() uint64 { return s.modulus }

// Root returns the generator g.
func (s Sequence) Root() uint64 { return s.root }

// Start returns the exponent of the first element.
func (s Sequence) Start() uint64 { return s.start }

// Len returns the number of elements.
func (s Sequence) Len() int { return len(s.values) }

// At returns the i-th element, wrapping around the period. It panics on an
// empty sequence.
func (s Sequence) At(i int) uint64 {
	l := len(s.values)
	return s.values[((i%l)+l)%l]
}

// Values returns a copy of the elements.
func (s Sequence) Values() []uint64 {
	out := make([]uint64, len(s.values))
	copy(out, s.values)
	return out
}

// IsPermutation returns true if the elements are pairwise distinct.
func (s Sequence) IsPermutation() bool {
	seen := make(map[uint64]struct{}, len(s.values))
	for _, v := range s.values {
		if _, ok := seen[v]; ok {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}

// Equal reports whether both sequences have the same modulus, root, start
// and elements.
func (s Sequence) Equal(other Sequence) bool {
	if s.modulus != other.modulus || s.root != other.root || s.start != other.start {
		return false
	}
	if len(s.values) != len(other.values) {
		return false
	}
	for i := range s.values {
		if s.values[i] != other.values[i] {
			return false
		}
	}
	return true
}

// FromValues rebuilds a Sequence from its parts, checking that the elements
// are the consecutive powers of root modulo n.
func FromValues(n, root, start uint64, values []uint64) (Sequence, error) {
	if n == 0 {
		return Sequence{}, fmt.Errorf("sequence: modulus 0: %w", numtheory.ErrInvalidArgument)
	}
	errPowers := errors.New("sequence: values are not consecutive powers of the root")
	switch {
	case n == 1:
		if len(values) != 0 {
			return Sequence{}, errPowers
		}
	case n == 2:
		if root%2 == 0 || len(values) != 1 || values[0] != 1 {
			return Sequence{}, errPowers
		}
	case len(values) == 0:
		return Sequence{}, errPowers
	default:
		m := arith.ModulusFromUint64(n)
		want := m.Powers(root, start, len(values))
		for i := range want {
			if want[i] != values[i] {
				return Sequence{}, errPowers
			}
		}
	}
	out := make([]uint64, len(values))
	copy(out, values)
	return Sequence{modulus: n, root: root, start: start, values: out}, nil
}
