package prd

import (
	"github.com/prdtools/prd/pkg/grid"
	"github.com/prdtools/prd/pkg/math/numtheory"
	"github.com/prdtools/prd/pkg/sequence"
)

// Parameters describes a single layout request.
//
// Zero values select defaults: the row modulus is Rows+1 (Rows·Cols+1 for
// Folded), the column modulus is Cols+1, roots are the smallest primitive
// roots, the combine modulus is the larger axis modulus and the step is 1.
// When DesignFrequency is set instead of Step, the step is λ/(2K) centimeters
// for the grid range K and the offset defaults to 0.
type Parameters struct {
	Rows int
	Cols int

	RowModulus uint64
	ColModulus uint64
	RowRoot    uint64
	ColRoot    uint64
	// Start is the first exponent of both sequences.
	Start uint64

	Strategy grid.Strategy
	// Modulus is the M of SumMod and ProductMod.
	Modulus uint64

	Step    float64
	Offset  *float64
	Quantum float64

	// DesignFrequency is the lowest diffused frequency in Hz.
	DesignFrequency float64
	// SpeedOfSound in m/s, 0 for acoustics.SpeedOfSound.
	SpeedOfSound float64

	// Kernel answers the number theoretic queries, nil for an uncached one.
	Kernel *numtheory.Kernel `cbor:"-"`
}

// RowModulusOrDefault returns the modulus of the row sequence.
func (p Parameters) RowModulusOrDefault() uint64 {
	switch {
	case p.RowModulus != 0:
		return p.RowModulus
	case p.Rows <= 0:
		return 0
	case p.Strategy == grid.Folded:
		if p.Cols <= 0 {
			return 0
		}
		return uint64(p.Rows)*uint64(p.Cols) + 1
	default:
		return uint64(p.Rows) + 1
	}
}

// ColModulusOrDefault returns the modulus of the column sequence.
func (p Parameters) ColModulusOrDefault() uint64 {
	switch {
	case p.ColModulus != 0:
		return p.ColModulus
	case p.Cols <= 0:
		return 0
	default:
		return uint64(p.Cols) + 1
	}
}

// WithOffset returns a copy of p with Offset set to offset.
func (p Parameters) WithOffset(offset float64) Parameters {
	p.Offset = &offset
	return p
}

func (p Parameters) sequenceOptions(root uint64) []sequence.Option {
	return []sequence.Option{
		sequence.WithRoot(root),
		sequence.WithStart(p.Start),
		sequence.WithKernel(p.Kernel),
	}
}
