package prd

import (
	"fmt"

	"github.com/prdtools/prd/internal/params"
	"github.com/prdtools/prd/pkg/grid"
	"github.com/prdtools/prd/pkg/math/numtheory"
	"github.com/prdtools/prd/pkg/pool"
	"github.com/rs/zerolog"
)

// DesignResult is a grid size suitable for a Folded layout:
// Cols⋅Rows = Prime-1 with coprime sides.
type DesignResult struct {
	Cols  int
	Rows  int
	Prime uint64
}

// AspectRatio returns Cols/Rows.
func (r DesignResult) AspectRatio() float64 {
	return float64(r.Cols) / float64(r.Rows)
}

// PrimitiveRoots returns all primitive roots of Prime in increasing order.
func (r DesignResult) PrimitiveRoots() []uint64 {
	return numtheory.PrimitiveRoots(r.Prime)
}

// ChooseRoot returns the smallest primitive root of Prime above 2, or the
// smallest one if none is.
func (r DesignResult) ChooseRoot() (uint64, error) {
	roots := r.PrimitiveRoots()
	if len(roots) == 0 {
		return 0, fmt.Errorf("prd: design prime %d: %w", r.Prime, numtheory.ErrNoPrimitiveRoot)
	}
	for _, g := range roots {
		if g > 2 {
			return g, nil
		}
	}
	return roots[0], nil
}

// ToParameters returns Folded parameters for this design. root 0 selects
// ChooseRoot.
func (r DesignResult) ToParameters(designFrequency float64, root uint64) (Parameters, error) {
	if root == 0 {
		var err error
		if root, err = r.ChooseRoot(); err != nil {
			return Parameters{}, err
		}
	}
	return Parameters{
		Rows:            r.Rows,
		Cols:            r.Cols,
		RowModulus:      r.Prime,
		RowRoot:         root,
		Start:           1,
		Strategy:        grid.Folded,
		DesignFrequency: designFrequency,
	}, nil
}

// Designer searches for DesignResults whose aspect ratio lies in
// [AspectRatioMin, AspectRatioMax].
type Designer struct {
	AspectRatioMin float64
	AspectRatioMax float64

	pool *pool.Pool
	log  zerolog.Logger
}

// NewDesigner returns a Designer with the default aspect ratio bounds.
// pl may be nil, in which case candidates are checked on the calling goroutine.
func NewDesigner(pl *pool.Pool, log zerolog.Logger) *Designer {
	return &Designer{
		AspectRatioMin: params.AspectRatioMin,
		AspectRatioMax: params.AspectRatioMax,
		pool:           pl,
		log:            log,
	}
}

// Valid reports whether cols⋅rows+1 = prime, prime is a prime, cols and rows
// are coprime and the aspect ratio is in range.
func (d *Designer) Valid(cols, rows int, prime uint64) bool {
	if cols <= 0 || rows <= 0 || uint64(cols)*uint64(rows)+1 != prime {
		return false
	}
	r := DesignResult{Cols: cols, Rows: rows, Prime: prime}.AspectRatio()
	if r < d.AspectRatioMin || r > d.AspectRatioMax {
		return false
	}
	return numtheory.IsCoprime(uint64(cols), uint64(rows)) && numtheory.IsPrime(prime)
}

// FromColumns returns every valid design with cols columns and between 2 and
// 3⋅cols rows, by increasing number of rows.
func (d *Designer) FromColumns(cols int) ([]DesignResult, error) {
	if cols <= 0 || cols > params.MaxCells {
		return nil, fmt.Errorf("prd: design with %d columns: %w", cols, grid.ErrInvalidDimensions)
	}
	const minRows = 2
	maxRows := 3 * cols
	if maxRows < minRows {
		return nil, nil
	}

	candidates := pool.Map(d.pool, maxRows-minRows+1, func(i int) *DesignResult {
		rows := minRows + i
		prime := uint64(cols)*uint64(rows) + 1
		if !d.Valid(cols, rows, prime) {
			return nil
		}
		return &DesignResult{Cols: cols, Rows: rows, Prime: prime}
	})

	var out []DesignResult
	for _, c := range candidates {
		if c == nil {
			continue
		}
		d.log.Debug().Int("cols", c.Cols).Int("rows", c.Rows).Uint64("prime", c.Prime).Msg("design found")
		out = append(out, *c)
	}
	d.log.Info().Int("cols", cols).Int("count", len(out)).Msg("searched designs by columns")
	return out, nil
}

// FromPrime returns the valid designs for prime, replacing it with the next
// prime when it is not one. All (cols, rows) pairs with cols < rows come
// first, followed by the transposed pairs.
func (d *Designer) FromPrime(prime uint64) (uint64, []DesignResult, error) {
	if prime < 3 || prime > params.MaxModulus {
		return 0, nil, fmt.Errorf("prd: design prime %d: %w", prime, numtheory.ErrInvalidArgument)
	}
	if !numtheory.IsPrime(prime) {
		next := numtheory.NextPrime(prime)
		d.log.Info().Uint64("requested", prime).Uint64("prime", next).Msg("using next prime")
		prime = next
	}

	pairs := numtheory.CoprimePairs(prime - 1)
	oriented := make([]DesignResult, 0, 2*len(pairs))
	for _, pair := range pairs {
		oriented = append(oriented, DesignResult{Cols: int(pair.A), Rows: int(pair.B), Prime: prime})
	}
	for _, pair := range pairs {
		oriented = append(oriented, DesignResult{Cols: int(pair.B), Rows: int(pair.A), Prime: prime})
	}

	var out []DesignResult
	for _, r := range oriented {
		if d.Valid(r.Cols, r.Rows, r.Prime) {
			d.log.Debug().Int("cols", r.Cols).Int("rows", r.Rows).Uint64("prime", prime).Msg("design found")
			out = append(out, r)
		}
	}
	d.log.Info().Uint64("prime", prime).Int("count", len(out)).Msg("searched designs by prime")
	return prime, out, nil
}
