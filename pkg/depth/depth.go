// Package depth maps grid indices to physical well depths.
package depth

import (
	"fmt"
	"math"

	"github.com/prdtools/prd/pkg/grid"
	"github.com/prdtools/prd/pkg/math/numtheory"
)

// ErrInvalidArgument is returned for a non-positive step or quantum. It is the
// same error kind as numtheory.ErrInvalidArgument.
var ErrInvalidArgument = numtheory.ErrInvalidArgument

// Grid is an immutable rows × cols array of depths,
// depth(i, j) = Offset + Step ⋅ index(i, j), optionally quantized.
type Grid struct {
	rows, cols int
	step       float64
	offset     float64
	quantum    float64
	cells      []float64
}

type config struct {
	offset    float64
	hasOffset bool
	quantum   float64
}

// Option configures Normalize.
type Option func(*config)

// WithOffset sets the depth of index 0. Without it the depths are centered
// around zero: offset = -step⋅(K-1)/2.
func WithOffset(offset float64) Option {
	return func(c *config) {
		c.offset = offset
		c.hasOffset = true
	}
}

// WithQuantum rounds every depth to the nearest multiple of q.
func WithQuantum(q float64) Option {
	return func(c *config) { c.quantum = q }
}

// Normalize converts the index grid g to depths.
// Depths are never clamped or rounded unless WithQuantum is given.
func Normalize(g grid.Grid, step float64, opts ...Option) (Grid, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return Grid{}, fmt.Errorf("depth: step %v: %w", step, ErrInvalidArgument)
	}
	var c config
	quantize := false
	for _, opt := range opts {
		opt(&c)
	}
	if c.quantum != 0 {
		if !(c.quantum > 0) || math.IsInf(c.quantum, 0) {
			return Grid{}, fmt.Errorf("depth: quantum %v: %w", c.quantum, ErrInvalidArgument)
		}
		quantize = true
	}
	if c.hasOffset && (math.IsNaN(c.offset) || math.IsInf(c.offset, 0)) {
		return Grid{}, fmt.Errorf("depth: offset %v: %w", c.offset, ErrInvalidArgument)
	}
	if !c.hasOffset {
		c.offset = SymmetricOffset(step, g.Range())
	}

	d := Grid{
		rows:    g.Rows(),
		cols:    g.Cols(),
		step:    step,
		offset:  c.offset,
		quantum: c.quantum,
		cells:   make([]float64, g.Rows()*g.Cols()),
	}
	for i, index := range g.Cells() {
		v := c.offset + step*float64(index)
		if quantize {
			v = math.Round(v/c.quantum) * c.quantum
		}
		d.cells[i] = v
	}
	return d, nil
}

// Raw returns the unitless depths of g: the indices themselves as floats.
func Raw(g grid.Grid) Grid {
	d, _ := Normalize(g, 1, WithOffset(0))
	return d
}

// SymmetricOffset returns -step⋅(K-1)/2, which centers the indices [0, K)
// around zero.
func SymmetricOffset(step float64, k uint64) float64 {
	if k == 0 {
		return 0
	}
	return -step * float64(k-1) / 2
}

// Rows returns the number of rows.
func (d Grid) Rows() int { return d.rows }

// Cols returns the number of columns.
func (d Grid) Cols() int { return d.cols }

// Step returns the depth increment per index.
func (d Grid) Step() float64 { return d.step }

// Offset returns the depth of index 0.
func (d Grid) Offset() float64 { return d.offset }

// Quantum returns the rounding increment, or 0 if depths are not rounded.
func (d Grid) Quantum() float64 { return d.quantum }

// At returns the depth of cell (i, j).
func (d Grid) At(i, j int) float64 { return d.cells[i*d.cols+j] }

// Row returns a copy of row i.
func (d Grid) Row(i int) []float64 {
	out := make([]float64, d.cols)
	copy(out, d.cells[i*d.cols:(i+1)*d.cols])
	return out
}

// Values returns the depths as a slice of rows.
func (d Grid) Values() [][]float64 {
	out := make([][]float64, d.rows)
	for i := range out {
		out[i] = d.Row(i)
	}
	return out
}

// Min returns the shallowest well, or 0 for an empty grid.
func (d Grid) Min() float64 { return d.extreme(math.Min) }

// Max returns the deepest well.
func (d Grid) Max() float64 { return d.extreme(math.Max) }

func (d Grid) extreme(pick func(a, b float64) float64) float64 {
	if len(d.cells) == 0 {
		return 0
	}
	out := d.cells[0]
	for _, v := range d.cells[1:] {
		out = pick(out, v)
	}
	return out
}

// Shift returns a copy of d with every depth moved by delta, as when the
// whole panel is offset from the mounting surface.
func (d Grid) Shift(delta float64) Grid {
	out := d
	out.offset += delta
	out.cells = make([]float64, len(d.cells))
	for i, v := range d.cells {
		out.cells[i] = v + delta
	}
	return out
}
