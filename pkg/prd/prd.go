package prd

import (
	"fmt"

	"github.com/prdtools/prd/pkg/acoustics"
	"github.com/prdtools/prd/pkg/depth"
	"github.com/prdtools/prd/pkg/grid"
	"github.com/prdtools/prd/pkg/sequence"
)

// ResidueSequence returns [g⁰, g¹, …] (mod n). g = 0 selects the smallest
// primitive root of n.
func ResidueSequence(n, g uint64) (sequence.Sequence, error) {
	return sequence.Generate(n, sequence.WithRoot(g))
}

// sequences generates the axis sequences p.Strategy reads. The other one is
// left as the zero Sequence.
func (p Parameters) sequences() (row, col sequence.Sequence, err error) {
	if p.Strategy.UsesRows() {
		row, err = sequence.Generate(p.RowModulusOrDefault(), p.sequenceOptions(p.RowRoot)...)
		if err != nil {
			return row, col, fmt.Errorf("prd: row sequence: %w", err)
		}
	}
	if p.Strategy.UsesCols() {
		col, err = sequence.Generate(p.ColModulusOrDefault(), p.sequenceOptions(p.ColRoot)...)
		if err != nil {
			return row, col, fmt.Errorf("prd: column sequence: %w", err)
		}
	}
	return row, col, nil
}

// ComputeGrid returns the index grid described by p, failing on the first
// problem found.
func ComputeGrid(p Parameters) (grid.Grid, error) {
	g, _, _, err := p.computeGrid()
	return g, err
}

func (p Parameters) computeGrid() (grid.Grid, sequence.Sequence, sequence.Sequence, error) {
	if err := grid.CheckDimensions(p.Rows, p.Cols); err != nil {
		return grid.Grid{}, sequence.Sequence{}, sequence.Sequence{}, fmt.Errorf("prd: %w", err)
	}
	if !p.Strategy.Valid() {
		return grid.Grid{}, sequence.Sequence{}, sequence.Sequence{}, fmt.Errorf("prd: strategy %s: %w", p.Strategy, grid.ErrInvalidConfiguration)
	}
	row, col, err := p.sequences()
	if err != nil {
		return grid.Grid{}, row, col, err
	}
	g, err := grid.Compose(p.Rows, p.Cols, row, col, p.Strategy, p.Modulus)
	if err != nil {
		return grid.Grid{}, row, col, fmt.Errorf("prd: %w", err)
	}
	return g, row, col, nil
}

// NormalizeDepths maps g to depths offset + step⋅index. A nil offset centers
// the index range around zero and quantum 0 disables rounding.
func NormalizeDepths(g grid.Grid, step float64, offset *float64, quantum float64) (depth.Grid, error) {
	var opts []depth.Option
	if offset != nil {
		opts = append(opts, depth.WithOffset(*offset))
	}
	if quantum != 0 {
		opts = append(opts, depth.WithQuantum(quantum))
	}
	d, err := depth.Normalize(g, step, opts...)
	if err != nil {
		return depth.Grid{}, fmt.Errorf("prd: %w", err)
	}
	return d, nil
}

// depthScale returns the step and offset used for a grid of range k.
func (p Parameters) depthScale(k uint64) (float64, *float64, error) {
	switch {
	case p.Step > 0:
		return p.Step, p.Offset, nil
	case p.DesignFrequency > 0:
		step, err := acoustics.DepthStepCM(p.DesignFrequency, k, p.SpeedOfSound)
		if err != nil {
			return 0, nil, fmt.Errorf("prd: %w", err)
		}
		offset := p.Offset
		if offset == nil {
			zero := 0.0
			offset = &zero
		}
		return step, offset, nil
	default:
		return 1, p.Offset, nil
	}
}

// Compute validates p and returns the complete layout it describes.
// Validation problems are returned together as ValidationErrors.
func Compute(p Parameters) (*Layout, error) {
	if err := p.Validate().Err(); err != nil {
		return nil, err
	}
	g, row, col, err := p.computeGrid()
	if err != nil {
		return nil, err
	}
	step, offset, err := p.depthScale(g.Range())
	if err != nil {
		return nil, err
	}
	d, err := NormalizeDepths(g, step, offset, p.Quantum)
	if err != nil {
		return nil, err
	}
	l := &Layout{
		Parameters: p,
		Row:        row,
		Col:        col,
		Grid:       g,
		Depths:     d,
	}
	if l.Fingerprint, err = l.fingerprint(); err != nil {
		return nil, err
	}
	return l, nil
}
