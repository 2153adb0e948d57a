package prd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/prdtools/prd/pkg/depth"
	"github.com/prdtools/prd/pkg/grid"
	"github.com/prdtools/prd/pkg/hash"
	"github.com/prdtools/prd/pkg/sequence"
)

// Layout is the result of Compute.
type Layout struct {
	Parameters Parameters
	// Row and Col are the axis sequences. A sequence the strategy does not
	// read is the zero Sequence.
	Row, Col sequence.Sequence
	Grid     grid.Grid
	Depths   depth.Grid
	// Fingerprint identifies the parameters, sequences, grid and depths.
	Fingerprint hash.Fingerprint
}

func (l *Layout) fingerprint() (hash.Fingerprint, error) {
	return hash.Of("Layout", l.Parameters, l.Row, l.Col, l.Grid, l.Depths)
}

type sequenceMarshal struct {
	N, Root, Start uint64
	Values         []uint64
}

type layoutMarshal struct {
	Parameters  Parameters
	Row, Col    sequenceMarshal
	Rows, Cols  int
	Range       uint64
	Cells       []uint64
	Step        float64
	Offset      float64
	Quantum     float64
	Fingerprint []byte
}

func marshalSequence(s sequence.Sequence) sequenceMarshal {
	return sequenceMarshal{N: s.Modulus(), Root: s.Root(), Start: s.Start(), Values: s.Values()}
}

func unmarshalSequence(sm sequenceMarshal) (sequence.Sequence, error) {
	if sm.N == 0 {
		return sequence.Sequence{}, nil
	}
	return sequence.FromValues(sm.N, sm.Root, sm.Start, sm.Values)
}

// MarshalBinary encodes l as CBOR.
func (l *Layout) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(&layoutMarshal{
		Parameters:  l.Parameters,
		Row:         marshalSequence(l.Row),
		Col:         marshalSequence(l.Col),
		Rows:        l.Grid.Rows(),
		Cols:        l.Grid.Cols(),
		Range:       l.Grid.Range(),
		Cells:       l.Grid.Cells(),
		Step:        l.Depths.Step(),
		Offset:      l.Depths.Offset(),
		Quantum:     l.Depths.Quantum(),
		Fingerprint: l.Fingerprint,
	})
}

// UnmarshalBinary decodes a layout produced by MarshalBinary, validating the
// parameters, rebuilding the depths and checking the fingerprint. The Kernel
// of l is kept.
func (l *Layout) UnmarshalBinary(data []byte) error {
	var lm layoutMarshal
	if err := cbor.Unmarshal(data, &lm); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	lm.Parameters.Kernel = l.Parameters.Kernel
	if err := lm.Parameters.Validate().Err(); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	if lm.Rows != lm.Parameters.Rows || lm.Cols != lm.Parameters.Cols {
		return fmt.Errorf("layout: grid is %d×%d, parameters ask for %d×%d",
			lm.Rows, lm.Cols, lm.Parameters.Rows, lm.Parameters.Cols)
	}
	row, err := unmarshalSequence(lm.Row)
	if err != nil {
		return fmt.Errorf("layout: row: %w", err)
	}
	col, err := unmarshalSequence(lm.Col)
	if err != nil {
		return fmt.Errorf("layout: column: %w", err)
	}
	g, err := grid.New(lm.Rows, lm.Cols, lm.Range, lm.Cells)
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	d, err := NormalizeDepths(g, lm.Step, &lm.Offset, lm.Quantum)
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	if err := lm.Parameters.matches(row, col, g, d); err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	out := Layout{
		Parameters: lm.Parameters,
		Row:        row,
		Col:        col,
		Grid:       g,
		Depths:     d,
	}
	fp, err := out.fingerprint()
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	if !bytes.Equal(fp, lm.Fingerprint) {
		return errors.New("layout: fingerprint mismatch")
	}
	out.Fingerprint = fp
	*l = out
	return nil
}

// matches recomputes the layout described by p and compares it with the
// decoded parts.
func (p Parameters) matches(row, col sequence.Sequence, g grid.Grid, d depth.Grid) error {
	wantGrid, wantRow, wantCol, err := p.computeGrid()
	if err != nil {
		return err
	}
	if !wantRow.Equal(row) || !wantCol.Equal(col) {
		return errors.New("sequences do not match the parameters")
	}
	if !wantGrid.Equal(g) {
		return errors.New("grid does not match the parameters")
	}
	step, offset, err := p.depthScale(wantGrid.Range())
	if err != nil {
		return err
	}
	want, err := NormalizeDepths(wantGrid, step, offset, p.Quantum)
	if err != nil {
		return err
	}
	if want.Step() != d.Step() || want.Offset() != d.Offset() || want.Quantum() != d.Quantum() {
		return errors.New("depths do not match the parameters")
	}
	return nil
}
