// Package grid folds residue sequences into a 2-D index grid.
package grid

import (
	"errors"
	"fmt"

	"github.com/prdtools/prd/internal/params"
	"github.com/prdtools/prd/pkg/sequence"
)

var (
	// ErrInvalidDimensions is returned for non-positive or oversized grids and
	// for empty input sequences.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrInvalidConfiguration is returned for unknown strategies and
	// parameters a strategy cannot work with.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// Grid is an immutable rows × cols array of indices in [0, Range()).
type Grid struct {
	rows, cols int
	k          uint64
	cells      []uint64
}

// New builds a grid from row-major cells, checking shape and range.
func New(rows, cols int, k uint64, cells []uint64) (Grid, error) {
	if err := CheckDimensions(rows, cols); err != nil {
		return Grid{}, err
	}
	if len(cells) != rows*cols {
		return Grid{}, fmt.Errorf("grid: %d cells for %d×%d: %w", len(cells), rows, cols, ErrInvalidDimensions)
	}
	for i, v := range cells {
		if v >= k {
			return Grid{}, fmt.Errorf("grid: cell %d = %d outside [0, %d): %w", i, v, k, ErrInvalidConfiguration)
		}
	}
	out := make([]uint64, len(cells))
	copy(out, cells)
	return Grid{rows: rows, cols: cols, k: k, cells: out}, nil
}

// CheckDimensions returns ErrInvalidDimensions unless 0 < rows·cols <= params.MaxCells.
func CheckDimensions(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("grid: %d×%d: %w", rows, cols, ErrInvalidDimensions)
	}
	if rows > params.MaxCells/cols {
		return fmt.Errorf("grid: %d×%d exceeds %d cells: %w", rows, cols, params.MaxCells, ErrInvalidDimensions)
	}
	return nil
}

// Compose combines row and col into a rows × cols grid with
// cell (i, j) = combine(row[i mod R], col[j mod C]).
//
// modulus is the M of SumMod and ProductMod; 0 selects the larger of the two
// sequence moduli. Sequences a strategy does not read may be empty.
func Compose(rows, cols int, row, col sequence.Sequence, strategy Strategy, modulus uint64) (Grid, error) {
	if err := CheckDimensions(rows, cols); err != nil {
		return Grid{}, err
	}
	if !strategy.Valid() {
		return Grid{}, fmt.Errorf("grid: strategy %d: %w", uint8(strategy), ErrInvalidConfiguration)
	}
	if strategy.UsesRows() && row.Len() == 0 {
		return Grid{}, fmt.Errorf("grid: empty row sequence (n = %d): %w", row.Modulus(), ErrInvalidDimensions)
	}
	if strategy.UsesCols() && col.Len() == 0 {
		return Grid{}, fmt.Errorf("grid: empty column sequence (n = %d): %w", col.Modulus(), ErrInvalidDimensions)
	}

	g := Grid{rows: rows, cols: cols, cells: make([]uint64, rows*cols)}
	switch strategy {
	case SumMod, ProductMod:
		m := CombinedModulus(row, col, modulus)
		if m < 2 {
			return Grid{}, fmt.Errorf("grid: %s modulus %d: %w", strategy, m, ErrInvalidConfiguration)
		}
		g.k = m
		for i := 0; i < rows; i++ {
			r := row.At(i)
			for j := 0; j < cols; j++ {
				c := col.At(j)
				if strategy == SumMod {
					g.cells[i*cols+j] = (r + c) % m
				} else {
					g.cells[i*cols+j] = (r * c) % m
				}
			}
		}
	case RowOnly:
		g.k = row.Modulus()
		for i := 0; i < rows; i++ {
			r := row.At(i)
			for j := 0; j < cols; j++ {
				g.cells[i*cols+j] = r
			}
		}
	case ColOnly:
		g.k = col.Modulus()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				g.cells[i*cols+j] = col.At(j)
			}
		}
	case Folded:
		if row.Len() != rows*cols {
			return Grid{}, fmt.Errorf("grid: folded sequence of length %d into %d×%d: %w", row.Len(), rows, cols, ErrInvalidConfiguration)
		}
		if gcd(rows, cols) != 1 {
			return Grid{}, fmt.Errorf("grid: folded %d×%d with gcd %d: %w", rows, cols, gcd(rows, cols), ErrInvalidConfiguration)
		}
		g.k = row.Modulus()
		for k := 0; k < rows*cols; k++ {
			g.cells[(k%rows)*cols+k%cols] = row.At(k)
		}
	}
	return g, nil
}

// CombinedModulus returns the M used by SumMod and ProductMod: explicit when
// non-zero, otherwise the larger of the two sequence moduli.
func CombinedModulus(row, col sequence.Sequence, explicit uint64) uint64 {
	if explicit != 0 {
		return explicit
	}
	return max(row.Modulus(), col.Modulus())
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g Grid) Cols() int { return g.cols }

// Range returns K, the exclusive upper bound of every index.
func (g Grid) Range() uint64 { return g.k }

// At returns cell (i, j).
func (g Grid) At(i, j int) uint64 { return g.cells[i*g.cols+j] }

// Row returns a copy of row i.
func (g Grid) Row(i int) []uint64 {
	out := make([]uint64, g.cols)
	copy(out, g.cells[i*g.cols:(i+1)*g.cols])
	return out
}

// Col returns a copy of column j.
func (g Grid) Col(j int) []uint64 {
	out := make([]uint64, g.rows)
	for i := range out {
		out[i] = g.cells[i*g.cols+j]
	}
	return out
}

// Cells returns a copy of the cells in row-major order.
func (g Grid) Cells() []uint64 {
	out := make([]uint64, len(g.cells))
	copy(out, g.cells)
	return out
}

// Values returns the grid as a slice of rows.
func (g Grid) Values() [][]uint64 {
	out := make([][]uint64, g.rows)
	for i := range out {
		out[i] = g.Row(i)
	}
	return out
}

// Equal reports whether both grids have the same shape, range and cells.
func (g Grid) Equal(other Grid) bool {
	if g.rows != other.rows || g.cols != other.cols || g.k != other.k {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// DistinctLines returns true if no row and no column holds the same index
// twice.
func (g Grid) DistinctLines() bool {
	for i := 0; i < g.rows; i++ {
		if hasRepeat(g.Row(i)) {
			return false
		}
	}
	for j := 0; j < g.cols; j++ {
		if hasRepeat(g.Col(j)) {
			return false
		}
	}
	return true
}

func hasRepeat(line []uint64) bool {
	seen := make(map[uint64]struct{}, len(line))
	for _, v := range line {
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
	}
	return false
}
