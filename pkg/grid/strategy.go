package grid

import (
	"fmt"
	"strings"
)

// Strategy selects how a row and a column sequence are combined into a cell.
// The set is closed: only the constants below are valid.
type Strategy uint8

const (
	// SumMod sets cell (i, j) to (row[i] + col[j]) mod M, the classic 2-D
	// primitive root construction.
	SumMod Strategy = iota
	// ProductMod sets cell (i, j) to (row[i] ⋅ col[j]) mod M.
	ProductMod
	// RowOnly sets cell (i, j) to row[i], extruding the row sequence.
	RowOnly
	// ColOnly sets cell (i, j) to col[j], extruding the column sequence.
	ColOnly
	// Folded writes a single sequence of length rows⋅cols along the wrapped
	// diagonals: element k lands on (k mod rows, k mod cols). rows and cols
	// must be coprime.
	Folded

	numStrategies
)

var strategyNames = [numStrategies]string{
	SumMod:     "sum_mod",
	ProductMod: "product_mod",
	RowOnly:    "row_only",
	ColOnly:    "col_only",
	Folded:     "folded",
}

// Strategies returns every valid strategy.
func Strategies() []Strategy {
	out := make([]Strategy, numStrategies)
	for i := range out {
		out[i] = Strategy(i)
	}
	return out
}

// Valid returns true if s is one of the defined strategies.
func (s Strategy) Valid() bool {
	return s < numStrategies
}

func (s Strategy) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
	return strategyNames[s]
}

// ParseStrategy returns the strategy with the given name, case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("grid: unknown strategy %q: %w", name, ErrInvalidConfiguration)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("grid: strategy %d: %w", uint8(s), ErrInvalidConfiguration)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// UsesRows reports whether the strategy reads the row sequence.
func (s Strategy) UsesRows() bool { return s.Valid() && s != ColOnly }

// UsesCols reports whether the strategy reads the column sequence.
func (s Strategy) UsesCols() bool { return s == SumMod || s == ProductMod || s == ColOnly }
