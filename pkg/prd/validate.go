package prd

import (
	"fmt"
	"math"
	"strings"

	"github.com/prdtools/prd/internal/params"
	"github.com/prdtools/prd/pkg/grid"
	"github.com/prdtools/prd/pkg/math/numtheory"
	"github.com/prdtools/prd/pkg/sequence"
)

// ValidationError reports one problem with a Parameters field.
//
// Field names a Parameters field; problems involving several fields join
// their names with "/".
type ValidationError struct {
	Field string
	Value interface{}
	Err   error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s = %v: %v", e.Field, e.Value, e.Err)
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// Names reports whether field is one of the fields e is about.
func (e ValidationError) Names(field string) bool {
	for _, f := range strings.Split(e.Field, "/") {
		if f == field {
			return true
		}
	}
	return false
}

// ValidationErrors is every problem found by Validate, in field order.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return "prd: invalid parameters: " + strings.Join(msgs, "; ")
}

// Unwrap lets errors.Is and errors.As match any of the individual errors.
func (errs ValidationErrors) Unwrap() []error {
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}

// Err returns errs as an error, or nil when there are none.
func (errs ValidationErrors) Err() error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Has reports whether any error is about field.
func (errs ValidationErrors) Has(field string) bool {
	for _, e := range errs {
		if e.Names(field) {
			return true
		}
	}
	return false
}

func (errs *ValidationErrors) add(field string, value interface{}, err error) {
	*errs = append(*errs, ValidationError{Field: field, Value: value, Err: err})
}

// Validate is shorthand for p.Validate().
func Validate(p Parameters) ValidationErrors {
	return p.Validate()
}

// Validate checks every field of p and returns all problems found, or nil.
func (p Parameters) Validate() ValidationErrors {
	var errs ValidationErrors

	dims := true
	if p.Rows <= 0 {
		errs.add("Rows", p.Rows, grid.ErrInvalidDimensions)
		dims = false
	}
	if p.Cols <= 0 {
		errs.add("Cols", p.Cols, grid.ErrInvalidDimensions)
		dims = false
	}
	if dims {
		if err := grid.CheckDimensions(p.Rows, p.Cols); err != nil {
			errs.add("Rows/Cols", shape(p.Rows, p.Cols), err)
			dims = false
		}
	}

	if !p.Strategy.Valid() {
		errs.add("Strategy", p.Strategy, grid.ErrInvalidConfiguration)
	} else {
		if p.Strategy.UsesRows() {
			p.validateAxis(&errs, "Row", p.RowModulus, p.RowModulusOrDefault(), p.RowRoot)
		}
		if p.Strategy.UsesCols() {
			p.validateAxis(&errs, "Col", p.ColModulus, p.ColModulusOrDefault(), p.ColRoot)
		}
		if (p.Strategy == grid.SumMod || p.Strategy == grid.ProductMod) && p.Modulus == 1 {
			errs.add("Modulus", p.Modulus, fmt.Errorf("%s needs a modulus of at least 2: %w", p.Strategy, grid.ErrInvalidConfiguration))
		}
		if p.Strategy == grid.Folded && dims {
			p.validateFolded(&errs)
		}
	}

	if math.IsNaN(p.Step) || math.IsInf(p.Step, 0) || p.Step < 0 {
		errs.add("Step", p.Step, numtheory.ErrInvalidArgument)
	}
	if p.Offset != nil && (math.IsNaN(*p.Offset) || math.IsInf(*p.Offset, 0)) {
		errs.add("Offset", *p.Offset, numtheory.ErrInvalidArgument)
	}
	if math.IsNaN(p.Quantum) || math.IsInf(p.Quantum, 0) || p.Quantum < 0 {
		errs.add("Quantum", p.Quantum, numtheory.ErrInvalidArgument)
	}
	if math.IsNaN(p.DesignFrequency) || math.IsInf(p.DesignFrequency, 0) || p.DesignFrequency < 0 {
		errs.add("DesignFrequency", p.DesignFrequency, numtheory.ErrInvalidArgument)
	}
	if math.IsNaN(p.SpeedOfSound) || math.IsInf(p.SpeedOfSound, 0) || p.SpeedOfSound < 0 {
		errs.add("SpeedOfSound", p.SpeedOfSound, numtheory.ErrInvalidArgument)
	}
	if p.Step > 0 && p.DesignFrequency > 0 {
		errs.add("Step/DesignFrequency", p.Step, fmt.Errorf("step and design frequency are exclusive: %w", grid.ErrInvalidConfiguration))
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// validateAxis checks the modulus and root of one axis. explicit is the
// modulus as given, n the one in effect.
func (p Parameters) validateAxis(errs *ValidationErrors, axis string, explicit, n, root uint64) {
	modulusField, rootField := axis+"Modulus", axis+"Root"
	if n == 0 && explicit == 0 {
		// derived from an invalid dimension, already reported
		return
	}
	if n < 2 || n > params.MaxModulus {
		errs.add(modulusField, n, fmt.Errorf("modulus must be in [2, %d]: %w", uint64(params.MaxModulus), numtheory.ErrInvalidArgument))
		return
	}
	entry, err := p.Kernel.Lookup(n)
	if err != nil {
		errs.add(modulusField, n, err)
		return
	}
	switch {
	case root == 0:
		if !entry.HasRoot() {
			errs.add(modulusField, n, numtheory.ErrNoPrimitiveRoot)
		}
	case entry.HasRoot():
		if !p.Kernel.IsPrimitiveRoot(root, n) {
			errs.add(rootField, root, fmt.Errorf("modulo %d: %w", n, sequence.ErrNotPrimitiveRoot))
		}
	default:
		if !numtheory.IsCoprime(root, n) {
			errs.add(rootField, root, fmt.Errorf("modulo %d: %w", n, numtheory.ErrNotCoprime))
		}
	}
}

// validateFolded checks that the grid holds exactly one period of a prime
// modulus and that its sides are coprime.
func (p Parameters) validateFolded(errs *ValidationErrors) {
	n := p.RowModulusOrDefault()
	cells := uint64(p.Rows) * uint64(p.Cols)
	if !numtheory.IsPrime(n) {
		errs.add("RowModulus", n, fmt.Errorf("folded modulus is not a prime: %w", grid.ErrInvalidConfiguration))
	}
	if cells+1 != n {
		errs.add("Rows/Cols", shape(p.Rows, p.Cols), fmt.Errorf("rows·cols must equal modulus-1 = %d: %w", n-1, grid.ErrInvalidConfiguration))
	}
	if !numtheory.IsCoprime(uint64(p.Rows), uint64(p.Cols)) {
		errs.add("Rows/Cols", shape(p.Rows, p.Cols), fmt.Errorf("rows and cols must be coprime: %w", grid.ErrInvalidConfiguration))
	}
}

func shape(rows, cols int) string {
	return fmt.Sprintf("%d×%d", rows, cols)
}
