package depth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prdtools/prd/pkg/grid"
	"github.com/prdtools/prd/pkg/sequence"
)

func sumGrid(t *testing.T) grid.Grid {
	t.Helper()
	row, err := sequence.Generate(7)
	require.NoError(t, err)
	col, err := sequence.Generate(5)
	require.NoError(t, err)
	g, err := grid.Compose(6, 4, row, col, grid.SumMod, 0)
	require.NoError(t, err)
	return g
}

func TestNormalize_RoundTrip(t *testing.T) {
	g := sumGrid(t)
	d, err := Normalize(g, 1, WithOffset(0))
	require.NoError(t, err)
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			assert.Equal(t, float64(g.At(i, j)), d.At(i, j))
		}
	}
	assert.Equal(t, d.Values(), Raw(g).Values())
}

func TestNormalize_SymmetricOffset(t *testing.T) {
	g := sumGrid(t)
	d, err := Normalize(g, 2.5)
	require.NoError(t, err)
	// K = 7, offset = -2.5 ⋅ 6 / 2
	assert.Equal(t, -7.5, d.Offset())
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			assert.InDelta(t, -7.5+2.5*float64(g.At(i, j)), d.At(i, j), 1e-12)
		}
	}
	assert.Equal(t, -7.5, d.Min())
	assert.Equal(t, 7.5, d.Max())
}

func TestNormalize_Quantum(t *testing.T) {
	g := sumGrid(t)
	d, err := Normalize(g, 1.3, WithOffset(0), WithQuantum(0.5))
	require.NoError(t, err)
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			v := d.At(i, j)
			assert.InDelta(t, 0, math.Remainder(v, 0.5), 1e-9)
			assert.InDelta(t, 1.3*float64(g.At(i, j)), v, 0.25+1e-9)
		}
	}
	assert.Equal(t, 0.5, d.Quantum())

	unrounded, err := Normalize(g, 1.3, WithOffset(0))
	require.NoError(t, err)
	assert.InDelta(t, 1.3*float64(g.At(0, 0)), unrounded.At(0, 0), 1e-12)
	assert.Zero(t, unrounded.Quantum())
}

func TestNormalize_InvalidArguments(t *testing.T) {
	g := sumGrid(t)
	for _, step := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := Normalize(g, step)
		assert.ErrorIs(t, err, ErrInvalidArgument, "step %v", step)
	}
	_, err := Normalize(g, 1, WithQuantum(-0.1))
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = Normalize(g, 1, WithOffset(math.NaN()))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGrid_Shift(t *testing.T) {
	g := sumGrid(t)
	d := Raw(g)
	shifted := d.Shift(-3)
	assert.Equal(t, -3.0, shifted.Offset())
	assert.Equal(t, d.At(2, 3)-3, shifted.At(2, 3))
	assert.Equal(t, float64(g.At(2, 3)), d.At(2, 3))
}

func TestSymmetricOffset(t *testing.T) {
	assert.Equal(t, 0.0, SymmetricOffset(1, 0))
	assert.Equal(t, 0.0, SymmetricOffset(1, 1))
	assert.Equal(t, -3.0, SymmetricOffset(1, 7))
}
