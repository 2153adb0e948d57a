package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prdtools/prd/pkg/sequence"
)

func mustSequence(t *testing.T, n uint64, opts ...sequence.Option) sequence.Sequence {
	t.Helper()
	s, err := sequence.Generate(n, opts...)
	require.NoError(t, err)
	return s
}

func TestCompose_RowOnly(t *testing.T) {
	row := mustSequence(t, 7)
	col := mustSequence(t, 6)
	g, err := Compose(6, 5, row, col, RowOnly, 0)
	require.NoError(t, err)
	assert.Equal(t, 6, g.Rows())
	assert.Equal(t, 5, g.Cols())
	assert.Equal(t, uint64(7), g.Range())
	for i := 0; i < g.Rows(); i++ {
		for _, v := range g.Row(i) {
			assert.Equal(t, row.At(i), v)
		}
	}
}

func TestCompose_ColOnly(t *testing.T) {
	row := mustSequence(t, 7)
	col := mustSequence(t, 11)
	g, err := Compose(3, 10, row, col, ColOnly, 0)
	require.NoError(t, err)
	for i := 0; i < g.Rows(); i++ {
		assert.Equal(t, col.Values(), g.Row(i))
	}
	assert.Equal(t, uint64(11), g.Range())
}

func TestCompose_SumMod(t *testing.T) {
	row := mustSequence(t, 7)
	col := mustSequence(t, 5)
	g, err := Compose(6, 4, row, col, SumMod, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), g.Range())

	// row = [1 3 2 6 4 5], col = [1 2 4 3]
	want := [][]uint64{
		{2, 3, 5, 4},
		{4, 5, 0, 6},
		{3, 4, 6, 5},
		{0, 1, 3, 2},
		{5, 6, 1, 0},
		{6, 0, 2, 1},
	}
	if diff := cmp.Diff(want, g.Values()); diff != "" {
		t.Errorf("sum_mod grid mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, g.DistinctLines())
}

func TestCompose_ProductMod(t *testing.T) {
	row := mustSequence(t, 7)
	col := mustSequence(t, 5)
	g, err := Compose(6, 4, row, col, ProductMod, 11)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), g.Range())
	for i := 0; i < 6; i++ {
		for j := 0; j < 4; j++ {
			assert.Equal(t, row.At(i)*col.At(j)%11, g.At(i, j))
		}
	}
}

func TestCompose_Wraps(t *testing.T) {
	row := mustSequence(t, 5)
	col := mustSequence(t, 3)
	g, err := Compose(9, 7, row, col, SumMod, 0)
	require.NoError(t, err)
	for i := 0; i < 9; i++ {
		for j := 0; j < 7; j++ {
			assert.Equal(t, (row.At(i%4)+col.At(j%2))%5, g.At(i, j))
		}
	}
}

func TestCompose_Folded(t *testing.T) {
	// 157 - 1 = 13 ⋅ 12
	s := mustSequence(t, 157)
	g, err := Compose(12, 13, s, sequence.Sequence{}, Folded, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(157), g.Range())

	seen := map[uint64]bool{}
	for _, v := range g.Cells() {
		assert.False(t, seen[v])
		seen[v] = true
	}
	assert.Len(t, seen, 156)
	for k := 0; k < 156; k++ {
		assert.Equal(t, s.At(k), g.At(k%12, k%13))
	}

	_, err = Compose(12, 12, s, sequence.Sequence{}, Folded, 0)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	s241 := mustSequence(t, 241)
	_, err = Compose(10, 24, s241, sequence.Sequence{}, Folded, 0)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestCompose_Errors(t *testing.T) {
	row := mustSequence(t, 7)
	col := mustSequence(t, 5)

	_, err := Compose(0, 5, row, col, SumMod, 0)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = Compose(5, -1, row, col, SumMod, 0)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = Compose(5, 5, row, col, Strategy(42), 0)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = Compose(5, 5, row, col, SumMod, 1)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = Compose(5, 5, row, sequence.Sequence{}, SumMod, 0)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = Compose(1<<13, 1<<13, row, col, SumMod, 0)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	// strategies ignore the sequences they do not read
	_, err = Compose(5, 5, row, sequence.Sequence{}, RowOnly, 0)
	assert.NoError(t, err)
}

func TestCompose_Idempotent(t *testing.T) {
	row := mustSequence(t, 13)
	col := mustSequence(t, 11)
	for _, s := range []Strategy{SumMod, ProductMod, RowOnly, ColOnly} {
		a, err := Compose(12, 10, row, col, s, 0)
		require.NoError(t, err)
		b, err := Compose(12, 10, row, col, s, 0)
		require.NoError(t, err)
		assert.True(t, a.Equal(b), s.String())
	}
}

func TestNew(t *testing.T) {
	g, err := New(2, 2, 3, []uint64{0, 1, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 2}, g.Col(0))

	_, err = New(2, 2, 3, []uint64{0, 1, 2})
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = New(2, 2, 2, []uint64{0, 1, 2, 0})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestParseStrategy(t *testing.T) {
	for _, s := range Strategies() {
		parsed, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)

		text, err := s.MarshalText()
		require.NoError(t, err)
		var back Strategy
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, s, back)
	}
	parsed, err := ParseStrategy(" SUM_MOD ")
	require.NoError(t, err)
	assert.Equal(t, SumMod, parsed)

	_, err = ParseStrategy("direct_product")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Equal(t, "Strategy(9)", Strategy(9).String())
}
