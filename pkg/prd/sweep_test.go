package prd

import (
	"context"
	"testing"

	"github.com/prdtools/prd/pkg/cache"
	"github.com/prdtools/prd/pkg/grid"
	"github.com/prdtools/prd/pkg/math/numtheory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweep(t *testing.T) {
	k := numtheory.NewKernel(cache.New(0))
	var ps []Parameters
	for _, s := range []grid.Strategy{grid.SumMod, grid.ProductMod, grid.RowOnly, grid.ColOnly} {
		for rows := 1; rows <= 6; rows++ {
			ps = append(ps, Parameters{Rows: rows, Cols: 4, Strategy: s, Kernel: k})
		}
	}
	ps = append(ps, tableParameters(157, 5, 13, 12, 500))

	layouts, err := Sweep(context.Background(), ps, 3, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, layouts, len(ps))
	for i, l := range layouts {
		want, err := Compute(ps[i])
		require.NoError(t, err)
		assert.Equal(t, want.Fingerprint, l.Fingerprint, i)
	}
}

func TestSweepError(t *testing.T) {
	ps := []Parameters{
		{Rows: 6, Cols: 5},
		{Rows: 6, Cols: 7},
	}
	_, err := Sweep(context.Background(), ps, 0, zerolog.Nop())
	assert.ErrorIs(t, err, numtheory.ErrNoPrimitiveRoot)
	assert.Contains(t, err.Error(), "sweep entry 1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Sweep(ctx, ps[:1], 1, zerolog.Nop())
	assert.ErrorIs(t, err, context.Canceled)
}
