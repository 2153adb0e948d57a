package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prdtools/prd/pkg/cache"
	"github.com/prdtools/prd/pkg/math/numtheory"
)

func TestGenerate_Seven(t *testing.T) {
	s, err := Generate(7)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), s.Root())
	assert.Equal(t, []uint64{1, 3, 2, 6, 4, 5}, s.Values())
	assert.True(t, s.IsPermutation())
}

func TestGenerate_StartsAtOne(t *testing.T) {
	s, err := Generate(7, WithStart(1))
	require.NoError(t, err)
	assert.Equal(t, []uint64{3, 2, 6, 4, 5, 1}, s.Values())
	assert.Equal(t, uint64(1), s.Start())
}

func TestGenerate_Primes(t *testing.T) {
	for p := uint64(3); p < 500; p++ {
		if !numtheory.IsPrime(p) {
			continue
		}
		s, err := Generate(p)
		require.NoError(t, err)
		require.Equal(t, int(p-1), s.Len())
		seen := make([]bool, p)
		for _, v := range s.Values() {
			require.True(t, v >= 1 && v < p)
			assert.False(t, seen[v])
			seen[v] = true
		}
	}
}

func TestGenerate_PrimePowers(t *testing.T) {
	for _, n := range []uint64{4, 9, 25, 27, 18, 50, 54, 98} {
		s, err := Generate(n)
		require.NoError(t, err, "n = %d", n)
		assert.Equal(t, int(numtheory.Totient(n)), s.Len())
		assert.True(t, s.IsPermutation())
		for _, v := range s.Values() {
			assert.True(t, numtheory.IsCoprime(v, n))
		}
	}
}

func TestGenerate_EvenModulus(t *testing.T) {
	s, err := Generate(4)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), s.Root())
	assert.Equal(t, []uint64{1, 3}, s.Values())

	s, err = Generate(6)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 5}, s.Values())

	for _, n := range []uint64{18, 50, 54, 98, 686, 2 * 157} {
		s, err := Generate(n)
		require.NoError(t, err, "n = %d", n)
		require.Equal(t, int(numtheory.Totient(n)), s.Len(), "n = %d", n)
		assert.True(t, s.IsPermutation(), "n = %d", n)
		for _, v := range s.Values() {
			require.NotZero(t, v, "n = %d", n)
			require.True(t, numtheory.IsCoprime(v, n), "n = %d", n)
		}
		assert.Equal(t, uint64(1), s.At(0))
		assert.Equal(t, s.Root(), s.At(1))
	}
}

func TestGenerate_Degenerate(t *testing.T) {
	s, err := Generate(1)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, uint64(1), s.Root())

	s, err = Generate(2)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1}, s.Values())

	_, err = Generate(2, WithRoot(4))
	assert.ErrorIs(t, err, numtheory.ErrNotCoprime)

	_, err = Generate(0)
	assert.ErrorIs(t, err, numtheory.ErrInvalidArgument)
}

func TestGenerate_NoPrimitiveRoot(t *testing.T) {
	for _, n := range []uint64{8, 12, 15, 16, 20} {
		_, err := Generate(n)
		assert.ErrorIs(t, err, numtheory.ErrNoPrimitiveRoot, "n = %d", n)
	}
}

func TestGenerate_ExplicitRoot(t *testing.T) {
	s, err := Generate(7, WithRoot(5))
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 5, 4, 6, 2, 3}, s.Values())

	for _, g := range []uint64{2, 3, 4, 7, 8, 9, 10, 11, 12, 13, 14} {
		_, err := Generate(157, WithRoot(g))
		assert.ErrorIs(t, err, ErrNotPrimitiveRoot, "g = %d", g)
		assert.ErrorIs(t, err, numtheory.ErrInvalidArgument, "g = %d", g)
	}
}

func TestGenerate_ExplicitRootNonCyclic(t *testing.T) {
	// (ℤ/15)ˣ is not cyclic; 2 has order 4 = λ(15).
	s, err := Generate(15, WithRoot(2))
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 4, 8}, s.Values())

	_, err = Generate(15, WithRoot(5))
	assert.ErrorIs(t, err, numtheory.ErrNotCoprime)
}

func TestGenerate_Deterministic(t *testing.T) {
	k := numtheory.NewKernel(cache.New(0))
	a, err := Generate(241, WithKernel(k))
	require.NoError(t, err)
	b, err := Generate(241)
	require.NoError(t, err)
	c, err := Generate(241, WithKernel(k))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(c))
	assert.Equal(t, uint64(7), a.Root())
}

func TestSequence_At(t *testing.T) {
	s, err := Generate(7)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), s.At(6))
	assert.Equal(t, uint64(3), s.At(7))
	assert.Equal(t, uint64(5), s.At(-1))
}

func TestFromValues(t *testing.T) {
	s, err := FromValues(7, 3, 0, []uint64{1, 3, 2, 6, 4, 5})
	require.NoError(t, err)
	want, _ := Generate(7)
	assert.True(t, want.Equal(s))

	_, err = FromValues(7, 3, 0, []uint64{1, 3, 2, 6, 5, 4})
	assert.Error(t, err)
	_, err = FromValues(0, 1, 0, nil)
	assert.ErrorIs(t, err, numtheory.ErrInvalidArgument)
}

func TestFromValues_Small(t *testing.T) {
	for _, n := range []uint64{1, 2} {
		want, err := Generate(n)
		require.NoError(t, err)
		s, err := FromValues(n, want.Root(), want.Start(), want.Values())
		require.NoError(t, err, "n = %d", n)
		assert.True(t, want.Equal(s))
	}

	_, err := FromValues(1, 1, 0, []uint64{0})
	assert.Error(t, err)
	_, err = FromValues(2, 1, 0, []uint64{5})
	assert.Error(t, err)
	_, err = FromValues(2, 1, 0, []uint64{1, 1})
	assert.Error(t, err)
	_, err = FromValues(2, 4, 0, []uint64{1})
	assert.Error(t, err)
	_, err = FromValues(2, 1, 0, nil)
	assert.Error(t, err)
	_, err = FromValues(7, 3, 0, nil)
	assert.Error(t, err)
}

func TestFromValues_EvenModulus(t *testing.T) {
	for _, n := range []uint64{4, 6, 18, 50, 54, 98, 686} {
		want, err := Generate(n)
		require.NoError(t, err, "n = %d", n)
		s, err := FromValues(n, want.Root(), want.Start(), want.Values())
		require.NoError(t, err, "n = %d", n)
		assert.True(t, want.Equal(s))

		zeros := make([]uint64, want.Len())
		_, err = FromValues(n, want.Root(), want.Start(), zeros)
		assert.Error(t, err, "n = %d", n)
	}
}
