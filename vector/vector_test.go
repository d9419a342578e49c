package vector_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phylo2vec/vector"
)

func TestCheck_Table(t *testing.T) {
	cases := []struct {
		name    string
		v       vector.Vector
		wantErr bool
		index   int
		value   int
	}{
		{name: "empty", v: vector.Vector{}},
		{name: "single zero", v: vector.Vector{0}},
		{name: "documented example", v: vector.Vector{0, 1, 4}},
		{name: "upper bounds", v: vector.Vector{0, 2, 4, 6, 8}},
		{name: "first nonzero", v: vector.Vector{1}, wantErr: true, index: 0, value: 1},
		{name: "too large mid", v: vector.Vector{0, 1, 5, 0}, wantErr: true, index: 2, value: 5},
		{name: "first of two violations", v: vector.Vector{0, 3, 9}, wantErr: true, index: 1, value: 3},
		{name: "negative", v: vector.Vector{0, -1}, wantErr: true, index: 1, value: -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := tc.v.Clone()
			err := vector.Check(tc.v)
			assert.Equal(t, before, tc.v, "Check must not mutate its input")
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, vector.ErrInvalidVector)

			var ive *vector.InvalidVectorError
			require.ErrorAs(t, err, &ive)
			assert.Equal(t, tc.index, ive.Index)
			assert.Equal(t, tc.value, ive.Value)
		})
	}
}

func TestSample_AlwaysValid(t *testing.T) {
	for k := 0; k < 120; k++ {
		v, err := vector.Sample(k)
		require.NoError(t, err)
		assert.Len(t, v, k)
		assert.NoError(t, vector.Check(v), "k=%d v=%v", k, v)
		if k > 0 {
			assert.Equal(t, 0, v[0])
		}
	}
}

func TestSample_NegativeSize(t *testing.T) {
	v, err := vector.Sample(-1)
	assert.Nil(t, v)
	assert.ErrorIs(t, err, vector.ErrNegativeSize)
}

func TestSample_SeedDeterminism(t *testing.T) {
	a, err := vector.Sample(50, vector.WithSeed(42))
	require.NoError(t, err)
	b, err := vector.Sample(50, vector.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must yield the same vector")

	z1, _ := vector.Sample(30, vector.WithSeed(0))
	z2, _ := vector.Sample(30, vector.WithSeed(0))
	assert.Equal(t, z1, z2, "seed 0 maps to a fixed default seed")
}

func TestSample_WithRandConsumesStream(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	a, err := vector.Sample(20, vector.WithRand(r))
	require.NoError(t, err)
	b, err := vector.Sample(20, vector.WithRand(r))
	require.NoError(t, err)
	assert.NoError(t, vector.Check(a))
	assert.NoError(t, vector.Check(b))

	ref := rand.New(rand.NewSource(7))
	c, _ := vector.Sample(20, vector.WithRand(ref))
	assert.Equal(t, a, c, "equal sources produce equal vectors")
}

func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { vector.WithRand(nil) })
}

func TestSample_SharedSourceConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				v, err := vector.Sample(25)
				if err == nil {
					err = vector.Check(v)
				}
				if err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func TestParse(t *testing.T) {
	v, err := vector.Parse([]string{"0", " 1", "4 ", ""})
	require.NoError(t, err)
	assert.Equal(t, vector.Vector{0, 1, 4}, v)

	_, err = vector.Parse([]string{"0", "x"})
	assert.ErrorIs(t, err, vector.ErrBadToken)

	_, err = vector.Parse([]string{"0", "3"})
	assert.ErrorIs(t, err, vector.ErrInvalidVector)

	v, err = vector.Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestVector_Helpers(t *testing.T) {
	v := vector.Vector{0, 1, 4}
	assert.Equal(t, 4, v.NumLeaves())
	assert.Equal(t, "[0 1 4]", v.String())
	assert.Equal(t, "[]", vector.Vector{}.String())

	c := v.Clone()
	c[1] = 2
	assert.Equal(t, 1, v[1], "Clone must not alias")
	assert.Nil(t, vector.Vector(nil).Clone())
}
