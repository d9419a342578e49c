package reconstruct_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phylo2vec/ancestry"
	"github.com/katalvlaran/phylo2vec/newick"
	"github.com/katalvlaran/phylo2vec/reconstruct"
	"github.com/katalvlaran/phylo2vec/vector"
)

func TestToVector_KnownTrees(t *testing.T) {
	cases := []struct {
		name string
		nw   string
		n    int
		want vector.Vector
	}{
		{name: "single leaf", nw: "0;", n: 1, want: vector.Vector{0}},
		{name: "cherry", nw: "(1,0);", n: 2, want: vector.Vector{0, 0}},
		{name: "cherry swapped", nw: "(0,1);", n: 2, want: vector.Vector{0, 0}},
		{name: "0 0", nw: "((2,0),1);", n: 3, want: vector.Vector{0, 0, 0}},
		{name: "0 1", nw: "((2,1),0);", n: 3, want: vector.Vector{0, 0, 1}},
		{name: "0 2", nw: "((1,0),2);", n: 3, want: vector.Vector{0, 0, 2}},
		{name: "0 1 4", nw: "(((2,1),0),3);", n: 4, want: vector.Vector{0, 0, 1, 4}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := reconstruct.ToVector(tc.nw, tc.n)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestToVector_RoundTrip encodes sampled vectors and decodes them back.
func TestToVector_RoundTrip(t *testing.T) {
	for k := 1; k < 103; k++ {
		v, err := vector.Sample(k, vector.WithSeed(int64(7*k+1)))
		require.NoError(t, err)

		a, err := ancestry.Build(v)
		require.NoError(t, err)
		nw, err := newick.FromAncestry(a)
		require.NoError(t, err)

		got, err := reconstruct.ToVector(newick.Process(nw), k+1)
		require.NoError(t, err, "k=%d %s", k, nw)
		require.Len(t, got, k+1)
		assert.Equal(t, 0, got[0])
		assert.Equal(t, v, got[1:], "k=%d", k)
	}
}

func TestToVector_Errors(t *testing.T) {
	_, err := reconstruct.ToVector("0;", 0)
	assert.ErrorIs(t, err, reconstruct.ErrBadLeafCount)

	cases := []struct {
		name string
		nw   string
		n    int
	}{
		{name: "unrooted", nw: "(0,1,2);", n: 3},
		{name: "taxa", nw: "(a,b);", n: 2},
		{name: "leaf out of range", nw: "(0,7);", n: 2},
		{name: "too few leaves claimed", nw: "((0,1),2);", n: 2},
		{name: "repeated leaf", nw: "(0,0);", n: 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := reconstruct.ToVector(tc.nw, tc.n)
			assert.Nil(t, got)
			require.ErrorIs(t, err, reconstruct.ErrNewickDecode)

			var de *reconstruct.DecodeError
			require.True(t, errors.As(err, &de))
			assert.NotEmpty(t, de.Reason)
			assert.Contains(t, err.Error(), "unrooted or non-binary")
		})
	}
}

func TestDecodeError_Diagnosis(t *testing.T) {
	err := &reconstruct.DecodeError{Reason: "no cherry found", Iteration: 0, Diagnosis: newick.ErrUnrooted}
	assert.ErrorIs(t, err, reconstruct.ErrNewickDecode)
	assert.ErrorIs(t, err, newick.ErrUnrooted)
	assert.Equal(t, "reconstruct: no cherry found (step 0): newick: tree is unrooted", err.Error())

	final := &reconstruct.DecodeError{Reason: "leftover structure", Iteration: -1}
	assert.NotErrorIs(t, final, newick.ErrUnrooted)
	assert.Contains(t, final.Error(), "reconstruct: leftover structure: ")
}
