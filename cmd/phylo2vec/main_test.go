package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/phylo2vec/newick"
	"github.com/katalvlaran/phylo2vec/vector"
)

// run executes the app with args and returns what it wrote to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &bytes.Buffer{}
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"phylo2vec", "--verbosity", "0"}, args...))
	return out.String(), err
}

func TestToNewickCommand(t *testing.T) {
	out, err := run(t, "to-newick", "0", "1", "4")
	require.NoError(t, err)
	assert.Equal(t, "Newick string: (((2,1)4,0)5,3)6;\n", out)

	out, err = run(t, "to-newick", "0,1,4")
	require.NoError(t, err)
	assert.Equal(t, "Newick string: (((2,1)4,0)5,3)6;\n", out)

	_, err = run(t, "to-newick", "0", "3")
	assert.Error(t, err)
}

func TestToVectorCommand(t *testing.T) {
	out, err := run(t, "to-vector", "--num-leaves", "4", "(((2,1)4,0)5,3)6;")
	require.NoError(t, err)
	assert.Equal(t, "Integer vector: 0 0 1 4\n", out)

	out, err = run(t, "to-vector", "--taxa", "((human,chimp),gorilla);")
	require.NoError(t, err)
	assert.Equal(t, "Integer vector: 0 0 2\n0\thuman\n1\tchimp\n2\tgorilla\n", out)

	_, err = run(t, "to-vector", "(0,1,2);")
	assert.Error(t, err)

	_, err = run(t, "to-vector")
	assert.Error(t, err)
}

func TestSampleCommand(t *testing.T) {
	a, err := run(t, "sample", "--k", "8", "--seed", "42")
	require.NoError(t, err)
	b, err := run(t, "sample", "--k", "8", "--seed", "42")
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed, same tree")
	assert.Contains(t, a, "Newick string: ")
}

func TestSplitArgs(t *testing.T) {
	assert.Equal(t, []string{"0", "1", "4"}, splitArgs([]string{"0 1", "4"}))
	assert.Equal(t, []string{"0", "1", "4"}, splitArgs([]string{"0,1,4"}))
	assert.Empty(t, splitArgs(nil))
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "0 2 4", joinInts(vector.Vector{0, 2, 4}))
	assert.Equal(t, "0\ta\n2\tb\n", formatMapping(newick.Mapping{2: "b", 0: "a"}))
}
