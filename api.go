package phylo2vec

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/phylo2vec/ancestry"
	"github.com/katalvlaran/phylo2vec/newick"
	"github.com/katalvlaran/phylo2vec/reconstruct"
	"github.com/katalvlaran/phylo2vec/vector"
)

// UnknownLeaves asks the decoders to count the leaves from the text.
const UnknownLeaves = -1

// ErrLeafCountMismatch indicates that a supplied leaf count disagrees with
// the number of leaves in the Newick text.
var ErrLeafCountMismatch = errors.New("phylo2vec: leaf count does not match the newick text")

// Result is the output of Newick2V and Newick2VWithMapping.
//
// V holds one entry per leaf and starts with a placeholder 0, so it is one
// longer than the encoding of the tree: V.NumLeaves() overcounts by one
// and ToNewick(V) describes a different tree. Use Vector for the encoding.
type Result struct {
	V         vector.Vector  // one entry per leaf, V[0] == 0
	NumLeaves int            // leaves in the decoded tree
	Mapping   newick.Mapping // integer → taxon; nil for Newick2V
}

// Vector returns the encoding of the decoded tree, V without its leading
// placeholder. It shares storage with V.
func (r Result) Vector() vector.Vector {
	if len(r.V) == 0 {
		return vector.Vector{}
	}
	return r.V[1:]
}

// Sample returns a uniformly random vector of length k. See vector.Sample.
func Sample(k int, opts ...vector.Option) (vector.Vector, error) {
	return vector.Sample(k, opts...)
}

// CheckV reports whether v satisfies 0 ≤ v[i] ≤ 2i. See vector.Check.
func CheckV(v vector.Vector) error {
	return vector.Check(v)
}

// ToNewick writes the integer-labelled Newick string of v: leaves 0..k,
// internal nodes labelled k+1..2k in merge order, root last.
//
// Errors: *vector.InvalidVectorError, ancestry.ErrAncestryConstruction or
// newick.ErrAssembly, each wrapped.
func ToNewick(v vector.Vector) (string, error) {
	a, err := ancestry.Build(v)
	if err != nil {
		return "", fmt.Errorf("ToNewick: %w", err)
	}
	nw, err := newick.FromAncestry(a)
	if err != nil {
		return "", fmt.Errorf("ToNewick: %w", err)
	}

	return nw, nil
}

// ToNewickWithMapping writes the Newick string of v with leaf integers
// replaced by their taxa from m. Leaves missing from m keep their integer.
func ToNewickWithMapping(v vector.Vector, m newick.Mapping) (string, error) {
	nw, err := ToNewick(v)
	if err != nil {
		return "", err
	}
	nw, err = newick.ApplyMapping(nw, m)
	if err != nil {
		return "", fmt.Errorf("ToNewickWithMapping: %w", err)
	}

	return nw, nil
}

// Newick2V decodes integer-labelled Newick text. Whitespace, branch
// lengths and internal labels (numeric or named) are stripped first. Pass
// UnknownLeaves to count leaves from the text.
//
// Errors:
//   - ErrLeafCountMismatch when numLeaves is given and wrong.
//   - *reconstruct.DecodeError for unrooted, non-binary or taxon-labelled
//     input; its Diagnosis names the topology problem when one is found.
func Newick2V(text string, numLeaves int) (Result, error) {
	nw, err := normalize(text)
	if err != nil {
		return Result{}, fmt.Errorf("Newick2V: %w", err)
	}
	v, n, err := decode(nw, numLeaves)
	if err != nil {
		return Result{}, fmt.Errorf("Newick2V: %w", err)
	}

	return Result{V: v, NumLeaves: n}, nil
}

// Newick2VWithMapping is Newick2V for text whose leaves are taxon names.
// Names are replaced by integers in order of first appearance before
// decoding, and the returned Mapping turns them back.
func Newick2VWithMapping(text string, numLeaves int) (Result, error) {
	nw, err := normalize(text)
	if err != nil {
		return Result{}, fmt.Errorf("Newick2VWithMapping: %w", err)
	}
	nw, m, err := newick.IntegerizeChildNodes(nw)
	if err != nil {
		return Result{}, fmt.Errorf("Newick2VWithMapping: %w", err)
	}
	v, n, err := decode(nw, numLeaves)
	if err != nil {
		return Result{}, fmt.Errorf("Newick2VWithMapping: %w", err)
	}

	return Result{V: v, NumLeaves: n, Mapping: m}, nil
}

// normalize strips everything but the structure and the leaf labels.
func normalize(text string) (string, error) {
	return newick.RemoveInternalLabels(newick.Process(text))
}

// decode resolves the leaf count and runs the reconstructor on normalized
// text, attaching a topology diagnosis to decode failures.
func decode(nw string, numLeaves int) (vector.Vector, int, error) {
	count := newick.NumLeaves(nw)
	switch {
	case numLeaves == UnknownLeaves:
		numLeaves = count
	case numLeaves != count:
		return nil, 0, fmt.Errorf("got %d, text has %d: %w", numLeaves, count, ErrLeafCountMismatch)
	}

	v, err := reconstruct.ToVector(nw, numLeaves)
	if err != nil {
		var de *reconstruct.DecodeError
		if errors.As(err, &de) && de.Diagnosis == nil {
			de.Diagnosis = newick.CheckRootedBinary(nw)
		}
		return nil, 0, err
	}

	return v, numLeaves, nil
}
