package newick

import "errors"

var (
	// ErrAssembly indicates that the merge list did not collapse into a
	// single tree (missing, repeated or unknown labels).
	ErrAssembly = errors.New("newick: triples do not form a single tree")

	// ErrParse indicates malformed Newick text (unbalanced quotes, parser failure).
	ErrParse = errors.New("newick: malformed text")

	// ErrUnrooted indicates a basal trifurcation, the usual unrooted notation.
	ErrUnrooted = errors.New("newick: tree is unrooted")

	// ErrNonBinary indicates an internal node with other than two children.
	ErrNonBinary = errors.New("newick: tree is not binary")

	// ErrUnknownLeaf indicates that ApplyMapping met a leaf that is not an integer label.
	ErrUnknownLeaf = errors.New("newick: leaf is not an integer label")
)
