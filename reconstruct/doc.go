// Package reconstruct turns integer-labelled Newick text back into a
// Phylo2Vec vector.
//
// The decoder never builds a node graph. It repeatedly locates the
// innermost cherry "(a,b)" whose label belongs to the right-most unresolved
// leaf position, records where that leaf was attached, and collapses the
// cherry into a fresh label directly in the text. After num_leaves-1 steps
// the text has shrunk to a single label.
//
// Input must already be normalized: no whitespace, no branch lengths and no
// internal labels (see newick.Process), and every leaf an integer in
// [0, num_leaves). Taxon names are handled one level up by
// newick.IntegerizeChildNodes.
//
// The returned vector has num_leaves entries and a leading 0, so the
// encoder's input is the result without its first element.
//
// Errors:
//   - ErrBadLeafCount when num_leaves < 1.
//   - *DecodeError (errors.Is ErrNewickDecode) when no cherry can be found,
//     a leaf is outside the label range, or structure is left over.
package reconstruct
