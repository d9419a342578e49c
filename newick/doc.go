/*
Package newick turns ancestry triples into Newick text and prepares Newick
text for decoding back into a Phylo2Vec vector.

Writing:

	Assemble reads merges leaf-most first and grows one text fragment per
	current subtree root, splicing and wrapping fragments until a single
	one remains. FromAncestry accepts the root-first output of
	ancestry.Build and reverses it first.

	    FromAncestry({{6,3,5},{5,4,0},{4,2,1}}) == "(((2,1)4,0)5,3)6;"

Normalizing:

	RemoveBranchLengthAnnotations, RemoveParentAnnotations and
	RemoveWhitespace strip everything the decoder does not read; Process
	applies all three. RemoveInternalLabels drops any label after ')',
	including clade names and support values that Process leaves behind. IntegerizeChildNodes replaces taxon names with
	integers in first-appearance order and returns the Mapping back to the
	names; ApplyMapping performs the inverse substitution. NumLeaves counts
	leaves as commas + 1.

Checking:

	CheckRootedBinary and Canonical parse the text with
	github.com/evolbioinfo/gotree and report whether it is a rooted binary
	tree, or give an order-independent rendering of its topology.

Only the reading side understands quoted labels ('Homo sapiens'); comments
in square brackets are not supported.
*/
package newick
