// Package ancestry converts a Phylo2Vec vector into the ordered list of merge
// events ("ancestry triples") that builds the encoded tree.
//
// What:
//
//	For a vector v of length k the tree has leaves 0..k and k internal
//	nodes labelled k+1..2k in creation order. Build replays the k merges
//	without ever materializing nodes: a k×(k+1) integer "view" table keeps,
//	for every row, the highest label visible through it, and the next row
//	to merge is the LARGEST unprocessed row r with v[r] ≤ max(view[r]).
//
// Output order:
//
//	Build returns the triples root first: position 0 is the last merge
//	performed (the root), position k-1 the first (leaf-most) merge. Each
//	triple reads (Parent, ChildA, ChildB). Use Reverse for leaf-most first.
//
// Example (v = [0, 1, 4]):
//
//	Build(v) == Ancestry{{6, 3, 5}, {5, 4, 0}, {4, 2, 1}}
//
// Complexity:
//
//   - Time:   O(k²) (row maxima are cached; the column search is O(k)).
//   - Memory: O(k²) for the view table.
//
// Errors:
//
//   - *vector.InvalidVectorError  v breaks 0 ≤ v[i] ≤ 2i (re-validated here)
//   - ErrAncestryConstruction     no row or column satisfies the selection rule
package ancestry
