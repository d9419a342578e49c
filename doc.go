// Package phylo2vec encodes rooted binary phylogenetic trees as integer
// vectors and back, using the Phylo2Vec representation.
//
// What is a Phylo2Vec vector?
//
//	A vector v of length k with 0 ≤ v[i] ≤ 2i describes a rooted, fully
//	binary tree on k+1 leaves labelled 0..k. Every such tree has exactly
//	one vector, and every vector in range is a tree, so uniform sampling
//	of v is uniform sampling of topologies.
//
// What's inside?
//
//	vector/      — Vector type, Check, seeded or shared-source Sample
//	ancestry/    — view table and Build: v → merge triples, root first
//	newick/      — triples → Newick, annotation stripping, taxon mapping,
//	               topology checks (gotree)
//	reconstruct/ — Newick → v by collapsing cherries in the text
//	cmd/phylo2vec — command-line front end
//
// This package wires them into the two directions users need:
//
//	nw, _ := phylo2vec.ToNewick(vector.Vector{0, 1, 4})
//	// nw == "(((2,1)4,0)5,3)6;"
//
//	res, _ := phylo2vec.Newick2V(nw, phylo2vec.UnknownLeaves)
//	// res.V == [0 0 1 4], res.NumLeaves == 4
//
// Decoded vectors carry a leading 0 (one entry per leaf); drop it to get
// the encoder's input back.
//
// Taxon names go through Newick2VWithMapping and ToNewickWithMapping,
// which substitute integers for names on the way in and names for
// integers on the way out.
//
// Nothing here logs, retries or keeps state between calls except the
// process-wide random source used by Sample without a seed.
//
//	go get github.com/katalvlaran/phylo2vec
package phylo2vec
