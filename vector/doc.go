// Package vector defines the Phylo2Vec integer vector, its validity rule,
// and a uniform sampler of valid vectors.
//
// What:
//
//	A Phylo2Vec vector v of length k encodes one rooted, fully binary,
//	unweighted tree topology over the k+1 leaves labelled 0..k. Leaf i+1 is
//	grafted onto the partial tree built from leaves 0..i, and v[i] names
//	the branch it attaches to, so the only constraint is
//
//	    0 ≤ v[i] ≤ 2i      (hence v[0] == 0)
//
// Key Types & Functions:
//
//   - Vector: []int with NumLeaves, Clone and String helpers.
//   - Check(v): returns *InvalidVectorError for the first offending index.
//   - Sample(k, opts...): draws v[i] uniformly from [0, 2i].
//   - Parse(fields): decimal tokens → checked Vector.
//   - WithSeed / WithRand: deterministic sampling for tests and fixtures.
//
// Concurrency:
//
//	Check and Parse are pure. Sample without options draws from a single
//	process-wide source seeded once at start-up and guarded by a mutex, so
//	concurrent callers are safe. A *rand.Rand passed through WithRand is
//	used as-is and must not be shared across goroutines.
//
// Complexity:
//
//   - Check:  O(k) time, O(1) memory.
//   - Sample: O(k) time, O(k) memory.
//
// Errors:
//
//   - ErrInvalidVector  (always wrapped by *InvalidVectorError)
//   - ErrNegativeSize   Sample(k) with k < 0
//   - ErrBadToken       Parse met a non-integer field
package vector
