package ancestry

import (
	"errors"
	"fmt"
)

// ErrAncestryConstruction indicates that a merge step found no qualifying
// row, or no column holding v[row] in that row.
// Build checks v first, so for valid input this signals an internal bug.
var ErrAncestryConstruction = errors.New("ancestry: no merge satisfies the selection rule")

// ancestryErrorf prefixes err with the method name and a formatted message.
func ancestryErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

// Triple is one merge event: ChildA and ChildB are joined under Parent.
type Triple struct {
	Parent int // label of the new internal node
	ChildA int // label that stood in the row being merged
	ChildB int // label found in the attachment column
}

// Ancestry is the full list of merges, root merge first.
type Ancestry []Triple

// NumLeaves returns the number of leaves covered by a, i.e. len(a)+1.
func (a Ancestry) NumLeaves() int {
	return len(a) + 1
}

// Root returns the root label, which is the parent of the first triple.
// ok is false for an empty ancestry (single-leaf tree).
func (a Ancestry) Root() (label int, ok bool) {
	if len(a) == 0 {
		return 0, false
	}
	return a[0].Parent, true
}

// Reverse returns a new Ancestry in the opposite order, turning the root-first
// output of Build into the leaf-most-first order that newick.Assemble reads.
// Complexity: O(k).
func (a Ancestry) Reverse() Ancestry {
	out := make(Ancestry, len(a))
	for i := range a {
		out[i] = a[len(a)-1-i]
	}

	return out
}
