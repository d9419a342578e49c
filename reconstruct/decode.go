// SPDX-License-Identifier: MIT

package reconstruct

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/phylo2vec/newick"
	"github.com/katalvlaran/phylo2vec/vector"
)

// decoder holds the per-call state of ToVector.
type decoder struct {
	nw        string // remaining text, cherries collapse in place
	n         int    // number of leaves
	labels    []int  // current label standing for each leaf position
	processed []bool // positions already resolved
	vmin      []int  // index shift accumulated by each position
	maxLabel  int    // max(labels), grows by one per step
}

func newDecoder(nw string, n int) *decoder {
	d := &decoder{
		nw:        nw,
		n:         n,
		labels:    make([]int, n),
		processed: make([]bool, n),
		vmin:      make([]int, n),
		maxLabel:  n - 1,
	}
	for i := range d.labels {
		d.labels[i] = i
	}

	return d
}

// ToVector decodes normalized integer Newick text into a vector of length
// numLeaves whose first entry is 0.
//
// Each step scans leaf positions right to left, skipping resolved ones, for
// a label written as "(label,X)" or "(X,label)" with X a plain integer. The
// first hit fixes the position being resolved (right) and its sibling
// (left). Positions to the right of it shift their vmin, the sibling takes a
// fresh label, v[right] is written, and the cherry is replaced by the fresh
// label in the text.
//
// Errors:
//   - ErrBadLeafCount when numLeaves < 1.
//   - *DecodeError when the text is not a rooted binary tree over
//     integer leaves 0..numLeaves-1.
//
// Complexity: O(n²·L) worst case where L is the text length.
func ToVector(nw string, numLeaves int) (vector.Vector, error) {
	if numLeaves < 1 {
		return nil, fmt.Errorf("ToVector(%d): %w", numLeaves, ErrBadLeafCount)
	}

	d := newDecoder(nw, numLeaves)
	v := make(vector.Vector, numLeaves)

	for step := 0; step < numLeaves-1; step++ {
		leftLeaf, idx, ok := d.findLeftLeaf()
		if !ok {
			return nil, decodeErrorf(step, "no cherry found")
		}

		leftInd := slices.Index(d.labels, leftLeaf)
		if leftInd < 0 {
			return nil, decodeErrorf(step, "leaf %d is not a current label", leftLeaf)
		}
		right := numLeaves - idx - 1

		d.updateVmin(right)

		d.maxLabel++
		d.labels[leftInd] = d.maxLabel

		if d.vmin[right] == 0 {
			v[right] = leftInd
		} else {
			v[right] = d.vmin[right]
		}
		d.processed[right] = true

		if !d.collapse(leftLeaf, d.labels[right], d.labels[leftInd]) {
			return nil, decodeErrorf(step, "cherry of %d and %d not in text", leftLeaf, d.labels[right])
		}
	}

	if !newick.IsDigits(strings.TrimSuffix(d.nw, ";")) {
		return nil, decodeErrorf(-1, "leftover structure %q", d.nw)
	}
	if err := vector.Check(v); err != nil {
		return nil, decodeErrorf(-1, "decoded vector is invalid: %v", err)
	}

	return v, nil
}

// findLeftLeaf returns the sibling label found for the right-most
// unresolved position that sits in a leaf-only cherry, and the scan offset
// at which it was found.
func (d *decoder) findLeftLeaf() (leftLeaf, idx int, ok bool) {
	for i := 0; i < d.n; i++ {
		pos := d.n - i - 1
		if d.processed[pos] {
			continue
		}
		label := strconv.Itoa(d.labels[pos])

		var sibling string
		if left := "(" + label + ","; strings.Contains(d.nw, left) {
			sibling = afterLast(d.nw, left)
			sibling, _, _ = strings.Cut(sibling, ")")
		} else if right := "," + label + ")"; strings.Contains(d.nw, right) {
			sibling, _, _ = strings.Cut(d.nw, right)
			sibling = afterLast(sibling, "(")
		} else {
			continue
		}

		if !newick.IsDigits(sibling) {
			continue
		}
		x, err := strconv.Atoi(sibling)
		if err != nil {
			continue
		}

		return x, i, true
	}

	return 0, 0, false
}

// updateVmin shifts every unresolved position to the right of right.
func (d *decoder) updateVmin(right int) {
	for j := right + 1; j < d.n; j++ {
		if d.processed[j] {
			continue
		}
		if d.vmin[j] == 0 {
			d.vmin[j] = j
		} else {
			d.vmin[j]++
		}
	}
}

// collapse replaces "(a,b)" or "(b,a)" with the label merged.
func (d *decoder) collapse(a, b, merged int) bool {
	sa, sb := strconv.Itoa(a), strconv.Itoa(b)
	repl := strconv.Itoa(merged)

	for _, pat := range [2]string{"(" + sa + "," + sb + ")", "(" + sb + "," + sa + ")"} {
		if i := strings.Index(d.nw, pat); i >= 0 {
			d.nw = d.nw[:i] + repl + d.nw[i+len(pat):]
			return true
		}
	}

	return false
}

// afterLast returns the text following the last sep, or s when sep is absent.
func afterLast(s, sep string) string {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s
	}
	return s[i+len(sep):]
}
