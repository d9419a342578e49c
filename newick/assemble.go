package newick

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/phylo2vec/ancestry"
)

// fragments maps each current subtree root label to its partial Newick text.
// Slots are unordered; removal swaps the last slot into the hole.
type fragments struct {
	keys []int       // representative label per slot
	text []string    // fragment per slot
	slot map[int]int // label → slot index
}

func newFragments(capacity int) *fragments {
	return &fragments{
		keys: make([]int, 0, capacity),
		text: make([]string, 0, capacity),
		slot: make(map[int]int, capacity),
	}
}

func (f *fragments) lookup(label int) (int, bool) {
	i, ok := f.slot[label]
	return i, ok
}

func (f *fragments) add(label int, text string) {
	f.slot[label] = len(f.keys)
	f.keys = append(f.keys, label)
	f.text = append(f.text, text)
}

// rekey moves slot i from its current label to label.
func (f *fragments) rekey(i, label int) {
	delete(f.slot, f.keys[i])
	f.keys[i] = label
	f.slot[label] = i
}

// remove drops slot i in O(1).
func (f *fragments) remove(i int) {
	last := len(f.keys) - 1
	delete(f.slot, f.keys[i])
	if i != last {
		f.keys[i] = f.keys[last]
		f.text[i] = f.text[last]
		f.slot[f.keys[i]] = i
	}
	f.keys = f.keys[:last]
	f.text = f.text[:last]
}

// splice inserts ",other)parent" right after the text of label inside frag
// and wraps the result: "(" + frag[:end] + "," + other + ")" + parent + frag[end:].
// A fragment always ends with its own representative label, so the last
// occurrence is the one to extend.
func splice(frag, label, other, parent string) string {
	end := strings.LastIndex(frag, label) + len(label)

	var sb strings.Builder
	sb.Grow(len(frag) + len(other) + len(parent) + 3)
	sb.WriteByte('(')
	sb.WriteString(frag[:end])
	sb.WriteByte(',')
	sb.WriteString(other)
	sb.WriteByte(')')
	sb.WriteString(parent)
	sb.WriteString(frag[end:])

	return sb.String()
}

// Assemble writes the Newick string for merges given leaf-most first.
//
// For each (parent, c1, c2):
//   - both children own fragments: "(" + frag[c1] + "," + frag[c2] + ")" + parent,
//     kept in c1's slot under parent; c2's slot is dropped.
//   - only c1 owns one: c2 is spliced in after c1's text and the whole is
//     wrapped and labelled parent (symmetric when only c2 owns one).
//   - neither: a new fragment "(" + c1 + "," + c2 + ")" + parent.
//
// A child that owns no fragment must be a leaf (label ≤ len(steps)) seen
// for the first time. With no steps the tree is the single leaf "0;".
//
// Errors:
//   - ErrAssembly if a child is unknown or repeated, or if more than one
//     fragment is left at the end.
//
// Complexity: O(k·L) time where L is the output length.
func Assemble(steps []ancestry.Triple) (string, error) {
	if len(steps) == 0 {
		return "0;", nil
	}

	maxLeaf := len(steps)
	frags := newFragments(len(steps))
	leafUsed := make([]bool, maxLeaf+1)

	// claimLeaf marks a leaf child as consumed; anything else is inconsistent.
	claimLeaf := func(step, label int) error {
		if label < 0 || label > maxLeaf || leafUsed[label] {
			return fmt.Errorf("Assemble: step %d: child %d: %w", step, label, ErrAssembly)
		}
		leafUsed[label] = true
		return nil
	}

	for step, tr := range steps {
		parent := strconv.Itoa(tr.Parent)
		c1 := strconv.Itoa(tr.ChildA)
		c2 := strconv.Itoa(tr.ChildB)

		i1, ok1 := frags.lookup(tr.ChildA)
		i2, ok2 := frags.lookup(tr.ChildB)

		switch {
		case ok1 && ok2:
			frags.text[i1] = "(" + frags.text[i1] + "," + frags.text[i2] + ")" + parent
			frags.rekey(i1, tr.Parent)
			frags.remove(i2)
		case ok1:
			if err := claimLeaf(step, tr.ChildB); err != nil {
				return "", err
			}
			frags.text[i1] = splice(frags.text[i1], c1, c2, parent)
			frags.rekey(i1, tr.Parent)
		case ok2:
			if err := claimLeaf(step, tr.ChildA); err != nil {
				return "", err
			}
			frags.text[i2] = splice(frags.text[i2], c2, c1, parent)
			frags.rekey(i2, tr.Parent)
		default:
			if err := claimLeaf(step, tr.ChildA); err != nil {
				return "", err
			}
			if err := claimLeaf(step, tr.ChildB); err != nil {
				return "", err
			}
			frags.add(tr.Parent, "("+c1+","+c2+")"+parent)
		}
	}

	if len(frags.text) != 1 {
		return "", fmt.Errorf("Assemble: %d fragments left: %w", len(frags.text), ErrAssembly)
	}

	return frags.text[0] + ";", nil
}

// FromAncestry writes the Newick string for a root-first Ancestry, as
// returned by ancestry.Build.
func FromAncestry(a ancestry.Ancestry) (string, error) {
	return Assemble(a.Reverse())
}
