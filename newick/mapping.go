package newick

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Mapping links the integer leaf labels written by IntegerizeChildNodes
// back to the original taxon tokens (quotes included, if any).
type Mapping map[int]string

// Labels returns the integer labels of m in increasing order.
func (m Mapping) Labels() []int {
	return slices.Sorted(maps.Keys(m))
}

// IntegerizeChildNodes rewrites every non-numeric leaf label as an integer
// and returns the rewritten text with the integer → taxon Mapping.
//
// Leaves are visited left to right; each taxon seen for the first time
// gets the next available integer starting at 0, skipping integers already
// used by numeric leaves of the same text. A repeated taxon reuses its
// integer. Numeric leaves and everything that is not a leaf label
// (internal labels, lengths, punctuation) are copied unchanged.
//
// The mapping is empty (not nil) when every leaf is already numeric.
//
// Errors:
//   - ErrParse for an unterminated quoted label.
//
// Complexity: O(len(s)).
func IntegerizeChildNodes(s string) (string, Mapping, error) {
	items, err := lex(s)
	if err != nil {
		return "", nil, fmt.Errorf("IntegerizeChildNodes: %w", err)
	}

	used := make(map[int]bool)
	for _, it := range items {
		if it.typ != itemLeaf || !IsDigits(it.val) {
			continue
		}
		if n, err := strconv.Atoi(it.val); err == nil {
			used[n] = true
		}
	}

	mapping := make(Mapping)
	assigned := make(map[string]int)
	next := 0

	var sb strings.Builder
	sb.Grow(len(s))
	for _, it := range items {
		if it.typ != itemLeaf || IsDigits(it.val) {
			sb.WriteString(it.val)
			continue
		}
		label, ok := assigned[it.val]
		if !ok {
			for used[next] {
				next++
			}
			label = next
			used[label] = true
			assigned[it.val] = label
			mapping[label] = it.val
		}
		sb.WriteString(strconv.Itoa(label))
	}

	return sb.String(), mapping, nil
}

// ApplyMapping replaces integer leaf labels found in m with their taxon
// tokens. Integer leaves absent from m are kept as they are.
//
// Errors:
//   - ErrUnknownLeaf when a leaf label is not an integer.
//   - ErrParse for an unterminated quoted label.
//
// Complexity: O(len(s)).
func ApplyMapping(s string, m Mapping) (string, error) {
	items, err := lex(s)
	if err != nil {
		return "", fmt.Errorf("ApplyMapping: %w", err)
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for _, it := range items {
		if it.typ != itemLeaf {
			sb.WriteString(it.val)
			continue
		}
		if !IsDigits(it.val) {
			return "", fmt.Errorf("ApplyMapping: leaf %q: %w", it.val, ErrUnknownLeaf)
		}
		n, err := strconv.Atoi(it.val)
		if err != nil {
			return "", fmt.Errorf("ApplyMapping: leaf %q: %w", it.val, ErrUnknownLeaf)
		}
		if taxon, ok := m[n]; ok {
			sb.WriteString(taxon)
		} else {
			sb.WriteString(it.val)
		}
	}

	return sb.String(), nil
}
