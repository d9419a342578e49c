package newick

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// parentLabelRe matches an integer label written right after ')'.
	parentLabelRe = regexp.MustCompile(`\)\d+`)

	// branchLengthRe matches ":<number>", with optional sign, fraction and exponent.
	branchLengthRe = regexp.MustCompile(`:[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`)
)

// RemoveParentAnnotations drops integer internal-node labels:
//
//	"(((2,1)4,0)5,3)6;" → "(((2,1),0),3);"
//
// Leaf labels and the parenthesis structure are untouched. Idempotent.
func RemoveParentAnnotations(s string) string {
	return parentLabelRe.ReplaceAllLiteralString(s, ")")
}

// RemoveBranchLengthAnnotations drops every ":<number>" suffix:
//
//	"(((2:0.02,1:0.01),0:0.041),3:1.42);" → "(((2,1),0),3);"
//
// Idempotent.
func RemoveBranchLengthAnnotations(s string) string {
	return branchLengthRe.ReplaceAllLiteralString(s, "")
}

// RemoveWhitespace drops blanks and line breaks outside quoted labels.
func RemoveWhitespace(s string) string {
	if strings.IndexAny(s, " \t\r\n") < 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	quoted := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == quote {
			quoted = !quoted
		}
		if !quoted && isBlank(c) {
			continue
		}
		sb.WriteByte(c)
	}

	return sb.String()
}

// Process removes whitespace, branch lengths and integer parent labels, in
// that order, leaving only the structure and the leaf labels.
func Process(s string) string {
	s = RemoveWhitespace(s)
	s = RemoveBranchLengthAnnotations(s)
	return RemoveParentAnnotations(s)
}

// NumLeaves counts the leaves of normalized Newick text as the number of
// commas outside quoted labels plus one. Text without any label ("", ";",
// "();") has no leaves.
//
// Complexity: O(len(s)).
func NumLeaves(s string) int {
	commas := 0
	hasLabel := false
	quoted := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == quote:
			quoted = !quoted
			hasLabel = true
		case quoted:
		case c == descDelimiter:
			commas++
		case c == descStart || c == descEnd || c == terminal || isBlank(c):
		default:
			hasLabel = true
		}
	}
	if !hasLabel {
		return 0
	}

	return commas + 1
}

// RemoveInternalLabels drops every label written right after ')', numeric
// or not: clade names ("(a,b)Hominini"), support values ("(a,b)0.95") and
// quoted labels alike. Leaves and branch lengths are kept. Idempotent.
//
//	"((a,b)x,c)0.95;" → "((a,b),c);"
//
// Errors:
//   - ErrParse for an unterminated quoted label.
//
// Complexity: O(len(s)).
func RemoveInternalLabels(s string) (string, error) {
	items, err := lex(s)
	if err != nil {
		return "", fmt.Errorf("RemoveInternalLabels: %w", err)
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for _, it := range items {
		if it.typ == itemInternal {
			continue
		}
		sb.WriteString(it.val)
	}

	return sb.String(), nil
}
