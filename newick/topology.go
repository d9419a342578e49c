package newick

import (
	"fmt"
	"sort"
	"strings"

	gtnewick "github.com/evolbioinfo/gotree/io/newick"
	"github.com/evolbioinfo/gotree/tree"
)

// parseTree reads one tree with the gotree Newick parser.
func parseTree(s string) (*tree.Tree, error) {
	t, err := gtnewick.NewParser(strings.NewReader(s)).Parse()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return t, nil
}

// children returns the neighbours of n other than its parent.
func children(n, parent *tree.Node) []*tree.Node {
	out := make([]*tree.Node, 0, 2)
	for _, u := range n.Neigh() {
		if u != parent {
			out = append(out, u)
		}
	}
	return out
}

// CheckRootedBinary reports whether s describes a rooted tree in which every
// internal node has exactly two children. A single leaf passes.
//
// Errors:
//   - ErrUnrooted when the root has three children.
//   - ErrNonBinary when any internal node has other than two children.
//   - ErrParse when gotree cannot read the text.
func CheckRootedBinary(s string) error {
	t, err := parseTree(s)
	if err != nil {
		return fmt.Errorf("CheckRootedBinary: %w", err)
	}

	root := t.Root()
	kids := children(root, nil)
	switch len(kids) {
	case 0:
		return nil
	case 2:
	case 3:
		return fmt.Errorf("CheckRootedBinary: %w", ErrUnrooted)
	default:
		return fmt.Errorf("CheckRootedBinary: root has %d children: %w", len(kids), ErrNonBinary)
	}

	return checkBinary(root, nil)
}

func checkBinary(n, parent *tree.Node) error {
	kids := children(n, parent)
	if len(kids) == 0 {
		return nil
	}
	if len(kids) != 2 {
		return fmt.Errorf("CheckRootedBinary: node %q has %d children: %w", n.Name(), len(kids), ErrNonBinary)
	}
	for _, c := range kids {
		if err := checkBinary(c, n); err != nil {
			return err
		}
	}

	return nil
}

// Canonical renders the topology of s independently of child order:
// internal labels and branch lengths are dropped, leaves keep their
// labels, and the children of every node are sorted by their own
// canonical text. Two Newick strings describe the same labelled rooted
// tree exactly when their canonical forms are equal.
//
//	Canonical("((b,a)x:1,c);") == "((a,b),c);"
func Canonical(s string) (string, error) {
	t, err := parseTree(s)
	if err != nil {
		return "", fmt.Errorf("Canonical: %w", err)
	}

	return canonical(t.Root(), nil) + ";", nil
}

func canonical(n, parent *tree.Node) string {
	kids := children(n, parent)
	if len(kids) == 0 {
		return n.Name()
	}

	parts := make([]string, len(kids))
	for i, c := range kids {
		parts[i] = canonical(c, n)
	}
	sort.Strings(parts)

	return "(" + strings.Join(parts, ",") + ")"
}

// SameTopology reports whether a and b describe the same labelled rooted tree.
func SameTopology(a, b string) (bool, error) {
	ca, err := Canonical(a)
	if err != nil {
		return false, err
	}
	cb, err := Canonical(b)
	if err != nil {
		return false, err
	}

	return ca == cb, nil
}
