package newick_test

import (
	"fmt"

	"github.com/katalvlaran/phylo2vec/ancestry"
	"github.com/katalvlaran/phylo2vec/newick"
)

// ExampleFromAncestry writes the tree for v = [0, 1, 4].
func ExampleFromAncestry() {
	a := ancestry.Ancestry{{Parent: 6, ChildA: 3, ChildB: 5}, {Parent: 5, ChildA: 4, ChildB: 0}, {Parent: 4, ChildA: 2, ChildB: 1}}
	nw, err := newick.FromAncestry(a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(nw)
	// Output: (((2,1)4,0)5,3)6;
}

// ExampleProcess strips lengths and parent labels.
func ExampleProcess() {
	fmt.Println(newick.Process("(((2:0.02,1:0.01)4,0:0.041)5,3:1.42)6;"))
	// Output: (((2,1),0),3);
}

// ExampleIntegerizeChildNodes labels taxa by first appearance.
func ExampleIntegerizeChildNodes() {
	nw, m, err := newick.IntegerizeChildNodes("((human,chimp),gorilla);")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(nw)
	for _, k := range m.Labels() {
		fmt.Println(k, m[k])
	}
	// Output:
	// ((0,1),2);
	// 0 human
	// 1 chimp
	// 2 gorilla
}
