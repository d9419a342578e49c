package vector_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/phylo2vec/vector"
)

// ExampleCheck shows the error reported for the first out-of-range entry.
func ExampleCheck() {
	fmt.Println(vector.Check(vector.Vector{0, 1, 4}))

	err := vector.Check(vector.Vector{0, 1, 5})
	var ive *vector.InvalidVectorError
	if errors.As(err, &ive) {
		fmt.Println(ive.Index, ive.Value)
	}
	fmt.Println(errors.Is(err, vector.ErrInvalidVector))
	// Output:
	// <nil>
	// 2 5
	// true
}

// ExampleSample draws a reproducible vector for a 6-leaf tree.
func ExampleSample() {
	v, err := vector.Sample(5, vector.WithSeed(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(v), v.NumLeaves(), vector.Check(v) == nil)
	// Output:
	// 5 6 true
}
