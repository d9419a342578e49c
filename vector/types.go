// Package vector declares the Vector type, sentinel errors and the
// InvalidVectorError value returned by Check.
package vector

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidVector indicates that some v[i] lies outside [0, 2i].
	// Returned wrapped inside *InvalidVectorError; match with errors.Is.
	ErrInvalidVector = errors.New("vector: invalid Phylo2Vec vector")

	// ErrNegativeSize indicates Sample was asked for a negative length.
	ErrNegativeSize = errors.New("vector: negative size")

	// ErrBadToken indicates Parse met a field that is not a decimal integer.
	ErrBadToken = errors.New("vector: bad integer token")
)

// InvalidVectorError reports the first index whose value breaks the
// 0 ≤ v[i] ≤ 2i invariant.
type InvalidVectorError struct {
	Index int // offending position
	Value int // value found at Index
}

// Error implements error.
func (e *InvalidVectorError) Error() string {
	return fmt.Sprintf("vector: invalid value at index %d: v[i] must lie in [0, %d], found %d",
		e.Index, 2*e.Index, e.Value)
}

// Unwrap exposes ErrInvalidVector for errors.Is.
func (e *InvalidVectorError) Unwrap() error {
	return ErrInvalidVector
}

// Vector is a Phylo2Vec encoding of a rooted binary tree with len(v)+1 leaves.
type Vector []int

// NumLeaves returns the number of leaves encoded by v, i.e. len(v)+1.
// Complexity: O(1).
func (v Vector) NumLeaves() int {
	return len(v) + 1
}

// Clone returns an independent copy of v. A nil vector clones to nil.
// Complexity: O(k).
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// String renders v as "[0 1 4]".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(x))
	}
	sb.WriteByte(']')

	return sb.String()
}
