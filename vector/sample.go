package vector

import "fmt"

// Sample returns a uniformly random valid vector of length k, encoding a
// tree with k+1 leaves. Element i is drawn uniformly from [0, 2i], which
// makes every rooted binary topology on k+1 labelled leaves equally likely.
//
// Sample(0) returns an empty vector (single-leaf tree).
//
// Errors:
//   - ErrNegativeSize when k < 0.
//
// Complexity: O(k) time, O(k) memory.
func Sample(k int, opts ...Option) (Vector, error) {
	if k < 0 {
		return nil, fmt.Errorf("Sample(%d): %w", k, ErrNegativeSize)
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	v := make(Vector, k)
	if o.Rand != nil {
		draw(v, o.Rand)
	} else {
		drawShared(v)
	}

	return v, nil
}
