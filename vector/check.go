package vector

import (
	"fmt"
	"strconv"
	"strings"
)

// Check verifies that 0 ≤ v[i] ≤ 2i for every index i.
//
// The scan stops at the first violation and returns an *InvalidVectorError
// naming that index and value. v is never modified. An empty vector is
// valid (a single-leaf tree).
//
// Complexity: O(k) time, O(1) memory.
func Check(v Vector) error {
	for i, x := range v {
		if x < 0 || x > 2*i {
			return &InvalidVectorError{Index: i, Value: x}
		}
	}

	return nil
}

// Parse converts decimal fields such as {"0", "1", "4"} into a Vector and
// checks it. Surrounding whitespace and empty fields are ignored, so the
// output of strings.Fields or strings.Split(s, ",") can be passed directly.
//
// Errors:
//   - ErrBadToken (wrapped with the field position) for non-integers.
//   - *InvalidVectorError when the parsed vector breaks the invariant.
//
// Complexity: O(total length of fields).
func Parse(fields []string) (Vector, error) {
	v := make(Vector, 0, len(fields))
	for pos, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		x, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("Parse: field %d (%q): %w", pos, f, ErrBadToken)
		}
		v = append(v, x)
	}
	if err := Check(v); err != nil {
		return nil, err
	}

	return v, nil
}
