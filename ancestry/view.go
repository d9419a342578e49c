// SPDX-License-Identifier: MIT
// Package ancestry - the view table used by Build.
//
// viewTable is a row-major integer grid stored in one flat slice, plus a
// per-row maximum cache. Rows and columns are trusted (internal callers
// only), so accessors do not bounds-check beyond the runtime's own checks.

package ancestry

// viewTable holds, for each row, the highest label reachable through each
// column. rowMax[i] == max(row i) at all times.
type viewTable struct {
	r, c   int   // number of rows (k) and columns (k+1)
	data   []int // flat backing storage, length == r*c
	rowMax []int // cached maximum of every row
}

// newViewTable builds the initial k×(k+1) table:
//
//	0 0 0 0 0 ...
//	0 1 0 0 0 ...
//	0 1 2 0 0 ...
//	0 1 2 3 0 ...
//
// i.e. cell (row, col) = col when row ≥ col, else 0. Row i starts with max i.
// Complexity: O(k²) time and memory.
func newViewTable(k int) *viewTable {
	t := &viewTable{
		r:      k,
		c:      k + 1,
		data:   make([]int, k*(k+1)),
		rowMax: make([]int, k),
	}
	for row := 0; row < k; row++ {
		base := row * t.c
		for col := 0; col <= row; col++ {
			t.data[base+col] = col
		}
		t.rowMax[row] = row
	}

	return t
}

// at returns the cell (row, col).
// Complexity: O(1).
func (t *viewTable) at(row, col int) int {
	return t.data[row*t.c+col]
}

// max returns the highest label in row.
// Complexity: O(1).
func (t *viewTable) max(row int) int {
	return t.rowMax[row]
}

// indexOf returns the first column of row holding value, or -1.
// Complexity: O(k).
func (t *viewTable) indexOf(row, value int) int {
	base := row * t.c
	for col := 0; col < t.c; col++ {
		if t.data[base+col] == value {
			return col
		}
	}

	return -1
}

// bump sets cell (i, col) = max(row i) + 1 for every row i ≥ from.
// The written value becomes the new row maximum.
// Complexity: O(k).
func (t *viewTable) bump(from, col int) {
	for i := from; i < t.r; i++ {
		next := t.rowMax[i] + 1
		t.data[i*t.c+col] = next
		t.rowMax[i] = next
	}
}

// row returns a copy of one row; used by tests and debugging output.
func (t *viewTable) row(i int) []int {
	out := make([]int, t.c)
	copy(out, t.data[i*t.c:(i+1)*t.c])

	return out
}
