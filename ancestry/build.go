package ancestry

import "github.com/katalvlaran/phylo2vec/vector"

// Build converts v into its ancestry, root merge first.
//
// Algorithm (k = len(v)):
//  1. Re-validate v; initialize the view table, lastRow = 0..k, and mark
//     every row unprocessed.
//  2. Repeat k times:
//     a. n = the largest unprocessed row with v[n] ≤ max(view[n]).
//     b. m = the first column of view[n] holding v[n].
//     c. newLabel = max(lastRow) + 1.
//     d. Record (newLabel, lastRow[n+1], lastRow[m]).
//     e. For every row i ≥ n: view[i][m] = max(view[i]) + 1.
//     f. lastRow[m] = newLabel; mark n processed.
//  3. Emit the recorded steps in reverse (root first).
//
// Labels in lastRow only grow, so max(lastRow) is tracked as a running value.
//
// An empty v yields an empty Ancestry: a single leaf needs no merges.
//
// Complexity: O(k²) time and memory.
func Build(v vector.Vector) (Ancestry, error) {
	if err := vector.Check(v); err != nil {
		return nil, err
	}

	k := len(v)
	out := make(Ancestry, k)
	if k == 0 {
		return out, nil
	}

	view := newViewTable(k)
	lastRow := make([]int, k+1)
	for i := range lastRow {
		lastRow[i] = i
	}
	lastMax := k
	processed := make([]bool, k)

	for step := 0; step < k; step++ {
		// a. largest qualifying row wins
		n := -1
		for row := k - 1; row >= 0; row-- {
			if !processed[row] && v[row] <= view.max(row) {
				n = row
				break
			}
		}
		if n < 0 {
			return nil, ancestryErrorf("Build", ErrAncestryConstruction,
				"step %d: no unprocessed row can attach", step)
		}

		// b. attachment column
		m := view.indexOf(n, v[n])
		if m < 0 {
			return nil, ancestryErrorf("Build", ErrAncestryConstruction,
				"step %d: value %d not visible in row %d", step, v[n], n)
		}

		// c-d. new internal node
		newLabel := lastMax + 1
		out[k-1-step] = Triple{Parent: newLabel, ChildA: lastRow[n+1], ChildB: lastRow[m]}

		// e-f. bookkeeping
		view.bump(n, m)
		lastRow[m] = newLabel
		lastMax = newLabel
		processed[n] = true
	}

	return out, nil
}
