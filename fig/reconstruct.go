package fig

import "slices"

// terminal picks the cell reconstruction starts from.
//
// TerminalGlobalMax scans rows 1..n, columns 1..m and keeps the first strictly
// larger value, i.e. the first maximum in row-major order. An all-zero table
// falls back to (n, m) under both policies.
//
// Complexity: O(n·m) for TerminalGlobalMax, O(1) for TerminalEnd.
func (f *filler[T]) terminal(policy Terminal) Coord {
	end := Coord{I: f.n, J: f.m}
	if policy == TerminalEnd {
		return end
	}
	best := 0
	for i := 1; i <= f.n; i++ {
		row := f.dp[i*f.cols : (i+1)*f.cols]
		for j := 1; j <= f.m; j++ {
			if row[j] > best {
				best, end = row[j], Coord{I: i, J: j}
			}
		}
	}

	return end
}

// reconstruct walks back from end:
//   - a match cell emits x[i-1] and jumps to its parent, or stops when it
//     starts a chain;
//   - any other cell steps up when dp[i-1][j] carries the same value, left
//     otherwise.
//
// Non-match steps keep the value unchanged, so every walk from a positive
// cell reaches a match cell of the same value and exactly dp[end] symbols are
// emitted.
//
// Complexity: O(n+m).
func (f *filler[T]) reconstruct(end Coord) ([]T, []Coord) {
	n := f.dp[end.I*f.cols+end.J]
	seq := make([]T, 0, n)
	align := make([]Coord, 0, n)

	i, j := end.I, end.J
walk:
	for i > 0 && j > 0 {
		idx := i*f.cols + j
		switch p := f.parent[idx]; {
		case p == rootParent:
			seq = append(seq, f.x[i-1])
			align = append(align, Coord{I: i - 1, J: j - 1})

			break walk
		case p >= 0:
			seq = append(seq, f.x[i-1])
			align = append(align, Coord{I: i - 1, J: j - 1})
			i, j = p/f.cols, p%f.cols
		case f.dp[idx] == f.dp[idx-f.cols]:
			i--
		default:
			j--
		}
	}

	slices.Reverse(seq)
	slices.Reverse(align)

	return seq, align
}
