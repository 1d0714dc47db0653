package fig

import (
	"strconv"
	"strings"
)

// Parent arena sentinels. Non-negative entries are linearized predecessor
// cells i*cols+j.
const (
	noParent   = -1 // not a match cell
	rootParent = -2 // match cell that starts a fresh chain
)

// Table is a filled (n+1)×(m+1) DP table together with its parent arena.
// Row and column 0 are the empty-prefix boundary and hold 0.
type Table struct {
	rows, cols int
	dp         []int
	parent     []int
}

// Rows returns n+1.
func (t *Table) Rows() int { return t.rows }

// Cols returns m+1.
func (t *Table) Cols() int { return t.cols }

// At returns dp[i][j].
func (t *Table) At(i, j int) int { return t.dp[i*t.cols+j] }

// IsMatch reports whether (i, j) was filled through the symbol-match branch.
func (t *Table) IsMatch(i, j int) bool { return t.parent[i*t.cols+j] != noParent }

// Parent returns the predecessor recorded for match cell (i, j).
// ok is false for non-match cells and for cells that start a chain.
func (t *Table) Parent(i, j int) (p Coord, ok bool) {
	v := t.parent[i*t.cols+j]
	if v < 0 {
		return Coord{}, false
	}

	return Coord{I: v / t.cols, J: v % t.cols}, true
}

// String renders the table one row per line, match cells marked with '*'.
func (t *Table) String() string {
	var b strings.Builder
	for i := 0; i < t.rows; i++ {
		for j := 0; j < t.cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(t.At(i, j)))
			if t.IsMatch(i, j) {
				b.WriteByte('*')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
