package rmq

import "math"

// RowTree keeps an iterative max segment tree for every row.
//
// Layout: all rows share one flat []int32; row r occupies
// tree[r*2*span : (r+1)*2*span], node 1 is the root and leaf j lives at span+j.
// Values therefore must fit in int32, which every DP value of a table that
// fits in memory does.
//
// Memory: rows·2·span·4 bytes, span = next power of two ≥ cols.
type RowTree struct {
	rows, cols int
	span       int
	tree       []int32
}

// NewRowTree allocates a zeroed rows×cols grid.
//
// Errors: ErrBadShape.
func NewRowTree(rows, cols int) (*RowTree, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	span := leafSpan(cols)

	return &RowTree{
		rows: rows,
		cols: cols,
		span: span,
		tree: make([]int32, rows*2*span),
	}, nil
}

// Rows returns the number of grid rows.
func (t *RowTree) Rows() int { return t.rows }

// Cols returns the number of grid columns.
func (t *RowTree) Cols() int { return t.cols }

// Update writes value at leaf (i, j) and refreshes the ancestors in row i.
//
// Complexity: O(log cols).
func (t *RowTree) Update(i, j, value int) {
	if i < 0 || i >= t.rows || j < 0 || j >= t.cols {
		panic("rmq: cell out of range")
	}
	if value > math.MaxInt32 || value < math.MinInt32 {
		panic("rmq: value overflows int32")
	}
	row := t.row(i)
	p := t.span + j
	row[p] = int32(value)
	for p > 1 {
		p >>= 1
		row[p] = max(row[2*p], row[2*p+1])
	}
}

// QueryMax reduces each row of the rectangle with its tree, keeps the best
// row (bottom-most among ties), then descends that row's tree for the
// right-most column holding the maximum.
//
// Complexity: O(h·log cols) for h = iHi-iLo+1 rows.
func (t *RowTree) QueryMax(iLo, iHi, jLo, jHi int) Cell {
	iHi, jHi, ok := clampRect(iLo, iHi, jLo, jHi, t.rows, t.cols)
	if !ok {
		return none
	}

	bestRow := iHi
	bestVal := rowMax(t.row(iHi), t.span, jLo, jHi)
	for i := iHi - 1; i >= iLo; i-- {
		if v := rowMax(t.row(i), t.span, jLo, jHi); v > bestVal {
			bestRow, bestVal = i, v
		}
	}
	j := rightmost(t.row(bestRow), 1, 0, t.span-1, jLo, jHi, bestVal)

	return Cell{I: bestRow, J: j, Value: int(bestVal)}
}

func (t *RowTree) row(i int) []int32 {
	w := 2 * t.span

	return t.tree[i*w : (i+1)*w]
}

// rowMax is the bottom-up maximum over leaves [lo, hi].
func rowMax(row []int32, span, lo, hi int) int32 {
	res := int32(math.MinInt32)
	l, r := lo+span, hi+span+1
	for l < r {
		if l&1 == 1 {
			res = max(res, row[l])
			l++
		}
		if r&1 == 1 {
			r--
			res = max(res, row[r])
		}
		l >>= 1
		r >>= 1
	}

	return res
}

// rightmost returns the largest leaf index in [lo, hi] whose value is at
// least target, or -1. Subtrees whose maximum is below target are pruned.
func rightmost(row []int32, node, nl, nr, lo, hi int, target int32) int {
	if nr < lo || nl > hi || row[node] < target {
		return -1
	}
	if nl == nr {
		return nl
	}
	mid := (nl + nr) / 2
	if p := rightmost(row, 2*node+1, mid+1, nr, lo, hi, target); p >= 0 {
		return p
	}

	return rightmost(row, 2*node, nl, mid, lo, hi, target)
}

// leafSpan is the smallest power of two ≥ n (n ≥ 1).
func leafSpan(n int) int {
	s := 1
	for s < n {
		s <<= 1
	}

	return s
}
