package rmq

// Dense stores the grid row-major and answers QueryMax by scanning.
//
// It is the baseline realization: Update is O(1), QueryMax is O(area).
type Dense struct {
	rows, cols int
	data       []int
}

// NewDense allocates a zeroed rows×cols grid.
//
// Errors: ErrBadShape.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{rows: rows, cols: cols, data: make([]int, rows*cols)}, nil
}

// DenseOver wraps data (row-major, len == rows*cols) without copying.
// Writes through Update are visible in data and vice versa.
//
// Errors: ErrBadShape, ErrBufferSize.
func DenseOver(rows, cols int, data []int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if len(data) != rows*cols {
		return nil, ErrBufferSize
	}

	return &Dense{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the number of grid rows.
func (d *Dense) Rows() int { return d.rows }

// Cols returns the number of grid columns.
func (d *Dense) Cols() int { return d.cols }

// At returns the value stored at (i, j).
func (d *Dense) At(i, j int) int { return d.data[d.index(i, j)] }

// Update records value at (i, j).
func (d *Dense) Update(i, j, value int) {
	d.data[d.index(i, j)] = value
}

// QueryMax scans [iLo, iHi] × [jLo, jHi] from the bottom-right corner
// towards the top-left, so the first maximum seen is the lexicographically
// largest cell among ties.
//
// Complexity: O((iHi-iLo+1)·(jHi-jLo+1)).
func (d *Dense) QueryMax(iLo, iHi, jLo, jHi int) Cell {
	iHi, jHi, ok := clampRect(iLo, iHi, jLo, jHi, d.rows, d.cols)
	if !ok {
		return none
	}

	best := Cell{I: iHi, J: jHi, Value: d.data[iHi*d.cols+jHi]}
	for i := iHi; i >= iLo; i-- {
		row := d.data[i*d.cols : i*d.cols+d.cols]
		for j := jHi; j >= jLo; j-- {
			if row[j] > best.Value {
				best = Cell{I: i, J: j, Value: row[j]}
			}
		}
	}

	return best
}

func (d *Dense) index(i, j int) int {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		panic("rmq: cell out of range")
	}

	return i*d.cols + j
}

// clampRect clamps the upper bounds into the grid and reports whether the
// remaining rectangle is non-empty.
func clampRect(iLo, iHi, jLo, jHi, rows, cols int) (int, int, bool) {
	if iLo < 0 || jLo < 0 {
		return 0, 0, false
	}
	if iHi >= rows {
		iHi = rows - 1
	}
	if jHi >= cols {
		jHi = cols - 1
	}
	if iLo > iHi || jLo > jHi {
		return 0, 0, false
	}

	return iHi, jHi, true
}
