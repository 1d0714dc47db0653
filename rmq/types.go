package rmq

import (
	"errors"
	"strings"
)

// Sentinel errors for rmq construction.
var (
	// ErrBadShape indicates rows or cols is not positive.
	ErrBadShape = errors.New("rmq: rows and cols must be positive")

	// ErrBufferSize indicates a DenseOver buffer whose length is not rows*cols.
	ErrBufferSize = errors.New("rmq: buffer length must equal rows*cols")

	// ErrUnknownKind indicates an unsupported backend selector.
	ErrUnknownKind = errors.New("rmq: unknown backend kind")
)

// Cell is a grid coordinate together with the value stored there.
// QueryMax reports I = J = -1 when the rectangle is empty.
type Cell struct {
	I, J  int
	Value int
}

// none is the identity answer of QueryMax.
var none = Cell{I: -1, J: -1, Value: 0}

// better reports whether a precedes b in the query order:
// larger value first, then larger I, then larger J.
func better(a, b Cell) bool {
	if a.Value != b.Value {
		return a.Value > b.Value
	}
	if a.I != b.I {
		return a.I > b.I
	}

	return a.J > b.J
}

// RangeMax is the capability shared by all backends.
type RangeMax interface {
	// Update records value at (i, j), overwriting any prior value.
	// It panics if (i, j) lies outside the grid.
	Update(i, j, value int)

	// QueryMax returns the best cell of the inclusive rectangle
	// [iLo, iHi] × [jLo, jHi].
	QueryMax(iLo, iHi, jLo, jHi int) Cell

	// Rows returns the number of grid rows.
	Rows() int

	// Cols returns the number of grid columns.
	Cols() int
}

// Kind selects a RangeMax backend.
type Kind int

// The zero Kind is RowSegment, so a zero-valued options struct selects the
// accelerated structure.
const (
	// RowSegment keeps a max segment tree per row.
	RowSegment Kind = iota

	// DenseScan answers queries by scanning the rectangle.
	DenseScan
)

// String returns the lowercase name of k.
func (k Kind) String() string {
	switch k {
	case DenseScan:
		return "dense"
	case RowSegment:
		return "rowsegment"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of Kind.String (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dense", "densescan":
		return DenseScan, nil
	case "rowsegment", "segment", "rowtree":
		return RowSegment, nil
	default:
		return 0, ErrUnknownKind
	}
}

// Footprint estimates the bytes a backend of kind k allocates for a
// rows×cols grid. DenseScan reports its own storage; callers that use
// DenseOver on an existing table should not count it twice.
//
// Complexity: O(1).
func (k Kind) Footprint(rows, cols int) int64 {
	if rows <= 0 || cols <= 0 {
		return 0
	}
	switch k {
	case DenseScan:
		return int64(rows) * int64(cols) * 8
	case RowSegment:
		return int64(rows) * int64(2*leafSpan(cols)) * 4
	default:
		return 0
	}
}

// New constructs an empty backend of the requested kind.
//
// Errors: ErrBadShape, ErrUnknownKind.
func New(kind Kind, rows, cols int) (RangeMax, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	switch kind {
	case DenseScan:
		d, err := NewDense(rows, cols)
		if err != nil {
			return nil, err
		}

		return d, nil
	case RowSegment:
		t, err := NewRowTree(rows, cols)
		if err != nil {
			return nil, err
		}

		return t, nil
	default:
		return nil, ErrUnknownKind
	}
}
