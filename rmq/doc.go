// Package rmq provides two-dimensional range-maximum structures over an
// integer grid, the inner-loop primitive of the LCS-FIG exact solvers.
//
// 🚀 What is a 2D RMQ here?
//
//	A mutable (rows×cols) grid supporting point Update and a rectangle
//	QueryMax that reports both the maximum and the cell holding it.
//	The solvers fill the grid in row-major order and only ever query
//	cells that were already written, so a query never observes a future value.
//
// ✨ Backends (selected at construction, see Kind):
//   - DenseScan  — plain row-major storage; QueryMax scans the rectangle.
//     Update O(1), QueryMax O(area). DenseOver can wrap an existing buffer.
//   - RowSegment — one max segment tree per row.
//     Update O(log cols), QueryMax O(h·log cols) for a rectangle of h rows.
//
// Tie-break:
//
//	When several cells share the maximal value, QueryMax returns the one with
//	the lexicographically largest (I, J). Every backend follows the same order,
//	so swapping backends never changes a caller's results.
//
// Empty rectangles:
//
//	iLo > iHi, jLo > jHi, or a negative lower bound yield Cell{I: -1, J: -1, Value: 0}.
//	Upper bounds past the grid are clamped.
//
// ⚙️ Usage:
//
//	grid, err := rmq.New(rmq.RowSegment, n+1, m+1)
//	if err != nil { ... }
//	grid.Update(i, j, v)
//	best := grid.QueryMax(i-k-1, i-1, j-k-1, j-1)
//
// Concurrency:
//
//	Backends are not synchronized. Updates on distinct rows may run
//	concurrently; a query must not overlap updates of the rows it reads.
package rmq
