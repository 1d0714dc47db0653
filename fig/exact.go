package fig

import (
	"cmp"
	"time"

	"github.com/katalvlaran/lcsfig/rmq"
)

// SolveBaseline computes the exact LCS-FIG of x and y by dynamic programming,
// scanning each trailing rectangle of the table directly.
//
// Algorithm Outline:
//  1. Allocate dp and the parent arena, both (n+1)×(m+1), row/col 0 = 0.
//  2. For i = 1..n, j = 1..m:
//     x[i-1] == y[j-1]: best = max over the predecessor rectangle (see GapMode);
//     best > 0 ⇒ dp = best+1, parent = argmax; otherwise dp = 1 and the
//     cell starts a chain.
//     x[i-1] != y[j-1]: dp = max(dp[i-1][j], dp[i][j-1]).
//  3. Pick the terminal cell (Options.Terminal) and walk parents back.
//
// Errors: ErrNegativeGap, ErrTableTooLarge, ErrUnknownGapMode,
// ErrUnknownTerminal, ErrBadWorkers.
//
// Complexity: Time O(n·m·(K+1)²) for GapWindow, O(n²·m²) worst case for
// GapMinOffset; Memory O(n·m).
func SolveBaseline[T cmp.Ordered](x, y []T, k int, opts *Options) (Result[T], error) {
	return solveExact(x, y, k, opts, false)
}

// SolveAccelerated is SolveBaseline with rectangle maxima answered by an
// rmq.RangeMax backend (Options.Backend). The result is identical to
// SolveBaseline; only the running time differs.
//
// Complexity (RowSegment): Time O(n·m·(K+1)·log m) for GapWindow,
// O(n²·m·log m) worst case for GapMinOffset; Memory O(n·m).
func SolveAccelerated[T cmp.Ordered](x, y []T, k int, opts *Options) (Result[T], error) {
	return solveExact(x, y, k, opts, true)
}

func solveExact[T cmp.Ordered](x, y []T, k int, opts *Options, accelerated bool) (Result[T], error) {
	// Stage 1: argument checks before any allocation.
	if k < 0 {
		return Result[T]{}, ErrNegativeGap
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return Result[T]{}, err
	}
	n, m := len(x), len(y)
	if err = checkFootprint(n, m, accelerated, o.Backend, o.MaxTableBytes); err != nil {
		return Result[T]{}, err
	}

	// Stage 2: fill.
	start := time.Now()
	f, err := newFiller(x, y, k, o.Mode, accelerated, o.Backend)
	if err != nil {
		return Result[T]{}, err
	}
	if o.Workers > 1 {
		if err = f.fillWavefront(o.Workers); err != nil {
			return Result[T]{}, err
		}
	} else {
		f.fill()
	}

	// Stage 3: reconstruction.
	end := f.terminal(o.Terminal)
	seq, align := f.reconstruct(end)
	res := Result[T]{
		Length:      len(seq),
		Subsequence: seq,
		Alignment:   align,
		End:         end,
		Elapsed:     time.Since(start),
	}
	if o.KeepTable {
		res.Table = &Table{rows: f.rows, cols: f.cols, dp: f.dp, parent: f.parent}
	}

	return res, nil
}

// filler holds the per-call state of one exact solve.
type filler[T cmp.Ordered] struct {
	x, y       []T
	k          int
	mode       GapMode
	n, m       int
	rows, cols int
	dp         []int
	parent     []int
	grid       rmq.RangeMax
	mirror     bool // grid keeps its own copy of dp
}

func newFiller[T cmp.Ordered](x, y []T, k int, mode GapMode, accelerated bool, kind rmq.Kind) (*filler[T], error) {
	n, m := len(x), len(y)
	f := &filler[T]{
		x: x, y: y, k: k, mode: mode,
		n: n, m: m, rows: n + 1, cols: m + 1,
	}
	f.dp = make([]int, f.rows*f.cols)
	f.parent = make([]int, f.rows*f.cols)
	for i := range f.parent {
		f.parent[i] = noParent
	}

	var err error
	if accelerated {
		f.grid, err = rmq.New(kind, f.rows, f.cols)
		f.mirror = true
	} else {
		f.grid, err = rmq.DenseOver(f.rows, f.cols, f.dp)
	}
	if err != nil {
		return nil, err
	}

	return f, nil
}

// fill runs the row-major scan.
func (f *filler[T]) fill() {
	for i := 1; i <= f.n; i++ {
		for j := 1; j <= f.m; j++ {
			f.commit(i, j, f.cell(i, j))
		}
	}
}

// cell computes dp[i][j] and records its parent. It reads only committed
// cells: the predecessor rectangle lies in rows < i and columns < j, and the
// carry-forward reads (i-1, j) and (i, j-1).
func (f *filler[T]) cell(i, j int) int {
	idx := i*f.cols + j
	if f.x[i-1] != f.y[j-1] {
		return max(f.dp[idx-f.cols], f.dp[idx-1])
	}

	iLo, iHi, jLo, jHi := f.window(i, j)
	best := f.grid.QueryMax(iLo, iHi, jLo, jHi)
	if best.Value > 0 {
		f.parent[idx] = best.I*f.cols + best.J

		return best.Value + 1
	}
	f.parent[idx] = rootParent

	return 1
}

// commit finalizes dp[i][j] before any later cell may read it.
func (f *filler[T]) commit(i, j, v int) {
	f.dp[i*f.cols+j] = v
	if f.mirror {
		f.grid.Update(i, j, v)
	}
}

// window returns the predecessor rectangle of a match at (i, j).
func (f *filler[T]) window(i, j int) (iLo, iHi, jLo, jHi int) {
	if f.mode == GapMinOffset {
		return 0, i - f.k - 1, 0, j - f.k - 1
	}

	return max(0, i-f.k-1), i - 1, max(0, j-f.k-1), j - 1
}
