package fig

import "golang.org/x/sync/errgroup"

// minChunk is the smallest slice of an anti-diagonal handed to one goroutine.
const minChunk = 64

// fillWavefront fills the table anti-diagonal by anti-diagonal.
//
// Every cell on diagonal d = i+j depends only on diagonals < d: the
// carry-forward reads d-1 and the predecessor rectangle lies on ≤ d-2.
// Each diagonal runs in two phases separated by a barrier:
//  1. compute — all cells of d are evaluated concurrently; the grid is only read
//     and each goroutine writes disjoint value / parent slots;
//  2. commit  — the values are published to dp and the grid. Cells of one
//     diagonal sit on distinct rows, which rmq backends may update concurrently.
//
// The result is identical to fill.
//
// Complexity: same work as fill plus O(n+m) barriers.
func (f *filler[T]) fillWavefront(workers int) error {
	vals := make([]int, min(f.n, f.m))
	for d := 2; d <= f.n+f.m; d++ {
		iFrom, iTo := max(1, d-f.m), min(f.n, d-1)
		count := iTo - iFrom + 1
		if count <= 0 {
			continue
		}
		err := inParallel(workers, count, func(lo, hi int) error {
			for t := lo; t < hi; t++ {
				i := iFrom + t
				vals[t] = f.cell(i, d-i)
			}

			return nil
		})
		if err != nil {
			return err
		}
		err = inParallel(workers, count, func(lo, hi int) error {
			for t := lo; t < hi; t++ {
				i := iFrom + t
				f.commit(i, d-i, vals[t])
			}

			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// inParallel splits [0, count) into chunks and runs body on up to workers
// goroutines, returning the first body error once all chunks are done.
// Short ranges run inline.
func inParallel(workers, count int, body func(lo, hi int) error) error {
	if workers <= 1 || count < 2*minChunk {
		return body(0, count)
	}
	chunk := max(minChunk, (count+workers-1)/workers)

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < count; lo += chunk {
		hi := min(lo+chunk, count)
		g.Go(func() error {
			return body(lo, hi)
		})
	}

	return g.Wait()
}
