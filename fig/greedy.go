package fig

import (
	"cmp"
	"time"
)

// GreedySolver is a reusable linear-time LCS-FIG approximator for a fixed K.
// It holds no mutable state and is safe for concurrent use.
type GreedySolver[T cmp.Ordered] struct {
	k int
}

// NewGreedy validates k and returns a sweep for it.
//
// Errors: ErrNegativeGap.
func NewGreedy[T cmp.Ordered](k int) (*GreedySolver[T], error) {
	if k < 0 {
		return nil, ErrNegativeGap
	}

	return &GreedySolver[T]{k: k}, nil
}

// K returns the gap parameter.
func (g *GreedySolver[T]) K() int { return g.k }

// Solve sweeps two cursors over x and y:
//   - equal symbols count a match and both cursors jump K+1;
//   - otherwise the cursor on the smaller symbol advances by one.
//
// The skip rule is a merge-style heuristic over the symbol order and can miss
// the optimum. Matches it counts are K+1 apart in both inputs, so the length
// never exceeds the exact length under either GapMode.
//
// Complexity: Time O(n+m), Memory O(1).
func (g *GreedySolver[T]) Solve(x, y []T) GreedyResult {
	start := time.Now()
	n, m := len(x), len(y)
	i, j, length := 0, 0, 0
	for i < n && j < m {
		switch {
		case x[i] == y[j]:
			length++
			i = jump(i, g.k, n)
			j = jump(j, g.k, m)
		case x[i] < y[j]:
			i++
		default:
			j++
		}
	}

	return GreedyResult{Length: length, Elapsed: time.Since(start)}
}

// SolveGreedy is NewGreedy(k) followed by Solve(x, y).
//
// Errors: ErrNegativeGap.
func SolveGreedy[T cmp.Ordered](x, y []T, k int) (GreedyResult, error) {
	g, err := NewGreedy[T](k)
	if err != nil {
		return GreedyResult{}, err
	}

	return g.Solve(x, y), nil
}

// jump advances p by k+1 without overflowing past limit.
func jump(p, k, limit int) int {
	if k >= limit-p {
		return limit
	}

	return p + k + 1
}
