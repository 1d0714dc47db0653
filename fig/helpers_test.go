package fig_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lcsfig/fig"
)

// classicLCS is the textbook O(n·m) LCS length, the K=0 reference.
func classicLCS(x, y []byte) int {
	prev := make([]int, len(y)+1)
	cur := make([]int, len(y)+1)
	for i := 1; i <= len(x); i++ {
		for j := 1; j <= len(y); j++ {
			if x[i-1] == y[j-1] {
				cur[j] = prev[j-1] + 1
			} else {
				cur[j] = max(prev[j], cur[j-1])
			}
		}
		prev, cur = cur, prev
	}

	return prev[len(y)]
}

// isSubsequence reports whether sub can be matched in order inside seq.
func isSubsequence(sub, seq []byte) bool {
	p := 0
	for i := 0; i < len(seq) && p < len(sub); i++ {
		if seq[i] == sub[p] {
			p++
		}
	}

	return p == len(sub)
}

// checkAlignment verifies the structural invariants every exact result obeys:
// lengths agree, positions strictly increase, and each pair matches the symbol.
func checkAlignment(t *testing.T, x, y []byte, res fig.Result[byte]) {
	t.Helper()
	require.Len(t, res.Subsequence, res.Length, "len(Subsequence) must equal Length")
	require.Len(t, res.Alignment, res.Length, "len(Alignment) must equal Length")
	for p, a := range res.Alignment {
		require.Equal(t, x[a.I], res.Subsequence[p], "x symbol at pair %d", p)
		require.Equal(t, y[a.J], res.Subsequence[p], "y symbol at pair %d", p)
		if p > 0 {
			prev := res.Alignment[p-1]
			require.Greater(t, a.I, prev.I, "x positions increase")
			require.Greater(t, a.J, prev.J, "y positions increase")
		}
	}
	require.True(t, isSubsequence(res.Subsequence, x), "subsequence of x")
	require.True(t, isSubsequence(res.Subsequence, y), "subsequence of y")
}

// sameResult compares everything but Elapsed.
func sameResult(t *testing.T, want, got fig.Result[byte], msgAndArgs ...interface{}) {
	t.Helper()
	want.Elapsed, got.Elapsed = 0, 0
	require.Equal(t, want, got, msgAndArgs...)
}
