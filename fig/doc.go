// Package fig solves the Longest Common Subsequence with Fixed-length Indel
// Gap problem (LCS-FIG) for two symbol sequences X (length n), Y (length m)
// and a gap parameter K ≥ 0.
//
// 🚀 What is LCS-FIG?
//
//	A common subsequence of X and Y whose consecutive matched positions are
//	tied together by K. It models biological-sequence alignment when indels
//	are assumed to have a fixed length. Two gap readings are supported
//	(see GapMode):
//	  • GapWindow    — a match at (i, j) extends the best value found in the
//	                   trailing (K+1)×(K+1) rectangle [i-K-1, i-1] × [j-K-1, j-1].
//	                   Non-matching cells carry values forward, so (i-1, j-1)
//	                   already holds the best of the whole prefix: the length
//	                   equals classic LCS for every K and chains may skip any
//	                   number of symbols. K only changes which cells are read.
//	  • GapMinOffset — consecutive matches are at least K+1 apart in both
//	                   sequences: i2 ≥ i1+K+1 and j2 ≥ j1+K+1.
//	With K = 0 both readings are classic LCS.
//
// ✨ Solvers:
//   - SolveBaseline    — exact DP, brute-force rectangle scan over the table.
//     Time O(n·m·K²) (window), Memory O(n·m).
//   - SolveAccelerated — exact DP, rectangle maxima served by an rmq backend
//     (RowSegment by default). Time O(n·m·K·log m) (window), Memory O(n·m).
//   - SolveGreedy      — linear two-cursor sweep; fast, not optimal.
//     Time O(n+m), Memory O(1).
//
// Determinism:
//
//	Ties among equal predecessors resolve to the lexicographically largest
//	(i, j), and the terminal cell is the first table maximum in row-major
//	order (TerminalGlobalMax) or (n, m) (TerminalEnd). Baseline and
//	accelerated solvers return identical results for identical input.
//
// ⚙️ Usage:
//
//	res, err := fig.SolveAccelerated([]byte("ABCDE"), []byte("ACE"), 1, nil)
//	if err != nil { ... }
//	fmt.Println(res.Length, string(res.Subsequence)) // 3 ACE
//
// Concurrency:
//
//	Every call builds its own table; solvers keep no state across calls and
//	are safe for concurrent use. Options.Workers > 1 fills the table by
//	anti-diagonal wavefronts on that many goroutines.
package fig
