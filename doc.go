// Package lcsfig is a toolkit for the Longest Common Subsequence with
// Fixed-length Indel Gap (LCS-FIG) problem: the longest subsequence common to
// X and Y whose consecutive matched positions are spaced by the gap
// parameter K in both inputs.
//
// 🚀 What is inside?
//
//	• fig/    — exact solvers (baseline DP and RMQ-accelerated DP), the
//	            linear greedy approximation, tables and reconstruction
//	• rmq/    — 2D range-maximum backends (dense scan, per-row segment trees)
//	• seqgen/ — seeded synthetic sequences (random, DNA, mutated pairs)
//	• bench/  — TOML-driven sweeps with JSON/YAML/text reports
//	• cmd/figbench — CLI: solve, sweep, plan
//
// ✨ Guarantees
//
//   - Baseline and accelerated solvers return identical results; only the
//     running time differs.
//   - len(Subsequence) == Length, always.
//   - Deterministic tie-breaking and seeded inputs make every run
//     reproducible.
//
// Quick example:
//
//	res, _ := fig.SolveAccelerated([]byte("ABCDE"), []byte("ACE"), 1, nil)
//	fmt.Println(res.Length, string(res.Subsequence)) // 3 ACE
//
//	go get github.com/katalvlaran/lcsfig/fig
package lcsfig
