// Package seqgen draws synthetic symbol sequences for LCS-FIG experiments.
//
// Goals:
//   - Determinism: same seed ⇒ identical sequences across platforms.
//   - Encapsulation: one RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics on user input; only sentinel errors.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines.
//   - Use Derive, or NewRand(DeriveSeed(seed, id)), to give each worker or
//     trial its own stream. Parallel benchmark trials do the latter, so their
//     inputs do not depend on scheduling.
package seqgen
