// Package bench runs LCS-FIG experiments: it draws seeded random pairs over a
// grid of sizes and gaps, times every requested algorithm on the same pair,
// cross-checks their answers and aggregates the measurements into a Report.
//
// Workflow:
//
//	plan := bench.DefaultPlan()          // or bench.LoadPlan("sweep.toml")
//	r, err := bench.NewRunner(plan, logrus.StandardLogger(), nil)
//	rep, err := r.Run(ctx)
//	err = rep.WriteJSON(os.Stdout)
//
// Invariants checked per trial:
//   - Baseline and Accelerated return the same length and subsequence.
//   - Greedy never exceeds an exact length, in either gap mode.
//
// Violations do not stop the run; they are logged and listed in the Report.
//
// Memory:
//   - Bytes are TotalAlloc deltas from runtime.MemStats. They are only
//     meaningful for sequential trials, so Parallel > 1 reports zero bytes.
package bench
