package fig

import (
	"errors"
	"strings"
	"time"

	"github.com/katalvlaran/lcsfig/rmq"
)

// Sentinel errors returned by fig solvers.
var (
	// ErrNegativeGap indicates K < 0. It is reported before any allocation.
	ErrNegativeGap = errors.New("fig: gap parameter K must be non-negative")

	// ErrTableTooLarge indicates the DP table would not fit the memory limit.
	ErrTableTooLarge = errors.New("fig: DP table exceeds memory limit")

	// ErrUnknownGapMode indicates an unsupported Options.Mode.
	ErrUnknownGapMode = errors.New("fig: unknown gap mode")

	// ErrUnknownTerminal indicates an unsupported Options.Terminal.
	ErrUnknownTerminal = errors.New("fig: unknown terminal policy")

	// ErrBadWorkers indicates Options.Workers < 0.
	ErrBadWorkers = errors.New("fig: workers must be non-negative")

	// ErrUnknownAlgorithm indicates an unsupported Algorithm name.
	ErrUnknownAlgorithm = errors.New("fig: unknown algorithm")
)

// GapMode selects how K constrains consecutive matches.
type GapMode int

const (
	// GapWindow draws predecessors from [i-K-1, i-1] × [j-K-1, j-1].
	// Carried values make (i-1, j-1) the prefix maximum, so the length is
	// classic LCS for every K; K does not bound the distance between matches.
	GapWindow GapMode = iota

	// GapMinOffset draws predecessors from [0, i-K-1] × [0, j-K-1].
	GapMinOffset
)

// String returns the lowercase name of g.
func (g GapMode) String() string {
	switch g {
	case GapWindow:
		return "window"
	case GapMinOffset:
		return "minoffset"
	default:
		return "unknown"
	}
}

// ParseGapMode is the inverse of GapMode.String.
func ParseGapMode(s string) (GapMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "window", "":
		return GapWindow, nil
	case "minoffset", "min-offset", "fixed":
		return GapMinOffset, nil
	default:
		return 0, ErrUnknownGapMode
	}
}

// Terminal selects the cell reconstruction starts from.
//
// The two policies differ when the table is not monotone (GapWindow with
// trailing non-matching tails): the maximum can sit away from (n, m).
type Terminal int

const (
	// TerminalGlobalMax starts at the first table maximum in row-major order.
	TerminalGlobalMax Terminal = iota

	// TerminalEnd starts at (n, m).
	TerminalEnd
)

// String returns the lowercase name of t.
func (t Terminal) String() string {
	switch t {
	case TerminalGlobalMax:
		return "globalmax"
	case TerminalEnd:
		return "end"
	default:
		return "unknown"
	}
}

// ParseTerminal is the inverse of Terminal.String.
func ParseTerminal(s string) (Terminal, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "globalmax", "global", "":
		return TerminalGlobalMax, nil
	case "end":
		return TerminalEnd, nil
	default:
		return 0, ErrUnknownTerminal
	}
}

// Algorithm names a solver for dispatching harnesses.
type Algorithm int

const (
	// Baseline is SolveBaseline.
	Baseline Algorithm = iota
	// Accelerated is SolveAccelerated.
	Accelerated
	// Greedy is SolveGreedy.
	Greedy
)

// Algorithms lists every Algorithm in a stable order.
var Algorithms = []Algorithm{Baseline, Accelerated, Greedy}

// String returns the lowercase name of a.
func (a Algorithm) String() string {
	switch a {
	case Baseline:
		return "baseline"
	case Accelerated:
		return "accelerated"
	case Greedy:
		return "greedy"
	default:
		return "unknown"
	}
}

// Exact reports whether a returns the optimal length.
func (a Algorithm) Exact() bool { return a == Baseline || a == Accelerated }

// ParseAlgorithm is the inverse of Algorithm.String.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "baseline", "dp", "fig-dp":
		return Baseline, nil
	case "accelerated", "rmq", "rmq-fig":
		return Accelerated, nil
	case "greedy":
		return Greedy, nil
	default:
		return 0, ErrUnknownAlgorithm
	}
}

// Options configures the exact solvers.
//
// Fields:
//   - Mode          — gap reading, GapWindow by default.
//   - Terminal      — reconstruction start, TerminalGlobalMax by default.
//   - Backend       — rmq backend used by SolveAccelerated (RowSegment by
//     default). SolveBaseline always scans its own table.
//   - KeepTable     — return the filled table in Result.Table.
//   - Workers       — 0 or 1 fills sequentially; >1 fills by wavefronts.
//   - MaxTableBytes — memory ceiling for table + parent arena + backend;
//     0 means the machine's physical memory.
type Options struct {
	Mode          GapMode
	Terminal      Terminal
	Backend       rmq.Kind
	KeepTable     bool
	Workers       int
	MaxTableBytes int64
}

// DefaultOptions returns window gaps, global-max terminal, the RowSegment
// backend, sequential fill and no table retention.
func DefaultOptions() Options {
	return Options{
		Mode:     GapWindow,
		Terminal: TerminalGlobalMax,
		Backend:  rmq.RowSegment,
	}
}

// Coord is a cell coordinate. In Result.End it is a 1-based table cell;
// in Result.Alignment it is a pair of 0-based positions into X and Y.
type Coord struct {
	I, J int
}

// Result is the outcome of an exact solve.
type Result[T any] struct {
	// Length is the LCS-FIG length; always len(Subsequence).
	Length int

	// Subsequence holds the matched symbols left to right.
	Subsequence []T

	// Alignment holds the matched 0-based positions (x index, y index).
	Alignment []Coord

	// End is the terminal table cell reconstruction started from.
	End Coord

	// Table is the filled DP table when Options.KeepTable is set, else nil.
	Table *Table

	// Elapsed is the wall-clock time of fill and reconstruction.
	Elapsed time.Duration
}

// GreedyResult is the outcome of a greedy sweep.
type GreedyResult struct {
	Length  int
	Elapsed time.Duration
}
