package fig

import (
	"math"

	"github.com/pbnjay/memory"

	"github.com/katalvlaran/lcsfig/rmq"
)

// bytesPerCell is the fixed cost of one DP cell: its value plus its parent slot.
const bytesPerCell = 16

// resolveOptions applies defaults for nil and validates enum fields.
//
// Complexity: O(1).
func resolveOptions(opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	switch o.Mode {
	case GapWindow, GapMinOffset:
	default:
		return Options{}, ErrUnknownGapMode
	}
	switch o.Terminal {
	case TerminalGlobalMax, TerminalEnd:
	default:
		return Options{}, ErrUnknownTerminal
	}
	if o.Workers < 0 {
		return Options{}, ErrBadWorkers
	}

	return o, nil
}

// checkFootprint estimates the memory of an (n+1)×(m+1) solve (table, parent
// arena and, for the accelerated solver, the rmq backend) and compares it with
// limit; limit 0 means the machine's physical memory.
//
// Errors: ErrTableTooLarge when the estimate overflows or exceeds the limit.
func checkFootprint(n, m int, accelerated bool, kind rmq.Kind, limit int64) error {
	rows, cols := int64(n)+1, int64(m)+1
	if rows > math.MaxInt64/cols {
		return ErrTableTooLarge
	}
	cells := rows * cols
	// backends need at most 16 bytes per cell, so 32 per cell bounds the total
	if cells > math.MaxInt64/(2*bytesPerCell) {
		return ErrTableTooLarge
	}
	need := cells * bytesPerCell
	if accelerated {
		// the baseline scans its own table and adds nothing
		need += kind.Footprint(n+1, m+1)
	}

	if limit == 0 {
		total := memory.TotalMemory()
		if total == 0 || total > math.MaxInt64 {
			// unknown platform: only overflow is rejected
			return nil
		}
		limit = int64(total)
	}
	if need > limit {
		return ErrTableTooLarge
	}

	return nil
}
