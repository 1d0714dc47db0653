package bench

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lcsfig/fig"
	"github.com/katalvlaran/lcsfig/rmq"
	"github.com/katalvlaran/lcsfig/seqgen"
)

// Sentinel errors for plan validation.
var (
	// ErrNoSizes indicates a plan without sequence sizes.
	ErrNoSizes = errors.New("bench: plan needs at least one size")

	// ErrBadSize indicates a negative sequence size.
	ErrBadSize = errors.New("bench: sizes must be non-negative")

	// ErrNoGaps indicates a plan without gap values.
	ErrNoGaps = errors.New("bench: plan needs at least one gap")

	// ErrBadTrials indicates Trials < 1.
	ErrBadTrials = errors.New("bench: trials must be positive")

	// ErrBadParallel indicates Parallel < 0.
	ErrBadParallel = errors.New("bench: parallel must be non-negative")

	// ErrNoAlgorithms indicates an empty algorithm list.
	ErrNoAlgorithms = errors.New("bench: plan needs at least one algorithm")

	// ErrUnknownFormat indicates a report format other than json, yaml or text.
	ErrUnknownFormat = errors.New("bench: unknown report format")
)

// Plan describes one sweep. Zero-valued enum strings take fig defaults.
type Plan struct {
	Sizes         []int    `toml:"sizes" json:"sizes" yaml:"sizes"`
	Gaps          []int    `toml:"gaps" json:"gaps" yaml:"gaps"`
	Trials        int      `toml:"trials" json:"trials" yaml:"trials"`
	Alphabet      string   `toml:"alphabet" json:"alphabet" yaml:"alphabet"`
	Seed          int64    `toml:"seed" json:"seed" yaml:"seed"`
	Algorithms    []string `toml:"algorithms" json:"algorithms" yaml:"algorithms"`
	Mode          string   `toml:"mode" json:"mode" yaml:"mode"`
	Terminal      string   `toml:"terminal" json:"terminal" yaml:"terminal"`
	Backend       string   `toml:"backend" json:"backend" yaml:"backend"`
	Workers       int      `toml:"workers" json:"workers" yaml:"workers"`
	Parallel      int      `toml:"parallel" json:"parallel" yaml:"parallel"`
	Related       float64  `toml:"related" json:"related" yaml:"related"`
	MaxTableBytes int64    `toml:"max_table_bytes" json:"max_table_bytes" yaml:"max_table_bytes"`
}

// DefaultPlan returns the standard sweep: random uppercase pairs of 100 to
// 1600 symbols, K in {5, 10, 20}, three trials, all three algorithms.
func DefaultPlan() Plan {
	return Plan{
		Sizes:      []int{100, 200, 400, 800, 1600},
		Gaps:       []int{5, 10, 20},
		Trials:     3,
		Alphabet:   seqgen.Uppercase,
		Seed:       seqgen.DefaultSeed,
		Algorithms: []string{fig.Baseline.String(), fig.Accelerated.String(), fig.Greedy.String()},
		Mode:       fig.GapWindow.String(),
		Terminal:   fig.TerminalGlobalMax.String(),
		Backend:    rmq.RowSegment.String(),
		Parallel:   1,
	}
}

// DecodePlan reads a TOML plan. Keys missing from r keep DefaultPlan values.
//
// Errors: TOML syntax errors, undecoded keys, then Validate errors.
func DecodePlan(r io.Reader) (Plan, error) {
	p := DefaultPlan()
	md, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return Plan{}, fmt.Errorf("bench: decode plan: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Plan{}, fmt.Errorf("bench: unknown plan key %q", undecoded[0].String())
	}
	if err = p.Validate(); err != nil {
		return Plan{}, err
	}

	return p, nil
}

// LoadPlan reads a TOML plan file; see DecodePlan.
func LoadPlan(path string) (Plan, error) {
	p := DefaultPlan()
	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return Plan{}, fmt.Errorf("bench: load plan %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Plan{}, fmt.Errorf("bench: %s: unknown plan key %q", path, undecoded[0].String())
	}
	if err = p.Validate(); err != nil {
		return Plan{}, err
	}

	return p, nil
}

// Encode writes p as TOML.
func (p Plan) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(p)
}

// Validate reports the first problem with p.
func (p Plan) Validate() error {
	_, err := p.resolve()

	return err
}

// settings is a validated Plan in solver terms.
type settings struct {
	algos []fig.Algorithm
	opts  fig.Options
}

func (p Plan) resolve() (settings, error) {
	var s settings
	if len(p.Sizes) == 0 {
		return s, ErrNoSizes
	}
	for _, n := range p.Sizes {
		if n < 0 {
			return s, ErrBadSize
		}
	}
	if len(p.Gaps) == 0 {
		return s, ErrNoGaps
	}
	for _, k := range p.Gaps {
		if k < 0 {
			return s, fig.ErrNegativeGap
		}
	}
	if p.Trials < 1 {
		return s, ErrBadTrials
	}
	if p.Parallel < 0 {
		return s, ErrBadParallel
	}
	if p.Workers < 0 {
		return s, fig.ErrBadWorkers
	}
	if len(p.Alphabet) == 0 {
		return s, seqgen.ErrEmptyAlphabet
	}
	if p.Related < 0 || p.Related > 1 {
		return s, seqgen.ErrBadRate
	}
	if len(p.Algorithms) == 0 {
		return s, ErrNoAlgorithms
	}

	seen := make(map[fig.Algorithm]bool, len(p.Algorithms))
	for _, name := range p.Algorithms {
		a, err := fig.ParseAlgorithm(name)
		if err != nil {
			return s, fmt.Errorf("%w: %q", err, name)
		}
		if !seen[a] {
			seen[a] = true
			s.algos = append(s.algos, a)
		}
	}

	s.opts = fig.DefaultOptions()
	var err error
	if p.Mode != "" {
		if s.opts.Mode, err = fig.ParseGapMode(p.Mode); err != nil {
			return s, err
		}
	}
	if p.Terminal != "" {
		if s.opts.Terminal, err = fig.ParseTerminal(p.Terminal); err != nil {
			return s, err
		}
	}
	if p.Backend != "" {
		if s.opts.Backend, err = rmq.ParseKind(p.Backend); err != nil {
			return s, err
		}
	}
	s.opts.Workers = p.Workers
	s.opts.MaxTableBytes = p.MaxTableBytes

	return s, nil
}
