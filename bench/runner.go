package bench

import (
	"bytes"
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lcsfig/fig"
	"github.com/katalvlaran/lcsfig/seqgen"
)

// Progress is passed to an Observer after each finished trial.
type Progress struct {
	Done, Total int
	Size, K     int
	Trial       int
}

// Observer receives progress updates. Calls are serialized.
type Observer func(Progress)

// Runner executes a Plan.
type Runner struct {
	plan    Plan
	set     settings
	log     logrus.FieldLogger
	observe Observer
}

// NewRunner validates plan and binds a logger and an optional observer.
// A nil log means logrus.StandardLogger().
func NewRunner(plan Plan, log logrus.FieldLogger, observe Observer) (*Runner, error) {
	set, err := plan.resolve()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Runner{plan: plan, set: set, log: log, observe: observe}, nil
}

// Total is the number of trials Run will execute.
func (r *Runner) Total() int {
	return len(r.plan.Sizes) * len(r.plan.Gaps) * r.plan.Trials
}

// sample is one algorithm run on one pair.
type sample struct {
	elapsed time.Duration
	bytes   uint64
	length  int
	seq     []byte
}

// outcome collects the samples of one (size, K, trial).
type outcome struct {
	samples    map[fig.Algorithm]sample
	violations []Violation
}

// Run executes every (size, K, trial) of the plan and aggregates the result.
// Trials of one (size, K) run concurrently when Plan.Parallel > 1.
//
// Errors: context cancellation, sequence generation and solver errors
// (fig.ErrTableTooLarge in particular), wrapped with the failing cell.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	rep := &Report{Plan: r.plan}
	measure := r.plan.Parallel <= 1
	total, done := r.Total(), 0
	var mu sync.Mutex

	for si, n := range r.plan.Sizes {
		for _, k := range r.plan.Gaps {
			log := r.log.WithFields(logrus.Fields{"size": n, "k": k})
			log.Debugf("running %d trials", r.plan.Trials)

			outs := make([]outcome, r.plan.Trials)
			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(max(1, r.plan.Parallel))
			for trial := 0; trial < r.plan.Trials; trial++ {
				g.Go(func() error {
					if err := gctx.Err(); err != nil {
						return err
					}
					// the pair depends on (size, trial) only, so every K sees the same inputs
					stream := uint64(si)<<32 | uint64(trial)
					out, err := r.trial(seqgen.DeriveSeed(r.plan.Seed, stream), n, k, trial, measure)
					if err != nil {
						return fmt.Errorf("bench: size %d K %d trial %d: %w", n, k, trial, err)
					}
					outs[trial] = out

					mu.Lock()
					done++
					if r.observe != nil {
						r.observe(Progress{Done: done, Total: total, Size: n, K: k, Trial: trial})
					}
					mu.Unlock()

					return nil
				})
			}
			if err := g.Wait(); err != nil {
				log.Errorf("sweep aborted: %v", err)

				return nil, err
			}

			for _, out := range outs {
				for _, v := range out.violations {
					log.WithField("trial", v.Trial).Warnf("invariant violated: %s", v.Detail)
				}
				rep.Violations = append(rep.Violations, out.violations...)
			}
			rep.add(n, k, r.set.algos, outs)
		}
	}
	rep.ElapsedSeconds = time.Since(start).Seconds()
	rep.summarize()
	r.log.Infof("sweep finished: %d trials, %d violations, %.2fs",
		total, len(rep.Violations), rep.ElapsedSeconds)

	return rep, nil
}

// trial draws one pair from seed and runs every algorithm on it.
func (r *Runner) trial(seed int64, n, k, trial int, measure bool) (outcome, error) {
	x, y, err := seqgen.Pair(seqgen.NewRand(seed), n, r.plan.Alphabet, r.plan.Related)
	if err != nil {
		return outcome{}, err
	}

	out := outcome{samples: make(map[fig.Algorithm]sample, len(r.set.algos))}
	for _, a := range r.set.algos {
		s, err := r.runOne(a, x, y, k, measure)
		if err != nil {
			return outcome{}, fmt.Errorf("%s: %w", a, err)
		}
		out.samples[a] = s
	}
	out.violations = r.check(out.samples, n, k, trial)

	return out, nil
}

func (r *Runner) runOne(a fig.Algorithm, x, y []byte, k int, measure bool) (sample, error) {
	var before runtime.MemStats
	if measure {
		runtime.ReadMemStats(&before)
	}

	var s sample
	start := time.Now()
	switch a {
	case fig.Baseline, fig.Accelerated:
		solve := fig.SolveBaseline[byte]
		if a == fig.Accelerated {
			solve = fig.SolveAccelerated[byte]
		}
		opts := r.set.opts
		res, err := solve(x, y, k, &opts)
		if err != nil {
			return sample{}, err
		}
		s.length, s.seq = res.Length, res.Subsequence
	case fig.Greedy:
		res, err := fig.SolveGreedy(x, y, k)
		if err != nil {
			return sample{}, err
		}
		s.length = res.Length
	default:
		return sample{}, fig.ErrUnknownAlgorithm
	}
	s.elapsed = time.Since(start)

	if measure {
		var after runtime.MemStats
		runtime.ReadMemStats(&after)
		s.bytes = after.TotalAlloc - before.TotalAlloc
	}

	return s, nil
}

// check applies the cross-algorithm invariants to one trial.
func (r *Runner) check(samples map[fig.Algorithm]sample, n, k, trial int) []Violation {
	var out []Violation
	flag := func(format string, args ...any) {
		out = append(out, Violation{Size: n, K: k, Trial: trial, Detail: fmt.Sprintf(format, args...)})
	}

	base, hasBase := samples[fig.Baseline]
	acc, hasAcc := samples[fig.Accelerated]
	if hasBase && hasAcc {
		if base.length != acc.length {
			flag("baseline length %d != accelerated length %d", base.length, acc.length)
		} else if !bytes.Equal(base.seq, acc.seq) {
			flag("baseline and accelerated subsequences differ")
		}
	}

	greedy, hasGreedy := samples[fig.Greedy]
	if hasGreedy {
		for _, a := range []fig.Algorithm{fig.Baseline, fig.Accelerated} {
			if ex, ok := samples[a]; ok && greedy.length > ex.length {
				flag("greedy length %d > %s length %d", greedy.length, a, ex.length)
			}
		}
	}

	return out
}
