package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/swdunlop/zugzug-go/zug/parser"

	"github.com/katalvlaran/lcsfig/fig"
	"github.com/katalvlaran/lcsfig/rmq"
)

var (
	solveX         string
	solveY         string
	solveK         = `1`
	solveAlgorithm = `accelerated`
	solveMode      = `window`
	solveTerminal  = `globalmax`
	solveBackend   = `rowsegment`
	solveWorkers   = `0`
	solveTable     bool
	solveVerbose   bool
)

var solveParser = parser.New(
	parser.String(&solveX, `x`, `x`, `first sequence`),
	parser.String(&solveY, `y`, `y`, `second sequence`),
	parser.String(&solveK, `k`, `k`, `gap parameter K`),
	parser.String(&solveAlgorithm, `algorithm`, `a`, `baseline, accelerated or greedy`),
	parser.String(&solveMode, `mode`, `m`, `gap reading: window or minoffset`),
	parser.String(&solveTerminal, `terminal`, `t`, `reconstruction start: globalmax or end`),
	parser.String(&solveBackend, `backend`, `b`, `range-max backend: rowsegment or dense`),
	parser.String(&solveWorkers, `workers`, `w`, `wavefront workers; 0 or 1 fills sequentially`),
	parser.Bool(&solveTable, `table`, ``, false, `print the filled DP table`),
	parser.Bool(&solveVerbose, `verbose`, `v`, false, `log at debug level`),
)

func runSolve(ctx context.Context) error {
	setVerbose(solveVerbose)
	k, err := strconv.Atoi(solveK)
	if err != nil {
		return fmt.Errorf("solve: --k: %w", err)
	}
	algo, err := fig.ParseAlgorithm(solveAlgorithm)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	opts, err := solveOptions()
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	x, y := []rune(solveX), []rune(solveY)
	log := logrus.WithFields(logrus.Fields{"algorithm": algo, "n": len(x), "m": len(y), "k": k})
	log.Debugf("solving with mode %s, backend %s", opts.Mode, opts.Backend)

	if algo == fig.Greedy {
		res, err := fig.SolveGreedy(x, y, k)
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}
		fmt.Fprintf(os.Stdout, "length: %d\nelapsed: %s\n", res.Length, res.Elapsed)

		return nil
	}

	solve := fig.SolveBaseline[rune]
	if algo == fig.Accelerated {
		solve = fig.SolveAccelerated[rune]
	}
	res, err := solve(x, y, k, &opts)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	fmt.Fprintf(os.Stdout, "length: %d\nsubsequence: %s\nalignment: %v\nend: %v\nelapsed: %s\n",
		res.Length, string(res.Subsequence), res.Alignment, res.End, res.Elapsed)
	if res.Table != nil {
		fmt.Fprint(os.Stdout, res.Table)
	}
	log.Debugf("done in %s", res.Elapsed)

	return nil
}

func solveOptions() (fig.Options, error) {
	opts := fig.DefaultOptions()
	var err error
	if opts.Mode, err = fig.ParseGapMode(solveMode); err != nil {
		return opts, err
	}
	if opts.Terminal, err = fig.ParseTerminal(solveTerminal); err != nil {
		return opts, err
	}
	if opts.Backend, err = rmq.ParseKind(solveBackend); err != nil {
		return opts, err
	}
	if opts.Workers, err = strconv.Atoi(solveWorkers); err != nil {
		return opts, fmt.Errorf("--workers: %w", err)
	}
	opts.KeepTable = solveTable

	return opts, nil
}
