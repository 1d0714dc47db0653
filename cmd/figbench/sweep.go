package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/swdunlop/zugzug-go/zug/parser"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/katalvlaran/lcsfig/bench"
)

var (
	sweepPlan       string
	sweepFormat     = `text`
	sweepOut        string
	sweepNoProgress bool
	sweepVerbose    bool
)

var sweepParser = parser.New(
	parser.String(&sweepPlan, `plan`, `p`, `TOML plan file; empty runs the default plan`),
	parser.String(&sweepFormat, `format`, `f`, `report format: text, json or yaml`),
	parser.String(&sweepOut, `out`, `o`, `report file; empty writes to stdout`),
	parser.Bool(&sweepNoProgress, `no-progress`, ``, false, `disable the progress bar`),
	parser.Bool(&sweepVerbose, `verbose`, `v`, false, `log at debug level`),
)

func runSweep(ctx context.Context) (err error) {
	setVerbose(sweepVerbose)
	if err = bench.CheckFormat(sweepFormat); err != nil {
		return err
	}
	plan := bench.DefaultPlan()
	if sweepPlan != "" {
		if plan, err = bench.LoadPlan(sweepPlan); err != nil {
			return err
		}
	}

	var (
		p   *mpb.Progress
		bar *mpb.Bar
	)
	var observe bench.Observer
	if !sweepNoProgress {
		p = mpb.New(
			mpb.WithOutput(os.Stderr),
			mpb.WithAutoRefresh(),
			mpb.WithWidth(60),
		)
		observe = func(pr bench.Progress) {
			bar.SetCurrent(int64(pr.Done))
		}
	}

	r, err := bench.NewRunner(plan, logrus.StandardLogger(), observe)
	if err != nil {
		return err
	}
	if p != nil {
		task := "sweep"
		bar = p.New(int64(r.Total()),
			mpb.BarStyle().Filler("#").Padding(" "),
			mpb.PrependDecorators(
				decor.Name(task, decor.WC{W: len(task) + 1, C: decor.DindentRight}),
				decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
			),
			mpb.AppendDecorators(
				decor.OnComplete(decor.Elapsed(decor.ET_STYLE_GO), "done"),
			),
		)
	}

	rep, err := r.Run(ctx)
	if p != nil {
		if err != nil {
			bar.Abort(false)
		}
		p.Wait()
	}
	if err != nil {
		return err
	}

	w := os.Stdout
	if sweepOut != "" {
		fd, cerr := os.Create(sweepOut)
		if cerr != nil {
			return cerr
		}
		defer func() {
			if cerr := fd.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		w = fd
	}
	if err = rep.Write(w, sweepFormat); err != nil {
		return fmt.Errorf("sweep: write report: %w", err)
	}
	if len(rep.Violations) > 0 {
		return fmt.Errorf("sweep: %d invariant violations", len(rep.Violations))
	}

	return nil
}

func printPlan(ctx context.Context) error {
	return bench.DefaultPlan().Encode(os.Stdout)
}
