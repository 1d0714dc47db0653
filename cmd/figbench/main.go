// Command figbench solves single LCS-FIG instances and runs benchmark sweeps.
//
//	figbench solve --x ABCDE --y ACE --k 1
//	figbench plan > sweep.toml
//	figbench sweep --plan sweep.toml --format yaml --out report.yaml
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/swdunlop/zugzug-go"
)

var tasks = zugzug.Tasks{
	{Name: "solve", Use: "solves one instance and prints length, subsequence and timing", Fn: runSolve, Parse: solveParser},
	{Name: "sweep", Use: "runs a benchmark plan and writes the report", Fn: runSweep, Parse: sweepParser},
	{Name: "plan", Use: "prints the default benchmark plan as TOML", Fn: printPlan},
}

func init() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func main() {
	zugzug.Main(tasks)
}

// setVerbose raises logrus to debug when --verbose was given.
func setVerbose(on bool) {
	if on {
		logrus.SetLevel(logrus.DebugLevel)
	}
}
