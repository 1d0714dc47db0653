package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lcsfig/fig"
)

// Report is the aggregated outcome of a sweep.
type Report struct {
	Plan           Plan         `json:"plan" yaml:"plan"`
	Rows           []Row        `json:"rows" yaml:"rows"`
	Comparisons    []Comparison `json:"comparisons" yaml:"comparisons"`
	Summary        []GapSummary `json:"summary" yaml:"summary"`
	Violations     []Violation  `json:"violations" yaml:"violations"`
	ElapsedSeconds float64      `json:"elapsed_seconds" yaml:"elapsed_seconds"`
}

// Row holds the trial statistics of one algorithm at one (size, K).
type Row struct {
	Algorithm     string  `json:"algorithm" yaml:"algorithm"`
	Size          int     `json:"size" yaml:"size"`
	K             int     `json:"k" yaml:"k"`
	Trials        int     `json:"trials" yaml:"trials"`
	MeanSeconds   float64 `json:"mean_seconds" yaml:"mean_seconds"`
	StdDevSeconds float64 `json:"stddev_seconds" yaml:"stddev_seconds"`
	MeanBytes     float64 `json:"mean_bytes" yaml:"mean_bytes"`
	MeanLength    float64 `json:"mean_length" yaml:"mean_length"`
}

// Comparison relates the algorithms at one (size, K). A ratio is 0 when one
// side is missing or zero.
//
//   - Speedup:     baseline time / accelerated time.
//   - MemoryRatio: accelerated bytes / baseline bytes.
//   - GreedyRatio: greedy length / exact length (accelerated, else baseline).
type Comparison struct {
	Size        int     `json:"size" yaml:"size"`
	K           int     `json:"k" yaml:"k"`
	Speedup     float64 `json:"speedup" yaml:"speedup"`
	MemoryRatio float64 `json:"memory_ratio" yaml:"memory_ratio"`
	GreedyRatio float64 `json:"greedy_ratio" yaml:"greedy_ratio"`
}

// GapSummary folds the comparisons of one K over all sizes.
type GapSummary struct {
	K              int     `json:"k" yaml:"k"`
	AvgSpeedup     float64 `json:"avg_speedup" yaml:"avg_speedup"`
	MaxSpeedup     float64 `json:"max_speedup" yaml:"max_speedup"`
	AvgMemoryRatio float64 `json:"avg_memory_ratio" yaml:"avg_memory_ratio"`
	AvgGreedyRatio float64 `json:"avg_greedy_ratio" yaml:"avg_greedy_ratio"`
}

// Violation is a failed cross-algorithm check.
type Violation struct {
	Size   int    `json:"size" yaml:"size"`
	K      int    `json:"k" yaml:"k"`
	Trial  int    `json:"trial" yaml:"trial"`
	Detail string `json:"detail" yaml:"detail"`
}

// Row returns the statistics of algorithm a at (size, k).
func (rep *Report) Row(a fig.Algorithm, size, k int) (Row, bool) {
	for _, row := range rep.Rows {
		if row.Algorithm == a.String() && row.Size == size && row.K == k {
			return row, true
		}
	}

	return Row{}, false
}

// add aggregates the trials of one (size, k).
func (rep *Report) add(size, k int, algos []fig.Algorithm, outs []outcome) {
	rows := make(map[fig.Algorithm]Row, len(algos))
	for _, a := range algos {
		secs := make([]float64, 0, len(outs))
		var bytes, length float64
		for _, out := range outs {
			s := out.samples[a]
			secs = append(secs, s.elapsed.Seconds())
			bytes += float64(s.bytes)
			length += float64(s.length)
		}
		mean, sd := meanStdDev(secs)
		trials := float64(len(outs))
		row := Row{
			Algorithm:     a.String(),
			Size:          size,
			K:             k,
			Trials:        len(outs),
			MeanSeconds:   mean,
			StdDevSeconds: sd,
			MeanBytes:     bytes / trials,
			MeanLength:    length / trials,
		}
		rows[a] = row
		rep.Rows = append(rep.Rows, row)
	}

	c := Comparison{Size: size, K: k}
	base, hasBase := rows[fig.Baseline]
	acc, hasAcc := rows[fig.Accelerated]
	if hasBase && hasAcc {
		c.Speedup = ratio(base.MeanSeconds, acc.MeanSeconds)
		c.MemoryRatio = ratio(acc.MeanBytes, base.MeanBytes)
	}
	exact, hasExact := acc, hasAcc
	if !hasExact {
		exact, hasExact = base, hasBase
	}
	if greedy, ok := rows[fig.Greedy]; ok && hasExact {
		c.GreedyRatio = ratio(greedy.MeanLength, exact.MeanLength)
	}
	rep.Comparisons = append(rep.Comparisons, c)
}

// summarize fills Summary from Comparisons, one entry per K in plan order.
func (rep *Report) summarize() {
	rep.Summary = rep.Summary[:0]
	for _, k := range rep.Plan.Gaps {
		s := GapSummary{K: k}
		var count float64
		for _, c := range rep.Comparisons {
			if c.K != k {
				continue
			}
			count++
			s.AvgSpeedup += c.Speedup
			s.MaxSpeedup = max(s.MaxSpeedup, c.Speedup)
			s.AvgMemoryRatio += c.MemoryRatio
			s.AvgGreedyRatio += c.GreedyRatio
		}
		if count == 0 {
			continue
		}
		s.AvgSpeedup /= count
		s.AvgMemoryRatio /= count
		s.AvgGreedyRatio /= count
		rep.Summary = append(rep.Summary, s)
	}
}

// WriteJSON writes rep as indented JSON.
func (rep *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(rep)
}

// WriteYAML writes rep as YAML.
func (rep *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}

	return enc.Close()
}

// WriteText writes the rows, comparisons and violations as aligned tables.
func (rep *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tSIZE\tK\tMEAN(ms)\tSTDDEV(ms)\tBYTES\tLENGTH")
	for _, r := range rep.Rows {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.3f\t%.3f\t%.0f\t%.2f\n",
			r.Algorithm, r.Size, r.K, r.MeanSeconds*1e3, r.StdDevSeconds*1e3, r.MeanBytes, r.MeanLength)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "SIZE\tK\tSPEEDUP\tMEMORY\tGREEDY/EXACT")
	for _, c := range rep.Comparisons {
		fmt.Fprintf(tw, "%d\t%d\t%.2fx\t%.2fx\t%.3f\n", c.Size, c.K, c.Speedup, c.MemoryRatio, c.GreedyRatio)
	}
	if len(rep.Violations) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "SIZE\tK\tTRIAL\tVIOLATION")
		for _, v := range rep.Violations {
			fmt.Fprintf(tw, "%d\t%d\t%d\t%s\n", v.Size, v.K, v.Trial, v.Detail)
		}
	}

	return tw.Flush()
}

// CheckFormat reports whether Write accepts format.
func CheckFormat(format string) error {
	switch format {
	case "json", "yaml", "yml", "text", "":
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Write dispatches on format: "json", "yaml" or "text" (the default).
func (rep *Report) Write(w io.Writer, format string) error {
	if err := CheckFormat(format); err != nil {
		return err
	}
	switch format {
	case "json":
		return rep.WriteJSON(w)
	case "yaml", "yml":
		return rep.WriteYAML(w)
	default:
		return rep.WriteText(w)
	}
}

// meanStdDev returns the mean and the sample standard deviation of xs.
func meanStdDev(xs []float64) (mean, sd float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	if len(xs) < 2 {
		return mean, 0
	}
	var ss float64
	for _, x := range xs {
		ss += (x - mean) * (x - mean)
	}

	return mean, math.Sqrt(ss / float64(len(xs)-1))
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}

	return num / den
}
