package fig_test

import (
	"testing"

	"github.com/katalvlaran/lcsfig/fig"
	"github.com/katalvlaran/lcsfig/seqgen"
)

// benchmarkExact runs solve on a fixed random DNA pair of size n.
func benchmarkExact(b *testing.B, n, k int, accelerated bool, opts fig.Options) {
	x, _ := seqgen.DNA(seqgen.NewRand(1), n, 0.5)
	y, _ := seqgen.DNA(seqgen.NewRand(2), n, 0.5)
	solve := fig.SolveBaseline[byte]
	if accelerated {
		solve = fig.SolveAccelerated[byte]
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solve(x, y, k, &opts); err != nil {
			b.Fatalf("solve failed: %v", err)
		}
	}
}

func BenchmarkBaseline_n200_K5(b *testing.B) {
	benchmarkExact(b, 200, 5, false, fig.DefaultOptions())
}

func BenchmarkAccelerated_n200_K5(b *testing.B) {
	benchmarkExact(b, 200, 5, true, fig.DefaultOptions())
}

func BenchmarkBaseline_n200_K20(b *testing.B) {
	benchmarkExact(b, 200, 20, false, fig.DefaultOptions())
}

func BenchmarkAccelerated_n200_K20(b *testing.B) {
	benchmarkExact(b, 200, 20, true, fig.DefaultOptions())
}

// BenchmarkAccelerated_Wavefront_n800_K10 fills by anti-diagonals on 4 goroutines.
func BenchmarkAccelerated_Wavefront_n800_K10(b *testing.B) {
	opts := fig.DefaultOptions()
	opts.Workers = 4
	benchmarkExact(b, 800, 10, true, opts)
}

func BenchmarkGreedy_n100000(b *testing.B) {
	x, _ := seqgen.DNA(seqgen.NewRand(1), 100000, 0.5)
	y, _ := seqgen.DNA(seqgen.NewRand(2), 100000, 0.5)
	g, err := fig.NewGreedy[byte](5)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Solve(x, y)
	}
}
