package fig_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lcsfig/fig"
	"github.com/katalvlaran/lcsfig/rmq"
)

type exactSolver func(x, y []byte, k int, opts *fig.Options) (fig.Result[byte], error)

var exactSolvers = map[string]exactSolver{
	"baseline":    fig.SolveBaseline[byte],
	"accelerated": fig.SolveAccelerated[byte],
}

// TestExact_BoundaryCases checks the literal cases under the default
// window reading.
func TestExact_BoundaryCases(t *testing.T) {
	cases := []struct {
		x, y string
		k    int
		want string
	}{
		{"", "", 0, ""},
		{"", "", 7, ""},
		{"ABCDE", "", 1, ""},
		{"", "ABCDE", 1, ""},
		{"ABCDE", "ACE", 1, "ACE"},
		{"ABCDE", "ABCDE", 1, "ABCDE"},
		{"AAAAAA", "AAA", 2, "AAA"},
		{"ABCDE", "XYZ", 1, ""},
		{"ABCDEFG", "ACEG", 1, "ACEG"},
		{"ABCDEFG", "ACEG", 3, "ACEG"},
		// carried values bridge longer runs than K
		{"AXXXB", "AB", 1, "AB"},
	}
	for name, solve := range exactSolvers {
		for _, tc := range cases {
			res, err := solve([]byte(tc.x), []byte(tc.y), tc.k, nil)
			require.NoError(t, err, "%s %q %q K=%d", name, tc.x, tc.y, tc.k)
			assert.Equal(t, len(tc.want), res.Length, "%s %q %q K=%d", name, tc.x, tc.y, tc.k)
			assert.Equal(t, tc.want, string(res.Subsequence), "%s %q %q K=%d", name, tc.x, tc.y, tc.k)
			checkAlignment(t, []byte(tc.x), []byte(tc.y), res)
		}
	}
}

// TestExact_MinOffsetCases checks the fixed-offset reading by hand-derived values.
func TestExact_MinOffsetCases(t *testing.T) {
	cases := []struct {
		x, y string
		k    int
		want string
	}{
		{"ABCDE", "ACE", 1, "AE"},
		{"ABCDE", "ABCDE", 1, "ACE"},
		{"ABCDE", "ABCDE", 0, "ABCDE"},
		{"AAAAAA", "AAA", 2, "A"},
		{"AAAAAA", "AAA", 0, "AAA"},
	}
	opts := fig.DefaultOptions()
	opts.Mode = fig.GapMinOffset
	for name, solve := range exactSolvers {
		for _, tc := range cases {
			res, err := solve([]byte(tc.x), []byte(tc.y), tc.k, &opts)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(res.Subsequence), "%s %q %q K=%d", name, tc.x, tc.y, tc.k)
			assert.Equal(t, len(tc.want), res.Length)
		}
	}
}

func TestExact_AlignmentPositions(t *testing.T) {
	res, err := fig.SolveAccelerated([]byte("ABCDE"), []byte("ACE"), 1, nil)
	require.NoError(t, err)
	assert.Equal(t, []fig.Coord{{I: 0, J: 0}, {I: 2, J: 1}, {I: 4, J: 2}}, res.Alignment)
	assert.Equal(t, fig.Coord{I: 5, J: 3}, res.End)
}

func TestExact_NegativeGap(t *testing.T) {
	for name, solve := range exactSolvers {
		res, err := solve([]byte("ABC"), []byte("ABC"), -1, nil)
		assert.ErrorIs(t, err, fig.ErrNegativeGap, name)
		assert.Zero(t, res.Length, name)
		assert.Nil(t, res.Table, name)
	}
}

func TestExact_HugeGapDoesNotOverflow(t *testing.T) {
	x, y := []byte("ABCDE"), []byte("ACE")
	res, err := fig.SolveAccelerated(x, y, math.MaxInt, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Length, "an unbounded window is classic LCS")

	opts := fig.DefaultOptions()
	opts.Mode = fig.GapMinOffset
	res, err = fig.SolveBaseline(x, y, math.MaxInt, &opts)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Length, "an unbounded offset allows one match")
}

func TestExact_InvalidOptions(t *testing.T) {
	x, y := []byte("AB"), []byte("AB")
	bad := []struct {
		opts fig.Options
		want error
	}{
		{fig.Options{Mode: fig.GapMode(9)}, fig.ErrUnknownGapMode},
		{fig.Options{Terminal: fig.Terminal(9)}, fig.ErrUnknownTerminal},
		{fig.Options{Workers: -1}, fig.ErrBadWorkers},
		{fig.Options{Backend: rmq.Kind(9)}, rmq.ErrUnknownKind},
	}
	for _, tc := range bad {
		_, err := fig.SolveAccelerated(x, y, 0, &tc.opts)
		assert.ErrorIs(t, err, tc.want)
	}
}

func TestExact_TableTooLarge(t *testing.T) {
	opts := fig.DefaultOptions()
	opts.MaxTableBytes = 64
	for name, solve := range exactSolvers {
		_, err := solve([]byte("ABCDEFGH"), []byte("ABCDEFGH"), 1, &opts)
		assert.ErrorIs(t, err, fig.ErrTableTooLarge, name)
	}

	// one 1×1 boundary cell fits
	opts.MaxTableBytes = 16
	res, err := fig.SolveBaseline([]byte{}, []byte{}, 0, &opts)
	require.NoError(t, err)
	assert.Zero(t, res.Length)
}

func TestExact_TerminalPolicy(t *testing.T) {
	x, y := []byte("ACEX"), []byte("ACE")
	global, err := fig.SolveBaseline(x, y, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, fig.Coord{I: 3, J: 3}, global.End, "first maximum in row-major order")

	opts := fig.DefaultOptions()
	opts.Terminal = fig.TerminalEnd
	end, err := fig.SolveBaseline(x, y, 1, &opts)
	require.NoError(t, err)
	assert.Equal(t, fig.Coord{I: 4, J: 3}, end.End)
	assert.Equal(t, global.Subsequence, end.Subsequence)
	assert.Equal(t, "ACE", string(end.Subsequence))

	empty, err := fig.SolveBaseline([]byte("AB"), []byte("CD"), 1, nil)
	require.NoError(t, err)
	assert.Equal(t, fig.Coord{I: 2, J: 2}, empty.End, "zero table falls back to (n, m)")
}

func TestExact_KeepTable(t *testing.T) {
	opts := fig.DefaultOptions()
	res, err := fig.SolveBaseline([]byte("ABCDE"), []byte("ACE"), 1, &opts)
	require.NoError(t, err)
	assert.Nil(t, res.Table, "table is dropped by default")

	opts.KeepTable = true
	res, err = fig.SolveAccelerated([]byte("ABCDE"), []byte("ACE"), 1, &opts)
	require.NoError(t, err)
	tab := res.Table
	require.NotNil(t, tab)
	assert.Equal(t, 6, tab.Rows())
	assert.Equal(t, 4, tab.Cols())
	assert.Equal(t, 3, tab.At(5, 3))
	assert.Equal(t, 2, tab.At(4, 2), "carry-forward below C")

	assert.True(t, tab.IsMatch(1, 1))
	_, ok := tab.Parent(1, 1)
	assert.False(t, ok, "A starts the chain")

	p, ok := tab.Parent(3, 2)
	require.True(t, ok)
	assert.Equal(t, fig.Coord{I: 2, J: 1}, p, "ties resolve to the bottom-right predecessor")

	assert.False(t, tab.IsMatch(4, 2))
	_, ok = tab.Parent(4, 2)
	assert.False(t, ok)
}

func TestTable_String(t *testing.T) {
	opts := fig.DefaultOptions()
	opts.KeepTable = true
	res, err := fig.SolveBaseline([]byte("AB"), []byte("A"), 0, &opts)
	require.NoError(t, err)
	assert.Equal(t, "0 0\n0 1*\n0 1\n", res.Table.String())
}

func TestExact_WavefrontMatchesSequential(t *testing.T) {
	x := []byte(randomSeq(t, 11, 300, "ACGT"))
	y := []byte(randomSeq(t, 12, 280, "ACGT"))
	for _, mode := range []fig.GapMode{fig.GapWindow, fig.GapMinOffset} {
		for name, solve := range exactSolvers {
			seqOpts := fig.DefaultOptions()
			seqOpts.Mode = mode
			seqOpts.KeepTable = true
			want, err := solve(x, y, 3, &seqOpts)
			require.NoError(t, err)

			parOpts := seqOpts
			parOpts.Workers = 4
			got, err := solve(x, y, 3, &parOpts)
			require.NoError(t, err)
			sameResult(t, want, got, "%s %v", name, mode)
		}
	}
}

func TestEnums_RoundTrip(t *testing.T) {
	for _, m := range []fig.GapMode{fig.GapWindow, fig.GapMinOffset} {
		got, err := fig.ParseGapMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	for _, tm := range []fig.Terminal{fig.TerminalGlobalMax, fig.TerminalEnd} {
		got, err := fig.ParseTerminal(tm.String())
		require.NoError(t, err)
		assert.Equal(t, tm, got)
	}
	for _, a := range fig.Algorithms {
		got, err := fig.ParseAlgorithm(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	_, err := fig.ParseGapMode("diagonal")
	assert.ErrorIs(t, err, fig.ErrUnknownGapMode)
	_, err = fig.ParseTerminal("start")
	assert.ErrorIs(t, err, fig.ErrUnknownTerminal)
	_, err = fig.ParseAlgorithm("beam")
	assert.ErrorIs(t, err, fig.ErrUnknownAlgorithm)
	assert.True(t, fig.Accelerated.Exact())
	assert.False(t, fig.Greedy.Exact())
}
