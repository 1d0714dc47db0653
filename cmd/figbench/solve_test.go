package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lcsfig/fig"
	"github.com/katalvlaran/lcsfig/rmq"
)

func TestSolveOptions(t *testing.T) {
	defer func(m, term, b, w string) {
		solveMode, solveTerminal, solveBackend, solveWorkers = m, term, b, w
	}(solveMode, solveTerminal, solveBackend, solveWorkers)

	solveMode, solveTerminal, solveBackend, solveWorkers = "minoffset", "end", "dense", "4"
	opts, err := solveOptions()
	require.NoError(t, err)
	assert.Equal(t, fig.GapMinOffset, opts.Mode)
	assert.Equal(t, fig.TerminalEnd, opts.Terminal)
	assert.Equal(t, rmq.DenseScan, opts.Backend)
	assert.Equal(t, 4, opts.Workers)

	solveWorkers = "many"
	_, err = solveOptions()
	assert.Error(t, err)

	solveWorkers, solveBackend = "0", "fenwick"
	_, err = solveOptions()
	assert.ErrorIs(t, err, rmq.ErrUnknownKind)
}

func TestTasks_FlagParsersBound(t *testing.T) {
	byName := map[string]bool{}
	for _, task := range tasks {
		byName[task.Name] = task.Parse != nil
	}
	assert.Equal(t, map[string]bool{"solve": true, "sweep": true, "plan": false}, byName)
}
