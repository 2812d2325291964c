package pipeline_test

import (
	"testing"

	"github.com/minihs-lang/minihs/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunEndToEnd(t *testing.T) {
	outs, err := pipeline.Run(`fib 0 = 0
fib 1 = 1
fib n = fib (n - 1) + fib (n - 2)
fib 10`)
	require.NoError(t, err)
	require.Len(t, outs, 1)
	assert.Equal(t, "55", outs[0].Rendered)
}

func TestRunRejectsOnTypeErrorBeforeEvaluating(t *testing.T) {
	_, err := pipeline.Run(`1 + True`)
	assert.Error(t, err)
}

func TestRunRejectsOnParseError(t *testing.T) {
	_, err := pipeline.Run(`f x = `)
	assert.Error(t, err)
}

func TestCheckDoesNotEvaluate(t *testing.T) {
	prog, err := pipeline.Check(`f x = x + 1`)
	require.NoError(t, err)
	require.Len(t, prog.Decls, 1)
}
