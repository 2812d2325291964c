package repl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// These exercise the REPL's per-line evaluation and command handling
// directly rather than through Start, since Start's liner.NewLiner()
// talks to the real terminal (the teacher's own REPL has the same
// shape and is untested at that layer for the same reason).

func TestEvalLinePersistsBindingsAcrossCalls(t *testing.T) {
	r := New("> ", "", false)
	var out strings.Builder
	r.evalLine("double x = x + x", &out)
	r.evalLine("double 21", &out)
	assert.Contains(t, out.String(), "42")
}

func TestEvalLineReportsTypeError(t *testing.T) {
	r := New("> ", "", false)
	var out strings.Builder
	r.evalLine("1 + True", &out)
	assert.Contains(t, out.String(), "type error")
}

func TestEvalLineReportsParseError(t *testing.T) {
	r := New("> ", "", false)
	var out strings.Builder
	r.evalLine("f x = ", &out)
	assert.Contains(t, out.String(), "error")
}

func TestShowTypeCommand(t *testing.T) {
	r := New("> ", "", false)
	var out strings.Builder
	r.showType("1 + 2", &out)
	assert.Contains(t, out.String(), "Int")
}

func TestHandleQuitCommand(t *testing.T) {
	r := New("> ", "", false)
	var out strings.Builder
	quit := r.handleCommand(":quit", &out)
	assert.True(t, quit)
	assert.Contains(t, out.String(), "Goodbye")
}

func TestHandleUnknownCommand(t *testing.T) {
	r := New("> ", "", false)
	var out strings.Builder
	quit := r.handleCommand(":bogus", &out)
	assert.False(t, quit)
	assert.Contains(t, out.String(), "unknown command")
}
