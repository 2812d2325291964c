// Package repl implements the interactive read-eval-print loop,
// grounded in the teacher's own internal/repl: liner for line editing
// and history, fatih/color for diagnostics.
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/minihs-lang/minihs/internal/ast"
	"github.com/minihs-lang/minihs/internal/eval"
	"github.com/minihs-lang/minihs/internal/lower"
	"github.com/minihs-lang/minihs/internal/parser"
	"github.com/minihs-lang/minihs/internal/types"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// REPL holds the state threaded across lines: the typechecker's state,
// the shared interpreter, and a fresh-name counter for lowering so
// successive lines never collide on generated argument names.
type REPL struct {
	prompt      string
	historyFile string
	showTypes   bool

	state   *types.State
	interp  *eval.Interpreter
	counter *lower.Counter
}

// New returns a REPL ready to Start, with its own typechecking state and
// evaluator, independent of any other REPL instance.
func New(prompt, historyFile string, showTypes bool) *REPL {
	return &REPL{
		prompt:      prompt,
		historyFile: historyFile,
		showTypes:   showTypes,
		state:       types.NewState(),
		interp:      eval.NewInterpreter(),
		counter:     &lower.Counter{},
	}
}

// Start runs the loop until EOF or `:quit`, writing to out. Lines are
// read through liner from the terminal; in is not read.
func (r *REPL) Start(in io.Reader, out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(true)

	if r.historyFile != "" {
		if f, err := os.Open(r.historyFile); err == nil {
			_, _ = line.ReadHistory(f)
			f.Close()
		}
	}

	fmt.Fprintln(out, bold("minihs"))
	fmt.Fprintln(out, dim("Type :help for help, :quit to exit"))

	for {
		input, err := line.Prompt(r.prompt)
		if err == io.EOF {
			fmt.Fprintln(out, green("Goodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("error"), err)
			continue
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if strings.HasPrefix(input, ":") {
			if r.handleCommand(input, out) {
				break
			}
			continue
		}

		r.evalLine(input, out)
	}

	if r.historyFile != "" {
		if f, err := os.Create(r.historyFile); err == nil {
			_, _ = line.WriteHistory(f)
			f.Close()
		}
	}
}

// handleCommand runs a `:`-prefixed directive, returning true when the
// loop should exit.
func (r *REPL) handleCommand(input string, out io.Writer) bool {
	switch {
	case input == ":quit" || input == ":q":
		fmt.Fprintln(out, green("Goodbye!"))
		return true
	case input == ":help" || input == ":h":
		fmt.Fprintln(out, "  :quit        exit the REPL")
		fmt.Fprintln(out, "  :type <expr> show an expression's inferred type without evaluating it")
		fmt.Fprintln(out, "  :help        show this message")
	case strings.HasPrefix(input, ":type "):
		r.showType(strings.TrimPrefix(input, ":type "), out)
	default:
		fmt.Fprintf(out, "%s: unknown command %q\n", red("error"), input)
	}
	return false
}

func (r *REPL) showType(src string, out io.Writer) {
	prog, err := parser.ParseSource(src)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("error"), err)
		return
	}
	if len(prog.Decls) != 1 {
		fmt.Fprintln(out, red("error: :type expects a single expression"))
		return
	}
	sexpr, ok := prog.Decls[0].(*ast.SExpr)
	if !ok {
		fmt.Fprintln(out, red("error: :type expects an expression, not a declaration"))
		return
	}
	_, t, err := r.state.InferExpr(r.state.Env, sexpr.Expr)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("error"), err)
		return
	}
	fmt.Fprintf(out, "%s :: %s\n", src, types.SubType(r.state.Subst, t).String())
}

// evalLine parses one line as a full declaration list, typechecks each
// new declaration against the session's running state, and evaluates
// each resulting SExpr, printing its rendered result with "> ".
func (r *REPL) evalLine(src string, out io.Writer) {
	raw, err := parser.ParseRaw(src)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("error"), err)
		return
	}
	prog, err := lower.LowerProgram(r.counter, raw)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", red("error"), err)
		return
	}
	for _, d := range prog.Decls {
		if err := r.state.CheckDecl(d); err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("type error"), err)
			return
		}
	}
	for _, d := range prog.Decls {
		res, err := r.interp.RunDecl(d)
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("runtime error"), err)
			return
		}
		if res != nil {
			fmt.Fprintf(out, "%s %s\n", dim(">"), res.Rendered)
		}
	}
}
