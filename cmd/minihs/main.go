// Command minihs is the CLI entry point: run a source file, typecheck
// it without evaluating, or start the interactive REPL.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/minihs-lang/minihs/internal/config"
	"github.com/minihs-lang/minihs/internal/pipeline"
	"github.com/minihs-lang/minihs/internal/repl"
)

var (
	Version = "dev"

	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

func main() {
	var (
		versionFlag = flag.Bool("version", false, "print version information")
		helpFlag    = flag.Bool("help", false, "show help")
		configPath  = flag.String("config", "", "path to a YAML config file")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Printf("minihs %s\n", bold(Version))
		return
	}
	if *helpFlag || flag.NArg() == 0 {
		printHelp()
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: reading config: %v\n", red("error"), err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if !cfg.Color {
		color.NoColor = true
	}

	switch cmd := flag.Arg(0); cmd {
	case "run":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "usage: minihs run <file.minihs>")
			os.Exit(1)
		}
		runFile(flag.Arg(1))

	case "check":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "usage: minihs check <file.minihs>")
			os.Exit(1)
		}
		checkFile(flag.Arg(1))

	case "repl":
		r := repl.New(cfg.Prompt, cfg.HistoryFile, cfg.ShowTypes)
		r.Start(os.Stdin, os.Stdout)

	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", red("error"), cmd)
		printHelp()
		os.Exit(1)
	}
}

func runFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), err)
		os.Exit(1)
	}
	outs, err := pipeline.Run(string(src))
	for _, o := range outs {
		fmt.Println("> " + o.Rendered)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), err)
		os.Exit(1)
	}
}

func checkFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), err)
		os.Exit(1)
	}
	if _, err := pipeline.Check(string(src)); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), err)
		os.Exit(1)
	}
	fmt.Println(green("ok"))
}

func printHelp() {
	fmt.Println(bold("minihs - a small, lazily-evaluated, statically-typed language"))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  minihs run <file>    typecheck and evaluate a source file")
	fmt.Println("  minihs check <file>  typecheck a source file without evaluating it")
	fmt.Println("  minihs repl          start the interactive REPL")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}
