// Command monkey is the Monkey language driver: given a file argument
// it lexes, parses, expands macros, and evaluates that file once;
// given none it starts the line-edited REPL.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pkg/profile"

	"github.com/gomonkeylang/monkey/evaluator"
	"github.com/gomonkeylang/monkey/internal/config"
	"github.com/gomonkeylang/monkey/lexer"
	"github.com/gomonkeylang/monkey/object"
	"github.com/gomonkeylang/monkey/parser"
	"github.com/gomonkeylang/monkey/repl"
)

// cli is kong's flag/argument schema for the monkey binary.
var cli struct {
	File string `arg:"" optional:"" help:"Monkey source file to run; omit to start the REPL." type:"existingfile"`

	Trace      bool   `help:"Print the parser's descent through each expression as it's parsed."`
	NoColor    bool   `help:"Disable lipgloss styling in the REPL."`
	CPUProfile string `help:"Write a CPU profile of this run to cpu.pprof in directory PATH." placeholder:"PATH"`
	Config     string `help:"Path to a monkeyrc YAML config file (default ~/.monkeyrc.yaml)." type:"path"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("monkey"),
		kong.Description("A tree-walking interpreter for the Monkey language."),
		kong.UsageOnError(),
	)

	parser.TracingEnabled = cli.Trace

	var prof interface{ Stop() }
	if cli.CPUProfile != "" {
		prof = profile.Start(
			profile.CPUProfile,
			profile.ProfilePath(cli.CPUProfile),
			profile.Quiet,
		)
		defer prof.Stop()
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		log.Fatalf("monkey: %v", err)
	}
	if cli.NoColor {
		cfg.Color = false
	}

	if cli.File != "" {
		code := runFile(cli.File)
		// os.Exit skips deferred calls, so finish the profile first.
		if prof != nil {
			prof.Stop()
		}
		os.Exit(code)
		return
	}

	repl.Start(os.Stdin, os.Stdout, cfg)
}

// runFile evaluates path to completion, returning the process exit
// code: non-zero on a parse error or a top-level evaluation error,
// zero otherwise.
func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("monkey: %v", err)
	}

	l := lexer.New(string(src))
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) != 0 {
		for _, msg := range errs {
			fmt.Fprintln(os.Stderr, msg)
		}
		return 1
	}

	env := object.NewEnvironment()
	macroEnv := object.NewEnvironment()

	evaluator.DefineMacros(program, macroEnv)
	expanded := evaluator.ExpandMacros(program, macroEnv)

	result := evaluator.Eval(expanded, env)
	if result == nil || result == evaluator.NULL {
		return 0
	}

	fmt.Println(result.Inspect())
	if result.Type() == object.ERROR_OBJ {
		return 1
	}
	return 0
}
