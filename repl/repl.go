// Package repl implements Monkey's interactive read-eval-print loop.
// Unlike the one-shot file driver, the REPL keeps one root environment
// alive across lines, so a let or macro definition on one line is
// visible on the next, and layers line editing, history, styled
// output, and tab completion on top of the same lex/parse/expand/eval
// pipeline cmd/monkey uses for files.
package repl

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"
	"github.com/sahilm/fuzzy"

	"github.com/gomonkeylang/monkey/evaluator"
	"github.com/gomonkeylang/monkey/internal/config"
	"github.com/gomonkeylang/monkey/lexer"
	"github.com/gomonkeylang/monkey/object"
	"github.com/gomonkeylang/monkey/parser"
)

// styles holds the lipgloss renderers used for REPL output. When
// cfg.Color is false every field is the zero-value Style, whose
// Render is a harmless passthrough, so callers never branch on color
// being on or off.
type styles struct {
	prompt lipgloss.Style
	result lipgloss.Style
	error  lipgloss.Style
	hint   lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		return styles{}
	}

	return styles{
		prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		result: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		error:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		hint:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Start runs the REPL against in/out until EOF or interrupt. cfg
// supplies the prompt text, the color toggle, and the history file
// path; a persistent environment and macro table live for the
// duration of the session.
func Start(in io.Reader, out io.Writer, cfg config.Config) {
	st := newStyles(cfg.Color)

	env := object.NewEnvironment()
	macroEnv := object.NewEnvironment()

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.HistoryFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(cfg.HistoryFile); err == nil {
			_, _ = line.WriteHistory(f)
			f.Close()
		}
	}()

	line.SetCompleter(func(partial string) []string {
		return completions(partial, env)
	})

	for {
		input, err := line.Prompt(st.prompt.Render(cfg.Prompt))
		if err != nil {
			fmt.Fprintln(out)
			return
		}
		line.AppendHistory(input)

		l := lexer.New(input)
		p := parser.New(l)

		program := p.ParseProgram()
		if len(p.Errors()) != 0 {
			printParserErrors(out, st, p.Errors())
			continue
		}

		evaluator.DefineMacros(program, macroEnv)
		expanded := evaluator.ExpandMacros(program, macroEnv)

		evaluated := evaluator.Eval(expanded, env)
		if evaluated == nil {
			continue
		}

		if evaluated.Type() == object.ERROR_OBJ {
			io.WriteString(out, st.error.Render(evaluated.Inspect()))
		} else {
			io.WriteString(out, st.result.Render(evaluated.Inspect()))
		}
		io.WriteString(out, "\n")
	}
}

// completions ranks the names bound in env plus every built-in name
// against partial using fuzzy matching, returning candidates best
// match first.
func completions(partial string, env *object.Environment) []string {
	candidates := append(boundNames(env), builtinNames()...)
	sort.Strings(candidates)

	matches := fuzzy.Find(partial, candidates)

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}
	return out
}

func builtinNames() []string {
	return evaluator.BuiltinNames()
}

// boundNames reports every name let-bound directly in the session's
// root environment.
func boundNames(env *object.Environment) []string {
	return env.Names()
}

const monkeyFace = `            __,__
   .--.  .-"     "-.  .--.
  / .. \/  .-. .-.  \/ .. \
 | |  '|  /   Y   \  |'  | |
 | \   \  \ 0 | 0 /  /   / |
  \ '- ,\.-"""""""-./, -' /
   ''-' /_   ^ ^   _\ '-''
       |  \._   _./  |
       \   \ '~' /   /
        '._ '-=-' _.'
           '-----'
`

func printParserErrors(out io.Writer, st styles, errors []string) {
	io.WriteString(out, monkeyFace)
	io.WriteString(out, "Woops! We ran into some monkey business here!\n")
	io.WriteString(out, " parser errors:\n")
	for _, msg := range errors {
		io.WriteString(out, st.error.Render("\t"+msg)+"\n")
	}
}
