// macro_expansion.go sits between the parser and the evaluator: it
// processes macro(...) definitions and calls entirely at the AST
// level, before Eval ever sees the program. A macro's arguments are
// never evaluated — they are handed to the macro body as Quote-wrapped
// AST, and whatever the body returns (via quote(...)) replaces the
// call expression in place.
package evaluator

import (
	"fmt"

	"github.com/gomonkeylang/monkey/ast"
	"github.com/gomonkeylang/monkey/object"
)

// DefineMacros scans program's top-level statements for macro
// definitions (let <name> = macro(...) { ... }), binds each one in
// env, and strips the defining statements out of the AST so the
// ordinary evaluator never has to recognize a Macro value.
func DefineMacros(program *ast.Program, env *object.Environment) {
	var definitions []int

	for i, statement := range program.Statements {
		if isMacroDefinition(statement) {
			addMacro(statement, env)
			definitions = append(definitions, i)
		}
	}

	for i := len(definitions) - 1; i >= 0; i-- {
		idx := definitions[i]
		program.Statements = append(program.Statements[:idx], program.Statements[idx+1:]...)
	}
}

func isMacroDefinition(node ast.Statement) bool {
	letStatement, ok := node.(*ast.LetStatement)
	if !ok {
		return false
	}

	_, ok = letStatement.Value.(*ast.MacroLiteral)
	return ok
}

func addMacro(stmt ast.Statement, env *object.Environment) {
	letStatement := stmt.(*ast.LetStatement)
	macroLiteral := letStatement.Value.(*ast.MacroLiteral)

	macro := &object.Macro{
		Parameters: macroLiteral.Parameters,
		Env:        env,
		Body:       macroLiteral.Body,
	}

	env.Set(letStatement.Name.Value, macro)
}

// ExpandMacros walks program bottom-up and replaces every call to a
// name bound to a Macro with the AST node that macro's body produces.
// A macro body must end by evaluating to a Quote (typically the result
// of a quote(...) call); anything else is a malformed macro and
// aborts expansion, since there is no sensible AST node to splice in
// its place.
func ExpandMacros(program ast.Node, env *object.Environment) ast.Node {
	return ast.Modify(program, func(node ast.Node) ast.Node {
		callExpression, ok := node.(*ast.CallExpression)
		if !ok {
			return node
		}

		macro, ok := resolveMacroCall(callExpression, env)
		if !ok {
			return node
		}

		callEnv := newMacroCallEnv(macro, quoteCallArguments(callExpression))
		expanded := Eval(macro.Body, callEnv)

		result, ok := expanded.(*object.Quote)
		if !ok {
			panic(fmt.Sprintf("macro %q must return a quoted AST node, got %s", callExpression.Function.String(), expanded.Type()))
		}

		return result.Node
	})
}

// resolveMacroCall reports whether exp calls a name bound to a Macro
// in env, returning that Macro if so.
func resolveMacroCall(exp *ast.CallExpression, env *object.Environment) (*object.Macro, bool) {
	identifier, ok := exp.Function.(*ast.Identifier)
	if !ok {
		return nil, false
	}

	obj, ok := env.Get(identifier.Value)
	if !ok {
		return nil, false
	}

	macro, ok := obj.(*object.Macro)
	return macro, ok
}

// quoteCallArguments wraps each of a macro call's arguments in a Quote
// so the macro body receives unevaluated AST rather than runtime
// values.
func quoteCallArguments(exp *ast.CallExpression) []*object.Quote {
	args := make([]*object.Quote, len(exp.Arguments))
	for i, a := range exp.Arguments {
		args[i] = &object.Quote{Node: a}
	}
	return args
}

// newMacroCallEnv builds the environment a macro body evaluates in: a
// child of the macro's defining environment with each parameter bound
// to its Quote-wrapped argument.
func newMacroCallEnv(macro *object.Macro, args []*object.Quote) *object.Environment {
	extended := object.NewEnclosedEnvironment(macro.Env)

	for i, param := range macro.Parameters {
		extended.Set(param.Value, args[i])
	}

	return extended
}
