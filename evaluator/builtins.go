// builtins.go defines Monkey's built-in function table. §4.3.4 of the
// language spec mandates three of these — len, append, println — as
// the minimum every conforming implementation must provide; first,
// last, rest, push, and puts are supplemental array/debugging helpers
// carried over from the book's own evaluator package.
package evaluator

import (
	"fmt"
	"strings"

	"github.com/gomonkeylang/monkey/object"
)

// BuiltinNames returns every built-in function's name, used by the
// REPL's tab completer.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	return names
}

// builtins maps a built-in's name to its implementation. evalIdentifier
// consults this table once env.Get has failed to resolve the name.
var builtins = map[string]*object.Builtin{
	// len returns a String's byte length or an Array's element count.
	"len": {Fn: func(args ...object.Object) object.Object {
		if len(args) != 1 {
			return newError("wrong number of arguments. got=%d, want=1", len(args))
		}

		switch arg := args[0].(type) {
		case *object.Array:
			return &object.Integer{Value: int64(len(arg.Elements))}
		case *object.String:
			return &object.Integer{Value: int64(len(arg.Value))}
		default:
			return newError("argument to `len` not supported, got %s", args[0].Type())
		}
	}},

	// append returns a new Array with value appended to arr's elements.
	// The receiver must be an Array; append never mutates it, matching
	// push's and rest's copy-on-write discipline.
	"append": {Fn: func(args ...object.Object) object.Object {
		if len(args) != 2 {
			return newError("wrong number of arguments. got=%d, want=2", len(args))
		}
		if args[0].Type() != object.ARRAY_OBJ {
			return newError("argument to `append` must be ARRAY, got %s", args[0].Type())
		}

		arr := args[0].(*object.Array)
		length := len(arr.Elements)

		newElements := make([]object.Object, length+1)
		copy(newElements, arr.Elements)
		newElements[length] = args[1]

		return &object.Array{Elements: newElements}
	}},

	// println writes every argument's Inspect() form to stdout,
	// space-separated on a single line, followed by one trailing
	// newline, then returns NULL.
	"println": {Fn: func(args ...object.Object) object.Object {
		parts := make([]string, len(args))
		for i, arg := range args {
			parts[i] = arg.Inspect()
		}

		fmt.Println(strings.Join(parts, " "))
		return NULL
	}},

	// puts prints each argument's Inspect() form on its own line. Kept
	// alongside println as a supplemental, one-value-per-line variant
	// useful from the REPL.
	"puts": {Fn: func(args ...object.Object) object.Object {
		for _, arg := range args {
			fmt.Println(arg.Inspect())
		}
		return NULL
	}},

	// first returns an Array's first element, or NULL if it is empty.
	"first": {Fn: func(args ...object.Object) object.Object {
		if len(args) != 1 {
			return newError("wrong number of arguments. got=%d, want=1", len(args))
		}
		if args[0].Type() != object.ARRAY_OBJ {
			return newError("argument to `first` must be ARRAY, got %s", args[0].Type())
		}

		arr := args[0].(*object.Array)
		if len(arr.Elements) > 0 {
			return arr.Elements[0]
		}
		return NULL
	}},

	// last returns an Array's last element, or NULL if it is empty.
	"last": {Fn: func(args ...object.Object) object.Object {
		if len(args) != 1 {
			return newError("wrong number of arguments. got=%d, want=1", len(args))
		}
		if args[0].Type() != object.ARRAY_OBJ {
			return newError("argument to `last` must be ARRAY, got %s", args[0].Type())
		}

		arr := args[0].(*object.Array)
		length := len(arr.Elements)
		if length > 0 {
			return arr.Elements[length-1]
		}
		return NULL
	}},

	// rest returns a new Array holding every element but the first, or
	// NULL if arr is empty. The original Array is left untouched.
	"rest": {Fn: func(args ...object.Object) object.Object {
		if len(args) != 1 {
			return newError("wrong number of arguments. got=%d, want=1", len(args))
		}
		if args[0].Type() != object.ARRAY_OBJ {
			return newError("argument to `rest` must be ARRAY, got %s", args[0].Type())
		}

		arr := args[0].(*object.Array)
		length := len(arr.Elements)
		if length > 0 {
			newElements := make([]object.Object, length-1)
			copy(newElements, arr.Elements[1:length])
			return &object.Array{Elements: newElements}
		}
		return NULL
	}},

	// push is append's original name from the book; kept as an alias
	// since existing Monkey scripts in the examples call it by this
	// name.
	"push": {Fn: func(args ...object.Object) object.Object {
		if len(args) != 2 {
			return newError("wrong number of arguments. got=%d, want=2", len(args))
		}
		if args[0].Type() != object.ARRAY_OBJ {
			return newError("argument to `push` must be ARRAY, got %s", args[0].Type())
		}

		arr := args[0].(*object.Array)
		length := len(arr.Elements)

		newElements := make([]object.Object, length+1)
		copy(newElements, arr.Elements)
		newElements[length] = args[1]

		return &object.Array{Elements: newElements}
	}},
}
