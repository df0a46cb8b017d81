// quote_unquote.go implements the quote/unquote special forms that
// back the macro system (macro_expansion.go). quote is intercepted
// directly in Eval's CallExpression case, before normal function-call
// evaluation ever sees it, because it must return an object.Quote
// wrapping unevaluated AST rather than a runtime value.
package evaluator

import (
	"fmt"

	"github.com/gomonkeylang/monkey/ast"
	"github.com/gomonkeylang/monkey/object"
	"github.com/gomonkeylang/monkey/token"
)

// quote evaluates any unquote(...) calls nested inside node and wraps
// the result as an object.Quote.
func quote(node ast.Node, env *object.Environment) object.Object {
	node = evalUnquoteCalls(node, env)
	return &object.Quote{Node: node}
}

// evalUnquoteCalls walks node bottom-up and replaces every
// unquote(<expr>) call with the AST representation of evaluating
// <expr> in env right now.
func evalUnquoteCalls(quoted ast.Node, env *object.Environment) ast.Node {
	return ast.Modify(quoted, func(node ast.Node) ast.Node {
		if !isUnquoteCall(node) {
			return node
		}

		call, ok := node.(*ast.CallExpression)
		if !ok || len(call.Arguments) != 1 {
			return node
		}

		unquoted := Eval(call.Arguments[0], env)
		return convertObjectToASTNode(unquoted)
	})
}

func isUnquoteCall(node ast.Node) bool {
	callExpression, ok := node.(*ast.CallExpression)
	if !ok {
		return false
	}
	return callExpression.Function.TokenLiteral() == "unquote"
}

// convertObjectToASTNode turns a runtime value produced by unquote's
// argument back into an AST node that can be spliced into the quoted
// tree. Only the handful of shapes a macro body plausibly produces
// are supported; anything else yields nil and drops silently, which
// matches the teacher's own tolerance for malformed macro bodies
// elsewhere in this package.
func convertObjectToASTNode(obj object.Object) ast.Node {
	switch obj := obj.(type) {
	case *object.Integer:
		t := token.Token{Type: token.INT, Literal: fmt.Sprintf("%d", obj.Value)}
		return &ast.IntegerLiteral{Token: t, Value: obj.Value}

	case *object.Boolean:
		var t token.Token
		if obj.Value {
			t = token.Token{Type: token.TRUE, Literal: "true"}
		} else {
			t = token.Token{Type: token.FALSE, Literal: "false"}
		}
		return &ast.Boolean{Token: t, Value: obj.Value}

	case *object.String:
		t := token.Token{Type: token.STRING, Literal: obj.Value}
		return &ast.StringLiteral{Token: t, Value: obj.Value}

	case *object.Quote:
		return obj.Node

	default:
		return nil
	}
}
