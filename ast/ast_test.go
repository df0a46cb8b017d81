package ast

import (
	"testing"

	"github.com/gomonkeylang/monkey/token"
)

// TestString builds `let myVar = anotherVar;` by hand, without going
// through the parser, and checks that String() reprints it exactly.
func TestString(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStatement{
				Token: token.Token{Type: token.LET, Literal: "let"},
				Name: &Identifier{
					Token: token.Token{Type: token.IDENT, Literal: "myVar"},
					Value: "myVar",
				},
				Value: &Identifier{
					Token: token.Token{Type: token.IDENT, Literal: "anotherVar"},
					Value: "anotherVar",
				},
			},
		},
	}

	if program.String() != "let myVar = anotherVar;" {
		t.Errorf("program.String() wrong. got=%q", program.String())
	}
}

func TestArrayLiteralString(t *testing.T) {
	al := &ArrayLiteral{
		Elements: []Expression{
			&IntegerLiteral{Token: token.Token{Literal: "1"}, Value: 1},
			&IntegerLiteral{Token: token.Token{Literal: "2"}, Value: 2},
		},
	}

	if al.String() != "[1, 2]" {
		t.Errorf("al.String() wrong. got=%q", al.String())
	}
}

func TestIndexExpressionString(t *testing.T) {
	ie := &IndexExpression{
		Left:  &Identifier{Value: "myArray"},
		Index: &IntegerLiteral{Token: token.Token{Literal: "1"}, Value: 1},
	}

	if ie.String() != "(myArray[1])" {
		t.Errorf("ie.String() wrong. got=%q", ie.String())
	}
}
