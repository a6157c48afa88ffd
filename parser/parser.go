// Package parser implements a Shunting-Yard parser: it turns a lexer.Token
// stream into RPN, then builds the ast.Expression tree from the RPN in a
// second pass.
package parser

import (
	"fmt"

	"github.com/jafaripur/avicenna-logic-system/ast"
	"github.com/jafaripur/avicenna-logic-system/lexer"
	"github.com/jafaripur/avicenna-logic-system/logicerr"
)

// precedence and associativity table, tightest-binding first: ¬, ∧, {∨,⊕},
// →, ↔.
var precedence = map[lexer.TokenType]int{
	lexer.OpNot:     5,
	lexer.OpAnd:     4,
	lexer.OpOr:      3,
	lexer.OpXor:     3,
	lexer.OpImplies: 2,
	lexer.OpIff:     1,
}

var rightAssociative = map[lexer.TokenType]bool{
	lexer.OpNot:     true,
	lexer.OpImplies: true,
}

// Parse tokenizes and parses a formula string into an ast.Expression.
func Parse(input string) (ast.Expression, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens, input)
}

// ParseTokens runs Shunting-Yard over an already-tokenized stream. input is
// kept only so error messages can render a source snippet.
func ParseTokens(tokens []lexer.Token, input string) (ast.Expression, error) {
	rpn, err := toRPN(tokens, input)
	if err != nil {
		return nil, err
	}
	return fromRPN(rpn, input)
}

// toRPN runs the first Shunting-Yard pass: token stream -> RPN token list.
func toRPN(tokens []lexer.Token, input string) ([]lexer.Token, error) {
	var output []lexer.Token
	var ops []lexer.Token

	popToOutput := func() {
		output = append(output, ops[len(ops)-1])
		ops = ops[:len(ops)-1]
	}

	for _, tok := range tokens {
		switch {
		case tok.Type == lexer.EOF:
			// terminator, not emitted
		case tok.Type == lexer.IDENT:
			output = append(output, tok)
		case tok.IsOperator():
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Type == lexer.LPAREN {
					break
				}
				topPrec, curPrec := precedence[top.Type], precedence[tok.Type]
				if topPrec > curPrec || (topPrec == curPrec && !rightAssociative[tok.Type]) {
					popToOutput()
					continue
				}
				break
			}
			ops = append(ops, tok)
		case tok.Type == lexer.LPAREN:
			ops = append(ops, tok)
		case tok.Type == lexer.RPAREN:
			found := false
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Type == lexer.LPAREN {
					ops = ops[:len(ops)-1] // discard '('
					found = true
					break
				}
				popToOutput()
			}
			if !found {
				return nil, unbalanced(tok, input, "unmatched ')'")
			}
		default:
			return nil, logicerr.New(logicerr.UnknownOperator,
				fmt.Sprintf("unknown token %s", tok.Type), pos(tok), input)
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		if top.Type == lexer.LPAREN {
			return nil, unbalanced(top, input, "unmatched '('")
		}
		popToOutput()
	}

	return output, nil
}

// fromRPN builds the AST from an RPN token list: ¬ pops one operand, binary
// operators pop right then left.
func fromRPN(rpn []lexer.Token, input string) (ast.Expression, error) {
	var stack []ast.Expression

	for _, tok := range rpn {
		if tok.Type == lexer.IDENT {
			stack = append(stack, ast.NewVar(tok.Value))
			continue
		}

		if tok.Type == lexer.OpNot {
			if len(stack) < 1 {
				return nil, logicerr.New(logicerr.MissingNotOperand,
					"¬ has no operand", pos(tok), input)
			}
			inner := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			stack = append(stack, ast.NewNot(inner))
			continue
		}

		if tok.IsOperator() {
			if len(stack) < 2 {
				return nil, logicerr.New(logicerr.InsufficientOperands,
					fmt.Sprintf("%s requires two operands", tok.Value), pos(tok), input)
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, buildBinary(tok.Type, left, right))
			continue
		}

		return nil, logicerr.New(logicerr.UnknownOperator,
			fmt.Sprintf("unknown token %s in RPN stream", tok.Type), pos(tok), input)
	}

	if len(stack) != 1 {
		return nil, logicerr.New(logicerr.MalformedExpression,
			fmt.Sprintf("expression reduces to %d values, expected 1", len(stack)), logicerr.Position{}, input)
	}

	return stack[0], nil
}

func buildBinary(t lexer.TokenType, l, r ast.Expression) ast.Expression {
	switch t {
	case lexer.OpAnd:
		return ast.NewAnd(l, r)
	case lexer.OpOr:
		return ast.NewOr(l, r)
	case lexer.OpXor:
		return ast.NewXor(l, r)
	case lexer.OpImplies:
		return ast.NewImplies(l, r)
	case lexer.OpIff:
		return ast.NewIff(l, r)
	default:
		return nil
	}
}

func unbalanced(tok lexer.Token, input, msg string) error {
	return logicerr.New(logicerr.UnbalancedParens, msg, pos(tok), input)
}

func pos(tok lexer.Token) logicerr.Position {
	return logicerr.Position{Line: tok.Line, Column: tok.Column}
}
