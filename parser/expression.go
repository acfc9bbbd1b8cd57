package parser

import (
	"github.com/pontaoski/tawac/ast"
	"github.com/pontaoski/tawac/errors"
	"github.com/pontaoski/tawac/tables"
	"github.com/pontaoski/tawac/types"
)

// parseExpression parses a full expression: an operation, optionally
// followed by `if cond else other`. The else branch is itself a full
// expression, so chained conditionals nest to the right.
func (p *Parser) parseExpression(ignoreNewlines bool) ast.Expression {
	then := p.parseOperation(ignoreNewlines)
	if ignoreNewlines {
		p.c.SkipNewlines()
	}
	if !p.c.At(types.KEYWORD, "if") {
		return then
	}
	tok := p.c.Advance(ignoreNewlines)
	cond := p.parseOperation(ignoreNewlines)
	if ignoreNewlines {
		p.c.SkipNewlines()
	}
	p.c.Expect(types.KEYWORD, "else")
	if ignoreNewlines {
		p.c.SkipNewlines()
	}
	return &ast.Ternary{
		Base: ast.Base{Location: tok.Location},
		Cond: cond,
		Then: then,
		Else: p.parseExpression(ignoreNewlines),
	}
}

// parseExpressionList parses `a, b, c`.
func (p *Parser) parseExpressionList(ignoreNewlines bool) []ast.Expression {
	exprs := []ast.Expression{p.parseExpression(ignoreNewlines)}
	for p.c.At(types.COMMA, "") {
		p.c.Advance(ignoreNewlines)
		exprs = append(exprs, p.parseExpression(ignoreNewlines))
	}
	return exprs
}

// queued is one entry of the output queue: an operand, or an operator
// with the token it was spelled by.
type queued struct {
	expr ast.Expression
	op   *tables.Operator
	tok  types.Token
}

type stacked struct {
	op  *tables.Operator
	tok types.Token
}

// parseOperation runs the shunting-yard algorithm over the operand and
// operator lexemes at the cursor and builds the resulting tree.
//
// The expectOperand flag decides how an operator lexeme is read: where an
// operand is expected only the prefix forms (- + ~ not) are legal, and
// where an operator is expected only the infix and postfix ones are.
func (p *Parser) parseOperation(ignoreNewlines bool) ast.Expression {
	var (
		stack         []stacked
		queue         []queued
		expectOperand = true
		last          types.Token
	)

	for {
		if ignoreNewlines {
			p.c.SkipNewlines()
		}
		tok := p.c.Current()

		if expectOperand {
			if tok.Kind == types.OPERATOR {
				op, ok := tables.Prefix(tok.Text)
				if !ok {
					p.fail(tok.Location, "unexpected operator %s; expected an operand", tok)
				}
				p.c.Advance(false)
				stack = append(stack, stacked{op, tok})
				last = tok
				continue
			}
			atom := p.parseAtom(ignoreNewlines)
			if atom == nil {
				if len(stack) == 0 && len(queue) == 0 {
					p.fail(tok.Location, "expected an expression, got %s", tok)
				}
				p.fail(tok.Location, "expected an operand after %s, got %s", last, tok)
			}
			queue = append(queue, queued{expr: atom})
			expectOperand = false
			continue
		}

		if tok.Kind != types.OPERATOR {
			break
		}
		if op, ok := tables.Postfix(tok.Text); ok {
			p.c.Advance(false)
			queue = append(queue, queued{op: op, tok: tok})
			continue
		}
		op, ok := tables.Infix(tok.Text)
		if !ok {
			p.fail(tok.Location, "%s cannot follow an operand", tok)
		}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.op.Precedence < op.Precedence || (top.op.Precedence == op.Precedence && op.RightAssoc) {
				break
			}
			stack = stack[:len(stack)-1]
			queue = append(queue, queued{op: top.op, tok: top.tok})
		}
		p.c.Advance(false)
		stack = append(stack, stacked{op, tok})
		last = tok
		expectOperand = true
	}

	for i := len(stack) - 1; i >= 0; i-- {
		queue = append(queue, queued{op: stack[i].op, tok: stack[i].tok})
	}
	return p.replay(queue)
}

// replay turns the postfix-ordered queue into a tree.
func (p *Parser) replay(queue []queued) ast.Expression {
	var values []ast.Expression
	pop := func() ast.Expression {
		v := values[len(values)-1]
		values = values[:len(values)-1]
		return v
	}

	for _, item := range queue {
		if item.op == nil {
			values = append(values, item.expr)
			continue
		}
		if len(values) < item.op.Arity {
			panic(errors.New(item.tok.Location, "illegal node combination"))
		}
		base := ast.Base{Location: item.tok.Location}
		switch item.op.Fixity {
		case tables.InfixOp:
			right := pop()
			left := pop()
			values = append(values, &ast.BinaryOperation{Base: base, Op: item.op, Left: left, Right: right})
		case tables.PrefixOp:
			values = append(values, &ast.UnaryOperation{Base: base, Op: item.op, Operand: pop()})
		case tables.PostfixOp:
			values = append(values, &ast.PostfixOperation{Base: base, Op: item.op, Operand: pop()})
		default:
			p.internal(item.tok.Location, "operator %s has fixity %s", item.op, item.op.Fixity)
		}
	}

	if len(values) != 1 {
		pos := p.c.Current().Location
		if len(values) > 1 {
			pos = values[1].Pos()
		}
		panic(errors.New(pos, "illegal node combination"))
	}
	return values[0]
}
