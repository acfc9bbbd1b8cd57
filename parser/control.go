package parser

import (
	"github.com/pontaoski/tawac/ast"
	"github.com/pontaoski/tawac/types"
)

// clause advances past a keyword that may start on the line after a
// closing brace.
func (p *Parser) clause(keyword string) types.Token {
	p.c.SkipNewlines()
	return p.c.Expect(types.KEYWORD, keyword)
}

func (p *Parser) parseIf(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	stmt := &ast.If{
		Base:  ast.Base{Location: tok.Location},
		Cond:  p.parseExpression(false),
		Body:  p.parseBody(block),
		Elifs: []*ast.Elif{},
	}
	for p.nextIs(types.KEYWORD, "elif") {
		tok := p.clause("elif")
		stmt.Elifs = append(stmt.Elifs, &ast.Elif{
			Base: ast.Base{Location: tok.Location},
			Cond: p.parseExpression(false),
			Body: p.parseBody(block),
		})
	}
	stmt.Else = p.optionalBody("else")
	return stmt
}

func (p *Parser) parseWhile(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	return &ast.While{
		Base: ast.Base{Location: tok.Location},
		Cond: p.parseExpression(false),
		Body: p.parseBody(block),
		Else: p.optionalBody("else"),
	}
}

// parseDoWhile parses `do { } while cond`.
func (p *Parser) parseDoWhile(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	body := p.parseBody(block)
	p.clause("while")
	return &ast.DoWhile{
		Base: ast.Base{Location: tok.Location},
		Body: body,
		Cond: p.parseExpression(false),
	}
}

// parseFor parses `for [Type] a, b in iterable { } [else { }]`.
func (p *Parser) parseFor(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	stmt := &ast.For{Base: ast.Base{Location: tok.Location}}
	if _, typed := p.typedNameAhead(0); typed {
		stmt.Type = p.parseType()
	}
	stmt.Targets = p.parseTargets()
	p.c.Expect(types.OPERATOR, "in")
	stmt.Iterable = p.parseExpression(false)
	stmt.Body = p.parseBody(block)
	stmt.Else = p.optionalBody("else")
	return stmt
}

// parseSwitch parses the statement form of switch, whose cases carry
// blocks.
func (p *Parser) parseSwitch(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	stmt := &ast.Switch{
		Base:    ast.Base{Location: tok.Location},
		Subject: p.parseExpression(false),
		Cases:   []*ast.Case{},
	}
	p.c.Expect(types.OPEN_BRACE, "{")
	for {
		p.c.SkipNewlines()
		tok := p.c.Current()
		switch {
		case tok.Is(types.CLOSE_BRACE, "}"):
			p.c.Advance(false)
			if stmt.Default == nil {
				stmt.Default = ast.EmptyBody()
			}
			return stmt
		case tok.Is(types.KEYWORD, "case"):
			p.c.Advance(false)
			stmt.Cases = append(stmt.Cases, &ast.Case{
				Base:   ast.Base{Location: tok.Location},
				Values: p.parseExpressionList(false),
				Body:   p.parseBody(block),
			})
		case tok.Is(types.KEYWORD, "default"):
			if stmt.Default != nil {
				p.fail(tok.Location, "switch has more than one default")
			}
			p.c.Advance(false)
			stmt.Default = p.parseBody(block)
		default:
			p.fail(tok.Location, "expected 'case' or 'default', got %s", tok)
		}
	}
}

func (p *Parser) parseFallthrough(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	return &ast.Fallthrough{Base: ast.Base{Location: tok.Location}}
}

// parseTry parses `try { } except T, U as e { } ... [else { }] [finally { }]`.
// At least one handler or a finally block is required.
func (p *Parser) parseTry(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	stmt := &ast.Try{
		Base:     ast.Base{Location: tok.Location},
		Body:     p.parseBody(block),
		Handlers: []*ast.Except{},
	}
	for p.nextIs(types.KEYWORD, "except") {
		tok := p.clause("except")
		handler := &ast.Except{Base: ast.Base{Location: tok.Location}, Types: []*ast.TypeName{}}
		if p.c.Kind() == types.NAME {
			handler.Types = p.parseTypes()
		}
		if p.c.At(types.KEYWORD, "as") {
			p.c.Advance(false)
			handler.Name, _ = p.expectName()
		}
		handler.Body = p.parseBody(block)
		stmt.Handlers = append(stmt.Handlers, handler)
	}
	if len(stmt.Handlers) == 0 && p.nextIs(types.KEYWORD, "else") {
		p.fail(p.c.Peek(p.c.NextSignificant(0)).Location, "'else' after 'try' requires an 'except' clause")
	}
	stmt.Else = p.optionalBody("else")
	stmt.Finally = p.optionalBody("finally")
	if len(stmt.Handlers) == 0 && !stmt.Finally.Pos().IsValid() {
		p.fail(tok.Location, "'try' without 'except' or 'finally'")
	}
	return stmt
}

// parseWith parses `with a as x, b { }`.
func (p *Parser) parseWith(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	stmt := &ast.With{Base: ast.Base{Location: tok.Location}, Items: []*ast.WithItem{}}
	for {
		item := &ast.WithItem{Base: ast.Base{Location: p.c.Current().Location}}
		item.Context = p.parseExpression(false)
		if p.c.At(types.KEYWORD, "as") {
			p.c.Advance(false)
			item.Name, _ = p.expectName()
		}
		stmt.Items = append(stmt.Items, item)
		if !p.c.At(types.COMMA, "") {
			break
		}
		p.c.Advance(false)
	}
	stmt.Body = p.parseBody(block)
	return stmt
}

// optionalValues parses an expression list unless the statement ends
// right away.
func (p *Parser) optionalValues() []ast.Expression {
	if p.atStatementEnd() {
		return []ast.Expression{}
	}
	return p.parseExpressionList(false)
}

func (p *Parser) parseReturn(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	return &ast.Return{Base: ast.Base{Location: tok.Location}, Values: p.optionalValues()}
}

func (p *Parser) parseYield(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	stmt := &ast.Yield{Base: ast.Base{Location: tok.Location}}
	if p.c.At(types.KEYWORD, "from") {
		p.c.Advance(false)
		stmt.Values = []ast.Expression{}
		stmt.From = p.parseExpression(false)
		return stmt
	}
	stmt.Values = p.optionalValues()
	return stmt
}

func (p *Parser) parseBreak(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	return &ast.Break{Base: ast.Base{Location: tok.Location}}
}

func (p *Parser) parseContinue(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	return &ast.Continue{Base: ast.Base{Location: tok.Location}}
}

func (p *Parser) parsePass(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	return &ast.Pass{Base: ast.Base{Location: tok.Location}}
}

// parseRaiseStatement parses a raise at the start of a statement; the
// node is the same one raise expressions produce.
func (p *Parser) parseRaiseStatement(s scope, mods *modifiers) ast.Statement {
	return p.parseRaise(false)
}

func (p *Parser) parseAssert(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	stmt := &ast.Assert{Base: ast.Base{Location: tok.Location}, Cond: p.parseExpression(false)}
	if p.c.At(types.COMMA, "") {
		p.c.Advance(false)
		stmt.Message = p.parseExpression(false)
	}
	return stmt
}

func (p *Parser) parseDelete(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	targets := p.parseExpressionList(false)
	for _, t := range targets {
		if _, ok := t.(ast.Assignable); !ok {
			p.fail(t.Pos(), "cannot delete %s", t)
		}
	}
	return &ast.Delete{Base: ast.Base{Location: tok.Location}, Targets: targets}
}

func (p *Parser) parseGlobal(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	return &ast.Global{Base: ast.Base{Location: tok.Location}, Names: p.parseNames()}
}

func (p *Parser) parseNonlocal(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	return &ast.Nonlocal{Base: ast.Base{Location: tok.Location}, Names: p.parseNames()}
}
