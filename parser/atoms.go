package parser

import (
	"github.com/pontaoski/tawac/ast"
	"github.com/pontaoski/tawac/errors"
	"github.com/pontaoski/tawac/tables"
	"github.com/pontaoski/tawac/types"
)

// parseAtom parses an operand with its postfix chain, or returns nil when
// the cursor is not at one.
func (p *Parser) parseAtom(ignoreNewlines bool) ast.Expression {
	tok := p.c.Current()
	base := ast.Base{Location: tok.Location}

	var atom ast.Expression
	switch tok.Kind {
	case types.NAME:
		p.c.Advance(false)
		atom = &ast.Name{Base: base, Value: tok.Text}
	case types.NUMBER:
		p.c.Advance(false)
		atom = &ast.Number{Base: base, Value: tok.Text}
	case types.STRING:
		p.c.Advance(false)
		atom = &ast.String{Base: base, Value: tok.Text}
	case types.BOOL:
		p.c.Advance(false)
		atom = &ast.Bool{Base: base, Value: tok.Text == "true"}
	case types.ESCAPED_OPERATOR:
		p.c.Advance(false)
		op, ok := tables.Escaped(tok.Text[1:])
		if !ok {
			p.internal(tok.Location, "escaped operator %s lexed but unknown", tok)
		}
		atom = &ast.EscapedOperator{Base: base, Op: op}
	case types.OPEN_BRACE:
		switch tok.Text {
		case "(":
			atom = p.parseParenthesized()
		case "[":
			atom = p.parseBracketed()
		case "{":
			atom = p.parseBraced()
		}
	case types.KEYWORD:
		switch tok.Text {
		case "null":
			p.c.Advance(false)
			atom = &ast.Null{Base: base}
		case "lambda":
			atom = p.parseLambda(ignoreNewlines)
		case "some":
			atom = p.parseSome(ignoreNewlines)
		case "switch":
			atom = p.parseSwitchExpression()
		case "raise":
			atom = p.parseRaise(ignoreNewlines)
		case "operator":
			p.fail(tok.Location, reservedOperator)
		}
	case types.OPERATOR_METHOD:
		p.fail(tok.Location, reservedOperator)
	}
	if atom == nil {
		return nil
	}
	return p.parsePostfixChain(atom, tok.Is(types.OPEN_BRACE, "("))
}

// parsePostfixChain applies calls, indexing and member access for as long
// as they follow directly and the expression is name-like. A parenthesized
// group takes a chain whatever it holds.
func (p *Parser) parsePostfixChain(expr ast.Expression, grouped bool) ast.Expression {
	for {
		if _, ok := expr.(ast.NameLike); !ok && !grouped {
			return expr
		}
		tok := p.c.Current()
		base := ast.Base{Location: tok.Location}
		switch {
		case tok.Is(types.OPEN_BRACE, "("):
			expr = &ast.Call{Base: base, Callee: expr, Args: p.parseArguments()}
		case tok.Is(types.OPEN_BRACE, "["):
			expr = p.parseSubscript(expr)
		case tok.Kind == types.DOT:
			p.c.Advance(false)
			name, _ := p.expectName()
			expr = &ast.Member{Base: base, Target: expr, Name: name}
		default:
			return expr
		}
	}
}

// parseArguments parses a parenthesized call argument list.
func (p *Parser) parseArguments() []*ast.Argument {
	p.c.Expect(types.OPEN_BRACE, "(")
	args := []*ast.Argument{}
	keywords := map[string]bool{}
	for {
		p.c.SkipNewlines()
		if p.c.At(types.CLOSE_BRACE, ")") {
			p.c.Advance(false)
			return args
		}

		tok := p.c.Current()
		arg := &ast.Argument{Base: ast.Base{Location: tok.Location}}
		switch {
		case tok.Is(types.OPERATOR, "*"):
			p.c.Advance(false)
			arg.Unpack = ast.UnpackSequence
		case tok.Is(types.OPERATOR, "**"):
			p.c.Advance(false)
			arg.Unpack = ast.UnpackMapping
		case tok.Kind == types.NAME && p.c.Peek(1).Kind == types.ASSIGN:
			if keywords[tok.Text] {
				panic(errors.DuplicateField{Name: tok.Text, Pos: tok.Location})
			}
			keywords[tok.Text] = true
			arg.Name = tok.Text
			p.c.Advance(false)
			p.c.Advance(true)
		}
		arg.Value = p.parseExpression(true)

		if arg.Name == "" && arg.Unpack == ast.NoUnpack && len(args) == 0 && p.c.At(types.KEYWORD, "for") {
			arg.Value = p.parseComprehension(ast.GeneratorComprehension, tok.Location, nil, arg.Value, ")")
			return []*ast.Argument{arg}
		}
		args = append(args, arg)

		p.c.SkipNewlines()
		if p.c.At(types.COMMA, "") {
			p.c.Advance(false)
			continue
		}
		p.c.Expect(types.CLOSE_BRACE, ")")
		return args
	}
}

// parseSubscript parses `[index]` or `[start:stop:step]` after target.
func (p *Parser) parseSubscript(target ast.Expression) ast.Expression {
	open := p.c.Advance(true)
	base := ast.Base{Location: open.Location}

	var start ast.Expression
	if !p.c.At(types.COLON, "") {
		items := p.parseExpressionList(true)
		start = items[0]
		if len(items) > 1 {
			start = &ast.Tuple{Base: ast.Base{Location: items[0].Pos()}, Items: items}
		}
		p.c.SkipNewlines()
		if p.c.At(types.CLOSE_BRACE, "]") {
			p.c.Advance(false)
			return &ast.Index{Base: base, Target: target, Index: start}
		}
	}

	slice := &ast.Slice{Base: base, Target: target, Start: start}
	p.c.Expect(types.COLON, "")
	p.c.SkipNewlines()
	if !p.c.PeekIs(types.COLON, types.CLOSE_BRACE) {
		slice.Stop = p.parseExpression(true)
	}
	if p.c.At(types.COLON, "") {
		p.c.Advance(true)
		if !p.c.At(types.CLOSE_BRACE, "]") {
			slice.Step = p.parseExpression(true)
		}
	}
	p.c.Expect(types.CLOSE_BRACE, "]")
	return slice
}

// parseParenthesized parses a group, a tuple or a generator.
func (p *Parser) parseParenthesized() ast.Expression {
	open := p.c.Advance(true)
	base := ast.Base{Location: open.Location}
	if p.c.At(types.CLOSE_BRACE, ")") {
		p.c.Advance(false)
		return &ast.Tuple{Base: base, Items: []ast.Expression{}}
	}

	first := p.parseExpression(true)
	if p.c.At(types.KEYWORD, "for") {
		return p.parseComprehension(ast.GeneratorComprehension, open.Location, nil, first, ")")
	}
	if p.c.At(types.CLOSE_BRACE, ")") {
		p.c.Advance(false)
		return first
	}

	items := []ast.Expression{first}
	for p.c.At(types.COMMA, "") {
		p.c.Advance(true)
		if p.c.At(types.CLOSE_BRACE, ")") {
			break
		}
		items = append(items, p.parseExpression(true))
	}
	p.c.Expect(types.CLOSE_BRACE, ")")
	return &ast.Tuple{Base: base, Items: items}
}

// parseBracketed parses a list or a list comprehension.
func (p *Parser) parseBracketed() ast.Expression {
	open := p.c.Advance(true)
	base := ast.Base{Location: open.Location}
	if p.c.At(types.CLOSE_BRACE, "]") {
		p.c.Advance(false)
		return &ast.List{Base: base, Items: []ast.Expression{}}
	}

	first := p.parseExpression(true)
	if p.c.At(types.KEYWORD, "for") {
		return p.parseComprehension(ast.ListComprehension, open.Location, nil, first, "]")
	}
	return &ast.List{Base: base, Items: p.finishItems(first, "]")}
}

// finishItems parses the rest of a comma separated item list up to and
// including closer. A trailing comma is allowed.
func (p *Parser) finishItems(first ast.Expression, closer string) []ast.Expression {
	items := []ast.Expression{first}
	for p.c.At(types.COMMA, "") {
		p.c.Advance(true)
		if p.c.At(types.CLOSE_BRACE, closer) {
			break
		}
		items = append(items, p.parseExpression(true))
	}
	p.c.Expect(types.CLOSE_BRACE, closer)
	return items
}

// parseBraced parses a dict, a set, or one of their comprehensions. The
// brace holds a dict when a colon sits directly inside it; colons that
// belong to a lambda written directly inside do not count.
func (p *Parser) parseBraced() ast.Expression {
	lambdas := 0
	isDict := p.c.BraceContains(func(tok types.Token) bool {
		switch {
		case tok.Is(types.KEYWORD, "lambda"):
			lambdas++
		case tok.Kind == types.COLON:
			if lambdas == 0 {
				return true
			}
			lambdas--
		}
		return false
	})

	open := p.c.Advance(true)
	base := ast.Base{Location: open.Location}
	if p.c.At(types.CLOSE_BRACE, "}") {
		p.c.Advance(false)
		return &ast.Dict{Base: base, Keys: []ast.Expression{}, Values: []ast.Expression{}}
	}

	if !isDict {
		first := p.parseExpression(true)
		if p.c.At(types.KEYWORD, "for") {
			return p.parseComprehension(ast.SetComprehension, open.Location, nil, first, "}")
		}
		return &ast.Set{Base: base, Items: p.finishItems(first, "}")}
	}

	dict := &ast.Dict{Base: base, Keys: []ast.Expression{}, Values: []ast.Expression{}}
	for {
		key := p.parseExpression(true)
		p.c.Expect(types.COLON, "")
		p.c.SkipNewlines()
		value := p.parseExpression(true)
		if len(dict.Keys) == 0 && p.c.At(types.KEYWORD, "for") {
			return p.parseComprehension(ast.DictComprehension, open.Location, key, value, "}")
		}
		dict.Keys = append(dict.Keys, key)
		dict.Values = append(dict.Values, value)

		if !p.c.At(types.COMMA, "") {
			break
		}
		p.c.Advance(true)
		if p.c.At(types.CLOSE_BRACE, "}") {
			break
		}
	}
	p.c.Expect(types.CLOSE_BRACE, "}")
	return dict
}

// parseComprehension parses the `for ... in ... [if ...]` clauses after
// the element and the closing brace.
func (p *Parser) parseComprehension(kind ast.ComprehensionKind, pos types.Position, key, element ast.Expression, closer string) ast.Expression {
	comp := &ast.Comprehension{
		Base:    ast.Base{Location: pos},
		Kind:    kind,
		Key:     key,
		Element: element,
		Clauses: []*ast.ComprehensionClause{},
	}
	for p.c.At(types.KEYWORD, "for") {
		tok := p.c.Advance(true)
		clause := &ast.ComprehensionClause{Base: ast.Base{Location: tok.Location}}
		clause.Targets = p.parseTargets()
		p.c.Expect(types.OPERATOR, "in")
		p.c.SkipNewlines()
		clause.Iterable = p.parseOperation(true)
		p.c.SkipNewlines()
		if p.c.At(types.KEYWORD, "if") {
			p.c.Advance(true)
			clause.Condition = p.parseOperation(true)
			p.c.SkipNewlines()
		}
		comp.Clauses = append(comp.Clauses, clause)
	}
	p.c.Expect(types.CLOSE_BRACE, closer)
	return comp
}

// parseTargets parses the assignable targets of a for loop, comprehension
// or some expression, up to the `in`.
func (p *Parser) parseTargets() []ast.Expression {
	var targets []ast.Expression
	for {
		tok := p.c.Current()
		target := p.parseAtom(false)
		if target == nil {
			p.fail(tok.Location, "expected a name, got %s", tok)
		}
		targets = append(targets, target)
		if !p.c.At(types.COMMA, "") {
			break
		}
		p.c.Advance(false)
	}
	p.checkAssignable(targets)
	return targets
}

// parseLambda parses `lambda params: body`.
func (p *Parser) parseLambda(ignoreNewlines bool) ast.Expression {
	tok := p.c.Advance(false)
	params := p.parseParameters(func() bool { return p.c.At(types.COLON, "") })
	p.c.Expect(types.COLON, "")
	if ignoreNewlines {
		p.c.SkipNewlines()
	}
	return &ast.Lambda{
		Base:   ast.Base{Location: tok.Location},
		Params: params,
		Body:   p.parseExpression(ignoreNewlines),
	}
}

// parseSome parses `some targets in iterable [where cond]`.
func (p *Parser) parseSome(ignoreNewlines bool) ast.Expression {
	tok := p.c.Advance(false)
	some := &ast.Some{Base: ast.Base{Location: tok.Location}}
	some.Targets = p.parseTargets()
	p.c.Expect(types.OPERATOR, "in")
	some.Iterable = p.parseOperation(ignoreNewlines)
	if ignoreNewlines {
		p.c.SkipNewlines()
	}
	if p.c.At(types.KEYWORD, "where") {
		p.c.Advance(ignoreNewlines)
		some.Condition = p.parseExpression(ignoreNewlines)
	}
	return some
}

// parseSwitchExpression parses `switch s { case a, b: x; default: y }`.
// Cases are separated by newlines or commas.
func (p *Parser) parseSwitchExpression() ast.Expression {
	tok := p.c.Advance(false)
	sw := &ast.SwitchExpression{
		Base:    ast.Base{Location: tok.Location},
		Subject: p.parseOperation(false),
		Cases:   []*ast.SwitchExpressionCase{},
	}
	p.c.Expect(types.OPEN_BRACE, "{")
	for {
		p.c.SkipNewlines()
		cur := p.c.Current()
		switch {
		case cur.Is(types.CLOSE_BRACE, "}"):
			p.c.Advance(false)
			if len(sw.Cases) == 0 && sw.Default == nil {
				p.fail(cur.Location, "switch expression without cases")
			}
			return sw
		case cur.Is(types.KEYWORD, "case"):
			p.c.Advance(false)
			c := &ast.SwitchExpressionCase{Base: ast.Base{Location: cur.Location}}
			c.Values = p.parseExpressionList(false)
			p.c.Expect(types.COLON, "")
			c.Result = p.parseExpression(true)
			sw.Cases = append(sw.Cases, c)
		case cur.Is(types.KEYWORD, "default"):
			if sw.Default != nil {
				p.fail(cur.Location, "switch has more than one default")
			}
			p.c.Advance(false)
			p.c.Expect(types.COLON, "")
			sw.Default = p.parseExpression(true)
		default:
			p.fail(cur.Location, "expected 'case', 'default' or '}', got %s", cur)
		}
		if p.c.At(types.COMMA, "") {
			p.c.Advance(false)
		}
	}
}

// parseRaise parses `raise [exception [from cause]]`, the statement and
// expression form alike.
func (p *Parser) parseRaise(ignoreNewlines bool) *ast.Raise {
	tok := p.c.Advance(false)
	raise := &ast.Raise{Base: ast.Base{Location: tok.Location}}
	if !p.canStartExpression() {
		return raise
	}
	raise.Exception = p.parseOperation(ignoreNewlines)
	if p.c.At(types.KEYWORD, "from") {
		p.c.Advance(ignoreNewlines)
		raise.Cause = p.parseOperation(ignoreNewlines)
	}
	return raise
}

// canStartExpression reports whether the current token can begin an
// operand.
func (p *Parser) canStartExpression() bool {
	tok := p.c.Current()
	switch tok.Kind {
	case types.NAME, types.NUMBER, types.STRING, types.BOOL, types.ESCAPED_OPERATOR:
		return true
	case types.OPEN_BRACE:
		return tok.Text != ")" && tok.Text != "]" && tok.Text != "}"
	case types.OPERATOR:
		_, ok := tables.Prefix(tok.Text)
		return ok
	case types.KEYWORD:
		switch tok.Text {
		case "null", "lambda", "some", "switch", "raise":
			return true
		}
	}
	return false
}
