package parser

import (
	"github.com/pontaoski/tawac/ast"
	"github.com/pontaoski/tawac/descriptor"
	"github.com/pontaoski/tawac/errors"
	"github.com/pontaoski/tawac/tables"
	"github.com/pontaoski/tawac/types"
)

// scope is the kind of body a statement is parsed in.
type scope int

const (
	topLevel scope = iota
	block
	classBody
	interfaceBody
)

func (s scope) inClass() bool {
	return s == classBody || s == interfaceBody
}

// modifiers are collected before the statement they precede, so that the
// statement node can be built with them in one go.
type modifiers struct {
	ast.Modifiers
	decoratorPos  types.Position
	annotationPos types.Position
	descriptorPos types.Position
}

type statementRule func(p *Parser, s scope, mods *modifiers) ast.Statement

// keywordRule is what a statement-starting keyword dispatches to: either a
// parse routine or a diagnostic for a keyword that never starts one.
type keywordRule struct {
	parse   statementRule
	illegal string
}

var keywordRules map[string]keywordRule

const reservedOperator = "'operator' is reserved for operator definitions"

func init() {
	keywordRules = map[string]keywordRule{
		"import":      {parse: (*Parser).parseImport},
		"from":        {parse: (*Parser).parseFromImport},
		"export":      {parse: (*Parser).parseExport},
		"typedef":     {parse: (*Parser).parseTypedef},
		"func":        {parse: (*Parser).parseFunction},
		"class":       {parse: (*Parser).parseClass},
		"interface":   {parse: (*Parser).parseInterface},
		"enum":        {parse: (*Parser).parseEnum},
		"context":     {parse: (*Parser).parseContext},
		"property":    {parse: (*Parser).parseProperty},
		"var":         {parse: (*Parser).parseVar},
		"if":          {parse: (*Parser).parseIf},
		"while":       {parse: (*Parser).parseWhile},
		"do":          {parse: (*Parser).parseDoWhile},
		"for":         {parse: (*Parser).parseFor},
		"switch":      {parse: (*Parser).parseSwitch},
		"fallthrough": {parse: (*Parser).parseFallthrough},
		"try":         {parse: (*Parser).parseTry},
		"with":        {parse: (*Parser).parseWith},
		"return":      {parse: (*Parser).parseReturn},
		"yield":       {parse: (*Parser).parseYield},
		"break":       {parse: (*Parser).parseBreak},
		"continue":    {parse: (*Parser).parseContinue},
		"pass":        {parse: (*Parser).parsePass},
		"raise":       {parse: (*Parser).parseRaiseStatement},
		"assert":      {parse: (*Parser).parseAssert},
		"del":         {parse: (*Parser).parseDelete},
		"global":      {parse: (*Parser).parseGlobal},
		"nonlocal":    {parse: (*Parser).parseNonlocal},

		"lambda": {parse: (*Parser).parseSimpleStatement},
		"some":   {parse: (*Parser).parseSimpleStatement},
		"null":   {parse: (*Parser).parseSimpleStatement},

		"elif":     {illegal: "'elif' without a matching 'if'"},
		"else":     {illegal: "'else' without a matching 'if', 'while', 'for' or 'try'"},
		"case":     {illegal: "'case' outside a switch"},
		"default":  {illegal: "'default' outside a switch"},
		"except":   {illegal: "'except' without a matching 'try'"},
		"finally":  {illegal: "'finally' without a matching 'try'"},
		"as":       {illegal: "'as' is only used in import, except and with"},
		"where":    {illegal: "'where' is only used in some expressions"},
		"operator": {illegal: reservedOperator},
	}
}

// parseStatement parses one statement with its modifiers and checks that
// it may appear in s. The cursor is left on the token ending it.
func (p *Parser) parseStatement(s scope) ast.Statement {
	mods := p.parseModifiers()
	tok := p.c.Current()
	plog.Tracef("statement at %s starts with %s %s", tok.Location, tok.Kind, tok)

	var stmt ast.Statement
	switch tok.Kind {
	case types.KEYWORD:
		rule, ok := keywordRules[tok.Text]
		if !ok {
			p.internal(tok.Location, "no dispatch rule for keyword %q", tok.Text)
		}
		if rule.illegal != "" {
			p.fail(tok.Location, "%s", rule.illegal)
		}
		stmt = rule.parse(p, s, mods)
	case types.OPERATOR_METHOD:
		if !s.inClass() {
			p.fail(tok.Location, "operator definitions are only allowed in class and interface bodies")
		}
		stmt = p.parseOperatorDef(s, mods)
	case types.NAME, types.NUMBER, types.STRING, types.BOOL, types.OPEN_BRACE,
		types.ESCAPED_OPERATOR, types.OPERATOR:
		stmt = p.parseSimpleStatement(s, mods)
	case types.EOF:
		p.fail(tok.Location, "expected a statement, got %s", tok)
	default:
		p.fail(tok.Location, "unexpected %s at the start of a statement", tok)
	}

	p.checkModifiers(stmt, mods)
	p.checkScope(stmt, s)
	return stmt
}

// parseModifiers collects decorator lines, annotation lines and the
// descriptor run on the statement's own line.
func (p *Parser) parseModifiers() *modifiers {
	mods := &modifiers{Modifiers: ast.NoModifiers()}

	const (
		none = iota
		decorating
		annotating
	)
	last := none
	for {
		tok := p.c.Current()
		switch tok.Kind {
		case types.AT:
			if last != decorating && len(mods.Decorators) > 0 {
				p.fail(tok.Location, "double decoration")
			}
			if len(mods.Decorators) == 0 {
				mods.decoratorPos = tok.Location
			}
			last = decorating
			p.c.Advance(false)
			expr := p.parseExpression(false)
			mods.Decorators = append(mods.Decorators, &ast.Decorator{Base: ast.Base{Location: tok.Location}, Expr: expr})
		case types.DOLLAR:
			if last != annotating && len(mods.Annotations) > 0 {
				p.fail(tok.Location, "double annotation")
			}
			if len(mods.Annotations) == 0 {
				mods.annotationPos = tok.Location
			}
			last = annotating
			p.c.Advance(false)
			name, _ := p.expectName()
			ann := &ast.Annotation{Base: ast.Base{Location: tok.Location}, Name: name, Args: []*ast.Argument{}}
			if p.c.At(types.OPEN_BRACE, "(") {
				ann.Args = p.parseArguments()
			}
			mods.Annotations = append(mods.Annotations, ann)
		default:
			p.parseDescriptors(mods)
			return mods
		}
		if !p.c.At(types.NEWLINE, "") {
			tok := p.c.Current()
			p.fail(tok.Location, "expected end of line after modifier, got %s", tok)
		}
		p.c.SkipNewlines()
	}
}

func (p *Parser) parseDescriptors(mods *modifiers) {
	var run descriptor.Run
	for p.c.Kind() == types.DESCRIPTOR {
		tok := p.c.Advance(false)
		d, ok := descriptor.Lookup(tok.Text)
		if !ok {
			p.internal(tok.Location, "descriptor %q lexed but unknown", tok.Text)
		}
		if run.Empty() {
			mods.descriptorPos = tok.Location
		}
		if err := run.Add(d); err != nil {
			panic(errors.Wrap(err, tok.Location, "illegal descriptor combination"))
		}
	}
	mods.Descriptors = run.Descriptors()
}

func (p *Parser) checkModifiers(stmt ast.Statement, mods *modifiers) {
	if len(mods.Descriptors) > 0 {
		names := func(ds []descriptor.Descriptor) []string {
			out := make([]string, len(ds))
			for i, d := range ds {
				out[i] = d.String()
			}
			return out
		}
		d, ok := stmt.(ast.Describable)
		if !ok {
			panic(errors.IllegalDescriptors{Descriptors: names(mods.Descriptors), Statement: describe(stmt), Pos: mods.descriptorPos})
		}
		if bad := descriptor.Disallowed(d.AllowedDescriptors(), mods.Descriptors); len(bad) > 0 {
			panic(errors.IllegalDescriptors{Descriptors: names(bad), Statement: d.Describe(), Pos: mods.descriptorPos})
		}
	}
	if len(mods.Decorators) > 0 {
		if _, ok := stmt.(ast.Decoratable); !ok {
			p.fail(mods.decoratorPos, "%s cannot be decorated", describe(stmt))
		}
	}
	if len(mods.Annotations) > 0 {
		if _, ok := stmt.(ast.Annotatable); !ok {
			p.fail(mods.annotationPos, "%s cannot be annotated", describe(stmt))
		}
	}
}

func (p *Parser) checkScope(stmt ast.Statement, s scope) {
	switch s {
	case topLevel:
		if _, ok := stmt.(ast.TopLevel); !ok {
			p.fail(stmt.Pos(), "%s is not allowed at the top level", describe(stmt))
		}
	case classBody, interfaceBody:
		if _, ok := stmt.(ast.ClassStatement); !ok {
			p.fail(stmt.Pos(), "%s is not allowed in a class body", describe(stmt))
		}
	}
}

// describe names a statement kind in diagnostics.
func describe(stmt ast.Statement) string {
	if d, ok := stmt.(ast.Describable); ok {
		return d.Describe()
	}
	switch stmt.(type) {
	case *ast.ExpressionStatement:
		return "expression statement"
	case *ast.Assignment, *ast.AugmentedAssignment:
		return "assignment"
	case *ast.Increment:
		return "increment"
	case *ast.Return:
		return "'return'"
	case *ast.Yield:
		return "'yield'"
	case *ast.Break:
		return "'break'"
	case *ast.Continue:
		return "'continue'"
	case *ast.Fallthrough:
		return "'fallthrough'"
	case *ast.Typedef:
		return "typedef"
	case *ast.Import, *ast.FromImport:
		return "import"
	case *ast.If, *ast.While, *ast.DoWhile, *ast.For, *ast.Switch, *ast.Try, *ast.With:
		return "control statement"
	}
	return "statement"
}

// parseSimpleStatement parses the statements that start like an
// expression: declarations, assignments, increments and expression
// statements.
func (p *Parser) parseSimpleStatement(s scope, mods *modifiers) ast.Statement {
	if end, ok := p.declarationAhead(0); ok {
		plog.Tracef("declaration of %s", p.c.Peek(end))
		return p.parseDeclaration(mods)
	}

	tok := p.c.Current()
	assigns := p.c.LineContains(func(t types.Token) bool {
		switch t.Kind {
		case types.ASSIGN, types.DYNAMIC_ASSIGN, types.AUG_ASSIGN, types.INCREMENT:
			return true
		}
		return false
	})

	exprs := p.parseExpressionList(false)
	if !assigns {
		return p.expressionStatement(tok, exprs)
	}

	next := p.c.Current()
	switch next.Kind {
	case types.ASSIGN, types.DYNAMIC_ASSIGN:
		p.c.Advance(false)
		p.checkAssignable(exprs)
		values := p.parseExpressionList(false)
		return &ast.Assignment{
			Base:    ast.Base{Location: next.Location},
			Targets: exprs,
			Values:  values,
			IsColon: next.Kind == types.DYNAMIC_ASSIGN,
		}
	case types.AUG_ASSIGN:
		target := p.singleTarget(exprs, next)
		p.c.Advance(false)
		compound, ok := tables.CompoundAssignment(next.Text)
		if !ok {
			p.internal(next.Location, "augmented assignment %q lexed but unknown", next.Text)
		}
		return &ast.AugmentedAssignment{
			Base:   ast.Base{Location: next.Location},
			Target: target,
			Op:     compound,
			Value:  p.parseExpression(false),
		}
	case types.INCREMENT:
		target := p.singleTarget(exprs, next)
		p.c.Advance(false)
		return &ast.Increment{
			Base:      ast.Base{Location: next.Location},
			Target:    target,
			Decrement: next.Text == "--",
		}
	}
	return p.expressionStatement(tok, exprs)
}

func (p *Parser) expressionStatement(start types.Token, exprs []ast.Expression) ast.Statement {
	expr := exprs[0]
	if len(exprs) > 1 {
		expr = &ast.Tuple{Base: ast.Base{Location: start.Location}, Items: exprs}
	}
	return &ast.ExpressionStatement{Base: ast.Base{Location: expr.Pos()}, Expr: expr}
}

func (p *Parser) checkAssignable(targets []ast.Expression) {
	for _, t := range targets {
		if _, ok := t.(ast.Assignable); !ok {
			p.fail(t.Pos(), "cannot assign to %s", t)
		}
	}
}

func (p *Parser) singleTarget(exprs []ast.Expression, op types.Token) ast.Expression {
	if len(exprs) != 1 {
		p.fail(op.Location, "%s takes exactly one target", op)
	}
	p.checkAssignable(exprs)
	return exprs[0]
}
