package parser

import (
	"strings"

	"github.com/pontaoski/tawac/ast"
	"github.com/pontaoski/tawac/errors"
	"github.com/pontaoski/tawac/tables"
	"github.com/pontaoski/tawac/types"
)

func (p *Parser) parseDeclaration(mods *modifiers) ast.Statement {
	typ := p.parseType()
	name, _ := p.expectName()
	decl := &ast.Declaration{
		Base:      ast.Base{Location: typ.Pos()},
		Modifiers: mods.Modifiers,
		Type:      typ,
		Name:      name,
	}
	if p.c.At(types.ASSIGN, "") {
		p.c.Advance(false)
		decl.Value = p.parseExpression(false)
	}
	return decl
}

func (p *Parser) parseVar(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	name, _ := p.expectName()
	decl := &ast.Declaration{
		Base:      ast.Base{Location: tok.Location},
		Modifiers: mods.Modifiers,
		Name:      name,
	}
	if p.c.At(types.ASSIGN, "") {
		p.c.Advance(false)
		decl.Value = p.parseExpression(false)
	}
	return decl
}

// parseParameters parses parameters until end reports true, without
// consuming the closer. Names may not repeat.
func (p *Parser) parseParameters(end func() bool) []*ast.Parameter {
	params := []*ast.Parameter{}
	seen := map[string]bool{}
	for {
		p.c.SkipNewlines()
		if end() {
			return params
		}

		tok := p.c.Current()
		param := &ast.Parameter{Base: ast.Base{Location: tok.Location}}
		switch {
		case tok.Is(types.OPERATOR, "*"):
			p.c.Advance(false)
			param.Unpack = ast.UnpackSequence
		case tok.Is(types.OPERATOR, "**"):
			p.c.Advance(false)
			param.Unpack = ast.UnpackMapping
		}
		if _, typed := p.typedNameAhead(0); typed {
			param.Type = p.parseType()
		}
		name, pos := p.expectName()
		if seen[name] {
			panic(errors.DuplicateField{Name: name, Pos: pos})
		}
		seen[name] = true
		param.Name = name
		if p.c.At(types.ASSIGN, "") {
			if param.Unpack != ast.NoUnpack {
				p.fail(p.c.Current().Location, "%s parameters cannot have a default", param.Unpack)
			}
			p.c.Advance(true)
			param.Default = p.parseExpression(true)
		}
		params = append(params, param)

		p.c.SkipNewlines()
		if !p.c.At(types.COMMA, "") {
			if !end() {
				tok := p.c.Current()
				p.fail(tok.Location, "expected ',' or the end of the parameter list, got %s", tok)
			}
			return params
		}
		p.c.Advance(false)
	}
}

func (p *Parser) parseParameterList() []*ast.Parameter {
	p.c.Expect(types.OPEN_BRACE, "(")
	params := p.parseParameters(func() bool { return p.c.At(types.CLOSE_BRACE, ")") })
	p.c.Expect(types.CLOSE_BRACE, ")")
	return params
}

func (p *Parser) parseReturns() []*ast.TypeName {
	if !p.c.At(types.ARROW, "") {
		return []*ast.TypeName{}
	}
	p.c.Advance(false)
	return p.parseTypes()
}

// parseSignature parses `name[T](params) -> T, U`.
func (p *Parser) parseSignature() ast.Signature {
	name, _ := p.expectName()
	return ast.Signature{
		Name:     name,
		Generics: p.parseGenerics(),
		Params:   p.parseParameterList(),
		Returns:  p.parseReturns(),
	}
}

// abstractBody parses the body of a method or operator. Interface members
// may leave it out; the result is then nil.
func (p *Parser) abstractBody(s scope) *ast.Body {
	if s == interfaceBody && !p.c.At(types.OPEN_BRACE, "{") {
		return nil
	}
	return p.parseBody(block)
}

// parseFunction parses `func`: a function, or a method inside a class or
// interface body.
func (p *Parser) parseFunction(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	base := ast.Base{Location: tok.Location}
	sig := p.parseSignature()
	if s.inClass() {
		return &ast.MethodDef{Base: base, Modifiers: mods.Modifiers, Signature: sig, Body: p.abstractBody(s)}
	}
	return &ast.FunctionDef{Base: base, Modifiers: mods.Modifiers, Signature: sig, Body: p.parseBody(block)}
}

func (p *Parser) parseOperatorDef(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	spelling := strings.TrimSpace(strings.TrimPrefix(tok.Text, "operator"))
	op, ok := tables.Method(spelling)
	if !ok {
		p.internal(tok.Location, "method operator %q lexed but unknown", spelling)
	}
	return &ast.OperatorDef{
		Base:      ast.Base{Location: tok.Location},
		Modifiers: mods.Modifiers,
		Op:        op,
		Params:    p.parseParameterList(),
		Returns:   p.parseReturns(),
		Body:      p.abstractBody(s),
	}
}

// parseProperty parses `property Type name { get { } [set(value) { }] }`.
func (p *Parser) parseProperty(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	if s != classBody {
		p.fail(tok.Location, "properties are only allowed in class bodies")
	}
	prop := &ast.PropertyDef{
		Base:      ast.Base{Location: tok.Location},
		Modifiers: mods.Modifiers,
		Type:      p.parseType(),
	}
	prop.Name, _ = p.expectName()

	p.c.Expect(types.OPEN_BRACE, "{")
	p.c.SkipNewlines()
	p.c.Expect(types.NAME, "get")
	prop.Getter = p.parseBody(block)
	p.c.SkipNewlines()
	if p.c.At(types.NAME, "set") {
		p.c.Advance(false)
		p.c.Expect(types.OPEN_BRACE, "(")
		prop.SetterParam, _ = p.expectName()
		p.c.Expect(types.CLOSE_BRACE, ")")
		prop.Setter = p.parseBody(block)
		p.c.SkipNewlines()
	}
	p.c.Expect(types.CLOSE_BRACE, "}")
	return prop
}

// parseSupers parses an optional `(Super, ...)` list.
func (p *Parser) parseSupers() []*ast.TypeName {
	if !p.c.At(types.OPEN_BRACE, "(") {
		return []*ast.TypeName{}
	}
	p.c.Advance(true)
	supers := []*ast.TypeName{}
	for !p.c.At(types.CLOSE_BRACE, ")") {
		supers = append(supers, p.parseType())
		p.c.SkipNewlines()
		if !p.c.At(types.COMMA, "") {
			break
		}
		p.c.Advance(true)
	}
	p.c.Expect(types.CLOSE_BRACE, ")")
	return supers
}

func (p *Parser) parseClass(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	class := &ast.ClassDef{Base: ast.Base{Location: tok.Location}, Modifiers: mods.Modifiers}
	class.Name, _ = p.expectName()
	class.Generics = p.parseGenerics()
	class.Supers = p.parseSupers()
	class.Body = p.parseBody(classBody)
	return class
}

func (p *Parser) parseInterface(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	iface := &ast.InterfaceDef{Base: ast.Base{Location: tok.Location}, Modifiers: mods.Modifiers}
	iface.Name, _ = p.expectName()
	iface.Generics = p.parseGenerics()
	iface.Supers = p.parseSupers()
	iface.Body = p.parseBody(interfaceBody)
	return iface
}

// parseEnum parses `enum Name { A, B = value }`; members are separated by
// commas or newlines.
func (p *Parser) parseEnum(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	enum := &ast.EnumDef{Base: ast.Base{Location: tok.Location}, Modifiers: mods.Modifiers, Members: []*ast.EnumMember{}}
	enum.Name, _ = p.expectName()
	p.c.Expect(types.OPEN_BRACE, "{")

	seen := map[string]bool{}
	for {
		p.c.SkipNewlines()
		if p.c.At(types.CLOSE_BRACE, "}") {
			p.c.Advance(false)
			return enum
		}
		name, pos := p.expectName()
		if seen[name] {
			panic(errors.DuplicateField{Name: name, Pos: pos})
		}
		seen[name] = true
		member := &ast.EnumMember{Base: ast.Base{Location: pos}, Name: name}
		if p.c.At(types.ASSIGN, "") {
			p.c.Advance(false)
			member.Value = p.parseExpression(false)
		}
		enum.Members = append(enum.Members, member)

		if p.c.At(types.COMMA, "") {
			p.c.Advance(false)
			continue
		}
		if !p.c.PeekIs(types.NEWLINE) && !p.c.At(types.CLOSE_BRACE, "}") {
			tok := p.c.Current()
			p.fail(tok.Location, "expected ',' or a new line after enum member, got %s", tok)
		}
	}
}

func (p *Parser) parseContext(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	ctx := &ast.ContextDef{Base: ast.Base{Location: tok.Location}, Modifiers: mods.Modifiers}
	ctx.Name, _ = p.expectName()
	ctx.Params = p.parseParameterList()
	ctx.Body = p.parseBody(block)
	return ctx
}

func (p *Parser) parseTypedef(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	def := &ast.Typedef{Base: ast.Base{Location: tok.Location}}
	def.Name, _ = p.expectName()
	p.c.Expect(types.ASSIGN, "")
	def.Type = p.parseType()
	return def
}

func (p *Parser) parseImport(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	imp := &ast.Import{Base: ast.Base{Location: tok.Location}, Path: p.parseDottedName()}
	if p.c.At(types.KEYWORD, "as") {
		p.c.Advance(false)
		imp.Alias, _ = p.expectName()
	}
	return imp
}

// parseFromImport parses `from a.b import x [as y], z` and
// `from a.b import *`.
func (p *Parser) parseFromImport(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	imp := &ast.FromImport{Base: ast.Base{Location: tok.Location}, Path: p.parseDottedName(), Names: []*ast.ImportName{}}
	p.c.Expect(types.KEYWORD, "import")
	if p.c.At(types.OPERATOR, "*") {
		p.c.Advance(false)
		imp.Star = true
		return imp
	}
	for {
		name, pos := p.expectName()
		in := &ast.ImportName{Base: ast.Base{Location: pos}, Name: name}
		if p.c.At(types.KEYWORD, "as") {
			p.c.Advance(false)
			in.Alias, _ = p.expectName()
		}
		imp.Names = append(imp.Names, in)
		if !p.c.At(types.COMMA, "") {
			return imp
		}
		p.c.Advance(false)
	}
}

func (p *Parser) parseExport(s scope, mods *modifiers) ast.Statement {
	tok := p.c.Advance(false)
	return &ast.Export{Base: ast.Base{Location: tok.Location}, Names: p.parseNames()}
}
