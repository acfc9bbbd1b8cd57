package parser

import (
	"github.com/pontaoski/tawac/ast"
	"github.com/pontaoski/tawac/types"
)

// parseType parses `Name(.Name)*([T, ...])?` with an optional trailing
// `?`.
func (p *Parser) parseType() *ast.TypeName {
	tok := p.c.Expect(types.NAME, "")
	t := &ast.TypeName{
		Base:  ast.Base{Location: tok.Location},
		Parts: []string{tok.Text},
		Args:  []*ast.TypeName{},
	}
	for p.c.At(types.DOT, "") && p.c.Peek(1).Kind == types.NAME {
		p.c.Advance(false)
		t.Parts = append(t.Parts, p.c.Advance(false).Text)
	}
	if p.c.At(types.OPEN_BRACE, "[") {
		p.c.Advance(true)
		for {
			t.Args = append(t.Args, p.parseType())
			p.c.SkipNewlines()
			if p.c.At(types.COMMA, "") {
				p.c.Advance(true)
				continue
			}
			p.c.Expect(types.CLOSE_BRACE, "]")
			break
		}
	}
	if p.c.At(types.OPERATOR, "?") {
		p.c.Advance(false)
		t.Optional = true
	}
	return t
}

// parseTypes parses `T, U, ...`.
func (p *Parser) parseTypes() []*ast.TypeName {
	list := []*ast.TypeName{p.parseType()}
	for p.c.At(types.COMMA, "") {
		p.c.Advance(false)
		list = append(list, p.parseType())
	}
	return list
}

// typeEnd returns the lookahead offset just past a type starting at k, or
// -1 when no type starts there. It consumes nothing.
func (p *Parser) typeEnd(k int) int {
	if p.c.Peek(k).Kind != types.NAME {
		return -1
	}
	k++
	for p.c.Peek(k).Kind == types.DOT && p.c.Peek(k+1).Kind == types.NAME {
		k += 2
	}
	if p.c.Peek(k).Is(types.OPEN_BRACE, "[") {
		end := p.c.MatchingBrace(k)
		if end < 0 {
			return -1
		}
		k = end + 1
	}
	if p.c.Peek(k).Is(types.OPERATOR, "?") {
		k++
	}
	return k
}

// typedNameAhead reports whether a type followed by a name starts at k,
// as in a typed parameter or loop variable. It returns the offset of the
// name.
func (p *Parser) typedNameAhead(k int) (int, bool) {
	end := p.typeEnd(k)
	if end < 0 || p.c.Peek(end).Kind != types.NAME {
		return 0, false
	}
	return end, true
}

// declarationAhead reports whether a declaration `Type name [= value]`
// starts at k. Two names in a row never start an expression, so the
// lookahead is unambiguous.
func (p *Parser) declarationAhead(k int) (int, bool) {
	name, ok := p.typedNameAhead(k)
	if !ok {
		return 0, false
	}
	after := p.c.Peek(name + 1)
	switch {
	case after.Kind == types.ASSIGN, after.Kind == types.NEWLINE, after.Kind == types.EOF,
		after.Is(types.CLOSE_BRACE, "}"):
		return name, true
	}
	return 0, false
}
