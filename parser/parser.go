// Package parser builds the AST of one source file.
//
// Parse routines raise failures by panicking with a typed error from the
// errors package; Parse recovers them once at the top. A file either
// parses completely or not at all.
package parser

import (
	"fmt"
	"io"
	"runtime"

	"github.com/coreos/pkg/capnslog"
	"github.com/ztrue/tracerr"

	"github.com/pontaoski/tawac/ast"
	"github.com/pontaoski/tawac/errors"
	"github.com/pontaoski/tawac/lexer"
	"github.com/pontaoski/tawac/types"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/tawac", "parser")

type Parser struct {
	c        *lexer.Cursor
	filename string
}

func NewParser(l *lexer.Lexer) *Parser {
	return &Parser{c: lexer.NewCursor(l), filename: l.Filename()}
}

// Parse parses the whole file read by l.
func Parse(l *lexer.Lexer) (*ast.File, error) {
	return NewParser(l).ParseFile()
}

// ParseFile reads and parses one file.
func ParseFile(filename string, r io.Reader) (*ast.File, error) {
	return Parse(lexer.NewLexer(r, filename))
}

// ParseExpression parses input holding exactly one expression.
func ParseExpression(filename string, r io.Reader) (ast.Expression, error) {
	p := NewParser(lexer.NewLexer(r, filename))
	var expr ast.Expression
	err := p.guard(func() {
		p.c.SkipNewlines()
		expr = p.parseExpression(false)
		p.c.SkipNewlines()
		p.c.Expect(types.EOF, "")
	})
	if err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) ParseFile() (*ast.File, error) {
	plog.Debugf("parsing %s", p.filename)
	var file *ast.File
	err := p.guard(func() {
		file = p.parseFile()
	})
	if err != nil {
		plog.Debugf("%s failed: %v", p.filename, errors.Message(err))
		return nil, err
	}
	plog.Debugf("parsed %s: %d statements", p.filename, len(file.Statements))
	return file, nil
}

// guard runs f and turns what it panics with into an error. User errors
// come back as they are; parser bugs are wrapped with a stack trace.
func (p *Parser) guard(f func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch e := r.(type) {
		case *errors.InternalError:
			err = tracerr.Wrap(e)
		case errors.Error:
			err = e
		case runtime.Error:
			panic(r)
		case error:
			err = e
		default:
			err = tracerr.Wrap(errors.Internal(p.c.Current().Location, "%v", fmt.Sprint(r)))
		}
	}()
	f()
	return nil
}

func (p *Parser) fail(pos types.Position, format string, args ...interface{}) {
	panic(errors.New(pos, format, args...))
}

func (p *Parser) internal(pos types.Position, format string, args ...interface{}) {
	panic(errors.Internal(pos, format, args...))
}

func (p *Parser) parseFile() *ast.File {
	file := &ast.File{
		Base:       ast.Base{Location: p.c.Current().Location},
		Filename:   p.filename,
		Statements: []ast.Statement{},
	}
	for {
		p.c.SkipNewlines()
		if p.c.Kind() == types.EOF {
			return file
		}
		file.Statements = append(file.Statements, p.parseStatement(topLevel))
		p.endStatement()
	}
}

// parseBody parses a braced block whose statements must fit s.
func (p *Parser) parseBody(s scope) *ast.Body {
	open := p.c.Expect(types.OPEN_BRACE, "{")
	body := &ast.Body{
		Base:       ast.Base{Location: open.Location},
		Statements: []ast.Statement{},
	}
	for {
		p.c.SkipNewlines()
		if p.c.At(types.CLOSE_BRACE, "}") || p.c.Kind() == types.EOF {
			p.c.Expect(types.CLOSE_BRACE, "}")
			return body
		}
		body.Statements = append(body.Statements, p.parseStatement(s))
		if !p.c.At(types.CLOSE_BRACE, "}") {
			p.endStatement()
		}
	}
}

// optionalBody parses the block following keyword when the next
// significant token is keyword, and returns the empty placeholder
// otherwise.
func (p *Parser) optionalBody(keyword string) *ast.Body {
	if !p.nextIs(types.KEYWORD, keyword) {
		return ast.EmptyBody()
	}
	p.c.SkipNewlines()
	p.c.Advance(false)
	return p.parseBody(block)
}

// nextIs reports whether the first token after any newlines matches. It is
// used for the clauses that may start on the line after a closing brace.
func (p *Parser) nextIs(kind types.TokenKind, text string) bool {
	return p.c.Peek(p.c.NextSignificant(0)).Is(kind, text)
}

func (p *Parser) atStatementEnd() bool {
	return p.c.PeekIs(types.NEWLINE, types.EOF) || p.c.At(types.CLOSE_BRACE, "}")
}

func (p *Parser) endStatement() {
	if !p.atStatementEnd() {
		tok := p.c.Current()
		p.fail(tok.Location, "expected end of statement, got %s", tok)
	}
}

func (p *Parser) expectName() (string, types.Position) {
	tok := p.c.Expect(types.NAME, "")
	return tok.Text, tok.Location
}

// parseNames parses `a, b, c`.
func (p *Parser) parseNames() []string {
	names := []string{}
	for {
		name, _ := p.expectName()
		names = append(names, name)
		if !p.c.At(types.COMMA, "") {
			return names
		}
		p.c.Advance(false)
	}
}

// parseDottedName parses `a.b.c`.
func (p *Parser) parseDottedName() []string {
	name, _ := p.expectName()
	parts := []string{name}
	for p.c.At(types.DOT, "") {
		p.c.Advance(false)
		name, _ := p.expectName()
		parts = append(parts, name)
	}
	return parts
}

// parseGenerics parses an optional `[T, U]` parameter list.
func (p *Parser) parseGenerics() []string {
	if !p.c.At(types.OPEN_BRACE, "[") {
		return []string{}
	}
	p.c.Advance(true)
	names := []string{}
	for {
		name, _ := p.expectName()
		names = append(names, name)
		p.c.SkipNewlines()
		if p.c.At(types.COMMA, "") {
			p.c.Advance(true)
			continue
		}
		p.c.Expect(types.CLOSE_BRACE, "]")
		return names
	}
}
