package lexer

import (
	"github.com/pontaoski/tawac/errors"
	"github.com/pontaoski/tawac/types"
)

// Cursor is a lookahead buffer over a Lexer. Lexing errors are raised by
// panicking with the error, like every other failure inside the parser;
// parser.Parse recovers them.
type Cursor struct {
	lexer *Lexer
	buf   []types.Token
}

func NewCursor(l *Lexer) *Cursor {
	return &Cursor{lexer: l}
}

func (c *Cursor) fill(n int) {
	for len(c.buf) <= n {
		if len(c.buf) > 0 && c.buf[len(c.buf)-1].Kind == types.EOF {
			c.buf = append(c.buf, c.buf[len(c.buf)-1])
			continue
		}
		tok, err := c.lexer.Lex()
		if err != nil {
			panic(err)
		}
		c.buf = append(c.buf, tok)
	}
}

// Peek returns the token k places ahead; Peek(0) is the current token.
func (c *Cursor) Peek(k int) types.Token {
	c.fill(k)
	return c.buf[k]
}

func (c *Cursor) Current() types.Token  { return c.Peek(0) }
func (c *Cursor) Kind() types.TokenKind { return c.Peek(0).Kind }
func (c *Cursor) Text() string          { return c.Peek(0).Text }

// PeekIs reports whether the current token has one of the kinds.
func (c *Cursor) PeekIs(kinds ...types.TokenKind) bool {
	cur := c.Current()
	for _, kind := range kinds {
		if cur.Kind == kind {
			return true
		}
	}
	return false
}

// At reports whether the current token has kind and, if text is not
// empty, that text.
func (c *Cursor) At(kind types.TokenKind, text string) bool {
	return c.Current().Is(kind, text)
}

// Advance consumes the current token and returns it. With skipNewlines it
// also consumes the newlines that follow.
func (c *Cursor) Advance(skipNewlines bool) types.Token {
	c.fill(0)
	tok := c.buf[0]
	if tok.Kind != types.EOF {
		c.buf = c.buf[1:]
	}
	if skipNewlines {
		c.SkipNewlines()
	}
	return tok
}

// SkipNewlines consumes newlines at the cursor.
func (c *Cursor) SkipNewlines() {
	for c.Kind() == types.NEWLINE {
		c.Advance(false)
	}
}

// Expect consumes the current token if it has kind (and text, when given),
// and panics with ExpectedKindGotKind otherwise.
func (c *Cursor) Expect(kind types.TokenKind, text string) types.Token {
	if !c.At(kind, text) {
		panic(errors.ExpectedKindGotKind{Expected: kind, ExpectedText: text, Got: c.Current()})
	}
	return c.Advance(false)
}

// ExpectOneOf consumes the current token if it has one of the kinds.
func (c *Cursor) ExpectOneOf(kinds ...types.TokenKind) types.Token {
	if !c.PeekIs(kinds...) {
		panic(errors.ExpectedOneOfKindGotKind{Expected: kinds, Got: c.Current()})
	}
	return c.Advance(false)
}

// NextSignificant returns the offset of the first token at or after k that
// is not a newline.
func (c *Cursor) NextSignificant(k int) int {
	for c.Peek(k).Kind == types.NEWLINE {
		k++
	}
	return k
}

// LineContains scans the rest of the logical statement without consuming
// anything and reports whether pred holds for a token outside any brackets.
// The scan stops at a newline outside brackets, at a closing brace that
// was not opened within the scan, or at EOF.
func (c *Cursor) LineContains(pred func(types.Token) bool) bool {
	depth := 0
	for k := 0; ; k++ {
		tok := c.Peek(k)
		switch tok.Kind {
		case types.EOF:
			return false
		case types.NEWLINE:
			if depth == 0 {
				return false
			}
			continue
		}
		if depth == 0 && pred(tok) {
			return true
		}
		switch tok.Kind {
		case types.OPEN_BRACE:
			depth++
		case types.CLOSE_BRACE:
			depth--
			if depth < 0 {
				return false
			}
		}
	}
}

// ScanBrace visits the tokens between the open brace at offset k and its
// matching close brace, with their depth relative to it (1 directly
// inside). It stops early when visit returns true and reports whether it
// did.
func (c *Cursor) ScanBrace(k int, visit func(tok types.Token, depth int) bool) bool {
	if c.Peek(k).Kind != types.OPEN_BRACE {
		return false
	}
	depth := 1
	for i := k + 1; ; i++ {
		tok := c.Peek(i)
		switch tok.Kind {
		case types.EOF:
			return false
		case types.CLOSE_BRACE:
			depth--
			if depth == 0 {
				return false
			}
			continue
		}
		if visit(tok, depth) {
			return true
		}
		if tok.Kind == types.OPEN_BRACE {
			depth++
		}
	}
}

// BraceContains reports whether a token directly inside the brace at the
// cursor satisfies pred.
func (c *Cursor) BraceContains(pred func(types.Token) bool) bool {
	return c.ScanBrace(0, func(tok types.Token, depth int) bool {
		return depth == 1 && pred(tok)
	})
}

// MatchingBrace returns the offset of the brace closing the one at offset
// k, or -1 when the input ends first.
func (c *Cursor) MatchingBrace(k int) int {
	depth := 0
	for i := k; ; i++ {
		switch c.Peek(i).Kind {
		case types.EOF:
			return -1
		case types.OPEN_BRACE:
			depth++
		case types.CLOSE_BRACE:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
}
