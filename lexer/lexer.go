// Package lexer turns source text into lexemes and offers the lookahead
// cursor the parser reads them through.
package lexer

import (
	"bufio"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/coreos/pkg/capnslog"
	"golang.org/x/text/unicode/norm"

	"github.com/pontaoski/tawac/errors"
	"github.com/pontaoski/tawac/types"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/tawac", "lexer")

// segment maps a stretch of the logical line back to the physical line it
// was read from.
type segment struct {
	start int
	line  int
	text  string
}

// Lexer scans one source file. It reads a physical line at a time; lines
// ending in a backslash, and lines inside an unterminated string or block
// comment, are joined into one logical line whose segments remember where
// each piece came from.
type Lexer struct {
	filename string
	reader   *bufio.Reader
	lineNo   int
	logical  string
	offset   int
	segments []segment
	atEOF    bool

	// KeepTrivia makes Lex return WHITESPACE lexemes (blanks, comments,
	// continuations) instead of dropping them.
	KeepTrivia bool
}

func NewLexer(reader io.Reader, filename string) *Lexer {
	return &Lexer{
		filename: filename,
		reader:   bufio.NewReader(reader),
	}
}

// Filename is the path lexemes are attributed to.
func (l *Lexer) Filename() string {
	return l.filename
}

// Lex returns the next lexeme. After the input is exhausted it returns EOF
// forever.
func (l *Lexer) Lex() (types.Token, error) {
	for {
		tok, err := l.scan()
		if err != nil {
			return types.Token{}, err
		}
		if tok.Kind == types.WHITESPACE && !l.KeepTrivia {
			continue
		}
		plog.Tracef("%s %s %q", tok.Location, tok.Kind, tok.Text)
		return tok, nil
	}
}

// LexAll lexes until EOF, which is not included.
func (l *Lexer) LexAll() ([]types.Token, error) {
	var ret []types.Token
	for {
		tok, err := l.Lex()
		if err != nil {
			return ret, err
		}
		if tok.Kind == types.EOF {
			return ret, nil
		}
		ret = append(ret, tok)
	}
}

func (l *Lexer) scan() (types.Token, error) {
	if l.offset >= len(l.logical) {
		ok, err := l.startLine()
		if err != nil {
			return types.Token{}, err
		}
		if !ok {
			return types.Token{Kind: types.EOF, Location: l.eofPosition()}, nil
		}
		return types.Token{Kind: types.NEWLINE, Text: "\n", Location: l.position(0)}, nil
	}

	rest := l.logical[l.offset:]
	if what, open := unterminatedOpener(rest); open {
		if err := l.extend(what); err != nil {
			return types.Token{}, err
		}
		rest = l.logical[l.offset:]
	}

	if msg, bad := invalidMessage(rest, true); bad {
		return types.Token{}, errors.New(l.position(l.offset), "%s", msg)
	}

	kind, n, ok := classify(rest)
	if !ok {
		pos := l.position(l.offset)
		if msg, known := invalidMessage(rest, false); known {
			return types.Token{}, errors.New(pos, "%s", msg)
		}
		r, _ := utf8.DecodeRuneInString(rest)
		return types.Token{}, errors.New(pos, "unrecognized character %q", r)
	}

	tok := types.Token{Kind: kind, Text: rest[:n], Location: l.position(l.offset)}
	l.offset += n
	return tok, nil
}

// startLine replaces the logical line with the next one from the input.
func (l *Lexer) startLine() (bool, error) {
	line, ok, err := l.readPhysical()
	if err != nil || !ok {
		return false, err
	}
	l.logical = ""
	l.offset = 0
	l.segments = l.segments[:0]
	l.appendLine(line)
	return true, l.splice()
}

// extend joins physical lines onto the logical line until the string or
// block comment at the current offset is closed.
func (l *Lexer) extend(what string) error {
	opener := l.position(l.offset)
	for {
		line, ok, err := l.readPhysical()
		if err != nil {
			return err
		}
		if !ok {
			return errors.New(opener, "unterminated %s", what)
		}
		l.logical += "\n"
		l.appendLine(line)
		if err := l.splice(); err != nil {
			return err
		}
		if _, open := unterminatedOpener(l.logical[l.offset:]); !open {
			return nil
		}
	}
}

// splice joins lines ending in an unescaped backslash. The backslash and
// newline stay in the logical line and lex as whitespace.
func (l *Lexer) splice() error {
	for continued(l.logical) {
		pos := l.position(len(l.logical) - 1)
		line, ok, err := l.readPhysical()
		if err != nil {
			return err
		}
		if !ok {
			return errors.New(pos, "line continuation at end of file")
		}
		l.logical += "\n"
		l.appendLine(line)
	}
	return nil
}

func continued(s string) bool {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

func (l *Lexer) appendLine(line string) {
	l.segments = append(l.segments, segment{start: len(l.logical), line: l.lineNo, text: line})
	l.logical += line
}

// readPhysical reads and normalizes the next physical line.
func (l *Lexer) readPhysical() (string, bool, error) {
	if l.atEOF {
		return "", false, nil
	}
	line, err := l.reader.ReadString('\n')
	if err == io.EOF {
		l.atEOF = true
		if line == "" {
			return "", false, nil
		}
	} else if err != nil {
		return "", false, err
	}
	l.lineNo++
	return Normalize(line), true, nil
}

// Normalize applies the per-line source normalization: NFKD, then trailing
// whitespace (including the line terminator) removed.
func Normalize(line string) string {
	return strings.TrimRightFunc(norm.NFKD.String(line), unicode.IsSpace)
}

// position maps an offset into the logical line to its physical place.
func (l *Lexer) position(offset int) types.Position {
	if len(l.segments) == 0 {
		return l.eofPosition()
	}
	seg := l.segments[0]
	for _, s := range l.segments[1:] {
		if s.start > offset {
			break
		}
		seg = s
	}
	col := offset - seg.start
	if col > len(seg.text) {
		col = len(seg.text)
	}
	if col < 0 {
		col = 0
	}
	return types.Position{
		Filename: l.filename,
		Line:     seg.line,
		LineText: seg.text,
		Column:   utf8.RuneCountInString(seg.text[:col]),
	}
}

func (l *Lexer) eofPosition() types.Position {
	if len(l.segments) == 0 {
		line := l.lineNo
		if line == 0 {
			line = 1
		}
		return types.Position{Filename: l.filename, Line: line}
	}
	last := l.segments[len(l.segments)-1]
	return types.Position{
		Filename: l.filename,
		Line:     last.line,
		LineText: last.text,
		Column:   utf8.RuneCountInString(last.text),
	}
}
