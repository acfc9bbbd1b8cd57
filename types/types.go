// Package types holds the data shared by every stage of the front end:
// source positions, lexeme kinds and lexemes.
package types

import (
	"fmt"
)

// Position is the place a lexeme or node came from. Line is 1-based,
// Column is the 0-based rune offset into LineText. The zero value is the
// "unavailable" sentinel used for synthesized nodes.
type Position struct {
	Filename string
	Line     int
	LineText string
	Column   int
}

// Unavailable marks nodes that have no source text of their own.
var Unavailable = Position{}

// IsValid reports whether p points into real source text.
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	if !p.IsValid() {
		return "<unavailable>"
	}
	if p.Filename == "" {
		p.Filename = "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column+1)
}

type TokenKind int

const (
	EOF TokenKind = iota
	NEWLINE
	WHITESPACE

	STRING
	NUMBER
	BOOL
	NAME

	KEYWORD
	DESCRIPTOR

	OPERATOR
	ESCAPED_OPERATOR
	OPERATOR_METHOD
	AUG_ASSIGN
	DYNAMIC_ASSIGN
	ASSIGN
	INCREMENT

	OPEN_BRACE
	CLOSE_BRACE
	COMMA
	COLON
	DOT
	ELLIPSIS
	ARROW
	AT
	DOLLAR
)

var kindNames = map[TokenKind]string{
	EOF:              "EOF",
	NEWLINE:          "NEWLINE",
	WHITESPACE:       "WHITESPACE",
	STRING:           "STRING",
	NUMBER:           "NUMBER",
	BOOL:             "BOOL",
	NAME:             "NAME",
	KEYWORD:          "KEYWORD",
	DESCRIPTOR:       "DESCRIPTOR",
	OPERATOR:         "OPERATOR",
	ESCAPED_OPERATOR: "ESCAPED_OPERATOR",
	OPERATOR_METHOD:  "OPERATOR_METHOD",
	AUG_ASSIGN:       "AUG_ASSIGN",
	DYNAMIC_ASSIGN:   "DYNAMIC_ASSIGN",
	ASSIGN:           "ASSIGN",
	INCREMENT:        "INCREMENT",
	OPEN_BRACE:       "OPEN_BRACE",
	CLOSE_BRACE:      "CLOSE_BRACE",
	COMMA:            "COMMA",
	COLON:            "COLON",
	DOT:              "DOT",
	ELLIPSIS:         "ELLIPSIS",
	ARROW:            "ARROW",
	AT:               "AT",
	DOLLAR:           "DOLLAR",
}

func (t TokenKind) String() string {
	if name, ok := kindNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(t))
}

// Describe is the human-readable form used in "expected ..." diagnostics.
func (t TokenKind) Describe() string {
	switch t {
	case EOF:
		return "end of file"
	case NEWLINE:
		return "end of line"
	case STRING:
		return "string"
	case NUMBER:
		return "number"
	case BOOL:
		return "boolean"
	case NAME:
		return "name"
	case KEYWORD:
		return "keyword"
	case DESCRIPTOR:
		return "descriptor"
	case OPERATOR:
		return "operator"
	case ESCAPED_OPERATOR:
		return "escaped operator"
	case OPERATOR_METHOD:
		return "operator method name"
	case AUG_ASSIGN:
		return "augmented assignment"
	case DYNAMIC_ASSIGN:
		return "':='"
	case ASSIGN:
		return "'='"
	case INCREMENT:
		return "'++' or '--'"
	case OPEN_BRACE:
		return "opening brace"
	case CLOSE_BRACE:
		return "closing brace"
	case COMMA:
		return "','"
	case COLON:
		return "':'"
	case DOT:
		return "'.'"
	case ELLIPSIS:
		return "'...'"
	case ARROW:
		return "'->'"
	case AT:
		return "'@'"
	case DOLLAR:
		return "'$'"
	}
	return t.String()
}

type Token struct {
	Kind     TokenKind
	Text     string
	Location Position
}

// Is reports whether the token has the given kind and, when text is
// non-empty, exactly that text.
func (t Token) Is(kind TokenKind, text string) bool {
	return t.Kind == kind && (text == "" || t.Text == text)
}

func (t Token) String() string {
	switch t.Kind {
	case EOF, NEWLINE:
		return t.Kind.Describe()
	}
	return fmt.Sprintf("%q", t.Text)
}
