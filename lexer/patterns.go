package lexer

import (
	"regexp"

	"github.com/pontaoski/tawac/descriptor"
	"github.com/pontaoski/tawac/tables"
	"github.com/pontaoski/tawac/types"
)

// recognizer returns the length of the lexeme at the start of s, or 0.
type recognizer func(s string) int

type kindPattern struct {
	Kind  types.TokenKind
	Match recognizer
}

// invalidPattern gives a better diagnostic for input no kind accepts.
// Preempting patterns are checked before the kinds, for sequences that
// would otherwise lex as a run of valid lexemes.
type invalidPattern struct {
	Regex   *regexp.Regexp
	Message string
	Preempt bool
}

var compiledPatterns struct {
	blockComment *regexp.Regexp
	str          *regexp.Regexp
	strOpener    *regexp.Regexp
	operatorWord *regexp.Regexp
	kinds        []kindPattern
	invalid      []invalidPattern
}

func regex(pattern string) recognizer {
	re := regexp.MustCompile(`^(?:` + pattern + `)`)
	return func(s string) int {
		loc := re.FindStringIndex(s)
		if loc == nil {
			return 0
		}
		return loc[1]
	}
}

func table(m *tables.Matcher) recognizer {
	return m.Len
}

func init() {
	compiledPatterns.blockComment = regexp.MustCompile(`^(?s:/\*.*?\*/)`)
	compiledPatterns.str = regexp.MustCompile(`^(?i:[rbfc]{0,2})(?s:"(?:[^"\\]|\\.)*"|'(?:[^'\\]|\\.)*')`)
	compiledPatterns.strOpener = regexp.MustCompile(`^(?i:[rbfc]{0,2})["']`)
	compiledPatterns.operatorWord = regexp.MustCompile(`^operator[ \t]+`)

	methods := tables.NewMatcher(tables.MethodSpellings())

	compiledPatterns.kinds = []kindPattern{
		// A line comment ends at a splice; the splice itself is whitespace.
		{types.WHITESPACE, regex(`(?:[ \t\f\v]+|\\\n|#(?:[^\n\\]|\\[^\n])*|(?s:/\*.*?\*/))+`)},
		{types.STRING, func(s string) int {
			loc := compiledPatterns.str.FindStringIndex(s)
			if loc == nil {
				return 0
			}
			return loc[1]
		}},
		{types.NUMBER, regex(`0[xX][0-9a-fA-F_]+|0[oO][0-7_]+|0[bB][01_]+|(?:[0-9][0-9_]*(?:\.[0-9][0-9_]*)?|\.[0-9][0-9_]*)(?:[eE][+-]?[0-9]+)?j?`)},
		{types.ELLIPSIS, regex(`\.\.\.`)},
		{types.ARROW, regex(`->`)},
		{types.INCREMENT, regex(`\+\+|--`)},
		{types.DYNAMIC_ASSIGN, regex(`:=`)},
		{types.AUG_ASSIGN, table(tables.NewMatcher(tables.CompoundSpellings()))},
		{types.ESCAPED_OPERATOR, table(tables.NewMatcher(tables.EscapedSpellings()))},
		{types.OPERATOR_METHOD, func(s string) int {
			loc := compiledPatterns.operatorWord.FindStringIndex(s)
			if loc == nil {
				return 0
			}
			n := methods.Len(s[loc[1]:])
			if n == 0 {
				return 0
			}
			return loc[1] + n
		}},
		{types.OPERATOR, table(tables.NewMatcher(tables.OperatorSpellings()))},
		{types.ASSIGN, regex(`=`)},
		{types.OPEN_BRACE, regex(`[(\[{]`)},
		{types.CLOSE_BRACE, regex(`[)\]}]`)},
		{types.COMMA, regex(`,`)},
		{types.COLON, regex(`:`)},
		{types.DOT, regex(`\.`)},
		{types.AT, regex(`@`)},
		{types.DOLLAR, regex(`\$`)},
		{types.BOOL, table(tables.NewMatcher(tables.Bools))},
		{types.KEYWORD, table(tables.NewMatcher(tables.Keywords))},
		{types.DESCRIPTOR, table(tables.NewMatcher(descriptor.Names()))},
		{types.NAME, regex(`[\p{L}_][\p{L}\p{M}\p{N}_]*`)},
	}

	compiledPatterns.invalid = []invalidPattern{
		{regexp.MustCompile(`^!`), "'!' is not an operator; use 'not'", false},
		{regexp.MustCompile(`^;`), "statements end at the end of a line; ';' is not used", false},
		{regexp.MustCompile("^`"), "backticks are not valid; strings use quotes", false},
		{regexp.MustCompile(`^\\`), "stray backslash", false},
		{regexp.MustCompile(`^&&`), "'&&' is not an operator; use 'and'", true},
		{regexp.MustCompile(`^\|\|`), "'||' is not an operator; use 'or'", true},
		{regexp.MustCompile(`^===`), "'===' is not an operator; use '==' or 'is'", true},
	}
}

// classify applies the kinds in order and returns the first match.
func classify(s string) (types.TokenKind, int, bool) {
	for _, p := range compiledPatterns.kinds {
		if n := p.Match(s); n > 0 {
			return p.Kind, n, true
		}
	}
	return 0, 0, false
}

// invalidMessage returns the diagnostic of the longest matching known
// invalid sequence. With preemptOnly, only preempting patterns count.
func invalidMessage(s string, preemptOnly bool) (string, bool) {
	best, msg := 0, ""
	for _, p := range compiledPatterns.invalid {
		if preemptOnly && !p.Preempt {
			continue
		}
		if loc := p.Regex.FindStringIndex(s); loc != nil && loc[1] > best {
			best, msg = loc[1], p.Message
		}
	}
	return msg, best > 0
}

// unterminatedOpener reports whether s starts a block comment or string
// literal that does not end within s.
func unterminatedOpener(s string) (string, bool) {
	if len(s) >= 2 && s[:2] == "/*" && !compiledPatterns.blockComment.MatchString(s) {
		return "block comment", true
	}
	if compiledPatterns.strOpener.MatchString(s) && !compiledPatterns.str.MatchString(s) {
		return "string literal", true
	}
	return "", false
}
