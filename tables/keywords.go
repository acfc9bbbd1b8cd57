package tables

// Keywords is every reserved word of the language. Dispatch rules for them
// live with the parser; this is only the spelling table the lexer needs.
// "operator" followed by a method spelling lexes as one OPERATOR_METHOD
// lexeme; on its own it is still reserved.
var Keywords = []string{
	"import", "from", "export", "typedef",
	"func", "class", "interface", "enum", "context", "property", "var",
	"if", "elif", "else", "while", "do", "for",
	"switch", "case", "default", "fallthrough",
	"try", "except", "finally", "with", "as",
	"return", "yield", "break", "continue", "pass",
	"raise", "assert", "del", "global", "nonlocal",
	"lambda", "some", "where", "null",
	"operator",
}

// Bools are the boolean literal spellings.
var Bools = []string{"true", "false"}

var keywordSet = func() map[string]bool {
	m := map[string]bool{}
	for _, k := range Keywords {
		m[k] = true
	}
	return m
}()

// IsKeyword reports whether s is spelled exactly like a keyword.
func IsKeyword(s string) bool {
	return keywordSet[s]
}
