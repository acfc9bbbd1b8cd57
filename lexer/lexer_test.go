package lexer

import (
	"strings"
	"testing"

	"github.com/alecthomas/repr"

	"github.com/pontaoski/tawac/errors"
	"github.com/pontaoski/tawac/types"
)

type testToken struct {
	kind types.TokenKind
	text string
}

func lexToEOF(t *testing.T, src string) []types.Token {
	t.Helper()
	toks, err := NewLexer(strings.NewReader(src), "test.tawa").LexAll()
	if err != nil {
		t.Fatalf("lexing %q: %v", src, err)
	}
	return toks
}

func simplify(toks []types.Token) []testToken {
	var ret []testToken
	for _, tok := range toks {
		ret = append(ret, testToken{tok.Kind, tok.Text})
	}
	return ret
}

func TestLexer(t *testing.T) {
	tests := []struct {
		src  string
		want []testToken
	}{
		{"x = 1 + 2", []testToken{
			{types.NEWLINE, "\n"}, {types.NAME, "x"}, {types.ASSIGN, "="}, {types.NUMBER, "1"},
			{types.OPERATOR, "+"}, {types.NUMBER, "2"},
		}},
		{"forever for", []testToken{
			{types.NEWLINE, "\n"}, {types.NAME, "forever"}, {types.KEYWORD, "for"},
		}},
		{"a not in b is not c", []testToken{
			{types.NEWLINE, "\n"}, {types.NAME, "a"}, {types.OPERATOR, "not in"}, {types.NAME, "b"},
			{types.OPERATOR, "is not"}, {types.NAME, "c"},
		}},
		{"a not  in b is\tnot c", []testToken{
			{types.NEWLINE, "\n"}, {types.NAME, "a"}, {types.OPERATOR, "not  in"}, {types.NAME, "b"},
			{types.OPERATOR, "is\tnot"}, {types.NAME, "c"},
		}},
		{"x **:= 2", []testToken{
			{types.NEWLINE, "\n"}, {types.NAME, "x"}, {types.AUG_ASSIGN, "**:="}, {types.NUMBER, "2"},
		}},
		{"i++ j-- k := 0", []testToken{
			{types.NEWLINE, "\n"}, {types.NAME, "i"}, {types.INCREMENT, "++"}, {types.NAME, "j"},
			{types.INCREMENT, "--"}, {types.NAME, "k"}, {types.DYNAMIC_ASSIGN, ":="}, {types.NUMBER, "0"},
		}},
		{`f = \+`, []testToken{
			{types.NEWLINE, "\n"}, {types.NAME, "f"}, {types.ASSIGN, "="}, {types.ESCAPED_OPERATOR, `\+`},
		}},
		{"operator operators", []testToken{
			{types.NEWLINE, "\n"}, {types.KEYWORD, "operator"}, {types.NAME, "operators"},
		}},
		{"operator []= (k, v)", []testToken{
			{types.NEWLINE, "\n"}, {types.OPERATOR_METHOD, "operator []="}, {types.OPEN_BRACE, "("},
			{types.NAME, "k"}, {types.COMMA, ","}, {types.NAME, "v"}, {types.CLOSE_BRACE, ")"},
		}},
		{"public static int x", []testToken{
			{types.NEWLINE, "\n"}, {types.DESCRIPTOR, "public"}, {types.DESCRIPTOR, "static"},
			{types.NAME, "int"}, {types.NAME, "x"},
		}},
		{"func f() -> int", []testToken{
			{types.NEWLINE, "\n"}, {types.KEYWORD, "func"}, {types.NAME, "f"}, {types.OPEN_BRACE, "("},
			{types.CLOSE_BRACE, ")"}, {types.ARROW, "->"}, {types.NAME, "int"},
		}},
		{"@dec $Ann x... true", []testToken{
			{types.NEWLINE, "\n"}, {types.AT, "@"}, {types.NAME, "dec"}, {types.DOLLAR, "$"}, {types.NAME, "Ann"},
			{types.NAME, "x"}, {types.ELLIPSIS, "..."}, {types.BOOL, "true"},
		}},
		{"0x1F 1_000.5e-3 .5 3j", []testToken{
			{types.NEWLINE, "\n"}, {types.NUMBER, "0x1F"}, {types.NUMBER, "1_000.5e-3"}, {types.NUMBER, ".5"}, {types.NUMBER, "3j"},
		}},
		{`r"a\"b" 'c'  # comment`, []testToken{
			{types.NEWLINE, "\n"}, {types.STRING, `r"a\"b"`}, {types.STRING, "'c'"},
		}},
		{"a\n\nb", []testToken{
			{types.NEWLINE, "\n"}, {types.NAME, "a"}, {types.NEWLINE, "\n"}, {types.NEWLINE, "\n"}, {types.NAME, "b"},
		}},
	}

	for _, tt := range tests {
		got := simplify(lexToEOF(t, tt.src))
		if repr.String(got) != repr.String(tt.want) {
			t.Errorf("lexing %q\ngot  %s\nwant %s", tt.src, repr.String(got), repr.String(tt.want))
		}
	}
}

func TestInvalidInput(t *testing.T) {
	tests := []struct {
		src  string
		msg  string
		line int
		col  int
	}{
		{"x += 1; y", "';' is not used", 1, 6},
		{"if !x", "use 'not'", 1, 3},
		{"a = `b`", "backticks", 1, 4},
		{"a = b \\ c", "stray backslash", 1, 6},
		{"x = 1 €", "unrecognized character", 1, 6},
		{"a && b", "use 'and'", 1, 2},
		{"a || b", "use 'or'", 1, 2},
		{"a === b", "'==' or 'is'", 1, 2},
	}

	for _, tt := range tests {
		_, err := NewLexer(strings.NewReader(tt.src), "test.tawa").LexAll()
		e, ok := errors.AsError(err)
		if !ok {
			t.Errorf("lexing %q: error = %v, want a positioned error", tt.src, err)
			continue
		}
		if !strings.Contains(e.Message(), tt.msg) {
			t.Errorf("lexing %q: message %q does not mention %q", tt.src, e.Message(), tt.msg)
		}
		if pos := e.Location(); pos.Line != tt.line || pos.Column != tt.col {
			t.Errorf("lexing %q: error at %d:%d, want %d:%d", tt.src, pos.Line, pos.Column, tt.line, tt.col)
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	_, err := NewLexer(strings.NewReader("x = 1\ny = \"abc\nz = 2\n"), "test.tawa").LexAll()
	e, ok := errors.AsError(err)
	if !ok {
		t.Fatalf("error = %v", err)
	}
	if e.Message() != "unterminated string literal" {
		t.Fatalf("message = %q", e.Message())
	}
	pos := e.Location()
	if pos.Line != 2 || pos.Column != 4 || pos.LineText != `y = "abc` {
		t.Fatalf("position = %+v, want the opening quote on line 2", pos)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	_, err := NewLexer(strings.NewReader("a /* never\nclosed"), "test.tawa").LexAll()
	e, ok := errors.AsError(err)
	if !ok || e.Message() != "unterminated block comment" {
		t.Fatalf("error = %v", err)
	}
	if e.Location().Column != 2 {
		t.Fatalf("column = %d, want 2", e.Location().Column)
	}
}

func TestMultilineBlockComment(t *testing.T) {
	src := "a\nb /* one\ntwo\nthree\n four */ c + d\n"
	toks := lexToEOF(t, src)

	got := simplify(toks)
	want := []testToken{
		{types.NEWLINE, "\n"}, {types.NAME, "a"}, {types.NEWLINE, "\n"}, {types.NAME, "b"},
		{types.NAME, "c"}, {types.OPERATOR, "+"}, {types.NAME, "d"},
	}
	if repr.String(got) != repr.String(want) {
		t.Fatalf("got  %s\nwant %s", repr.String(got), repr.String(want))
	}

	c := toks[4].Location
	if c.Line != 5 || c.LineText != " four */ c + d" || c.Column != 9 {
		t.Fatalf("c reported at %+v, want line 5 column 9", c)
	}
}

func TestMultilineString(t *testing.T) {
	toks := lexToEOF(t, "s = \"first\nsecond\" + t\n")
	if len(toks) != 6 {
		t.Fatalf("got %s", repr.String(simplify(toks)))
	}
	str := toks[3]
	if str.Kind != types.STRING || str.Text != "\"first\nsecond\"" {
		t.Fatalf("string token = %+v", str)
	}
	if str.Location.Line != 1 || str.Location.Column != 4 {
		t.Fatalf("string starts at %+v", str.Location)
	}
	plus := toks[4]
	if plus.Location.Line != 2 || plus.Location.Column != 8 {
		t.Fatalf("'+' at %+v, want 2:8", plus.Location)
	}
}

func TestContinuation(t *testing.T) {
	toks := lexToEOF(t, "x = 1 + \\\n    2\ny")
	got := simplify(toks)
	want := []testToken{
		{types.NEWLINE, "\n"}, {types.NAME, "x"}, {types.ASSIGN, "="}, {types.NUMBER, "1"}, {types.OPERATOR, "+"},
		{types.NUMBER, "2"}, {types.NEWLINE, "\n"}, {types.NAME, "y"},
	}
	if repr.String(got) != repr.String(want) {
		t.Fatalf("got  %s\nwant %s", repr.String(got), repr.String(want))
	}
	two := toks[5].Location
	if two.Line != 2 || two.Column != 4 || two.LineText != "    2" {
		t.Fatalf("2 reported at %+v, want its physical line", two)
	}
	if y := toks[7].Location; y.Line != 3 {
		t.Fatalf("y reported on line %d", y.Line)
	}
}

func TestCommentEndingInContinuation(t *testing.T) {
	toks := lexToEOF(t, "x = 1 # note \\\ny = 2\nz")
	got := simplify(toks)
	want := []testToken{
		{types.NEWLINE, "\n"}, {types.NAME, "x"}, {types.ASSIGN, "="}, {types.NUMBER, "1"},
		{types.NAME, "y"}, {types.ASSIGN, "="}, {types.NUMBER, "2"},
		{types.NEWLINE, "\n"}, {types.NAME, "z"},
	}
	if repr.String(got) != repr.String(want) {
		t.Fatalf("got  %s\nwant %s", repr.String(got), repr.String(want))
	}
	if y := toks[4].Location; y.Line != 2 || y.Column != 0 {
		t.Fatalf("y reported at %+v", y)
	}
}

func TestCommentStopsAtLineEnd(t *testing.T) {
	toks := lexToEOF(t, "/* a\nb */ # c \\\\\nd # e\\f\n")
	got := simplify(toks)
	want := []testToken{
		{types.NEWLINE, "\n"}, {types.NEWLINE, "\n"}, {types.NAME, "d"},
	}
	if repr.String(got) != repr.String(want) {
		t.Fatalf("got  %s\nwant %s", repr.String(got), repr.String(want))
	}
}

func TestContinuationAtEOF(t *testing.T) {
	_, err := NewLexer(strings.NewReader("x = \\"), "test.tawa").LexAll()
	if err == nil || !strings.Contains(err.Error(), "line continuation at end of file") {
		t.Fatalf("error = %v", err)
	}
}

func TestNormalization(t *testing.T) {
	// U+FB01 is the "fi" ligature; NFKD turns it into two letters.
	toks := lexToEOF(t, "ﬁle = café   \t")
	if toks[1].Text != "file" {
		t.Fatalf("ligature not decomposed: %q", toks[1].Text)
	}
	if toks[3].Kind != types.NAME || toks[3].Text != "cafe\u0301" {
		t.Fatalf("accented name = %+v", toks[3])
	}
	if len(toks) != 4 {
		t.Fatalf("trailing whitespace produced tokens: %s", repr.String(simplify(toks)))
	}
}

// Concatenating every lexeme, trivia included, reproduces the normalized
// source.
func TestRoundTrip(t *testing.T) {
	src := strings.Join([]string{
		"# header comment   ",
		"public func f(int x, *rest) -> int {",
		"    s = \"multi",
		"line\" + 'x'  /* inline */",
		"    total = x + \\",
		"        1",
		"    /* block",
		"       comment */ return total ** 2",
		"}",
		"",
		"y = [a for a in b if a not in c]",
	}, "\n") + "\n"

	l := NewLexer(strings.NewReader(src), "test.tawa")
	l.KeepTrivia = true
	toks, err := l.LexAll()
	if err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	for _, tok := range toks {
		b.WriteString(tok.Text)
	}

	var lines []string
	for _, line := range strings.Split(strings.TrimSuffix(src, "\n"), "\n") {
		lines = append(lines, Normalize(line))
	}
	want := strings.Join(lines, "\n")

	if got := strings.TrimPrefix(b.String(), "\n"); got != want {
		t.Fatalf("round trip mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestEOFRepeats(t *testing.T) {
	l := NewLexer(strings.NewReader("a"), "test.tawa")
	if _, err := l.LexAll(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		tok, err := l.Lex()
		if err != nil || tok.Kind != types.EOF {
			t.Fatalf("Lex() after EOF = %+v, %v", tok, err)
		}
	}
}
