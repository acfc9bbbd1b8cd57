// Package tables holds the static operator and keyword tables. Everything
// here is built once at package init and never mutated afterwards, so the
// tables are safe to share between parsers running on different files.
package tables

type Fixity int

const (
	PrefixOp Fixity = iota
	InfixOp
	PostfixOp
)

func (f Fixity) String() string {
	switch f {
	case PrefixOp:
		return "prefix"
	case InfixOp:
		return "infix"
	case PostfixOp:
		return "postfix"
	}
	return "unknown"
}

// Operator is one entry of an operator table. Higher precedence binds
// tighter.
type Operator struct {
	Text       string
	Name       string
	Precedence int
	Fixity     Fixity
	Arity      int
	RightAssoc bool
}

func (o *Operator) String() string {
	return o.Text
}

const (
	PrecOr = iota + 1
	PrecXor
	PrecAnd
	PrecNot
	PrecCompare
	PrecBitOr
	PrecBitXor
	PrecBitAnd
	PrecShift
	PrecAdd
	PrecMul
	PrecUnary
	PrecPower
	PrecPostfix
)

func infix(text, name string, prec int) *Operator {
	return &Operator{Text: text, Name: name, Precedence: prec, Fixity: InfixOp, Arity: 2}
}

func prefix(text, name string) *Operator {
	prec := PrecUnary
	if text == "not" {
		prec = PrecNot
	}
	return &Operator{Text: text, Name: name, Precedence: prec, Fixity: PrefixOp, Arity: 1}
}

var (
	infixOperators   = map[string]*Operator{}
	prefixOperators  = map[string]*Operator{}
	postfixOperators = map[string]*Operator{}
)

func init() {
	for _, op := range []*Operator{
		infix("or", "or", PrecOr),
		infix("xor", "xor", PrecXor),
		infix("and", "and", PrecAnd),
		infix("==", "eq", PrecCompare),
		infix("!=", "ne", PrecCompare),
		infix("<", "lt", PrecCompare),
		infix("<=", "le", PrecCompare),
		infix(">", "gt", PrecCompare),
		infix(">=", "ge", PrecCompare),
		infix("in", "in", PrecCompare),
		infix("not in", "not_in", PrecCompare),
		infix("is", "is", PrecCompare),
		infix("is not", "is_not", PrecCompare),
		infix("|", "bitor", PrecBitOr),
		infix("^", "bitxor", PrecBitXor),
		infix("&", "bitand", PrecBitAnd),
		infix("<<", "lshift", PrecShift),
		infix(">>", "rshift", PrecShift),
		infix("+", "add", PrecAdd),
		infix("-", "sub", PrecAdd),
		infix("*", "mul", PrecMul),
		infix("/", "div", PrecMul),
		infix("//", "floordiv", PrecMul),
		infix("%", "mod", PrecMul),
		{Text: "**", Name: "pow", Precedence: PrecPower, Fixity: InfixOp, Arity: 2, RightAssoc: true},
	} {
		infixOperators[op.Text] = op
	}

	for _, op := range []*Operator{
		prefix("-", "neg"),
		prefix("+", "pos"),
		prefix("~", "invert"),
		prefix("not", "not"),
	} {
		prefixOperators[op.Text] = op
	}

	postfixOperators["?"] = &Operator{Text: "?", Name: "unwrap", Precedence: PrecPostfix, Fixity: PostfixOp, Arity: 1}
}

// Infix returns the binary form of text, if it has one.
func Infix(text string) (*Operator, bool) {
	text = Canonical(text)
	op, ok := infixOperators[text]
	return op, ok
}

// Prefix returns the unary prefix form of text, if it has one.
func Prefix(text string) (*Operator, bool) {
	text = Canonical(text)
	op, ok := prefixOperators[text]
	return op, ok
}

// Postfix returns the postfix form of text, if it has one.
func Postfix(text string) (*Operator, bool) {
	text = Canonical(text)
	op, ok := postfixOperators[text]
	return op, ok
}

// OperatorSpellings lists every spelling the generic operator lexeme
// accepts.
func OperatorSpellings() []string {
	seen := map[string]bool{}
	var out []string
	for _, table := range []map[string]*Operator{infixOperators, prefixOperators, postfixOperators} {
		for text := range table {
			if !seen[text] {
				seen[text] = true
				out = append(out, text)
			}
		}
	}
	return out
}

// Escaped returns the operator an escaped operator spelling stands for,
// without its leading backslash. Binary forms win over unary ones, so `\-`
// is subtraction.
func Escaped(text string) (*Operator, bool) {
	text = Canonical(text)
	if op, ok := infixOperators[text]; ok {
		return op, true
	}
	if op, ok := prefixOperators[text]; ok {
		return op, true
	}
	op, ok := postfixOperators[text]
	return op, ok
}

// EscapedSpellings lists the spellings accepted after a backslash.
func EscapedSpellings() []string {
	var out []string
	for _, text := range OperatorSpellings() {
		out = append(out, `\`+text)
	}
	return out
}

// MethodOperator is a special method name used in operator overload
// definitions inside class bodies.
type MethodOperator struct {
	Text string
	Name string
}

var methodOperators = map[string]*MethodOperator{}

func init() {
	names := map[string]string{
		"u-":    "neg",
		"u+":    "pos",
		"[]":    "getitem",
		"[]=":   "setitem",
		"()":    "call",
		"iter":  "iter",
		"new":   "new",
		"del":   "del",
		"str":   "str",
		"repr":  "repr",
		"bool":  "bool",
		"hash":  "hash",
		"enter": "enter",
		"exit":  "exit",
		"r+":    "radd",
		"r-":    "rsub",
		"r*":    "rmul",
		"r/":    "rdiv",
	}
	for text, op := range infixOperators {
		names[text] = op.Name
	}
	names["~"] = "invert"
	names["not"] = "not"
	for text, name := range names {
		methodOperators[text] = &MethodOperator{Text: text, Name: name}
	}
}

// Method looks up a method operator by its spelling, e.g. "[]=".
func Method(text string) (*MethodOperator, bool) {
	text = Canonical(text)
	op, ok := methodOperators[text]
	return op, ok
}

// MethodSpellings lists the method operator spellings.
func MethodSpellings() []string {
	var out []string
	for text := range methodOperators {
		out = append(out, text)
	}
	return out
}

// Compound is an augmented assignment decomposed into its base operator.
// Dynamic is set for the `op:=` spelling.
type Compound struct {
	Text    string
	Base    *Operator
	Dynamic bool
}

var compoundOperators = map[string]*Compound{}

func init() {
	for _, base := range []string{"+", "-", "*", "/", "//", "%", "**", "&", "|", "^", "<<", ">>"} {
		op := infixOperators[base]
		compoundOperators[base+"="] = &Compound{Text: base + "=", Base: op}
		compoundOperators[base+":="] = &Compound{Text: base + ":=", Base: op, Dynamic: true}
	}
}

// CompoundAssignment decomposes spellings like "+=" or "**:=".
func CompoundAssignment(text string) (*Compound, bool) {
	c, ok := compoundOperators[text]
	return c, ok
}

// CompoundSpellings lists the augmented assignment spellings.
func CompoundSpellings() []string {
	var out []string
	for text := range compoundOperators {
		out = append(out, text)
	}
	return out
}
