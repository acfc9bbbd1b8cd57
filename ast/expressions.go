package ast

import "github.com/pontaoski/tawac/tables"

type Name struct {
	Base
	Value string
}

// Number keeps the literal's source spelling.
type Number struct {
	Base
	Value string
}

// String keeps the literal's source spelling, prefix and quotes included.
type String struct {
	Base
	Value string
}

type Bool struct {
	Base
	Value bool
}

type Null struct {
	Base
}

// EscapedOperator is an operator used as a value, as in `reduce(\+, xs)`.
type EscapedOperator struct {
	Base
	Op *tables.Operator
}

type BinaryOperation struct {
	Base
	Op          *tables.Operator
	Left, Right Expression
}

type UnaryOperation struct {
	Base
	Op      *tables.Operator
	Operand Expression
}

type PostfixOperation struct {
	Base
	Op      *tables.Operator
	Operand Expression
}

// Ternary is `Then if Cond else Else`.
type Ternary struct {
	Base
	Cond, Then, Else Expression
}

type Call struct {
	Base
	Callee Expression
	Args   []*Argument
}

type Index struct {
	Base
	Target Expression
	Index  Expression
}

// Slice is `Target[Start:Stop:Step]`; absent bounds are nil.
type Slice struct {
	Base
	Target            Expression
	Start, Stop, Step Expression
}

type Member struct {
	Base
	Target Expression
	Name   string
}

type Tuple struct {
	Base
	Items []Expression
}

type List struct {
	Base
	Items []Expression
}

type Set struct {
	Base
	Items []Expression
}

type Dict struct {
	Base
	Keys   []Expression
	Values []Expression
}

// ComprehensionKind is the bracket a comprehension was written in.
type ComprehensionKind int

const (
	ListComprehension ComprehensionKind = iota
	SetComprehension
	DictComprehension
	GeneratorComprehension
)

// Comprehension is `[Element for targets in iterable if cond ...]`. Key is
// set only for dict comprehensions, where Element is the value.
type Comprehension struct {
	Base
	Kind    ComprehensionKind
	Key     Expression
	Element Expression
	Clauses []*ComprehensionClause
}

// ComprehensionClause is one `for targets in iterable [if cond]` part.
type ComprehensionClause struct {
	Base
	Targets   []Expression
	Iterable  Expression
	Condition Expression
}

type Lambda struct {
	Base
	Params []*Parameter
	Body   Expression
}

// Some is the existential `some x in xs where cond`. Condition may be nil.
type Some struct {
	Base
	Targets   []Expression
	Iterable  Expression
	Condition Expression
}

// SwitchExpression is the expression form of switch. Default may be nil.
type SwitchExpression struct {
	Base
	Subject Expression
	Cases   []*SwitchExpressionCase
	Default Expression
}

type SwitchExpressionCase struct {
	Base
	Values []Expression
	Result Expression
}

// Raise is both the `raise` statement and the raise expression. Both
// fields may be nil; a bare raise re-raises.
type Raise struct {
	Base
	Exception Expression
	Cause     Expression
}
