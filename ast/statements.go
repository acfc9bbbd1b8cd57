package ast

import "github.com/pontaoski/tawac/tables"

type ExpressionStatement struct {
	Base
	Expr Expression
}

// Assignment is `targets = values`, or `targets := values` when IsColon.
type Assignment struct {
	Base
	Targets []Expression
	Values  []Expression
	IsColon bool
}

// AugmentedAssignment is `target op= value` or `target op:= value`.
type AugmentedAssignment struct {
	Base
	Target Expression
	Op     *tables.Compound
	Value  Expression
}

// Increment is `target++`, or `target--` when Decrement.
type Increment struct {
	Base
	Target    Expression
	Decrement bool
}

type Import struct {
	Base
	Path  []string
	Alias string
}

type ImportName struct {
	Base
	Name  string
	Alias string
}

// FromImport is `from path import names`; Star is `from path import *`.
type FromImport struct {
	Base
	Path  []string
	Names []*ImportName
	Star  bool
}

type Export struct {
	Base
	Names []string
}

type Typedef struct {
	Base
	Name string
	Type *TypeName
}

type If struct {
	Base
	Cond  Expression
	Body  *Body
	Elifs []*Elif
	Else  *Body
}

type Elif struct {
	Base
	Cond Expression
	Body *Body
}

type While struct {
	Base
	Cond Expression
	Body *Body
	Else *Body
}

type DoWhile struct {
	Base
	Body *Body
	Cond Expression
}

// For is `for [Type] targets in iterable { body } [else { ... }]`. Type may
// be nil.
type For struct {
	Base
	Type     *TypeName
	Targets  []Expression
	Iterable Expression
	Body     *Body
	Else     *Body
}

// Switch is the statement form of switch. Default is an empty Body when
// absent.
type Switch struct {
	Base
	Subject Expression
	Cases   []*Case
	Default *Body
}

type Case struct {
	Base
	Values []Expression
	Body   *Body
}

type Fallthrough struct {
	Base
}

type Try struct {
	Base
	Body     *Body
	Handlers []*Except
	Else     *Body
	Finally  *Body
}

// Except is one handler. An empty Types catches everything; Name may be
// empty.
type Except struct {
	Base
	Types []*TypeName
	Name  string
	Body  *Body
}

type With struct {
	Base
	Items []*WithItem
	Body  *Body
}

type WithItem struct {
	Base
	Context Expression
	Name    string
}

type Return struct {
	Base
	Values []Expression
}

// Yield is `yield values` or, when From is set, `yield from From`.
type Yield struct {
	Base
	Values []Expression
	From   Expression
}

type Break struct {
	Base
}

type Continue struct {
	Base
}

type Pass struct {
	Base
}

type Assert struct {
	Base
	Cond    Expression
	Message Expression
}

type Delete struct {
	Base
	Targets []Expression
}

type Global struct {
	Base
	Names []string
}

type Nonlocal struct {
	Base
	Names []string
}
