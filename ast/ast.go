// Package ast declares the nodes the parser produces.
//
// Node categories are capability sets rather than a hierarchy: a node is a
// Statement, an Expression, Assignable and so on by implementing the
// matching marker method, and one node may have several capabilities.
// The marker methods live in capabilities_gen.go, generated from
// capabilities.adt.
package ast

//go:generate sh -c "cd ../tool && go run . ../ast/capabilities.adt ../ast/capabilities_gen.go ast"

import (
	"github.com/pontaoski/tawac/descriptor"
	"github.com/pontaoski/tawac/types"
)

// Node is implemented by every node. String re-serializes the node into
// source-like text, fully parenthesizing operations.
type Node interface {
	Pos() types.Position
	String() string
}

// Statement nodes may appear in a body.
type Statement interface {
	Node
	is_Statement()
}

// Expression nodes produce a value.
type Expression interface {
	Node
	is_Expression()
}

// NameLike expressions can be dotted, indexed and called.
type NameLike interface {
	Expression
	is_NameLike()
}

// Assignable expressions are valid assignment targets.
type Assignable interface {
	Expression
	is_Assignable()
}

// TopLevel statements may appear directly in a file.
type TopLevel interface {
	Statement
	is_TopLevel()
}

// ClassStatement statements may appear in a class or interface body.
type ClassStatement interface {
	Statement
	is_ClassStatement()
}

// Modified is implemented by nodes carrying Modifiers.
type Modified interface {
	Node
	Mods() *Modifiers
}

// Decoratable statements accept decorator lines.
type Decoratable interface {
	Modified
	is_Decoratable()
}

// Annotatable statements accept annotation lines.
type Annotatable interface {
	Modified
	is_Annotatable()
}

// Describable statements accept descriptors. AllowedDescriptors is the
// statement kind's allow-set and Describe names the kind in diagnostics.
type Describable interface {
	Modified
	AllowedDescriptors() descriptor.Set
	Describe() string
}

// Base carries the position every node has.
type Base struct {
	Location types.Position
}

func (b *Base) Pos() types.Position { return b.Location }

// Modifiers are the decorators, annotations and descriptors preceding a
// statement. The slices are never nil.
type Modifiers struct {
	Decorators  []*Decorator
	Annotations []*Annotation
	Descriptors []descriptor.Descriptor
}

func (m *Modifiers) Mods() *Modifiers { return m }

// NoModifiers returns an empty, non-nil set of modifiers.
func NoModifiers() Modifiers {
	return Modifiers{
		Decorators:  []*Decorator{},
		Annotations: []*Annotation{},
		Descriptors: []descriptor.Descriptor{},
	}
}

// File is the root of one parsed source file.
type File struct {
	Base
	Filename   string
	Statements []Statement
}

// Body is a braced statement block. An absent optional block (a missing
// else, say) is an empty Body at types.Unavailable.
type Body struct {
	Base
	Statements []Statement
}

// EmptyBody is the placeholder for an absent optional block.
func EmptyBody() *Body {
	return &Body{Statements: []Statement{}}
}

// IsEmpty reports whether the body has no statements.
func (b *Body) IsEmpty() bool {
	return len(b.Statements) == 0
}

// Decorator is an `@expr` line.
type Decorator struct {
	Base
	Expr Expression
}

// Annotation is a `$Name` or `$Name(args)` line.
type Annotation struct {
	Base
	Name string
	Args []*Argument
}

// Unpack marks `*` and `**` arguments and parameters.
type Unpack int

const (
	NoUnpack Unpack = iota
	UnpackSequence
	UnpackMapping
)

func (u Unpack) String() string {
	switch u {
	case UnpackSequence:
		return "*"
	case UnpackMapping:
		return "**"
	}
	return ""
}

// Argument is one call argument. Name is set for keyword arguments.
type Argument struct {
	Base
	Name   string
	Value  Expression
	Unpack Unpack
}

// Parameter is one parameter of a function, method, operator, context or
// lambda. Type and Default may be nil.
type Parameter struct {
	Base
	Type    *TypeName
	Name    string
	Default Expression
	Unpack  Unpack
}

// TypeName is a possibly dotted, possibly generic type reference.
type TypeName struct {
	Base
	Parts    []string
	Args     []*TypeName
	Optional bool
}
