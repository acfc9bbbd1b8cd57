package ast

import (
	"github.com/pontaoski/tawac/descriptor"
	"github.com/pontaoski/tawac/tables"
)

// Declaration is `Type name [= value]`, or `var name [= value]` with a nil
// Type.
type Declaration struct {
	Base
	Modifiers
	Type  *TypeName
	Name  string
	Value Expression
}

func (*Declaration) AllowedDescriptors() descriptor.Set { return descriptor.Declare }
func (*Declaration) Describe() string                   { return "declaration" }

// Signature is shared by every callable definition.
type Signature struct {
	Name     string
	Generics []string
	Params   []*Parameter
	Returns  []*TypeName
}

type FunctionDef struct {
	Base
	Modifiers
	Signature
	Body *Body
}

func (*FunctionDef) AllowedDescriptors() descriptor.Set { return descriptor.Function }
func (*FunctionDef) Describe() string                   { return "function definition" }

// MethodDef is a func inside a class or interface body. Body is nil for an
// abstract interface method.
type MethodDef struct {
	Base
	Modifiers
	Signature
	Body *Body
}

func (*MethodDef) AllowedDescriptors() descriptor.Set { return descriptor.Method }
func (*MethodDef) Describe() string                   { return "method definition" }

// OperatorDef overloads Op in a class or interface body. Body is nil for
// an abstract interface operator.
type OperatorDef struct {
	Base
	Modifiers
	Op      *tables.MethodOperator
	Params  []*Parameter
	Returns []*TypeName
	Body    *Body
}

func (*OperatorDef) AllowedDescriptors() descriptor.Set { return descriptor.Operator }
func (*OperatorDef) Describe() string                   { return "operator definition" }

// PropertyDef is `property Type name { get { } set(value) { } }`. Setter
// is nil for a read-only property.
type PropertyDef struct {
	Base
	Modifiers
	Type        *TypeName
	Name        string
	Getter      *Body
	SetterParam string
	Setter      *Body
}

func (*PropertyDef) AllowedDescriptors() descriptor.Set { return descriptor.Property }
func (*PropertyDef) Describe() string                   { return "property definition" }

type ClassDef struct {
	Base
	Modifiers
	Name     string
	Generics []string
	Supers   []*TypeName
	Body     *Body
}

func (*ClassDef) AllowedDescriptors() descriptor.Set { return descriptor.Class }
func (*ClassDef) Describe() string                   { return "class definition" }

type InterfaceDef struct {
	Base
	Modifiers
	Name     string
	Generics []string
	Supers   []*TypeName
	Body     *Body
}

func (*InterfaceDef) AllowedDescriptors() descriptor.Set { return descriptor.Interface }
func (*InterfaceDef) Describe() string                   { return "interface definition" }

type EnumDef struct {
	Base
	Modifiers
	Name    string
	Members []*EnumMember
}

func (*EnumDef) AllowedDescriptors() descriptor.Set { return descriptor.Enum }
func (*EnumDef) Describe() string                   { return "enum definition" }

// EnumMember is one enum entry; Value may be nil.
type EnumMember struct {
	Base
	Name  string
	Value Expression
}

// ContextDef is a context manager definition.
type ContextDef struct {
	Base
	Modifiers
	Name   string
	Params []*Parameter
	Body   *Body
}

func (*ContextDef) AllowedDescriptors() descriptor.Set { return descriptor.Context }
func (*ContextDef) Describe() string                   { return "context manager definition" }
