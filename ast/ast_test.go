package ast

import (
	"testing"

	"github.com/pontaoski/tawac/descriptor"
	"github.com/pontaoski/tawac/tables"
	"github.com/pontaoski/tawac/types"
)

var (
	_ Assignable     = (*Name)(nil)
	_ Assignable     = (*Member)(nil)
	_ Assignable     = (*Index)(nil)
	_ NameLike       = (*Call)(nil)
	_ TopLevel       = (*FunctionDef)(nil)
	_ ClassStatement = (*MethodDef)(nil)
	_ Describable    = (*Declaration)(nil)
	_ Decoratable    = (*ClassDef)(nil)
	_ Annotatable    = (*Declaration)(nil)
	_ Statement      = (*Raise)(nil)
	_ Expression     = (*Raise)(nil)
)

func name(s string) *Name { return &Name{Value: s} }
func num(s string) *Number { return &Number{Value: s} }

func infix(t *testing.T, op string, l, r Expression) *BinaryOperation {
	t.Helper()
	o, ok := tables.Infix(op)
	if !ok {
		t.Fatalf("no infix %q", op)
	}
	return &BinaryOperation{Op: o, Left: l, Right: r}
}

func prefix(t *testing.T, op string, e Expression) *UnaryOperation {
	t.Helper()
	o, ok := tables.Prefix(op)
	if !ok {
		t.Fatalf("no prefix %q", op)
	}
	return &UnaryOperation{Op: o, Operand: e}
}

func TestCapabilities(t *testing.T) {
	tests := []struct {
		node                                Node
		statement, topLevel, classStatement bool
	}{
		{&Return{}, true, false, false},
		{&Break{}, true, false, false},
		{&MethodDef{}, true, false, true},
		{&PropertyDef{}, true, false, true},
		{&FunctionDef{}, true, true, false},
		{&ClassDef{}, true, true, true},
		{&Declaration{}, true, true, true},
		{&Pass{}, true, true, true},
		{&Assignment{}, true, true, false},
		{&Name{}, false, false, false},
	}

	for _, tt := range tests {
		_, statement := tt.node.(Statement)
		_, topLevel := tt.node.(TopLevel)
		_, classStatement := tt.node.(ClassStatement)
		if statement != tt.statement || topLevel != tt.topLevel || classStatement != tt.classStatement {
			t.Errorf("%T: statement=%v topLevel=%v classStatement=%v", tt.node, statement, topLevel, classStatement)
		}
	}

	if _, ok := Node(num("1")).(NameLike); ok {
		t.Error("numbers are name-like")
	}
	if _, ok := Node(&Call{}).(Assignable); ok {
		t.Error("calls are assignable")
	}
}

func TestAllowedDescriptors(t *testing.T) {
	var fn Describable = &FunctionDef{}
	if fn.AllowedDescriptors().Has(descriptor.Static) {
		t.Error("functions accept static")
	}
	var method Describable = &MethodDef{}
	if !method.AllowedDescriptors().Has(descriptor.Static) {
		t.Error("methods reject static")
	}
	if fn.Describe() != "function definition" {
		t.Errorf("Describe() = %q", fn.Describe())
	}
}

func TestString(t *testing.T) {
	mods := NoModifiers()
	mods.Descriptors = []descriptor.Descriptor{descriptor.Public, descriptor.Static}

	tests := []struct {
		node Node
		want string
	}{
		{infix(t, "+", num("1"), infix(t, "*", num("2"), num("3"))), "(1 + (2 * 3))"},
		{prefix(t, "-", prefix(t, "-", num("1"))), "(-(-1))"},
		{prefix(t, "not", name("x")), "(not x)"},
		{&Ternary{Then: name("a"), Cond: name("b"), Else: name("c")}, "(a if b else c)"},
		{&Call{Callee: name("f"), Args: []*Argument{
			{Value: name("a")},
			{Name: "k", Value: num("1")},
			{Value: name("rest"), Unpack: UnpackSequence},
		}}, "f(a, k=1, *rest)"},
		{&Slice{Target: name("xs"), Stop: num("2")}, "xs[:2]"},
		{&Tuple{Items: []Expression{name("a")}}, "(a,)"},
		{&Dict{Keys: []Expression{name("a")}, Values: []Expression{num("1")}}, "{a: 1}"},
		{&Comprehension{Kind: DictComprehension, Key: name("k"), Element: name("v"), Clauses: []*ComprehensionClause{
			{Targets: []Expression{name("k"), name("v")}, Iterable: name("items"), Condition: name("v")},
		}}, "{k: v for k, v in items if v}"},
		{&Assignment{Targets: []Expression{name("x")}, Values: []Expression{num("1")}, IsColon: true}, "x := 1"},
		{&Declaration{Modifiers: mods, Type: &TypeName{Parts: []string{"List"}, Args: []*TypeName{{Parts: []string{"int"}}}, Optional: true}, Name: "xs"},
			"public static List[int]? xs"},
		{&If{Cond: name("x"), Body: &Body{Statements: []Statement{&ExpressionStatement{Expr: name("y")}}}, Elifs: []*Elif{}, Else: EmptyBody()},
			"if x { y }"},
		{&FunctionDef{Modifiers: NoModifiers(), Signature: Signature{
			Name:    "f",
			Params:  []*Parameter{{Type: &TypeName{Parts: []string{"int"}}, Name: "x"}},
			Returns: []*TypeName{{Parts: []string{"int"}}},
		}, Body: &Body{Statements: []Statement{&Return{Values: []Expression{name("x")}}}}},
			"func f(int x) -> int { return x }"},
		{&Try{Body: EmptyBody(), Handlers: []*Except{{Types: []*TypeName{{Parts: []string{"Error"}}}, Name: "e", Body: EmptyBody()}}, Else: EmptyBody(), Finally: EmptyBody()},
			"try {} except Error as e {}"},
	}

	for _, tt := range tests {
		if got := tt.node.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestWalk(t *testing.T) {
	pos := types.Position{Filename: "t.tawa", Line: 1}
	tree := &File{
		Base: Base{pos},
		Statements: []Statement{
			&If{
				Base:  Base{pos},
				Cond:  infix(t, "<", name("a"), name("b")),
				Body:  &Body{Statements: []Statement{&Pass{}}},
				Elifs: []*Elif{},
				Else:  EmptyBody(),
			},
			&PropertyDef{Modifiers: NoModifiers(), Type: &TypeName{Parts: []string{"int"}}, Name: "p", Getter: EmptyBody()},
		},
	}

	counts := map[string]int{}
	Inspect(tree, func(n Node) bool {
		switch n.(type) {
		case *Name:
			counts["name"]++
		case *Body:
			counts["body"]++
		case *Pass:
			counts["pass"]++
		}
		return true
	})
	if counts["name"] != 2 || counts["body"] != 3 || counts["pass"] != 1 {
		t.Fatalf("visited %v", counts)
	}

	visited := 0
	Inspect(tree, func(n Node) bool {
		visited++
		_, isFile := n.(*File)
		return isFile
	})
	if visited != 3 {
		t.Fatalf("pruned walk visited %d nodes, want 3", visited)
	}
}
