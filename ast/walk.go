package ast

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order. Nil children, including
// absent optional expressions, are skipped.
func Walk(node Node, v Visitor) {
	if isNil(node) || !v(node) {
		return
	}

	switch n := node.(type) {
	case *File:
		walkStatements(n.Statements, v)
	case *Body:
		walkStatements(n.Statements, v)
	case *Decorator:
		Walk(n.Expr, v)
	case *Annotation:
		walkArguments(n.Args, v)
	case *Argument:
		Walk(n.Value, v)
	case *Parameter:
		walkType(n.Type, v)
		walkExpr(n.Default, v)
	case *TypeName:
		for _, arg := range n.Args {
			Walk(arg, v)
		}

	case *BinaryOperation:
		Walk(n.Left, v)
		Walk(n.Right, v)
	case *UnaryOperation:
		Walk(n.Operand, v)
	case *PostfixOperation:
		Walk(n.Operand, v)
	case *Ternary:
		Walk(n.Then, v)
		Walk(n.Cond, v)
		Walk(n.Else, v)
	case *Call:
		Walk(n.Callee, v)
		walkArguments(n.Args, v)
	case *Index:
		Walk(n.Target, v)
		Walk(n.Index, v)
	case *Slice:
		Walk(n.Target, v)
		walkExpr(n.Start, v)
		walkExpr(n.Stop, v)
		walkExpr(n.Step, v)
	case *Member:
		Walk(n.Target, v)
	case *Tuple:
		walkExprs(n.Items, v)
	case *List:
		walkExprs(n.Items, v)
	case *Set:
		walkExprs(n.Items, v)
	case *Dict:
		for i := range n.Keys {
			Walk(n.Keys[i], v)
			Walk(n.Values[i], v)
		}
	case *Comprehension:
		walkExpr(n.Key, v)
		Walk(n.Element, v)
		for _, c := range n.Clauses {
			Walk(c, v)
		}
	case *ComprehensionClause:
		walkExprs(n.Targets, v)
		Walk(n.Iterable, v)
		walkExpr(n.Condition, v)
	case *Lambda:
		walkParams(n.Params, v)
		Walk(n.Body, v)
	case *Some:
		walkExprs(n.Targets, v)
		Walk(n.Iterable, v)
		walkExpr(n.Condition, v)
	case *SwitchExpression:
		Walk(n.Subject, v)
		for _, c := range n.Cases {
			Walk(c, v)
		}
		walkExpr(n.Default, v)
	case *SwitchExpressionCase:
		walkExprs(n.Values, v)
		Walk(n.Result, v)
	case *Raise:
		walkExpr(n.Exception, v)
		walkExpr(n.Cause, v)

	case *ExpressionStatement:
		Walk(n.Expr, v)
	case *Assignment:
		walkExprs(n.Targets, v)
		walkExprs(n.Values, v)
	case *AugmentedAssignment:
		Walk(n.Target, v)
		Walk(n.Value, v)
	case *Increment:
		Walk(n.Target, v)
	case *Declaration:
		walkModifiers(&n.Modifiers, v)
		walkType(n.Type, v)
		walkExpr(n.Value, v)
	case *FunctionDef:
		walkModifiers(&n.Modifiers, v)
		walkSignature(&n.Signature, v)
		Walk(n.Body, v)
	case *MethodDef:
		walkModifiers(&n.Modifiers, v)
		walkSignature(&n.Signature, v)
		walkBody(n.Body, v)
	case *OperatorDef:
		walkModifiers(&n.Modifiers, v)
		walkParams(n.Params, v)
		for _, t := range n.Returns {
			Walk(t, v)
		}
		walkBody(n.Body, v)
	case *PropertyDef:
		walkModifiers(&n.Modifiers, v)
		Walk(n.Type, v)
		Walk(n.Getter, v)
		walkBody(n.Setter, v)
	case *ClassDef:
		walkModifiers(&n.Modifiers, v)
		for _, t := range n.Supers {
			Walk(t, v)
		}
		Walk(n.Body, v)
	case *InterfaceDef:
		walkModifiers(&n.Modifiers, v)
		for _, t := range n.Supers {
			Walk(t, v)
		}
		Walk(n.Body, v)
	case *EnumDef:
		walkModifiers(&n.Modifiers, v)
		for _, m := range n.Members {
			Walk(m, v)
		}
	case *EnumMember:
		walkExpr(n.Value, v)
	case *ContextDef:
		walkModifiers(&n.Modifiers, v)
		walkParams(n.Params, v)
		Walk(n.Body, v)
	case *Typedef:
		Walk(n.Type, v)
	case *FromImport:
		for _, name := range n.Names {
			Walk(name, v)
		}
	case *If:
		Walk(n.Cond, v)
		Walk(n.Body, v)
		for _, elif := range n.Elifs {
			Walk(elif, v)
		}
		Walk(n.Else, v)
	case *Elif:
		Walk(n.Cond, v)
		Walk(n.Body, v)
	case *While:
		Walk(n.Cond, v)
		Walk(n.Body, v)
		Walk(n.Else, v)
	case *DoWhile:
		Walk(n.Body, v)
		Walk(n.Cond, v)
	case *For:
		walkType(n.Type, v)
		walkExprs(n.Targets, v)
		Walk(n.Iterable, v)
		Walk(n.Body, v)
		Walk(n.Else, v)
	case *Switch:
		Walk(n.Subject, v)
		for _, c := range n.Cases {
			Walk(c, v)
		}
		Walk(n.Default, v)
	case *Case:
		walkExprs(n.Values, v)
		Walk(n.Body, v)
	case *Try:
		Walk(n.Body, v)
		for _, h := range n.Handlers {
			Walk(h, v)
		}
		Walk(n.Else, v)
		Walk(n.Finally, v)
	case *Except:
		for _, t := range n.Types {
			Walk(t, v)
		}
		Walk(n.Body, v)
	case *With:
		for _, item := range n.Items {
			Walk(item, v)
		}
		Walk(n.Body, v)
	case *WithItem:
		Walk(n.Context, v)
	case *Return:
		walkExprs(n.Values, v)
	case *Yield:
		walkExprs(n.Values, v)
		walkExpr(n.From, v)
	case *Assert:
		Walk(n.Cond, v)
		walkExpr(n.Message, v)
	case *Delete:
		walkExprs(n.Targets, v)

	// Leaves: Name, Number, String, Bool, Null, EscapedOperator, Import,
	// ImportName, Export, Fallthrough, Break, Continue, Pass, Global,
	// Nonlocal.
	}
}

// Inspect traverses an AST and calls f for each node.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}

// isNil catches typed nil pointers stored in interfaces for the optional
// children that are pointers.
func isNil(node Node) bool {
	switch n := node.(type) {
	case nil:
		return true
	case *Body:
		return n == nil
	case *TypeName:
		return n == nil
	}
	return false
}

func walkStatements(list []Statement, v Visitor) {
	for _, s := range list {
		Walk(s, v)
	}
}

func walkExprs(list []Expression, v Visitor) {
	for _, e := range list {
		Walk(e, v)
	}
}

func walkExpr(e Expression, v Visitor) {
	if e != nil {
		Walk(e, v)
	}
}

func walkType(t *TypeName, v Visitor) {
	if t != nil {
		Walk(t, v)
	}
}

func walkBody(b *Body, v Visitor) {
	if b != nil {
		Walk(b, v)
	}
}

func walkArguments(list []*Argument, v Visitor) {
	for _, a := range list {
		Walk(a, v)
	}
}

func walkParams(list []*Parameter, v Visitor) {
	for _, p := range list {
		Walk(p, v)
	}
}

func walkSignature(s *Signature, v Visitor) {
	walkParams(s.Params, v)
	for _, t := range s.Returns {
		Walk(t, v)
	}
}

func walkModifiers(m *Modifiers, v Visitor) {
	for _, d := range m.Decorators {
		Walk(d, v)
	}
	for _, a := range m.Annotations {
		Walk(a, v)
	}
}
