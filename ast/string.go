package ast

import (
	"fmt"
	"strings"
)

func join(nodes interface{}, sep string) string {
	var parts []string
	switch ns := nodes.(type) {
	case []Expression:
		for _, n := range ns {
			parts = append(parts, n.String())
		}
	case []Statement:
		for _, n := range ns {
			parts = append(parts, n.String())
		}
	case []*Argument:
		for _, n := range ns {
			parts = append(parts, n.String())
		}
	case []*Parameter:
		for _, n := range ns {
			parts = append(parts, n.String())
		}
	case []*TypeName:
		for _, n := range ns {
			parts = append(parts, n.String())
		}
	case []string:
		parts = ns
	default:
		panic(fmt.Sprintf("join: unhandled %T", nodes))
	}
	return strings.Join(parts, sep)
}

func optional(prefix string, e Expression) string {
	if e == nil {
		return ""
	}
	return prefix + e.String()
}

func (m *Modifiers) prefix() string {
	var b strings.Builder
	for _, d := range m.Decorators {
		b.WriteString(d.String() + " ")
	}
	for _, a := range m.Annotations {
		b.WriteString(a.String() + " ")
	}
	for _, d := range m.Descriptors {
		b.WriteString(d.String() + " ")
	}
	return b.String()
}

func (f *File) String() string {
	return join(f.Statements, "\n")
}

func (b *Body) String() string {
	if len(b.Statements) == 0 {
		return "{}"
	}
	return "{ " + join(b.Statements, "; ") + " }"
}

func (d *Decorator) String() string { return "@" + d.Expr.String() }

func (a *Annotation) String() string {
	if len(a.Args) == 0 {
		return "$" + a.Name
	}
	return "$" + a.Name + "(" + join(a.Args, ", ") + ")"
}

func (a *Argument) String() string {
	if a.Name != "" {
		return a.Name + "=" + a.Value.String()
	}
	return a.Unpack.String() + a.Value.String()
}

func (p *Parameter) String() string {
	s := p.Unpack.String()
	if p.Type != nil {
		s += p.Type.String() + " "
	}
	s += p.Name
	return s + optional(" = ", p.Default)
}

func (t *TypeName) String() string {
	s := strings.Join(t.Parts, ".")
	if len(t.Args) > 0 {
		s += "[" + join(t.Args, ", ") + "]"
	}
	if t.Optional {
		s += "?"
	}
	return s
}

func (n *Name) String() string   { return n.Value }
func (n *Number) String() string { return n.Value }
func (s *String) String() string { return s.Value }
func (*Null) String() string     { return "null" }

func (b *Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

func (e *EscapedOperator) String() string { return `\` + e.Op.Text }

func (b *BinaryOperation) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op.Text, b.Right)
}

func (u *UnaryOperation) String() string {
	if u.Op.Text == "not" {
		return fmt.Sprintf("(not %s)", u.Operand)
	}
	return fmt.Sprintf("(%s%s)", u.Op.Text, u.Operand)
}

func (p *PostfixOperation) String() string {
	return fmt.Sprintf("(%s%s)", p.Operand, p.Op.Text)
}

func (t *Ternary) String() string {
	return fmt.Sprintf("(%s if %s else %s)", t.Then, t.Cond, t.Else)
}

func (c *Call) String() string {
	return c.Callee.String() + "(" + join(c.Args, ", ") + ")"
}

func (i *Index) String() string {
	return i.Target.String() + "[" + i.Index.String() + "]"
}

func (s *Slice) String() string {
	out := s.Target.String() + "[" + optional("", s.Start) + ":" + optional("", s.Stop)
	if s.Step != nil {
		out += ":" + s.Step.String()
	}
	return out + "]"
}

func (m *Member) String() string { return m.Target.String() + "." + m.Name }

func (t *Tuple) String() string {
	if len(t.Items) == 1 {
		return "(" + t.Items[0].String() + ",)"
	}
	return "(" + join(t.Items, ", ") + ")"
}

func (l *List) String() string { return "[" + join(l.Items, ", ") + "]" }

func (s *Set) String() string { return "{" + join(s.Items, ", ") + "}" }

func (d *Dict) String() string {
	var parts []string
	for i := range d.Keys {
		parts = append(parts, d.Keys[i].String()+": "+d.Values[i].String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (c *ComprehensionClause) String() string {
	return "for " + join(c.Targets, ", ") + " in " + c.Iterable.String() + optional(" if ", c.Condition)
}

func (c *Comprehension) String() string {
	left, right := "[", "]"
	switch c.Kind {
	case SetComprehension, DictComprehension:
		left, right = "{", "}"
	case GeneratorComprehension:
		left, right = "(", ")"
	}
	elem := c.Element.String()
	if c.Kind == DictComprehension {
		elem = c.Key.String() + ": " + elem
	}
	var clauses []string
	for _, clause := range c.Clauses {
		clauses = append(clauses, clause.String())
	}
	return left + elem + " " + strings.Join(clauses, " ") + right
}

func (l *Lambda) String() string {
	if len(l.Params) == 0 {
		return "(lambda: " + l.Body.String() + ")"
	}
	return "(lambda " + join(l.Params, ", ") + ": " + l.Body.String() + ")"
}

func (s *Some) String() string {
	return "(some " + join(s.Targets, ", ") + " in " + s.Iterable.String() + optional(" where ", s.Condition) + ")"
}

func (c *SwitchExpressionCase) String() string {
	return "case " + join(c.Values, ", ") + ": " + c.Result.String()
}

func (s *SwitchExpression) String() string {
	var parts []string
	for _, c := range s.Cases {
		parts = append(parts, c.String())
	}
	if s.Default != nil {
		parts = append(parts, "default: "+s.Default.String())
	}
	return "switch " + s.Subject.String() + " { " + strings.Join(parts, "; ") + " }"
}

func (r *Raise) String() string {
	return "raise" + optional(" ", r.Exception) + optional(" from ", r.Cause)
}

func (e *ExpressionStatement) String() string { return e.Expr.String() }

func (a *Assignment) String() string {
	op := " = "
	if a.IsColon {
		op = " := "
	}
	return join(a.Targets, ", ") + op + join(a.Values, ", ")
}

func (a *AugmentedAssignment) String() string {
	return a.Target.String() + " " + a.Op.Text + " " + a.Value.String()
}

func (i *Increment) String() string {
	if i.Decrement {
		return i.Target.String() + "--"
	}
	return i.Target.String() + "++"
}

func (d *Declaration) String() string {
	kind := "var"
	if d.Type != nil {
		kind = d.Type.String()
	}
	return d.prefix() + kind + " " + d.Name + optional(" = ", d.Value)
}

func (s *Signature) String() string {
	out := s.Name
	if len(s.Generics) > 0 {
		out += "[" + join(s.Generics, ", ") + "]"
	}
	out += "(" + join(s.Params, ", ") + ")"
	if len(s.Returns) > 0 {
		out += " -> " + join(s.Returns, ", ")
	}
	return out
}

func (f *FunctionDef) String() string {
	return f.prefix() + "func " + f.Signature.String() + " " + f.Body.String()
}

func (m *MethodDef) String() string {
	out := m.prefix() + "func " + m.Signature.String()
	if m.Body != nil {
		out += " " + m.Body.String()
	}
	return out
}

func (o *OperatorDef) String() string {
	out := o.prefix() + "operator " + o.Op.Text + "(" + join(o.Params, ", ") + ")"
	if len(o.Returns) > 0 {
		out += " -> " + join(o.Returns, ", ")
	}
	if o.Body != nil {
		out += " " + o.Body.String()
	}
	return out
}

func (p *PropertyDef) String() string {
	out := p.prefix() + "property " + p.Type.String() + " " + p.Name + " { get " + p.Getter.String()
	if p.Setter != nil {
		out += "; set(" + p.SetterParam + ") " + p.Setter.String()
	}
	return out + " }"
}

func header(keyword, name string, generics []string, supers []*TypeName) string {
	out := keyword + " " + name
	if len(generics) > 0 {
		out += "[" + join(generics, ", ") + "]"
	}
	if len(supers) > 0 {
		out += "(" + join(supers, ", ") + ")"
	}
	return out
}

func (c *ClassDef) String() string {
	return c.prefix() + header("class", c.Name, c.Generics, c.Supers) + " " + c.Body.String()
}

func (i *InterfaceDef) String() string {
	return i.prefix() + header("interface", i.Name, i.Generics, i.Supers) + " " + i.Body.String()
}

func (m *EnumMember) String() string { return m.Name + optional(" = ", m.Value) }

func (e *EnumDef) String() string {
	var members []string
	for _, m := range e.Members {
		members = append(members, m.String())
	}
	if len(members) == 0 {
		return e.prefix() + "enum " + e.Name + " {}"
	}
	return e.prefix() + "enum " + e.Name + " { " + strings.Join(members, ", ") + " }"
}

func (c *ContextDef) String() string {
	return c.prefix() + "context " + c.Name + "(" + join(c.Params, ", ") + ") " + c.Body.String()
}

func (t *Typedef) String() string { return "typedef " + t.Name + " = " + t.Type.String() }

func (i *Import) String() string {
	out := "import " + strings.Join(i.Path, ".")
	if i.Alias != "" {
		out += " as " + i.Alias
	}
	return out
}

func (n *ImportName) String() string {
	if n.Alias != "" {
		return n.Name + " as " + n.Alias
	}
	return n.Name
}

func (f *FromImport) String() string {
	out := "from " + strings.Join(f.Path, ".") + " import "
	if f.Star {
		return out + "*"
	}
	var names []string
	for _, n := range f.Names {
		names = append(names, n.String())
	}
	return out + strings.Join(names, ", ")
}

func (e *Export) String() string { return "export " + strings.Join(e.Names, ", ") }

func orElse(keyword string, b *Body) string {
	if b == nil || b.IsEmpty() {
		return ""
	}
	return " " + keyword + " " + b.String()
}

func (e *Elif) String() string { return "elif " + e.Cond.String() + " " + e.Body.String() }

func (i *If) String() string {
	out := "if " + i.Cond.String() + " " + i.Body.String()
	for _, elif := range i.Elifs {
		out += " " + elif.String()
	}
	return out + orElse("else", i.Else)
}

func (w *While) String() string {
	return "while " + w.Cond.String() + " " + w.Body.String() + orElse("else", w.Else)
}

func (d *DoWhile) String() string {
	return "do " + d.Body.String() + " while " + d.Cond.String()
}

func (f *For) String() string {
	out := "for "
	if f.Type != nil {
		out += f.Type.String() + " "
	}
	out += join(f.Targets, ", ") + " in " + f.Iterable.String() + " " + f.Body.String()
	return out + orElse("else", f.Else)
}

func (c *Case) String() string { return "case " + join(c.Values, ", ") + " " + c.Body.String() }

func (s *Switch) String() string {
	var parts []string
	for _, c := range s.Cases {
		parts = append(parts, c.String())
	}
	if !s.Default.IsEmpty() {
		parts = append(parts, "default "+s.Default.String())
	}
	if len(parts) == 0 {
		return "switch " + s.Subject.String() + " {}"
	}
	return "switch " + s.Subject.String() + " { " + strings.Join(parts, "; ") + " }"
}

func (*Fallthrough) String() string { return "fallthrough" }

func (e *Except) String() string {
	out := "except"
	if len(e.Types) > 0 {
		out += " " + join(e.Types, ", ")
	}
	if e.Name != "" {
		out += " as " + e.Name
	}
	return out + " " + e.Body.String()
}

func (t *Try) String() string {
	out := "try " + t.Body.String()
	for _, h := range t.Handlers {
		out += " " + h.String()
	}
	return out + orElse("else", t.Else) + orElse("finally", t.Finally)
}

func (w *WithItem) String() string {
	if w.Name != "" {
		return w.Context.String() + " as " + w.Name
	}
	return w.Context.String()
}

func (w *With) String() string {
	var items []string
	for _, item := range w.Items {
		items = append(items, item.String())
	}
	return "with " + strings.Join(items, ", ") + " " + w.Body.String()
}

func (r *Return) String() string {
	if len(r.Values) == 0 {
		return "return"
	}
	return "return " + join(r.Values, ", ")
}

func (y *Yield) String() string {
	if y.From != nil {
		return "yield from " + y.From.String()
	}
	if len(y.Values) == 0 {
		return "yield"
	}
	return "yield " + join(y.Values, ", ")
}

func (*Break) String() string    { return "break" }
func (*Continue) String() string { return "continue" }
func (*Pass) String() string     { return "pass" }

func (a *Assert) String() string {
	return "assert " + a.Cond.String() + optional(", ", a.Message)
}

func (d *Delete) String() string   { return "del " + join(d.Targets, ", ") }
func (g *Global) String() string   { return "global " + strings.Join(g.Names, ", ") }
func (n *Nonlocal) String() string { return "nonlocal " + strings.Join(n.Names, ", ") }
