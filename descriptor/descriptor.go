// Package descriptor implements the statement modifier rules: descriptors
// belong to ordered, disjoint groups, a statement takes at most one
// descriptor per group in group order, and every statement kind accepts
// only its own set of descriptors.
package descriptor

import (
	"fmt"
	"sort"
	"strings"
)

type Descriptor int

const (
	Public Descriptor = iota
	Protected
	Private
	Pubget
	Static
	Mut
	Mref
	Const
	Final
	Nonfinal
	Native
	Generator
	Synchronized
	Auto

	count
)

var names = [...]string{
	Public:       "public",
	Protected:    "protected",
	Private:      "private",
	Pubget:       "pubget",
	Static:       "static",
	Mut:          "mut",
	Mref:         "mref",
	Const:        "const",
	Final:        "final",
	Nonfinal:     "nonfinal",
	Native:       "native",
	Generator:    "generator",
	Synchronized: "synchronized",
	Auto:         "auto",
}

func (d Descriptor) String() string {
	if d >= 0 && d < count {
		return names[d]
	}
	return fmt.Sprintf("Descriptor(%d)", int(d))
}

// Lookup finds a descriptor by spelling.
func Lookup(s string) (Descriptor, bool) {
	for d, name := range names {
		if name == s {
			return Descriptor(d), true
		}
	}
	return 0, false
}

// Names lists every descriptor spelling.
func Names() []string {
	return append([]string(nil), names[:]...)
}

// Groups are the disjoint descriptor groups in the order they must appear.
var Groups = []Set{
	Of(Public, Protected, Private, Pubget),
	Of(Static),
	Of(Mut, Mref, Const),
	Of(Final, Nonfinal),
	Of(Native),
	Of(Generator),
	Of(Synchronized),
	Of(Auto),
}

// Set is a set of descriptors.
type Set uint32

func Of(ds ...Descriptor) Set {
	var s Set
	for _, d := range ds {
		s |= 1 << uint(d)
	}
	return s
}

func (s Set) Has(d Descriptor) bool { return s&(1<<uint(d)) != 0 }
func (s Set) Union(o Set) Set       { return s | o }

// Slice returns the members in declaration order.
func (s Set) Slice() []Descriptor {
	var out []Descriptor
	for d := Descriptor(0); d < count; d++ {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

func (s Set) String() string {
	var parts []string
	for _, d := range s.Slice() {
		parts = append(parts, d.String())
	}
	return "{" + strings.Join(parts, " ") + "}"
}

var access = Groups[0]

// Allow-sets for each statement kind that accepts descriptors.
var (
	Class     = access.Union(Of(Static, Const, Final, Nonfinal, Auto))
	Interface = access.Union(Of(Static, Auto))
	Enum      = access.Union(Of(Static))
	Function  = Of(Public, Private, Native, Generator, Synchronized)
	Method    = access.Union(Of(Static, Const, Final, Nonfinal, Native, Generator, Synchronized))
	Operator  = access.Union(Of(Const, Final, Nonfinal, Generator, Synchronized))
	Property  = access.Union(Of(Static, Final, Nonfinal, Synchronized))
	Context   = Of(Public, Private, Final, Generator)
	Declare   = access.Union(Of(Static, Mut, Mref, Const, Final, Native, Auto))
)

// CombinationError reports a descriptor that cannot follow the ones
// before it.
type CombinationError struct {
	Descriptor Descriptor
	Previous   []Descriptor
}

func (e *CombinationError) Error() string {
	if len(e.Previous) == 0 {
		return fmt.Sprintf("descriptor '%s' cannot appear here", e.Descriptor)
	}
	prev := make([]string, len(e.Previous))
	for i, d := range e.Previous {
		prev[i] = d.String()
	}
	return fmt.Sprintf("'%s' cannot follow '%s'", e.Descriptor, strings.Join(prev, " "))
}

// Run accumulates the descriptors written before one statement. The zero
// value is an empty run.
type Run struct {
	next int
	list []Descriptor
	set  Set
}

// Add appends d, which must belong to a group after every group already
// used.
func (r *Run) Add(d Descriptor) error {
	for i := r.next; i < len(Groups); i++ {
		if Groups[i].Has(d) {
			r.next = i + 1
			r.list = append(r.list, d)
			r.set |= Of(d)
			return nil
		}
	}
	return &CombinationError{Descriptor: d, Previous: append([]Descriptor(nil), r.list...)}
}

// Descriptors returns the accumulated descriptors in source order. It is
// never nil.
func (r *Run) Descriptors() []Descriptor {
	if r.list == nil {
		return []Descriptor{}
	}
	return append([]Descriptor(nil), r.list...)
}

func (r *Run) Set() Set    { return r.set }
func (r *Run) Empty() bool { return len(r.list) == 0 }

// Disallowed returns the descriptors of ds not in allowed, sorted.
func Disallowed(allowed Set, ds []Descriptor) []Descriptor {
	var out []Descriptor
	for _, d := range ds {
		if !allowed.Has(d) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
