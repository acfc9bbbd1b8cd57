package descriptor

import (
	"reflect"
	"strings"
	"testing"
)

func TestGroupsAreDisjoint(t *testing.T) {
	var seen Set
	for i, g := range Groups {
		if seen&g != 0 {
			t.Fatalf("group %d %s overlaps earlier groups", i, g)
		}
		seen |= g
	}
	for d := Descriptor(0); d < count; d++ {
		if !seen.Has(d) {
			t.Errorf("%s belongs to no group", d)
		}
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		in   []Descriptor
		ok   bool
	}{
		{"single", []Descriptor{Public}, true},
		{"ordered", []Descriptor{Private, Static, Const, Final}, true},
		{"skipping groups", []Descriptor{Protected, Synchronized, Auto}, true},
		{"repeat", []Descriptor{Public, Public}, false},
		{"two access levels", []Descriptor{Public, Private}, false},
		{"out of order", []Descriptor{Static, Public}, false},
		{"mutability after final", []Descriptor{Final, Mut}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Run
			var err error
			for _, d := range tt.in {
				if err = r.Add(d); err != nil {
					break
				}
			}
			if (err == nil) != tt.ok {
				t.Fatalf("Add(%v) error = %v, want ok=%v", tt.in, err, tt.ok)
			}
			if tt.ok && !reflect.DeepEqual(r.Descriptors(), tt.in) {
				t.Fatalf("Descriptors() = %v, want %v", r.Descriptors(), tt.in)
			}
		})
	}
}

func TestCombinationErrorNamesDescriptors(t *testing.T) {
	var r Run
	if err := r.Add(Public); err != nil {
		t.Fatal(err)
	}
	err := r.Add(Public)
	if err == nil {
		t.Fatal("public public was accepted")
	}
	if !strings.Contains(err.Error(), "'public' cannot follow 'public'") {
		t.Fatalf("error = %q", err)
	}
}

func TestEmptyRun(t *testing.T) {
	var r Run
	if !r.Empty() {
		t.Fatal("zero Run is not empty")
	}
	if ds := r.Descriptors(); ds == nil || len(ds) != 0 {
		t.Fatalf("Descriptors() = %#v, want empty non-nil slice", ds)
	}
}

func TestDisallowed(t *testing.T) {
	got := Disallowed(Function, []Descriptor{Public, Static, Generator, Final})
	want := []Descriptor{Static, Final}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Disallowed() = %v, want %v", got, want)
	}
	if got := Disallowed(Method, []Descriptor{Public, Static, Final}); len(got) != 0 {
		t.Fatalf("method rejected %v", got)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		d, ok := Lookup(name)
		if !ok || d.String() != name {
			t.Errorf("Lookup(%q) = %v, %v", name, d, ok)
		}
	}
	if _, ok := Lookup("virtual"); ok {
		t.Error("Lookup accepted an unknown descriptor")
	}
}
