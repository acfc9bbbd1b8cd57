// Command capgen generates the capability marker methods of the ast
// package.
//
//	capgen capabilities.adt capabilities_gen.go ast
package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/alecthomas/participle"

	. "github.com/dave/jennifer/jen"
)

type Capabilities struct {
	Declarations []*Capability `@@*`
}

type Capability struct {
	Name    string   `"capability" @Ident "="`
	Members []string `@Ident ( "|" @Ident )* ";"`
}

func (c *Capabilities) Check() error {
	seen := map[string]bool{}
	for _, decl := range c.Declarations {
		if seen[decl.Name] {
			return fmt.Errorf("capability %s declared twice", decl.Name)
		}
		seen[decl.Name] = true

		members := map[string]bool{}
		for _, member := range decl.Members {
			if members[member] {
				return fmt.Errorf("%s listed twice in %s", member, decl.Name)
			}
			members[member] = true
		}
	}
	return nil
}

func GenerateMarkers(pkgname string, c *Capabilities) string {
	f := NewFile(pkgname)
	f.HeaderComment("Code generated by capgen from capabilities.adt. DO NOT EDIT.")

	for _, decl := range c.Declarations {
		f.Comment(decl.Name)
		for _, member := range decl.Members {
			f.Func().Params(Op("*").Id(member)).Id("is_" + decl.Name).Params().Block()
		}
	}

	return fmt.Sprintf("%#v", f)
}

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: capgen IN OUT PACKAGE")
		os.Exit(2)
	}
	parser := participle.MustBuild(&Capabilities{})

	in := os.Args[1]
	out := os.Args[2]
	pkgname := os.Args[3]

	inData, err := ioutil.ReadFile(in)
	if err != nil {
		panic(err)
	}

	caps := Capabilities{}
	err = parser.ParseBytes(inData, &caps)
	if err != nil {
		panic(err)
	}
	if err := caps.Check(); err != nil {
		panic(err)
	}

	err = ioutil.WriteFile(out, []byte(GenerateMarkers(pkgname, &caps)), 0644)
	if err != nil {
		panic(err)
	}
}
