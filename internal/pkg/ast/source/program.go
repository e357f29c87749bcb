package source

import (
	"corelower/internal/pkg/ast"
)

// ToplevelItem is a toplevel declaration: either an annotated assignment
// (becomes a Core `let`) or a function definition (becomes a recursive
// Core `let`), per spec.md §4.I step 2.
type ToplevelItem interface {
	_toplevel()
	GetLocation() ast.Location
}

type ToplevelAssign struct {
	ast.Location
	Target Target
	Type   Type
	Value  Expression
}

func (*ToplevelAssign) _toplevel()             {}
func (t *ToplevelAssign) GetLocation() ast.Location { return t.Location }

// FuncDef is a toplevel function definition. By convention the entry
// function is named `solve` (spec.md §4.I step 3).
type FuncDef struct {
	ast.Location
	Name       ast.Identifier
	Params     []Param
	ReturnType Type
	Body       []Statement
}

func (*FuncDef) _toplevel()             {}
func (f *FuncDef) GetLocation() ast.Location { return f.Location }

// EntryFunctionName is the toplevel function the Orchestrator names as
// the program's result (spec.md §4.I step 3).
const EntryFunctionName = ast.Identifier("solve")

// Program is a whole Source program: an ordered list of toplevel items.
type Program struct {
	Items []ToplevelItem
}
