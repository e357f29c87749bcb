package core

import (
	"corelower/internal/pkg/ast"
)

// Expression is a Core expression. Sealed: every concrete case is listed
// in spec.md §3.
type Expression interface {
	_expression()
	GetLocation() ast.Location
}

type Var struct {
	ast.Location
	Name ast.Identifier
}

func (*Var) _expression()              {}
func (e *Var) GetLocation() ast.Location { return e.Location }

type LitInt struct {
	ast.Location
	Value int64
}

func (*LitInt) _expression()              {}
func (e *LitInt) GetLocation() ast.Location { return e.Location }

type LitBool struct {
	ast.Location
	Value bool
}

func (*LitBool) _expression()              {}
func (e *LitBool) GetLocation() ast.Location { return e.Location }

// LitBuiltin names a library primitive used as a first-class value
// (spec.md §3: "literals ... builtins").
type LitBuiltin struct {
	ast.Location
	Name BuiltinName
}

func (*LitBuiltin) _expression()              {}
func (e *LitBuiltin) GetLocation() ast.Location { return e.Location }

// LitNil is `nil(T)`, the base case a list literal folds `cons` over
// (spec.md §4.E).
type LitNil struct {
	ast.Location
	ElemType Type
}

func (*LitNil) _expression()              {}
func (e *LitNil) GetLocation() ast.Location { return e.Location }

// Tuple is the tuple-constructor literal (spec.md §3).
type Tuple struct {
	ast.Location
	Items []Expression
}

func (*Tuple) _expression()              {}
func (e *Tuple) GetLocation() ast.Location { return e.Location }

type App struct {
	ast.Location
	Func Expression
	Args []Expression
}

func (*App) _expression()              {}
func (e *App) GetLocation() ast.Location { return e.Location }

// Param is a typed Core lambda parameter.
type Param struct {
	Name ast.Identifier
	Type Type
}

// Lambda is a Core lambda with N typed parameters (spec.md §3: "lambda
// (multiple typed parameters)"). A nullary lambda (len(Params) == 0) is
// the thunk shape the Eager-wrap pass (component H) introduces.
type Lambda struct {
	ast.Location
	Params []Param
	Body   Expression
}

func (*Lambda) _expression()              {}
func (e *Lambda) GetLocation() ast.Location { return e.Location }

// Let is a monomorphic, non-recursive binding with an annotated type
// (spec.md §3). No Let may rebind a name visible in its own body
// (invariant 5 — single assignment).
type Let struct {
	ast.Location
	Name  ast.Identifier
	Type  Type
	Value Expression
	Body  Expression
}

func (*Let) _expression()              {}
func (e *Let) GetLocation() ast.Location { return e.Location }

// LetRec is a recursive toplevel binding (spec.md §3): Value may refer to
// Name within itself, used for function definitions.
type LetRec struct {
	ast.Location
	Name  ast.Identifier
	Type  Type
	Value Expression
	Body  Expression
}

func (*LetRec) _expression()              {}
func (e *LetRec) GetLocation() ast.Location { return e.Location }
