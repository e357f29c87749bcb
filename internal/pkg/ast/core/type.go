// Package core declares the Core AST: the pure, typed lambda-calculus
// intermediate representation this module lowers Source programs into.
package core

import (
	"corelower/internal/pkg/ast"
)

// Type is a Core type. Sealed: type variable, int, bool, list(T),
// tuple(T…), curried function type (spec.md §3).
type Type interface {
	_coreType()
	GetLocation() ast.Location
}

// TypeVar is a fresh type hole minted by the fresh-name supply (component
// A) or a type variable preserved from a Source annotation. The lowerer
// never unifies it itself — it relies on the external Core type checker
// to solve it (spec.md §9).
type TypeVar struct {
	ast.Location
	Name ast.TypeVarName
}

func (*TypeVar) _coreType()              {}
func (t *TypeVar) GetLocation() ast.Location { return t.Location }

type TInt struct{ ast.Location }

func (*TInt) _coreType()              {}
func (t *TInt) GetLocation() ast.Location { return t.Location }

type TBool struct{ ast.Location }

func (*TBool) _coreType()              {}
func (t *TBool) GetLocation() ast.Location { return t.Location }

type TList struct {
	ast.Location
	Elem Type
}

func (*TList) _coreType()              {}
func (t *TList) GetLocation() ast.Location { return t.Location }

type TTuple struct {
	ast.Location
	Items []Type
}

func (*TTuple) _coreType()              {}
func (t *TTuple) GetLocation() ast.Location { return t.Location }

// TFunc is a curried function type built from N argument types and a
// return type (spec.md §3).
type TFunc struct {
	ast.Location
	Params []Type
	Return Type
}

func (*TFunc) _coreType()              {}
func (t *TFunc) GetLocation() ast.Location { return t.Location }

