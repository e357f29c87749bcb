// Package source declares the Source AST: the restricted imperative,
// dynamically typed, indentation-structured input language this module
// lowers to Core. It is owned conceptually by the (external) parser; this
// package only declares the shape the lowering pass consumes.
package source

import (
	"corelower/internal/pkg/ast"
)

// Type is a Source type annotation. Only a handful of shapes are legal in
// the position the Type translator (component D) is asked to translate;
// TStr and TSideEffect exist so the translator can reject them with a
// located error rather than panic on an unrecognized case.
type Type interface {
	_sourceType()
	GetLocation() ast.Location
}

type TypeVar struct {
	ast.Location
	Name ast.Identifier
}

func (*TypeVar) _sourceType() {}
func (t *TypeVar) GetLocation() ast.Location { return t.Location }

type TInt struct{ ast.Location }

func (*TInt) _sourceType()            {}
func (t *TInt) GetLocation() ast.Location { return t.Location }

type TBool struct{ ast.Location }

func (*TBool) _sourceType()            {}
func (t *TBool) GetLocation() ast.Location { return t.Location }

type TList struct {
	ast.Location
	Elem Type
}

func (*TList) _sourceType()            {}
func (t *TList) GetLocation() ast.Location { return t.Location }

type TTuple struct {
	ast.Location
	Items []Type
}

func (*TTuple) _sourceType()            {}
func (t *TTuple) GetLocation() ast.Location { return t.Location }

// TCallable is a Source function type: N argument types plus a return
// type, translated to a curried Core TFunc by the type translator.
type TCallable struct {
	ast.Location
	Args []Type
	Ret  Type
}

func (*TCallable) _sourceType()            {}
func (t *TCallable) GetLocation() ast.Location { return t.Location }

// TStr marks the Source `str` type. Legal only in the entry function's
// (`solve`'s) parameter and return types; the type translator rejects it
// everywhere else (spec.md §4.D).
type TStr struct{ ast.Location }

func (*TStr) _sourceType()            {}
func (t *TStr) GetLocation() ast.Location { return t.Location }

// TSideEffect marks a type whose values may only appear as an
// expression-statement (e.g. a raw `print`/`input` call's result type);
// the type translator rejects it anywhere else (spec.md §4.D).
type TSideEffect struct{ ast.Location }

func (*TSideEffect) _sourceType()            {}
func (t *TSideEffect) GetLocation() ast.Location { return t.Location }
