package source

import (
	"corelower/internal/pkg/ast"
)

// Expression is a pure or impure Source expression. Sealed: every
// concrete case is listed in spec.md §3.
type Expression interface {
	_expression()
	GetLocation() ast.Location
}

// BoolOpKind names the three boolean connectives spec.md §4.E lowers to
// Core's And/Or/Implies builtins.
type BoolOpKind int

const (
	BoolAnd BoolOpKind = iota
	BoolOr
	BoolImplies
)

// BinOpKind names the arithmetic/bitwise binary operators. MatMult and Div
// (true division) are legal to parse but the expression lowerer rejects
// them as semantic errors (spec.md §4.E).
type BinOpKind int

const (
	OpAdd BinOpKind = iota
	OpSub
	OpMul
	OpDiv // true division — rejected
	OpFloorDiv
	OpMod
	OpBitAnd
	OpBitOr
	OpBitXor
	OpLShift
	OpRShift
	OpMatMult // rejected
	OpMax
	OpMin
)

// UnaryOpKind names the four unary operators spec.md §4.E enumerates.
type UnaryOpKind int

const (
	UnaryInvert UnaryOpKind = iota
	UnaryNot
	UnaryNegate
	UnaryPlus
)

// CompareOpKind names a chained-comparison operator. Chains are built two
// operands at a time (spec.md §3): `a < b < c` parses as nested Compare
// nodes, not one N-ary node.
type CompareOpKind int

const (
	CmpLt CompareOpKind = iota
	CmpLe
	CmpGt
	CmpGe
	CmpEq
	CmpNe
	CmpIs
	CmpIsNot
	CmpIn
	CmpNotIn
)

type Var struct {
	ast.Location
	Name ast.Identifier
}

func (*Var) _expression()              {}
func (e *Var) GetLocation() ast.Location { return e.Location }

type ConstInt struct {
	ast.Location
	Value int64
}

func (*ConstInt) _expression()              {}
func (e *ConstInt) GetLocation() ast.Location { return e.Location }

type ConstBool struct {
	ast.Location
	Value bool
}

func (*ConstBool) _expression()              {}
func (e *ConstBool) GetLocation() ast.Location { return e.Location }

// ConstNone is Source's `None` literal; it lowers to the Core empty tuple
// (spec.md §4.E).
type ConstNone struct{ ast.Location }

func (*ConstNone) _expression()              {}
func (e *ConstNone) GetLocation() ast.Location { return e.Location }

// ConstBuiltin names a library primitive used as a first-class value (not
// necessarily called immediately), e.g. passed to `map`.
type ConstBuiltin struct {
	ast.Location
	Name ast.Identifier
}

func (*ConstBuiltin) _expression()              {}
func (e *ConstBuiltin) GetLocation() ast.Location { return e.Location }

type BoolOp struct {
	ast.Location
	Op          BoolOpKind
	Left, Right Expression
}

func (*BoolOp) _expression()              {}
func (e *BoolOp) GetLocation() ast.Location { return e.Location }

type BinOp struct {
	ast.Location
	Op          BinOpKind
	Left, Right Expression
}

func (*BinOp) _expression()              {}
func (e *BinOp) GetLocation() ast.Location { return e.Location }

type UnaryOp struct {
	ast.Location
	Op      UnaryOpKind
	Operand Expression
}

func (*UnaryOp) _expression()              {}
func (e *UnaryOp) GetLocation() ast.Location { return e.Location }

// Param is a typed lambda/function parameter.
type Param struct {
	Name ast.Identifier
	Type Type
}

type Lambda struct {
	ast.Location
	Params []Param
	Body   Expression
}

func (*Lambda) _expression()              {}
func (e *Lambda) GetLocation() ast.Location { return e.Location }

type IfExp struct {
	ast.Location
	Cond, Then, Else Expression
}

func (*IfExp) _expression()              {}
func (e *IfExp) GetLocation() ast.Location { return e.Location }

// ListComp is a single-generator list comprehension with an optional
// filter predicate: `[head for target in iter if filter]`.
type ListComp struct {
	ast.Location
	Head   Expression
	Target Target
	Iter   Expression
	Filter Expression // nil if absent
}

func (*ListComp) _expression()              {}
func (e *ListComp) GetLocation() ast.Location { return e.Location }

// Compare is one link of a comparison chain: two operands, one operator.
type Compare struct {
	ast.Location
	Op          CompareOpKind
	Left, Right Expression
}

func (*Compare) _expression()              {}
func (e *Compare) GetLocation() ast.Location { return e.Location }

type Call struct {
	ast.Location
	Func Expression
	Args []Expression
}

func (*Call) _expression()              {}
func (e *Call) GetLocation() ast.Location { return e.Location }

// Attribute is a method-like call `receiver.method(args...)`:
// `count`, `index`, `copy`, `append`, `split`.
type Attribute struct {
	ast.Location
	Receiver Expression
	Method   ast.Identifier
	Args     []Expression
}

func (*Attribute) _expression()              {}
func (e *Attribute) GetLocation() ast.Location { return e.Location }

type Subscript struct {
	ast.Location
	Seq, Index Expression
}

func (*Subscript) _expression()              {}
func (e *Subscript) GetLocation() ast.Location { return e.Location }

// SubscriptSlice is `seq[lo:hi:step]`; any of the three may be absent.
type SubscriptSlice struct {
	ast.Location
	Seq            Expression
	Lo, Hi, Step   Expression // nil if absent
}

func (*SubscriptSlice) _expression()              {}
func (e *SubscriptSlice) GetLocation() ast.Location { return e.Location }

// Starred is `*xs`; always a semantic error when lowered (spec.md §4.E).
type Starred struct {
	ast.Location
	Inner Expression
}

func (*Starred) _expression()              {}
func (e *Starred) GetLocation() ast.Location { return e.Location }

// ListLit is `[e0, e1, ...]` with a required element type annotation
// (needed because an empty list has no other source of its element type).
type ListLit struct {
	ast.Location
	ElemType Type
	Items    []Expression
}

func (*ListLit) _expression()              {}
func (e *ListLit) GetLocation() ast.Location { return e.Location }

type TupleLit struct {
	ast.Location
	Items []Expression
}

func (*TupleLit) _expression()              {}
func (e *TupleLit) GetLocation() ast.Location { return e.Location }
