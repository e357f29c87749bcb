package core

// BuiltinName names one Core primitive. Every name the expression lowerer
// (component E) can ever emit is listed here; the external Core type
// checker carries the static signature for each.
type BuiltinName string

const (
	// Boolean connectives (spec.md §4.E: BoolOp).
	BuiltinAnd      BuiltinName = "and"
	BuiltinOr       BuiltinName = "or"
	BuiltinImplies  BuiltinName = "implies"
	BuiltinNot      BuiltinName = "not"

	// Arithmetic/bitwise (spec.md §4.E: BinOp/UnaryOp).
	BuiltinAdd      BuiltinName = "add"
	BuiltinSub      BuiltinName = "sub"
	BuiltinMul      BuiltinName = "mul"
	BuiltinFloorDiv BuiltinName = "floordiv"
	BuiltinMod      BuiltinName = "mod"
	BuiltinBitAnd   BuiltinName = "bitand"
	BuiltinBitOr    BuiltinName = "bitor"
	BuiltinBitXor   BuiltinName = "bitxor"
	BuiltinLShift   BuiltinName = "lshift"
	BuiltinRShift   BuiltinName = "rshift"
	BuiltinBitNot   BuiltinName = "bitnot"
	BuiltinNegate   BuiltinName = "negate"
	BuiltinMax2     BuiltinName = "max2"
	BuiltinMin2     BuiltinName = "min2"

	// Comparators (spec.md §4.E: Comparison).
	BuiltinLt       BuiltinName = "lt"
	BuiltinLe       BuiltinName = "le"
	BuiltinGt       BuiltinName = "gt"
	BuiltinGe       BuiltinName = "ge"
	BuiltinEqual    BuiltinName = "eq"
	BuiltinNotEqual BuiltinName = "ne"
	BuiltinElem     BuiltinName = "elem"

	// Lists and tuples (spec.md §4.E: List literal, Subscript,
	// Subscript-slice, Append statement, Target assigner).
	BuiltinFoldl  BuiltinName = "foldl"
	BuiltinCons   BuiltinName = "cons"
	BuiltinAt     BuiltinName = "at"
	BuiltinSetAt  BuiltinName = "set_at"
	BuiltinSnoc   BuiltinName = "snoc"
	BuiltinLen    BuiltinName = "len"
	BuiltinMap    BuiltinName = "map"
	BuiltinFilter BuiltinName = "filter"
	BuiltinSorted  BuiltinName = "sorted"
	BuiltinReversed BuiltinName = "reversed"
	BuiltinZip     BuiltinName = "zip"
	BuiltinAll     BuiltinName = "all"
	BuiltinAny     BuiltinName = "any"
	BuiltinSum     BuiltinName = "sum"
	BuiltinProduct BuiltinName = "product"
	// range1/range2/range3 follow Python's `range`: range2(a, b) with
	// a > b is empty, and range3 with a negative step counts down. The
	// lowerer only emits these applications and never evaluates them.
	BuiltinRange1  BuiltinName = "range1"
	BuiltinRange2  BuiltinName = "range2"
	BuiltinRange3  BuiltinName = "range3"
	BuiltinMax1    BuiltinName = "max1" // unary, over a list
	BuiltinMin1    BuiltinName = "min1" // unary, over a list
	BuiltinArgmax  BuiltinName = "argmax"
	BuiltinArgmin  BuiltinName = "argmin"

	// Numeric library primitives (spec.md §4.E builtin table).
	BuiltinAbs         BuiltinName = "abs"
	BuiltinPow         BuiltinName = "pow"
	BuiltinModPow      BuiltinName = "modpow"
	BuiltinDivMod      BuiltinName = "divmod"
	BuiltinCeilDiv     BuiltinName = "ceildiv"
	BuiltinGcd         BuiltinName = "gcd"
	BuiltinLcm         BuiltinName = "lcm"
	BuiltinInt         BuiltinName = "int"
	BuiltinBool        BuiltinName = "bool"
	BuiltinList        BuiltinName = "list"
	BuiltinTuple       BuiltinName = "tuple"
	BuiltinFact        BuiltinName = "fact"
	BuiltinChoose      BuiltinName = "choose"
	BuiltinPermute     BuiltinName = "permute"
	BuiltinMultichoose BuiltinName = "multichoose"
	BuiltinModInv      BuiltinName = "modinv"

	// Method-like calls (spec.md §4.E: Attribute — count/index/copy/append/split).
	BuiltinCount BuiltinName = "count"
	BuiltinIndex BuiltinName = "index"
	BuiltinCopy  BuiltinName = "copy"
	BuiltinSplit BuiltinName = "split"

	// Slice with any subset of lo/hi/step present (spec.md §4.E:
	// Subscript-slice); absent bounds are filled with their identity
	// defaults (0, len(seq), 1) before this is applied.
	BuiltinSlice BuiltinName = "slice"

	// Proj projects the i'th component of a tuple by a literal index
	// (spec.md §4.F: tuple-target destructuring).
	BuiltinProj BuiltinName = "proj"

	// Control (spec.md §4.E IfExp, §4.H Eager-wrap, §9 Open Question a).
	BuiltinIf         BuiltinName = "if"
	BuiltinAssertHint BuiltinName = "assert_hint"

	// Entry-function-only I/O (spec.md §4.E): legal only inside `solve`.
	BuiltinInput BuiltinName = "input"
	BuiltinPrint BuiltinName = "print"
)

// VariadicMaxMin lists the two variadic builtins that the expression
// lowerer desugars into a binary tree (spec.md §4.E: "Variadic max/min of
// arity N≥2 is desugared to the λ-tree").
var VariadicMaxMin = map[BuiltinName]BuiltinName{
	"max": BuiltinMax2,
	"min": BuiltinMin2,
}
