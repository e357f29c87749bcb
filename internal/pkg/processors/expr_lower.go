package processors

import (
	"corelower/internal/pkg/ast"
	"corelower/internal/pkg/ast/core"
	"corelower/internal/pkg/ast/source"
	"corelower/internal/pkg/common"
)

var boolOpBuiltin = map[source.BoolOpKind]core.BuiltinName{
	source.BoolAnd:     core.BuiltinAnd,
	source.BoolOr:      core.BuiltinOr,
	source.BoolImplies: core.BuiltinImplies,
}

var binOpBuiltin = map[source.BinOpKind]core.BuiltinName{
	source.OpAdd:      core.BuiltinAdd,
	source.OpSub:      core.BuiltinSub,
	source.OpMul:      core.BuiltinMul,
	source.OpFloorDiv: core.BuiltinFloorDiv,
	source.OpMod:      core.BuiltinMod,
	source.OpBitAnd:   core.BuiltinBitAnd,
	source.OpBitOr:    core.BuiltinBitOr,
	source.OpBitXor:   core.BuiltinBitXor,
	source.OpLShift:   core.BuiltinLShift,
	source.OpRShift:   core.BuiltinRShift,
	source.OpMax:      core.BuiltinMax2,
	source.OpMin:      core.BuiltinMin2,
}

var compareOpBuiltin = map[source.CompareOpKind]core.BuiltinName{
	source.CmpLt: core.BuiltinLt,
	source.CmpLe: core.BuiltinLe,
	source.CmpGt: core.BuiltinGt,
	source.CmpGe: core.BuiltinGe,
	source.CmpEq: core.BuiltinEqual,
	source.CmpNe: core.BuiltinNotEqual,
	source.CmpIs: core.BuiltinEqual,
}

var methodBuiltin = map[ast.Identifier]core.BuiltinName{
	"count":  core.BuiltinCount,
	"index":  core.BuiltinIndex,
	"copy":   core.BuiltinCopy,
	"append": core.BuiltinSnoc,
	"split":  core.BuiltinSplit,
}

// LowerExpr is component E: it translates a Source expression into a Core
// expression, given the surrounding Scope (to validate every Var
// reference is defined — spec.md §4.C) and the run's NameSupply (for the
// fresh binders a desugaring introduces, e.g. the comprehension's bound
// names, `if` stays a 3-arg builtin application here — component H wraps
// its branches in thunks afterward, spec.md §4.H).
func LowerExpr(e source.Expression, scope *Scope, ns *NameSupply) (core.Expression, error) {
	switch e := e.(type) {
	case *source.Var:
		if !scope.IsDefined(e.Name) {
			return nil, common.Semantic(e.Location, "undefined name %q", e.Name)
		}
		return &core.Var{Location: e.Location, Name: e.Name}, nil

	case *source.ConstInt:
		return &core.LitInt{Location: e.Location, Value: e.Value}, nil

	case *source.ConstBool:
		return &core.LitBool{Location: e.Location, Value: e.Value}, nil

	case *source.ConstNone:
		return &core.Tuple{Location: e.Location, Items: nil}, nil

	case *source.ConstBuiltin:
		return &core.LitBuiltin{Location: e.Location, Name: core.BuiltinName(e.Name)}, nil

	case *source.BoolOp:
		left, err := LowerExpr(e.Left, scope, ns)
		if err != nil {
			return nil, err
		}
		right, err := LowerExpr(e.Right, scope, ns)
		if err != nil {
			return nil, err
		}
		name, ok := boolOpBuiltin[e.Op]
		if !ok {
			return nil, common.Internal(e.Location, "unrecognized bool op %v", e.Op)
		}
		return app(e.Location, name, left, right), nil

	case *source.BinOp:
		if e.Op == source.OpDiv {
			return nil, common.Semantic(e.Location, "true division is not supported; use // for integer division")
		}
		if e.Op == source.OpMatMult {
			return nil, common.Semantic(e.Location, "matrix multiplication is not supported")
		}
		left, err := LowerExpr(e.Left, scope, ns)
		if err != nil {
			return nil, err
		}
		right, err := LowerExpr(e.Right, scope, ns)
		if err != nil {
			return nil, err
		}
		name, ok := binOpBuiltin[e.Op]
		if !ok {
			return nil, common.Internal(e.Location, "unrecognized bin op %v", e.Op)
		}
		return app(e.Location, name, left, right), nil

	case *source.UnaryOp:
		operand, err := LowerExpr(e.Operand, scope, ns)
		if err != nil {
			return nil, err
		}
		switch e.Op {
		case source.UnaryPlus:
			x := ns.FreshVar()
			identity := &core.Lambda{
				Location: e.Location,
				Params:   []core.Param{{Name: x, Type: &core.TInt{Location: e.Location}}},
				Body:     &core.Var{Location: e.Location, Name: x},
			}
			return &core.App{Location: e.Location, Func: identity, Args: []core.Expression{operand}}, nil
		case source.UnaryInvert:
			return app(e.Location, core.BuiltinBitNot, operand), nil
		case source.UnaryNot:
			return app(e.Location, core.BuiltinNot, operand), nil
		case source.UnaryNegate:
			return app(e.Location, core.BuiltinNegate, operand), nil
		default:
			return nil, common.Internal(e.Location, "unrecognized unary op %v", e.Op)
		}

	case *source.Lambda:
		params := make([]core.Param, len(e.Params))
		for i, p := range e.Params {
			t, err := TranslateType(p.Type)
			if err != nil {
				return nil, err
			}
			params[i] = core.Param{Name: p.Name, Type: t}
		}
		// Free references inside the lambda body still need the enclosing
		// scope, so the lambda's own params are layered on top of it.
		inner := NewScope()
		inner.DefineAll(scope.Names())
		inner.DefineAll(paramNames(e.Params))
		body, err := LowerExpr(e.Body, inner, ns)
		if err != nil {
			return nil, err
		}
		return &core.Lambda{Location: e.Location, Params: params, Body: body}, nil

	case *source.IfExp:
		cond, err := LowerExpr(e.Cond, scope, ns)
		if err != nil {
			return nil, err
		}
		then, err := LowerExpr(e.Then, scope, ns)
		if err != nil {
			return nil, err
		}
		els, err := LowerExpr(e.Else, scope, ns)
		if err != nil {
			return nil, err
		}
		return app(e.Location, core.BuiltinIf, cond, then, els), nil

	case *source.ListComp:
		return lowerListComp(e, scope, ns)

	case *source.Compare:
		left, err := LowerExpr(e.Left, scope, ns)
		if err != nil {
			return nil, err
		}
		right, err := LowerExpr(e.Right, scope, ns)
		if err != nil {
			return nil, err
		}
		switch e.Op {
		case source.CmpIsNot:
			return app(e.Location, core.BuiltinNot, app(e.Location, core.BuiltinEqual, left, right)), nil
		case source.CmpIn:
			return app(e.Location, core.BuiltinElem, left, right), nil
		case source.CmpNotIn:
			return app(e.Location, core.BuiltinNot, app(e.Location, core.BuiltinElem, left, right)), nil
		default:
			name, ok := compareOpBuiltin[e.Op]
			if !ok {
				return nil, common.Internal(e.Location, "unrecognized compare op %v", e.Op)
			}
			return app(e.Location, name, left, right), nil
		}

	case *source.Call:
		return lowerCall(e, scope, ns)

	case *source.Attribute:
		name, ok := methodBuiltin[e.Method]
		if !ok {
			return nil, common.Semantic(e.Location, "unrecognized method %q", e.Method)
		}
		receiver, err := LowerExpr(e.Receiver, scope, ns)
		if err != nil {
			return nil, err
		}
		args := []core.Expression{receiver}
		for _, a := range e.Args {
			lowered, err := LowerExpr(a, scope, ns)
			if err != nil {
				return nil, err
			}
			args = append(args, lowered)
		}
		return &core.App{Location: e.Location, Func: &core.LitBuiltin{Location: e.Location, Name: name}, Args: args}, nil

	case *source.Subscript:
		seq, err := LowerExpr(e.Seq, scope, ns)
		if err != nil {
			return nil, err
		}
		idx, err := LowerExpr(e.Index, scope, ns)
		if err != nil {
			return nil, err
		}
		return app(e.Location, core.BuiltinAt, seq, idx), nil

	case *source.SubscriptSlice:
		return lowerSlice(e, scope, ns)

	case *source.Starred:
		return nil, common.Semantic(e.Location, "starred expressions are not supported outside of call sites the parser already expands")

	case *source.ListLit:
		elemType, err := TranslateType(e.ElemType)
		if err != nil {
			return nil, err
		}
		var acc core.Expression = &core.LitNil{Location: e.Location, ElemType: elemType}
		for i := len(e.Items) - 1; i >= 0; i-- {
			item, err := LowerExpr(e.Items[i], scope, ns)
			if err != nil {
				return nil, err
			}
			acc = app(e.Location, core.BuiltinCons, item, acc)
		}
		return acc, nil

	case *source.TupleLit:
		items := make([]core.Expression, len(e.Items))
		for i, it := range e.Items {
			lowered, err := LowerExpr(it, scope, ns)
			if err != nil {
				return nil, err
			}
			items[i] = lowered
		}
		return &core.Tuple{Location: e.Location, Items: items}, nil

	default:
		return nil, common.Internal(e.GetLocation(), "unrecognized source expression %T", e)
	}
}

func app(loc ast.Location, name core.BuiltinName, args ...core.Expression) core.Expression {
	return &core.App{Location: loc, Func: &core.LitBuiltin{Location: loc, Name: name}, Args: args}
}

// lowerCall handles the variadic max/min desugaring (spec.md §4.E:
// "Variadic max/min of arity N≥2 is desugared to the λ-tree") and the
// `enumerate` desugaring into `zip(range1(len(xs)), xs)`; every other
// call lowers as a plain Core application.
func lowerCall(e *source.Call, scope *Scope, ns *NameSupply) (core.Expression, error) {
	if ref, ok := e.Func.(*source.ConstBuiltin); ok {
		if pairwise, ok := core.VariadicMaxMin[core.BuiltinName(ref.Name)]; ok {
			if len(e.Args) < 2 {
				return nil, common.TypeErr(e.Location, "%s requires at least 2 arguments, got %d", ref.Name, len(e.Args))
			}
			args := make([]core.Expression, len(e.Args))
			for i, a := range e.Args {
				lowered, err := LowerExpr(a, scope, ns)
				if err != nil {
					return nil, err
				}
				args[i] = lowered
			}
			acc := args[0]
			for _, a := range args[1:] {
				acc = app(e.Location, pairwise, acc, a)
			}
			return acc, nil
		}
		if ref.Name == "enumerate" {
			if len(e.Args) != 1 {
				return nil, common.TypeErr(e.Location, "enumerate takes exactly one argument, got %d", len(e.Args))
			}
			xs, err := LowerExpr(e.Args[0], scope, ns)
			if err != nil {
				return nil, err
			}
			indices := app(e.Location, core.BuiltinRange1, app(e.Location, core.BuiltinLen, xs))
			return app(e.Location, core.BuiltinZip, indices, xs), nil
		}
	}
	fn, err := LowerExpr(e.Func, scope, ns)
	if err != nil {
		return nil, err
	}
	args := make([]core.Expression, len(e.Args))
	for i, a := range e.Args {
		lowered, err := LowerExpr(a, scope, ns)
		if err != nil {
			return nil, err
		}
		args[i] = lowered
	}
	return &core.App{Location: e.Location, Func: fn, Args: args}, nil
}

// lowerSlice fills any absent bound with its identity default before
// applying the unified slice builtin (spec.md §4.E Subscript-slice: 8
// combinations of lo/hi/step presence collapse to one shape here).
func lowerSlice(e *source.SubscriptSlice, scope *Scope, ns *NameSupply) (core.Expression, error) {
	seq, err := LowerExpr(e.Seq, scope, ns)
	if err != nil {
		return nil, err
	}

	lo := core.Expression(&core.LitInt{Location: e.Location, Value: 0})
	if e.Lo != nil {
		lo, err = LowerExpr(e.Lo, scope, ns)
		if err != nil {
			return nil, err
		}
	}

	hi := app(e.Location, core.BuiltinLen, seq)
	if e.Hi != nil {
		hi, err = LowerExpr(e.Hi, scope, ns)
		if err != nil {
			return nil, err
		}
	}

	step := core.Expression(&core.LitInt{Location: e.Location, Value: 1})
	if e.Step != nil {
		step, err = LowerExpr(e.Step, scope, ns)
		if err != nil {
			return nil, err
		}
	}

	return app(e.Location, core.BuiltinSlice, seq, lo, hi, step), nil
}

// lowerListComp desugars `[head for target in iter if filter]` into
// `map(λ target. head, filter(λ target. filter, iter))`, or just the map
// when no filter is present (spec.md §4.E).
func lowerListComp(e *source.ListComp, scope *Scope, ns *NameSupply) (core.Expression, error) {
	iter, err := LowerExpr(e.Iter, scope, ns)
	if err != nil {
		return nil, err
	}
	bound := source.Names(e.Target)
	inner := NewScope()
	inner.DefineAll(scope.Names())
	inner.DefineAll(bound)

	targetType, err := elementTypeOf(e.Target, ns, e.Location)
	if err != nil {
		return nil, err
	}
	params := targetParams(bound, targetType)

	source_ := iter
	if e.Filter != nil {
		filterBody, err := LowerExpr(e.Filter, inner, ns)
		if err != nil {
			return nil, err
		}
		filterLambda := &core.Lambda{Location: e.Location, Params: params, Body: filterBody}
		source_ = app(e.Location, core.BuiltinFilter, filterLambda, iter)
	}
	head, err := LowerExpr(e.Head, inner, ns)
	if err != nil {
		return nil, err
	}
	mapLambda := &core.Lambda{Location: e.Location, Params: params, Body: head}
	return app(e.Location, core.BuiltinMap, mapLambda, source_), nil
}

// elementTypeOf mints a fresh type variable for the comprehension's bound
// name(s): the external Core type checker solves it from the iterable's
// element type (spec.md §9: the lowerer never unifies types itself).
func elementTypeOf(t source.Target, ns *NameSupply, loc ast.Location) (core.Type, error) {
	return ns.FreshType(loc), nil
}

func targetParams(names []ast.Identifier, t core.Type) []core.Param {
	if len(names) == 1 {
		return []core.Param{{Name: names[0], Type: t}}
	}
	params := make([]core.Param, len(names))
	for i, n := range names {
		params[i] = core.Param{Name: n, Type: t}
	}
	return params
}
