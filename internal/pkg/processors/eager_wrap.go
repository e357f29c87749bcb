package processors

import "corelower/internal/pkg/ast/core"

// EagerWrap is component H. The lowerer (component G) builds every
// `if`/`then`/`else` as a plain 3-argument application of the `if`
// builtin — correct as a tree shape but wrong under eager evaluation,
// since both branches would run. EagerWrap rewrites every such
// application bottom-up, wrapping its second and third arguments in
// nullary lambdas, so only the selected branch's thunk is forced
// (spec.md §4.H). It is the last internal pass before the external
// Core type checker runs as a self-check (spec.md §4.I).
func EagerWrap(e core.Expression) core.Expression {
	switch e := e.(type) {
	case *core.Var, *core.LitInt, *core.LitBool, *core.LitBuiltin, *core.LitNil:
		return e

	case *core.Tuple:
		items := make([]core.Expression, len(e.Items))
		for i, item := range e.Items {
			items[i] = EagerWrap(item)
		}
		return &core.Tuple{Location: e.Location, Items: items}

	case *core.App:
		args := make([]core.Expression, len(e.Args))
		for i, a := range e.Args {
			args[i] = EagerWrap(a)
		}
		fn := EagerWrap(e.Func)
		app := &core.App{Location: e.Location, Func: fn, Args: args}
		if ref, ok := fn.(*core.LitBuiltin); ok && ref.Name == core.BuiltinIf && len(args) == 3 {
			args[1] = thunk(args[1])
			args[2] = thunk(args[2])
			// The rewritten if now returns whichever branch's thunk was
			// selected, not that branch's value — force it immediately by
			// applying the result to zero arguments (spec.md §4.H).
			return &core.App{Location: e.Location, Func: app, Args: nil}
		}
		return app

	case *core.Lambda:
		return &core.Lambda{Location: e.Location, Params: e.Params, Body: EagerWrap(e.Body)}

	case *core.Let:
		return &core.Let{Location: e.Location, Name: e.Name, Type: e.Type, Value: EagerWrap(e.Value), Body: EagerWrap(e.Body)}

	case *core.LetRec:
		return &core.LetRec{Location: e.Location, Name: e.Name, Type: e.Type, Value: EagerWrap(e.Value), Body: EagerWrap(e.Body)}

	default:
		return e
	}
}

func thunk(e core.Expression) core.Expression {
	return &core.Lambda{Location: e.GetLocation(), Params: nil, Body: e}
}
