package processors

import (
	"corelower/internal/pkg/ast"
	"corelower/internal/pkg/ast/core"
	"corelower/internal/pkg/ast/source"
	"corelower/internal/pkg/common"
	"corelower/internal/pkg/config"
)

// Run is component I, the Orchestrator: it drives the whole pass end to
// end over one Source program (spec.md §4.I). It discards the run's trace
// log; callers that want it (the `--debug` driver, tests asserting on
// step order) should call RunTraced instead.
func Run(prog *source.Program, cfg *config.Config) (*core.Program, error) {
	result, _, err := RunTraced(prog, cfg)
	return result, err
}

// RunTraced is component I with its LogWriter exposed to the caller. It
// runs the six steps numbered below; steps 2–4 share one trace line, and
// steps 5 and 6 (each with its own trace line) run only when
// cfg.EagerWrap is set.
//
//  1. the external lint checker (CheckPreconditions) rejects a malformed
//     program before any lowering begins;
//  2. one NameSupply and one toplevel Scope are created and shared for
//     the run's lifetime (spec.md §3 Lifecycle);
//  3. every toplevel item lowers to a Core `let`/`letrec`, each nested
//     inside the next, building up the Program.Body chain;
//  4. the entry function's own name becomes Program.Result (spec.md §4.I
//     step 3);
//  5. Eager-wrap (component H) rewrites every `if` application bottom-up;
//  6. the external Core type checker runs as a self-check before the
//     Program is returned.
func RunTraced(prog *source.Program, cfg *config.Config) (*core.Program, *common.LogWriter, error) {
	log := common.NewLogWriter()

	log.Trace("step 1: checking preconditions over %d toplevel items", len(prog.Items))
	if err := CheckPreconditions(prog); err != nil {
		log.Err(err)
		return nil, log, err
	}
	if cfg == nil {
		cfg = config.Default()
	}

	ns := NewNameSupplyWithConfig(cfg)
	ns.Log = log
	scope := NewScope()

	var names []ast.Identifier
	for _, item := range prog.Items {
		switch item := item.(type) {
		case *source.ToplevelAssign:
			names = append(names, source.Names(item.Target)...)
		case *source.FuncDef:
			names = append(names, item.Name)
		}
	}
	scope.DefineAll(names)

	_, entryFound := common.Find(func(item source.ToplevelItem) bool {
		fn, ok := item.(*source.FuncDef)
		return ok && fn.Name == source.EntryFunctionName
	}, prog.Items)
	if !entryFound {
		err := common.Semantic(ast.Location{}, "program has no %q entry function", source.EntryFunctionName)
		log.Err(err)
		return nil, log, err
	}

	log.Trace("step 2-4: lowering %d toplevel items, entry function %q", len(prog.Items), source.EntryFunctionName)
	body, err := lowerToplevel(prog.Items, scope, ns)
	if err != nil {
		log.Err(err)
		return nil, log, err
	}

	result := core.Expression(&core.Var{Name: source.EntryFunctionName})
	if cfg.EagerWrap {
		log.Trace("step 5: eager-wrap")
		body = EagerWrap(body)
		result = EagerWrap(result)
	}

	coreProg := &core.Program{Body: body, Result: result}
	if cfg.EagerWrap {
		log.Trace("step 6: core self-check")
		if err := TypeCheck(coreProg); err != nil {
			wrapped := common.Wrap(ast.Location{}, err, "Core self-check failed")
			log.Err(wrapped)
			return nil, log, wrapped
		}
	}
	return coreProg, log, nil
}

func lowerToplevel(items []source.ToplevelItem, scope *Scope, ns *NameSupply) (core.Expression, error) {
	if len(items) == 0 {
		return &core.Tuple{}, nil
	}
	item, rest := items[0], items[1:]

	cont, err := lowerToplevel(rest, scope, ns)
	if err != nil {
		return nil, err
	}

	switch item := item.(type) {
	case *source.ToplevelAssign:
		value, err := LowerExpr(item.Value, scope, ns)
		if err != nil {
			return nil, err
		}
		return AssignTarget(item.Target, value, cont, scope, ns)

	case *source.FuncDef:
		value, err := lowerFuncDef(item, scope, ns)
		if err != nil {
			return nil, err
		}
		fnType, err := funcDefType(item)
		if err != nil {
			return nil, err
		}
		return &core.LetRec{
			Location: item.Location,
			Name:     item.Name,
			Type:     fnType,
			Value:    value,
			Body:     cont,
		}, nil

	default:
		return nil, common.Internal(item.GetLocation(), "unrecognized toplevel item %T", item)
	}
}

func lowerFuncDef(fn *source.FuncDef, outer *Scope, ns *NameSupply) (core.Expression, error) {
	bodyScope := NewScope()
	bodyScope.DefineAll(outer.Names())

	params := make([]core.Param, len(fn.Params))
	for i, p := range fn.Params {
		bodyScope.Define(p.Name)
		var t core.Type
		var err error
		if fn.Name == source.EntryFunctionName {
			t, err = TranslateEntryType(p.Type)
		} else {
			t, err = TranslateType(p.Type)
		}
		if err != nil {
			return nil, err
		}
		params[i] = core.Param{Name: p.Name, Type: t}
	}

	body, err := LowerBody(fn.Body, bodyScope, ns, fn.Location)
	if err != nil {
		return nil, err
	}

	return &core.Lambda{Location: fn.Location, Params: params, Body: body}, nil
}

func funcDefType(fn *source.FuncDef) (core.Type, error) {
	params := make([]core.Type, len(fn.Params))
	for i, p := range fn.Params {
		var t core.Type
		var err error
		if fn.Name == source.EntryFunctionName {
			t, err = TranslateEntryType(p.Type)
		} else {
			t, err = TranslateType(p.Type)
		}
		if err != nil {
			return nil, err
		}
		params[i] = t
	}
	var ret core.Type
	var err error
	if fn.Name == source.EntryFunctionName {
		ret, err = TranslateEntryType(fn.ReturnType)
	} else {
		ret, err = TranslateType(fn.ReturnType)
	}
	if err != nil {
		return nil, err
	}
	return &core.TFunc{Location: fn.Location, Params: params, Return: ret}, nil
}
