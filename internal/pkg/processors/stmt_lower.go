package processors

import (
	"corelower/internal/pkg/ast"
	"corelower/internal/pkg/ast/core"
	"corelower/internal/pkg/ast/source"
	"corelower/internal/pkg/common"
)

// tailBuilder produces the Core expression a statement list evaluates to
// once it runs out of statements — a function's explicit `return`, a
// for-loop body's final accumulator tuple, or an if-branch's final
// join tuple (spec.md §4.G). It is always invoked on the scope as it
// stands at the point control falls off the end of the list.
type tailBuilder func(scope *Scope) (core.Expression, error)

// mustReturn is the tailBuilder for a function body: reaching it means
// control fell off the end of the body without a `return`, which is a
// semantic error in the Source program.
func mustReturn(loc ast.Location) tailBuilder {
	return func(*Scope) (core.Expression, error) {
		return nil, common.Semantic(loc, "function may not return")
	}
}

// LowerBody is component G's entry point for a function or toplevel
// body: a plain statement list that must end in a `return` on every path.
func LowerBody(stmts []source.Statement, scope *Scope, ns *NameSupply, loc ast.Location) (core.Expression, error) {
	return lowerStmts(stmts, scope, ns, mustReturn(loc), nil)
}

// lowerStmts consumes (current_stmts, remaining_blocks) exactly as spec.md
// §4.G describes: stmts is the current statement list, and pending is the
// list of trailing statement lists of every enclosing context (the
// `conts` a for-loop or if-branch pushes before recursing into its own
// body). The if-statement protocol's read_after set is computed over
// `rest :: pending`, never `rest` alone, so a variable only read past the
// end of an enclosing loop or branch is still counted.
func lowerStmts(stmts []source.Statement, scope *Scope, ns *NameSupply, tail tailBuilder, pending []source.Statement) (core.Expression, error) {
	if len(stmts) == 0 {
		return tail(scope)
	}
	stmt, rest := stmts[0], stmts[1:]

	switch stmt := stmt.(type) {
	case *source.Return:
		return LowerExpr(stmt.Value, scope, ns)

	case *source.AnnAssign:
		value, err := LowerExpr(stmt.Value, scope, ns)
		if err != nil {
			return nil, err
		}
		scope.DefineAll(source.Names(stmt.Target))
		cont, err := lowerStmts(rest, scope, ns, tail, pending)
		if err != nil {
			return nil, err
		}
		return AssignTarget(stmt.Target, value, cont, scope, ns)

	case *source.AugAssign:
		current, err := LowerExpr(source.AsExpression(stmt.Target), scope, ns)
		if err != nil {
			return nil, err
		}
		rhs, err := LowerExpr(stmt.Value, scope, ns)
		if err != nil {
			return nil, err
		}
		name, ok := binOpBuiltin[stmt.Op]
		if !ok {
			return nil, common.Internal(stmt.Location, "unrecognized augmented-assignment op %v", stmt.Op)
		}
		combined := app(stmt.Location, name, current, rhs)
		cont, err := lowerStmts(rest, scope, ns, tail, pending)
		if err != nil {
			return nil, err
		}
		return AssignTarget(stmt.Target, combined, cont, scope, ns)

	case *source.Append:
		target, ok := source.AsTarget(stmt.TargetExpr)
		if !ok {
			return nil, common.Semantic(stmt.Location, "append target must be a name, subscript, or tuple of those")
		}
		seq, err := LowerExpr(stmt.TargetExpr, scope, ns)
		if err != nil {
			return nil, err
		}
		value, err := LowerExpr(stmt.Value, scope, ns)
		if err != nil {
			return nil, err
		}
		updated := app(stmt.Location, core.BuiltinSnoc, seq, value)
		cont, err := lowerStmts(rest, scope, ns, tail, pending)
		if err != nil {
			return nil, err
		}
		return AssignTarget(target, updated, cont, scope, ns)

	case *source.Assert:
		cont, err := lowerStmts(rest, scope, ns, tail, pending)
		if err != nil {
			return nil, err
		}
		if ns.Config != nil && !ns.Config.KeepAssertHints {
			return cont, nil
		}
		pred, err := LowerExpr(stmt.Pred, scope, ns)
		if err != nil {
			return nil, err
		}
		return &core.Let{
			Location: stmt.Location,
			Name:     ns.FreshVar(),
			Type:     ns.FreshType(stmt.Location),
			Value:    app(stmt.Location, core.BuiltinAssertHint, pred),
			Body:     cont,
		}, nil

	case *source.ExprStmt:
		return nil, common.Semantic(stmt.Location, "a bare expression is not a legal statement")

	case *source.For:
		return lowerFor(stmt, rest, scope, ns, tail, pending)

	case *source.If:
		return lowerIf(stmt, rest, scope, ns, tail, pending)

	default:
		return nil, common.Internal(stmt.GetLocation(), "unrecognized source statement %T", stmt)
	}
}

// concatPending is spec.md §4.G's `cont :: conts`: the statements
// immediately following a nested block, prepended onto whatever was
// already pending from further out.
func concatPending(rest, pending []source.Statement) []source.Statement {
	if len(rest) == 0 {
		return pending
	}
	if len(pending) == 0 {
		return rest
	}
	combined := make([]source.Statement, 0, len(rest)+len(pending))
	combined = append(combined, rest...)
	combined = append(combined, pending...)
	return combined
}

// lowerFor implements the for-loop protocol (spec.md §4.G): of the names
// AnalyzeMax reports as possibly written by the body, only those already
// defined before the loop — `ys = [w for w in W if is_defined(w)]` — are
// threaded as a tuple accumulator through a `foldl` over the iterable. A
// name the body only introduces for itself (a loop-local temporary) is
// never live before the loop starts, so it has no initial value to seed
// the fold's accumulator with and must not be threaded. The loop target
// itself is excluded too, since spec.md's preconditions forbid it leaking
// past the loop. The body's own tailBuilder closes the iteration by
// rebuilding the threaded tuple from the (possibly updated) threaded
// names; after the fold returns, each threaded name is rebound from the
// final tuple before lowering what follows the loop.
func lowerFor(stmt *source.For, rest []source.Statement, scope *Scope, ns *NameSupply, tail tailBuilder, pending []source.Statement) (core.Expression, error) {
	loc := stmt.Location
	targetNames := source.Names(stmt.Target)

	writes := AnalyzeMax(stmt.Body).Writes.List()
	var threaded []ast.Identifier
	for _, n := range writes {
		if !common.Contains(targetNames, n) && scope.IsDefined(n) {
			threaded = append(threaded, n)
		}
	}

	iter, err := LowerExpr(stmt.Iter, scope, ns)
	if err != nil {
		return nil, err
	}

	accType := ns.FreshType(loc)
	elemType := ns.FreshType(loc)
	acc := ns.FreshVar()
	elem := ns.FreshVar()

	bodyScope := NewScope()
	bodyScope.DefineAll(scope.Names())
	bodyScope.DefineAll(targetNames)
	bodyScope.DefineAll(threaded)

	loopTail := func(s *Scope) (core.Expression, error) {
		items := make([]core.Expression, len(threaded))
		for i, n := range threaded {
			items[i] = &core.Var{Location: loc, Name: n}
		}
		return &core.Tuple{Location: loc, Items: items}, nil
	}
	bodyPending := concatPending(rest, pending)
	bodyExpr, err := lowerStmts(stmt.Body, bodyScope, ns, loopTail, bodyPending)
	if err != nil {
		return nil, err
	}

	// Bind the fold's (acc, elem) parameters to the threaded names and the
	// loop target before evaluating the body.
	bodyExpr, err = destructureTuple(threaded, &core.Var{Location: loc, Name: acc}, bodyExpr, loc, ns)
	if err != nil {
		return nil, err
	}
	if len(targetNames) == 1 {
		bodyExpr = &core.Let{Location: loc, Name: targetNames[0], Type: elemType, Value: &core.Var{Location: loc, Name: elem}, Body: bodyExpr}
	} else {
		bodyExpr, err = destructureTuple(targetNames, &core.Var{Location: loc, Name: elem}, bodyExpr, loc, ns)
		if err != nil {
			return nil, err
		}
	}

	foldFn := &core.Lambda{
		Location: loc,
		Params:   []core.Param{{Name: acc, Type: accType}, {Name: elem, Type: elemType}},
		Body:     bodyExpr,
	}

	initItems := make([]core.Expression, len(threaded))
	for i, n := range threaded {
		initItems[i] = &core.Var{Location: loc, Name: n}
	}
	initAcc := core.Expression(&core.Tuple{Location: loc, Items: initItems})

	folded := &core.App{
		Location: loc,
		Func:     &core.LitBuiltin{Location: loc, Name: core.BuiltinFoldl},
		Args:     []core.Expression{foldFn, initAcc, iter},
	}

	// every threaded name passed the IsDefined filter above, so it is
	// already defined in the outer scope; this only restates that before
	// lowering what follows.
	scope.DefineAll(threaded)
	cont, err := lowerStmts(rest, scope, ns, tail, pending)
	if err != nil {
		return nil, err
	}
	result, err := destructureTuple(threaded, folded, cont, loc, ns)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// destructureTuple binds each name in names, in order, from value via
// BuiltinProj, then evaluates body. A single-name tuple binds directly
// without a projection (there is nothing to project).
func destructureTuple(names []ast.Identifier, value core.Expression, body core.Expression, loc ast.Location, ns *NameSupply) (core.Expression, error) {
	if len(names) == 0 {
		return body, nil
	}
	if len(names) == 1 {
		return &core.Let{Location: loc, Name: names[0], Type: ns.FreshType(loc), Value: value, Body: body}, nil
	}
	whole := ns.FreshVar()
	inner := body
	for i := len(names) - 1; i >= 0; i-- {
		projected := app(loc, core.BuiltinProj, &core.Var{Location: loc, Name: whole}, &core.LitInt{Location: loc, Value: int64(i)})
		inner = &core.Let{Location: loc, Name: names[i], Type: ns.FreshType(loc), Value: projected, Body: inner}
	}
	return &core.Let{Location: loc, Name: whole, Type: ns.FreshType(loc), Value: value, Body: inner}, nil
}

// lowerIf implements the if-statement protocol (spec.md §4.G). Which of
// the four cases applies is decided by does_always_return on each branch:
//   - both branches always return: each lowers independently against the
//     outer tailBuilder; anything syntactically following the statement
//     is unreachable and is dropped.
//   - exactly one branch always returns: that branch lowers independently
//     against the outer tailBuilder; the other is lowered with the
//     remaining statements appended directly onto it, since control falls
//     through into them only along that path.
//   - neither branch always returns: `w = (read_after ∩ r1) ∪ (read_after
//     ∩ r2)`, where r1/r2 are AnalyzeMin(branch).Writes (spec.md §4.G step
//     2) and read_after is AnalyzeMax over the statements that run once
//     the if completes, at every enclosing level (`rest :: pending`) —
//     never AnalyzeMax over the branches themselves, which would also
//     join branch-local temporaries nothing downstream ever reads.
func lowerIf(stmt *source.If, rest []source.Statement, scope *Scope, ns *NameSupply, tail tailBuilder, pending []source.Statement) (core.Expression, error) {
	loc := stmt.Location
	cond, err := LowerExpr(stmt.Cond, scope, ns)
	if err != nil {
		return nil, err
	}

	thenReturns := DoesAlwaysReturn(stmt.Then)
	elseReturns := DoesAlwaysReturn(stmt.Else)

	branch := func(stmts []source.Statement, alwaysReturns bool) (core.Expression, error) {
		branchScope := NewScope()
		branchScope.DefineAll(scope.Names())
		if alwaysReturns {
			return lowerStmts(stmts, branchScope, ns, tail, pending)
		}
		return lowerStmts(append(append([]source.Statement{}, stmts...), rest...), branchScope, ns, tail, pending)
	}

	if thenReturns || elseReturns {
		thenExpr, err := branch(stmt.Then, thenReturns)
		if err != nil {
			return nil, err
		}
		elseExpr, err := branch(stmt.Else, elseReturns)
		if err != nil {
			return nil, err
		}
		return app(loc, core.BuiltinIf, cond, thenExpr, elseExpr), nil
	}

	r1 := AnalyzeMin(stmt.Then).Writes
	r2 := AnalyzeMin(stmt.Else).Writes
	readAfter := AnalyzeMax(concatPending(rest, pending)).Reads

	joinSet := NewVarSet()
	for _, n := range r1.List() {
		if readAfter.Contains(n) {
			joinSet.Add(n)
		}
	}
	for _, n := range r2.List() {
		if readAfter.Contains(n) {
			joinSet.Add(n)
		}
	}
	joinNames := joinSet.List()

	joinTail := func(s *Scope) (core.Expression, error) {
		items := make([]core.Expression, len(joinNames))
		for i, n := range joinNames {
			items[i] = &core.Var{Location: loc, Name: n}
		}
		return &core.Tuple{Location: loc, Items: items}, nil
	}

	branchPending := concatPending(rest, pending)

	thenScope := NewScope()
	thenScope.DefineAll(scope.Names())
	thenExpr, err := lowerStmts(stmt.Then, thenScope, ns, joinTail, branchPending)
	if err != nil {
		return nil, err
	}
	elseScope := NewScope()
	elseScope.DefineAll(scope.Names())
	elseExpr, err := lowerStmts(stmt.Else, elseScope, ns, joinTail, branchPending)
	if err != nil {
		return nil, err
	}

	ifExpr := app(loc, core.BuiltinIf, cond, thenExpr, elseExpr)

	// joined names new to this if (first written in a branch) must be
	// defined in the outer scope before lowering what follows.
	scope.DefineAll(joinNames)
	cont, err := lowerStmts(rest, scope, ns, tail, pending)
	if err != nil {
		return nil, err
	}
	return destructureTuple(joinNames, ifExpr, cont, loc, ns)
}
