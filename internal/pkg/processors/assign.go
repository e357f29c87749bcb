package processors

import (
	"corelower/internal/pkg/ast/core"
	"corelower/internal/pkg/ast/source"
	"corelower/internal/pkg/common"
)

// AssignTarget is component F: it binds value against target, producing
// the Core `let`-chain that defines every name target binds and then
// evaluates cont (spec.md §4.F). value is evaluated at most once — every
// case below references the already-lowered value, never re-lowers
// target's read-expression for the *new* value being stored, only (for a
// subscript target) for the unchanged sibling structure it must thread
// through.
func AssignTarget(target source.Target, value core.Expression, cont core.Expression, scope *Scope, ns *NameSupply) (core.Expression, error) {
	loc := target.GetLocation()
	switch target := target.(type) {
	case *source.NameTarget:
		return &core.Let{
			Location: loc,
			Name:     target.Name,
			Type:     ns.FreshType(loc),
			Value:    value,
			Body:     cont,
		}, nil

	case *source.SubscriptTarget:
		currentSeq, err := LowerExpr(source.AsExpression(target.Seq), scope, ns)
		if err != nil {
			return nil, err
		}
		idx, err := LowerExpr(target.Index, scope, ns)
		if err != nil {
			return nil, err
		}
		updated := app(loc, core.BuiltinSetAt, currentSeq, idx, value)
		return AssignTarget(target.Seq, updated, cont, scope, ns)

	case *source.TupleTarget:
		return assignTuple(target, value, cont, scope, ns)

	default:
		return nil, common.Internal(loc, "unrecognized source target %T", target)
	}
}

// assignTuple binds the whole tuple value to one fresh name, then
// destructures each component through BuiltinProj, left to right, before
// finally evaluating cont.
func assignTuple(target *source.TupleTarget, value core.Expression, cont core.Expression, scope *Scope, ns *NameSupply) (core.Expression, error) {
	loc := target.Location
	whole := ns.FreshVar()

	body := cont
	for i := len(target.Items) - 1; i >= 0; i-- {
		item := target.Items[i]
		projected := app(loc, core.BuiltinProj, &core.Var{Location: loc, Name: whole}, &core.LitInt{Location: loc, Value: int64(i)})
		next, err := AssignTarget(item, projected, body, scope, ns)
		if err != nil {
			return nil, err
		}
		body = next
	}

	return &core.Let{
		Location: loc,
		Name:     whole,
		Type:     ns.FreshType(loc),
		Value:    value,
		Body:     body,
	}, nil
}
