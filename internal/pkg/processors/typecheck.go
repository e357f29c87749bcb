package processors

import (
	"corelower/internal/pkg/ast/core"
	"corelower/internal/pkg/common"
)

// TypeCheck is the external Core type checker the Orchestrator (component
// I) calls once lowering and Eager-wrap finish, as a self-check (spec.md
// §4.I step 5, §9). Full Hindley–Milner unification over the fresh type
// variables component A and the target assigner mint is out of scope for
// the lowering pass itself — it belongs to whatever consumes this
// module's Core output next. What this self-check verifies here is the
// one shape invariant Eager-wrap is responsible for (spec.md §6: "post-
// Eager-wrap if shape"): every application of the `if` builtin has
// exactly three arguments, the second and third of which are nullary
// lambdas.
func TypeCheck(prog *core.Program) error {
	if err := checkIfShape(prog.Body); err != nil {
		return err
	}
	return checkIfShape(prog.Result)
}

func checkIfShape(e core.Expression) error {
	switch e := e.(type) {
	case *core.App:
		if ref, ok := e.Func.(*core.LitBuiltin); ok && ref.Name == core.BuiltinIf {
			if len(e.Args) != 3 {
				return common.Internal(e.Location, "if application must have exactly 3 arguments")
			}
			for _, branch := range e.Args[1:] {
				lambda, ok := branch.(*core.Lambda)
				if !ok || len(lambda.Params) != 0 {
					return common.Internal(e.Location, "if branches must be nullary lambdas after eager-wrap")
				}
			}
		}
		if err := checkIfShape(e.Func); err != nil {
			return err
		}
		for _, a := range e.Args {
			if err := checkIfShape(a); err != nil {
				return err
			}
		}
	case *core.Lambda:
		return checkIfShape(e.Body)
	case *core.Let:
		if err := checkIfShape(e.Value); err != nil {
			return err
		}
		return checkIfShape(e.Body)
	case *core.LetRec:
		if err := checkIfShape(e.Value); err != nil {
			return err
		}
		return checkIfShape(e.Body)
	case *core.Tuple:
		for _, item := range e.Items {
			if err := checkIfShape(item); err != nil {
				return err
			}
		}
	}
	return nil
}
