package processors

import (
	"corelower/internal/pkg/ast"
	"corelower/internal/pkg/ast/source"
	"corelower/internal/pkg/common"
)

// CheckPreconditions is the external lint checker the Orchestrator
// (component I) runs before any lowering: a Source program that violates
// one of these restrictions is rejected before component A ever runs
// (spec.md §4.I step 1). It enforces the loop restrictions spec.md names:
// no `return` inside a loop body, and no assignment to (or through) the
// loop's own target names within its body.
func CheckPreconditions(prog *source.Program) error {
	for _, item := range prog.Items {
		fn, ok := item.(*source.FuncDef)
		if !ok {
			continue
		}
		if err := checkBlock(fn.Body, false); err != nil {
			return err
		}
	}
	return nil
}

func checkBlock(stmts []source.Statement, inLoop bool) error {
	for _, stmt := range stmts {
		switch stmt := stmt.(type) {
		case *source.Return:
			if inLoop {
				return common.Semantic(stmt.Location, "return is not allowed inside a for loop")
			}
		case *source.If:
			if err := checkBlock(stmt.Then, inLoop); err != nil {
				return err
			}
			if err := checkBlock(stmt.Else, inLoop); err != nil {
				return err
			}
		case *source.For:
			loopNames := source.Names(stmt.Target)
			if err := checkNoTargetWrite(stmt.Body, loopNames); err != nil {
				return err
			}
			if err := checkBlock(stmt.Body, true); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkNoTargetWrite rejects any assignment, augmented assignment, or
// append whose target re-binds one of the loop's own iteration names —
// spec.md's restriction against mutating or leaking the loop counter.
func checkNoTargetWrite(stmts []source.Statement, loopNames []ast.Identifier) error {
	for _, stmt := range stmts {
		var target source.Target
		switch stmt := stmt.(type) {
		case *source.AnnAssign:
			target = stmt.Target
		case *source.AugAssign:
			target = stmt.Target
		case *source.Append:
			if t, ok := source.AsTarget(stmt.TargetExpr); ok {
				target = t
			}
		case *source.If:
			if err := checkNoTargetWrite(stmt.Then, loopNames); err != nil {
				return err
			}
			if err := checkNoTargetWrite(stmt.Else, loopNames); err != nil {
				return err
			}
			continue
		case *source.For:
			if err := checkNoTargetWrite(stmt.Body, loopNames); err != nil {
				return err
			}
			continue
		default:
			continue
		}
		if target == nil {
			continue
		}
		for _, written := range source.Names(target) {
			if common.Contains(loopNames, written) {
				return common.Semantic(target.GetLocation(), "assignment to loop variable %q is not allowed", written)
			}
		}
	}
	return nil
}
