package processors

import (
	"corelower/internal/pkg/ast"
	"corelower/internal/pkg/ast/source"
	"corelower/internal/pkg/common"
)

// VarSet is an ordered set of Source names: insertion order of first
// occurrence, no duplicates (spec.md §4.B: "iteration order is the order
// required to make the output deterministic").
type VarSet struct {
	order []ast.Identifier
	seen  map[ast.Identifier]bool
}

func NewVarSet() *VarSet {
	return &VarSet{seen: map[ast.Identifier]bool{}}
}

func (s *VarSet) Add(name ast.Identifier) {
	if s.seen[name] {
		return
	}
	s.seen[name] = true
	s.order = append(s.order, name)
}

func (s *VarSet) AddAll(names []ast.Identifier) {
	for _, n := range names {
		s.Add(n)
	}
}

func (s *VarSet) Contains(name ast.Identifier) bool {
	return s.seen[name]
}

func (s *VarSet) List() []ast.Identifier {
	return s.order
}

// Intersect returns the names present in both sets, in the receiver's
// order.
func (s *VarSet) Intersect(other *VarSet) *VarSet {
	result := NewVarSet()
	for _, n := range s.order {
		if other.Contains(n) {
			result.Add(n)
		}
	}
	return result
}

// Analysis is what component B returns: an over- or under-approximated
// read/write pair (spec.md §4.B).
type Analysis struct {
	Reads  *VarSet
	Writes *VarSet
}

// AnalyzeMax is the (external) variable analyzer's over-approximation:
// every name possibly read or possibly written by stmts, on any path,
// including inside loop bodies and both branches of a conditional
// (spec.md §4.B). The for-loop protocol (spec.md §4.G) uses
// AnalyzeMax(body).Writes to decide which names must be threaded through
// the fold accumulator, because the loop body may run any number of
// times.
func AnalyzeMax(stmts []source.Statement) Analysis {
	reads := NewVarSet()
	writes := NewVarSet()
	walkMax(stmts, reads, writes)
	return Analysis{Reads: reads, Writes: writes}
}

// AnalyzeMin is the (external) variable analyzer's must-analysis: names
// certainly written by stmts on every path (spec.md §4.B). The
// if-statement protocol (spec.md §4.G) uses AnalyzeMin(body).Writes for
// each branch separately, because only a name written on *every* path
// through a branch is safe to assume defined once that branch completes.
func AnalyzeMin(stmts []source.Statement) Analysis {
	reads := NewVarSet()
	walkReads(stmts, reads)
	return Analysis{Reads: reads, Writes: minWrites(stmts)}
}

func minWrites(stmts []source.Statement) *VarSet {
	result := NewVarSet()
	for _, stmt := range stmts {
		switch stmt := stmt.(type) {
		case *source.Return:
			// Nothing after a return executes; its own writes are none.
			return result
		case *source.AnnAssign:
			result.AddAll(source.Names(stmt.Target))
		case *source.AugAssign:
			result.AddAll(source.Names(stmt.Target))
		case *source.Append:
			if t, ok := source.AsTarget(stmt.TargetExpr); ok {
				result.AddAll(source.Names(t))
			}
		case *source.For:
			// The body may run zero times: nothing it writes is certain.
		case *source.If:
			thenWrites := minWrites(stmt.Then)
			elseWrites := minWrites(stmt.Else)
			for _, n := range thenWrites.Intersect(elseWrites).List() {
				result.Add(n)
			}
		case *source.Assert, *source.ExprStmt:
			// No writes.
		}
	}
	return result
}

// walkMax fills reads and writes with every name possibly read/written by
// stmts, recursing unconditionally into every branch and every loop body.
func walkMax(stmts []source.Statement, reads, writes *VarSet) {
	for _, stmt := range stmts {
		switch stmt := stmt.(type) {
		case *source.Return:
			collectExprReads(stmt.Value, reads)
		case *source.AnnAssign:
			collectExprReads(stmt.Value, reads)
			writes.AddAll(source.Names(stmt.Target))
		case *source.AugAssign:
			collectExprReads(source.AsExpression(stmt.Target), reads)
			collectExprReads(stmt.Value, reads)
			writes.AddAll(source.Names(stmt.Target))
		case *source.For:
			collectExprReads(stmt.Iter, reads)
			writes.AddAll(source.Names(stmt.Target))
			walkMax(stmt.Body, reads, writes)
		case *source.If:
			collectExprReads(stmt.Cond, reads)
			walkMax(stmt.Then, reads, writes)
			walkMax(stmt.Else, reads, writes)
		case *source.Assert:
			collectExprReads(stmt.Pred, reads)
		case *source.Append:
			collectExprReads(stmt.TargetExpr, reads)
			collectExprReads(stmt.Value, reads)
			if t, ok := source.AsTarget(stmt.TargetExpr); ok {
				writes.AddAll(source.Names(t))
			}
		case *source.ExprStmt:
			collectExprReads(stmt.Value, reads)
		}
	}
}

func walkReads(stmts []source.Statement, reads *VarSet) {
	writes := NewVarSet() // discarded; walkMax always fills both together
	walkMax(stmts, reads, writes)
}

// collectExprReads adds every Var reference in e to reads, excluding
// names locally bound within e itself (lambda parameters, comprehension
// targets) so a later shadowing read doesn't spuriously widen an outer
// scope's live-variable set.
func collectExprReads(e source.Expression, reads *VarSet) {
	if e == nil {
		return
	}
	switch e := e.(type) {
	case *source.Var:
		reads.Add(e.Name)
	case *source.ConstInt, *source.ConstBool, *source.ConstNone, *source.ConstBuiltin:
	case *source.BoolOp:
		collectExprReads(e.Left, reads)
		collectExprReads(e.Right, reads)
	case *source.BinOp:
		collectExprReads(e.Left, reads)
		collectExprReads(e.Right, reads)
	case *source.UnaryOp:
		collectExprReads(e.Operand, reads)
	case *source.Lambda:
		inner := NewVarSet()
		collectExprReads(e.Body, inner)
		bound := paramNames(e.Params)
		for _, n := range inner.List() {
			if !common.Contains(bound, n) {
				reads.Add(n)
			}
		}
	case *source.IfExp:
		collectExprReads(e.Cond, reads)
		collectExprReads(e.Then, reads)
		collectExprReads(e.Else, reads)
	case *source.ListComp:
		collectExprReads(e.Iter, reads)
		inner := NewVarSet()
		collectExprReads(e.Head, inner)
		if e.Filter != nil {
			collectExprReads(e.Filter, inner)
		}
		bound := source.Names(e.Target)
		for _, n := range inner.List() {
			if !common.Contains(bound, n) {
				reads.Add(n)
			}
		}
	case *source.Compare:
		collectExprReads(e.Left, reads)
		collectExprReads(e.Right, reads)
	case *source.Call:
		collectExprReads(e.Func, reads)
		for _, a := range e.Args {
			collectExprReads(a, reads)
		}
	case *source.Attribute:
		collectExprReads(e.Receiver, reads)
		for _, a := range e.Args {
			collectExprReads(a, reads)
		}
	case *source.Subscript:
		collectExprReads(e.Seq, reads)
		collectExprReads(e.Index, reads)
	case *source.SubscriptSlice:
		collectExprReads(e.Seq, reads)
		collectExprReads(e.Lo, reads)
		collectExprReads(e.Hi, reads)
		collectExprReads(e.Step, reads)
	case *source.Starred:
		collectExprReads(e.Inner, reads)
	case *source.ListLit:
		for _, item := range e.Items {
			collectExprReads(item, reads)
		}
	case *source.TupleLit:
		for _, item := range e.Items {
			collectExprReads(item, reads)
		}
	}
}

func paramNames(params []source.Param) []ast.Identifier {
	return common.Map(func(p source.Param) ast.Identifier { return p.Name }, params)
}
