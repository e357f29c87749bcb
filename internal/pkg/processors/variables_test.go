package processors

import (
	"testing"

	"corelower/internal/pkg/ast"
	"corelower/internal/pkg/ast/source"
)

func nameTarget(n string) *source.NameTarget {
	return &source.NameTarget{Name: ast.Identifier(n)}
}

func vr(n string) *source.Var {
	return &source.Var{Name: ast.Identifier(n)}
}

func constInt(v int64) *source.ConstInt {
	return &source.ConstInt{Value: v}
}

func TestAnalyzeMaxCollectsReadsAndWrites(t *testing.T) {
	stmts := []source.Statement{
		&source.AnnAssign{Target: nameTarget("x"), Value: vr("y")},
		&source.If{
			Cond: vr("x"),
			Then: []source.Statement{
				&source.AnnAssign{Target: nameTarget("z"), Value: constInt(1)},
			},
		},
	}

	analysis := AnalyzeMax(stmts)

	if !analysis.Writes.Contains("x") || !analysis.Writes.Contains("z") {
		t.Fatalf("expected writes {x, z}, got %v", analysis.Writes.List())
	}
	if !analysis.Reads.Contains("y") || !analysis.Reads.Contains("x") {
		t.Fatalf("expected reads {y, x}, got %v", analysis.Reads.List())
	}
}

func TestAnalyzeMaxRecursesIntoLoopBody(t *testing.T) {
	stmts := []source.Statement{
		&source.For{
			Target: nameTarget("i"),
			Iter:   vr("xs"),
			Body: []source.Statement{
				&source.AnnAssign{Target: nameTarget("acc"), Value: vr("acc")},
			},
		},
	}

	analysis := AnalyzeMax(stmts)
	if !analysis.Writes.Contains("acc") {
		t.Fatalf("AnalyzeMax must see writes inside a loop body, got %v", analysis.Writes.List())
	}
	if !analysis.Writes.Contains("i") {
		t.Fatalf("AnalyzeMax must count the loop target as written, got %v", analysis.Writes.List())
	}
}

func TestAnalyzeMinOnlyCountsWritesOnEveryPath(t *testing.T) {
	stmts := []source.Statement{
		&source.If{
			Cond: vr("cond"),
			Then: []source.Statement{
				&source.AnnAssign{Target: nameTarget("z"), Value: constInt(1)},
			},
			Else: nil,
		},
	}

	analysis := AnalyzeMin(stmts)
	if analysis.Writes.Contains("z") {
		t.Fatalf("z is written on only one branch; AnalyzeMin must not report it, got %v", analysis.Writes.List())
	}
}

func TestAnalyzeMinCountsWriteOnBothBranches(t *testing.T) {
	stmts := []source.Statement{
		&source.If{
			Cond: vr("cond"),
			Then: []source.Statement{&source.AnnAssign{Target: nameTarget("z"), Value: constInt(1)}},
			Else: []source.Statement{&source.AnnAssign{Target: nameTarget("z"), Value: constInt(2)}},
		},
	}

	analysis := AnalyzeMin(stmts)
	if !analysis.Writes.Contains("z") {
		t.Fatalf("z is written on every path; AnalyzeMin must report it, got %v", analysis.Writes.List())
	}
}

func TestAnalyzeMinStopsAtReturn(t *testing.T) {
	stmts := []source.Statement{
		&source.AnnAssign{Target: nameTarget("z"), Value: constInt(1)},
		&source.Return{Value: vr("z")},
		&source.AnnAssign{Target: nameTarget("unreachable"), Value: constInt(2)},
	}

	analysis := AnalyzeMin(stmts)
	if analysis.Writes.Contains("unreachable") {
		t.Fatalf("nothing after a return executes, got %v", analysis.Writes.List())
	}
	if !analysis.Writes.Contains("z") {
		t.Fatalf("z is written before the return, got %v", analysis.Writes.List())
	}
}

func TestCollectExprReadsExcludesLambdaParams(t *testing.T) {
	reads := NewVarSet()
	lambda := &source.Lambda{
		Params: []source.Param{{Name: "x"}},
		Body:   &source.BinOp{Op: source.OpAdd, Left: vr("x"), Right: vr("y")},
	}
	collectExprReads(lambda, reads)

	if reads.Contains("x") {
		t.Fatalf("lambda parameter must not leak as an outer read, got %v", reads.List())
	}
	if !reads.Contains("y") {
		t.Fatalf("free variable y must be reported, got %v", reads.List())
	}
}

func TestCollectExprReadsExcludesListCompTarget(t *testing.T) {
	reads := NewVarSet()
	comp := &source.ListComp{
		Head:   vr("x"),
		Target: nameTarget("x"),
		Iter:   vr("xs"),
		Filter: &source.Compare{Op: source.CmpGt, Left: vr("x"), Right: vr("threshold")},
	}
	collectExprReads(comp, reads)

	if reads.Contains("x") {
		t.Fatalf("comprehension's own bound name must not leak, got %v", reads.List())
	}
	if !reads.Contains("xs") || !reads.Contains("threshold") {
		t.Fatalf("expected reads {xs, threshold}, got %v", reads.List())
	}
}

func TestVarSetIntersect(t *testing.T) {
	a := NewVarSet()
	a.AddAll([]ast.Identifier{"x", "y", "z"})
	b := NewVarSet()
	b.AddAll([]ast.Identifier{"y", "z", "w"})

	got := a.Intersect(b).List()
	if len(got) != 2 || got[0] != "y" || got[1] != "z" {
		t.Fatalf("want [y z] in a's order, got %v", got)
	}
}
