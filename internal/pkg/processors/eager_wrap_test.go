package processors

import (
	"testing"

	"corelower/internal/pkg/ast/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ifApp(cond, then, els core.Expression) *core.App {
	return &core.App{
		Func: &core.LitBuiltin{Name: core.BuiltinIf},
		Args: []core.Expression{cond, then, els},
	}
}

// wrappedIf asserts e is the "(if p (λ().a) (λ().b)) ()" shape EagerWrap
// must produce for a rewritten if, and returns the inner 3-arg if
// application for further inspection.
func wrappedIf(t *testing.T, e core.Expression) *core.App {
	t.Helper()
	outer, ok := e.(*core.App)
	require.True(t, ok, "want the outer forcing call, got %T", e)
	assert.Empty(t, outer.Args, "the forcing call takes zero arguments")
	inner, ok := outer.Func.(*core.App)
	require.True(t, ok, "want the rewritten if application as the forcing call's callee, got %T", outer.Func)
	require.Len(t, inner.Args, 3)
	return inner
}

func TestEagerWrapWrapsIfBranchesAndForcesTheResult(t *testing.T) {
	e := ifApp(&core.Var{Name: "c"}, &core.LitInt{Value: 1}, &core.LitInt{Value: 2})
	inner := wrappedIf(t, EagerWrap(e))

	thenThunk, ok := inner.Args[1].(*core.Lambda)
	require.True(t, ok, "the then branch must become a nullary lambda")
	assert.Empty(t, thenThunk.Params)
	lit, ok := thenThunk.Body.(*core.LitInt)
	require.True(t, ok)
	assert.Equal(t, int64(1), lit.Value)

	elseThunk, ok := inner.Args[2].(*core.Lambda)
	require.True(t, ok, "the else branch must become a nullary lambda")
	assert.Empty(t, elseThunk.Params)
}

func TestEagerWrapLeavesNonIfApplicationsAlone(t *testing.T) {
	e := &core.App{
		Func: &core.LitBuiltin{Name: core.BuiltinAdd},
		Args: []core.Expression{&core.Var{Name: "a"}, &core.Var{Name: "b"}},
	}
	wrapped := EagerWrap(e)

	app, ok := wrapped.(*core.App)
	require.True(t, ok)
	_, isVar := app.Args[0].(*core.Var)
	assert.True(t, isVar, "a non-if application's arguments must not be thunked")
}

func TestEagerWrapRecursesBottomUpThroughNestedIf(t *testing.T) {
	inner := ifApp(&core.Var{Name: "c2"}, &core.LitInt{Value: 1}, &core.LitInt{Value: 2})
	outer := ifApp(&core.Var{Name: "c1"}, inner, &core.LitInt{Value: 3})

	outerIf := wrappedIf(t, EagerWrap(outer))
	thenThunk := outerIf.Args[1].(*core.Lambda)
	// the nested if must itself be fully rewritten (thunked branches, and
	// forced with its own trailing call) before being thunked again by
	// the outer if.
	_ = wrappedIf(t, thenThunk.Body)
}

func TestEagerWrapRecursesThroughLetAndLambda(t *testing.T) {
	e := &core.Let{
		Name:  "x",
		Value: ifApp(&core.Var{Name: "c"}, &core.LitInt{Value: 1}, &core.LitInt{Value: 2}),
		Body: &core.Lambda{
			Params: []core.Param{{Name: "y"}},
			Body:   ifApp(&core.Var{Name: "c2"}, &core.LitInt{Value: 3}, &core.LitInt{Value: 4}),
		},
	}
	wrapped := EagerWrap(e).(*core.Let)

	valueIf := wrappedIf(t, wrapped.Value)
	_, valueThenIsThunk := valueIf.Args[1].(*core.Lambda)
	assert.True(t, valueThenIsThunk)

	lambda, ok := wrapped.Body.(*core.Lambda)
	require.True(t, ok)
	bodyIf := wrappedIf(t, lambda.Body)
	_, bodyThenIsThunk := bodyIf.Args[1].(*core.Lambda)
	assert.True(t, bodyThenIsThunk)
}

func TestEagerWrapRecursesThroughLetRecAndTuple(t *testing.T) {
	e := &core.LetRec{
		Name:  "f",
		Value: &core.Tuple{Items: []core.Expression{ifApp(&core.Var{Name: "c"}, &core.LitInt{Value: 1}, &core.LitInt{Value: 2})}},
		Body:  &core.Var{Name: "f"},
	}
	wrapped := EagerWrap(e).(*core.LetRec)

	tup, ok := wrapped.Value.(*core.Tuple)
	require.True(t, ok)
	require.Len(t, tup.Items, 1)
	inner := wrappedIf(t, tup.Items[0])
	_, isThunk := inner.Args[1].(*core.Lambda)
	assert.True(t, isThunk)
}

func TestEagerWrapLeafNodesAreUnchanged(t *testing.T) {
	for _, e := range []core.Expression{
		&core.Var{Name: "x"},
		&core.LitInt{Value: 1},
		&core.LitBool{Value: true},
		&core.LitBuiltin{Name: core.BuiltinAdd},
		&core.LitNil{},
	} {
		assert.Same(t, e, EagerWrap(e))
	}
}
