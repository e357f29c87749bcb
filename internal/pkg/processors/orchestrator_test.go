package processors

import (
	"testing"

	"corelower/internal/pkg/ast/core"
	"corelower/internal/pkg/ast/source"
	"corelower/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runningSumProgram builds a small `solve(xs: [int]) -> int` entry
// function that threads a single accumulator through a for loop, the
// same shape exercised piecewise in stmt_lower_test.go.
func runningSumProgram() *source.Program {
	return &source.Program{Items: []source.ToplevelItem{
		&source.FuncDef{
			Name:       source.EntryFunctionName,
			Params:     []source.Param{{Name: "xs", Type: &source.TList{Elem: &source.TInt{}}}},
			ReturnType: &source.TInt{},
			Body: []source.Statement{
				&source.AnnAssign{Target: nameTarget("total"), Type: &source.TInt{}, Value: constInt(0)},
				&source.For{
					Target: nameTarget("i"),
					Iter:   vr("xs"),
					Body: []source.Statement{
						&source.AugAssign{Target: nameTarget("total"), Op: source.OpAdd, Value: vr("i")},
					},
				},
				&source.Return{Value: vr("total")},
			},
		},
	}}
}

func TestRunLowersEntryFunctionToLetRec(t *testing.T) {
	prog, err := Run(runningSumProgram(), config.Default())
	require.NoError(t, err)

	letRec, ok := prog.Body.(*core.LetRec)
	require.True(t, ok, "the entry function must become a toplevel letrec")
	assert.Equal(t, "solve", string(letRec.Name))

	lambda, ok := letRec.Value.(*core.Lambda)
	require.True(t, ok)
	require.Len(t, lambda.Params, 1)
	assert.Equal(t, "xs", string(lambda.Params[0].Name))

	resultVar, ok := prog.Result.(*core.Var)
	require.True(t, ok, "Program.Result must reference the entry function by name")
	assert.Equal(t, "solve", string(resultVar.Name))
}

func TestRunRejectsProgramMissingEntryFunction(t *testing.T) {
	prog := &source.Program{Items: []source.ToplevelItem{
		&source.FuncDef{Name: "helper", Body: []source.Statement{&source.Return{Value: constInt(0)}}},
	}}
	_, err := Run(prog, config.Default())
	require.Error(t, err)
}

func TestRunRejectsPrecondtionViolationBeforeLowering(t *testing.T) {
	prog := &source.Program{Items: []source.ToplevelItem{
		&source.FuncDef{
			Name: source.EntryFunctionName,
			Body: []source.Statement{
				&source.For{
					Target: nameTarget("i"),
					Iter:   vr("xs"),
					Body:   []source.Statement{&source.Return{Value: vr("i")}},
				},
			},
		},
	}}
	_, err := Run(prog, config.Default())
	require.Error(t, err)
}

func TestRunEagerWrapsEveryIfApplication(t *testing.T) {
	prog := &source.Program{Items: []source.ToplevelItem{
		&source.FuncDef{
			Name:       source.EntryFunctionName,
			Params:     []source.Param{{Name: "c", Type: &source.TBool{}}},
			ReturnType: &source.TInt{},
			Body: []source.Statement{
				&source.If{
					Cond: vr("c"),
					Then: []source.Statement{&source.Return{Value: constInt(1)}},
					Else: []source.Statement{&source.Return{Value: constInt(2)}},
				},
			},
		},
	}}
	result, err := Run(prog, config.Default())
	require.NoError(t, err)

	letRec := result.Body.(*core.LetRec)
	lambda := letRec.Value.(*core.Lambda)
	forcingCall, ok := lambda.Body.(*core.App)
	require.True(t, ok)
	assert.Empty(t, forcingCall.Args, "eager-wrap must run as part of Run and force the if's result")
	ifApp, ok := forcingCall.Func.(*core.App)
	require.True(t, ok)
	thenThunk, ok := ifApp.Args[1].(*core.Lambda)
	require.True(t, ok)
	assert.Empty(t, thenThunk.Params)
}

func TestRunWithEagerWrapDisabledLeavesIfUnwrapped(t *testing.T) {
	cfg := &config.Config{KeepAssertHints: true, EagerWrap: false}
	prog := &source.Program{Items: []source.ToplevelItem{
		&source.FuncDef{
			Name:       source.EntryFunctionName,
			Params:     []source.Param{{Name: "c", Type: &source.TBool{}}},
			ReturnType: &source.TInt{},
			Body: []source.Statement{
				&source.If{
					Cond: vr("c"),
					Then: []source.Statement{&source.Return{Value: constInt(1)}},
					Else: []source.Statement{&source.Return{Value: constInt(2)}},
				},
			},
		},
	}}
	result, err := Run(prog, cfg)
	require.NoError(t, err)

	letRec := result.Body.(*core.LetRec)
	lambda := letRec.Value.(*core.Lambda)
	ifApp, ok := lambda.Body.(*core.App)
	require.True(t, ok)
	_, thenIsLambda := ifApp.Args[1].(*core.Lambda)
	assert.False(t, thenIsLambda, "with eager-wrap disabled the branches must stay bare expressions")
}

func TestRunTracedSucceedsWithoutErrors(t *testing.T) {
	prog, log, err := RunTraced(runningSumProgram(), config.Default())
	require.NoError(t, err)
	require.NotNil(t, prog)
	assert.False(t, log.HasErrors())
	assert.NotEqual(t, log.RunID().String(), "00000000-0000-0000-0000-000000000000")
}

func TestRunTracedLogCapturesFailure(t *testing.T) {
	prog := &source.Program{Items: []source.ToplevelItem{
		&source.FuncDef{Name: "helper"},
	}}
	_, log, err := RunTraced(prog, config.Default())
	require.Error(t, err)
	assert.True(t, log.HasErrors(), "a failed run must record its error on the LogWriter")
	assert.Len(t, log.Errors(), 1)
}

func TestRunDefaultsConfigWhenNil(t *testing.T) {
	_, err := Run(runningSumProgram(), nil)
	require.NoError(t, err, "Run must fall back to config.Default() when cfg is nil")
}
