package processors

import (
	"testing"

	"corelower/internal/pkg/ast/core"
	"corelower/internal/pkg/ast/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignTargetName(t *testing.T) {
	ns := NewNameSupply()
	cont := &core.Tuple{}
	e, err := AssignTarget(nameTarget("x"), &core.LitInt{Value: 1}, cont, NewScope(), ns)
	require.NoError(t, err)

	let, ok := e.(*core.Let)
	require.True(t, ok)
	assert.Equal(t, "x", string(let.Name))
	assert.Same(t, cont, let.Body)
}

func TestAssignTargetTupleDestructures(t *testing.T) {
	ns := NewNameSupply()
	scope := NewScope()
	cont := &core.Tuple{}
	target := &source.TupleTarget{Items: []source.Target{nameTarget("a"), nameTarget("b")}}
	value := &core.Var{Name: "whole_value"}

	e, err := AssignTarget(target, value, cont, scope, ns)
	require.NoError(t, err)

	outer, ok := e.(*core.Let)
	require.True(t, ok, "the whole tuple binds to one fresh name first")
	assert.Same(t, value, outer.Value)

	innerA, ok := outer.Body.(*core.Let)
	require.True(t, ok)
	assert.Equal(t, "a", string(innerA.Name))
	projA, ok := innerA.Value.(*core.App)
	require.True(t, ok)
	assert.Equal(t, core.BuiltinProj, projA.Func.(*core.LitBuiltin).Name)

	innerB, ok := innerA.Body.(*core.Let)
	require.True(t, ok)
	assert.Equal(t, "b", string(innerB.Name))
	assert.Same(t, cont, innerB.Body)
}

func TestAssignTargetSubscriptThreadsSetAt(t *testing.T) {
	ns := NewNameSupply()
	scope := scopeWith("xs", "idx")
	target := &source.SubscriptTarget{Seq: nameTarget("xs"), Index: vr("idx")}

	e, err := AssignTarget(target, &core.LitInt{Value: 9}, &core.Tuple{}, scope, ns)
	require.NoError(t, err)

	let, ok := e.(*core.Let)
	require.True(t, ok)
	assert.Equal(t, "xs", string(let.Name))
	app, ok := let.Value.(*core.App)
	require.True(t, ok)
	assert.Equal(t, core.BuiltinSetAt, app.Func.(*core.LitBuiltin).Name)
	require.Len(t, app.Args, 3)
}
