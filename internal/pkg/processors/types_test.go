package processors

import (
	"testing"

	"corelower/internal/pkg/ast/core"
	"corelower/internal/pkg/ast/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateTypeScalars(t *testing.T) {
	intT, err := TranslateType(&source.TInt{})
	require.NoError(t, err)
	assert.IsType(t, &core.TInt{}, intT)

	boolT, err := TranslateType(&source.TBool{})
	require.NoError(t, err)
	assert.IsType(t, &core.TBool{}, boolT)
}

func TestTranslateTypeRejectsStr(t *testing.T) {
	_, err := TranslateType(&source.TStr{})
	require.Error(t, err)
}

func TestTranslateTypeListAndTuple(t *testing.T) {
	listT, err := TranslateType(&source.TList{Elem: &source.TInt{}})
	require.NoError(t, err)
	list, ok := listT.(*core.TList)
	require.True(t, ok)
	assert.IsType(t, &core.TInt{}, list.Elem)

	tupleT, err := TranslateType(&source.TTuple{Items: []source.Type{&source.TInt{}, &source.TBool{}}})
	require.NoError(t, err)
	tuple, ok := tupleT.(*core.TTuple)
	require.True(t, ok)
	require.Len(t, tuple.Items, 2)
	assert.IsType(t, &core.TInt{}, tuple.Items[0])
	assert.IsType(t, &core.TBool{}, tuple.Items[1])
}

func TestTranslateTypeCallableCurries(t *testing.T) {
	callT, err := TranslateType(&source.TCallable{
		Args: []source.Type{&source.TInt{}, &source.TBool{}},
		Ret:  &source.TInt{},
	})
	require.NoError(t, err)
	fn, ok := callT.(*core.TFunc)
	require.True(t, ok)
	require.Len(t, fn.Params, 2)
	assert.IsType(t, &core.TInt{}, fn.Return)
}

func TestTranslateEntryTypePermitsStr(t *testing.T) {
	entryT, err := TranslateEntryType(&source.TStr{})
	require.NoError(t, err)
	list, ok := entryT.(*core.TList)
	require.True(t, ok)
	assert.IsType(t, &core.TInt{}, list.Elem, "str lowers to [int]")
}

func TestTranslateEntryTypeRejectsStrInsideCallable(t *testing.T) {
	_, err := TranslateType(&source.TCallable{
		Args: []source.Type{&source.TStr{}},
		Ret:  &source.TInt{},
	})
	require.Error(t, err, "str is only legal at the entry boundary, never nested in a callable")
}

func TestTranslateEntryTypeListOfStr(t *testing.T) {
	entryT, err := TranslateEntryType(&source.TList{Elem: &source.TStr{}})
	require.NoError(t, err)
	outer, ok := entryT.(*core.TList)
	require.True(t, ok)
	inner, ok := outer.Elem.(*core.TList)
	require.True(t, ok, "str nested in a list at the entry boundary still lowers to [int]")
	assert.IsType(t, &core.TInt{}, inner.Elem)
}
