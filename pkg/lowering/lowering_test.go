package lowering

import (
	"strings"
	"testing"

	"corelower/internal/pkg/ast/core"
	"corelower/internal/pkg/ast/source"
	"corelower/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowerRunsTheFullPass(t *testing.T) {
	prog := &source.Program{Items: []source.ToplevelItem{
		&source.FuncDef{
			Name:       source.EntryFunctionName,
			ReturnType: &source.TInt{},
			Body:       []source.Statement{&source.Return{Value: &source.ConstInt{Value: 1}}},
		},
	}}
	result, err := Lower(prog, config.Default())
	require.NoError(t, err)
	_, ok := result.Body.(*core.LetRec)
	assert.True(t, ok)
}

func TestDecodeProgramEmptyItems(t *testing.T) {
	prog, err := DecodeProgram(strings.NewReader(`{"Items": []}`))
	require.NoError(t, err)
	assert.Empty(t, prog.Items)
}

func TestDecodeProgramRejectsConcreteToplevelItems(t *testing.T) {
	// Known limitation (see DESIGN.md): plain encoding/json cannot decode
	// the sealed ToplevelItem interface without a discriminator-based
	// UnmarshalJSON, so a non-empty Items array always errors here.
	_, err := DecodeProgram(strings.NewReader(`{"Items": [{"Name":"solve"}]}`))
	require.Error(t, err)
}

func TestLowerFileTracedDecodeFailureReturnsNoLog(t *testing.T) {
	body := `{"Items": [{"Name":"solve"}]}`
	_, log, err := LowerFileTraced(strings.NewReader(body), config.Default())
	require.Error(t, err, "a JSON decode failure must short-circuit before RunTraced ever runs")
	assert.Nil(t, log, "LowerFileTraced has no LogWriter to report when decoding itself fails")
}
