// Package lowering is the public entry point to the Source→Core lowering
// pass: everything the hard work happens in internal/pkg/processors, and
// this package is the thin wrapper that exposes it, mirroring the
// teacher's own pkg/compiler.go wrapping internal/pkg/processors.
package lowering

import (
	"encoding/json"
	"fmt"
	"io"

	"corelower/internal/pkg/ast/core"
	"corelower/internal/pkg/ast/source"
	"corelower/internal/pkg/common"
	"corelower/internal/pkg/config"
	"corelower/internal/pkg/processors"
)

// Lower runs the full pass over prog (spec.md §4.I), using cfg or
// config.Default() if cfg is nil.
func Lower(prog *source.Program, cfg *config.Config) (*core.Program, error) {
	return processors.Run(prog, cfg)
}

// LowerFile reads a JSON-encoded source.Program from r, lowers it, and
// returns the resulting Core program.
func LowerFile(r io.Reader, cfg *config.Config) (*core.Program, error) {
	prog, err := DecodeProgram(r)
	if err != nil {
		return nil, fmt.Errorf("decoding source program: %w", err)
	}
	return Lower(prog, cfg)
}

// LowerFileTraced is LowerFile with the run's step-by-step LogWriter
// returned alongside the result, for callers (the `--debug` driver flag)
// that want to print it.
func LowerFileTraced(r io.Reader, cfg *config.Config) (*core.Program, *common.LogWriter, error) {
	prog, err := DecodeProgram(r)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding source program: %w", err)
	}
	return processors.RunTraced(prog, cfg)
}

// DecodeProgram decodes a JSON-encoded source.Program. The (external)
// parser this pass is downstream of is expected to emit this shape;
// decoding it is a convenience this package offers for the cmd/corelower
// driver and for tests, not a guarantee about the parser's own format.
func DecodeProgram(r io.Reader) (*source.Program, error) {
	var prog source.Program
	if err := json.NewDecoder(r).Decode(&prog); err != nil {
		return nil, err
	}
	return &prog, nil
}
