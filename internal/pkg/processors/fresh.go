// Package processors implements components A–I of the Source→Core
// lowering pass: the hard part of this module (spec.md §§1, 4).
package processors

import (
	"fmt"

	"corelower/internal/pkg/ast"
	"corelower/internal/pkg/ast/core"
	"corelower/internal/pkg/common"
	"corelower/internal/pkg/config"
)

// NameSupply is component A: a fresh-name supply. It advances a monotonic
// counter and is infallible (spec.md §4.A). The Orchestrator owns exactly
// one NameSupply per run and discards it afterward (spec.md §3
// Lifecycle) — re-entrancy is forbidden, so a NameSupply must never be
// shared across concurrent runs. It also carries the run's Config and Log,
// since all three are single-instance-per-run and every lowering function
// already threads a *NameSupply through.
type NameSupply struct {
	varCounter  uint64
	typeCounter uint64
	Config      *config.Config
	Log         *common.LogWriter
}

func NewNameSupply() *NameSupply {
	return &NameSupply{Config: config.Default()}
}

// NewNameSupplyWithConfig is used by the Orchestrator when a
// corelower.toml was found for the run.
func NewNameSupplyWithConfig(cfg *config.Config) *NameSupply {
	return &NameSupply{Config: cfg}
}

// FreshVar produces a name that cannot collide with any Source
// identifier (invariant 3): Source identifiers never begin with
// ast.FreshNamePrefix.
func (s *NameSupply) FreshVar() ast.Identifier {
	s.varCounter++
	return ast.Identifier(fmt.Sprintf("%sv%d", ast.FreshNamePrefix, s.varCounter))
}

// FreshType produces a fresh Core type variable — a hole for the external
// Core type checker to solve (spec.md §9).
func (s *NameSupply) FreshType(loc ast.Location) *core.TypeVar {
	s.typeCounter++
	return &core.TypeVar{
		Location: loc,
		Name:     ast.TypeVarName(fmt.Sprintf("%st%d", ast.FreshNamePrefix, s.typeCounter)),
	}
}
