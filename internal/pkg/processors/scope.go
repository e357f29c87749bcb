package processors

import (
	"corelower/internal/pkg/ast"
)

// Scope is component C: a stack of currently-defined Source names,
// tracked lexically (spec.md §4.C). It is a plain snapshot/restore map
// rather than a literal push/pop stack — WithScope gives the same
// rollback semantics without needing per-frame bookkeeping.
type Scope struct {
	defined map[ast.Identifier]bool
}

func NewScope() *Scope {
	return &Scope{defined: map[ast.Identifier]bool{}}
}

func (s *Scope) Define(name ast.Identifier) {
	s.defined[name] = true
}

func (s *Scope) DefineAll(names []ast.Identifier) {
	for _, n := range names {
		s.Define(n)
	}
}

func (s *Scope) IsDefined(name ast.Identifier) bool {
	return s.defined[name]
}

// Names returns every name currently defined, in no particular order —
// used to seed a nested scope (e.g. a lambda's body) with its enclosing
// one.
func (s *Scope) Names() []ast.Identifier {
	names := make([]ast.Identifier, 0, len(s.defined))
	for n := range s.defined {
		names = append(names, n)
	}
	return names
}

// WithScope runs action; any Define performed by action is rolled back
// once it returns, restoring the environment to its pre-call snapshot
// (spec.md §4.C). The statement lowerer does not call it: it seeds a new
// Scope from Names() for each nested block instead.
func (s *Scope) WithScope(action func()) {
	snapshot := make(map[ast.Identifier]bool, len(s.defined))
	for k, v := range s.defined {
		snapshot[k] = v
	}
	action()
	s.defined = snapshot
}
