package common

import (
	"fmt"
	"runtime"

	"corelower/internal/pkg/ast"

	"github.com/pkg/errors"
)

// moduleTag is attached to every error that escapes the pass, per spec.md §7.
const moduleTag = "Source→Core"

// Kind discriminates the three error taxonomies spec.md §7 names.
type Kind int

const (
	// KindSemantic: the Source program violates a restriction this pass
	// enforces (str outside main, matmul, float div, starred expr, ...).
	KindSemantic Kind = iota
	// KindType: a builtin received too few arguments or an argument of
	// disallowed static type.
	KindType
	// KindInternal: an invariant-breaking condition that should not occur
	// on input that passed preconditions.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindSemantic:
		return "semantic error"
	case KindType:
		return "type error"
	case KindInternal:
		return "internal error"
	default:
		return "error"
	}
}

// Error is the one error type that escapes the pass. It always carries the
// nearest enclosing Location and the module tag (spec.md §7: "each error is
// wrapped with the module tag and the nearest enclosing source location
// before it escapes the pass").
type Error struct {
	Kind     Kind
	Location ast.Location
	Message  string
	cause    error
}

func (e *Error) Error() string {
	if e.Location.IsEmpty() {
		return fmt.Sprintf("%s: [%s] %s", moduleTag, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: [%s] %s: %s", moduleTag, e.Kind, e.Location.CursorString(), e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Semantic reports a semantic error at loc, e.g. `str` used outside the
// entry function's signature,
// a starred argument, an expression-statement, a function with no
// reachable return.
func Semantic(loc ast.Location, format string, args ...any) error {
	return &Error{Kind: KindSemantic, Location: loc, Message: fmt.Sprintf(format, args...)}
}

// TypeErr reports a type error at loc, e.g. variadic max/min called with
// arity < 2, or enumerate called with other than one argument.
func TypeErr(loc ast.Location, format string, args ...any) error {
	return &Error{Kind: KindType, Location: loc, Message: fmt.Sprintf(format, args...)}
}

// Internal reports an invariant-breaking condition. It captures the call
// site the way the teacher's NewCompilerError does, so a bug in the
// lowerer itself is traceable even though it "should not occur".
func Internal(loc ast.Location, format string, args ...any) error {
	_, file, line, _ := runtime.Caller(1)
	msg := fmt.Sprintf(format, args...)
	return &Error{
		Kind:     KindInternal,
		Location: loc,
		Message:  fmt.Sprintf("%s (%s:%d)", msg, file, line),
	}
}

// Wrap attaches loc and the module tag to an error surfaced by an external
// collaborator (the lint checker, the variable analyzer, the Core type
// checker), preserving the original error as its cause.
func Wrap(loc ast.Location, cause error, context string) error {
	if cause == nil {
		return nil
	}
	return &Error{
		Kind:     KindInternal,
		Location: loc,
		Message:  errors.Wrap(cause, context).Error(),
		cause:    cause,
	}
}
