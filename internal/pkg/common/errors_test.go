package common

import (
	"strings"
	"testing"

	"corelower/internal/pkg/ast"
)

func TestSemanticCarriesLocation(t *testing.T) {
	loc := ast.NewLocation("prog.src", []rune("x = 1\n"), 0, 1)
	err := Semantic(loc, "bad thing: %d", 42)
	if !strings.Contains(err.Error(), "bad thing: 42") {
		t.Fatalf("message missing formatted args: %v", err)
	}
	if !strings.Contains(err.Error(), "Source→Core") {
		t.Fatalf("missing module tag: %v", err)
	}
	if !strings.Contains(err.Error(), "prog.src") {
		t.Fatalf("missing location: %v", err)
	}
}

func TestSemanticEmptyLocation(t *testing.T) {
	err := Semantic(ast.Location{}, "no location here")
	if strings.Contains(err.Error(), ":0:0") {
		t.Fatalf("empty location should not print a bogus cursor: %v", err)
	}
}

func TestInternalCapturesCallSite(t *testing.T) {
	err := Internal(ast.Location{}, "should never happen")
	if !strings.Contains(err.Error(), "errors_test.go") {
		t.Fatalf("Internal should capture its own call site: %v", err)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := TypeErr(ast.Location{}, "arity mismatch")
	wrapped := Wrap(ast.Location{}, cause, "self-check failed")
	if wrapped == nil {
		t.Fatal("Wrap(non-nil) returned nil")
	}
	var e *Error
	if !asError(wrapped, &e) {
		t.Fatalf("Wrap did not return *Error: %T", wrapped)
	}
	if e.Unwrap() == nil {
		t.Fatal("Unwrap should return the original cause")
	}
}

func TestWrapNilIsNil(t *testing.T) {
	if Wrap(ast.Location{}, nil, "context") != nil {
		t.Fatal("Wrap(nil) must return nil")
	}
}

func asError(err error, target **Error) bool {
	e, ok := err.(*Error)
	if ok {
		*target = e
	}
	return ok
}
