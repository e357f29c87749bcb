package processors

import "corelower/internal/pkg/ast/source"

// DoesAlwaysReturn is the external collaborator the if-statement protocol
// (spec.md §4.G) consults to pick among its four cases: it reports
// whether every execution path through stmts ends in a Return, making
// anything after such a path dead code. A `for` loop never contributes —
// its body may execute zero times, so it can never itself guarantee a
// return (and spec.md's preconditions forbid a bare `return` inside one
// anyway).
func DoesAlwaysReturn(stmts []source.Statement) bool {
	for _, stmt := range stmts {
		switch stmt := stmt.(type) {
		case *source.Return:
			return true
		case *source.If:
			if DoesAlwaysReturn(stmt.Then) && DoesAlwaysReturn(stmt.Else) {
				return true
			}
		}
	}
	return false
}
