package core

// Program is a whole Core program: Body is a nested chain of toplevel
// bindings (a LetRec per Source function, a Let chain per annotated
// assignment) whose innermost body is the empty tuple, and Result is a
// separate expression — by convention a reference to `solve` (spec.md §3,
// §4.I).
type Program struct {
	Body   Expression
	Result Expression
}
