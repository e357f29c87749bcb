package source

import (
	"corelower/internal/pkg/ast"
)

// Target is an l-value: the restricted subset of expressions legal on the
// left of an assignment (spec.md §3: name / subscript / tuple pattern).
type Target interface {
	_target()
	GetLocation() ast.Location
}

type NameTarget struct {
	ast.Location
	Name ast.Identifier
}

func (*NameTarget) _target()                 {}
func (t *NameTarget) GetLocation() ast.Location { return t.Location }

// SubscriptTarget is `t[i] = ...`; Seq is itself a Target so subscript
// chains (`t[i][j] = ...`) nest.
type SubscriptTarget struct {
	ast.Location
	Seq   Target
	Index Expression
}

func (*SubscriptTarget) _target()                 {}
func (t *SubscriptTarget) GetLocation() ast.Location { return t.Location }

type TupleTarget struct {
	ast.Location
	Items []Target
}

func (*TupleTarget) _target()                 {}
func (t *TupleTarget) GetLocation() ast.Location { return t.Location }

// AsExpression reinterprets a Target as the read-expression it denotes,
// needed by AugAssign and by the subscript case of the target assigner
// (component F) to read the current value before threading an update.
func AsExpression(t Target) Expression {
	switch t := t.(type) {
	case *NameTarget:
		return &Var{Location: t.Location, Name: t.Name}
	case *SubscriptTarget:
		return &Subscript{Location: t.Location, Seq: AsExpression(t.Seq), Index: t.Index}
	case *TupleTarget:
		items := make([]Expression, len(t.Items))
		for i, item := range t.Items {
			items[i] = AsExpression(item)
		}
		return &TupleLit{Location: t.Location, Items: items}
	default:
		panic("source.AsExpression: unhandled target case")
	}
}

// Names returns every name a target binds, in left-to-right order — used
// by the statement lowerer to `define` them in the scope environment
// before lowering the rest of the block.
func Names(t Target) []ast.Identifier {
	switch t := t.(type) {
	case *NameTarget:
		return []ast.Identifier{t.Name}
	case *SubscriptTarget:
		return Names(t.Seq)
	case *TupleTarget:
		var names []ast.Identifier
		for _, item := range t.Items {
			names = append(names, Names(item)...)
		}
		return names
	default:
		panic("source.Names: unhandled target case")
	}
}

// AsTarget attempts to reinterpret an arbitrary expression as a target,
// needed by the Append statement (spec.md §4.G): `xs.append(e)` requires
// `xs` to be a valid target so the functional update can be threaded back.
func AsTarget(e Expression) (Target, bool) {
	switch e := e.(type) {
	case *Var:
		return &NameTarget{Location: e.Location, Name: e.Name}, true
	case *Subscript:
		seq, ok := AsTarget(e.Seq)
		if !ok {
			return nil, false
		}
		return &SubscriptTarget{Location: e.Location, Seq: seq, Index: e.Index}, true
	case *TupleLit:
		items := make([]Target, len(e.Items))
		for i, item := range e.Items {
			t, ok := AsTarget(item)
			if !ok {
				return nil, false
			}
			items[i] = t
		}
		return &TupleTarget{Location: e.Location, Items: items}, true
	default:
		return nil, false
	}
}
