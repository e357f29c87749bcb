package processors

import (
	"corelower/internal/pkg/ast"
	"corelower/internal/pkg/ast/core"
	"corelower/internal/pkg/ast/source"
	"corelower/internal/pkg/common"
)

// TranslateType is component D: it translates a Source type annotation
// into a Core type. TStr is legal only at the entry function's boundary
// (spec.md §4.D); TSideEffect is never legal in a type position at all —
// both are rejected here with a located semantic error, since by the time
// the type translator sees one it has escaped the position that permits
// it.
func TranslateType(t source.Type) (core.Type, error) {
	switch t := t.(type) {
	case *source.TypeVar:
		return &core.TypeVar{Location: t.Location, Name: ast.TypeVarName(t.Name)}, nil
	case *source.TInt:
		return &core.TInt{Location: t.Location}, nil
	case *source.TBool:
		return &core.TBool{Location: t.Location}, nil
	case *source.TList:
		elem, err := TranslateType(t.Elem)
		if err != nil {
			return nil, err
		}
		return &core.TList{Location: t.Location, Elem: elem}, nil
	case *source.TTuple:
		items, err := common.MapError(TranslateType, t.Items)
		if err != nil {
			return nil, err
		}
		return &core.TTuple{Location: t.Location, Items: items}, nil
	case *source.TCallable:
		params, err := common.MapError(TranslateType, t.Args)
		if err != nil {
			return nil, err
		}
		ret, err := TranslateType(t.Ret)
		if err != nil {
			return nil, err
		}
		return &core.TFunc{Location: t.Location, Params: params, Return: ret}, nil
	case *source.TStr:
		return nil, common.Semantic(t.Location, "str is only legal as the entry function's parameter or return type")
	case *source.TSideEffect:
		return nil, common.Semantic(t.Location, "a side-effecting expression's result cannot appear in a type position")
	default:
		return nil, common.Internal(t.GetLocation(), "unrecognized source type %T", t)
	}
}

// TranslateEntryType translates the entry function's (`solve`'s) declared
// parameter and return types, permitting TStr at
// top level and in list/tuple positions nested directly under it — the
// one place spec.md §4.D carves out for it — but nowhere inside a nested
// callable.
func TranslateEntryType(t source.Type) (core.Type, error) {
	switch t := t.(type) {
	case *source.TStr:
		return &core.TList{Location: t.Location, Elem: &core.TInt{Location: t.Location}}, nil
	case *source.TList:
		elem, err := TranslateEntryType(t.Elem)
		if err != nil {
			return nil, err
		}
		return &core.TList{Location: t.Location, Elem: elem}, nil
	case *source.TTuple:
		items, err := common.MapError(TranslateEntryType, t.Items)
		if err != nil {
			return nil, err
		}
		return &core.TTuple{Location: t.Location, Items: items}, nil
	default:
		return TranslateType(t)
	}
}
