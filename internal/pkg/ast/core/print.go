package core

import (
	"fmt"
	"strings"
)

// Print renders p as a parenthesized S-expression. It exists for the
// `cmd/corelower` driver — it is not part of the lowering pass itself.
func Print(p *Program) string {
	return PrintExpr(p.Body) + "\n" + PrintExpr(p.Result)
}

func PrintExpr(e Expression) string {
	switch e := e.(type) {
	case *Var:
		return string(e.Name)
	case *LitInt:
		return fmt.Sprintf("%d", e.Value)
	case *LitBool:
		return fmt.Sprintf("%t", e.Value)
	case *LitBuiltin:
		return string(e.Name)
	case *LitNil:
		return fmt.Sprintf("(nil %s)", PrintType(e.ElemType))
	case *Tuple:
		return "(tuple " + joinExpr(e.Items) + ")"
	case *App:
		return "(" + PrintExpr(e.Func) + " " + joinExpr(e.Args) + ")"
	case *Lambda:
		return fmt.Sprintf("(λ (%s) %s)", joinParams(e.Params), PrintExpr(e.Body))
	case *Let:
		return fmt.Sprintf("(let %s : %s = %s in %s)", e.Name, PrintType(e.Type), PrintExpr(e.Value), PrintExpr(e.Body))
	case *LetRec:
		return fmt.Sprintf("(letrec %s : %s = %s in %s)", e.Name, PrintType(e.Type), PrintExpr(e.Value), PrintExpr(e.Body))
	default:
		return fmt.Sprintf("<unprintable %T>", e)
	}
}

func PrintType(t Type) string {
	switch t := t.(type) {
	case *TypeVar:
		return string(t.Name)
	case *TInt:
		return "int"
	case *TBool:
		return "bool"
	case *TList:
		return "[" + PrintType(t.Elem) + "]"
	case *TTuple:
		parts := make([]string, len(t.Items))
		for i, item := range t.Items {
			parts[i] = PrintType(item)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case *TFunc:
		parts := make([]string, len(t.Params))
		for i, p := range t.Params {
			parts[i] = PrintType(p)
		}
		return "(" + strings.Join(parts, ", ") + ") -> " + PrintType(t.Return)
	default:
		return fmt.Sprintf("<unprintable %T>", t)
	}
}

func joinExpr(xs []Expression) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = PrintExpr(x)
	}
	return strings.Join(parts, " ")
}

func joinParams(ps []Param) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = fmt.Sprintf("%s:%s", p.Name, PrintType(p.Type))
	}
	return strings.Join(parts, ", ")
}
