package condition

import (
	"fmt"
	"strings"
)

// Scope resolves field paths for an expression.
type Scope interface {
	// Lookup returns the decoded JSON value at path and whether it is present.
	Lookup(path string) (interface{}, bool)
}

// Evaluate walks the AST and returns true/false or an error. A comparison
// against an absent field is false.
func Evaluate(expr Expr, scope Scope) (bool, error) {
	switch e := expr.(type) {
	case *BinaryExpr:
		return evalBinary(e, scope)
	case *NotExpr:
		v, err := Evaluate(e.Expr, scope)
		if err != nil {
			return false, err
		}
		return !v, nil
	case *ExistsExpr:
		_, ok := scope.Lookup(e.Field.Path)
		return ok, nil
	case *ComparisonExpr:
		return evalComparison(e, scope)
	default:
		return false, fmt.Errorf("unknown expr type %T", expr)
	}
}

func evalBinary(e *BinaryExpr, scope Scope) (bool, error) {
	left, err := Evaluate(e.Left, scope)
	if err != nil {
		return false, err
	}
	switch strings.ToUpper(e.Op) {
	case "AND":
		if !left {
			return false, nil // short-circuit
		}
		return Evaluate(e.Right, scope)
	case "OR":
		if left {
			return true, nil // short-circuit
		}
		return Evaluate(e.Right, scope)
	default:
		return false, fmt.Errorf("unknown binary op %q", e.Op)
	}
}

func evalComparison(e *ComparisonExpr, scope Scope) (bool, error) {
	left, ok := resolveOperand(e.Left, scope)
	if !ok {
		return false, nil
	}
	right, ok := resolveOperand(e.Right, scope)
	if !ok {
		return false, nil
	}
	return Compare(e.Op, left, right)
}

func resolveOperand(op Operand, scope Scope) (interface{}, bool) {
	switch o := op.(type) {
	case *LiteralOperand:
		return o.Value, true
	case *FieldOperand:
		return scope.Lookup(o.Path)
	default:
		return nil, false
	}
}
