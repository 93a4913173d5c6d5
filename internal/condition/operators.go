package condition

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"sync"
)

// Operator represents a comparison operator.
type Operator string

const (
	OpEq       Operator = "=="
	OpNeq      Operator = "!="
	OpGt       Operator = ">"
	OpGte      Operator = ">="
	OpLt       Operator = "<"
	OpLte      Operator = "<="
	OpContains Operator = "contains"
	OpMatches  Operator = "matches"
	OpExists   Operator = "exists"
)

// Valid reports whether op is a known operator.
func Valid(op Operator) bool {
	switch op {
	case OpEq, OpNeq, OpGt, OpGte, OpLt, OpLte, OpContains, OpMatches, OpExists:
		return true
	}
	return false
}

// Numeric reports whether op compares numbers.
func Numeric(op Operator) bool {
	switch op {
	case OpGt, OpGte, OpLt, OpLte:
		return true
	}
	return false
}

// ToFloat64 coerces a numeric value to float64.
func ToFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// Compare applies a binary operator to two decoded JSON values. OpExists is
// not binary and is handled by callers, which know whether a member is present.
func Compare(op Operator, left, right interface{}) (bool, error) {
	switch op {
	case OpEq:
		return equal(left, right), nil
	case OpNeq:
		return !equal(left, right), nil
	case OpGt, OpGte, OpLt, OpLte:
		return numericCompare(op, left, right)
	case OpContains:
		return containsOp(left, right)
	case OpMatches:
		return matchesOp(left, right)
	default:
		return false, fmt.Errorf("unknown operator: %s", op)
	}
}

// equal does deep-ish equality: numeric types are compared by value.
func equal(left, right interface{}) bool {
	lf, lok := ToFloat64(left)
	rf, rok := ToFloat64(right)
	if lok && rok {
		return math.Abs(lf-rf) < 1e-9
	}
	if lb, ok := left.(bool); ok {
		if rb, ok := right.(bool); ok {
			return lb == rb
		}
		return false
	}
	if left == nil || right == nil {
		return left == nil && right == nil
	}
	return fmt.Sprintf("%v", left) == fmt.Sprintf("%v", right)
}

func numericCompare(op Operator, left, right interface{}) (bool, error) {
	lf, lok := ToFloat64(left)
	rf, rok := ToFloat64(right)
	if !lok || !rok {
		return false, fmt.Errorf("operator %s requires numeric operands, got %T and %T", op, left, right)
	}
	switch op {
	case OpGt:
		return lf > rf, nil
	case OpGte:
		return lf >= rf, nil
	case OpLt:
		return lf < rf, nil
	case OpLte:
		return lf <= rf, nil
	}
	return false, nil
}

// containsOp matches a substring of a string or an element of an array.
func containsOp(left, right interface{}) (bool, error) {
	switch l := left.(type) {
	case string:
		return strings.Contains(l, fmt.Sprintf("%v", right)), nil
	case []interface{}:
		for _, v := range l {
			if equal(v, right) {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, fmt.Errorf("contains: left operand must be a string or array, got %T", left)
	}
}

var patterns sync.Map // string → *regexp.Regexp

// CompilePattern compiles a matches pattern once and caches it.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	if re, ok := patterns.Load(pattern); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("matches: invalid regex %q: %w", pattern, err)
	}
	patterns.Store(pattern, re)
	return re, nil
}

func matchesOp(left, right interface{}) (bool, error) {
	ls, ok := left.(string)
	if !ok {
		return false, fmt.Errorf("matches: left operand must be a string, got %T", left)
	}
	pattern, ok := right.(string)
	if !ok {
		return false, fmt.Errorf("matches: right operand must be a string pattern, got %T", right)
	}
	re, err := CompilePattern(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(ls), nil
}
