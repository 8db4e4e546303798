package lox

import (
	"fmt"
	"strconv"
)

// isTruthy implements the language's truthiness rule: Nil and Bool(false)
// are falsey, everything else (including Number(0) and "") is truthy.
func isTruthy(v interface{}) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// valuesEqual implements value equality: Nil == Nil, same-variant
// same-contents for bool/float64/string, false across variants. NaN
// inherits Go's float64 equality, so it is not equal to itself.
func valuesEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// stringify renders a runtime value the way the `print` statement does.
func stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
