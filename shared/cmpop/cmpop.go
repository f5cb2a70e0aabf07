// Package cmpop implements the loose/strict operator comparison semantics
// shared by every where-style predicate in the lazyseq module.
//
// Comparison is intentionally forgiving: numeric operands compare across
// kinds, strings compare with fmt.Stringer implementations, and everything
// else falls back to deep equality. Strict operators require the dynamic
// types to match exactly.
package cmpop

import (
	"fmt"
	"reflect"
	"strings"
)

// Operator is one of the closed set of comparison operators understood by
// Compare. Unknown operators behave as OpEq.
type Operator string

const (
	OpEq           Operator = "="
	OpEqAlt        Operator = "=="
	OpNotEq        Operator = "!="
	OpNotEqAlt     Operator = "<>"
	OpLt           Operator = "<"
	OpGt           Operator = ">"
	OpLte          Operator = "<="
	OpGte          Operator = ">="
	OpIdentical    Operator = "==="
	OpNotIdentical Operator = "!=="
	OpSpaceship    Operator = "<=>"
)

// Valid reports whether op belongs to the closed operator set.
func Valid(op Operator) bool {
	switch op {
	case OpEq, OpEqAlt, OpNotEq, OpNotEqAlt, OpLt, OpGt, OpLte, OpGte,
		OpIdentical, OpNotIdentical, OpSpaceship:
		return true
	}
	return false
}

// Compare evaluates `a op b` under the module's comparison policy.
//
// Policy for operands of incompatible runtime shape: when fewer than two of
// the operands are string-like and exactly one of the two is a composite
// value, the operands are never considered equal and never ordered, so only
// the not-equal operators return true. This mirrors the behavior of the
// system this engine was modeled on; it is a deliberate policy choice, not
// an accident of the implementation.
func Compare(a any, op Operator, b any) bool {
	if singleCompositeOperand(a, b) {
		switch op {
		case OpNotEq, OpNotEqAlt, OpNotIdentical:
			return true
		default:
			return false
		}
	}

	switch op {
	case OpNotEq, OpNotEqAlt:
		return !looseEqual(a, b)
	case OpIdentical:
		return strictEqual(a, b)
	case OpNotIdentical:
		return !strictEqual(a, b)
	case OpLt:
		c, ok := Order(a, b)
		return ok && c < 0
	case OpGt:
		c, ok := Order(a, b)
		return ok && c > 0
	case OpLte:
		c, ok := Order(a, b)
		return ok && c <= 0
	case OpGte:
		c, ok := Order(a, b)
		return ok && c >= 0
	case OpSpaceship:
		// Three-way comparison used in a boolean context: true means the
		// operands differ.
		if c, ok := Order(a, b); ok {
			return c != 0
		}
		return !looseEqual(a, b)
	default:
		// OpEq, OpEqAlt, and anything unrecognized.
		return looseEqual(a, b)
	}
}

// Order three-way-compares a and b when both are numeric or both are
// string-like. The second result is false when the operands cannot be
// ordered.
func Order(a any, b any) (int, bool) {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			switch {
			case fa < fb:
				return -1, true
			case fa > fb:
				return 1, true
			default:
				return 0, true
			}
		}
	}
	if sa, ok := toString(a); ok {
		if sb, ok := toString(b); ok {
			return strings.Compare(sa, sb), true
		}
	}
	return 0, false
}

func looseEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return fa == fb
		}
	}
	if sa, ok := toString(a); ok {
		if sb, ok := toString(b); ok {
			return sa == sb
		}
	}
	if ba, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			return ba == bb
		}
	}
	return reflect.DeepEqual(a, b)
}

func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return reflect.DeepEqual(a, b)
}

// singleCompositeOperand implements the mixed-type safety rule documented on
// Compare.
func singleCompositeOperand(a, b any) bool {
	stringLike := 0
	composites := 0
	for _, v := range [2]any{a, b} {
		if isStringLike(v) {
			stringLike++
		} else if isComposite(v) {
			composites++
		}
	}
	return stringLike < 2 && composites == 1
}

func isStringLike(v any) bool {
	switch v.(type) {
	case string, fmt.Stringer:
		return true
	}
	return false
}

func isComposite(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array,
		reflect.Pointer, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func toString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case fmt.Stringer:
		return s.String(), true
	}
	return "", false
}
