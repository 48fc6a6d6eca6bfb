package formvalidation

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Rule checks one field value. It returns "" when the value passes and an
// error message otherwise. Rules must be pure and must not panic; a rule
// reports an invalid value only through its message.
type Rule func(value any) string

// Rules maps a field name to its rules, evaluated in order.
type Rules map[string][]Rule

const msgInvalidType = "has an invalid type"

// Check adapts a predicate into a Rule that fails with message.
func Check(pred func(value any) bool, message string) Rule {
	return func(value any) string {
		if pred(value) {
			return ""
		}
		return message
	}
}

// Typed adapts a rule over a concrete type. Nil values (and nil pointers)
// are passed as the zero T, pointers to T are dereferenced, and any other
// type fails with "has an invalid type".
func Typed[T any](fn func(T) string) Rule {
	return func(value any) string {
		var zero T
		switch v := value.(type) {
		case nil:
			return fn(zero)
		case T:
			return fn(v)
		case *T:
			if v == nil {
				return fn(zero)
			}
			return fn(*v)
		default:
			return msgInvalidType
		}
	}
}

// WithMessage replaces the message of rule when it fails.
func WithMessage(rule Rule, message string) Rule {
	return func(value any) string {
		if rule(value) == "" {
			return ""
		}
		return message
	}
}

// indirect dereferences pointers; a nil pointer yields nil.
func indirect(value any) any {
	rv := reflect.ValueOf(value)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}

// isEmpty reports whether value counts as "not filled in": nil, a blank
// string, or an empty slice or map.
func isEmpty(value any) bool {
	value = indirect(value)
	if value == nil {
		return true
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v) == ""
	case []string:
		return len(v) == 0
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	}
	return false
}

// asString converts textual values. Non-text values report false.
func asString(value any) (string, bool) {
	switch v := indirect(value).(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case []byte:
		return string(v), true
	case []string:
		if len(v) == 0 {
			return "", true
		}
		return v[0], true
	case fmt.Stringer:
		return v.String(), true
	}
	return "", false
}

// asFloat converts numbers and numeric strings.
func asFloat(value any) (float64, bool) {
	rv := reflect.ValueOf(indirect(value))
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		return f, err == nil
	}
	return 0, false
}
