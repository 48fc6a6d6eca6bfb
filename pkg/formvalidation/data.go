package formvalidation

import (
	"net/url"
	"reflect"
	"strings"
)

// Data is the live form the validator reads from. It is owned by the caller;
// the validator only reads it, and always at validation time.
type Data interface {
	Value(field string) (any, bool)
}

// DataFunc adapts a function to Data.
type DataFunc func(field string) (any, bool)

func (f DataFunc) Value(field string) (any, bool) {
	return f(field)
}

// Map is form data held in a map.
type Map map[string]any

func (m Map) Value(field string) (any, bool) {
	v, ok := m[field]
	return v, ok
}

// Values is form data decoded from a request body or query string.
// A field's value is its first entry.
type Values url.Values

func (v Values) Value(field string) (any, bool) {
	vs, ok := v[field]
	if !ok || len(vs) == 0 {
		return nil, false
	}
	return vs[0], true
}

const formTag = "form"

// Struct exposes the exported fields of a struct as form data. Pass a pointer
// to see later changes to the struct. Field names come from the `form` tag,
// falling back to the lower-cased Go field name; `form:"-"` hides a field.
func Struct(v any) Data {
	return &structData{v: v, index: fieldIndex(reflect.TypeOf(v))}
}

type structData struct {
	v     any
	index map[string]int
}

func (s *structData) Value(field string) (any, bool) {
	i, ok := s.index[field]
	if !ok {
		return nil, false
	}

	rv := reflect.ValueOf(s.v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	return rv.Field(i).Interface(), true
}

func fieldIndex(t reflect.Type) map[string]int {
	index := make(map[string]int)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return index
	}

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, skip := parseFieldTag(f)
		if skip {
			continue
		}
		index[name] = i
	}
	return index
}

// parseFieldTag returns the form field name and whether to skip the field.
func parseFieldTag(field reflect.StructField) (name string, skip bool) {
	tag := field.Tag.Get(formTag)
	if tag == "" {
		return strings.ToLower(field.Name), false
	}
	if tag == "-" {
		return "", true
	}
	name, _, _ = strings.Cut(tag, ",")
	return name, false
}
