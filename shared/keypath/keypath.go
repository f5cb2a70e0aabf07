// Package keypath resolves dotted paths against arbitrarily nested values.
// It is the key-extraction helper behind every keyed combinator in lazyseq.
package keypath

import (
	"reflect"
	"strconv"
	"strings"
)

// Resolve walks path segment by segment into element. A segment addresses a
// string map key, an exported struct field (exact match first, then
// case-insensitive), or a numeric slice/array index. The empty path resolves
// to the element itself. The second result is false when any segment is
// missing.
func Resolve(element any, path string) (any, bool) {
	if path == "" {
		return element, true
	}
	cur := element
	for _, seg := range strings.Split(path, ".") {
		v, ok := step(cur, seg)
		if !ok {
			return nil, false
		}
		cur = v
	}
	return cur, true
}

// As resolves path and asserts the result to T.
func As[T any](element any, path string) (res T, ok bool) {
	var raw any
	if raw, ok = Resolve(element, path); ok {
		res, ok = raw.(T)
	}
	return
}

func step(cur any, seg string) (any, bool) {
	if cur == nil {
		return nil, false
	}
	if m, ok := cur.(map[string]any); ok {
		v, ok := m[seg]
		return v, ok
	}

	rv := reflect.ValueOf(cur)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(seg).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true

	case reflect.Struct:
		f := rv.FieldByName(seg)
		if !f.IsValid() || !f.CanInterface() {
			f = rv.FieldByNameFunc(func(name string) bool {
				return strings.EqualFold(name, seg)
			})
		}
		if !f.IsValid() || !f.CanInterface() {
			return nil, false
		}
		return f.Interface(), true

	case reflect.Slice, reflect.Array:
		idx, err := strconv.Atoi(seg)
		if err != nil || idx < 0 || idx >= rv.Len() {
			return nil, false
		}
		return rv.Index(idx).Interface(), true
	}

	return nil, false
}
