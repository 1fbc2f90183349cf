package operation

import (
	"fmt"
	"reflect"
	"strings"
)

// fieldPath is a resolved dotted path of exported struct fields.
type fieldPath [][]int

func resolvePath(t reflect.Type, expr string) (fieldPath, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, fmt.Errorf("empty field name")
	}

	var path fieldPath
	for _, name := range strings.Split(expr, ".") {
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return nil, fmt.Errorf("%s has no fields", t)
		}

		f, ok := lookupField(t, name)
		if !ok {
			return nil, fmt.Errorf("%s has no field %s", t.Name(), name)
		}
		path = append(path, f.Index)
		t = f.Type
	}

	return path, nil
}

func lookupField(t reflect.Type, name string) (reflect.StructField, bool) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.IsExported() && strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return reflect.StructField{}, false
}

// value walks the path from v. Pointers are followed; a nil pointer on the way yields nil.
func (p fieldPath) value(v reflect.Value) any {
	rv, ok := p.walk(v)
	if !ok {
		return nil
	}
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}

func (p fieldPath) walk(v reflect.Value) (reflect.Value, bool) {
	for _, idx := range p {
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		}
		v = v.FieldByIndex(idx)
	}
	return v, true
}

// missingFields returns the names in required whose request field is unset.
func missingFields(in any, required []string) []string {
	var missing []string
	v := reflect.ValueOf(in)
	for _, name := range required {
		path, err := resolvePath(v.Type(), name)
		if err != nil {
			missing = append(missing, name)
			continue
		}
		fv, ok := path.walk(v)
		if !ok || isUnset(fv) {
			missing = append(missing, name)
		}
	}
	return missing
}

func isUnset(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	case reflect.Slice, reflect.Map, reflect.String:
		return v.Len() == 0
	}
	return false
}
