package operation

import (
	"fmt"
	"reflect"
	"strings"
)

// Select expressions with a special meaning.
const (
	SelectAll   = "*"
	ParamPrefix = "^"
)

// Projection maps the request and its response to the value that is emitted.
// Returning nil emits nothing.
type Projection[In, Out any] func(in *In, out *Out) any

// Whole emits the entire response.
func Whole[In, Out any]() Projection[In, Out] {
	return func(_ *In, out *Out) any { return out }
}

// Nothing emits no value. Used by operations whose response carries no data.
func Nothing[In, Out any]() Projection[In, Out] {
	return func(*In, *Out) any { return nil }
}

// IsParamEcho reports whether expr echoes a request parameter.
func IsParamEcho(expr string) bool {
	return strings.HasPrefix(strings.TrimSpace(expr), ParamPrefix)
}

// ParseSelect resolves a select expression against the request and response types:
//
//	""        the operation default (def, or the whole response when def is nil)
//	"*"       the whole response
//	"^Name"   the request parameter Name
//	"A.B"     the response field path A.B
//
// Field names are matched case-insensitively. Unknown names are rejected here, before any
// request is sent.
func ParseSelect[In, Out any](expr string, def Projection[In, Out]) (Projection[In, Out], error) {
	expr = strings.TrimSpace(expr)

	switch {
	case expr == "":
		if def == nil {
			return Whole[In, Out](), nil
		}
		return def, nil

	case expr == SelectAll:
		return Whole[In, Out](), nil

	case strings.HasPrefix(expr, ParamPrefix):
		name := strings.TrimPrefix(expr, ParamPrefix)
		path, err := resolvePath(reflect.TypeFor[In](), name)
		if err != nil {
			return nil, fmt.Errorf("%w: parameter %q: %v", ErrUnknownSelect, name, err)
		}
		return func(in *In, _ *Out) any {
			return path.value(reflect.ValueOf(in))
		}, nil

	default:
		path, err := resolvePath(reflect.TypeFor[Out](), expr)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrUnknownSelect, expr, err)
		}
		return func(_ *In, out *Out) any {
			return path.value(reflect.ValueOf(out))
		}, nil
	}
}
