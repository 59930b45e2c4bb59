package djazzle

import (
	"encoding/json"
	"fmt"

	"github.com/soccer99/djazzle/internal/types"
)

// Typed literal constructors. Values built here form a closed set of
// kinds, so payload validation never reflects over arbitrary values.

// Text creates a text literal.
func Text(v string) types.Literal {
	return types.NewLiteral(types.LitText, v)
}

// Int creates an integer literal.
func Int(v int64) types.Literal {
	return types.NewLiteral(types.LitInt, v)
}

// Float creates a floating-point literal.
func Float(v float64) types.Literal {
	return types.NewLiteral(types.LitFloat, v)
}

// Bool creates a boolean literal.
func Bool(v bool) types.Literal {
	return types.NewLiteral(types.LitBool, v)
}

// JSON creates a structured literal. The value is marshaled at bind
// time by the driver; any json-marshalable value is accepted.
func JSON(v any) types.Literal {
	return types.NewLiteral(types.LitJSON, v)
}

// NullValue creates the null literal. The IS NULL predicate is Null;
// this is the bindable value for assignments and comparisons.
func NullValue() types.Literal {
	return types.NewLiteral(types.LitNull, nil)
}

// TryV converts a loosely-typed Go value into a typed literal at the
// API boundary, returning an error for values outside the closed set.
func TryV(v any) (types.Literal, error) {
	switch val := v.(type) {
	case nil:
		return NullValue(), nil
	case types.Literal:
		return val, nil
	case string:
		return Text(val), nil
	case int:
		return Int(int64(val)), nil
	case int32:
		return Int(int64(val)), nil
	case int64:
		return Int(val), nil
	case float32:
		return Float(float64(val)), nil
	case float64:
		return Float(val), nil
	case bool:
		return Bool(val), nil
	case json.RawMessage:
		return JSON(val), nil
	case map[string]any:
		return JSON(val), nil
	case []any:
		return JSON(val), nil
	default:
		return types.Literal{}, fmt.Errorf("unsupported literal type %T", v)
	}
}

// V converts a loosely-typed Go value into a typed literal.
func V(v any) types.Literal {
	l, err := TryV(v)
	if err != nil {
		panic(err)
	}
	return l
}
