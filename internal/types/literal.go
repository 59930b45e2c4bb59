package types

import "fmt"

// LiteralKind tags the closed set of value types a literal may carry.
// The set mirrors the semantic column types of the schema descriptor, so
// the validator never needs runtime reflection over arbitrary values.
type LiteralKind int

const (
	LitNull LiteralKind = iota
	LitText
	LitInt
	LitFloat
	LitBool
	LitJSON
)

// String returns the kind name used in error messages.
func (k LiteralKind) String() string {
	switch k {
	case LitNull:
		return "null"
	case LitText:
		return "text"
	case LitInt:
		return "integer"
	case LitFloat:
		return "float"
	case LitBool:
		return "boolean"
	case LitJSON:
		return "structured"
	default:
		return fmt.Sprintf("LiteralKind(%d)", int(k))
	}
}

// Literal is a typed value destined for parameter binding. Literals are
// never interpolated into SQL text; rendering replaces each one with the
// dialect's placeholder and appends its value to the argument sequence.
type Literal struct {
	value any
	Kind  LiteralKind
}

// NewLiteral creates a literal of the given kind. The value must already
// match the kind; constructors in the root package enforce this.
func NewLiteral(kind LiteralKind, value any) Literal {
	return Literal{Kind: kind, value: value}
}

// Value returns the bindable value. Null literals bind as nil.
func (l Literal) Value() any {
	if l.Kind == LitNull {
		return nil
	}
	return l.value
}

// IsNull reports whether the literal is the null value.
func (l Literal) IsNull() bool {
	return l.Kind == LitNull
}
