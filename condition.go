package djazzle

import (
	"fmt"

	"github.com/soccer99/djazzle/internal/types"
)

// Eq creates an equality condition.
func Eq(f types.Field, v types.Literal) types.Comparison {
	return types.Comparison{Field: f, Operator: types.EQ, Value: v}
}

// Ne creates a not-equal condition.
func Ne(f types.Field, v types.Literal) types.Comparison {
	return types.Comparison{Field: f, Operator: types.NE, Value: v}
}

// Lt creates a less-than condition.
func Lt(f types.Field, v types.Literal) types.Comparison {
	return types.Comparison{Field: f, Operator: types.LT, Value: v}
}

// Le creates a less-or-equal condition.
func Le(f types.Field, v types.Literal) types.Comparison {
	return types.Comparison{Field: f, Operator: types.LE, Value: v}
}

// Gt creates a greater-than condition.
func Gt(f types.Field, v types.Literal) types.Comparison {
	return types.Comparison{Field: f, Operator: types.GT, Value: v}
}

// Ge creates a greater-or-equal condition.
func Ge(f types.Field, v types.Literal) types.Comparison {
	return types.Comparison{Field: f, Operator: types.GE, Value: v}
}

// Like creates a pattern-match condition.
func Like(f types.Field, pattern string) types.Pattern {
	return types.Pattern{Field: f, Pattern: Text(pattern)}
}

// NotLike creates a negated pattern-match condition.
func NotLike(f types.Field, pattern string) types.Pattern {
	return types.Pattern{Field: f, Pattern: Text(pattern), Negated: true}
}

// ILike creates a case-insensitive pattern-match condition. Rendering
// requires a dialect with ILIKE support.
func ILike(f types.Field, pattern string) types.Pattern {
	return types.Pattern{Field: f, Pattern: Text(pattern), CaseInsensitive: true}
}

// Null creates an IS NULL condition.
func Null(f types.Field) types.NullCheck {
	return types.NullCheck{Field: f, IsNull: true}
}

// NotNull creates an IS NOT NULL condition.
func NotNull(f types.Field) types.NullCheck {
	return types.NullCheck{Field: f}
}

// In creates a membership condition. An empty value list compiles to a
// predicate matching zero rows, never to IN ().
func In(f types.Field, values ...types.Literal) types.Membership {
	return types.Membership{Field: f, Values: values}
}

// NotIn creates a negated membership condition. An empty value list
// compiles to a predicate matching every row.
func NotIn(f types.Field, values ...types.Literal) types.Membership {
	return types.Membership{Field: f, Values: values, Negated: true}
}

// Between creates a range condition. Low <= high is not enforced;
// callers may swap the bounds to get an empty range on purpose.
func Between(f types.Field, low, high types.Literal) types.Range {
	return types.Range{Field: f, Low: low, High: high}
}

// CF creates a comparison between two columns. Field comparisons bind
// no parameters; join predicates are the usual use.
func CF(left types.Field, op types.Operator, right types.Field) types.FieldComparison {
	return types.FieldComparison{LeftField: left, Operator: op, RightField: right}
}

// EqCol compares two columns for equality.
func EqCol(left, right types.Field) types.FieldComparison {
	return CF(left, types.EQ, right)
}

// TryAnd creates a conjunction, returning an error if no conditions are given.
func TryAnd(conditions ...types.ConditionItem) (types.Group, error) {
	if len(conditions) == 0 {
		return types.Group{}, fmt.Errorf("AND requires at least one condition")
	}
	return types.Group{Logic: types.AND, Conditions: conditions}, nil
}

// And creates a conjunction. Each child is parenthesized on render.
func And(conditions ...types.ConditionItem) types.Group {
	g, err := TryAnd(conditions...)
	if err != nil {
		panic(err)
	}
	return g
}

// TryOr creates a disjunction, returning an error if no conditions are given.
func TryOr(conditions ...types.ConditionItem) (types.Group, error) {
	if len(conditions) == 0 {
		return types.Group{}, fmt.Errorf("OR requires at least one condition")
	}
	return types.Group{Logic: types.OR, Conditions: conditions}, nil
}

// Or creates a disjunction. Each child is parenthesized on render.
func Or(conditions ...types.ConditionItem) types.Group {
	g, err := TryOr(conditions...)
	if err != nil {
		panic(err)
	}
	return g
}
