package types

// Operator represents query comparison operators.
type Operator string

const (
	// Basic comparison operators.
	EQ Operator = "="
	NE Operator = "<>"
	GT Operator = ">"
	GE Operator = ">="
	LT Operator = "<"
	LE Operator = "<="

	// Pattern operators.
	LIKE  Operator = "LIKE"
	ILIKE Operator = "ILIKE"
)

// ConditionItem represents a node of the predicate tree: a single
// condition or a group of conditions.
type ConditionItem interface {
	IsConditionItem()
}

// Comparison compares a column against a bound literal.
type Comparison struct {
	Field    Field
	Operator Operator
	Value    Literal
}

// FieldComparison compares two columns and binds no parameters.
// Join predicates are the usual producer.
type FieldComparison struct {
	LeftField  Field
	Operator   Operator
	RightField Field
}

// Pattern matches a column against a pattern, optionally case-insensitive.
// Case-insensitive matching requires dialect support (ILIKE).
type Pattern struct {
	Field           Field
	Pattern         Literal
	CaseInsensitive bool
	Negated         bool
}

// NullCheck renders IS NULL or IS NOT NULL.
type NullCheck struct {
	Field  Field
	IsNull bool
}

// Membership tests a column against a value list. An empty list renders
// as the always-false (or, negated, always-true) predicate, never as an
// invalid empty IN ().
type Membership struct {
	Field   Field
	Values  []Literal
	Negated bool
}

// Range renders col BETWEEN low AND high. Low <= high is deliberately not
// enforced; a swapped range is a valid way to match nothing.
type Range struct {
	Field Field
	Low   Literal
	High  Literal
}

// LogicOperator represents how grouped conditions are combined.
type LogicOperator string

const (
	AND LogicOperator = "AND"
	OR  LogicOperator = "OR"
)

// Group combines child conditions with AND/OR logic. Children are never
// empty and each child is parenthesized on render so precedence stays
// unambiguous at any nesting depth.
type Group struct {
	Logic      LogicOperator
	Conditions []ConditionItem
}

// Implement ConditionItem.
func (Comparison) IsConditionItem()      {}
func (FieldComparison) IsConditionItem() {}
func (Pattern) IsConditionItem()         {}
func (NullCheck) IsConditionItem()       {}
func (Membership) IsConditionItem()      {}
func (Range) IsConditionItem()           {}
func (Group) IsConditionItem()           {}
