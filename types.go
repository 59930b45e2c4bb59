package djazzle

import (
	"github.com/soccer99/djazzle/internal/render"
	"github.com/soccer99/djazzle/internal/types"
)

// Re-export the core value types for the public API. The internal
// packages stay importable by the dialect packages only.
type (
	// Table is a validated table reference.
	Table = types.Table
	// Field is a validated column reference.
	Field = types.Field
	// Literal is a typed value destined for parameter binding.
	Literal = types.Literal
	// Row is one INSERT value set (or an UPDATE assignment map), keyed
	// by column name.
	Row = types.Row
	// AST is the statement state a builder accumulates.
	AST = types.AST
	// Statement is a compiled (SQL, ordered arguments) pair.
	Statement = types.Statement
	// Capabilities is a dialect's feature and syntax profile.
	Capabilities = render.Capabilities
	// Operator is a comparison operator.
	Operator = types.Operator
	// Direction is a sort direction.
	Direction = types.Direction
	// ConditionItem is a node of the predicate tree.
	ConditionItem = types.ConditionItem
)

// Re-export operator constants for the public API.
const (
	EQ = types.EQ
	NE = types.NE
	GT = types.GT
	GE = types.GE
	LT = types.LT
	LE = types.LE
)

// Sort directions.
const (
	ASC  = types.ASC
	DESC = types.DESC
)
