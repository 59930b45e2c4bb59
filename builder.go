package djazzle

import (
	"github.com/soccer99/djazzle/internal/types"
)

// Builder provides a fluent API for constructing statements. A builder
// accumulates clause state for exactly one logical query; the first
// invalid call sticks as a ConstructionError and short-circuits the
// rest of the chain.
type Builder struct {
	ast *types.AST
	err error
}

// Select creates a new SELECT statement builder. With no projection the
// statement selects every column of the base table.
func Select(t types.Table) *Builder {
	return &Builder{ast: &types.AST{Operation: types.OpSelect, Target: t}}
}

// Insert creates a new INSERT statement builder.
func Insert(t types.Table) *Builder {
	return &Builder{ast: &types.AST{Operation: types.OpInsert, Target: t}}
}

// Update creates a new UPDATE statement builder.
func Update(t types.Table) *Builder {
	return &Builder{ast: &types.AST{Operation: types.OpUpdate, Target: t, Updates: types.Row{}}}
}

// Delete creates a new DELETE statement builder. With no predicate a
// delete removes all rows, mirroring raw SQL; there is no guard.
func Delete(t types.Table) *Builder {
	return &Builder{ast: &types.AST{Operation: types.OpDelete, Target: t}}
}

// fail records the first construction error.
func (b *Builder) fail(op, reason string) *Builder {
	if b.err == nil {
		b.err = ConstructionError{Op: op, Reason: reason}
	}
	return b
}

// Fields sets the columns to project.
func (b *Builder) Fields(fields ...types.Field) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpSelect {
		return b.fail("Fields", "can only be used with SELECT")
	}
	b.ast.Fields = fields
	return b
}

// Distinct applies DISTINCT to the whole projected row tuple.
func (b *Builder) Distinct() *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpSelect {
		return b.fail("Distinct", "can only be used with SELECT")
	}
	b.ast.Distinct = true
	return b
}

// Where adds filter conditions. Multiple conditions in one call, or
// across calls, combine as a conjunction in call order.
func (b *Builder) Where(conditions ...types.ConditionItem) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation == types.OpInsert {
		return b.fail("Where", "cannot be used with INSERT")
	}
	for _, cond := range conditions {
		if b.ast.WhereClause == nil {
			b.ast.WhereClause = cond
		} else {
			b.ast.WhereClause = types.Group{
				Logic:      types.AND,
				Conditions: []types.ConditionItem{b.ast.WhereClause, cond},
			}
		}
	}
	return b
}

// WhereField is a convenience for a single field comparison.
func (b *Builder) WhereField(f types.Field, op types.Operator, v types.Literal) *Builder {
	return b.Where(types.Comparison{Field: f, Operator: op, Value: v})
}

// Join adds an INNER JOIN.
func (b *Builder) Join(table types.Table, on types.ConditionItem) *Builder {
	return b.addJoin("Join", types.InnerJoin, table, on)
}

// InnerJoin adds an INNER JOIN.
func (b *Builder) InnerJoin(table types.Table, on types.ConditionItem) *Builder {
	return b.addJoin("InnerJoin", types.InnerJoin, table, on)
}

// LeftJoin adds a LEFT JOIN.
func (b *Builder) LeftJoin(table types.Table, on types.ConditionItem) *Builder {
	return b.addJoin("LeftJoin", types.LeftJoin, table, on)
}

// RightJoin adds a RIGHT JOIN.
func (b *Builder) RightJoin(table types.Table, on types.ConditionItem) *Builder {
	return b.addJoin("RightJoin", types.RightJoin, table, on)
}

// FullJoin adds a FULL JOIN. Rendering requires dialect support.
func (b *Builder) FullJoin(table types.Table, on types.ConditionItem) *Builder {
	return b.addJoin("FullJoin", types.FullJoin, table, on)
}

func (b *Builder) addJoin(op string, joinType types.JoinType, table types.Table, on types.ConditionItem) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpSelect {
		return b.fail(op, "can only be used with SELECT")
	}
	if on == nil {
		return b.fail(op, "requires an ON condition")
	}
	b.ast.Joins = append(b.ast.Joins, types.Join{Type: joinType, Table: table, On: on})
	return b
}

// OrderBy adds an ordering term. Terms render in call order.
func (b *Builder) OrderBy(f types.Field, direction types.Direction) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpSelect {
		return b.fail("OrderBy", "can only be used with SELECT")
	}
	b.ast.Ordering = append(b.ast.Ordering, types.OrderBy{Field: f, Direction: direction})
	return b
}

// OrderByField adds an ascending ordering term.
func (b *Builder) OrderByField(f types.Field) *Builder {
	return b.OrderBy(f, types.ASC)
}

// Limit sets the row limit. Limits on UPDATE/DELETE require dialect
// support, checked at compile time.
func (b *Builder) Limit(limit int) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation == types.OpInsert {
		return b.fail("Limit", "cannot be used with INSERT")
	}
	if limit < 0 {
		return b.fail("Limit", "must be non-negative")
	}
	b.ast.Limit = &limit
	return b
}

// Offset sets the row offset.
func (b *Builder) Offset(offset int) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpSelect {
		return b.fail("Offset", "can only be used with SELECT")
	}
	if offset < 0 {
		return b.fail("Offset", "must be non-negative")
	}
	b.ast.Offset = &offset
	return b
}

// Values adds one or more rows to insert. All rows of one insert must
// cover the same column set, order-independent; a mismatch fails at
// compile time with an InconsistentColumnsError naming the row.
func (b *Builder) Values(rows ...types.Row) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpInsert {
		return b.fail("Values", "can only be used with INSERT")
	}
	b.ast.Values = append(b.ast.Values, rows...)
	return b
}

// Set assigns a column for UPDATE. Assigning NullValue() sets the
// column to NULL explicitly.
func (b *Builder) Set(f types.Field, v types.Literal) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpUpdate {
		return b.fail("Set", "can only be used with UPDATE")
	}
	b.ast.Updates[f.Name] = v
	return b
}

// SetMap merges a whole assignment map for UPDATE.
func (b *Builder) SetMap(assignments types.Row) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpUpdate {
		return b.fail("SetMap", "can only be used with UPDATE")
	}
	for col, v := range assignments {
		b.ast.Updates[col] = v
	}
	return b
}

// Returning requests returned columns from INSERT/UPDATE/DELETE.
// With no fields it compiles to RETURNING *. Rendering requires
// dialect support.
func (b *Builder) Returning(fields ...types.Field) *Builder {
	if b.err != nil {
		return b
	}
	switch b.ast.Operation {
	case types.OpInsert, types.OpUpdate, types.OpDelete:
		if len(fields) == 0 {
			b.ast.ReturningAll = true
		} else {
			b.ast.Returning = append(b.ast.Returning, fields...)
		}
	default:
		return b.fail("Returning", "can only be used with INSERT, UPDATE, or DELETE")
	}
	return b
}

// Build returns the accumulated AST or the first recorded error.
// Building never mutates state; it is safe to build twice.
func (b *Builder) Build() (*types.AST, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.ast.Validate(); err != nil {
		return nil, err
	}
	return b.ast, nil
}

// MustBuild returns the AST or panics on error.
func (b *Builder) MustBuild() *types.AST {
	ast, err := b.Build()
	if err != nil {
		panic(err)
	}
	return ast
}

// Render builds the AST and compiles it against a dialect renderer.
func (b *Builder) Render(r Renderer) (*Statement, error) {
	ast, err := b.Build()
	if err != nil {
		return nil, err
	}
	return r.Render(ast)
}

// MustRender compiles or panics on error.
func (b *Builder) MustRender(r Renderer) *Statement {
	stmt, err := b.Render(r)
	if err != nil {
		panic(err)
	}
	return stmt
}
