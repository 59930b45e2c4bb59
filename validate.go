package djazzle

import (
	"github.com/soccer99/djazzle/internal/types"
)

// acceptedKinds returns the literal kinds a column accepts.
func (c Column) acceptedKinds() []types.LiteralKind {
	var kinds []types.LiteralKind
	switch c.Type {
	case TypeText:
		kinds = []types.LiteralKind{types.LitText}
	case TypeInteger, TypeForeignKey:
		kinds = []types.LiteralKind{types.LitInt}
	case TypeFloat:
		kinds = []types.LiteralKind{types.LitFloat, types.LitInt}
	case TypeBoolean:
		kinds = []types.LiteralKind{types.LitBool}
	case TypeStructured:
		kinds = []types.LiteralKind{types.LitJSON}
	}
	if c.Nullable {
		kinds = append(kinds, types.LitNull)
	}
	return kinds
}

// accepts reports whether the column accepts a literal of the given kind.
func (c Column) accepts(kind types.LiteralKind) bool {
	for _, k := range c.acceptedKinds() {
		if k == kind {
			return true
		}
	}
	return false
}

// expectedNames renders the accepted set for a TypeMismatchError.
func (c Column) expectedNames() []string {
	kinds := c.acceptedKinds()
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	return names
}

// ValidatePayload checks an insert/update payload against the schema's
// column types and nullability. The walk is total over the payload in
// row-major, column-declaration order, and fails with the first
// mismatch found. It runs before compilation; a failed payload never
// reaches the renderer.
func (s *Schema) ValidatePayload(ast *types.AST) error {
	table, ok := s.tables[ast.Target.Name]
	if !ok {
		return UnknownColumnError{Table: ast.Target.Name}
	}

	switch ast.Operation {
	case types.OpInsert:
		for i, row := range ast.Values {
			if err := s.validateRow(table, row, i); err != nil {
				return err
			}
		}
	case types.OpUpdate:
		if err := s.validateRow(table, ast.Updates, -1); err != nil {
			return err
		}
	}
	return nil
}

// validateRow checks one assignment map against the table definition.
// rowIndex is -1 for update payloads.
func (s *Schema) validateRow(table TableDef, row types.Row, rowIndex int) error {
	for _, name := range row.Columns() {
		if _, err := s.column(table.Name, name); err != nil {
			return err
		}
	}
	for _, col := range table.Columns {
		v, ok := row[col.Name]
		if !ok {
			continue
		}
		if !col.accepts(v.Kind) {
			return TypeMismatchError{
				Column:   col.Name,
				Expected: col.expectedNames(),
				Actual:   v.Kind.String(),
				Row:      rowIndex,
			}
		}
	}
	return nil
}

// ValidateReferences checks every column reference in the statement
// against the schema: projection, join targets and predicates, the
// where tree, ordering, and the returning list. Unqualified references
// resolve against the target table and every joined table.
func (s *Schema) ValidateReferences(ast *types.AST) error {
	if _, ok := s.tables[ast.Target.Name]; !ok {
		return UnknownColumnError{Table: ast.Target.Name}
	}

	candidates := []string{ast.Target.Name}
	for _, join := range ast.Joins {
		if _, ok := s.tables[join.Table.Name]; !ok {
			return UnknownColumnError{Table: join.Table.Name}
		}
		candidates = append(candidates, join.Table.Name)
	}

	checkField := func(f types.Field) error {
		if f.Table != "" {
			_, err := s.lookup(f.Table, types.Field{Name: f.Name})
			return err
		}
		for _, table := range candidates {
			if _, err := s.column(table, f.Name); err == nil {
				return nil
			}
		}
		return UnknownColumnError{Table: ast.Target.Name, Column: f.Name}
	}

	var checkCondition func(item types.ConditionItem) error
	checkCondition = func(item types.ConditionItem) error {
		switch c := item.(type) {
		case types.Comparison:
			return checkField(c.Field)
		case types.FieldComparison:
			if err := checkField(c.LeftField); err != nil {
				return err
			}
			return checkField(c.RightField)
		case types.Pattern:
			return checkField(c.Field)
		case types.NullCheck:
			return checkField(c.Field)
		case types.Membership:
			return checkField(c.Field)
		case types.Range:
			return checkField(c.Field)
		case types.Group:
			for _, child := range c.Conditions {
				if err := checkCondition(child); err != nil {
					return err
				}
			}
		}
		return nil
	}

	for _, f := range ast.Fields {
		if err := checkField(f); err != nil {
			return err
		}
	}
	for _, join := range ast.Joins {
		if join.On != nil {
			if err := checkCondition(join.On); err != nil {
				return err
			}
		}
	}
	if ast.WhereClause != nil {
		if err := checkCondition(ast.WhereClause); err != nil {
			return err
		}
	}
	for _, o := range ast.Ordering {
		if err := checkField(o.Field); err != nil {
			return err
		}
	}
	for _, f := range ast.Returning {
		if err := checkField(f); err != nil {
			return err
		}
	}
	return nil
}
