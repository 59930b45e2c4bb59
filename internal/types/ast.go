package types

import (
	"fmt"
	"sort"
)

// Operation represents the type of query operation.
type Operation string

const (
	OpSelect Operation = "SELECT"
	OpInsert Operation = "INSERT"
	OpUpdate Operation = "UPDATE"
	OpDelete Operation = "DELETE"
)

// Direction represents sort direction.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// OrderBy represents one ORDER BY term.
type OrderBy struct {
	Field     Field
	Direction Direction
}

// JoinType represents the type of SQL join.
type JoinType string

const (
	InnerJoin JoinType = "INNER JOIN"
	LeftJoin  JoinType = "LEFT JOIN"
	RightJoin JoinType = "RIGHT JOIN"
	FullJoin  JoinType = "FULL JOIN"
)

// Join represents a SQL JOIN clause. Joins render in call order.
type Join struct {
	On    ConditionItem
	Table Table
	Type  JoinType
}

// Row is one INSERT value set, keyed by column name.
type Row map[string]Literal

// Columns returns the row's column names in sorted order. Rows are maps,
// so rendering and validation sort to keep compiled output deterministic.
func (r Row) Columns() []string {
	cols := make([]string, 0, len(r))
	for c := range r {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

// AST represents the abstract syntax tree for one statement.
// This is exported from the internal package so the base and dialect
// packages can use it, but external users cannot import this package.
//
//nolint:govet // fieldalignment: Logical grouping is preferred over memory optimization
type AST struct {
	Operation    Operation
	Target       Table
	Fields       []Field
	Distinct     bool
	Joins        []Join
	WhereClause  ConditionItem
	Ordering     []OrderBy
	Limit        *int
	Offset       *int
	Updates      Row   // For UPDATE operations
	Values       []Row // For INSERT operations
	Returning    []Field
	ReturningAll bool // RETURNING * (RETURNING with no fields)
}

// InconsistentColumnsError indicates a bulk-insert row whose column set
// differs from the first row's.
type InconsistentColumnsError struct {
	Row     int // zero-based index of the offending row
	Missing []string
	Extra   []string
}

func (e InconsistentColumnsError) Error() string {
	return fmt.Sprintf("insert row %d has a different column set than row 0 (missing %v, extra %v)", e.Row, e.Missing, e.Extra)
}

// Validate performs structural validation on the AST.
func (ast *AST) Validate() error {
	if ast.Target.Name == "" {
		return fmt.Errorf("target table is required")
	}

	switch ast.Operation {
	case OpSelect:
		// Fields are optional (defaults to *).
	case OpInsert:
		if len(ast.Values) == 0 {
			return fmt.Errorf("INSERT requires at least one row of values")
		}
		if err := checkRowShapes(ast.Values); err != nil {
			return err
		}
	case OpUpdate:
		if len(ast.Updates) == 0 {
			return fmt.Errorf("UPDATE requires at least one assignment")
		}
	case OpDelete:
		// No predicate means delete all rows, mirroring raw SQL.
	default:
		return fmt.Errorf("unsupported operation: %s", ast.Operation)
	}

	return nil
}

// checkRowShapes verifies every row covers the same column set as row 0,
// order-independent, and reports the first offending row.
func checkRowShapes(rows []Row) error {
	first := rows[0]
	for i, row := range rows[1:] {
		var missing, extra []string
		for c := range first {
			if _, ok := row[c]; !ok {
				missing = append(missing, c)
			}
		}
		for c := range row {
			if _, ok := first[c]; !ok {
				extra = append(extra, c)
			}
		}
		if len(missing) > 0 || len(extra) > 0 {
			sort.Strings(missing)
			sort.Strings(extra)
			return InconsistentColumnsError{Row: i + 1, Missing: missing, Extra: extra}
		}
	}
	return nil
}
