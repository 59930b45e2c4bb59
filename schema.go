package djazzle

import (
	"fmt"
	"strings"

	"github.com/zoobzio/dbml"

	"github.com/soccer99/djazzle/internal/types"
)

// ColumnType is a column's semantic type tag. The validator checks
// insert/update literals against this closed set; the core never
// introspects the database itself.
type ColumnType int

const (
	TypeText ColumnType = iota
	TypeInteger
	TypeFloat
	TypeBoolean
	TypeStructured
	TypeForeignKey
)

// String returns the tag name used in error messages.
func (t ColumnType) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeInteger:
		return "integer"
	case TypeFloat:
		return "float"
	case TypeBoolean:
		return "boolean"
	case TypeStructured:
		return "structured"
	case TypeForeignKey:
		return "foreign-key"
	default:
		return fmt.Sprintf("ColumnType(%d)", int(t))
	}
}

// Column describes one column of a schema table.
type Column struct {
	Name       string
	Type       ColumnType
	Nullable   bool
	PrimaryKey bool
}

// TableDef describes one table: its name and ordered column list.
type TableDef struct {
	Name    string
	Columns []Column
}

// Schema is the consumed schema descriptor: table names and each
// column's semantic type and nullability. It is an input to the core,
// never derived by it.
type Schema struct {
	tables map[string]TableDef
	// columns indexes table -> column name -> column for fast lookup.
	columns map[string]map[string]Column
}

// NewSchema creates a schema from explicit table definitions.
func NewSchema(tables ...TableDef) (*Schema, error) {
	s := &Schema{
		tables:  make(map[string]TableDef),
		columns: make(map[string]map[string]Column),
	}
	for _, t := range tables {
		if !isValidSQLIdentifier(t.Name) {
			return nil, fmt.Errorf("invalid table name: %q", t.Name)
		}
		if _, ok := s.tables[t.Name]; ok {
			return nil, fmt.Errorf("duplicate table %q", t.Name)
		}
		cols := make(map[string]Column, len(t.Columns))
		for _, c := range t.Columns {
			if !isValidSQLIdentifier(c.Name) {
				return nil, fmt.Errorf("invalid column name %q in table %q", c.Name, t.Name)
			}
			if _, ok := cols[c.Name]; ok {
				return nil, fmt.Errorf("duplicate column %q in table %q", c.Name, t.Name)
			}
			cols[c.Name] = c
		}
		s.tables[t.Name] = t
		s.columns[t.Name] = cols
	}
	return s, nil
}

// NewFromDBML creates a schema from a DBML project, mapping DBML column
// types to semantic type tags. DBML carries no nullability in the parts
// this package consumes, so columns default to nullable; use NewSchema
// when exact nullability matters.
func NewFromDBML(project *dbml.Project) (*Schema, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}
	defs := make([]TableDef, 0, len(project.Tables))
	for _, table := range project.Tables {
		def := TableDef{Name: table.Name}
		for _, col := range table.Columns {
			def.Columns = append(def.Columns, Column{
				Name:     col.Name,
				Type:     columnTypeFromDBML(col.Type),
				Nullable: true,
			})
		}
		defs = append(defs, def)
	}
	return NewSchema(defs...)
}

// columnTypeFromDBML maps a DBML type string to a semantic type tag.
// Unrecognized types fall back to text.
func columnTypeFromDBML(dbmlType string) ColumnType {
	t := strings.ToLower(dbmlType)
	// Strip a length suffix like varchar(255).
	if idx := strings.IndexByte(t, '('); idx >= 0 {
		t = t[:idx]
	}
	switch t {
	case "int", "integer", "smallint", "bigint", "serial", "bigserial":
		return TypeInteger
	case "float", "real", "double", "numeric", "decimal":
		return TypeFloat
	case "bool", "boolean":
		return TypeBoolean
	case "json", "jsonb":
		return TypeStructured
	default:
		return TypeText
	}
}

// T creates a table reference validated against the schema.
func (s *Schema) T(name string) types.Table {
	t, err := s.TryT(name)
	if err != nil {
		panic(err)
	}
	return t
}

// TryT creates a table reference, returning an error when the schema
// does not declare the table.
func (s *Schema) TryT(name string) (types.Table, error) {
	if _, ok := s.tables[name]; !ok {
		return types.Table{}, UnknownColumnError{Table: name}
	}
	return types.Table{Name: name}, nil
}

// F creates a column reference validated against the schema. The name
// may be qualified as "table.column".
func (s *Schema) F(name string) types.Field {
	f, err := s.TryF(name)
	if err != nil {
		panic(err)
	}
	return f
}

// TryF creates a column reference, returning an error when no declared
// table carries the column (or, for qualified names, when the named
// table does not).
func (s *Schema) TryF(name string) (types.Field, error) {
	f, err := TryF(name)
	if err != nil {
		return types.Field{}, err
	}
	if f.Table != "" {
		cols, ok := s.columns[f.Table]
		if !ok {
			return types.Field{}, UnknownColumnError{Table: f.Table}
		}
		if _, ok := cols[f.Name]; !ok {
			return types.Field{}, UnknownColumnError{Table: f.Table, Column: f.Name}
		}
		return f, nil
	}
	for _, cols := range s.columns {
		if _, ok := cols[f.Name]; ok {
			return f, nil
		}
	}
	return types.Field{}, fmt.Errorf("column %q not found in schema", f.Name)
}

// Table returns a declared table definition.
func (s *Schema) Table(name string) (TableDef, bool) {
	t, ok := s.tables[name]
	return t, ok
}

// lookup returns a column of a table, preferring the field's own
// qualifier over the statement's target table.
func (s *Schema) lookup(target string, f types.Field) (Column, error) {
	table := target
	if f.Table != "" {
		table = f.Table
	}
	cols, ok := s.columns[table]
	if !ok {
		return Column{}, UnknownColumnError{Table: table}
	}
	col, ok := cols[f.Name]
	if !ok {
		return Column{}, UnknownColumnError{Table: table, Column: f.Name}
	}
	return col, nil
}

// column returns a column of a table by bare name.
func (s *Schema) column(table, name string) (Column, error) {
	return s.lookup(table, types.Field{Name: name})
}
