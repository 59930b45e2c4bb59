package types

// Table represents a validated table reference.
// This is exported from the internal package so dialect packages can use it,
// but external users cannot import this package.
type Table struct {
	Name string
}

// GetName returns the table name.
func (t Table) GetName() string {
	return t.Name
}

// Field represents a validated column reference, optionally qualified with
// a table name for disambiguating joined tables and optionally carrying a
// projection alias.
type Field struct {
	Name  string // The column name (required)
	Table string // Optional table prefix
	Alias string // Optional projection alias
}

// WithTable returns a copy of the field qualified with a table name.
func (f Field) WithTable(table string) Field {
	f.Table = table
	return f
}

// As returns a copy of the field carrying a projection alias.
func (f Field) As(alias string) Field {
	f.Alias = alias
	return f
}

// Label is the name a projected field surfaces under in result rows:
// the alias when present, the qualified "table.column" form when the field
// is table-qualified, the bare column name otherwise.
func (f Field) Label() string {
	if f.Alias != "" {
		return f.Alias
	}
	if f.Table != "" {
		return f.Table + "." + f.Name
	}
	return f.Name
}
