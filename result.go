package djazzle

// Hydrator populates an externally-defined record instance from one
// name-to-value mapping. It is supplied by the caller alongside the
// schema descriptor; the core never reflects over record types itself.
type Hydrator interface {
	Populate(row map[string]any) (any, error)
}

// HydratorFunc adapts a function to the Hydrator interface.
type HydratorFunc func(row map[string]any) (any, error)

// Populate calls the function.
func (f HydratorFunc) Populate(row map[string]any) (any, error) {
	return f(row)
}

// Result materializes the raw row tuples of one execution. Each result
// carries its own isolated rows; nothing is shared between statements.
type Result struct {
	raw *Rows
	// columns are the mapping keys: the compiled statement's
	// projection labels when the projection was explicit, otherwise
	// the driver's column names.
	columns []string
}

// newResult picks the mapping keys for a result set. An explicit
// projection supplies its labels (alias, or qualified "table.column"
// when the caller qualified the field); a * projection falls back to
// the driver's column names.
func newResult(stmt *Statement, raw *Rows) *Result {
	columns := raw.Columns
	if len(stmt.Columns) > 0 && len(stmt.Columns) == len(raw.Columns) {
		columns = stmt.Columns
	}
	return &Result{raw: raw, columns: columns}
}

// Raw returns the underlying row tuples.
func (r *Result) Raw() *Rows {
	return r.raw
}

// Len returns the number of rows.
func (r *Result) Len() int {
	return len(r.raw.Values)
}

// Maps converts the rows into name-to-value mappings. When an
// unqualified projection over joined tables collides on a column name,
// the last-rendered column wins — the documented last-joined-table
// behavior; qualify the projection (or use MapsStrict) to avoid the
// shadowing.
func (r *Result) Maps() []map[string]any {
	out := make([]map[string]any, 0, len(r.raw.Values))
	for _, tuple := range r.raw.Values {
		row := make(map[string]any, len(r.columns))
		for i, col := range r.columns {
			if i < len(tuple) {
				row[col] = tuple[i]
			}
		}
		out = append(out, row)
	}
	return out
}

// MapsStrict is Maps, except a column name collision fails with a
// DuplicateColumnError instead of silently shadowing.
func (r *Result) MapsStrict() ([]map[string]any, error) {
	seen := make(map[string]bool, len(r.columns))
	for _, col := range r.columns {
		if seen[col] {
			return nil, DuplicateColumnError{Column: col}
		}
		seen[col] = true
	}
	return r.Maps(), nil
}

// Hydrate maps every row through the caller's hydration collaborator.
func (r *Result) Hydrate(h Hydrator) ([]any, error) {
	rows := r.Maps()
	out := make([]any, 0, len(rows))
	for _, row := range rows {
		record, err := h.Populate(row)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}
