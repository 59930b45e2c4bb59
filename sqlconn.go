package djazzle

import (
	"context"
	"database/sql"
)

// DB adapts a database/sql pool as a blocking execution collaborator.
// *sql.DB is safe for concurrent use, so the blocking convention calls
// it straight from the caller's goroutine.
type DB struct {
	db *sql.DB
}

// NewDB wraps a database/sql pool.
func NewDB(db *sql.DB) *DB {
	return &DB{db: db}
}

// Kind reports the blocking convention.
func (d *DB) Kind() ConnKind {
	return Blocking
}

// Query executes a statement that produces a result set.
func (d *DB) Query(ctx context.Context, query string, args []any) (*Rows, error) {
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := &Rows{Columns: cols}
	for rows.Next() {
		tuple := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range tuple {
			ptrs[i] = &tuple[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		out.Values = append(out.Values, tuple)
	}
	return out, rows.Err()
}

// Exec executes a statement without a result set.
func (d *DB) Exec(ctx context.Context, query string, args []any) error {
	_, err := d.db.ExecContext(ctx, query, args...)
	return err
}
