package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/soccer99/djazzle"
)

// Conn adapts a single *pgx.Conn as a non-blocking execution
// collaborator. A pgx.Conn is not safe for concurrent use, so it keeps
// single-goroutine affinity by running only on the client's dedicated
// worker; the blocking convention is rejected for it.
type Conn struct {
	conn *pgx.Conn
}

// NewConn wraps a pgx connection.
func NewConn(conn *pgx.Conn) *Conn {
	return &Conn{conn: conn}
}

// Kind reports the non-blocking convention.
func (c *Conn) Kind() djazzle.ConnKind {
	return djazzle.NonBlocking
}

// Query executes a statement that produces a result set.
func (c *Conn) Query(ctx context.Context, sql string, args []any) (*djazzle.Rows, error) {
	rows, err := c.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRows(rows)
}

// Exec executes a statement without a result set.
func (c *Conn) Exec(ctx context.Context, sql string, args []any) error {
	_, err := c.conn.Exec(ctx, sql, args...)
	return err
}

// Pool adapts a *pgxpool.Pool as a blocking execution collaborator.
// The pool is safe for concurrent use from any goroutine.
type Pool struct {
	pool *pgxpool.Pool
}

// NewPool wraps a pgx connection pool.
func NewPool(pool *pgxpool.Pool) *Pool {
	return &Pool{pool: pool}
}

// Kind reports the blocking convention.
func (p *Pool) Kind() djazzle.ConnKind {
	return djazzle.Blocking
}

// Query executes a statement that produces a result set.
func (p *Pool) Query(ctx context.Context, sql string, args []any) (*djazzle.Rows, error) {
	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRows(rows)
}

// Exec executes a statement without a result set.
func (p *Pool) Exec(ctx context.Context, sql string, args []any) error {
	_, err := p.pool.Exec(ctx, sql, args...)
	return err
}

// collectRows drains pgx rows into the raw tuple form.
func collectRows(rows pgx.Rows) (*djazzle.Rows, error) {
	fields := rows.FieldDescriptions()
	cols := make([]string, 0, len(fields))
	for _, f := range fields {
		cols = append(cols, f.Name)
	}

	out := &djazzle.Rows{Columns: cols}
	for rows.Next() {
		tuple, err := rows.Values()
		if err != nil {
			return nil, err
		}
		out.Values = append(out.Values, tuple)
	}
	return out, rows.Err()
}
