// Package sqlite provides the SQLite dialect for djazzle: the renderer
// capability profile and a database/sql collaborator backed by the
// cgo-free modernc.org/sqlite driver.
package sqlite

import (
	"database/sql"

	// Register the sqlite driver for Open.
	_ "modernc.org/sqlite"

	"github.com/soccer99/djazzle"
	"github.com/soccer99/djazzle/internal/render"
)

// Capabilities is SQLite's syntax and feature profile: double-quote
// identifiers, sequential ? placeholders, RETURNING (3.35+) and FULL
// JOIN (3.39+) support, no ILIKE, no LIMIT on UPDATE/DELETE (a
// compile-time option in stock builds). OFFSET requires a LIMIT clause.
func Capabilities() render.Capabilities {
	return render.Capabilities{
		Dialect:      "sqlite",
		QuoteOpen:    `"`,
		QuoteClose:   `"`,
		Placeholders: render.Question,
		Returning:    true,
		FullJoin:     true,
	}
}

// Renderer implements the SQLite dialect renderer.
type Renderer struct {
	*render.Renderer
}

// New creates a new SQLite renderer.
func New() *Renderer {
	return &Renderer{render.New(Capabilities())}
}

// Open opens a SQLite database and wraps it as a blocking execution
// collaborator. Use ":memory:" for an in-memory database.
func Open(dsn string) (*djazzle.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	return djazzle.NewDB(db), nil
}
