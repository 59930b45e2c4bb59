// Package mysql provides the MySQL/MariaDB dialect for djazzle: the
// renderer capability profile and a database/sql collaborator backed by
// go-sql-driver/mysql.
package mysql

import (
	"database/sql"

	// Register the mysql driver for Open.
	_ "github.com/go-sql-driver/mysql"

	"github.com/soccer99/djazzle"
	"github.com/soccer99/djazzle/internal/render"
)

// Capabilities is MySQL's syntax and feature profile: backtick
// identifiers, sequential ? placeholders, LIMIT on UPDATE/DELETE, no
// RETURNING, no ILIKE, no FULL JOIN. OFFSET requires a LIMIT clause.
func Capabilities() render.Capabilities {
	return render.Capabilities{
		Dialect:      "mysql",
		QuoteOpen:    "`",
		QuoteClose:   "`",
		Placeholders: render.Question,
		UpdateLimit:  true,
		DeleteLimit:  true,
	}
}

// Renderer implements the MySQL dialect renderer.
type Renderer struct {
	*render.Renderer
}

// New creates a new MySQL renderer.
func New() *Renderer {
	return &Renderer{render.New(Capabilities())}
}

// Open opens a MySQL database and wraps it as a blocking execution
// collaborator.
func Open(dsn string) (*djazzle.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	return djazzle.NewDB(db), nil
}
