// Package postgres provides the PostgreSQL dialect for djazzle:
// the renderer capability profile and pgx-backed execution
// collaborators.
package postgres

import (
	"github.com/soccer99/djazzle/internal/render"
)

// Capabilities is PostgreSQL's syntax and feature profile: double-quote
// identifiers, numbered $N placeholders, RETURNING, ILIKE, FULL JOIN
// and bare OFFSET support, no LIMIT on UPDATE/DELETE.
func Capabilities() render.Capabilities {
	return render.Capabilities{
		Dialect:      "postgres",
		QuoteOpen:    `"`,
		QuoteClose:   `"`,
		Placeholders: render.Numbered,
		Returning:    true,
		ILike:        true,
		FullJoin:     true,
		BareOffset:   true,
	}
}

// Renderer implements the PostgreSQL dialect renderer.
type Renderer struct {
	*render.Renderer
}

// New creates a new PostgreSQL renderer.
func New() *Renderer {
	return &Renderer{render.New(Capabilities())}
}
