package djazzle

// Renderer defines the interface for SQL dialect-specific compilation.
// Implementations convert an AST to dialect-correct SQL text plus the
// ordered argument sequence, consulting their capability table before
// emitting any feature-gated clause.
type Renderer interface {
	// Render compiles an AST to a Statement, or fails atomically with
	// no partial SQL.
	Render(ast *AST) (*Statement, error)

	// Capabilities returns the dialect's feature and syntax profile.
	Capabilities() Capabilities
}
