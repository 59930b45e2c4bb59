// Package djazzle is a fluent SQL query builder with schema-checked
// columns, typed literal binding, and multi-dialect compilation.
//
// The package compiles a chain of builder calls into dialect-correct SQL
// text plus an ordered argument list. Literals are never interpolated
// into the SQL text; every value binds through the dialect's placeholder
// syntax.
//
// # Basic Usage
//
// Statements can be built directly with the package-level builder
// functions and compiled against a dialect renderer:
//
//	import "github.com/soccer99/djazzle/postgres"
//
//	stmt, err := djazzle.Select(djazzle.T("users")).
//		Fields(djazzle.F("id"), djazzle.F("name")).
//		Where(djazzle.Eq(djazzle.F("id"), djazzle.Int(42))).
//		Render(postgres.New())
//	// stmt.SQL:  SELECT "id", "name" FROM "users" WHERE "id" = $1
//	// stmt.Args: []any{int64(42)}
//
// # Multi-Dialect Support
//
// Compilation is driven by a per-dialect capability table. Available
// dialects: postgres, mysql, sqlite. Requesting a clause the dialect
// lacks (RETURNING, ILIKE, FULL JOIN, LIMIT on UPDATE/DELETE, OFFSET
// without LIMIT) fails with an UnsupportedFeatureError before any SQL
// is produced; clauses are never silently dropped or rewritten.
//
// # Schema-Validated Usage
//
// A Schema describes tables and their columns' semantic types and
// nullability. Schemas are built natively or from a DBML project:
//
//	schema, err := djazzle.NewFromDBML(project)
//	users := schema.T("users")  // panics if the table is unknown
//
// A Client binds a schema, a renderer, and an execution collaborator.
// Client-bound queries validate every referenced column against the
// schema and check INSERT/UPDATE payloads against column types before
// compiling.
//
// # Execution
//
// The execution collaborator (Conn) is flagged blocking or non-blocking
// at construction. Run executes on the calling goroutine and requires a
// blocking collaborator; Defer enqueues on the client's dedicated worker
// goroutine and returns a Future, and requires a non-blocking
// collaborator. Using the wrong convention fails with a
// ConventionMismatchError without touching the database.
package djazzle
