package types

// Statement is a compiled statement: the rendered SQL text and the
// ordered argument sequence. Args[N] is the value bound to the Nth
// placeholder in SQL. Columns carries the projection labels of a SELECT
// (or RETURNING list), in render order, for result materialization;
// it is nil when the statement projects * or returns nothing. Returns
// reports whether executing the statement produces a result set.
type Statement struct {
	SQL     string
	Args    []any
	Columns []string
	Returns bool
}
