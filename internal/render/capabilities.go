package render

// PlaceholderStyle selects how bound parameters appear in SQL text.
type PlaceholderStyle int

const (
	Numbered PlaceholderStyle = iota // $1, $2, ... (PostgreSQL)
	Question                         // ?, ?, ... (MySQL, SQLite)
)

// Capabilities describes the syntax and feature profile of a dialect.
// The renderer consults this before emitting any feature-gated clause;
// an unsupported clause fails compilation, it is never dropped or
// rewritten.
type Capabilities struct {
	Dialect      string // dialect name used in error messages
	QuoteOpen    string // identifier quote, opening
	QuoteClose   string // identifier quote, closing
	Placeholders PlaceholderStyle
	Returning    bool // RETURNING clause
	ILike        bool // ILIKE operator
	FullJoin     bool // FULL JOIN
	UpdateLimit  bool // LIMIT on UPDATE
	DeleteLimit  bool // LIMIT on DELETE
	BareOffset   bool // OFFSET without a LIMIT clause
}
