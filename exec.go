package djazzle

import "context"

// ConnKind flags an execution collaborator's calling convention.
type ConnKind int

const (
	// Blocking collaborators are safe to call from the caller's
	// goroutine (e.g. database/sql pools, pgx pools).
	Blocking ConnKind = iota
	// NonBlocking collaborators carry an affinity to a single
	// goroutine (e.g. a bare pgx.Conn) and must only be driven from
	// the client's dedicated worker.
	NonBlocking
)

func (k ConnKind) String() string {
	if k == NonBlocking {
		return "non-blocking"
	}
	return "blocking"
}

// Rows is the raw result of an execution collaborator: the driver's
// column names and the row tuples in driver order.
type Rows struct {
	Columns []string
	Values  [][]any
}

// Conn is the execution collaborator contract. The core hands it a
// compiled (SQL, ordered arguments) pair and takes raw rows back; the
// collaborator owns the physical connection, its thread affinity, and
// any timeout policy. Errors it returns pass through unmodified — the
// core never retries.
type Conn interface {
	// Kind reports the collaborator's calling convention.
	Kind() ConnKind

	// Query executes a statement that produces a result set.
	Query(ctx context.Context, sql string, args []any) (*Rows, error)

	// Exec executes a statement without a result set.
	Exec(ctx context.Context, sql string, args []any) error
}

// execResult carries a finished execution to a waiting Future.
type execResult struct {
	result *Result
	err    error
}

// Future is the handle for a deferred execution. It never carries the
// connection handle itself; the query runs to completion or failure on
// the client's worker goroutine.
type Future struct {
	ch chan execResult
}

// Wait blocks until the deferred execution finishes and returns its
// result. Wait may be called once.
func (f *Future) Wait() (*Result, error) {
	r := <-f.ch
	return r.result, r.err
}

// job is one unit of work for the client's worker goroutine.
type job struct {
	ctx    context.Context
	stmt   *Statement
	future *Future
}
