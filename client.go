package djazzle

import (
	"context"
	"sync"
)

// Client binds a schema descriptor, a dialect renderer, and exactly one
// execution collaborator. Queries compiled through a client validate
// every column reference and payload value against the schema before
// any SQL is rendered.
//
// A client is safe for concurrent use across independent builders; a
// single builder still belongs to one logical flow.
type Client struct {
	schema   *Schema
	renderer Renderer
	conn     Conn

	mu     sync.Mutex
	jobs   chan job
	done   chan struct{}
	closed bool
}

// NewClient creates a client. The collaborator's kind decides which
// calling convention the client accepts: Run for blocking, Defer for
// non-blocking.
func NewClient(schema *Schema, renderer Renderer, conn Conn) *Client {
	return &Client{schema: schema, renderer: renderer, conn: conn}
}

// Schema returns the bound schema descriptor.
func (c *Client) Schema() *Schema {
	return c.schema
}

// Compile validates a builder's statement against the schema and
// renders it. The compiled statement exposes the SQL text and ordered
// arguments for inspection; compilation has no side effect and
// compiling twice yields identical output.
func (c *Client) Compile(b *Builder) (*Statement, error) {
	ast, err := b.Build()
	if err != nil {
		return nil, err
	}
	if err := c.schema.ValidateReferences(ast); err != nil {
		return nil, err
	}
	if err := c.schema.ValidatePayload(ast); err != nil {
		return nil, err
	}
	return c.renderer.Render(ast)
}

// Run compiles and executes a statement with the blocking convention.
// It fails with a ConventionMismatchError, touching no database, when
// the bound collaborator is non-blocking. The result is nil for
// INSERT/UPDATE/DELETE without a RETURNING clause.
func (c *Client) Run(ctx context.Context, b *Builder) (*Result, error) {
	stmt, err := c.Compile(b)
	if err != nil {
		return nil, err
	}
	if c.conn.Kind() != Blocking {
		return nil, ConventionMismatchError{Want: Blocking, Got: c.conn.Kind()}
	}
	return c.execute(ctx, stmt)
}

// Defer compiles a statement and enqueues it on the client's dedicated
// worker with the non-blocking convention, returning a Future. The
// connection handle is only touched on the worker goroutine, so
// single-affinity collaborators keep their affinity across the
// suspension point. Defer fails with a ConventionMismatchError when the
// bound collaborator is blocking.
func (c *Client) Defer(ctx context.Context, b *Builder) (*Future, error) {
	stmt, err := c.Compile(b)
	if err != nil {
		return nil, err
	}
	if c.conn.Kind() != NonBlocking {
		return nil, ConventionMismatchError{Want: NonBlocking, Got: c.conn.Kind()}
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClientClosed
	}
	if c.jobs == nil {
		c.jobs = make(chan job)
		c.done = make(chan struct{})
		go c.work()
	}
	jobs, done := c.jobs, c.done
	c.mu.Unlock()

	f := &Future{ch: make(chan execResult, 1)}
	select {
	case jobs <- job{ctx: ctx, stmt: stmt, future: f}:
		return f, nil
	case <-done:
		return nil, ErrClientClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close stops the worker goroutine, if one was started. In-flight work
// runs to completion; there is no cancellation once dispatched.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.done != nil {
		close(c.done)
	}
}

// work drains the job queue on the dedicated worker goroutine.
func (c *Client) work() {
	for {
		select {
		case j := <-c.jobs:
			result, err := c.execute(j.ctx, j.stmt)
			j.future.ch <- execResult{result: result, err: err}
		case <-c.done:
			return
		}
	}
}

// execute dispatches a compiled statement to the collaborator and
// materializes the raw rows. Collaborator errors pass through as-is.
func (c *Client) execute(ctx context.Context, stmt *Statement) (*Result, error) {
	if !stmt.Returns {
		if err := c.conn.Exec(ctx, stmt.SQL, stmt.Args); err != nil {
			return nil, err
		}
		return nil, nil
	}
	rows, err := c.conn.Query(ctx, stmt.SQL, stmt.Args)
	if err != nil {
		return nil, err
	}
	return newResult(stmt, rows), nil
}
