// Package render implements the dialect-parameterized SQL renderer.
// A Renderer is a pure function from (AST, Capabilities) to a compiled
// Statement: rendering never mutates the AST, so compiling the same AST
// twice yields byte-identical SQL and arguments.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/soccer99/djazzle/internal/types"
)

// Renderer renders an AST to SQL for one dialect.
type Renderer struct {
	caps Capabilities
}

// New creates a renderer for the given dialect capabilities.
func New(caps Capabilities) *Renderer {
	return &Renderer{caps: caps}
}

// Capabilities returns the dialect capability table the renderer consults.
func (r *Renderer) Capabilities() Capabilities {
	return r.caps
}

// renderContext accumulates the ordered argument sequence during one
// render. The Nth placeholder emitted always corresponds to args[N].
type renderContext struct {
	caps Capabilities
	args []any
}

// bind appends a literal to the argument sequence and returns the
// dialect placeholder that stands for it in the SQL text.
func (ctx *renderContext) bind(l types.Literal) string {
	ctx.args = append(ctx.args, l.Value())
	if ctx.caps.Placeholders == Numbered {
		return "$" + strconv.Itoa(len(ctx.args))
	}
	return "?"
}

// Render compiles an AST to a Statement, or fails atomically: on any
// error no partial SQL is returned.
func (r *Renderer) Render(ast *types.AST) (*types.Statement, error) {
	if err := ast.Validate(); err != nil {
		return nil, err
	}
	if err := r.checkCapabilities(ast); err != nil {
		return nil, err
	}

	var sql strings.Builder
	ctx := &renderContext{caps: r.caps}
	var columns []string
	var err error

	switch ast.Operation {
	case types.OpSelect:
		columns, err = r.renderSelect(ast, &sql, ctx)
	case types.OpInsert:
		columns, err = r.renderInsert(ast, &sql, ctx)
	case types.OpUpdate:
		columns, err = r.renderUpdate(ast, &sql, ctx)
	case types.OpDelete:
		columns, err = r.renderDelete(ast, &sql, ctx)
	default:
		err = fmt.Errorf("unsupported operation: %s", ast.Operation)
	}
	if err != nil {
		return nil, err
	}

	returns := ast.Operation == types.OpSelect ||
		ast.ReturningAll || len(ast.Returning) > 0

	return &types.Statement{
		SQL:     sql.String(),
		Args:    ctx.args,
		Columns: columns,
		Returns: returns,
	}, nil
}

// checkCapabilities walks the whole AST before any text is produced, so
// an unsupported clause fails without emitting partial SQL.
func (r *Renderer) checkCapabilities(ast *types.AST) error {
	if (len(ast.Returning) > 0 || ast.ReturningAll) && !r.caps.Returning {
		return NewUnsupportedFeatureError(r.caps.Dialect, "RETURNING")
	}
	if ast.Limit != nil {
		switch ast.Operation {
		case types.OpUpdate:
			if !r.caps.UpdateLimit {
				return NewUnsupportedFeatureError(r.caps.Dialect, "LIMIT on UPDATE")
			}
		case types.OpDelete:
			if !r.caps.DeleteLimit {
				return NewUnsupportedFeatureError(r.caps.Dialect, "LIMIT on DELETE")
			}
		}
	}
	if ast.Offset != nil && ast.Limit == nil && !r.caps.BareOffset {
		return NewUnsupportedFeatureError(r.caps.Dialect, "OFFSET without LIMIT", "add a LIMIT clause")
	}
	for _, join := range ast.Joins {
		if join.Type == types.FullJoin && !r.caps.FullJoin {
			return NewUnsupportedFeatureError(r.caps.Dialect, "FULL JOIN")
		}
		if err := r.checkConditionCapabilities(join.On); err != nil {
			return err
		}
	}
	if ast.WhereClause != nil {
		if err := r.checkConditionCapabilities(ast.WhereClause); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) checkConditionCapabilities(item types.ConditionItem) error {
	switch c := item.(type) {
	case types.Pattern:
		if c.CaseInsensitive && !r.caps.ILike {
			return NewUnsupportedFeatureError(r.caps.Dialect, "ILIKE", "use LIKE with a normalized pattern")
		}
	case types.Group:
		for _, child := range c.Conditions {
			if err := r.checkConditionCapabilities(child); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) renderSelect(ast *types.AST, sql *strings.Builder, ctx *renderContext) ([]string, error) {
	sql.WriteString("SELECT ")
	if ast.Distinct {
		sql.WriteString("DISTINCT ")
	}

	var columns []string
	if len(ast.Fields) == 0 {
		sql.WriteString("*")
	} else {
		projections := make([]string, 0, len(ast.Fields))
		columns = make([]string, 0, len(ast.Fields))
		for _, f := range ast.Fields {
			projections = append(projections, r.renderProjection(f))
			columns = append(columns, f.Label())
		}
		sql.WriteString(strings.Join(projections, ", "))
	}

	sql.WriteString(" FROM ")
	sql.WriteString(r.quote(ast.Target.Name))

	for _, join := range ast.Joins {
		sql.WriteString(" ")
		sql.WriteString(string(join.Type))
		sql.WriteString(" ")
		sql.WriteString(r.quote(join.Table.Name))
		sql.WriteString(" ON ")
		on, err := r.renderCondition(join.On, ctx)
		if err != nil {
			return nil, err
		}
		sql.WriteString(on)
	}

	if err := r.renderWhere(ast, sql, ctx); err != nil {
		return nil, err
	}

	if len(ast.Ordering) > 0 {
		terms := make([]string, 0, len(ast.Ordering))
		for _, o := range ast.Ordering {
			terms = append(terms, r.renderField(o.Field)+" "+string(o.Direction))
		}
		sql.WriteString(" ORDER BY ")
		sql.WriteString(strings.Join(terms, ", "))
	}

	if ast.Limit != nil {
		fmt.Fprintf(sql, " LIMIT %d", *ast.Limit)
	}
	if ast.Offset != nil {
		fmt.Fprintf(sql, " OFFSET %d", *ast.Offset)
	}

	return columns, nil
}

func (r *Renderer) renderInsert(ast *types.AST, sql *strings.Builder, ctx *renderContext) ([]string, error) {
	// Row maps carry no order, so columns render in sorted order to keep
	// compiled output deterministic. Row shapes were checked in Validate.
	cols := ast.Values[0].Columns()

	sql.WriteString("INSERT INTO ")
	sql.WriteString(r.quote(ast.Target.Name))
	sql.WriteString(" (")
	quoted := make([]string, 0, len(cols))
	for _, c := range cols {
		quoted = append(quoted, r.quote(c))
	}
	sql.WriteString(strings.Join(quoted, ", "))
	sql.WriteString(") VALUES ")

	rows := make([]string, 0, len(ast.Values))
	for _, row := range ast.Values {
		placeholders := make([]string, 0, len(cols))
		for _, c := range cols {
			placeholders = append(placeholders, ctx.bind(row[c]))
		}
		rows = append(rows, "("+strings.Join(placeholders, ", ")+")")
	}
	sql.WriteString(strings.Join(rows, ", "))

	return r.renderReturning(ast, sql), nil
}

func (r *Renderer) renderUpdate(ast *types.AST, sql *strings.Builder, ctx *renderContext) ([]string, error) {
	sql.WriteString("UPDATE ")
	sql.WriteString(r.quote(ast.Target.Name))
	sql.WriteString(" SET ")

	assignments := make([]string, 0, len(ast.Updates))
	for _, c := range ast.Updates.Columns() {
		assignments = append(assignments, r.quote(c)+" = "+ctx.bind(ast.Updates[c]))
	}
	sql.WriteString(strings.Join(assignments, ", "))

	if err := r.renderWhere(ast, sql, ctx); err != nil {
		return nil, err
	}
	if ast.Limit != nil {
		fmt.Fprintf(sql, " LIMIT %d", *ast.Limit)
	}

	return r.renderReturning(ast, sql), nil
}

func (r *Renderer) renderDelete(ast *types.AST, sql *strings.Builder, ctx *renderContext) ([]string, error) {
	sql.WriteString("DELETE FROM ")
	sql.WriteString(r.quote(ast.Target.Name))

	if err := r.renderWhere(ast, sql, ctx); err != nil {
		return nil, err
	}
	if ast.Limit != nil {
		fmt.Fprintf(sql, " LIMIT %d", *ast.Limit)
	}

	return r.renderReturning(ast, sql), nil
}

func (r *Renderer) renderWhere(ast *types.AST, sql *strings.Builder, ctx *renderContext) error {
	if ast.WhereClause == nil {
		return nil
	}
	clause, err := r.renderCondition(ast.WhereClause, ctx)
	if err != nil {
		return err
	}
	sql.WriteString(" WHERE ")
	sql.WriteString(clause)
	return nil
}

// renderReturning appends the RETURNING clause and returns the result
// column labels it will surface. Capability support was checked upfront.
func (r *Renderer) renderReturning(ast *types.AST, sql *strings.Builder) []string {
	if ast.ReturningAll {
		sql.WriteString(" RETURNING *")
		return nil
	}
	if len(ast.Returning) == 0 {
		return nil
	}
	fields := make([]string, 0, len(ast.Returning))
	columns := make([]string, 0, len(ast.Returning))
	for _, f := range ast.Returning {
		fields = append(fields, r.renderField(f))
		columns = append(columns, f.Label())
	}
	sql.WriteString(" RETURNING ")
	sql.WriteString(strings.Join(fields, ", "))
	return columns
}

// renderCondition renders one predicate node. Literals bind in
// depth-first, left-to-right order.
func (r *Renderer) renderCondition(item types.ConditionItem, ctx *renderContext) (string, error) {
	switch c := item.(type) {
	case types.Comparison:
		return r.renderField(c.Field) + " " + string(c.Operator) + " " + ctx.bind(c.Value), nil

	case types.FieldComparison:
		return r.renderField(c.LeftField) + " " + string(c.Operator) + " " + r.renderField(c.RightField), nil

	case types.Pattern:
		op := "LIKE"
		if c.CaseInsensitive {
			op = "ILIKE"
		}
		if c.Negated {
			op = "NOT " + op
		}
		return r.renderField(c.Field) + " " + op + " " + ctx.bind(c.Pattern), nil

	case types.NullCheck:
		if c.IsNull {
			return r.renderField(c.Field) + " IS NULL", nil
		}
		return r.renderField(c.Field) + " IS NOT NULL", nil

	case types.Membership:
		if len(c.Values) == 0 {
			// Empty membership is vacuously false (or true when
			// negated); emitting IN () would be invalid SQL.
			if c.Negated {
				return "1 = 1", nil
			}
			return "1 = 0", nil
		}
		placeholders := make([]string, 0, len(c.Values))
		for _, v := range c.Values {
			placeholders = append(placeholders, ctx.bind(v))
		}
		op := "IN"
		if c.Negated {
			op = "NOT IN"
		}
		return r.renderField(c.Field) + " " + op + " (" + strings.Join(placeholders, ", ") + ")", nil

	case types.Range:
		low := ctx.bind(c.Low)
		high := ctx.bind(c.High)
		return r.renderField(c.Field) + " BETWEEN " + low + " AND " + high, nil

	case types.Group:
		if len(c.Conditions) == 0 {
			return "", fmt.Errorf("%s group requires at least one condition", c.Logic)
		}
		clauses := make([]string, 0, len(c.Conditions))
		for _, child := range c.Conditions {
			clause, err := r.renderCondition(child, ctx)
			if err != nil {
				return "", err
			}
			clauses = append(clauses, "("+clause+")")
		}
		return strings.Join(clauses, " "+string(c.Logic)+" "), nil

	default:
		return "", fmt.Errorf("unsupported condition type: %T", item)
	}
}

// renderProjection renders a field for the SELECT list, including its
// alias when present.
func (r *Renderer) renderProjection(f types.Field) string {
	s := r.renderField(f)
	if f.Alias != "" {
		s += " AS " + r.quote(f.Alias)
	}
	return s
}

// renderField renders a field reference, qualified when a table is set.
func (r *Renderer) renderField(f types.Field) string {
	if f.Table != "" {
		return r.quote(f.Table) + "." + r.quote(f.Name)
	}
	return r.quote(f.Name)
}

func (r *Renderer) quote(name string) string {
	return r.caps.QuoteOpen + name + r.caps.QuoteClose
}
