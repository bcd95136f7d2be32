package ddl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sqlkit-go/sqlkit/dialect"
	"github.com/sqlkit-go/sqlkit/raw"
	"github.com/sqlkit-go/sqlkit/sqldebug"
)

// CreateViewBuilder builds CREATE VIEW statements.
type CreateViewBuilder struct {
	viewName     string
	selectSQL    string
	orReplace    bool
	materialized bool // renders CREATE MATERIALIZED VIEW
	err          error
	dialect      dialect.Dialect
}

// CreateView creates a new CREATE VIEW builder.
func CreateView(viewName string) *CreateViewBuilder {
	if viewName == "" {
		return &CreateViewBuilder{err: errors.New("view name is required")}
	}
	return &CreateViewBuilder{
		viewName: viewName,
	}
}

// As sets the view definition using a builder or Raw.
// Expected arguments:
//   - Raw: for literal SQL strings (e.g., Raw("SELECT * FROM users"))
//   - Any value implementing Build() (string, []interface{}, error): for composable query builders
//     (any custom builder with an argument-free Build method; the qb builders take a dialect in Build and do not qualify)
//
// Examples:
//   - As(Raw("SELECT id, name FROM users WHERE active = 1"))
//   - As(b), where b has a Build() (string, []interface{}, error) method that returns no arguments
func (b *CreateViewBuilder) As(query interface{}) *CreateViewBuilder {
	if b.err != nil {
		return b
	}
	if query == nil {
		b.err = errors.New("view definition is required")
		return b
	}

	switch v := query.(type) {
	case raw.Raw:
		b.selectSQL = string(v)
		return b
	case *raw.Raw:
		b.selectSQL = string(*v)
		return b
	case interface {
		Build() (string, []interface{}, error)
	}:
		sql, args, err := v.Build()
		if err != nil {
			b.err = fmt.Errorf("failed to build view definition: %w", err)
			return b
		}
		if len(args) > 0 {
			b.err = errors.New("view definition builder must not use arguments")
			return b
		}
		b.selectSQL = sql
		return b
	default:
		b.err = errors.New("As() expects a builder with Build() or Raw")
		return b
	}
}

// OrReplace adds OR REPLACE to the CREATE VIEW statement.
func (b *CreateViewBuilder) OrReplace() *CreateViewBuilder {
	if b.err != nil {
		return b
	}
	b.orReplace = true
	return b
}

// Materialized marks this as a materialized view (CREATE MATERIALIZED VIEW).
func (b *CreateViewBuilder) Materialized() *CreateViewBuilder {
	if b.err != nil {
		return b
	}
	b.materialized = true
	return b
}

// WithDialect sets the dialect for this builder instance.
func (b *CreateViewBuilder) WithDialect(d dialect.Dialect) *CreateViewBuilder {
	if b.err != nil {
		return b
	}
	b.dialect = d
	return b
}

// Build builds the SQL CREATE VIEW query and returns the query string, arguments, and error if any.
func (b *CreateViewBuilder) Build() (string, []interface{}, error) {
	if b.err != nil {
		return "", nil, b.err
	}
	if b.viewName == "" {
		return "", nil, errors.New("view name is required")
	}
	if b.selectSQL == "" {
		return "", nil, errors.New("view definition is required")
	}

	dlct := b.dialect
	if dlct == nil {
		dlct = dialect.Default() // Use global dialect instead of defaulting to MySQL
	}

	var sb strings.Builder
	args := []interface{}{}

	// CREATE VIEW
	sb.WriteString("CREATE ")
	if b.orReplace {
		sb.WriteString("OR REPLACE ")
	}
	if b.materialized {
		sb.WriteString("MATERIALIZED ")
	}
	sb.WriteString("VIEW ")
	sb.WriteString(dlct.QuoteIdent(b.viewName))
	sb.WriteString(" AS ")
	sb.WriteString(b.selectSQL)

	return sb.String(), args, nil
}

// DebugSQL returns the SQL with arguments interpolated for debugging/logging only.
// DO NOT use the result for execution (not safe against SQL injection).
func (b *CreateViewBuilder) DebugSQL() string {
	sql, args, _ := b.Build()
	return sqldebug.InterpolateSQL(sql, args).GetUnsafeString()
}
