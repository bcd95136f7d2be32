// Package dialect abstracts the SQL surface differences between the
// dialects this toolkit targets: placeholder style and identifier/string
// quoting. Every other package renders SQL text by asking a Dialect how
// to spell a parameter or quote a name, never by special-casing a dialect
// name directly.
package dialect

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Name identifies one of the SQL dialects this toolkit targets.
type Name string

const (
	SQLite     Name = "sqlite"
	PostgreSQL Name = "postgresql"
	MySQL      Name = "mysql"
)

// Style is the placeholder style a dialect renders parameters with.
type Style int

const (
	// Anonymous renders every placeholder as "?".
	Anonymous Style = iota
	// Positional renders left-to-right auto-numbered placeholders: $1, $2, ...
	Positional
	// Named renders placeholders as ":name", used only by prepared statements
	// awaiting late binding (see package prepared); no dialect chooses this
	// at render time.
	Named
)

// Dialect defines SQL dialect-specific rendering behavior: how a parameter
// at position n is spelled, how an identifier is quoted, and how a string
// literal is escaped for debug interpolation.
type Dialect interface {
	Name() Name
	Style() Style
	Placeholder(n int) string
	QuoteIdent(ident string) string
	QuoteString(s string) string
}

type sqliteDialect struct{}

func (sqliteDialect) Name() Name           { return SQLite }
func (sqliteDialect) Style() Style         { return Anonymous }
func (sqliteDialect) Placeholder(int) string { return "?" }
func (sqliteDialect) QuoteIdent(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}
func (sqliteDialect) QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

type postgresDialect struct{}

func (postgresDialect) Name() Name   { return PostgreSQL }
func (postgresDialect) Style() Style { return Positional }
func (postgresDialect) Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}
func (postgresDialect) QuoteIdent(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}
func (postgresDialect) QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

type mySQLDialect struct{}

func (mySQLDialect) Name() Name           { return MySQL }
func (mySQLDialect) Style() Style         { return Anonymous }
func (mySQLDialect) Placeholder(int) string { return "?" }
func (mySQLDialect) QuoteIdent(ident string) string {
	return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
}
func (mySQLDialect) QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

var (
	sqliteInstance   = sqliteDialect{}
	postgresInstance = postgresDialect{}
	mysqlInstance    = mySQLDialect{}

	mu      sync.RWMutex
	current Dialect = sqliteInstance
)

// SQLiteDialect returns the SQLite dialect.
func SQLiteDialect() Dialect { return sqliteInstance }

// Postgres returns the PostgreSQL dialect.
func Postgres() Dialect { return postgresInstance }

// MySQLDialect returns the MySQL dialect.
func MySQLDialect() Dialect { return mysqlInstance }

// For looks up a dialect by name. It reports an error for an unknown name
// rather than silently defaulting, since picking the wrong dialect
// silently would render syntactically valid but semantically wrong SQL.
func For(name Name) (Dialect, error) {
	switch name {
	case SQLite:
		return sqliteInstance, nil
	case PostgreSQL:
		return postgresInstance, nil
	case MySQL:
		return mysqlInstance, nil
	default:
		return nil, fmt.Errorf("dialect: unknown dialect %q", name)
	}
}

// SetDefault sets the package-level default dialect used by builders that
// are not given one explicitly.
func SetDefault(d Dialect) {
	mu.Lock()
	defer mu.Unlock()
	current = d
}

// Default returns the package-level default dialect.
func Default() Dialect {
	mu.RLock()
	defer mu.RUnlock()
	return current
}
