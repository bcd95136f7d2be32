// Package driverapi publishes the driver collaborator contract spec.md
// §6.4 describes: run a statement for its affected-row count, run a
// query for its row stream, prepare a statement for repeated reuse, and
// open a transaction offering the same three operations. It is built on
// database/sql rather than a bespoke abstraction, the same way the
// teacher repo and the rest of the pack let database/sql own connection
// pooling and context cancellation; driverapi only adds the
// dialect-name-to-driver-name mapping and the three-kind error
// classification spec.md §6.4/§7 asks a driver collaborator to expose.
package driverapi

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/sqlkit-go/sqlkit/dialect"
)

// Kind discriminates the three driver-error categories spec.md §6.4
// names, plus Mapping for a row-decode failure (spec.md §6.5).
type Kind int

const (
	StatementErrorKind Kind = iota
	QueryErrorKind
	TransactionErrorKind
	MappingErrorKind
)

func (k Kind) String() string {
	switch k {
	case StatementErrorKind:
		return "statement"
	case QueryErrorKind:
		return "query"
	case TransactionErrorKind:
		return "transaction"
	case MappingErrorKind:
		return "mapping"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the opaque driver error spec.md §7's DriverError(kind,
// string) describes: the core never inspects a database/sql-specific
// error value directly, only this Kind-tagged wrapper.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("driverapi: %s: %s: %s", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("driverapi: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// driverNameFor maps a dialect to the database/sql driver name it
// registers under. Postgres uses pgx's stdlib adapter rather than
// lib/pq so cancellation and pgtype wire-decoding go through the same
// driver the rest of the pack's Postgres tooling expects (see
// pgtypes/pgfunc); lib/pq stays available as a require for callers that
// prefer it, but driverapi itself standardizes on pgx.
func driverNameFor(d dialect.Name) (string, error) {
	switch d {
	case dialect.SQLite:
		return "sqlite", nil
	case dialect.PostgreSQL:
		return "pgx", nil
	case dialect.MySQL:
		return "mysql", nil
	default:
		return "", &Error{Kind: StatementErrorKind, Msg: fmt.Sprintf("unsupported dialect %q", d)}
	}
}

// execQuerier is the subset of *sql.DB and *sql.Tx this package drives
// statements and queries through, so Driver and Transaction can share
// one implementation regardless of which one is live.
type execQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

// Driver is the process-level handle spec.md §6.4's driver collaborator
// describes: run_statement, query_statement, prepare, and
// begin_transaction, implemented over a pooled *sql.DB.
type Driver struct {
	db      *sql.DB
	dialect dialect.Name
}

// Open opens a new connection pool for d at dsn, registering through
// the database/sql driver name d maps to.
func Open(d dialect.Name, dsn string) (*Driver, error) {
	name, err := driverNameFor(d)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(name, dsn)
	if err != nil {
		return nil, &Error{Kind: StatementErrorKind, Msg: "opening connection", Err: err}
	}
	return &Driver{db: db, dialect: d}, nil
}

// OpenDB wraps an already-constructed *sql.DB (e.g. one returned by
// sqlmock.New() in tests, or assembled by a caller that needs custom
// connector options) as a Driver for dialect d.
func OpenDB(d dialect.Name, db *sql.DB) *Driver {
	return &Driver{db: db, dialect: d}
}

// DB returns the underlying pool, for callers that need database/sql
// operations driverapi does not expose (SetMaxOpenConns, Ping, ...).
func (d *Driver) DB() *sql.DB { return d.db }

// Dialect reports which dialect this driver was opened for.
func (d *Driver) Dialect() dialect.Name { return d.dialect }

// Close closes the underlying connection pool.
func (d *Driver) Close() error { return d.db.Close() }

// RunStatement executes sqlText for its side effect and reports the
// affected row count (spec.md §6.4's run_statement).
func (d *Driver) RunStatement(ctx context.Context, sqlText string, params []interface{}) (int64, error) {
	return runStatement(ctx, d.db, sqlText, params)
}

// QueryStatement executes sqlText and returns an iterator over its
// result rows (spec.md §6.4's query_statement).
func (d *Driver) QueryStatement(ctx context.Context, sqlText string, params []interface{}) (*RowIterator, error) {
	return queryStatement(ctx, d.db, sqlText, params)
}

// Prepare compiles sqlText once for repeated execution (spec.md §6.4's
// prepare).
func (d *Driver) Prepare(ctx context.Context, sqlText string) (*PreparedStatement, error) {
	return prepare(ctx, d.db, sqlText)
}

// BeginTransaction opens a transaction handle offering the same three
// operations as Driver (spec.md §6.4's begin_transaction).
func (d *Driver) BeginTransaction(ctx context.Context) (*Transaction, error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, &Error{Kind: TransactionErrorKind, Msg: "begin", Err: err}
	}
	return &Transaction{tx: tx}, nil
}

// Transaction is the handle spec.md §6.4 describes as offering
// run_statement/query_statement/prepare plus commit/rollback.
type Transaction struct {
	tx *sql.Tx
}

func (t *Transaction) RunStatement(ctx context.Context, sqlText string, params []interface{}) (int64, error) {
	return runStatement(ctx, t.tx, sqlText, params)
}

func (t *Transaction) QueryStatement(ctx context.Context, sqlText string, params []interface{}) (*RowIterator, error) {
	return queryStatement(ctx, t.tx, sqlText, params)
}

func (t *Transaction) Prepare(ctx context.Context, sqlText string) (*PreparedStatement, error) {
	return prepare(ctx, t.tx, sqlText)
}

// Commit commits the transaction.
func (t *Transaction) Commit() error {
	if err := t.tx.Commit(); err != nil {
		return &Error{Kind: TransactionErrorKind, Msg: "commit", Err: err}
	}
	return nil
}

// Rollback aborts the transaction. Calling Rollback after a successful
// Commit is a caller error database/sql itself reports; driverapi does
// not suppress it, matching the teacher's practice of letting a defer'd
// Rollback-after-Commit surface sql.ErrTxDone rather than hiding it.
func (t *Transaction) Rollback() error {
	if err := t.tx.Rollback(); err != nil {
		return &Error{Kind: TransactionErrorKind, Msg: "rollback", Err: err}
	}
	return nil
}

func runStatement(ctx context.Context, c execQuerier, sqlText string, params []interface{}) (int64, error) {
	res, err := c.ExecContext(ctx, sqlText, params...)
	if err != nil {
		return 0, &Error{Kind: StatementErrorKind, Msg: sqlText, Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, &Error{Kind: StatementErrorKind, Msg: "reading affected row count", Err: err}
	}
	return n, nil
}

func queryStatement(ctx context.Context, c execQuerier, sqlText string, params []interface{}) (*RowIterator, error) {
	rows, err := c.QueryContext(ctx, sqlText, params...)
	if err != nil {
		return nil, &Error{Kind: QueryErrorKind, Msg: sqlText, Err: err}
	}
	cols, err := rows.Columns()
	if err != nil {
		rows.Close()
		return nil, &Error{Kind: QueryErrorKind, Msg: "reading column names", Err: err}
	}
	return &RowIterator{rows: rows, columns: cols}, nil
}

func prepare(ctx context.Context, c execQuerier, sqlText string) (*PreparedStatement, error) {
	stmt, err := c.PrepareContext(ctx, sqlText)
	if err != nil {
		return nil, &Error{Kind: StatementErrorKind, Msg: sqlText, Err: err}
	}
	return &PreparedStatement{stmt: stmt}, nil
}

// PreparedStatement is a compiled statement awaiting repeated
// execution, the handle spec.md §6.4's prepare returns.
type PreparedStatement struct {
	stmt *sql.Stmt
}

func (p *PreparedStatement) Run(ctx context.Context, params []interface{}) (int64, error) {
	res, err := p.stmt.ExecContext(ctx, params...)
	if err != nil {
		return 0, &Error{Kind: StatementErrorKind, Msg: "prepared exec", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, &Error{Kind: StatementErrorKind, Msg: "reading affected row count", Err: err}
	}
	return n, nil
}

func (p *PreparedStatement) Query(ctx context.Context, params []interface{}) (*RowIterator, error) {
	rows, err := p.stmt.QueryContext(ctx, params...)
	if err != nil {
		return nil, &Error{Kind: QueryErrorKind, Msg: "prepared query", Err: err}
	}
	cols, err := rows.Columns()
	if err != nil {
		rows.Close()
		return nil, &Error{Kind: QueryErrorKind, Msg: "reading column names", Err: err}
	}
	return &RowIterator{rows: rows, columns: cols}, nil
}

// Close releases the compiled statement.
func (p *PreparedStatement) Close() error { return p.stmt.Close() }
