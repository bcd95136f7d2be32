// Package schema holds the static, process-global metadata descriptors
// that the rest of the toolkit references by pointer: tables, columns,
// indexes, views, enums, and sequences. Descriptors are built once at
// program start (typically in a package var block) and never mutated
// afterward — every other package treats a *TableInfo or *ColumnInfo as
// an immutable, comparable identity, not a value to copy and edit.
package schema

// DefaultKind discriminates the three shapes a column default can take.
type DefaultKind int

const (
	// NoDefault means the column has no default clause at all.
	NoDefault DefaultKind = iota
	// SQLExprDefault means Default holds a literal SQL expression, emitted
	// verbatim (e.g. "CURRENT_TIMESTAMP", "0").
	SQLExprDefault
	// RuntimeFnDefault means Default names a driver-side function evaluated
	// at insert time rather than embedded in the DDL (e.g. a UUID generator).
	RuntimeFnDefault
)

// ColumnDefault describes a column's DEFAULT clause, if any.
type ColumnDefault struct {
	Kind DefaultKind
	// Expr holds the literal SQL text for SQLExprDefault, or the runtime
	// function name for RuntimeFnDefault. Unused for NoDefault.
	Expr string
}

// ForeignKeyTarget names the column a foreign key column references.
type ForeignKeyTarget struct {
	Table  *TableInfo
	Column *ColumnInfo
}

// ColumnInfo statically describes one table column.
type ColumnInfo struct {
	Name          string
	Type          string
	Nullable      bool
	PrimaryKey    bool
	Unique        bool
	AutoIncrement bool
	Default       ColumnDefault
	ForeignKey    *ForeignKeyTarget
	Table         *TableInfo
}

// TableInfo statically describes one table.
type TableInfo struct {
	Name    string
	Schema  string // Postgres schema name; empty for SQLite/MySQL.
	Columns []*ColumnInfo
	// DependsOn lists tables this one references via foreign key, used by
	// the DDL generator to order CREATE/DROP statements.
	DependsOn []*TableInfo
}

// Column looks up a column by name, returning nil if absent.
func (t *TableInfo) Column(name string) *ColumnInfo {
	for _, c := range t.Columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// IndexMethod names a storage/access method an index can use.
type IndexMethod string

const (
	BTree IndexMethod = "btree"
	Hash  IndexMethod = "hash"
	GIN   IndexMethod = "gin"
	GiST  IndexMethod = "gist"
)

// IndexInfo statically describes one index.
type IndexInfo struct {
	Name    string
	Table   *TableInfo
	Columns []*ColumnInfo
	Unique  bool
	Method  IndexMethod
	// Where holds an optional partial-index predicate, rendered verbatim.
	Where string
	// Concurrently marks a Postgres CREATE INDEX CONCURRENTLY.
	Concurrently bool
}

// ViewInfo statically describes a (Postgres) view or materialized view.
type ViewInfo struct {
	Name         string
	Schema       string
	Definition   string
	Materialized bool
}

// EnumInfo statically describes a (Postgres) enum type.
type EnumInfo struct {
	Name   string
	Schema string
	Values []string
}

// SequenceInfo statically describes a (Postgres) sequence.
type SequenceInfo struct {
	Name      string
	Schema    string
	StartWith int64
	Increment int64
}
