// Package snapshot implements the versioned, dialect-tagged schema
// document that the differ compares and the journal points at: a
// point-in-time serialisation of every table, index, foreign key, view,
// enum, and sequence the schema package describes, written as
// pretty-printed JSON and never mutated in place once saved.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/sqlkit-go/sqlkit/dialect"
	"github.com/sqlkit-go/sqlkit/schema"
)

// CurrentVersion is the schema-document format version this package
// writes. SQLite and MySQL documents carry the same counter; Postgres
// historically diverged (see spec.md §4.7's "Postgres carries version 8"
// note), so Version is a string, not shared across dialects.
const CurrentVersion = "7"

// PostgresVersion is the current Postgres-specific document version.
const PostgresVersion = "8"

// Column is the serialisable form of schema.ColumnInfo.
type Column struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	Nullable      bool   `json:"nullable,omitempty"`
	PrimaryKey    bool   `json:"primaryKey,omitempty"`
	Unique        bool   `json:"unique,omitempty"`
	AutoIncrement bool   `json:"autoincrement,omitempty"`
	DefaultKind   string `json:"defaultKind,omitempty"`
	Default       string `json:"default,omitempty"`
	FKTable       string `json:"fkTable,omitempty"`
	FKColumn      string `json:"fkColumn,omitempty"`
}

// Index is the serialisable form of schema.IndexInfo.
type Index struct {
	Name         string   `json:"name"`
	Table        string   `json:"table"`
	Columns      []string `json:"columns"`
	Unique       bool     `json:"unique,omitempty"`
	Method       string   `json:"method,omitempty"`
	Where        string   `json:"where,omitempty"`
	Concurrently bool     `json:"concurrently,omitempty"`
}

// ForeignKey is a table-level FK entity, keyed separately from its owning
// column so the differ can diff it against renamed parent tables (spec.md
// §4.4's "FK diffs list parent tables' renames as altered" invariant).
type ForeignKey struct {
	Name       string `json:"name"`
	Table      string `json:"table"`
	Column     string `json:"column"`
	RefTable   string `json:"refTable"`
	RefColumn  string `json:"refColumn"`
	OnDelete   string `json:"onDelete,omitempty"`
	OnUpdate   string `json:"onUpdate,omitempty"`
}

// Table is the serialisable form of schema.TableInfo.
type Table struct {
	Name    string   `json:"name"`
	Schema  string   `json:"schema,omitempty"`
	Columns []Column `json:"columns"`
}

// Column returns the named column, or nil if the table has none by that
// name.
func (t Table) Column(name string) *Column {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}

// View is the serialisable form of schema.ViewInfo.
type View struct {
	Name         string `json:"name"`
	Schema       string `json:"schema,omitempty"`
	Definition   string `json:"definition"`
	Materialized bool   `json:"materialized,omitempty"`
}

// Enum is the serialisable form of schema.EnumInfo.
type Enum struct {
	Name   string   `json:"name"`
	Schema string   `json:"schema,omitempty"`
	Values []string `json:"values"`
}

// Sequence is the serialisable form of schema.SequenceInfo.
type Sequence struct {
	Name      string `json:"name"`
	Schema    string `json:"schema,omitempty"`
	StartWith int64  `json:"startWith,omitempty"`
	Increment int64  `json:"increment,omitempty"`
}

// Check is a standalone table-level CHECK constraint not already folded
// into a column definition.
type Check struct {
	Name  string `json:"name"`
	Table string `json:"table"`
	Expr  string `json:"expr"`
}

// Snapshot is the full schema document at one point in history.
type Snapshot struct {
	ID         string       `json:"id"`
	PrevIDs    []string     `json:"prevIds,omitempty"`
	Version    string       `json:"version"`
	Dialect    dialect.Name `json:"dialect"`
	Tables     []Table      `json:"tables"`
	Indexes    []Index      `json:"indexes,omitempty"`
	ForeignKeys []ForeignKey `json:"foreignKeys,omitempty"`
	Views      []View       `json:"views,omitempty"`
	Enums      []Enum       `json:"enums,omitempty"`
	Sequences  []Sequence   `json:"sequences,omitempty"`
	Checks     []Check      `json:"checks,omitempty"`
}

// Error reports a snapshot read/parse/version-unsupported failure,
// carrying the file path per spec.md §7's SnapshotError(path, string).
type Error struct {
	Path string
	Msg  string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return "snapshot: " + e.Msg
	}
	return fmt.Sprintf("snapshot: %s: %s", e.Path, e.Msg)
}

func versionFor(d dialect.Name) string {
	if d == dialect.PostgreSQL {
		return PostgresVersion
	}
	return CurrentVersion
}

// VersionFor returns the current schema-document format version this
// package writes for dialect d (exported for the migrate package's
// check command, which needs to classify a loaded document's version
// against the current one without triggering Load's silent upgrade).
func VersionFor(d dialect.Name) string {
	return versionFor(d)
}

// IsUpgradable reports whether Load would successfully upgrade s's
// version in place (one version older than current for its dialect).
func IsUpgradable(s Snapshot) bool {
	_, ok := upgrade(s)
	return ok
}

// FromSchema builds a fresh snapshot from process-global metadata
// descriptors, with no parent (a "From(T)" equivalent for the snapshot
// subsystem, not the SELECT builder's From).
func FromSchema(d dialect.Name, tables []*schema.TableInfo, indexes []*schema.IndexInfo, views []*schema.ViewInfo, enums []*schema.EnumInfo, seqs []*schema.SequenceInfo, prevIDs ...string) Snapshot {
	s := Snapshot{
		ID:      uuid.NewString(),
		PrevIDs: prevIDs,
		Version: versionFor(d),
		Dialect: d,
	}
	for _, t := range tables {
		s.Tables = append(s.Tables, tableFromInfo(t))
		for _, c := range t.Columns {
			if c.ForeignKey != nil {
				s.ForeignKeys = append(s.ForeignKeys, ForeignKey{
					Name:      t.Name + "_" + c.Name + "_fkey",
					Table:     t.Name,
					Column:    c.Name,
					RefTable:  c.ForeignKey.Table.Name,
					RefColumn: c.ForeignKey.Column.Name,
				})
			}
		}
	}
	for _, idx := range indexes {
		s.Indexes = append(s.Indexes, indexFromInfo(idx))
	}
	for _, v := range views {
		s.Views = append(s.Views, View{Name: v.Name, Schema: v.Schema, Definition: v.Definition, Materialized: v.Materialized})
	}
	for _, e := range enums {
		s.Enums = append(s.Enums, Enum{Name: e.Name, Schema: e.Schema, Values: append([]string(nil), e.Values...)})
	}
	for _, sq := range seqs {
		s.Sequences = append(s.Sequences, Sequence{Name: sq.Name, Schema: sq.Schema, StartWith: sq.StartWith, Increment: sq.Increment})
	}
	return s
}

func tableFromInfo(t *schema.TableInfo) Table {
	out := Table{Name: t.Name, Schema: t.Schema}
	for _, c := range t.Columns {
		col := Column{
			Name:          c.Name,
			Type:          c.Type,
			Nullable:      c.Nullable,
			PrimaryKey:    c.PrimaryKey,
			Unique:        c.Unique,
			AutoIncrement: c.AutoIncrement,
		}
		switch c.Default.Kind {
		case schema.SQLExprDefault:
			col.DefaultKind = "sqlExpr"
			col.Default = c.Default.Expr
		case schema.RuntimeFnDefault:
			col.DefaultKind = "runtimeFn"
			col.Default = c.Default.Expr
		}
		if c.ForeignKey != nil {
			col.FKTable = c.ForeignKey.Table.Name
			col.FKColumn = c.ForeignKey.Column.Name
		}
		out.Columns = append(out.Columns, col)
	}
	return out
}

func indexFromInfo(idx *schema.IndexInfo) Index {
	out := Index{
		Name:         idx.Name,
		Unique:       idx.Unique,
		Method:       string(idx.Method),
		Where:        idx.Where,
		Concurrently: idx.Concurrently,
	}
	if idx.Table != nil {
		out.Table = idx.Table.Name
	}
	for _, c := range idx.Columns {
		out.Columns = append(out.Columns, c.Name)
	}
	return out
}

// Save writes a pretty-printed JSON snapshot document to path, creating
// parent directories as needed (spec.md §4.7).
func Save(path string, s Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &Error{Path: path, Msg: err.Error()}
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return &Error{Path: path, Msg: err.Error()}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &Error{Path: path, Msg: err.Error()}
	}
	return nil
}

// Load reads a snapshot document, attempting a one-version-older upgrade
// if the current version fails to parse (spec.md §4.7 "Load with version
// upgrade").
func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, &Error{Path: path, Msg: err.Error()}
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, &Error{Path: path, Msg: "parse failure: " + err.Error()}
	}
	if upgraded, ok := upgrade(s); ok {
		return upgraded, nil
	}
	if !supportedVersion(s) {
		return Snapshot{}, &Error{Path: path, Msg: "unsupported schema version " + s.Version}
	}
	return s, nil
}

func supportedVersion(s Snapshot) bool {
	return s.Version == versionFor(s.Dialect)
}

// upgrade applies the one-version-older migration, if one exists for the
// snapshot's dialect and version. It reports ok=false when no upgrade
// applies (either already current, or too old/new to know how).
func upgrade(s Snapshot) (Snapshot, bool) {
	switch s.Dialect {
	case dialect.SQLite:
		if s.Version == "6" {
			s.Version = CurrentVersion
			return s, true
		}
	case dialect.PostgreSQL:
		if s.Version == "7" {
			s.Version = PostgresVersion
			return s, true
		}
	}
	return s, false
}

// MetaDir returns the meta/ directory under a migrations output directory.
func MetaDir(outDir string) string {
	return filepath.Join(outDir, "meta")
}

// Path returns the path of the idx'th snapshot file under outDir, e.g.
// "<out>/meta/0004_snapshot.json" (spec.md §4.7).
func Path(outDir string, idx int) string {
	return filepath.Join(MetaDir(outDir), fmt.Sprintf("%04d_snapshot.json", idx))
}

