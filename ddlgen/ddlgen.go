// Package ddlgen maps a differ.ChangeSet to the ordered, dialect-specific
// DDL statements the migration engine writes to a SQL file (spec.md
// §4.5): the piece that turns "what changed" into "what to run". It is
// built directly on the ddl package's statement builders rather than
// duplicating their SQL-assembly logic — ddlgen is the one consumer that
// finally wires ddl into the rest of the tree.
//
// The change-set alone only carries entity names (spec.md §3.7); to
// render a CREATE TABLE or ADD COLUMN, Generate also takes the prev/cur
// snapshots the change-set was computed from and looks up full entity
// shapes there.
package ddlgen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sqlkit-go/sqlkit/ddl"
	"github.com/sqlkit-go/sqlkit/dialect"
	"github.com/sqlkit-go/sqlkit/differ"
	"github.com/sqlkit-go/sqlkit/raw"
	"github.com/sqlkit-go/sqlkit/snapshot"
)

// BreakpointMarker separates logically distinct statements within a
// generated SQL file when Options.Breakpoints is set (spec.md §6.1).
const BreakpointMarker = "--> statement-breakpoint"

// Options configures statement emission.
type Options struct {
	// Breakpoints inserts BreakpointMarker between every emitted
	// statement, including inside a SQLite table-rebuild sequence
	// (spec.md §4.5 rules 4 and 5).
	Breakpoints bool
}

// Error reports a change-set this package cannot turn into DDL, such as
// an operation the target dialect has no representation for (spec.md
// §7's UnsupportedOperation).
type Error struct {
	Msg string
}

func (e *Error) Error() string { return "ddlgen: " + e.Msg }

// Generate computes the ordered SQL statement list transforming prev
// into cur, given the change-set already diffed between them. Two calls
// with the same inputs produce byte-identical output (spec.md §4.5's
// determinism guarantee): every section is alphabetically tie-broken and
// dependency order is resolved the same way every time.
func Generate(cs differ.ChangeSet, prev, cur snapshot.Snapshot, d dialect.Dialect, opts Options) ([]string, error) {
	g := &generator{prev: prev, cur: cur, dialect: d}
	var stmts []string

	drop, err := g.dropStatements(cs)
	if err != nil {
		return nil, err
	}
	stmts = append(stmts, drop...)

	create, err := g.createStatements(cs)
	if err != nil {
		return nil, err
	}
	stmts = append(stmts, create...)

	alter, err := g.alterStatements(cs)
	if err != nil {
		return nil, err
	}
	stmts = append(stmts, alter...)

	if !opts.Breakpoints || len(stmts) == 0 {
		return stmts, nil
	}
	return withBreakpoints(stmts), nil
}

func withBreakpoints(stmts []string) []string {
	out := make([]string, 0, len(stmts)*2-1)
	for i, s := range stmts {
		if i > 0 {
			out = append(out, BreakpointMarker)
		}
		out = append(out, s)
	}
	return out
}

type generator struct {
	prev, cur snapshot.Snapshot
	dialect   dialect.Dialect
}

// --- drop phase: children before parents (spec.md §4.5 rule 1) ---

func (g *generator) dropStatements(cs differ.ChangeSet) ([]string, error) {
	var out []string

	for _, name := range cs.ForeignKeys.Deleted {
		fk, ok := fkByName(g.prev.ForeignKeys, name)
		if !ok {
			continue
		}
		sql, err := dropForeignKeyStatement(fk, g.dialect)
		if err != nil {
			return nil, err
		}
		out = append(out, sql)
	}

	for _, name := range cs.Indexes.Deleted {
		idx, ok := indexByName(g.prev.Indexes, name)
		if !ok {
			continue
		}
		sql, err := dropIndexStatement(idx, g.dialect)
		if err != nil {
			return nil, err
		}
		out = append(out, sql)
	}

	for _, name := range cs.Views.Deleted {
		sql, err := dropViewStatement(name, g.dialect)
		if err != nil {
			return nil, err
		}
		out = append(out, sql)
	}

	childMap := buildChildMap(g.prev.ForeignKeys)
	order := topoSort(cs.Tables.Deleted, childMap)
	for _, name := range order {
		sql, err := dropTableStatement(name, g.dialect)
		if err != nil {
			return nil, err
		}
		out = append(out, sql)
	}

	for _, name := range cs.Enums.Deleted {
		out = append(out, dropEnumStatement(name, g.dialect))
	}
	for _, name := range cs.Sequences.Deleted {
		out = append(out, dropSequenceStatement(name, g.dialect))
	}

	return out, nil
}

// --- create phase: parents before children (spec.md §4.5 rule 2) ---

func (g *generator) createStatements(cs differ.ChangeSet) ([]string, error) {
	var out []string

	for _, name := range cs.Enums.Created {
		e, ok := enumByName(g.cur.Enums, name)
		if !ok {
			continue
		}
		out = append(out, createEnumStatement(e, g.dialect))
	}
	for _, name := range cs.Sequences.Created {
		s, ok := seqByName(g.cur.Sequences, name)
		if !ok {
			continue
		}
		out = append(out, createSequenceStatement(s, g.dialect))
	}

	parentMap := buildParentMap(g.cur.ForeignKeys)
	order := topoSort(cs.Tables.Created, parentMap)
	for _, name := range order {
		t, ok := tableByName(g.cur.Tables, name)
		if !ok {
			continue
		}
		sql, err := createTableStatement(t, g.cur.ForeignKeys, g.dialect)
		if err != nil {
			return nil, err
		}
		out = append(out, sql)
	}

	for _, name := range cs.Indexes.Created {
		idx, ok := indexByName(g.cur.Indexes, name)
		if !ok {
			continue
		}
		sql, err := createIndexStatement(idx, g.dialect)
		if err != nil {
			return nil, err
		}
		out = append(out, sql)
	}

	// FKs created against already-existing tables (the new-table case is
	// folded into createTableStatement above).
	createdTables := make(map[string]bool, len(cs.Tables.Created))
	for _, n := range cs.Tables.Created {
		createdTables[n] = true
	}
	for _, name := range cs.ForeignKeys.Created {
		fk, ok := fkByName(g.cur.ForeignKeys, name)
		if !ok || createdTables[fk.Table] {
			continue
		}
		sql, err := addForeignKeyStatement(fk, g.dialect)
		if err != nil {
			return nil, err
		}
		out = append(out, sql)
	}

	for _, name := range cs.Views.Created {
		v, ok := viewByName(g.cur.Views, name)
		if !ok {
			continue
		}
		sql, err := createViewStatement(v, g.dialect)
		if err != nil {
			return nil, err
		}
		out = append(out, sql)
	}

	return out, nil
}

// --- alter phase: column-level changes, alphabetical within a table
// (spec.md §4.5 rule 3), SQLite rebuild for unsupported in-place alters
// (rule 4) ---

func (g *generator) alterStatements(cs differ.ChangeSet) ([]string, error) {
	var out []string

	tables := append([]differ.AlteredTable(nil), cs.Tables.Altered...)
	sort.Slice(tables, func(i, j int) bool { return tables[i].Name < tables[j].Name })

	for _, at := range tables {
		cur, ok := tableByName(g.cur.Tables, at.Name)
		if !ok {
			continue
		}
		if g.dialect.Name() == dialect.SQLite && len(at.AlteredColumns) > 0 {
			stmts, err := sqliteRebuildStatements(cur)
			if err != nil {
				return nil, err
			}
			out = append(out, stmts...)
			continue
		}

		b := ddl.AlterTable(at.Name).WithDialect(g.dialect)
		for _, name := range at.AddedColumns {
			c := cur.Column(name)
			if c == nil {
				continue
			}
			b = b.AddColumn(columnBuilder(*c))
		}
		for _, name := range at.DroppedColumns {
			b = b.DropColumn(name)
		}
		for _, ch := range at.AlteredColumns {
			c := cur.Column(ch.Name)
			if c == nil {
				continue
			}
			b = b.ModifyColumn(columnBuilder(*c))
		}
		if len(at.AddedColumns) == 0 && len(at.DroppedColumns) == 0 && len(at.AlteredColumns) == 0 {
			continue
		}
		sql, _, err := b.Build()
		if err != nil {
			return nil, err
		}
		out = append(out, sql)
	}

	// Altered indexes/FKs are re-emitted drop-then-create: neither SQLite,
	// Postgres, nor MySQL support in-place redefinition of either.
	for _, name := range cs.Indexes.Altered {
		prevIdx, okPrev := indexByName(g.prev.Indexes, name)
		curIdx, okCur := indexByName(g.cur.Indexes, name)
		if okPrev {
			sql, err := dropIndexStatement(prevIdx, g.dialect)
			if err != nil {
				return nil, err
			}
			out = append(out, sql)
		}
		if okCur {
			sql, err := createIndexStatement(curIdx, g.dialect)
			if err != nil {
				return nil, err
			}
			out = append(out, sql)
		}
	}
	for _, name := range cs.ForeignKeys.Altered {
		prevFK, okPrev := fkByName(g.prev.ForeignKeys, name)
		curFK, okCur := fkByName(g.cur.ForeignKeys, name)
		if okPrev {
			sql, err := dropForeignKeyStatement(prevFK, g.dialect)
			if err != nil {
				return nil, err
			}
			out = append(out, sql)
		}
		if okCur {
			sql, err := addForeignKeyStatement(curFK, g.dialect)
			if err != nil {
				return nil, err
			}
			out = append(out, sql)
		}
	}
	for _, name := range cs.Views.Altered {
		v, ok := viewByName(g.cur.Views, name)
		if !ok {
			continue
		}
		dropSQL, err := dropViewStatement(name, g.dialect)
		if err != nil {
			return nil, err
		}
		createSQL, err := createViewStatement(v, g.dialect)
		if err != nil {
			return nil, err
		}
		out = append(out, dropSQL, createSQL)
	}

	return out, nil
}

func columnBuilder(c snapshot.Column) *ddl.ColumnBuilder {
	cb := ddl.Column(c.Name).Type(c.Type)
	if c.Nullable {
		cb = cb.Nullable()
	} else {
		cb = cb.NotNull()
	}
	if c.PrimaryKey {
		cb = cb.PrimaryKey()
	}
	if c.Unique {
		cb = cb.Unique()
	}
	if c.AutoIncrement {
		cb = cb.AutoIncrement()
	}
	if c.Default != "" {
		cb = cb.Default(raw.Raw(c.Default))
	}
	return cb
}

func createTableStatement(t snapshot.Table, fks []snapshot.ForeignKey, d dialect.Dialect) (string, error) {
	b := ddl.CreateTable(t.Name).WithDialect(d)
	for _, c := range t.Columns {
		b = b.AddColumn(columnBuilder(c))
	}
	for _, fk := range fks {
		if fk.Table != t.Name {
			continue
		}
		fkb := ddl.ForeignKey(fk.Name, fk.Column).References(fk.RefTable, fk.RefColumn)
		if fk.OnDelete != "" {
			fkb = fkb.OnDelete(fk.OnDelete)
		}
		if fk.OnUpdate != "" {
			fkb = fkb.OnUpdate(fk.OnUpdate)
		}
		b = b.AddForeignKey(fkb)
	}
	sql, _, err := b.Build()
	if err != nil {
		return "", fmt.Errorf("ddlgen: create table %q: %w", t.Name, err)
	}
	return sql, nil
}

func dropTableStatement(name string, d dialect.Dialect) (string, error) {
	sql, _, err := ddl.DropTable(name).IfExists().WithDialect(d).Build()
	if err != nil {
		return "", fmt.Errorf("ddlgen: drop table %q: %w", name, err)
	}
	return sql, nil
}

func createIndexStatement(idx snapshot.Index, d dialect.Dialect) (string, error) {
	b := ddl.CreateIndex(idx.Name, idx.Table).Columns(idx.Columns...).WithDialect(d)
	if idx.Unique {
		b = b.Unique()
	}
	sql, _, err := b.Build()
	if err != nil {
		return "", fmt.Errorf("ddlgen: create index %q: %w", idx.Name, err)
	}
	return sql, nil
}

func dropIndexStatement(idx snapshot.Index, d dialect.Dialect) (string, error) {
	if d.Name() == dialect.MySQL {
		// MySQL indexes are dropped through the owning table, not standalone.
		sql, _, err := ddl.AlterTable(idx.Table).DropIndex(idx.Name).WithDialect(d).Build()
		if err != nil {
			return "", fmt.Errorf("ddlgen: drop index %q: %w", idx.Name, err)
		}
		return sql, nil
	}
	return fmt.Sprintf("DROP INDEX %s", d.QuoteIdent(idx.Name)), nil
}

func addForeignKeyStatement(fk snapshot.ForeignKey, d dialect.Dialect) (string, error) {
	constraint := ddl.Constraint{
		Type:    ddl.ForeignKeyType,
		Name:    fk.Name,
		Columns: []string{fk.Column},
		Reference: &ddl.ForeignKeyRef{
			Table:    fk.RefTable,
			Columns:  []string{fk.RefColumn},
			OnDelete: fk.OnDelete,
			OnUpdate: fk.OnUpdate,
		},
	}
	sql, _, err := ddl.AlterTable(fk.Table).AddConstraint(constraint).WithDialect(d).Build()
	if err != nil {
		return "", fmt.Errorf("ddlgen: add foreign key %q: %w", fk.Name, err)
	}
	return sql, nil
}

func dropForeignKeyStatement(fk snapshot.ForeignKey, d dialect.Dialect) (string, error) {
	sql, _, err := ddl.AlterTable(fk.Table).DropConstraint(fk.Name).WithDialect(d).Build()
	if err != nil {
		return "", fmt.Errorf("ddlgen: drop foreign key %q: %w", fk.Name, err)
	}
	return sql, nil
}

func createViewStatement(v snapshot.View, d dialect.Dialect) (string, error) {
	b := ddl.CreateView(v.Name).As(raw.Raw(v.Definition))
	if v.Materialized {
		b = b.Materialized()
	}
	sql, _, err := b.WithDialect(d).Build()
	if err != nil {
		return "", fmt.Errorf("ddlgen: create view %q: %w", v.Name, err)
	}
	return sql, nil
}

func dropViewStatement(name string, d dialect.Dialect) (string, error) {
	sql, _, err := ddl.DropView(name).IfExists().WithDialect(d).Build()
	if err != nil {
		return "", fmt.Errorf("ddlgen: drop view %q: %w", name, err)
	}
	return sql, nil
}

// sqliteRebuildStatements emits the create-copy-drop-rename sequence
// SQLite requires for column type/PK changes it cannot ALTER in place
// (spec.md §4.5 rule 4).
func sqliteRebuildStatements(cur snapshot.Table) ([]string, error) {
	tmpName := "__sqlkit_new_" + cur.Name
	tmpTable := cur
	tmpTable.Name = tmpName

	createSQL, err := createTableStatement(tmpTable, nil, dialect.SQLiteDialect())
	if err != nil {
		return nil, err
	}

	colNames := make([]string, len(cur.Columns))
	for i, c := range cur.Columns {
		colNames[i] = dialect.SQLiteDialect().QuoteIdent(c.Name)
	}
	cols := strings.Join(colNames, ", ")
	copySQL := fmt.Sprintf("INSERT INTO %s (%s) SELECT %s FROM %s",
		dialect.SQLiteDialect().QuoteIdent(tmpName), cols, cols, dialect.SQLiteDialect().QuoteIdent(cur.Name))

	dropSQL, err := dropTableStatement(cur.Name, dialect.SQLiteDialect())
	if err != nil {
		return nil, err
	}

	renameSQL, _, err := ddl.AlterTable(tmpName).RenameTable(cur.Name).WithDialect(dialect.SQLiteDialect()).Build()
	if err != nil {
		return nil, fmt.Errorf("ddlgen: rebuild %q: %w", cur.Name, err)
	}

	return []string{createSQL, copySQL, dropSQL, renameSQL}, nil
}

func createEnumStatement(e snapshot.Enum, d dialect.Dialect) string {
	values := make([]string, len(e.Values))
	for i, v := range e.Values {
		values[i] = d.QuoteString(v)
	}
	return fmt.Sprintf("CREATE TYPE %s AS ENUM (%s)", d.QuoteIdent(e.Name), strings.Join(values, ", "))
}

func dropEnumStatement(name string, d dialect.Dialect) string {
	return fmt.Sprintf("DROP TYPE IF EXISTS %s", d.QuoteIdent(name))
}

func createSequenceStatement(s snapshot.Sequence, d dialect.Dialect) string {
	sql := fmt.Sprintf("CREATE SEQUENCE %s", d.QuoteIdent(s.Name))
	if s.StartWith != 0 {
		sql += fmt.Sprintf(" START WITH %d", s.StartWith)
	}
	if s.Increment != 0 {
		sql += fmt.Sprintf(" INCREMENT BY %d", s.Increment)
	}
	return sql
}

func dropSequenceStatement(name string, d dialect.Dialect) string {
	return fmt.Sprintf("DROP SEQUENCE IF EXISTS %s", d.QuoteIdent(name))
}

func tableByName(ts []snapshot.Table, name string) (snapshot.Table, bool) {
	for _, t := range ts {
		if t.Name == name {
			return t, true
		}
	}
	return snapshot.Table{}, false
}

func indexByName(idx []snapshot.Index, name string) (snapshot.Index, bool) {
	for _, i := range idx {
		if i.Name == name {
			return i, true
		}
	}
	return snapshot.Index{}, false
}

func fkByName(fks []snapshot.ForeignKey, name string) (snapshot.ForeignKey, bool) {
	for _, f := range fks {
		if f.Name == name {
			return f, true
		}
	}
	return snapshot.ForeignKey{}, false
}

func viewByName(vs []snapshot.View, name string) (snapshot.View, bool) {
	for _, v := range vs {
		if v.Name == name {
			return v, true
		}
	}
	return snapshot.View{}, false
}

func enumByName(es []snapshot.Enum, name string) (snapshot.Enum, bool) {
	for _, e := range es {
		if e.Name == name {
			return e, true
		}
	}
	return snapshot.Enum{}, false
}

func seqByName(ss []snapshot.Sequence, name string) (snapshot.Sequence, bool) {
	for _, s := range ss {
		if s.Name == name {
			return s, true
		}
	}
	return snapshot.Sequence{}, false
}

// buildParentMap maps a table to the tables it references via FK: its
// CREATE-order prerequisites.
func buildParentMap(fks []snapshot.ForeignKey) map[string][]string {
	m := map[string][]string{}
	for _, fk := range fks {
		m[fk.Table] = append(m[fk.Table], fk.RefTable)
	}
	return m
}

// buildChildMap maps a table to the tables that reference it via FK: its
// DROP-order prerequisites (children must drop first).
func buildChildMap(fks []snapshot.ForeignKey) map[string][]string {
	m := map[string][]string{}
	for _, fk := range fks {
		m[fk.RefTable] = append(m[fk.RefTable], fk.Table)
	}
	return m
}

// topoSort orders names so that every entry in deps[x] (restricted to
// the input set) precedes x, breaking ties alphabetically at every step
// so the result is deterministic across runs (spec.md §4.5's "two runs
// ... must produce byte-identical output"). A dependency cycle falls
// back to alphabetical order for the unresolved remainder rather than
// failing, since a cycle is a modelling problem this package cannot fix.
func topoSort(names []string, deps map[string][]string) []string {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	indeg := make(map[string]int, len(names))
	adj := make(map[string][]string)
	for _, n := range names {
		indeg[n] = 0
	}
	for _, n := range names {
		for _, p := range deps[n] {
			if p == n || !set[p] {
				continue
			}
			adj[p] = append(adj[p], n)
			indeg[n]++
		}
	}

	var ready []string
	for _, n := range names {
		if indeg[n] == 0 {
			ready = append(ready, n)
		}
	}

	var out []string
	for len(ready) > 0 {
		sort.Strings(ready)
		n := ready[0]
		ready = ready[1:]
		out = append(out, n)
		next := append([]string(nil), adj[n]...)
		sort.Strings(next)
		for _, m := range next {
			indeg[m]--
			if indeg[m] == 0 {
				ready = append(ready, m)
			}
		}
	}

	if len(out) < len(names) {
		seen := make(map[string]bool, len(out))
		for _, n := range out {
			seen[n] = true
		}
		var rest []string
		for _, n := range names {
			if !seen[n] {
				rest = append(rest, n)
			}
		}
		sort.Strings(rest)
		out = append(out, rest...)
	}
	return out
}
