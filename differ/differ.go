// Package differ computes a structural change-set between two schema
// snapshots of the same dialect: the input to the ddlgen package.
//
// The per-table column comparison is expressed over
// ariga.io/atlas/sql/schema's own Column/Change vocabulary rather than a
// hand-rolled one — atlas already models "what changed about a column"
// (type, default, nullability) as a typed Change, and reusing that
// vocabulary for the innermost diff keeps this package from reinventing
// it. The outer name-keyed created/deleted/altered partitioning is this
// project's own, since atlas's own Differ works against a live *Realm
// inspected from a running database, not a pair of serialised JSON
// documents (see DESIGN.md).
package differ

import (
	"fmt"
	"sort"

	atlasschema "ariga.io/atlas/sql/schema"

	"github.com/sqlkit-go/sqlkit/snapshot"
)

// ColumnChange pairs a column name with the atlas-vocabulary change
// detected between its previous and current shape.
type ColumnChange struct {
	Name   string
	Change atlasschema.Change
}

// AlteredTable describes one table present in both snapshots whose
// shape differs.
type AlteredTable struct {
	Name          string
	AddedColumns  []string
	DroppedColumns []string
	AlteredColumns []ColumnChange
	AddedIndexes  []string
	DroppedIndexes []string
	AlteredIndexes []string
}

// TableChanges is the tripartite created/deleted/altered section for
// tables (spec.md §3.7).
type TableChanges struct {
	Created []string
	Deleted []string
	Altered []AlteredTable
}

// NamedChanges is the tripartite created/deleted/altered section for a
// flat entity kind (indexes, foreign keys, views, enums, sequences) that
// the spec does not require recursive child diffing for beyond
// name-keyed presence.
type NamedChanges struct {
	Created []string
	Deleted []string
	Altered []string
}

// ChangeSet is the full output of a Diff: one section per entity kind
// named in spec.md §3.4/§3.7.
type ChangeSet struct {
	Tables      TableChanges
	Indexes     NamedChanges
	ForeignKeys NamedChanges
	Views       NamedChanges
	Enums       NamedChanges
	Sequences   NamedChanges
}

// HasChanges reports whether any section carries a created, deleted, or
// altered entry (spec.md §3.7's "pure value with a has_changes
// predicate").
func (c ChangeSet) HasChanges() bool {
	sections := []int{
		len(c.Tables.Created), len(c.Tables.Deleted), len(c.Tables.Altered),
		len(c.Indexes.Created), len(c.Indexes.Deleted), len(c.Indexes.Altered),
		len(c.ForeignKeys.Created), len(c.ForeignKeys.Deleted), len(c.ForeignKeys.Altered),
		len(c.Views.Created), len(c.Views.Deleted), len(c.Views.Altered),
		len(c.Enums.Created), len(c.Enums.Deleted), len(c.Enums.Altered),
		len(c.Sequences.Created), len(c.Sequences.Deleted), len(c.Sequences.Altered),
	}
	for _, n := range sections {
		if n > 0 {
			return true
		}
	}
	return false
}

// Error reports a problem preventing a diff from being computed, such as
// a dialect mismatch between the two snapshots.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return "differ: " + e.Msg }

// Diff computes the change-set transforming prev into cur. Both
// snapshots must be for the same dialect.
func Diff(prev, cur snapshot.Snapshot) (ChangeSet, error) {
	if prev.Dialect != cur.Dialect && len(prev.Tables) > 0 {
		return ChangeSet{}, &Error{Msg: fmt.Sprintf("cannot diff %s snapshot against %s snapshot", prev.Dialect, cur.Dialect)}
	}

	var cs ChangeSet
	cs.Tables = diffTables(prev.Tables, cur.Tables)
	cs.Indexes = diffNamed(indexNames(prev.Indexes), indexNames(cur.Indexes), indexAltered(prev.Indexes, cur.Indexes))
	cs.ForeignKeys = diffNamed(fkNames(prev.ForeignKeys), fkNames(cur.ForeignKeys), fkAltered(prev.ForeignKeys, cur.ForeignKeys))
	cs.Views = diffNamed(viewNames(prev.Views), viewNames(cur.Views), viewAltered(prev.Views, cur.Views))
	cs.Enums = diffNamed(enumNames(prev.Enums), enumNames(cur.Enums), enumAltered(prev.Enums, cur.Enums))
	cs.Sequences = diffNamed(seqNames(prev.Sequences), seqNames(cur.Sequences), seqAltered(prev.Sequences, cur.Sequences))
	return cs, nil
}

func diffTables(prev, cur []snapshot.Table) TableChanges {
	prevByName := make(map[string]snapshot.Table, len(prev))
	for _, t := range prev {
		prevByName[t.Name] = t
	}
	curByName := make(map[string]snapshot.Table, len(cur))
	for _, t := range cur {
		curByName[t.Name] = t
	}

	var out TableChanges
	for name := range curByName {
		if _, ok := prevByName[name]; !ok {
			out.Created = append(out.Created, name)
		}
	}
	for name := range prevByName {
		if _, ok := curByName[name]; !ok {
			out.Deleted = append(out.Deleted, name)
		}
	}
	for name, curTable := range curByName {
		prevTable, ok := prevByName[name]
		if !ok {
			continue
		}
		if alt, changed := diffOneTable(prevTable, curTable); changed {
			out.Altered = append(out.Altered, alt)
		}
	}

	sort.Strings(out.Created)
	sort.Strings(out.Deleted)
	sort.Slice(out.Altered, func(i, j int) bool { return out.Altered[i].Name < out.Altered[j].Name })
	return out
}

func diffOneTable(prev, cur snapshot.Table) (AlteredTable, bool) {
	alt := AlteredTable{Name: cur.Name}

	prevCols := make(map[string]snapshot.Column, len(prev.Columns))
	for _, c := range prev.Columns {
		prevCols[c.Name] = c
	}
	curCols := make(map[string]snapshot.Column, len(cur.Columns))
	for _, c := range cur.Columns {
		curCols[c.Name] = c
	}

	for name := range curCols {
		if _, ok := prevCols[name]; !ok {
			alt.AddedColumns = append(alt.AddedColumns, name)
		}
	}
	for name := range prevCols {
		if _, ok := curCols[name]; !ok {
			alt.DroppedColumns = append(alt.DroppedColumns, name)
		}
	}
	for name, curCol := range curCols {
		prevCol, ok := prevCols[name]
		if !ok {
			continue
		}
		if ch, changed := columnChange(prevCol, curCol); changed {
			alt.AlteredColumns = append(alt.AlteredColumns, ColumnChange{Name: name, Change: ch})
		}
	}

	sort.Strings(alt.AddedColumns)
	sort.Strings(alt.DroppedColumns)
	sort.Slice(alt.AlteredColumns, func(i, j int) bool { return alt.AlteredColumns[i].Name < alt.AlteredColumns[j].Name })

	changed := len(alt.AddedColumns) > 0 || len(alt.DroppedColumns) > 0 || len(alt.AlteredColumns) > 0
	return alt, changed
}

// columnChange compares two column shapes and, if they differ, returns
// the atlas-vocabulary description of what changed. Multiple scalar
// differences (type and nullability both changing, say) are folded into
// a single ModifyColumn the way atlas itself aggregates a column's
// changes rather than emitting one Change per attribute.
func columnChange(prev, cur snapshot.Column) (atlasschema.Change, bool) {
	var changeKind atlasschema.ColumnChangeKind
	if prev.Type != cur.Type {
		changeKind |= atlasschema.ChangeType
	}
	if prev.Nullable != cur.Nullable {
		changeKind |= atlasschema.ChangeNull
	}
	if prev.Default != cur.Default || prev.DefaultKind != cur.DefaultKind {
		changeKind |= atlasschema.ChangeDefault
	}
	if prev.AutoIncrement != cur.AutoIncrement {
		changeKind |= atlasschema.ChangeAttr
	}
	if changeKind == atlasschema.ColumnChangeKind(0) {
		return nil, false
	}
	return &atlasschema.ModifyColumn{
		From:   toAtlasColumn(prev),
		To:     toAtlasColumn(cur),
		Change: changeKind,
	}, true
}

func toAtlasColumn(c snapshot.Column) *atlasschema.Column {
	return &atlasschema.Column{
		Name: c.Name,
		Type: &atlasschema.ColumnType{
			Raw:  c.Type,
			Null: c.Nullable,
		},
	}
}

func diffNamed(prevNames, curNames map[string]bool, altered []string) NamedChanges {
	var out NamedChanges
	for n := range curNames {
		if !prevNames[n] {
			out.Created = append(out.Created, n)
		}
	}
	for n := range prevNames {
		if !curNames[n] {
			out.Deleted = append(out.Deleted, n)
		}
	}
	out.Altered = append(out.Altered, altered...)
	sort.Strings(out.Created)
	sort.Strings(out.Deleted)
	sort.Strings(out.Altered)
	return out
}

func indexNames(idx []snapshot.Index) map[string]bool {
	m := make(map[string]bool, len(idx))
	for _, i := range idx {
		m[i.Name] = true
	}
	return m
}

func indexAltered(prev, cur []snapshot.Index) []string {
	prevByName := make(map[string]snapshot.Index, len(prev))
	for _, i := range prev {
		prevByName[i.Name] = i
	}
	var out []string
	for _, c := range cur {
		p, ok := prevByName[c.Name]
		if !ok {
			continue
		}
		if !sameIndex(p, c) {
			out = append(out, c.Name)
		}
	}
	return out
}

func sameIndex(a, b snapshot.Index) bool {
	if a.Unique != b.Unique || a.Method != b.Method || a.Where != b.Where {
		return false
	}
	if len(a.Columns) != len(b.Columns) {
		return false
	}
	for i := range a.Columns {
		if a.Columns[i] != b.Columns[i] {
			return false
		}
	}
	return true
}

func fkNames(fks []snapshot.ForeignKey) map[string]bool {
	m := make(map[string]bool, len(fks))
	for _, f := range fks {
		m[f.Name] = true
	}
	return m
}

// fkAltered implements spec.md §4.4's renamed-parent-table rule: if a FK
// with the same name now points at a differently-named parent table or
// column, it is reported as altered, not as a delete+create pair — the
// ambiguous case (no name match at all) is handled by the created/deleted
// sets in diffNamed instead, per the invariant's own fallback.
func fkAltered(prev, cur []snapshot.ForeignKey) []string {
	prevByName := make(map[string]snapshot.ForeignKey, len(prev))
	for _, f := range prev {
		prevByName[f.Name] = f
	}
	var out []string
	for _, c := range cur {
		p, ok := prevByName[c.Name]
		if !ok {
			continue
		}
		if p.Table != c.Table || p.Column != c.Column || p.RefTable != c.RefTable ||
			p.RefColumn != c.RefColumn || p.OnDelete != c.OnDelete || p.OnUpdate != c.OnUpdate {
			out = append(out, c.Name)
		}
	}
	return out
}

func viewNames(vs []snapshot.View) map[string]bool {
	m := make(map[string]bool, len(vs))
	for _, v := range vs {
		m[v.Name] = true
	}
	return m
}

func viewAltered(prev, cur []snapshot.View) []string {
	prevByName := make(map[string]snapshot.View, len(prev))
	for _, v := range prev {
		prevByName[v.Name] = v
	}
	var out []string
	for _, c := range cur {
		p, ok := prevByName[c.Name]
		if ok && (p.Definition != c.Definition || p.Materialized != c.Materialized) {
			out = append(out, c.Name)
		}
	}
	return out
}

func enumNames(es []snapshot.Enum) map[string]bool {
	m := make(map[string]bool, len(es))
	for _, e := range es {
		m[e.Name] = true
	}
	return m
}

func enumAltered(prev, cur []snapshot.Enum) []string {
	prevByName := make(map[string]snapshot.Enum, len(prev))
	for _, e := range prev {
		prevByName[e.Name] = e
	}
	var out []string
	for _, c := range cur {
		p, ok := prevByName[c.Name]
		if !ok || len(p.Values) != len(c.Values) {
			if ok {
				out = append(out, c.Name)
			}
			continue
		}
		for i := range p.Values {
			if p.Values[i] != c.Values[i] {
				out = append(out, c.Name)
				break
			}
		}
	}
	return out
}

func seqNames(ss []snapshot.Sequence) map[string]bool {
	m := make(map[string]bool, len(ss))
	for _, s := range ss {
		m[s.Name] = true
	}
	return m
}

func seqAltered(prev, cur []snapshot.Sequence) []string {
	prevByName := make(map[string]snapshot.Sequence, len(prev))
	for _, s := range prev {
		prevByName[s.Name] = s
	}
	var out []string
	for _, c := range cur {
		p, ok := prevByName[c.Name]
		if ok && (p.StartWith != c.StartWith || p.Increment != c.Increment) {
			out = append(out, c.Name)
		}
	}
	return out
}
