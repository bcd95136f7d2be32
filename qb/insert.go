package qb

import (
	"fmt"

	"github.com/sqlkit-go/sqlkit/dialect"
	"github.com/sqlkit-go/sqlkit/frag"
	"github.com/sqlkit-go/sqlkit/schema"
	"github.com/sqlkit-go/sqlkit/token"
)

// ColumnValue is one (column, value) pair within an insert Row or an
// UPDATE SET assignment.
type ColumnValue struct {
	Column *schema.ColumnInfo
	Value  interface{}
}

// Row is one INSERT VALUES record: an ordered list of column/value pairs.
// Every row passed to Values must carry the same columns in the same
// order as the first — Go has no type parameter that can enforce a
// shared row shape across heterogeneous calls the way a generic record
// type can in a language with structural row polymorphism, so this is
// checked at Values() and reported as a build error, per spec.md §9's
// note that a runtime check is an acceptable substitute.
type Row []ColumnValue

func (r Row) columns() []*schema.ColumnInfo {
	cols := make([]*schema.ColumnInfo, len(r))
	for i, cv := range r {
		cols[i] = cv.Column
	}
	return cols
}

func sameColumns(a, b []*schema.ColumnInfo) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

type insertCore struct {
	table             *schema.TableInfo
	columns           []*schema.ColumnInfo
	rows              []Row
	conflictTarget    []*schema.ColumnInfo
	conflictWhere     *Cond
	doNothing         bool
	doUpdate          []ColumnValue
	doUpdateWhere     *Cond
	returning         []*schema.ColumnInfo
	err               error
}

// InsertInto begins an INSERT statement against table.
func InsertInto(table *schema.TableInfo) *InsertTableSet {
	return &InsertTableSet{core: &insertCore{table: table}}
}

// InsertTableSet is reached immediately after InsertInto.
type InsertTableSet struct{ core *insertCore }

// Values supplies the rows to insert. An empty rows list is legal and
// renders a bare VALUES fragment per spec.md §4.2.2's documented edge
// case — rendering succeeds, but executing such a statement is the
// driver's problem, not this builder's.
func (s *InsertTableSet) Values(rows ...Row) *InsertValuesSet {
	if len(rows) > 0 {
		want := rows[0].columns()
		for _, r := range rows[1:] {
			if !sameColumns(r.columns(), want) {
				s.core.err = fmt.Errorf("qb: insert rows do not share the same column pattern")
				break
			}
		}
		s.core.columns = want
	}
	s.core.rows = rows
	return &InsertValuesSet{core: s.core}
}

// InsertValuesSet is reached after Values.
type InsertValuesSet struct{ core *insertCore }

// OnConflict begins a typed conflict clause targeting the given unique
// columns/index.
func (s *InsertValuesSet) OnConflict(target ...*schema.ColumnInfo) *InsertConflictSet {
	s.core.conflictTarget = target
	return &InsertConflictSet{core: s.core}
}

func (s *InsertValuesSet) Returning(cols ...*schema.ColumnInfo) *InsertReturningSet {
	s.core.returning = cols
	return &InsertReturningSet{core: s.core}
}

func (s *InsertValuesSet) Build(d dialect.Dialect) (string, []interface{}, error) {
	return buildInsert(s.core, d)
}

// InsertConflictSet is reached after OnConflict; it may carry a partial-
// index WHERE predicate before choosing DoNothing or DoUpdate.
type InsertConflictSet struct{ core *insertCore }

func (s *InsertConflictSet) Where(cond Cond) *InsertConflictSet {
	s.core.conflictWhere = &cond
	return s
}

func (s *InsertConflictSet) DoNothing() *InsertDoNothingSet {
	s.core.doNothing = true
	return &InsertDoNothingSet{core: s.core}
}

func (s *InsertConflictSet) DoUpdate(assignments ...ColumnValue) *InsertDoUpdateSet {
	s.core.doUpdate = assignments
	return &InsertDoUpdateSet{core: s.core}
}

// InsertDoNothingSet is reached after DoNothing.
type InsertDoNothingSet struct{ core *insertCore }

func (s *InsertDoNothingSet) Returning(cols ...*schema.ColumnInfo) *InsertReturningSet {
	s.core.returning = cols
	return &InsertReturningSet{core: s.core}
}

func (s *InsertDoNothingSet) Build(d dialect.Dialect) (string, []interface{}, error) {
	return buildInsert(s.core, d)
}

// InsertDoUpdateSet is reached after DoUpdate; it may carry a conditional-
// update WHERE predicate.
type InsertDoUpdateSet struct{ core *insertCore }

func (s *InsertDoUpdateSet) Where(cond Cond) *InsertDoUpdateSet {
	s.core.doUpdateWhere = &cond
	return s
}

func (s *InsertDoUpdateSet) Returning(cols ...*schema.ColumnInfo) *InsertReturningSet {
	s.core.returning = cols
	return &InsertReturningSet{core: s.core}
}

func (s *InsertDoUpdateSet) Build(d dialect.Dialect) (string, []interface{}, error) {
	return buildInsert(s.core, d)
}

// InsertReturningSet is the final terminal state once RETURNING is set.
type InsertReturningSet struct{ core *insertCore }

func (s *InsertReturningSet) Build(d dialect.Dialect) (string, []interface{}, error) {
	return buildInsert(s.core, d)
}

// InsertState is implemented by every INSERT builder state
// (InsertTableSet, InsertValuesSet, InsertConflictSet,
// InsertDoNothingSet, InsertDoUpdateSet, InsertReturningSet), letting a
// dialect-specific package like qb/sqlitedb render an otherwise-complete
// INSERT with a different leading conflict-resolution clause.
type InsertState interface {
	Core() *insertCore
}

func (s *InsertTableSet) Core() *insertCore     { return s.core }
func (s *InsertValuesSet) Core() *insertCore    { return s.core }
func (s *InsertConflictSet) Core() *insertCore  { return s.core }
func (s *InsertDoNothingSet) Core() *insertCore { return s.core }
func (s *InsertDoUpdateSet) Core() *insertCore  { return s.core }
func (s *InsertReturningSet) Core() *insertCore { return s.core }

// RenderInsertWithLead renders core the same way Build does, but with
// lead substituted for the default "INSERT INTO" opening — used by
// qb/sqlitedb to render SQLite's "INSERT OR REPLACE/IGNORE INTO ..."
// conflict-resolution algorithms, which replace the INSERT keyword
// itself rather than adding an ON CONFLICT clause.
func RenderInsertWithLead(core *insertCore, d dialect.Dialect, lead frag.Fragment) (string, []interface{}, error) {
	if core.err != nil {
		return "", nil, core.err
	}
	f := insertFragment(core, lead)
	return f.Render(d)
}

func defaultInsertLead() frag.Fragment {
	return frag.From(token.INSERT).Push(frag.TokenChunk(token.INTO))
}

// RenderInsertWithSuffix renders core the same way Build does, then
// appends suffix before the bind-value pass — used by qb/mysqldb to
// layer an ON DUPLICATE KEY UPDATE clause onto an otherwise-complete
// INSERT.
func RenderInsertWithSuffix(core *insertCore, d dialect.Dialect, suffix frag.Fragment) (string, []interface{}, error) {
	if core.err != nil {
		return "", nil, core.err
	}
	f := insertFragment(core, defaultInsertLead()).Append(suffix)
	return f.Render(d)
}

func buildInsert(core *insertCore, d dialect.Dialect) (string, []interface{}, error) {
	if core.err != nil {
		return "", nil, core.err
	}
	return insertFragment(core, defaultInsertLead()).Render(d)
}

func insertFragment(core *insertCore, lead frag.Fragment) frag.Fragment {
	f := lead.Append(frag.TableFragment(core.table))

	if len(core.rows) == 0 {
		f = f.Push(frag.TokenChunk(token.VALUES))
	} else if len(core.columns) == 0 {
		f = f.Push(frag.TokenChunk(token.DEFAULT)).Push(frag.TokenChunk(token.VALUES))
	} else {
		colFrags := make([]frag.Fragment, len(core.columns))
		for i, c := range core.columns {
			colFrags[i] = frag.ColumnFragment(c)
		}
		f = f.Append(frag.Join(colFrags, frag.TokenChunk(token.COMMA)).Parens())
		f = f.Push(frag.TokenChunk(token.VALUES))

		rowFrags := make([]frag.Fragment, len(core.rows))
		for i, row := range core.rows {
			vals := make([]frag.Fragment, len(row))
			for j, cv := range row {
				vals[j] = frag.ParamFragment(frag.Val(cv.Value))
			}
			rowFrags[i] = frag.Join(vals, frag.TokenChunk(token.COMMA)).Parens()
		}
		f = f.Append(frag.Join(rowFrags, frag.TokenChunk(token.COMMA)))
	}

	if len(core.conflictTarget) > 0 {
		f = f.Push(frag.TokenChunk(token.ON)).Push(frag.TokenChunk(token.CONFLICT))
		colFrags := make([]frag.Fragment, len(core.conflictTarget))
		for i, c := range core.conflictTarget {
			colFrags[i] = frag.ColumnFragment(c)
		}
		f = f.Append(frag.Join(colFrags, frag.TokenChunk(token.COMMA)).Parens())
		if core.conflictWhere != nil {
			f = f.Push(frag.TokenChunk(token.WHERE)).Append(core.conflictWhere.f)
		}
		f = f.Push(frag.TokenChunk(token.DO))
		switch {
		case core.doNothing:
			f = f.Push(frag.TokenChunk(token.NOTHING))
		case len(core.doUpdate) > 0:
			f = f.Push(frag.TokenChunk(token.UPDATE)).Push(frag.TokenChunk(token.SET))
			sets := make([]frag.Fragment, len(core.doUpdate))
			for i, cv := range core.doUpdate {
				sets[i] = frag.IdentFragment(cv.Column.Name).Push(frag.TokenChunk(token.EQ)).Append(frag.ParamFragment(frag.Val(cv.Value)))
			}
			f = f.Append(frag.Join(sets, frag.TokenChunk(token.COMMA)))
			if core.doUpdateWhere != nil {
				f = f.Push(frag.TokenChunk(token.WHERE)).Append(core.doUpdateWhere.f)
			}
		}
	}

	if len(core.returning) > 0 {
		f = f.Push(frag.TokenChunk(token.RETURNING))
		colFrags := make([]frag.Fragment, len(core.returning))
		for i, c := range core.returning {
			colFrags[i] = frag.ColumnFragment(c)
		}
		f = f.Append(frag.Join(colFrags, frag.TokenChunk(token.COMMA)))
	}

	return f
}
