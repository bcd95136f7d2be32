package qb

import (
	"github.com/sqlkit-go/sqlkit/dialect"
	"github.com/sqlkit-go/sqlkit/frag"
	"github.com/sqlkit-go/sqlkit/schema"
	"github.com/sqlkit-go/sqlkit/token"
)

type updateCore struct {
	table     *schema.TableInfo
	set       []ColumnValue
	where     []Cond
	returning []*schema.ColumnInfo
	err       error
}

// Update begins an UPDATE statement against table.
func Update(table *schema.TableInfo) *UpdateInitial {
	return &UpdateInitial{core: &updateCore{table: table}}
}

// UpdateInitial is reached immediately after Update; Set is the only
// legal transition.
type UpdateInitial struct{ core *updateCore }

// Set supplies the SET assignments. A ColumnValue whose Value is
// explicitly nil renders "col = NULL"; columns not mentioned keep their
// stored value, matching a struct-shaped partial update.
func (s *UpdateInitial) Set(assignments ...ColumnValue) *UpdateSetSet {
	s.core.set = assignments
	return &UpdateSetSet{core: s.core}
}

// UpdateSetSet is reached after Set. Build here performs a full-table
// update with no WHERE clause — legal, as with Delete, but worth the
// caller double-checking.
type UpdateSetSet struct{ core *updateCore }

func (s *UpdateSetSet) Where(cond Cond) *UpdateWhereSet {
	s.core.where = append(s.core.where, cond)
	return &UpdateWhereSet{core: s.core}
}

func (s *UpdateSetSet) Returning(cols ...*schema.ColumnInfo) *UpdateReturningSet {
	s.core.returning = cols
	return &UpdateReturningSet{core: s.core}
}

func (s *UpdateSetSet) Build(d dialect.Dialect) (string, []interface{}, error) {
	return buildUpdate(s.core, d)
}

// UpdateWhereSet is reached after Where.
type UpdateWhereSet struct{ core *updateCore }

func (s *UpdateWhereSet) Where(cond Cond) *UpdateWhereSet {
	s.core.where = append(s.core.where, cond)
	return s
}

func (s *UpdateWhereSet) Returning(cols ...*schema.ColumnInfo) *UpdateReturningSet {
	s.core.returning = cols
	return &UpdateReturningSet{core: s.core}
}

func (s *UpdateWhereSet) Build(d dialect.Dialect) (string, []interface{}, error) {
	return buildUpdate(s.core, d)
}

// UpdateReturningSet is the final terminal state once RETURNING is set.
type UpdateReturningSet struct{ core *updateCore }

func (s *UpdateReturningSet) Build(d dialect.Dialect) (string, []interface{}, error) {
	return buildUpdate(s.core, d)
}

func buildUpdate(core *updateCore, d dialect.Dialect) (string, []interface{}, error) {
	if core.err != nil {
		return "", nil, core.err
	}

	f := frag.From(token.UPDATE).Append(frag.TableFragment(core.table)).Push(frag.TokenChunk(token.SET))

	sets := make([]frag.Fragment, len(core.set))
	for i, cv := range core.set {
		assign := frag.IdentFragment(cv.Column.Name).Push(frag.TokenChunk(token.EQ))
		if cv.Value == nil {
			assign = assign.Push(frag.TokenChunk(token.NULL))
		} else {
			assign = assign.Push(frag.ParamChunk(frag.Val(cv.Value)))
		}
		sets[i] = assign
	}
	f = f.Append(frag.Join(sets, frag.TokenChunk(token.COMMA)))

	if len(core.where) > 0 {
		f = f.Push(frag.TokenChunk(token.WHERE)).Append(And(core.where...).f)
	}

	if len(core.returning) > 0 {
		f = f.Push(frag.TokenChunk(token.RETURNING))
		colFrags := make([]frag.Fragment, len(core.returning))
		for i, c := range core.returning {
			colFrags[i] = frag.ColumnFragment(c)
		}
		f = f.Append(frag.Join(colFrags, frag.TokenChunk(token.COMMA)))
	}

	return f.Render(d)
}
