package qb

import (
	"github.com/sqlkit-go/sqlkit/dialect"
	"github.com/sqlkit-go/sqlkit/frag"
	"github.com/sqlkit-go/sqlkit/schema"
	"github.com/sqlkit-go/sqlkit/token"
)

type deleteCore struct {
	table     *schema.TableInfo
	where     []Cond
	returning []*schema.ColumnInfo
}

// DeleteFrom begins a DELETE statement against table.
func DeleteFrom(table *schema.TableInfo) *DeleteInitial {
	return &DeleteInitial{core: &deleteCore{table: table}}
}

// DeleteInitial is reached immediately after DeleteFrom. Build here
// performs a full-table delete with no WHERE clause, which is legal SQL
// and sometimes intentional.
type DeleteInitial struct{ core *deleteCore }

func (s *DeleteInitial) Where(cond Cond) *DeleteWhereSet {
	s.core.where = append(s.core.where, cond)
	return &DeleteWhereSet{core: s.core}
}

func (s *DeleteInitial) Returning(cols ...*schema.ColumnInfo) *DeleteReturningSet {
	s.core.returning = cols
	return &DeleteReturningSet{core: s.core}
}

func (s *DeleteInitial) Build(d dialect.Dialect) (string, []interface{}, error) {
	return buildDelete(s.core, d)
}

// DeleteWhereSet is reached after Where.
type DeleteWhereSet struct{ core *deleteCore }

func (s *DeleteWhereSet) Where(cond Cond) *DeleteWhereSet {
	s.core.where = append(s.core.where, cond)
	return s
}

func (s *DeleteWhereSet) Returning(cols ...*schema.ColumnInfo) *DeleteReturningSet {
	s.core.returning = cols
	return &DeleteReturningSet{core: s.core}
}

func (s *DeleteWhereSet) Build(d dialect.Dialect) (string, []interface{}, error) {
	return buildDelete(s.core, d)
}

// DeleteReturningSet is the final terminal state once RETURNING is set.
type DeleteReturningSet struct{ core *deleteCore }

func (s *DeleteReturningSet) Build(d dialect.Dialect) (string, []interface{}, error) {
	return buildDelete(s.core, d)
}

func buildDelete(core *deleteCore, d dialect.Dialect) (string, []interface{}, error) {
	f := frag.From(token.DELETE).Push(frag.TokenChunk(token.FROM)).Append(frag.TableFragment(core.table))

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
