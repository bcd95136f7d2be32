package qb

import (
	"github.com/sqlkit-go/sqlkit/dialect"
	"github.com/sqlkit-go/sqlkit/frag"
	"github.com/sqlkit-go/sqlkit/schema"
	"github.com/sqlkit-go/sqlkit/token"
)

// selectCore holds the SELECT statement under construction. It is shared
// by pointer across every state wrapper below so a transition method can
// record its effect without copying the whole statement; the type-state
// discipline lives in which *methods* are reachable from which Go type,
// not in how the storage is shared, matching the "runtime-checked state
// tag" substitute spec.md §9 endorses for languages without zero-cost
// phantom types — here the tag is the wrapper's own Go type, checked by
// the compiler rather than at runtime.
type selectCore struct {
	ctes      []cteDef
	recursive bool
	distinct  bool
	columns   []frag.Fragment
	table     *schema.TableInfo
	joins     []frag.Fragment
	where     []Cond
	groupBy   []frag.Fragment
	having    []Cond
	orderBy   []frag.Fragment
	limit     *int64
	offset    *int64
	err       error
}

func (c *selectCore) fail(err error) { if c.err == nil { c.err = err } }

// Select begins a SELECT statement with the given output columns. An
// empty column list renders "SELECT *".
func Select(columns ...frag.Fragment) *SelectInitial {
	return &SelectInitial{core: &selectCore{columns: columns}}
}

// SelectInitial is the non-terminal state before a table has been named;
// it exposes no execution terminal, only From.
type SelectInitial struct{ core *selectCore }

// Distinct marks the statement SELECT DISTINCT.
func (s *SelectInitial) Distinct() *SelectInitial {
	s.core.distinct = true
	return s
}

// From names the source table, the only legal transition out of Initial.
func (s *SelectInitial) From(table *schema.TableInfo) *SelectFromSet {
	s.core.table = table
	return &SelectFromSet{core: s.core}
}

// SelectFromSet is reached immediately after From; every subsequent
// clause (Join, Where, GroupBy, OrderBy, Limit) and direct execution are
// legal from here.
type SelectFromSet struct{ core *selectCore }

func (s *SelectFromSet) Where(cond Cond) *SelectWhereSet {
	s.core.where = append(s.core.where, cond)
	return &SelectWhereSet{core: s.core}
}

func (s *SelectFromSet) Join(j joinSpec) *SelectJoinSet {
	s.core.joins = append(s.core.joins, j.render())
	return &SelectJoinSet{core: s.core}
}

func (s *SelectFromSet) GroupBy(cols ...*schema.ColumnInfo) *SelectGroupSet {
	for _, c := range cols {
		s.core.groupBy = append(s.core.groupBy, frag.ColumnFragment(c))
	}
	return &SelectGroupSet{core: s.core}
}

func (s *SelectFromSet) OrderBy(items ...OrderItem) *SelectOrderSet {
	applyOrderBy(s.core, items)
	return &SelectOrderSet{core: s.core}
}

func (s *SelectFromSet) Limit(n int64) *SelectLimitSet {
	s.core.limit = &n
	return &SelectLimitSet{core: s.core}
}

func (s *SelectFromSet) Build(d dialect.Dialect) (string, []interface{}, error) {
	return build(s.core, d)
}

// SelectJoinSet is reached after one or more Join calls.
type SelectJoinSet struct{ core *selectCore }

func (s *SelectJoinSet) Join(j joinSpec) *SelectJoinSet {
	s.core.joins = append(s.core.joins, j.render())
	return s
}

func (s *SelectJoinSet) Where(cond Cond) *SelectWhereSet {
	s.core.where = append(s.core.where, cond)
	return &SelectWhereSet{core: s.core}
}

func (s *SelectJoinSet) OrderBy(items ...OrderItem) *SelectOrderSet {
	applyOrderBy(s.core, items)
	return &SelectOrderSet{core: s.core}
}

func (s *SelectJoinSet) Build(d dialect.Dialect) (string, []interface{}, error) {
	return build(s.core, d)
}

// SelectWhereSet is reached after Where.
type SelectWhereSet struct{ core *selectCore }

func (s *SelectWhereSet) Where(cond Cond) *SelectWhereSet {
	s.core.where = append(s.core.where, cond)
	return s
}

func (s *SelectWhereSet) GroupBy(cols ...*schema.ColumnInfo) *SelectGroupSet {
	for _, c := range cols {
		s.core.groupBy = append(s.core.groupBy, frag.ColumnFragment(c))
	}
	return &SelectGroupSet{core: s.core}
}

func (s *SelectWhereSet) OrderBy(items ...OrderItem) *SelectOrderSet {
	applyOrderBy(s.core, items)
	return &SelectOrderSet{core: s.core}
}

func (s *SelectWhereSet) Limit(n int64) *SelectLimitSet {
	s.core.limit = &n
	return &SelectLimitSet{core: s.core}
}

func (s *SelectWhereSet) Build(d dialect.Dialect) (string, []interface{}, error) {
	return build(s.core, d)
}

// SelectGroupSet is reached after GroupBy.
type SelectGroupSet struct{ core *selectCore }

func (s *SelectGroupSet) Having(cond Cond) *SelectGroupSet {
	s.core.having = append(s.core.having, cond)
	return s
}

func (s *SelectGroupSet) OrderBy(items ...OrderItem) *SelectOrderSet {
	applyOrderBy(s.core, items)
	return &SelectOrderSet{core: s.core}
}

func (s *SelectGroupSet) Build(d dialect.Dialect) (string, []interface{}, error) {
	return build(s.core, d)
}

// SelectOrderSet is reached after OrderBy.
type SelectOrderSet struct{ core *selectCore }

func (s *SelectOrderSet) Limit(n int64) *SelectLimitSet {
	s.core.limit = &n
	return &SelectLimitSet{core: s.core}
}

func (s *SelectOrderSet) Build(d dialect.Dialect) (string, []interface{}, error) {
	return build(s.core, d)
}

// SelectLimitSet is reached after Limit.
type SelectLimitSet struct{ core *selectCore }

func (s *SelectLimitSet) Offset(n int64) *SelectOffsetSet {
	s.core.offset = &n
	return &SelectOffsetSet{core: s.core}
}

func (s *SelectLimitSet) Build(d dialect.Dialect) (string, []interface{}, error) {
	return build(s.core, d)
}

// SelectOffsetSet is reached after Offset; the final terminal state.
type SelectOffsetSet struct{ core *selectCore }

func (s *SelectOffsetSet) Build(d dialect.Dialect) (string, []interface{}, error) {
	return build(s.core, d)
}

// SelectState is implemented by every SELECT builder state reachable
// after From (SelectFromSet, SelectJoinSet, SelectWhereSet,
// SelectGroupSet, SelectOrderSet, SelectLimitSet, SelectOffsetSet),
// letting a dialect-specific package like qb/postgresdb accept "any
// SELECT built so far" for a locking-clause suffix without one overload
// per state.
type SelectState interface {
	Core() *selectCore
}

// Core exposes the shared builder state to dialect-specific terminal
// wrappers (qb/postgresdb's FOR UPDATE/SHARE additions) without making it
// part of the public API surface other callers are meant to touch.
func (s *SelectFromSet) Core() *selectCore   { return s.core }
func (s *SelectJoinSet) Core() *selectCore   { return s.core }
func (s *SelectWhereSet) Core() *selectCore  { return s.core }
func (s *SelectGroupSet) Core() *selectCore  { return s.core }
func (s *SelectOrderSet) Core() *selectCore  { return s.core }
func (s *SelectLimitSet) Core() *selectCore  { return s.core }
func (s *SelectOffsetSet) Core() *selectCore { return s.core }

// RenderSelectWithSuffix renders core the same way Build does, then
// appends suffix before the bind-value pass — used by qb/postgresdb to
// layer FOR UPDATE/FOR SHARE clauses onto an otherwise-complete SELECT.
func RenderSelectWithSuffix(core *selectCore, d dialect.Dialect, suffix frag.Fragment) (string, []interface{}, error) {
	if core.err != nil {
		return "", nil, core.err
	}
	f, err := selectFragment(core)
	if err != nil {
		return "", nil, err
	}
	return f.Append(suffix).Render(d)
}

func build(core *selectCore, d dialect.Dialect) (string, []interface{}, error) {
	if core.err != nil {
		return "", nil, core.err
	}
	f, err := selectFragment(core)
	if err != nil {
		return "", nil, err
	}
	return f.Render(d)
}

func selectFragment(core *selectCore) (frag.Fragment, error) {
	f := frag.Empty()
	if len(core.ctes) > 0 {
		f = f.Push(frag.TokenChunk(token.WITH))
		if core.recursive {
			f = f.Push(frag.TokenChunk(token.RECURSIVE))
		}
		defs := make([]frag.Fragment, len(core.ctes))
		for i, c := range core.ctes {
			defs[i] = frag.IdentFragment(c.name).Push(frag.TokenChunk(token.AS)).Append(c.body.Parens())
		}
		f = f.Append(frag.Join(defs, frag.TokenChunk(token.COMMA)))
	}

	f = f.Push(frag.TokenChunk(token.SELECT))
	if core.distinct {
		f = f.Push(frag.TokenChunk(token.DISTINCT))
	}
	if len(core.columns) == 0 {
		f = f.Push(frag.TokenChunk(token.STAR))
	} else {
		f = f.Append(frag.Join(core.columns, frag.TokenChunk(token.COMMA)))
	}

	f = f.Push(frag.TokenChunk(token.FROM)).Append(frag.TableFragment(core.table))

	for _, j := range core.joins {
		f = f.Append(j)
	}

	if len(core.where) > 0 {
		f = f.Push(frag.TokenChunk(token.WHERE)).Append(And(core.where...).f)
	}

	if len(core.groupBy) > 0 {
		f = f.Push(frag.TokenChunk(token.GROUP)).Push(frag.TokenChunk(token.BY)).
			Append(frag.Join(core.groupBy, frag.TokenChunk(token.COMMA)))
	}

	if len(core.having) > 0 {
		f = f.Push(frag.TokenChunk(token.HAVING)).Append(And(core.having...).f)
	}

	if len(core.orderBy) > 0 {
		f = f.Push(frag.TokenChunk(token.ORDER)).Push(frag.TokenChunk(token.BY)).
			Append(frag.Join(core.orderBy, frag.TokenChunk(token.COMMA)))
	}

	if core.limit != nil {
		f = f.Push(frag.TokenChunk(token.LIMIT)).Push(frag.ParamChunk(frag.Val(*core.limit)))
	}
	if core.offset != nil {
		f = f.Push(frag.TokenChunk(token.OFFSET)).Push(frag.ParamChunk(frag.Val(*core.offset)))
	}

	return f, nil
}

// OrderItem is one ORDER BY entry: a column plus ASC/DESC direction.
type OrderItem struct {
	Column *schema.ColumnInfo
	Desc   bool
}

// Asc builds an ascending OrderItem.
func Asc(col *schema.ColumnInfo) OrderItem { return OrderItem{Column: col} }

// DescOrder builds a descending OrderItem.
func DescOrder(col *schema.ColumnInfo) OrderItem { return OrderItem{Column: col, Desc: true} }

func applyOrderBy(core *selectCore, items []OrderItem) {
	for _, it := range items {
		f := frag.ColumnFragment(it.Column)
		if it.Desc {
			f = f.Push(frag.TokenChunk(token.DESC))
		} else {
			f = f.Push(frag.TokenChunk(token.ASC))
		}
		core.orderBy = append(core.orderBy, f)
	}
}
