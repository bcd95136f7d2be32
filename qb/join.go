package qb

import (
	"github.com/sqlkit-go/sqlkit/frag"
	"github.com/sqlkit-go/sqlkit/schema"
	"github.com/sqlkit-go/sqlkit/token"
)

// joinSpec describes one JOIN clause: a kind token sequence, the joined
// table, and either an ON predicate or a USING column list.
type joinSpec struct {
	kind  []token.Token
	table *schema.TableInfo
	on    *Cond
	using []*schema.ColumnInfo
}

func (j joinSpec) render() frag.Fragment {
	f := frag.Empty()
	for _, t := range j.kind {
		f = f.Push(frag.TokenChunk(t))
	}
	f = f.Push(frag.TokenChunk(token.JOIN)).Append(frag.TableFragment(j.table))
	switch {
	case j.on != nil:
		f = f.Push(frag.TokenChunk(token.ON)).Append(j.on.f)
	case j.using != nil:
		cols := make([]frag.Fragment, len(j.using))
		for i, c := range j.using {
			cols[i] = frag.ColumnFragment(c)
		}
		f = f.Push(frag.TokenChunk(token.USING)).Append(frag.Join(cols, frag.TokenChunk(token.COMMA)).Parens())
	}
	return f
}

// InnerJoin builds an INNER JOIN table ON cond.
func InnerJoin(table *schema.TableInfo, on Cond) joinSpec {
	return joinSpec{kind: []token.Token{token.INNER}, table: table, on: &on}
}

// LeftJoin builds a LEFT OUTER JOIN table ON cond.
func LeftJoin(table *schema.TableInfo, on Cond) joinSpec {
	return joinSpec{kind: []token.Token{token.LEFT, token.OUTER}, table: table, on: &on}
}

// RightJoin builds a RIGHT OUTER JOIN table ON cond.
func RightJoin(table *schema.TableInfo, on Cond) joinSpec {
	return joinSpec{kind: []token.Token{token.RIGHT, token.OUTER}, table: table, on: &on}
}

// FullJoin builds a FULL OUTER JOIN table ON cond.
func FullJoin(table *schema.TableInfo, on Cond) joinSpec {
	return joinSpec{kind: []token.Token{token.FULL, token.OUTER}, table: table, on: &on}
}

// CrossJoin builds a CROSS JOIN table (no predicate).
func CrossJoin(table *schema.TableInfo) joinSpec {
	return joinSpec{kind: []token.Token{token.CROSS}, table: table}
}

// NaturalJoin builds a NATURAL JOIN table.
func NaturalJoin(table *schema.TableInfo) joinSpec {
	return joinSpec{kind: []token.Token{token.NATURAL}, table: table}
}

// NaturalLeftJoin builds a NATURAL LEFT OUTER JOIN table.
func NaturalLeftJoin(table *schema.TableInfo) joinSpec {
	return joinSpec{kind: []token.Token{token.NATURAL, token.LEFT, token.OUTER}, table: table}
}

// UsingJoin builds an INNER JOIN table USING (cols), the PostgreSQL/MySQL
// shorthand for joining on same-named columns.
func UsingJoin(table *schema.TableInfo, cols ...*schema.ColumnInfo) joinSpec {
	return joinSpec{kind: []token.Token{token.INNER}, table: table, using: cols}
}
