package qb

import (
	"github.com/sqlkit-go/sqlkit/frag"
	"github.com/sqlkit-go/sqlkit/schema"
	"github.com/sqlkit-go/sqlkit/token"
)

// Cond is a boolean SQL expression fragment, composable with And/Or/Not
// and usable anywhere a WHERE/HAVING/ON/join predicate is expected.
type Cond struct {
	f frag.Fragment
}

// Fragment exposes the underlying rendered fragment.
func (c Cond) Fragment() frag.Fragment { return c.f }

func binaryOp(col *schema.ColumnInfo, op token.Token, value interface{}) Cond {
	f := frag.ColumnFragment(col).
		Push(frag.TokenChunk(op)).
		Push(frag.ParamChunk(frag.Val(value)))
	return Cond{f: f}
}

// Eq builds "column = value".
func Eq(col *schema.ColumnInfo, value interface{}) Cond { return binaryOp(col, token.EQ, value) }

// Ne builds "column <> value".
func Ne(col *schema.ColumnInfo, value interface{}) Cond { return binaryOp(col, token.NE, value) }

// Lt builds "column < value".
func Lt(col *schema.ColumnInfo, value interface{}) Cond { return binaryOp(col, token.LT, value) }

// Gt builds "column > value".
func Gt(col *schema.ColumnInfo, value interface{}) Cond { return binaryOp(col, token.GT, value) }

// Le builds "column <= value".
func Le(col *schema.ColumnInfo, value interface{}) Cond { return binaryOp(col, token.LE, value) }

// Ge builds "column >= value".
func Ge(col *schema.ColumnInfo, value interface{}) Cond { return binaryOp(col, token.GE, value) }

// Like builds "column LIKE pattern".
func Like(col *schema.ColumnInfo, pattern string) Cond {
	f := frag.ColumnFragment(col).
		Push(frag.TokenChunk(token.LIKE)).
		Push(frag.ParamChunk(frag.Val(pattern)))
	return Cond{f: f}
}

// IsNull builds "column IS NULL".
func IsNull(col *schema.ColumnInfo) Cond {
	f := frag.ColumnFragment(col).Push(frag.TokenChunk(token.IS)).Push(frag.TokenChunk(token.NULL))
	return Cond{f: f}
}

// IsNotNull builds "column IS NOT NULL".
func IsNotNull(col *schema.ColumnInfo) Cond {
	f := frag.ColumnFragment(col).
		Push(frag.TokenChunk(token.IS)).
		Push(frag.TokenChunk(token.NOT)).
		Push(frag.TokenChunk(token.NULL))
	return Cond{f: f}
}

// Between builds "column BETWEEN lo AND hi".
func Between(col *schema.ColumnInfo, lo, hi interface{}) Cond {
	f := frag.ColumnFragment(col).
		Push(frag.TokenChunk(token.BETWEEN)).
		Push(frag.ParamChunk(frag.Val(lo))).
		Push(frag.TokenChunk(token.AND)).
		Push(frag.ParamChunk(frag.Val(hi)))
	return Cond{f: f}
}

// In builds "column IN (v1, v2, ...)"; an empty values list builds the
// always-false "column IN (NULL)" predicate rather than invalid SQL.
func In(col *schema.ColumnInfo, values ...interface{}) Cond {
	f := frag.ColumnFragment(col).Push(frag.TokenChunk(token.IN))
	if len(values) == 0 {
		f = f.Push(frag.TokenChunk(token.LPAREN)).Push(frag.TokenChunk(token.NULL)).Push(frag.TokenChunk(token.RPAREN))
		return Cond{f: f}
	}
	var parts []frag.Fragment
	for _, v := range values {
		parts = append(parts, frag.ParamFragment(frag.Val(v)))
	}
	list := frag.Join(parts, frag.TokenChunk(token.COMMA)).Parens()
	return Cond{f: f.Append(list)}
}

// Raw wraps a caller-supplied fragment as a Cond directly, for predicates
// the helper constructors above don't cover.
func Raw(f frag.Fragment) Cond { return Cond{f: f} }

func combine(op token.Token, conds []Cond) Cond {
	if len(conds) == 0 {
		return Cond{}
	}
	if len(conds) == 1 {
		return conds[0]
	}
	var parts []frag.Fragment
	for _, c := range conds {
		parts = append(parts, c.f.Parens())
	}
	return Cond{f: frag.Join(parts, frag.TokenChunk(op))}
}

// And combines conditions with AND, parenthesizing each operand.
func And(conds ...Cond) Cond { return combine(token.AND, conds) }

// Or combines conditions with OR, parenthesizing each operand.
func Or(conds ...Cond) Cond { return combine(token.OR, conds) }

// Not negates a condition: "NOT (cond)".
func Not(c Cond) Cond {
	return Cond{f: frag.From(token.NOT).Append(c.f.Parens())}
}
