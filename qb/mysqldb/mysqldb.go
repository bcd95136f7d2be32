// Package mysqldb layers MySQL-only terminals onto the dialect-neutral
// qb builder: row-locking SELECT clauses (FOR UPDATE/FOR SHARE, MySQL
// 8.0's replacement for the older LOCK IN SHARE MODE) and the
// ON DUPLICATE KEY UPDATE upsert clause, MySQL's alternative to the
// Postgres/SQLite ON CONFLICT syntax qb.InsertValuesSet.OnConflict
// already renders. MySQL has no FOR NO KEY UPDATE/FOR KEY SHARE
// equivalent — those are Postgres-only lock strengths.
package mysqldb

import (
	"github.com/sqlkit-go/sqlkit/dialect"
	"github.com/sqlkit-go/sqlkit/frag"
	"github.com/sqlkit-go/sqlkit/qb"
	"github.com/sqlkit-go/sqlkit/schema"
	"github.com/sqlkit-go/sqlkit/token"
)

type waitMode int

const (
	waitNone waitMode = iota
	waitNoWait
	waitSkipLocked
)

// Locked is a row-locking suffix chained onto an already-built SELECT
// via ForUpdate or ForShare.
type Locked struct {
	state qb.SelectState
	kind  token.Token
	of    []*schema.TableInfo
	wait  waitMode
}

// ForUpdate appends FOR UPDATE, locking the selected rows against
// concurrent UPDATE, DELETE, or locking SELECT.
func ForUpdate(s qb.SelectState) *Locked {
	return &Locked{state: s, kind: token.UPDATE}
}

// ForShare appends FOR SHARE (MySQL 8.0's replacement for the older
// LOCK IN SHARE MODE), locking the selected rows against concurrent
// UPDATE/DELETE while allowing other FOR SHARE locks.
func ForShare(s qb.SelectState) *Locked {
	return &Locked{state: s, kind: token.SHARE}
}

// Of restricts the lock to rows from the named tables, for a SELECT
// joining more than one (MySQL 8.0.1+).
func (l *Locked) Of(tables ...*schema.TableInfo) *Locked {
	l.of = append(l.of, tables...)
	return l
}

// NoWait makes the statement fail immediately instead of blocking on a
// conflicting lock held by another transaction (MySQL 8.0.1+).
func (l *Locked) NoWait() *Locked {
	l.wait = waitNoWait
	return l
}

// SkipLocked makes the statement silently skip rows it cannot lock
// instead of blocking on them (MySQL 8.0.1+).
func (l *Locked) SkipLocked() *Locked {
	l.wait = waitSkipLocked
	return l
}

func (l *Locked) suffix() frag.Fragment {
	f := frag.From(token.FOR).Push(frag.TokenChunk(l.kind))
	if len(l.of) > 0 {
		f = f.Push(frag.TokenChunk(token.OF))
		tables := make([]frag.Fragment, len(l.of))
		for i, t := range l.of {
			tables[i] = frag.TableFragment(t)
		}
		f = f.Append(frag.Join(tables, frag.TokenChunk(token.COMMA)))
	}
	switch l.wait {
	case waitNoWait:
		f = f.Push(frag.TokenChunk(token.NOWAIT))
	case waitSkipLocked:
		f = f.Push(frag.TokenChunk(token.SKIP)).Push(frag.TokenChunk(token.LOCKED))
	}
	return f
}

// Build renders the underlying SELECT with this locking clause appended.
func (l *Locked) Build(d dialect.Dialect) (string, []interface{}, error) {
	return qb.RenderSelectWithSuffix(l.state.Core(), d, l.suffix())
}

// DuplicateKeyInsert is an INSERT rendered with MySQL's
// ON DUPLICATE KEY UPDATE clause in place of ON CONFLICT.
type DuplicateKeyInsert struct {
	state       qb.InsertState
	assignments []qb.ColumnValue
}

// OnDuplicateKeyUpdate appends ON DUPLICATE KEY UPDATE, applying
// assignments when the insert collides with any unique key or primary
// key, not just the one named target ON CONFLICT requires.
func OnDuplicateKeyUpdate(s qb.InsertState, assignments ...qb.ColumnValue) *DuplicateKeyInsert {
	return &DuplicateKeyInsert{state: s, assignments: assignments}
}

// Build renders the underlying INSERT with its ON DUPLICATE KEY UPDATE
// suffix.
func (d *DuplicateKeyInsert) Build(dia dialect.Dialect) (string, []interface{}, error) {
	f := frag.Empty().Push(frag.TokenChunk(token.ON)).
		Push(frag.TokenChunk(token.DUPLICATE)).
		Push(frag.TokenChunk(token.KEY)).
		Push(frag.TokenChunk(token.UPDATE))
	sets := make([]frag.Fragment, len(d.assignments))
	for i, cv := range d.assignments {
		sets[i] = frag.IdentFragment(cv.Column.Name).Push(frag.TokenChunk(token.EQ)).Append(frag.ParamFragment(frag.Val(cv.Value)))
	}
	f = f.Append(frag.Join(sets, frag.TokenChunk(token.COMMA)))
	return qb.RenderInsertWithSuffix(d.state.Core(), dia, f)
}
