// Package postgresdb layers PostgreSQL-only SELECT terminals onto the
// dialect-neutral qb builder: row-locking clauses (FOR UPDATE/FOR SHARE/
// FOR NO KEY UPDATE/FOR KEY SHARE) and REFRESH MATERIALIZED VIEW. Neither
// belongs in qb itself since SQLite and MySQL don't share this surface
// (MySQL has its own FOR UPDATE/FOR SHARE dialect, handled
// separately in qb/mysqldb), the same way the teacher keeps
// dialect-specific terminal methods out of its dialect-neutral core.
package postgresdb

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

// Locked is a row-locking suffix chained onto an already-built SELECT via
// ForUpdate, ForShare, ForNoKeyUpdate, or ForKeyShare.
type Locked struct {
	state qb.SelectState
	kind  []token.Token
	of    []*schema.TableInfo
	wait  waitMode
}

func newLocked(s qb.SelectState, kind ...token.Token) *Locked {
	return &Locked{state: s, kind: kind}
}

// ForUpdate appends FOR UPDATE, locking the selected rows against
// concurrent UPDATE, DELETE, or locking SELECT.
func ForUpdate(s qb.SelectState) *Locked { return newLocked(s, token.FOR, token.UPDATE) }

// ForShare appends FOR SHARE, locking the selected rows against
// concurrent UPDATE/DELETE while allowing other FOR SHARE locks.
func ForShare(s qb.SelectState) *Locked { return newLocked(s, token.FOR, token.SHARE) }

// ForNoKeyUpdate appends FOR NO KEY UPDATE, weaker than FOR UPDATE and
// compatible with a concurrent FOR KEY SHARE lock.
func ForNoKeyUpdate(s qb.SelectState) *Locked {
	return newLocked(s, token.FOR, token.NO, token.KEY, token.UPDATE)
}

// ForKeyShare appends FOR KEY SHARE, the weakest row lock, blocking only
// concurrent key modifications.
func ForKeyShare(s qb.SelectState) *Locked {
	return newLocked(s, token.FOR, token.KEY, token.SHARE)
}

// Of restricts the lock to rows coming from the named tables, for a
// SELECT joining more than one.
func (l *Locked) Of(tables ...*schema.TableInfo) *Locked {
	l.of = append(l.of, tables...)
	return l
}

// NoWait makes the statement fail immediately instead of blocking on a
// conflicting lock held by another transaction.
func (l *Locked) NoWait() *Locked {
	l.wait = waitNoWait
	return l
}

// SkipLocked makes the statement silently skip rows it cannot lock
// instead of blocking on them.
func (l *Locked) SkipLocked() *Locked {
	l.wait = waitSkipLocked
	return l
}

func (l *Locked) suffix() frag.Fragment {
	f := frag.Empty()
	for _, t := range l.kind {
		f = f.Push(frag.TokenChunk(t))
	}
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
