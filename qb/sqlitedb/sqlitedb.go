// Package sqlitedb layers a SQLite-only INSERT terminal onto the
// dialect-neutral qb builder: the "INSERT OR <algorithm>" conflict-
// resolution clause, a legacy SQLite construct predating and distinct
// from the ON CONFLICT syntax qb.InsertValuesSet.OnConflict already
// renders (SQLite accepts both; ON CONFLICT is the SQL-standard path, OR
// REPLACE/OR IGNORE is the shorthand most SQLite-only code still uses).
// SQLite has no row-locking SELECT clause — the whole database file is
// locked for a write, so there is no FOR UPDATE/FOR SHARE surface to
// mirror qb/postgresdb's here.
package sqlitedb

import (
	"github.com/sqlkit-go/sqlkit/dialect"
	"github.com/sqlkit-go/sqlkit/frag"
	"github.com/sqlkit-go/sqlkit/qb"
	"github.com/sqlkit-go/sqlkit/token"
)

// InsertOrReplace renders the statement as "INSERT OR REPLACE INTO ...":
// a conflicting row is deleted before the new row is inserted, rather
// than erroring or being skipped.
func InsertOrReplace(s qb.InsertState) *ConflictInsert {
	return &ConflictInsert{state: s, algorithm: token.REPLACE}
}

// InsertOrIgnore renders the statement as "INSERT OR IGNORE INTO ...":
// a conflicting row is left untouched and the new row silently dropped.
func InsertOrIgnore(s qb.InsertState) *ConflictInsert {
	return &ConflictInsert{state: s, algorithm: token.IGNORE}
}

// ConflictInsert is an INSERT rendered with SQLite's "OR <algorithm>"
// conflict-resolution clause instead of (or alongside) ON CONFLICT.
type ConflictInsert struct {
	state     qb.InsertState
	algorithm token.Token
}

// Build renders the underlying INSERT with its OR <algorithm> lead.
func (c *ConflictInsert) Build(d dialect.Dialect) (string, []interface{}, error) {
	lead := frag.From(token.INSERT).
		Push(frag.TokenChunk(token.OR)).
		Push(frag.TokenChunk(c.algorithm)).
		Push(frag.TokenChunk(token.INTO))
	return qb.RenderInsertWithLead(c.state.Core(), d, lead)
}
