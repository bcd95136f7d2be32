package postgresdb

import (
	"github.com/sqlkit-go/sqlkit/dialect"
	"github.com/sqlkit-go/sqlkit/frag"
	"github.com/sqlkit-go/sqlkit/schema"
	"github.com/sqlkit-go/sqlkit/token"
)

// RefreshMaterializedViewBuilder builds a Postgres REFRESH MATERIALIZED
// VIEW statement, chaining Concurrently/WithData/WithNoData before Build.
type RefreshMaterializedViewBuilder struct {
	view         *schema.ViewInfo
	concurrently bool
	withData     *bool
}

// RefreshMaterializedView begins a REFRESH MATERIALIZED VIEW statement
// against view.
func RefreshMaterializedView(view *schema.ViewInfo) *RefreshMaterializedViewBuilder {
	return &RefreshMaterializedViewBuilder{view: view}
}

// Concurrently renders REFRESH MATERIALIZED VIEW CONCURRENTLY, which
// avoids locking out concurrent reads of the view but requires it to
// carry a unique index.
func (r *RefreshMaterializedViewBuilder) Concurrently() *RefreshMaterializedViewBuilder {
	r.concurrently = true
	return r
}

// WithData appends WITH DATA, populating the view and marking it
// scannable (the default when neither WithData nor WithNoData is called).
func (r *RefreshMaterializedViewBuilder) WithData() *RefreshMaterializedViewBuilder {
	v := true
	r.withData = &v
	return r
}

// WithNoData appends WITH NO DATA, clearing the view's contents and
// marking it unscannable until a subsequent refresh.
func (r *RefreshMaterializedViewBuilder) WithNoData() *RefreshMaterializedViewBuilder {
	v := false
	r.withData = &v
	return r
}

// Build renders the REFRESH MATERIALIZED VIEW statement.
func (r *RefreshMaterializedViewBuilder) Build(d dialect.Dialect) (string, []interface{}, error) {
	f := frag.Empty().
		Push(frag.TokenChunk(token.REFRESH)).
		Push(frag.TokenChunk(token.MATERIALIZED)).
		Push(frag.TokenChunk(token.VIEW))
	if r.concurrently {
		f = f.Push(frag.TokenChunk(token.CONCURRENTLY))
	}
	f = f.Append(frag.IdentFragment(r.view.Name))
	if r.withData != nil {
		f = f.Push(frag.TokenChunk(token.WITH))
		if !*r.withData {
			f = f.Push(frag.TokenChunk(token.NO))
		}
		f = f.Push(frag.TokenChunk(token.DATA))
	}
	return f.Render(d)
}
