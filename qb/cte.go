package qb

import (
	"github.com/sqlkit-go/sqlkit/frag"
	"github.com/sqlkit-go/sqlkit/schema"
)

// cteDef is one named common table expression: an alias and the fragment
// that renders its body (normally a SELECT builder's fragment taken via
// CTEFromSelect, or a caller-assembled fragment passed to CTE).
type cteDef struct {
	name string
	body frag.Fragment
}

// CTE names a common table expression body from a caller-assembled
// fragment, for bodies that don't come from the SELECT builder (e.g. a
// hand-built set operation).
func CTE(name string, body frag.Fragment) cteDef {
	return cteDef{name: name, body: body}
}

// CTEFromSelect builds a CTE definition from a SELECT terminal state's
// shared core, re-deriving its fragment directly rather than going
// through Build()'s rendered text — that keeps the inner query's
// parameters as real chunks the outer WITH clause can still number
// correctly, instead of frozen placeholder text.
func CTEFromSelect(name string, core *selectCore) (cteDef, error) {
	f, err := selectFragment(core)
	if err != nil {
		return cteDef{}, err
	}
	return cteDef{name: name, body: f}, nil
}

// VirtualTable returns a TableInfo referencing a CTE by name so that the
// outer statement can FROM/JOIN it exactly like a real table. It carries
// no columns of its own; callers build ColumnInfo values against it as
// needed for typed references into the CTE's projection.
func VirtualTable(cteName string) *schema.TableInfo {
	return &schema.TableInfo{Name: cteName}
}

// With begins a WITH clause ahead of a SELECT statement.
func With(defs ...cteDef) *WithSet {
	return &WithSet{core: &selectCore{ctes: defs}}
}

// WithRecursive begins a WITH RECURSIVE clause.
func WithRecursive(defs ...cteDef) *WithSet {
	return &WithSet{core: &selectCore{ctes: defs, recursive: true}}
}

// WithSet is reached after With/WithRecursive; Select is the only legal
// transition, continuing exactly like the non-CTE SELECT builder from
// there on.
type WithSet struct{ core *selectCore }

func (w *WithSet) Select(columns ...frag.Fragment) *SelectInitial {
	w.core.columns = columns
	return &SelectInitial{core: w.core}
}
