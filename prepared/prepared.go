// Package prepared implements the split form of a rendered SQL statement:
// text segments interleaved with parameter slots, each either a bound
// value ready to execute or a named binding point awaiting a value. This
// is the form a cached, reusable statement takes between the point a
// fragment is rendered and the point a driver actually executes it.
package prepared

import (
	"fmt"
	"sort"

	"github.com/sqlkit-go/sqlkit/dialect"
	"github.com/sqlkit-go/sqlkit/frag"
)

// Slot is one parameter position in a prepared statement, in emission
// order. Exactly one of Value (a resolved bind value) or Name (an
// unresolved named placeholder) is meaningful, selected by Bound.
type Slot struct {
	Bound bool
	Value interface{}
	Name  string
}

// Statement is a fragment split into text segments and parameter slots:
// len(Segments) == len(Slots)+1, and the rendered SQL is
// Segments[0] + placeholder(Slots[0]) + Segments[1] + placeholder(Slots[1]) + ...
type Statement struct {
	Segments []string
	Slots    []Slot
	dialect  dialect.Dialect
}

// From splits a rendered Fragment into a Statement, preserving Bind slots
// as named placeholders rather than failing the way a direct Fragment.Render
// would. d controls how bound values render their segment boundaries
// (Postgres still needs $n numbering for the resolved slots).
func From(f frag.Fragment, d dialect.Dialect) (Statement, error) {
	var segments []string
	var slots []Slot
	var cur []byte

	chunks := f.Chunks()
	var prevRightSticky bool
	hasPrev := false

	flush := func() {
		segments = append(segments, string(cur))
		cur = nil
	}

	for _, c := range chunks {
		if hasPrev && !prevRightSticky && !c.LeftSticky() {
			cur = append(cur, ' ')
		}
		if c.IsParam() {
			flush()
			param := c.Param
			switch param.Kind {
			case frag.ParamValue:
				slots = append(slots, Slot{Bound: true, Value: param.Value})
			case frag.ParamBind:
				slots = append(slots, Slot{Bound: false, Name: param.BindName})
			default:
				return Statement{}, fmt.Errorf("prepared: parameter chunk has no value or bind name")
			}
		} else {
			text, err := c.RenderText(d)
			if err != nil {
				return Statement{}, err
			}
			cur = append(cur, text...)
		}
		prevRightSticky = c.RightSticky()
		hasPrev = true
	}
	flush()

	return Statement{Segments: segments, Slots: slots, dialect: d}, nil
}

// Binding is one (name, value) pair supplied to Bind.
type Binding struct {
	Name  string
	Value interface{}
}

// Bind resolves every unbound named Slot against bindings and renders the
// final SQL string plus ordered argument list. Every Bind slot must have
// exactly one matching name in bindings, in any order; an unknown name in
// bindings, or a Bind slot left unmatched, fails with *ParameterError.
func (s Statement) Bind(bindings []Binding) (string, []interface{}, error) {
	byName := make(map[string]interface{}, len(bindings))
	for _, b := range bindings {
		byName[b.Name] = b.Value
	}
	used := make(map[string]bool, len(bindings))

	var buf []byte
	var args []interface{}
	for i, slot := range s.Slots {
		buf = append(buf, s.Segments[i]...)
		var v interface{}
		if slot.Bound {
			v = slot.Value
		} else {
			val, ok := byName[slot.Name]
			if !ok {
				return "", nil, &ParameterError{Msg: fmt.Sprintf("missing binding for %q", slot.Name)}
			}
			used[slot.Name] = true
			v = val
		}
		buf = append(buf, s.dialect.Placeholder(len(args)+1)...)
		args = append(args, v)
	}
	buf = append(buf, s.Segments[len(s.Segments)-1]...)

	for name := range byName {
		if !used[name] && !s.hasBindName(name) {
			return "", nil, &ParameterError{Msg: fmt.Sprintf("unknown binding %q", name)}
		}
	}
	return string(buf), args, nil
}

func (s Statement) hasBindName(name string) bool {
	for _, slot := range s.Slots {
		if !slot.Bound && slot.Name == name {
			return true
		}
	}
	return false
}

// UnboundNames returns the names of every Bind slot not carrying a
// resolved value, sorted for deterministic error messages.
func (s Statement) UnboundNames() []string {
	var names []string
	for _, slot := range s.Slots {
		if !slot.Bound {
			names = append(names, slot.Name)
		}
	}
	sort.Strings(names)
	return names
}

// ParameterError reports a prepared-statement binding mismatch: a missing
// binding for a named slot, or a binding naming a slot that doesn't exist
// (spec.md §7).
type ParameterError struct {
	Msg string
}

func (e *ParameterError) Error() string { return "prepared: parameter error: " + e.Msg }
