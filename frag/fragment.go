package frag

import (
	"github.com/sqlkit-go/sqlkit/dialect"
	"github.com/sqlkit-go/sqlkit/schema"
	"github.com/sqlkit-go/sqlkit/token"
)

// Fragment is an ordered sequence of chunks plus the parameter slots they
// carry. It is immutable in the sense every composition operator returns
// a new Fragment rather than mutating a shared one — cheap here since
// Fragments are small slices, unlike the teacher's builders which mutate
// an internal buffer in place.
type Fragment struct {
	chunks []Chunk
}

// Empty returns a Fragment with no chunks.
func Empty() Fragment { return Fragment{} }

// From starts a Fragment from a single token.
func From(t token.Token) Fragment {
	return Fragment{chunks: []Chunk{TokenChunk(t)}}
}

// RawFragment starts a Fragment from raw unquoted text.
func RawFragment(text string) Fragment {
	return Fragment{chunks: []Chunk{RawChunk(text)}}
}

// IdentFragment starts a Fragment from a quoted identifier.
func IdentFragment(name string) Fragment {
	return Fragment{chunks: []Chunk{IdentChunk(name)}}
}

// ParamFragment starts a Fragment from a single bound parameter.
func ParamFragment(p Param) Fragment {
	return Fragment{chunks: []Chunk{ParamChunk(p)}}
}

// PlaceholderFragment starts a Fragment from a named late-bound parameter.
func PlaceholderFragment(name string) Fragment {
	return Fragment{chunks: []Chunk{ParamChunk(Bind(name))}}
}

// TableFragment starts a Fragment from a table reference.
func TableFragment(t *schema.TableInfo) Fragment {
	return Fragment{chunks: []Chunk{TableRefChunk(t)}}
}

// ColumnFragment starts a Fragment from a column reference.
func ColumnFragment(c *schema.ColumnInfo) Fragment {
	return Fragment{chunks: []Chunk{ColumnRefChunk(c)}}
}

// Chunks exposes the underlying chunk slice, read-only by convention (the
// returned slice aliases internal storage; callers must not mutate it).
func (f Fragment) Chunks() []Chunk { return f.chunks }

// IsEmpty reports whether the fragment carries no chunks.
func (f Fragment) IsEmpty() bool { return len(f.chunks) == 0 }

// Append concatenates other's chunks after f's, returning a new Fragment.
func (f Fragment) Append(other Fragment) Fragment {
	out := make([]Chunk, 0, len(f.chunks)+len(other.chunks))
	out = append(out, f.chunks...)
	out = append(out, other.chunks...)
	return Fragment{chunks: out}
}

// Push appends a single chunk, returning a new Fragment.
func (f Fragment) Push(c Chunk) Fragment {
	out := make([]Chunk, 0, len(f.chunks)+1)
	out = append(out, f.chunks...)
	out = append(out, c)
	return Fragment{chunks: out}
}

// Parens wraps the fragment's chunks in LPAREN ... RPAREN.
func (f Fragment) Parens() Fragment {
	out := make([]Chunk, 0, len(f.chunks)+2)
	out = append(out, TokenChunk(token.LPAREN))
	out = append(out, f.chunks...)
	out = append(out, TokenChunk(token.RPAREN))
	return Fragment{chunks: out}
}

// Alias wraps the fragment as "... AS name". A single-chunk fragment
// becomes one Alias chunk; a multi-chunk fragment is first folded into a
// parenthesized Group chunk so the alias applies to the whole expression
// while every parameter inside it stays intact.
func (f Fragment) Alias(name string) Fragment {
	if len(f.chunks) == 1 {
		return Fragment{chunks: []Chunk{AliasChunk(f.chunks[0], name)}}
	}
	return Fragment{chunks: []Chunk{AliasChunk(GroupChunk(f.chunks), name)}}
}

// Join interleaves fragments with a separator chunk between each pair,
// e.g. Join(cols, TokenChunk(token.COMMA)) for a column list.
func Join(fragments []Fragment, separator Chunk) Fragment {
	var out []Chunk
	for i, part := range fragments {
		if i > 0 {
			out = append(out, separator)
		}
		out = append(out, part.chunks...)
	}
	return Fragment{chunks: out}
}

// MapParams returns a new Fragment with every ParamValue chunk's value
// transformed by f, leaving all other chunks untouched. Used to convert
// parameter values between owned and borrowed dialect-value forms.
func (f Fragment) MapParams(fn func(interface{}) interface{}) Fragment {
	out := make([]Chunk, len(f.chunks))
	for i, c := range f.chunks {
		if c.Kind == KindParam && c.Param.Kind == ParamValue {
			c.Param.Value = fn(c.Param.Value)
		}
		out[i] = c
	}
	return Fragment{chunks: out}
}

// Render walks the fragment left to right, producing SQL text and the
// ordered list of bound parameter values per d's quoting and placeholder
// rules. It fails with *UnboundParameterError if a Bind slot is reached,
// since direct execution requires every parameter resolved.
func (f Fragment) Render(d dialect.Dialect) (string, []interface{}, error) {
	var buf []byte
	var args []interface{}
	if err := writeSeq(f.chunks, d, &buf, &args); err != nil {
		return "", nil, err
	}
	return string(buf), args, nil
}
