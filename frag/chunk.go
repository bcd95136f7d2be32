// Package frag implements the SQL fragment model: an ordered sequence of
// chunks (keywords, identifiers, raw text, parameters, table/column
// references, aliases) that renders deterministically to SQL text plus an
// ordered bind-value list. It is the substrate every higher-level builder
// in this toolkit composes on top of.
package frag

import (
	"fmt"

	"github.com/sqlkit-go/sqlkit/dialect"
	"github.com/sqlkit-go/sqlkit/schema"
	"github.com/sqlkit-go/sqlkit/token"
)

// ChunkKind discriminates the variants of Chunk.
type ChunkKind int

const (
	KindToken ChunkKind = iota
	KindIdent
	KindRaw
	KindParam
	KindTableRef
	KindColumnRef
	KindAlias
	KindGroup
)

// Chunk is one element of a Fragment. Exactly one of its fields is
// meaningful, selected by Kind — this mirrors the teacher's struct-of-all-
// fields pattern rather than a Go interface, so Fragment can keep chunks
// in a plain slice without boxing.
type Chunk struct {
	Kind ChunkKind

	Token  token.Token // KindToken
	Ident  string      // KindIdent, KindRaw
	Param  Param       // KindParam
	Table  *schema.TableInfo
	Column *schema.ColumnInfo

	// Alias fields: Inner is the wrapped chunk, AliasName the "AS name" text.
	Inner     *Chunk
	AliasName string

	// Group holds a parenthesized sub-sequence of chunks, rendered with the
	// same spacing rule as a top-level Fragment. Used when an operation
	// (e.g. aliasing a multi-chunk expression) needs to treat several
	// chunks as a single word-like unit without losing their parameters.
	Group []Chunk
}

// TokenChunk builds a Token chunk.
func TokenChunk(t token.Token) Chunk { return Chunk{Kind: KindToken, Token: t} }

// IdentChunk builds a dialect-quoted identifier chunk.
func IdentChunk(name string) Chunk { return Chunk{Kind: KindIdent, Ident: name} }

// RawChunk builds an unquoted raw-text chunk, for function names, numeric
// literals, and operators not present in the token enumeration.
func RawChunk(text string) Chunk { return Chunk{Kind: KindRaw, Ident: text} }

// ParamChunk builds a parameter chunk carrying a bound value.
func ParamChunk(p Param) Chunk { return Chunk{Kind: KindParam, Param: p} }

// TableRefChunk builds a table-reference chunk.
func TableRefChunk(t *schema.TableInfo) Chunk { return Chunk{Kind: KindTableRef, Table: t} }

// ColumnRefChunk builds a column-reference chunk.
func ColumnRefChunk(c *schema.ColumnInfo) Chunk { return Chunk{Kind: KindColumnRef, Column: c} }

// AliasChunk wraps inner in an "inner AS name" chunk.
func AliasChunk(inner Chunk, name string) Chunk {
	return Chunk{Kind: KindAlias, Inner: &inner, AliasName: name}
}

// GroupChunk wraps a sequence of chunks as one parenthesized, word-like
// unit, preserving each inner chunk's own parameters.
func GroupChunk(chunks []Chunk) Chunk {
	return Chunk{Kind: KindGroup, Group: chunks}
}

// leftSticky reports whether this chunk suppresses the space that would
// otherwise separate it from whatever precedes it. rightSticky is the
// mirror for whatever follows. Only KindToken carries stickiness
// (punctuation and operators); every other kind spaces like an ordinary
// word on both sides.
func (c Chunk) leftSticky() bool {
	if c.Kind == KindToken {
		return c.Token.LeftSticky()
	}
	return false
}

func (c Chunk) rightSticky() bool {
	if c.Kind == KindToken {
		return c.Token.RightSticky()
	}
	return false
}

// LeftSticky and RightSticky export the spacing predicates for packages
// (like prepared) that reimplement the spacing rule over individual
// chunks rather than a whole Fragment.
func (c Chunk) LeftSticky() bool  { return c.leftSticky() }
func (c Chunk) RightSticky() bool { return c.rightSticky() }

// IsParam reports whether this chunk is a parameter slot.
func (c Chunk) IsParam() bool { return c.Kind == KindParam }

// RenderText renders a single non-parameter chunk's own text (no
// surrounding spacing) using d's quoting rules. It is an error to call
// this on a KindParam chunk — callers must special-case parameters, since
// a single chunk doesn't carry the running parameter count a placeholder
// needs; use Fragment.Render or package prepared for that.
func (c Chunk) RenderText(d dialect.Dialect) (string, error) {
	if c.Kind == KindParam {
		return "", fmt.Errorf("frag: RenderText called on a parameter chunk")
	}
	var buf []byte
	var args []interface{}
	if err := c.write(&buf, d, &args); err != nil {
		return "", err
	}
	return string(buf), nil
}

// write renders the chunk's own text (not including spacing against
// neighbors) to buf using d for identifier quoting and placeholder style,
// appending any bound value to args in emission order. Positional
// numbering uses len(*args) before the append, so numbering stays correct
// across nested Group/Alias chunks sharing the same args slice.
func (c Chunk) write(buf *[]byte, d dialect.Dialect, args *[]interface{}) error {
	switch c.Kind {
	case KindToken:
		*buf = append(*buf, c.Token.String()...)
	case KindIdent:
		*buf = append(*buf, d.QuoteIdent(c.Ident)...)
	case KindRaw:
		*buf = append(*buf, c.Ident...)
	case KindParam:
		switch c.Param.Kind {
		case ParamValue:
			*buf = append(*buf, d.Placeholder(len(*args)+1)...)
			*args = append(*args, c.Param.Value)
		case ParamBind:
			return &UnboundParameterError{Name: c.Param.BindName}
		default:
			return fmt.Errorf("frag: parameter chunk has no value or bind name")
		}
	case KindTableRef:
		*buf = append(*buf, d.QuoteIdent(c.Table.Name)...)
	case KindColumnRef:
		*buf = append(*buf, d.QuoteIdent(c.Column.Table.Name)...)
		*buf = append(*buf, '.')
		*buf = append(*buf, d.QuoteIdent(c.Column.Name)...)
	case KindAlias:
		if err := c.Inner.write(buf, d, args); err != nil {
			return err
		}
		*buf = append(*buf, " AS "...)
		*buf = append(*buf, d.QuoteIdent(c.AliasName)...)
	case KindGroup:
		*buf = append(*buf, '(')
		if err := writeSeq(c.Group, d, buf, args); err != nil {
			return err
		}
		*buf = append(*buf, ')')
	default:
		return fmt.Errorf("frag: unknown chunk kind %d", c.Kind)
	}
	return nil
}

// writeSeq renders chunks left to right with the sticky spacing rule,
// appending bound values to args in emission order. It is the shared core
// used by Fragment.Render and by nested KindGroup chunks.
func writeSeq(chunks []Chunk, d dialect.Dialect, buf *[]byte, args *[]interface{}) error {
	var prev *Chunk
	for i := range chunks {
		c := &chunks[i]
		if prev != nil && !prev.rightSticky() && !c.leftSticky() {
			*buf = append(*buf, ' ')
		}
		if err := c.write(buf, d, args); err != nil {
			return err
		}
		prev = c
	}
	return nil
}

// UnboundParameterError is returned when rendering a fragment directly
// (not as a prepared statement) encounters a Bind slot awaiting late
// binding rather than a concrete value.
type UnboundParameterError struct {
	Name string
}

func (e *UnboundParameterError) Error() string {
	return fmt.Sprintf("frag: unbound parameter %q in direct render", e.Name)
}
