// Package value implements the dialect bind-value model: a single
// Kind-tagged union covering every value SQLite, PostgreSQL, and MySQL
// can bind as a query parameter, plus the
// owned/borrowed duality the fragment and prepared-statement layers need
// when converting a parameter set for reuse.
//
// Go has no borrow checker, so "borrowed" here means "references caller-
// owned backing storage without copying it" (a []byte slice header, a
// pointer) while "owned" means "holds a private copy safe to keep past
// the call that produced it" — the distinction that matters for a
// prepared statement cached across many binds, not a compile-time
// lifetime guarantee.
package value

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind discriminates the value variants.
type Kind int

const (
	Null Kind = iota
	Bool
	Int64
	Float64
	Text
	Bytes
	UUID
	JSON
	Decimal
	Timestamp
	Date
	Inet
	MacAddr
	BitVector
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int64:
		return "int64"
	case Float64:
		return "float64"
	case Text:
		return "text"
	case Bytes:
		return "bytes"
	case UUID:
		return "uuid"
	case JSON:
		return "json"
	case Decimal:
		return "decimal"
	case Timestamp:
		return "timestamp"
	case Date:
		return "date"
	case Inet:
		return "inet"
	case MacAddr:
		return "macaddr"
	case BitVector:
		return "bitvector"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// sqliteSupported and postgresSupported model spec.md §3.3's "two
// parallel sum types" as one shared Kind space plus a per-dialect
// capability predicate, rather than duplicating the Kind enum per
// dialect: database/sql needs a single driver.Value shape regardless of
// dialect, so the duplication the spec describes for the Rust type
// system buys nothing in Go beyond what SupportedBy already enforces at
// the point a value is bound.
var sqliteSupported = map[Kind]bool{
	Null: true, Bool: true, Int64: true, Float64: true, Text: true,
	Bytes: true, JSON: true,
}

var postgresSupported = map[Kind]bool{
	Null: true, Bool: true, Int64: true, Float64: true, Text: true,
	Bytes: true, UUID: true, JSON: true, Decimal: true, Timestamp: true,
	Date: true, Inet: true, MacAddr: true, BitVector: true,
}

var mysqlSupported = map[Kind]bool{
	Null: true, Bool: true, Int64: true, Float64: true, Text: true,
	Bytes: true, JSON: true, Timestamp: true, Date: true, Decimal: true,
}

// SupportedBy reports whether a value of this kind is legal to bind
// under the named dialect.
func (k Kind) SupportedBy(name DialectName) bool {
	switch name {
	case SQLite:
		return sqliteSupported[k]
	case PostgreSQL:
		return postgresSupported[k]
	case MySQL:
		return mysqlSupported[k]
	default:
		return false
	}
}

// DialectName mirrors dialect.Name without importing package dialect,
// keeping value a leaf package every other package (including dialect's
// eventual consumers) can depend on without a cycle.
type DialectName string

const (
	SQLite     DialectName = "sqlite"
	PostgreSQL DialectName = "postgresql"
	MySQL      DialectName = "mysql"
)

// Owned holds a private copy of its data, safe to retain past the call
// that produced it.
type Owned struct {
	kind Kind
	data interface{}
}

// Borrowed references caller-owned backing storage without copying.
type Borrowed struct {
	kind Kind
	data interface{}
}

// Kind returns the value's variant tag.
func (o Owned) Kind() Kind    { return o.kind }
func (b Borrowed) Kind() Kind { return b.kind }

// Interface returns the underlying Go value (for driver binding or
// equality comparison in tests).
func (o Owned) Interface() interface{}    { return o.data }
func (b Borrowed) Interface() interface{} { return b.data }

// ToOwned converts a Borrowed value into an Owned one, deep-copying any
// backing storage that Go would otherwise alias (byte slices); every
// other variant is already an immutable value type in Go and copies for
// free on assignment.
func (b Borrowed) ToOwned() Owned {
	data := b.data
	if bs, ok := data.([]byte); ok {
		cp := make([]byte, len(bs))
		copy(cp, bs)
		data = cp
	}
	return Owned{kind: b.kind, data: data}
}

// AsBorrowed converts an Owned value into a Borrowed one referencing the
// same backing storage; no copy is made since Owned's storage is already
// private to this value.
func (o Owned) AsBorrowed() Borrowed {
	return Borrowed{kind: o.kind, data: o.data}
}

// Equal reports whether two values carry the same kind and data, used by
// the "owned round-trip" property (spec.md §8 property 4).
func (o Owned) Equal(other Owned) bool {
	if o.kind != other.kind {
		return false
	}
	if ob, ok := o.data.([]byte); ok {
		otherB, ok2 := other.data.([]byte)
		if !ok2 || len(ob) != len(otherB) {
			return false
		}
		for i := range ob {
			if ob[i] != otherB[i] {
				return false
			}
		}
		return true
	}
	return o.data == other.data
}

// --- constructors: every constructor produces an Owned value; call
// AsBorrowed() to obtain a Borrowed view when needed. ---

func NewNull() Owned             { return Owned{kind: Null} }
func NewBool(v bool) Owned       { return Owned{kind: Bool, data: v} }
func NewInt64(v int64) Owned     { return Owned{kind: Int64, data: v} }
func NewFloat64(v float64) Owned { return Owned{kind: Float64, data: v} }
func NewText(v string) Owned     { return Owned{kind: Text, data: v} }

func NewBytes(v []byte) Owned {
	cp := make([]byte, len(v))
	copy(cp, v)
	return Owned{kind: Bytes, data: cp}
}

// BorrowBytes wraps v without copying — the caller must not mutate v
// while the Borrowed value is in use.
func BorrowBytes(v []byte) Borrowed { return Borrowed{kind: Bytes, data: v} }

func NewUUID(v uuid.UUID) Owned             { return Owned{kind: UUID, data: v} }
func NewJSON(v []byte) Owned                { return Owned{kind: JSON, data: v} }
func NewDecimal(v decimal.Decimal) Owned    { return Owned{kind: Decimal, data: v} }
func NewTimestamp(v time.Time) Owned        { return Owned{kind: Timestamp, data: v} }
func NewDate(v time.Time) Owned             { return Owned{kind: Date, data: v} }
func NewInet(v string) Owned                { return Owned{kind: Inet, data: v} }
func NewMacAddr(v string) Owned             { return Owned{kind: MacAddr, data: v} }
func NewBitVector(v string) Owned           { return Owned{kind: BitVector, data: v} }

// ConversionError reports a value that could not be converted to or from
// a database representation (spec.md §7).
type ConversionError struct {
	Msg string
}

func (e *ConversionError) Error() string { return "value: conversion error: " + e.Msg }
