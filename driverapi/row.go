package driverapi

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RowIterator streams the rows a QueryStatement call returned (spec.md
// §6.4's "row_list").
type RowIterator struct {
	rows    *sql.Rows
	columns []string
}

// Next advances to the next row, mirroring sql.Rows.Next.
func (it *RowIterator) Next() bool { return it.rows.Next() }

// Err returns any error encountered during iteration.
func (it *RowIterator) Err() error {
	if err := it.rows.Err(); err != nil {
		return &Error{Kind: QueryErrorKind, Msg: "iterating rows", Err: err}
	}
	return nil
}

// Close releases the underlying result set.
func (it *RowIterator) Close() error { return it.rows.Close() }

// Columns reports the result set's column names in order.
func (it *RowIterator) Columns() []string { return it.columns }

// Scan reads the current row into a Row value a RowScanner can decode
// from.
func (it *RowIterator) Scan() (*Row, error) {
	vals := make([]interface{}, len(it.columns))
	ptrs := make([]interface{}, len(it.columns))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	if err := it.rows.Scan(ptrs...); err != nil {
		return nil, &Error{Kind: MappingErrorKind, Msg: "scanning row", Err: err}
	}
	return &Row{columns: it.columns, values: vals}, nil
}

// Row is one decoded database row, addressable by column offset or
// name (spec.md §6.5's "reads columns by offset or by name").
type Row struct {
	columns []string
	values  []interface{}
}

// ColumnCount reports how many columns this row carries.
func (r *Row) ColumnCount() int { return len(r.values) }

// IndexOf returns the offset of the named column, or -1 if absent.
func (r *Row) IndexOf(name string) int {
	for i, c := range r.columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Option is the NULL-or-value wrapper spec.md §6.5 calls for deferring
// NULL handling to, rather than every per-type decoder repeating its
// own is-null branch.
type Option[T any] struct {
	Value T
	Valid bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] { return Option[T]{Value: v, Valid: true} }

// None represents a NULL column.
func None[T any]() Option[T] { return Option[T]{} }

func mappingErr(i int, want string, got interface{}) error {
	return &Error{Kind: MappingErrorKind, Msg: fmt.Sprintf("column %d: expected %s, got %T", i, want, got)}
}

// Int64 decodes column i as an integer (spec.md §6.5's integer decoder).
func (r *Row) Int64(i int) (Option[int64], error) {
	v := r.values[i]
	if v == nil {
		return None[int64](), nil
	}
	switch n := v.(type) {
	case int64:
		return Some(n), nil
	case int:
		return Some(int64(n)), nil
	case []byte:
		// modernc.org/sqlite and the mysql driver sometimes surface
		// integer columns as their textual form.
		var out int64
		if _, err := fmt.Sscanf(string(n), "%d", &out); err != nil {
			return Option[int64]{}, mappingErr(i, "int64", v)
		}
		return Some(out), nil
	default:
		return Option[int64]{}, mappingErr(i, "int64", v)
	}
}

// Float64 decodes column i as a float (spec.md §6.5's float decoder).
func (r *Row) Float64(i int) (Option[float64], error) {
	v := r.values[i]
	if v == nil {
		return None[float64](), nil
	}
	switch n := v.(type) {
	case float64:
		return Some(n), nil
	case float32:
		return Some(float64(n)), nil
	default:
		return Option[float64]{}, mappingErr(i, "float64", v)
	}
}

// Bool decodes column i as a boolean.
func (r *Row) Bool(i int) (Option[bool], error) {
	v := r.values[i]
	if v == nil {
		return None[bool](), nil
	}
	switch b := v.(type) {
	case bool:
		return Some(b), nil
	case int64:
		return Some(b != int64(0)), nil
	default:
		return Option[bool]{}, mappingErr(i, "bool", v)
	}
}

// Text decodes column i as text (spec.md §6.5's text decoder).
func (r *Row) Text(i int) (Option[string], error) {
	v := r.values[i]
	if v == nil {
		return None[string](), nil
	}
	switch s := v.(type) {
	case string:
		return Some(s), nil
	case []byte:
		return Some(string(s)), nil
	default:
		return Option[string]{}, mappingErr(i, "text", v)
	}
}

// Bytes decodes column i as raw bytes (spec.md §6.5's bytes decoder).
func (r *Row) Bytes(i int) (Option[[]byte], error) {
	v := r.values[i]
	if v == nil {
		return None[[]byte](), nil
	}
	switch b := v.(type) {
	case []byte:
		cp := make([]byte, len(b))
		copy(cp, b)
		return Some(cp), nil
	case string:
		return Some([]byte(b)), nil
	default:
		return Option[[]byte]{}, mappingErr(i, "bytes", v)
	}
}

// Timestamp decodes column i as a temporal value (spec.md §6.5's
// temporal decoder).
func (r *Row) Timestamp(i int) (Option[time.Time], error) {
	v := r.values[i]
	if v == nil {
		return None[time.Time](), nil
	}
	switch t := v.(type) {
	case time.Time:
		return Some(t), nil
	case []byte:
		parsed, err := time.Parse(time.RFC3339Nano, string(t))
		if err != nil {
			return Option[time.Time]{}, mappingErr(i, "timestamp", v)
		}
		return Some(parsed), nil
	default:
		return Option[time.Time]{}, mappingErr(i, "timestamp", v)
	}
}

// UUID decodes column i as a UUID (spec.md §6.5's UUID decoder).
func (r *Row) UUID(i int) (Option[uuid.UUID], error) {
	v := r.values[i]
	if v == nil {
		return None[uuid.UUID](), nil
	}
	var s string
	switch u := v.(type) {
	case string:
		s = u
	case []byte:
		s = string(u)
	default:
		return Option[uuid.UUID]{}, mappingErr(i, "uuid", v)
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return Option[uuid.UUID]{}, &Error{Kind: MappingErrorKind, Msg: fmt.Sprintf("column %d: %s", i, err), Err: err}
	}
	return Some(parsed), nil
}

// JSON decodes column i as a raw JSON payload (spec.md §6.5's JSON
// decoder); the caller unmarshals it into its own target type.
func (r *Row) JSON(i int) (Option[[]byte], error) {
	return r.Bytes(i)
}

// Decimal decodes column i as an arbitrary-precision number.
func (r *Row) Decimal(i int) (Option[decimal.Decimal], error) {
	v := r.values[i]
	if v == nil {
		return None[decimal.Decimal](), nil
	}
	var s string
	switch d := v.(type) {
	case string:
		s = d
	case []byte:
		s = string(d)
	case float64:
		return Some(decimal.NewFromFloat(d)), nil
	default:
		return Option[decimal.Decimal]{}, mappingErr(i, "decimal", v)
	}
	parsed, err := decimal.NewFromString(s)
	if err != nil {
		return Option[decimal.Decimal]{}, &Error{Kind: MappingErrorKind, Msg: fmt.Sprintf("column %d: %s", i, err), Err: err}
	}
	return Some(parsed), nil
}

// RowScanner is implemented by a decoder for one target struct — the Go
// analogue of spec.md §6.5's per-struct try_from(row) conversion.
// ColumnCount advertises how many columns, in left-to-right order, the
// scanner consumes starting at its call's offset, so a join composing
// several decoded structs can advance each one's starting column offset
// correctly instead of every scanner assuming it owns the whole row.
type RowScanner interface {
	ColumnCount() int
	ScanRow(row *Row, offset int) error
}

// DecodeJoin decodes row into each scanner in turn, advancing the
// column offset by the previous scanner's ColumnCount — the composite-
// struct join case spec.md §6.5 describes.
func DecodeJoin(row *Row, scanners ...RowScanner) error {
	offset := 0
	for _, s := range scanners {
		if err := s.ScanRow(row, offset); err != nil {
			return err
		}
		offset += s.ColumnCount()
	}
	return nil
}
