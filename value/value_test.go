package value

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestOwnedRoundTrip(t *testing.T) {
	cases := []Owned{
		NewNull(),
		NewBool(true),
		NewInt64(42),
		NewFloat64(3.14),
		NewText("alice"),
		NewBytes([]byte{1, 2, 3}),
		NewUUID(uuid.MustParse("00000000-0000-0000-0000-000000000001")),
		NewDecimal(decimal.NewFromFloat(19.99)),
	}
	for _, o := range cases {
		roundTripped := o.AsBorrowed().ToOwned()
		if !o.Equal(roundTripped) {
			t.Errorf("round trip failed for kind %s: %v != %v", o.Kind(), o, roundTripped)
		}
	}
}

func TestBorrowBytesDoesNotCopyUntilOwned(t *testing.T) {
	buf := []byte{1, 2, 3}
	b := BorrowBytes(buf)
	buf[0] = 99
	if b.Interface().([]byte)[0] != 99 {
		t.Error("Borrowed should alias caller's buffer")
	}

	owned := b.ToOwned()
	buf[0] = 7
	if owned.Interface().([]byte)[0] != 99 {
		t.Error("ToOwned should have copied before the mutation")
	}
}

func TestSupportedByDialect(t *testing.T) {
	if !Decimal.SupportedBy(PostgreSQL) {
		t.Error("Decimal should be supported by postgres")
	}
	if Decimal.SupportedBy(SQLite) {
		t.Error("Decimal should not be supported by sqlite")
	}
	if !Text.SupportedBy(SQLite) {
		t.Error("Text should be supported by sqlite")
	}
	if !JSON.SupportedBy(MySQL) {
		t.Error("JSON should be supported by mysql")
	}
}

func TestValueImplementsDriverValuer(t *testing.T) {
	owned := NewText("hello")
	v, err := owned.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if v != "hello" {
		t.Errorf("Value() = %v, want %q", v, "hello")
	}

	nullVal, err := NewNull().Value()
	if err != nil || nullVal != nil {
		t.Errorf("NewNull().Value() = %v, %v, want nil, nil", nullVal, err)
	}
}

func TestUUIDDriverValue(t *testing.T) {
	id := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	v, err := NewUUID(id).Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if v != id.String() {
		t.Errorf("Value() = %v, want %q", v, id.String())
	}
}
