package prepared

import (
	"reflect"
	"testing"

	"github.com/sqlkit-go/sqlkit/dialect"
	"github.com/sqlkit-go/sqlkit/frag"
	"github.com/sqlkit-go/sqlkit/token"
)

func TestBindNamedPlaceholders(t *testing.T) {
	f := frag.From(token.WHERE).
		Push(frag.IdentChunk("name")).
		Push(frag.TokenChunk(token.EQ)).
		Push(frag.ParamChunk(frag.Bind("name"))).
		Push(frag.TokenChunk(token.AND)).
		Push(frag.IdentChunk("min_id")).
		Push(frag.TokenChunk(token.GE)).
		Push(frag.ParamChunk(frag.Bind("min_id")))

	stmt, err := From(f, dialect.SQLiteDialect())
	if err != nil {
		t.Fatalf("From() error = %v", err)
	}

	sql, args, err := stmt.Bind([]Binding{
		{Name: "name", Value: "bob"},
		{Name: "min_id", Value: 10},
	})
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if want := `WHERE "name"=? AND "min_id">=?`; sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if !reflect.DeepEqual(args, []interface{}{"bob", 10}) {
		t.Errorf("args = %v", args)
	}
}

func TestBindOrderSwappedSucceeds(t *testing.T) {
	f := frag.PlaceholderFragment("a").Push(frag.TokenChunk(token.COMMA)).Push(frag.ParamChunk(frag.Bind("b")))
	stmt, err := From(f, dialect.SQLiteDialect())
	if err != nil {
		t.Fatalf("From() error = %v", err)
	}
	_, args, err := stmt.Bind([]Binding{
		{Name: "b", Value: 2},
		{Name: "a", Value: 1},
	})
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if !reflect.DeepEqual(args, []interface{}{1, 2}) {
		t.Errorf("args = %v, want [1 2]", args)
	}
}

func TestBindMissingNameFails(t *testing.T) {
	f := frag.PlaceholderFragment("name")
	stmt, err := From(f, dialect.SQLiteDialect())
	if err != nil {
		t.Fatalf("From() error = %v", err)
	}
	if _, _, err := stmt.Bind(nil); err == nil {
		t.Fatal("expected ParameterError for missing binding")
	}
}

func TestBindUnknownNameFails(t *testing.T) {
	f := frag.PlaceholderFragment("name")
	stmt, err := From(f, dialect.SQLiteDialect())
	if err != nil {
		t.Fatalf("From() error = %v", err)
	}
	_, _, err = stmt.Bind([]Binding{
		{Name: "name", Value: "bob"},
		{Name: "wrong", Value: "nope"},
	})
	if err == nil {
		t.Fatal("expected ParameterError for unknown binding name")
	}
	if _, ok := err.(*ParameterError); !ok {
		t.Errorf("err = %T, want *ParameterError", err)
	}
}

func TestBindPositionalNumberingPostgres(t *testing.T) {
	f := frag.PlaceholderFragment("a").Push(frag.TokenChunk(token.COMMA)).Push(frag.ParamChunk(frag.Bind("b")))
	stmt, err := From(f, dialect.Postgres())
	if err != nil {
		t.Fatalf("From() error = %v", err)
	}
	sql, _, err := stmt.Bind([]Binding{{Name: "a", Value: 1}, {Name: "b", Value: 2}})
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if want := "$1,$2"; sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
}

func TestAlreadyBoundValuesPassThrough(t *testing.T) {
	f := frag.From(token.WHERE).Push(frag.ParamChunk(frag.Val(5)))
	stmt, err := From(f, dialect.SQLiteDialect())
	if err != nil {
		t.Fatalf("From() error = %v", err)
	}
	sql, args, err := stmt.Bind(nil)
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if want := "WHERE ?"; sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if !reflect.DeepEqual(args, []interface{}{5}) {
		t.Errorf("args = %v", args)
	}
}
