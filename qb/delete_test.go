package qb

import (
	"testing"

	"github.com/sqlkit-go/sqlkit/dialect"
)

func TestDeleteWhere(t *testing.T) {
	sql, args, err := DeleteFrom(usersTable).Where(Eq(usersID, 1)).Build(dialect.SQLiteDialect())
	if err != nil {
		t.Fatal(err)
	}
	want := `DELETE FROM "users" WHERE "users"."id"=?`
	if sql != want {
		t.Errorf("got %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != 1 {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestDeleteFullTableWithoutWhere(t *testing.T) {
	sql, args, err := DeleteFrom(usersTable).Build(dialect.SQLiteDialect())
	if err != nil {
		t.Fatal(err)
	}
	want := `DELETE FROM "users"`
	if sql != want {
		t.Errorf("got %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestDeleteReturning(t *testing.T) {
	sql, _, err := DeleteFrom(usersTable).
		Where(Eq(usersID, 1)).
		Returning(usersID).
		Build(dialect.Postgres())
	if err != nil {
		t.Fatal(err)
	}
	want := `DELETE FROM "users" WHERE "users"."id"=$1 RETURNING "users"."id"`
	if sql != want {
		t.Errorf("got %q, want %q", sql, want)
	}
}

func TestDeleteMultipleWhereCallsCombineWithAnd(t *testing.T) {
	sql, _, err := DeleteFrom(usersTable).
		Where(Eq(usersName, "ada")).
		Where(Ge(usersID, 1)).
		Build(dialect.SQLiteDialect())
	if err != nil {
		t.Fatal(err)
	}
	want := `DELETE FROM "users" WHERE ("users"."name"=?) AND ("users"."id">=?)`
	if sql != want {
		t.Errorf("got %q, want %q", sql, want)
	}
}
