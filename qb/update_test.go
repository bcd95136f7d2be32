package qb

import (
	"testing"

	"github.com/sqlkit-go/sqlkit/dialect"
)

func TestUpdateSetWhere(t *testing.T) {
	sql, args, err := Update(usersTable).
		Set(ColumnValue{Column: usersName, Value: "ada2"}).
		Where(Eq(usersID, 1)).
		Build(dialect.Postgres())
	if err != nil {
		t.Fatal(err)
	}
	want := `UPDATE "users" SET "name"=$1 WHERE "users"."id"=$2`
	if sql != want {
		t.Errorf("got %q, want %q", sql, want)
	}
	if len(args) != 2 || args[0] != "ada2" || args[1] != 1 {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestUpdateSetExplicitNull(t *testing.T) {
	sql, args, err := Update(usersTable).
		Set(ColumnValue{Column: usersEmail, Value: nil}).
		Where(Eq(usersID, 1)).
		Build(dialect.SQLiteDialect())
	if err != nil {
		t.Fatal(err)
	}
	want := `UPDATE "users" SET "email"=NULL WHERE "users"."id"=?`
	if sql != want {
		t.Errorf("got %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != 1 {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestUpdateMultipleAssignments(t *testing.T) {
	sql, _, err := Update(usersTable).
		Set(
			ColumnValue{Column: usersName, Value: "a"},
			ColumnValue{Column: usersEmail, Value: "b"},
		).
		Build(dialect.SQLiteDialect())
	if err != nil {
		t.Fatal(err)
	}
	want := `UPDATE "users" SET "name"=?,"email"=?`
	if sql != want {
		t.Errorf("got %q, want %q", sql, want)
	}
}

func TestUpdateReturning(t *testing.T) {
	sql, _, err := Update(usersTable).
		Set(ColumnValue{Column: usersName, Value: "a"}).
		Where(Eq(usersID, 1)).
		Returning(usersID, usersName).
		Build(dialect.SQLiteDialect())
	if err != nil {
		t.Fatal(err)
	}
	want := `UPDATE "users" SET "name"=? WHERE "users"."id"=? RETURNING "users"."id","users"."name"`
	if sql != want {
		t.Errorf("got %q, want %q", sql, want)
	}
}

func TestUpdateFullTableWithoutWhere(t *testing.T) {
	sql, _, err := Update(usersTable).
		Set(ColumnValue{Column: usersName, Value: "reset"}).
		Build(dialect.SQLiteDialect())
	if err != nil {
		t.Fatal(err)
	}
	want := `UPDATE "users" SET "name"=?`
	if sql != want {
		t.Errorf("got %q, want %q", sql, want)
	}
}
