package qb

import (
	"testing"

	"github.com/sqlkit-go/sqlkit/dialect"
	"github.com/sqlkit-go/sqlkit/frag"
)

func TestSelectStarFromTable(t *testing.T) {
	sql, args, err := Select().From(usersTable).Build(dialect.SQLiteDialect())
	if err != nil {
		t.Fatal(err)
	}
	want := `SELECT * FROM "users"`
	if sql != want {
		t.Errorf("got %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestSelectColumnsDistinctWhereOrderLimitOffset(t *testing.T) {
	sql, args, err := Select(frag.ColumnFragment(usersName), frag.ColumnFragment(usersEmail)).
		Distinct().
		From(usersTable).
		Where(Eq(usersName, "ada")).
		OrderBy(DescOrder(usersID)).
		Limit(10).
		Offset(5).
		Build(dialect.Postgres())
	if err != nil {
		t.Fatal(err)
	}
	want := `SELECT DISTINCT "users"."name","users"."email" FROM "users" WHERE "users"."name"=$1 ORDER BY "users"."id" DESC LIMIT $2 OFFSET $3`
	if sql != want {
		t.Errorf("got %q, want %q", sql, want)
	}
	if len(args) != 3 || args[0] != "ada" || args[1] != int64(10) || args[2] != int64(5) {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestSelectJoinWhereOrdering(t *testing.T) {
	sql, _, err := Select(frag.ColumnFragment(postsTitle)).
		From(postsTable).
		Join(InnerJoin(usersTable, Eq(usersID, 1))).
		Where(Gt(postsID, 100)).
		Build(dialect.SQLiteDialect())
	if err != nil {
		t.Fatal(err)
	}
	want := `SELECT "posts"."title" FROM "posts" INNER JOIN "users" ON "users"."id"=? WHERE "posts"."id">?`
	if sql != want {
		t.Errorf("got %q, want %q", sql, want)
	}
}

func TestSelectLeftRightFullCrossNaturalJoins(t *testing.T) {
	cases := []struct {
		name string
		j    joinSpec
		want string
	}{
		{"left", LeftJoin(usersTable, Eq(usersID, 1)), `LEFT OUTER JOIN "users" ON "users"."id"=?`},
		{"right", RightJoin(usersTable, Eq(usersID, 1)), `RIGHT OUTER JOIN "users" ON "users"."id"=?`},
		{"full", FullJoin(usersTable, Eq(usersID, 1)), `FULL OUTER JOIN "users" ON "users"."id"=?`},
		{"cross", CrossJoin(usersTable), `CROSS JOIN "users"`},
		{"natural", NaturalJoin(usersTable), `NATURAL JOIN "users"`},
		{"using", UsingJoin(usersTable, usersID), `INNER JOIN "users" USING ("users"."id")`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sql, _, err := Select().From(postsTable).Join(c.j).Build(dialect.SQLiteDialect())
			if err != nil {
				t.Fatal(err)
			}
			want := `SELECT * FROM "posts" ` + c.want
			if sql != want {
				t.Errorf("got %q, want %q", sql, want)
			}
		})
	}
}

func TestSelectGroupByHaving(t *testing.T) {
	sql, args, err := Select(frag.ColumnFragment(postsUserID)).
		From(postsTable).
		GroupBy(postsUserID).
		Having(Gt(postsID, 5)).
		Build(dialect.SQLiteDialect())
	if err != nil {
		t.Fatal(err)
	}
	want := `SELECT "posts"."user_id" FROM "posts" GROUP BY "posts"."user_id" HAVING "posts"."id">?`
	if sql != want {
		t.Errorf("got %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != 5 {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestSelectCombinedWhereConjuncts(t *testing.T) {
	sql, _, err := Select().
		From(usersTable).
		Where(And(Eq(usersName, "ada"), Ge(usersID, 1))).
		Build(dialect.SQLiteDialect())
	if err != nil {
		t.Fatal(err)
	}
	want := `SELECT * FROM "users" WHERE ("users"."name"=?) AND ("users"."id">=?)`
	if sql != want {
		t.Errorf("got %q, want %q", sql, want)
	}
}

func TestSelectMultipleWhereCallsCombineWithAnd(t *testing.T) {
	sql, _, err := Select().
		From(usersTable).
		Where(Eq(usersName, "ada")).
		Where(Ge(usersID, 1)).
		Build(dialect.SQLiteDialect())
	if err != nil {
		t.Fatal(err)
	}
	want := `SELECT * FROM "users" WHERE ("users"."name"=?) AND ("users"."id">=?)`
	if sql != want {
		t.Errorf("got %q, want %q", sql, want)
	}
}
