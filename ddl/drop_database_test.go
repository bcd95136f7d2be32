package ddl

import (
	"testing"

	"github.com/sqlkit-go/sqlkit/dialect"
)

func TestDropDatabaseBuilder(t *testing.T) {
	cases := []struct {
		name  string
		d     dialect.Dialect
		build func() *DropDatabaseBuilder
		want  string
	}{
		{"MySQL basic", dialect.MySQLDialect(), func() *DropDatabaseBuilder { return DropDatabase("analytics") }, "DROP DATABASE `analytics`"},
		{"MySQL if exists", dialect.MySQLDialect(), func() *DropDatabaseBuilder { return DropDatabase("analytics").IfExists() }, "DROP DATABASE IF EXISTS `analytics`"},
		{"Postgres basic", dialect.Postgres(), func() *DropDatabaseBuilder { return DropDatabase("analytics") }, `DROP DATABASE "analytics"`},
		{"Postgres if exists", dialect.Postgres(), func() *DropDatabaseBuilder { return DropDatabase("analytics").IfExists() }, `DROP DATABASE IF EXISTS "analytics"`},
		{"Postgres cascade", dialect.Postgres(), func() *DropDatabaseBuilder { return DropDatabase("analytics").Cascade() }, `DROP DATABASE "analytics" CASCADE`},
		{
			"Postgres if exists and cascade",
			dialect.Postgres(),
			func() *DropDatabaseBuilder { return DropDatabase("analytics").IfExists().Cascade() },
			`DROP DATABASE IF EXISTS "analytics" CASCADE`,
		},
		{"SQLite basic", dialect.SQLiteDialect(), func() *DropDatabaseBuilder { return DropDatabase("analytics") }, `DROP DATABASE "analytics"`},
		{"SQLite if exists", dialect.SQLiteDialect(), func() *DropDatabaseBuilder { return DropDatabase("analytics").IfExists() }, `DROP DATABASE IF EXISTS "analytics"`},
		{
			"SQLite ignores cascade (no such server-side concept)",
			dialect.SQLiteDialect(),
			func() *DropDatabaseBuilder { return DropDatabase("analytics").Cascade() },
			`DROP DATABASE "analytics"`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sql, args, err := c.build().WithDialect(c.d).Build()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sql != c.want {
				t.Errorf("got SQL %q, want %q", sql, c.want)
			}
			if len(args) != 0 {
				t.Errorf("got args %v, want none", args)
			}
		})
	}
}

func TestDropDatabaseBuilder_Errors(t *testing.T) {
	_, _, err := DropDatabase("").Build()
	if err == nil {
		t.Errorf("expected error for empty database name, got none")
	}
}

func TestDropDatabaseBuilder_DebugSQL(t *testing.T) {
	got := DropDatabase("analytics").IfExists().Cascade().WithDialect(dialect.Postgres()).DebugSQL()
	want := `DROP DATABASE IF EXISTS "analytics" CASCADE`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
