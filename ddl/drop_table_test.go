package ddl

import (
	"testing"

	"github.com/sqlkit-go/sqlkit/dialect"
)

func TestDropTableBuilder(t *testing.T) {
	cases := []struct {
		name  string
		build func() *DropTableBuilder
		want  string
	}{
		{"single table", func() *DropTableBuilder { return DropTable("orders") }, `DROP TABLE "orders"`},
		{"multiple tables", func() *DropTableBuilder { return DropTable("orders", "order_items") }, `DROP TABLE "orders", "order_items"`},
		{"if exists", func() *DropTableBuilder { return DropTable("orders").IfExists() }, `DROP TABLE IF EXISTS "orders"`},
		{"cascade", func() *DropTableBuilder { return DropTable("orders").Cascade() }, `DROP TABLE "orders" CASCADE`},
		{"restrict", func() *DropTableBuilder { return DropTable("orders").Restrict() }, `DROP TABLE "orders" RESTRICT`},
		{
			"cascade overrides a prior restrict",
			func() *DropTableBuilder { return DropTable("orders").Restrict().Cascade() },
			`DROP TABLE "orders" CASCADE`,
		},
		{
			"restrict overrides a prior cascade",
			func() *DropTableBuilder { return DropTable("orders").Cascade().Restrict() },
			`DROP TABLE "orders" RESTRICT`,
		},
		{
			"if exists with cascade",
			func() *DropTableBuilder { return DropTable("orders").IfExists().Cascade() },
			`DROP TABLE IF EXISTS "orders" CASCADE`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sql, args, err := c.build().WithDialect(dialect.SQLiteDialect()).Build()
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

func TestDropTableBuilder_Errors(t *testing.T) {
	cases := []struct {
		name  string
		build func() *DropTableBuilder
	}{
		{"no table names", func() *DropTableBuilder { return DropTable() }},
		{"empty table name", func() *DropTableBuilder { return DropTable("") }},
		{"empty name among valid ones", func() *DropTableBuilder { return DropTable("orders", "") }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := c.build().WithDialect(dialect.SQLiteDialect()).Build()
			if err == nil {
				t.Errorf("expected an error, got none")
			}
		})
	}
}

func TestDropTableBuilder_Dialect(t *testing.T) {
	cases := []struct {
		name string
		d    dialect.Dialect
		want string
	}{
		{"MySQL backtick-quotes", dialect.MySQLDialect(), "DROP TABLE `orders`"},
		{"Postgres double-quotes", dialect.Postgres(), `DROP TABLE "orders"`},
		{"SQLite double-quotes", dialect.SQLiteDialect(), `DROP TABLE "orders"`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sql, _, err := DropTable("orders").WithDialect(c.d).Build()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sql != c.want {
				t.Errorf("got SQL %q, want %q", sql, c.want)
			}
		})
	}
}
