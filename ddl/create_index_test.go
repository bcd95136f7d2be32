package ddl

import (
	"testing"

	"github.com/sqlkit-go/sqlkit/dialect"
)

func TestCreateIndexBuilder(t *testing.T) {
	cases := []struct {
		name  string
		build func() *CreateIndexBuilder
		want  string
	}{
		{
			name:  "single column",
			build: func() *CreateIndexBuilder { return CreateIndex("idx_orders_user_id", "orders").Columns("user_id") },
			want:  `CREATE INDEX "idx_orders_user_id" ON "orders" ("user_id")`,
		},
		{
			name: "unique",
			build: func() *CreateIndexBuilder {
				return CreateIndex("idx_users_email_unique", "users").Unique().Columns("email")
			},
			want: `CREATE UNIQUE INDEX "idx_users_email_unique" ON "users" ("email")`,
		},
		{
			name: "multi-column",
			build: func() *CreateIndexBuilder {
				return CreateIndex("idx_orders_user_created", "orders").Columns("user_id", "created_at")
			},
			want: `CREATE INDEX "idx_orders_user_created" ON "orders" ("user_id", "created_at")`,
		},
		{
			name: "if not exists",
			build: func() *CreateIndexBuilder {
				return CreateIndex("idx_orders_user_id", "orders").IfNotExists().Columns("user_id")
			},
			want: `CREATE INDEX IF NOT EXISTS "idx_orders_user_id" ON "orders" ("user_id")`,
		},
		{
			name: "unique if not exists",
			build: func() *CreateIndexBuilder {
				return CreateIndex("idx_users_email_unique", "users").Unique().IfNotExists().Columns("email")
			},
			want: `CREATE UNIQUE INDEX IF NOT EXISTS "idx_users_email_unique" ON "users" ("email")`,
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

func TestCreateIndexBuilder_Errors(t *testing.T) {
	cases := []struct {
		name  string
		build func() *CreateIndexBuilder
	}{
		{"empty index name", func() *CreateIndexBuilder { return CreateIndex("", "orders").Columns("user_id") }},
		{"empty table name", func() *CreateIndexBuilder { return CreateIndex("idx_test", "").Columns("user_id") }},
		{"no columns", func() *CreateIndexBuilder { return CreateIndex("idx_test", "orders").Columns() }},
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

func TestCreateIndexBuilder_Dialect(t *testing.T) {
	cases := []struct {
		name string
		d    dialect.Dialect
		want string
	}{
		{"MySQL backtick-quotes", dialect.MySQLDialect(), "CREATE INDEX `idx_orders_user_id` ON `orders` (`user_id`)"},
		{"Postgres double-quotes", dialect.Postgres(), `CREATE INDEX "idx_orders_user_id" ON "orders" ("user_id")`},
		{"SQLite double-quotes", dialect.SQLiteDialect(), `CREATE INDEX "idx_orders_user_id" ON "orders" ("user_id")`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sql, args, err := CreateIndex("idx_orders_user_id", "orders").Columns("user_id").WithDialect(c.d).Build()
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
