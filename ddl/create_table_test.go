package ddl

import (
	"strings"
	"testing"

	"github.com/sqlkit-go/sqlkit/dialect"
	"github.com/sqlkit-go/sqlkit/mysqlfunc"
	"github.com/sqlkit-go/sqlkit/raw"
)

func TestCreateTableBuilder(t *testing.T) {
	cases := []struct {
		name  string
		build func() *CreateTableBuilder
		want  string
	}{
		{
			name: "basic table",
			build: func() *CreateTableBuilder {
				return CreateTable("accounts").
					AddColumn(Column("id").Type("INT").NotNull()).
					AddColumn(Column("name").Type("VARCHAR").Size(255).NotNull())
			},
			want: `CREATE TABLE "accounts" ("id" INT NOT NULL, "name" VARCHAR(255) NOT NULL)`,
		},
		{
			name: "if not exists",
			build: func() *CreateTableBuilder {
				return CreateTable("accounts").
					IfNotExists().
					AddColumn(Column("id").Type("INT").NotNull())
			},
			want: `CREATE TABLE IF NOT EXISTS "accounts" ("id" INT NOT NULL)`,
		},
		{
			name: "temporary table",
			build: func() *CreateTableBuilder {
				return CreateTable("temp_accounts").
					Temporary().
					AddColumn(Column("id").Type("INT").NotNull())
			},
			want: `CREATE TEMPORARY TABLE "temp_accounts" ("id" INT NOT NULL)`,
		},
		{
			name: "table-level primary key",
			build: func() *CreateTableBuilder {
				return CreateTable("accounts").
					AddColumn(Column("id").Type("INT").NotNull()).
					AddColumn(Column("name").Type("VARCHAR").Size(255)).
					PrimaryKey("id")
			},
			want: `CREATE TABLE "accounts" ("id" INT NOT NULL, "name" VARCHAR(255), PRIMARY KEY ("id"))`,
		},
		{
			name: "column-level primary key renders the same as table-level",
			build: func() *CreateTableBuilder {
				return CreateTable("accounts").
					AddColumn(Column("id").Type("INT").NotNull().PrimaryKey()).
					AddColumn(Column("name").Type("VARCHAR").Size(255))
			},
			want: `CREATE TABLE "accounts" ("id" INT NOT NULL, "name" VARCHAR(255), PRIMARY KEY ("id"))`,
		},
		{
			name: "composite primary key from multiple columns",
			build: func() *CreateTableBuilder {
				return CreateTable("order_items").
					AddColumn(Column("order_id").Type("INT").NotNull().PrimaryKey()).
					AddColumn(Column("product_id").Type("INT").NotNull().PrimaryKey())
			},
			want: `CREATE TABLE "order_items" ("order_id" INT NOT NULL, "product_id" INT NOT NULL, PRIMARY KEY ("order_id", "product_id"))`,
		},
		{
			name: "single unique column",
			build: func() *CreateTableBuilder {
				return CreateTable("users").
					AddColumn(Column("id").Type("INT").AutoIncrement().NotNull().PrimaryKey()).
					AddColumn(Column("email").Type("VARCHAR").Size(255).NotNull().Unique())
			},
			want: `CREATE TABLE "users" ("id" INT NOT NULL AUTO_INCREMENT, "email" VARCHAR(255) NOT NULL, PRIMARY KEY ("id"), UNIQUE ("email"))`,
		},
		{
			name: "multiple unique columns",
			build: func() *CreateTableBuilder {
				return CreateTable("users").
					AddColumn(Column("id").Type("INT").AutoIncrement().NotNull().PrimaryKey()).
					AddColumn(Column("email").Type("VARCHAR").Size(255).NotNull().Unique()).
					AddColumn(Column("username").Type("VARCHAR").Size(100).NotNull().Unique())
			},
			want: `CREATE TABLE "users" ("id" INT NOT NULL AUTO_INCREMENT, "email" VARCHAR(255) NOT NULL, "username" VARCHAR(100) NOT NULL, PRIMARY KEY ("id"), UNIQUE ("email"), UNIQUE ("username"))`,
		},
		{
			name: "named unique constraint",
			build: func() *CreateTableBuilder {
				return CreateTable("users").
					AddColumn(Column("id").Type("INT").NotNull()).
					AddColumn(Column("email").Type("VARCHAR").Size(255)).
					Unique("idx_users_email", "email")
			},
			want: `CREATE TABLE "users" ("id" INT NOT NULL, "email" VARCHAR(255), CONSTRAINT "idx_users_email" UNIQUE ("email"))`,
		},
		{
			name: "check constraint",
			build: func() *CreateTableBuilder {
				return CreateTable("order_items").
					AddColumn(Column("id").Type("INT").NotNull()).
					AddColumn(Column("quantity").Type("INT")).
					Check("chk_quantity_positive", "quantity >= 0")
			},
			want: `CREATE TABLE "order_items" ("id" INT NOT NULL, "quantity" INT, CONSTRAINT "chk_quantity_positive" CHECK (quantity >= 0))`,
		},
		{
			name: "secondary index",
			build: func() *CreateTableBuilder {
				return CreateTable("users").
					AddColumn(Column("id").Type("INT").NotNull()).
					AddColumn(Column("name").Type("VARCHAR").Size(255)).
					Index("idx_users_name", "name")
			},
			want: `CREATE TABLE "users" ("id" INT NOT NULL, "name" VARCHAR(255), INDEX "idx_users_name" ("name"))`,
		},
		{
			name: "foreign key with on delete",
			build: func() *CreateTableBuilder {
				return CreateTable("orders").
					AddColumn(Column("id").Type("INT").NotNull()).
					AddColumn(Column("user_id").Type("INT")).
					AddForeignKey(
						ForeignKey("fk_orders_user", "user_id").
							References("users", "id").
							OnDelete("CASCADE"),
					)
			},
			want: `CREATE TABLE "orders" ("id" INT NOT NULL, "user_id" INT, CONSTRAINT "fk_orders_user" FOREIGN KEY ("user_id") REFERENCES "users" ("id") ON DELETE CASCADE)`,
		},
		{
			name: "foreign key with on delete and on update, plus a primary key",
			build: func() *CreateTableBuilder {
				return CreateTable("orders").
					AddColumn(Column("id").Type("INT").NotNull().PrimaryKey()).
					AddColumn(Column("user_id").Type("INT")).
					AddForeignKey(ForeignKey("fk_orders_user", "user_id").References("users", "id").OnDelete("CASCADE").OnUpdate("RESTRICT"))
			},
			want: `CREATE TABLE "orders" ("id" INT NOT NULL, "user_id" INT, CONSTRAINT "fk_orders_user" FOREIGN KEY ("user_id") REFERENCES "users" ("id") ON DELETE CASCADE ON UPDATE RESTRICT, PRIMARY KEY ("id"))`,
		},
		{
			name: "table options",
			build: func() *CreateTableBuilder {
				return CreateTable("accounts").
					AddColumn(Column("id").Type("INT").NotNull()).
					Charset("utf8mb4").
					Collation("utf8mb4_unicode_ci").
					Comment("customer accounts").
					Engine("InnoDB")
			},
			want: `CREATE TABLE "accounts" ("id" INT NOT NULL) CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci COMMENT 'customer accounts' ENGINE InnoDB`,
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

func TestColumnBuilder(t *testing.T) {
	cases := []struct {
		name  string
		build func() *CreateTableBuilder
		want  string
	}{
		{
			name: "sized varchar",
			build: func() *CreateTableBuilder {
				return CreateTable("users").
					AddColumn(Column("name").Type("VARCHAR").Size(100).NotNull())
			},
			want: `CREATE TABLE "users" ("name" VARCHAR(100) NOT NULL)`,
		},
		{
			name: "precision and scale",
			build: func() *CreateTableBuilder {
				return CreateTable("order_items").
					AddColumn(Column("unit_price").Type("DECIMAL").Precision(10, 2).NotNull())
			},
			want: `CREATE TABLE "order_items" ("unit_price" DECIMAL(10,2) NOT NULL)`,
		},
		{
			name: "literal and raw SQL defaults",
			build: func() *CreateTableBuilder {
				return CreateTable("users").
					AddColumn(Column("status").Type("VARCHAR").Size(20).Default("active")).
					AddColumn(Column("created_at").Type("TIMESTAMP").Default(raw.Raw("CURRENT_TIMESTAMP")))
			},
			want: `CREATE TABLE "users" ("status" VARCHAR(20) DEFAULT 'active', "created_at" TIMESTAMP DEFAULT CURRENT_TIMESTAMP)`,
		},
		{
			name: "auto increment",
			build: func() *CreateTableBuilder {
				return CreateTable("users").
					AddColumn(Column("id").Type("INT").NotNull().AutoIncrement())
			},
			want: `CREATE TABLE "users" ("id" INT NOT NULL AUTO_INCREMENT)`,
		},
		{
			name: "big auto increment",
			build: func() *CreateTableBuilder {
				return CreateTable("users").
					AddColumn(Column("id").Type("BIGINT").NotNull().AutoIncrement())
			},
			want: `CREATE TABLE "users" ("id" BIGINT NOT NULL AUTO_INCREMENT)`,
		},
		{
			name: "charset and collation",
			build: func() *CreateTableBuilder {
				return CreateTable("users").
					AddColumn(Column("name").Type("VARCHAR").Size(255).Charset("utf8mb4").Collation("utf8mb4_unicode_ci"))
			},
			want: `CREATE TABLE "users" ("name" VARCHAR(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci)`,
		},
		{
			name: "column comment",
			build: func() *CreateTableBuilder {
				return CreateTable("users").
					AddColumn(Column("id").Type("INT").NotNull().Comment("surrogate key"))
			},
			want: `CREATE TABLE "users" ("id" INT NOT NULL COMMENT 'surrogate key')`,
		},
		{
			name: "mixed default kinds in one table",
			build: func() *CreateTableBuilder {
				return CreateTable("users").
					AddColumn(Column("status").Type("VARCHAR").Default("active")).
					AddColumn(Column("created_at").Type("TIMESTAMP").Default(raw.Raw("CURRENT_TIMESTAMP"))).
					AddColumn(Column("login_count").Type("INT").Default(0))
			},
			want: `CREATE TABLE "users" ("status" VARCHAR DEFAULT 'active', "created_at" TIMESTAMP DEFAULT CURRENT_TIMESTAMP, "login_count" INT DEFAULT 0)`,
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

func TestCreateTableBuilder_Errors(t *testing.T) {
	cases := []struct {
		name  string
		build func() *CreateTableBuilder
	}{
		{"empty table name", func() *CreateTableBuilder { return CreateTable("") }},
		{"no columns", func() *CreateTableBuilder { return CreateTable("accounts") }},
		{"column without type", func() *CreateTableBuilder {
			return CreateTable("accounts").AddColumn(Column("id"))
		}},
		{"empty column name", func() *CreateTableBuilder {
			return CreateTable("accounts").AddColumn(Column(""))
		}},
		{"invalid size", func() *CreateTableBuilder {
			return CreateTable("accounts").AddColumn(Column("name").Type("VARCHAR").Size(0))
		}},
		{"invalid precision", func() *CreateTableBuilder {
			return CreateTable("order_items").AddColumn(Column("unit_price").Type("DECIMAL").Precision(0, 2))
		}},
		{"invalid scale", func() *CreateTableBuilder {
			return CreateTable("order_items").AddColumn(Column("unit_price").Type("DECIMAL").Precision(10, 11))
		}},
		{"primary key without columns", func() *CreateTableBuilder {
			return CreateTable("accounts").
				AddColumn(Column("id").Type("INT").NotNull()).
				PrimaryKey()
		}},
		{"unique constraint without columns", func() *CreateTableBuilder {
			return CreateTable("accounts").
				AddColumn(Column("id").Type("INT").NotNull()).
				Unique("idx_test")
		}},
		{"check constraint without expression", func() *CreateTableBuilder {
			return CreateTable("accounts").
				AddColumn(Column("id").Type("INT").NotNull()).
				Check("chk_test", "")
		}},
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

func TestCreateTableBuilder_Dialect(t *testing.T) {
	t.Run("MySQL backtick-quotes identifiers", func(t *testing.T) {
		dialect.SetDefault(dialect.MySQLDialect())
		defer dialect.SetDefault(dialect.SQLiteDialect())

		q := CreateTable("users").
			AddColumns(
				Column("id").Type("INT UNSIGNED").NotNull(),
				Column("name").Type("VARCHAR").Size(255),
			)

		sql, args, err := q.Build()
		want := "CREATE TABLE `users` (`id` INT UNSIGNED NOT NULL, `name` VARCHAR(255))"
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sql != want {
			t.Errorf("got SQL %q, want %q", sql, want)
		}
		if len(args) != 0 {
			t.Errorf("got args %v, want none", args)
		}
	})

	t.Run("Postgres double-quotes identifiers", func(t *testing.T) {
		dialect.SetDefault(dialect.Postgres())
		defer dialect.SetDefault(dialect.SQLiteDialect())

		q := CreateTable("users").
			AddColumn(Column("id").Type("INTEGER").NotNull()).
			AddColumn(Column("name").Type("VARCHAR").Size(255))

		sql, args, err := q.Build()
		want := `CREATE TABLE "users" ("id" INTEGER NOT NULL, "name" VARCHAR(255))`
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sql != want {
			t.Errorf("got SQL %q, want %q", sql, want)
		}
		if len(args) != 0 {
			t.Errorf("got args %v, want none", args)
		}
	})

	t.Run("Postgres auto-increment becomes SERIAL", func(t *testing.T) {
		q := CreateTable("users").
			AddColumn(Column("id").Type("INT").NotNull().AutoIncrement())

		sql, _, err := q.WithDialect(dialect.Postgres()).Build()
		want := `CREATE TABLE "users" ("id" SERIAL NOT NULL)`
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sql != want {
			t.Errorf("got SQL %q, want %q", sql, want)
		}
	})

	t.Run("Postgres big auto-increment becomes BIGSERIAL", func(t *testing.T) {
		q := CreateTable("users").
			AddColumn(Column("id").Type("BIGINT").NotNull().AutoIncrement())

		sql, _, err := q.WithDialect(dialect.Postgres()).Build()
		want := `CREATE TABLE "users" ("id" BIGSERIAL NOT NULL)`
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sql != want {
			t.Errorf("got SQL %q, want %q", sql, want)
		}
	})
}

func TestCreateTableBuilder_Complex(t *testing.T) {
	q := CreateTable("users").
		IfNotExists().
		AddColumn(Column("id").Type("INT").NotNull().AutoIncrement().Comment("surrogate key")).
		AddColumn(Column("username").Type("VARCHAR").Size(50).NotNull()).
		AddColumn(Column("email").Type("VARCHAR").Size(255).NotNull()).
		AddColumn(Column("password_hash").Type("VARCHAR").Size(255).NotNull()).
		AddColumn(Column("age").Type("INT").Default(18)).
		AddColumn(Column("created_at").Type("TIMESTAMP").Default(raw.Raw("CURRENT_TIMESTAMP"))).
		AddColumn(Column("updated_at").Type("TIMESTAMP").Default(raw.Raw("CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP"))).
		PrimaryKey("id").
		Unique("idx_users_username", "username").
		Unique("idx_users_email", "email").
		Check("chk_users_age", "age >= 0 AND age <= 150").
		Index("idx_users_created_at", "created_at").
		Charset("utf8mb4").
		Collation("utf8mb4_unicode_ci").
		Comment("registered users").
		Engine("InnoDB").
		WithDialect(dialect.MySQLDialect())

	sql, args, err := q.Build()
	want := "CREATE TABLE IF NOT EXISTS `users` (`id` INT NOT NULL AUTO_INCREMENT COMMENT 'surrogate key', `username` VARCHAR(50) NOT NULL, `email` VARCHAR(255) NOT NULL, `password_hash` VARCHAR(255) NOT NULL, `age` INT DEFAULT 18, `created_at` TIMESTAMP DEFAULT CURRENT_TIMESTAMP, `updated_at` TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP, PRIMARY KEY (`id`), CONSTRAINT `idx_users_username` UNIQUE (`username`), CONSTRAINT `idx_users_email` UNIQUE (`email`), CONSTRAINT `chk_users_age` CHECK (age >= 0 AND age <= 150), INDEX `idx_users_created_at` (`created_at`)) CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci COMMENT 'registered users' ENGINE InnoDB"

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sql != want {
		t.Errorf("got SQL %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("got args %v, want none", args)
	}
}

func TestCreateTable_OnDeleteOnUpdate(t *testing.T) {
	cases := []struct {
		name  string
		build func() *CreateTableBuilder
		want  string
	}{
		{
			name: "cascade delete, restrict update",
			build: func() *CreateTableBuilder {
				return CreateTable("orders").
					AddColumn(Column("id").Type("INT").PrimaryKey()).
					AddColumn(Column("user_id").Type("INT")).
					AddForeignKey(
						ForeignKey("fk_orders_user", "user_id").
							References("users", "id").
							OnDelete("CASCADE").
							OnUpdate("RESTRICT"),
					)
			},
			want: `CREATE TABLE "orders" ("id" INT, "user_id" INT, CONSTRAINT "fk_orders_user" FOREIGN KEY ("user_id") REFERENCES "users" ("id") ON DELETE CASCADE ON UPDATE RESTRICT, PRIMARY KEY ("id"))`,
		},
		{
			name: "set null delete, no action update",
			build: func() *CreateTableBuilder {
				return CreateTable("orders").
					AddColumn(Column("id").Type("INT").PrimaryKey()).
					AddColumn(Column("user_id").Type("INT")).
					AddForeignKey(
						ForeignKey("fk_orders_user", "user_id").
							References("users", "id").
							OnDelete("SET NULL").
							OnUpdate("NO ACTION"),
					)
			},
			want: `CREATE TABLE "orders" ("id" INT, "user_id" INT, CONSTRAINT "fk_orders_user" FOREIGN KEY ("user_id") REFERENCES "users" ("id") ON DELETE SET NULL ON UPDATE NO ACTION, PRIMARY KEY ("id"))`,
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

func TestCreateTable_ColumnOnUpdate(t *testing.T) {
	t.Run("string expression", func(t *testing.T) {
		q := CreateTable("orders").
			AddColumn(Column("id").Type("INT").PrimaryKey()).
			AddColumn(Column("updated_at").Type("TIMESTAMP").OnUpdate("CURRENT_TIMESTAMP"))

		sql, args, err := q.WithDialect(dialect.SQLiteDialect()).Build()
		want := `CREATE TABLE "orders" ("id" INT, "updated_at" TIMESTAMP ON UPDATE CURRENT_TIMESTAMP, PRIMARY KEY ("id"))`
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sql != want {
			t.Errorf("got SQL %q, want %q", sql, want)
		}
		if len(args) != 0 {
			t.Errorf("got args %v, want none", args)
		}
	})

	t.Run("sqlfunc expression", func(t *testing.T) {
		q := CreateTable("orders").
			AddColumn(Column("id").Type("INT").PrimaryKey()).
			AddColumn(Column("updated_at").Type("TIMESTAMP").OnUpdate(mysqlfunc.CurrentTimestamp()))

		sql, args, err := q.WithDialect(dialect.SQLiteDialect()).Build()
		want := `CREATE TABLE "orders" ("id" INT, "updated_at" TIMESTAMP ON UPDATE CURRENT_TIMESTAMP, PRIMARY KEY ("id"))`
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sql != want {
			t.Errorf("got SQL %q, want %q", sql, want)
		}
		if len(args) != 0 {
			t.Errorf("got args %v, want none", args)
		}
	})
}

func TestCreateTable_OnUpdate_DialectSpecific(t *testing.T) {
	t.Run("MySQL renders ON UPDATE inline", func(t *testing.T) {
		q := CreateTable("orders").
			AddColumn(Column("id").Type("INT").PrimaryKey()).
			AddColumn(Column("updated_at").Type("TIMESTAMP").OnUpdate("CURRENT_TIMESTAMP"))

		sql, args, err := q.WithDialect(dialect.MySQLDialect()).Build()
		want := "CREATE TABLE `orders` (`id` INT, `updated_at` TIMESTAMP ON UPDATE CURRENT_TIMESTAMP, PRIMARY KEY (`id`))"
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sql != want {
			t.Errorf("got SQL %q, want %q", sql, want)
		}
		if len(args) != 0 {
			t.Errorf("got args %v, want none", args)
		}
	})

	t.Run("Postgres emits a trigger since it has no column-level ON UPDATE", func(t *testing.T) {
		q := CreateTable("orders").
			AddColumn(Column("id").Type("INT").PrimaryKey()).
			AddColumn(Column("updated_at").Type("TIMESTAMP").OnUpdate("CURRENT_TIMESTAMP"))

		sql, args, err := q.WithDialect(dialect.Postgres()).Build()
		want := `CREATE TABLE "orders" ("id" INT, "updated_at" TIMESTAMP, PRIMARY KEY ("id"));

CREATE OR REPLACE FUNCTION "orders_updated_at_update_trigger"()
RETURNS TRIGGER AS $$
BEGIN
    NEW."updated_at" = CURRENT_TIMESTAMP;
    RETURN NEW;
END;
$$ LANGUAGE plpgsql;

CREATE OR REPLACE TRIGGER "tr_orders_updated_at_update"
    BEFORE UPDATE ON "orders"
    FOR EACH ROW
    EXECUTE FUNCTION "orders_updated_at_update_trigger"();`
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sql != want {
			t.Errorf("got SQL %q, want %q", sql, want)
		}
		if len(args) != 0 {
			t.Errorf("got args %v, want none", args)
		}
	})

	t.Run("Postgres emits one trigger per ON UPDATE column", func(t *testing.T) {
		q := CreateTable("orders").
			AddColumn(Column("id").Type("INT").PrimaryKey()).
			AddColumn(Column("updated_at").Type("TIMESTAMP").OnUpdate("CURRENT_TIMESTAMP")).
			AddColumn(Column("shipped_at").Type("TIMESTAMP").OnUpdate("NOW()"))

		sql, args, err := q.WithDialect(dialect.Postgres()).Build()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(sql, `"orders_updated_at_update_trigger"`) {
			t.Error("missing trigger function for updated_at")
		}
		if !strings.Contains(sql, `"orders_shipped_at_update_trigger"`) {
			t.Error("missing trigger function for shipped_at")
		}
		if !strings.Contains(sql, `"tr_orders_updated_at_update"`) {
			t.Error("missing trigger for updated_at")
		}
		if !strings.Contains(sql, `"tr_orders_shipped_at_update"`) {
			t.Error("missing trigger for shipped_at")
		}
		if len(args) != 0 {
			t.Errorf("got args %v, want none", args)
		}
	})
}

func TestCreateTable_OnUpdate_IfNotExists(t *testing.T) {
	q := CreateTable("orders").
		IfNotExists().
		AddColumn(Column("id").Type("INT").PrimaryKey()).
		AddColumn(Column("updated_at").Type("TIMESTAMP").OnUpdate("CURRENT_TIMESTAMP"))

	sql, args, err := q.WithDialect(dialect.Postgres()).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sql, "IF NOT EXISTS") {
		t.Error("missing IF NOT EXISTS in table creation")
	}
	if !strings.Contains(sql, "DO $$") {
		t.Error("missing DO block guarding trigger creation")
	}
	if !strings.Contains(sql, "pg_trigger WHERE tgname =") {
		t.Error("missing trigger existence check")
	}
	if len(args) != 0 {
		t.Errorf("got args %v, want none", args)
	}
}
