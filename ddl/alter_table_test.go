package ddl

import (
	"testing"

	"github.com/sqlkit-go/sqlkit/dialect"
)

func TestAlterTableBuilder(t *testing.T) {
	cases := []struct {
		name  string
		build func() *AlterTableBuilder
		want  string
	}{
		{
			name:  "add column",
			build: func() *AlterTableBuilder { return AlterTable("orders").AddColumn(Column("discount_cents").Type("INT")) },
			want:  `ALTER TABLE "orders" ADD COLUMN "discount_cents" INT`,
		},
		{
			name:  "drop column",
			build: func() *AlterTableBuilder { return AlterTable("orders").DropColumn("legacy_note") },
			want:  `ALTER TABLE "orders" DROP COLUMN "legacy_note"`,
		},
		{
			name:  "rename column",
			build: func() *AlterTableBuilder { return AlterTable("orders").RenameColumn("total", "total_cents") },
			want:  `ALTER TABLE "orders" RENAME COLUMN "total" TO "total_cents"`,
		},
		{
			name:  "rename table",
			build: func() *AlterTableBuilder { return AlterTable("orders").RenameTable("purchase_orders") },
			want:  `ALTER TABLE "orders" RENAME TO "purchase_orders"`,
		},
		{
			name: "modify column",
			build: func() *AlterTableBuilder {
				return AlterTable("orders").ModifyColumn(Column("total_cents").Type("BIGINT").NotNull())
			},
			want: `ALTER TABLE "orders" MODIFY COLUMN "total_cents" BIGINT NOT NULL`,
		},
		{
			name: "add constraint",
			build: func() *AlterTableBuilder {
				return AlterTable("users").AddConstraint(Constraint{Type: UniqueType, Name: "idx_email", Columns: []string{"email"}})
			},
			want: `ALTER TABLE "users" ADD CONSTRAINT "idx_email" UNIQUE ("email")`,
		},
		{
			name:  "drop constraint",
			build: func() *AlterTableBuilder { return AlterTable("users").DropConstraint("idx_email") },
			want:  `ALTER TABLE "users" DROP CONSTRAINT "idx_email"`,
		},
		{
			name:  "add index",
			build: func() *AlterTableBuilder { return AlterTable("orders").AddIndex("idx_user_id", "user_id") },
			want:  `ALTER TABLE "orders" ADD INDEX "idx_user_id" ("user_id")`,
		},
		{
			name: "add multi-column index",
			build: func() *AlterTableBuilder {
				return AlterTable("orders").AddIndex("idx_user_created", "user_id", "created_at")
			},
			want: `ALTER TABLE "orders" ADD INDEX "idx_user_created" ("user_id", "created_at")`,
		},
		{
			name:  "drop index",
			build: func() *AlterTableBuilder { return AlterTable("orders").DropIndex("idx_user_id") },
			want:  `ALTER TABLE "orders" DROP INDEX "idx_user_id"`,
		},
		{
			name: "multiple operations in one statement",
			build: func() *AlterTableBuilder {
				return AlterTable("orders").
					AddColumn(Column("discount_cents").Type("INT")).
					ModifyColumn(Column("total_cents").Type("BIGINT").NotNull()).
					DropColumn("legacy_note").
					AddConstraint(Constraint{Type: CheckType, Name: "chk_total_nonneg", CheckExpr: "total_cents >= 0"}).
					AddIndex("idx_total_cents", "total_cents")
			},
			want: `ALTER TABLE "orders" ADD COLUMN "discount_cents" INT, MODIFY COLUMN "total_cents" BIGINT NOT NULL, DROP COLUMN "legacy_note", ADD CONSTRAINT "chk_total_nonneg" CHECK (total_cents >= 0), ADD INDEX "idx_total_cents" ("total_cents")`,
		},
	}

	for _, d := range []dialect.Dialect{dialect.SQLiteDialect(), dialect.Postgres()} {
		for _, c := range cases {
			t.Run(string(d.Name())+"/"+c.name, func(t *testing.T) {
				sql, _, err := c.build().WithDialect(d).Build()
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if sql != c.want {
					t.Errorf("got SQL %q, want %q", sql, c.want)
				}
			})
		}
	}
}
