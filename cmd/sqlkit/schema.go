package main

import (
	"github.com/sqlkit-go/sqlkit/dialect"
	"github.com/sqlkit-go/sqlkit/migrate"
	"github.com/sqlkit-go/sqlkit/schema"
)

// demoSchema is a small, representative project schema this demo binary
// diffs migrations against — the cmd/sqlkit analogue of the teacher's
// examples/database_schema_example.go, standing in for the real
// project-specific package-level schema var a consuming application
// would define (spec.md §3.4's "built once at program start").
func demoSchema(d dialect.Name) migrate.Schema {
	users := &schema.TableInfo{Name: "users"}
	users.Columns = []*schema.ColumnInfo{
		{Name: "id", Type: "INTEGER", AutoIncrement: true, PrimaryKey: true, Table: users},
		{Name: "email", Type: "TEXT", Unique: true, Table: users},
		{Name: "created_at", Type: "TIMESTAMP", Table: users,
			Default: schema.ColumnDefault{Kind: schema.SQLExprDefault, Expr: "CURRENT_TIMESTAMP"}},
	}

	orders := &schema.TableInfo{Name: "orders", DependsOn: []*schema.TableInfo{users}}
	orders.Columns = []*schema.ColumnInfo{
		{Name: "id", Type: "INTEGER", AutoIncrement: true, PrimaryKey: true, Table: orders},
		{Name: "user_id", Type: "INTEGER", Table: orders,
			ForeignKey: &schema.ForeignKeyTarget{Table: users, Column: users.Columns[0]}},
		{Name: "total_cents", Type: "INTEGER", Table: orders},
	}

	ordersByUser := &schema.IndexInfo{
		Name:    "idx_orders_user_id",
		Table:   orders,
		Columns: []*schema.ColumnInfo{orders.Columns[1]},
	}

	return migrate.Schema{
		Dialect: d,
		Tables:  []*schema.TableInfo{users, orders},
		Indexes: []*schema.IndexInfo{ordersByUser},
	}
}
