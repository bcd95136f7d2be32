package qb

import "github.com/sqlkit-go/sqlkit/schema"

// Shared fixtures for the qb test files: two tables wired with a
// foreign key, mirroring the users/posts pair spec.md's examples use
// throughout §4 and §8.

var usersTable = &schema.TableInfo{Name: "users"}

var usersID = &schema.ColumnInfo{Name: "id", Type: "integer", PrimaryKey: true, Table: usersTable}
var usersName = &schema.ColumnInfo{Name: "name", Type: "text", Table: usersTable}
var usersEmail = &schema.ColumnInfo{Name: "email", Type: "text", Unique: true, Table: usersTable}

var postsTable = &schema.TableInfo{Name: "posts"}

var postsID = &schema.ColumnInfo{Name: "id", Type: "integer", PrimaryKey: true, Table: postsTable}
var postsUserID = &schema.ColumnInfo{Name: "user_id", Type: "integer", Table: postsTable}
var postsTitle = &schema.ColumnInfo{Name: "title", Type: "text", Table: postsTable}

func init() {
	usersTable.Columns = []*schema.ColumnInfo{usersID, usersName, usersEmail}
	postsTable.Columns = []*schema.ColumnInfo{postsID, postsUserID, postsTitle}
}
