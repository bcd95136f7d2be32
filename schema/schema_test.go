package schema

import "testing"

func TestColumnLookup(t *testing.T) {
	users := &TableInfo{Name: "users"}
	id := &ColumnInfo{Name: "id", Type: "INTEGER", PrimaryKey: true, Table: users}
	email := &ColumnInfo{Name: "email", Type: "TEXT", Table: users}
	users.Columns = []*ColumnInfo{id, email}

	if got := users.Column("email"); got != email {
		t.Errorf("Column(%q) = %v, want %v", "email", got, email)
	}
	if got := users.Column("missing"); got != nil {
		t.Errorf("Column(%q) = %v, want nil", "missing", got)
	}
}

func TestForeignKeyTarget(t *testing.T) {
	users := &TableInfo{Name: "users"}
	userID := &ColumnInfo{Name: "id", Table: users, PrimaryKey: true}
	users.Columns = []*ColumnInfo{userID}

	posts := &TableInfo{Name: "posts", DependsOn: []*TableInfo{users}}
	authorID := &ColumnInfo{
		Name:  "author_id",
		Table: posts,
		ForeignKey: &ForeignKeyTarget{
			Table:  users,
			Column: userID,
		},
	}
	posts.Columns = []*ColumnInfo{authorID}

	if posts.DependsOn[0] != users {
		t.Fatalf("posts should depend on users")
	}
	if authorID.ForeignKey.Column != userID {
		t.Fatalf("author_id should reference users.id")
	}
}
