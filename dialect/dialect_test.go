package dialect

import "testing"

func TestPlaceholderStyles(t *testing.T) {
	cases := []struct {
		d    Dialect
		n    int
		want string
	}{
		{SQLiteDialect(), 1, "?"},
		{SQLiteDialect(), 2, "?"},
		{Postgres(), 1, "$1"},
		{Postgres(), 2, "$2"},
		{MySQLDialect(), 3, "?"},
	}
	for _, c := range cases {
		if got := c.d.Placeholder(c.n); got != c.want {
			t.Errorf("%s.Placeholder(%d) = %q, want %q", c.d.Name(), c.n, got, c.want)
		}
	}
}

func TestQuoteIdent(t *testing.T) {
	if got := SQLiteDialect().QuoteIdent("users"); got != `"users"` {
		t.Errorf("sqlite QuoteIdent = %q", got)
	}
	if got := Postgres().QuoteIdent("users"); got != `"users"` {
		t.Errorf("postgres QuoteIdent = %q", got)
	}
	if got := MySQLDialect().QuoteIdent("users"); got != "`users`" {
		t.Errorf("mysql QuoteIdent = %q", got)
	}
	if got := SQLiteDialect().QuoteIdent(`a"b`); got != `"a""b"` {
		t.Errorf("escaped quote ident = %q", got)
	}
}

func TestForUnknownDialect(t *testing.T) {
	if _, err := For("oracle"); err == nil {
		t.Fatal("expected error for unknown dialect")
	}
}

func TestDefaultDialect(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	SetDefault(Postgres())
	if Default().Name() != PostgreSQL {
		t.Fatalf("Default() = %s, want postgresql", Default().Name())
	}
}
