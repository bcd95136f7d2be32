// Package token defines the closed set of reserved SQL lexemes the
// fragment and query-builder layers emit. Every token knows its own
// canonical rendering and whether it behaves like a word for spacing
// purposes (two adjacent word-like tokens need a space between them;
// punctuation like "(" or "," does not).
package token

// Token is one reserved SQL lexeme.
type Token int

const (
	SELECT Token = iota
	FROM
	WHERE
	JOIN
	INNER
	LEFT
	RIGHT
	FULL
	CROSS
	NATURAL
	OUTER
	USING
	INSERT
	INTO
	VALUES
	DEFAULT
	UPDATE
	SET
	DELETE
	RETURNING
	ON
	CONFLICT
	DO
	NOTHING
	AND
	OR
	NOT
	IS
	NULL
	IN
	BETWEEN
	LIKE
	LIMIT
	OFFSET
	ORDER
	BY
	GROUP
	HAVING
	ASC
	DESC
	DISTINCT
	AS
	WITH
	RECURSIVE
	UNION
	INTERSECT
	EXCEPT
	ALL
	REFRESH
	MATERIALIZED
	VIEW
	CONCURRENTLY
	DATA
	NO
	FOR
	SHARE
	KEY
	NOWAIT
	SKIP
	LOCKED
	OF
	CASE
	WHEN
	THEN
	ELSE
	END
	EXISTS
	CAST
	REPLACE
	IGNORE
	DUPLICATE
	LPAREN
	RPAREN
	COMMA
	SEMI
	DOT
	EQ
	NE
	LT
	GT
	LE
	GE
	STAR
)

// wordLike reports whether a token is rendered as a bare keyword/identifier
// (needs surrounding whitespace) as opposed to punctuation glued to its
// neighbors (LPAREN, RPAREN, COMMA, DOT, SEMI and the comparison operators,
// which the renderer prefers tight against their operands by convention of
// the dialects this toolkit targets).
var wordLike = map[Token]bool{
	SELECT: true, FROM: true, WHERE: true, JOIN: true, INNER: true,
	LEFT: true, RIGHT: true, FULL: true, CROSS: true, NATURAL: true,
	OUTER: true, USING: true, INSERT: true, INTO: true, VALUES: true,
	DEFAULT: true, UPDATE: true, SET: true, DELETE: true, RETURNING: true,
	ON: true, CONFLICT: true, DO: true, NOTHING: true, AND: true, OR: true,
	NOT: true, IS: true, NULL: true, IN: true, BETWEEN: true, LIKE: true,
	LIMIT: true, OFFSET: true, ORDER: true, BY: true, GROUP: true,
	HAVING: true, ASC: true, DESC: true, DISTINCT: true, AS: true,
	WITH: true, RECURSIVE: true, UNION: true, INTERSECT: true, EXCEPT: true,
	ALL: true, REFRESH: true, MATERIALIZED: true, VIEW: true,
	CONCURRENTLY: true, DATA: true, NO: true, FOR: true, SHARE: true,
	KEY: true, NOWAIT: true, SKIP: true, LOCKED: true, OF: true,
	CASE: true, WHEN: true, THEN: true, ELSE: true, END: true,
	EXISTS: true, CAST: true, REPLACE: true, IGNORE: true, DUPLICATE: true,
}

var rendering = map[Token]string{
	SELECT: "SELECT", FROM: "FROM", WHERE: "WHERE", JOIN: "JOIN",
	INNER: "INNER", LEFT: "LEFT", RIGHT: "RIGHT", FULL: "FULL",
	CROSS: "CROSS", NATURAL: "NATURAL", OUTER: "OUTER", USING: "USING",
	INSERT: "INSERT", INTO: "INTO", VALUES: "VALUES", DEFAULT: "DEFAULT",
	UPDATE: "UPDATE", SET: "SET", DELETE: "DELETE", RETURNING: "RETURNING",
	ON: "ON", CONFLICT: "CONFLICT", DO: "DO", NOTHING: "NOTHING",
	AND: "AND", OR: "OR", NOT: "NOT", IS: "IS", NULL: "NULL", IN: "IN",
	BETWEEN: "BETWEEN", LIKE: "LIKE", LIMIT: "LIMIT", OFFSET: "OFFSET",
	ORDER: "ORDER", BY: "BY", GROUP: "GROUP", HAVING: "HAVING",
	ASC: "ASC", DESC: "DESC", DISTINCT: "DISTINCT", AS: "AS", WITH: "WITH",
	RECURSIVE: "RECURSIVE",
	UNION:     "UNION", INTERSECT: "INTERSECT", EXCEPT: "EXCEPT", ALL: "ALL",
	REFRESH: "REFRESH", MATERIALIZED: "MATERIALIZED", VIEW: "VIEW",
	CONCURRENTLY: "CONCURRENTLY", DATA: "DATA", NO: "NO", FOR: "FOR",
	SHARE: "SHARE", KEY: "KEY", NOWAIT: "NOWAIT", SKIP: "SKIP",
	LOCKED: "LOCKED", OF: "OF", CASE: "CASE", WHEN: "WHEN", THEN: "THEN",
	ELSE: "ELSE", END: "END", EXISTS: "EXISTS", CAST: "CAST",
	REPLACE: "REPLACE", IGNORE: "IGNORE", DUPLICATE: "DUPLICATE",
	LPAREN: "(", RPAREN: ")", COMMA: ",", SEMI: ";", DOT: ".",
	EQ: "=", NE: "<>", LT: "<", GT: ">", LE: "<=", GE: ">=", STAR: "*",
}

// leftSticky tokens glue directly to whatever precedes them, suppressing
// the space a word-like neighbor would otherwise get: a closing paren
// ("?)"), a comma or dot ("a,b", "t.c"), or a comparison operator
// ("id>?"). rightSticky is the mirror for what follows. Both default to
// false (ordinary keyword spacing) for tokens not listed.
var leftSticky = map[Token]bool{
	RPAREN: true, COMMA: true, DOT: true, SEMI: true,
	EQ: true, NE: true, LT: true, GT: true, LE: true, GE: true,
}

var rightSticky = map[Token]bool{
	LPAREN: true, COMMA: true, DOT: true,
	EQ: true, NE: true, LT: true, GT: true, LE: true, GE: true,
}

// LeftSticky reports whether this token suppresses the space before it.
func (t Token) LeftSticky() bool { return leftSticky[t] }

// RightSticky reports whether this token suppresses the space after it.
func (t Token) RightSticky() bool { return rightSticky[t] }

// String returns the token's canonical SQL rendering.
func (t Token) String() string {
	if s, ok := rendering[t]; ok {
		return s
	}
	return "<invalid token>"
}

// WordLike reports whether the token is a bare keyword (needs whitespace
// around it) rather than punctuation.
func (t Token) WordLike() bool {
	return wordLike[t]
}
