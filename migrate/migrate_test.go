package migrate

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlkit-go/sqlkit/dialect"
	"github.com/sqlkit-go/sqlkit/journal"
	"github.com/sqlkit-go/sqlkit/schema"
	"github.com/sqlkit-go/sqlkit/snapshot"
)

func usersSchema() Schema {
	users := &schema.TableInfo{Name: "users"}
	users.Columns = []*schema.ColumnInfo{
		{Name: "id", Type: "INTEGER", AutoIncrement: true, PrimaryKey: true, Table: users},
		{Name: "email", Type: "TEXT", Unique: true, Table: users},
	}
	return Schema{Dialect: dialect.SQLite, Tables: []*schema.TableInfo{users}}
}

func usersSchemaWithName() Schema {
	users := &schema.TableInfo{Name: "users"}
	users.Columns = []*schema.ColumnInfo{
		{Name: "id", Type: "INTEGER", AutoIncrement: true, PrimaryKey: true, Table: users},
		{Name: "email", Type: "TEXT", Unique: true, Table: users},
		{Name: "name", Type: "TEXT", Table: users},
	}
	return Schema{Dialect: dialect.SQLite, Tables: []*schema.TableInfo{users}}
}

func fixedNow(t int64) func() int64 {
	return func() int64 { return t }
}

func TestGenerate_FirstMigration(t *testing.T) {
	dir := t.TempDir()

	res, err := Generate(dir, usersSchema(), GenerateOptions{Name: "init", Now: fixedNow(1000)})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Entry.Idx)
	assert.Equal(t, "0000_init", res.Entry.Tag)
	require.Len(t, res.Statements, 1)
	assert.Contains(t, res.Statements[0], `CREATE TABLE "users"`)

	sqlData, err := os.ReadFile(res.SQLPath)
	require.NoError(t, err)
	assert.Contains(t, string(sqlData), `CREATE TABLE "users"`)

	_, err = snapshot.Load(res.SnapshotPath)
	require.NoError(t, err)

	j, err := journal.LoadOrCreate(journal.Path(migrationsDir(dir)), dialect.SQLite)
	require.NoError(t, err)
	require.Len(t, j.Entries, 1)
	assert.Equal(t, "0000_init", j.Entries[0].Tag)
}

func TestGenerate_SecondMigrationDiffsAgainstPrev(t *testing.T) {
	dir := t.TempDir()

	_, err := Generate(dir, usersSchema(), GenerateOptions{Name: "init", Now: fixedNow(1000)})
	require.NoError(t, err)

	res, err := Generate(dir, usersSchemaWithName(), GenerateOptions{Name: "add_name", Now: fixedNow(2000)})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Entry.Idx)
	assert.Equal(t, "0001_add_name", res.Entry.Tag)
	require.Len(t, res.Statements, 1)
	assert.Contains(t, res.Statements[0], `ALTER TABLE "users" ADD COLUMN "name"`)
}

func TestGenerate_CustomScaffoldsEmptyFile(t *testing.T) {
	dir := t.TempDir()

	res, err := Generate(dir, usersSchema(), GenerateOptions{Name: "hand_written", Custom: true, Now: fixedNow(1000)})
	require.NoError(t, err)
	assert.Empty(t, res.Statements)

	data, err := os.ReadFile(res.SQLPath)
	require.NoError(t, err)
	assert.Equal(t, "\n", string(data))

	// The snapshot still advances even though no SQL was generated, so a
	// later Generate call diffs against this schema rather than re-diffing
	// from empty.
	_, err = snapshot.Load(res.SnapshotPath)
	require.NoError(t, err)
}

func TestPlan_DryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()

	plan, err := Plan(dir, usersSchema())
	require.NoError(t, err)
	assert.True(t, plan.HasChanges)
	require.Len(t, plan.Statements, 1)
	assert.Contains(t, plan.Statements[0], `CREATE TABLE "users"`)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "Plan must not write to outDir")
}

func TestPlan_NoChanges(t *testing.T) {
	dir := t.TempDir()

	_, err := Generate(dir, usersSchema(), GenerateOptions{Name: "init", Now: fixedNow(1000)})
	require.NoError(t, err)

	plan, err := Plan(dir, usersSchema())
	require.NoError(t, err)
	assert.False(t, plan.HasChanges)
	assert.Empty(t, plan.Statements)
}

func TestVerifyHashes(t *testing.T) {
	dir := t.TempDir()

	res, err := Generate(dir, usersSchema(), GenerateOptions{Name: "init", Now: fixedNow(1000)})
	require.NoError(t, err)

	hashes, err := VerifyHashes(dir, dialect.SQLite)
	require.NoError(t, err)
	require.Len(t, hashes, 1)
	assert.Equal(t, res.Entry.Idx, hashes[0].Idx)
	assert.Equal(t, res.Entry.Tag, hashes[0].Tag)
	assert.Len(t, hashes[0].SHA256, 64)

	// Editing the SQL file after the fact changes its hash, the condition
	// a driver's --safe apply step is meant to catch.
	require.NoError(t, os.WriteFile(res.SQLPath, []byte("-- tampered\n"), 0o644))
	hashes2, err := VerifyHashes(dir, dialect.SQLite)
	require.NoError(t, err)
	assert.NotEqual(t, hashes[0].SHA256, hashes2[0].SHA256)
}

func TestVerifyHashes_MissingFileAggregatesError(t *testing.T) {
	dir := t.TempDir()

	res, err := Generate(dir, usersSchema(), GenerateOptions{Name: "init", Now: fixedNow(1000)})
	require.NoError(t, err)
	require.NoError(t, os.Remove(res.SQLPath))

	hashes, err := VerifyHashes(dir, dialect.SQLite)
	assert.Error(t, err)
	assert.Empty(t, hashes)
}

func TestCheck_CleanHistoryHasNoFindings(t *testing.T) {
	dir := t.TempDir()

	_, err := Generate(dir, usersSchema(), GenerateOptions{Name: "init", Now: fixedNow(1000)})
	require.NoError(t, err)

	result, err := Check(dir, dialect.SQLite)
	require.NoError(t, err)
	assert.False(t, result.HasErrors())
	assert.Empty(t, result.Findings)
}

func TestCheck_MissingSQLFile(t *testing.T) {
	dir := t.TempDir()

	res, err := Generate(dir, usersSchema(), GenerateOptions{Name: "init", Now: fixedNow(1000)})
	require.NoError(t, err)
	require.NoError(t, os.Remove(res.SQLPath))

	result, err := Check(dir, dialect.SQLite)
	assert.Error(t, err)
	assert.True(t, result.HasErrors())
	require.Len(t, result.Findings, 1)
	assert.Equal(t, SeverityError, result.Findings[0].Severity)
	assert.Contains(t, result.Findings[0].Message, "missing SQL file")
}

func TestCheck_EmptySQLFileIsWarningOnly(t *testing.T) {
	dir := t.TempDir()

	res, err := Generate(dir, usersSchema(), GenerateOptions{Name: "init", Now: fixedNow(1000)})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(res.SQLPath, []byte("   \n\t\n"), 0o644))

	result, err := Check(dir, dialect.SQLite)
	require.NoError(t, err)
	assert.False(t, result.HasErrors())
	require.Len(t, result.Findings, 1)
	assert.Equal(t, SeverityWarning, result.Findings[0].Severity)
	assert.Contains(t, result.Findings[0].Message, "empty")
}

func TestCheck_MissingSnapshot(t *testing.T) {
	dir := t.TempDir()

	res, err := Generate(dir, usersSchema(), GenerateOptions{Name: "init", Now: fixedNow(1000)})
	require.NoError(t, err)
	require.NoError(t, os.Remove(res.SnapshotPath))

	result, err := Check(dir, dialect.SQLite)
	assert.Error(t, err)
	assert.True(t, result.HasErrors())
	require.Len(t, result.Findings, 1)
	assert.Contains(t, result.Findings[0].Message, "missing snapshot")
}

func TestCheck_SnapshotParseFailure(t *testing.T) {
	dir := t.TempDir()

	res, err := Generate(dir, usersSchema(), GenerateOptions{Name: "init", Now: fixedNow(1000)})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(res.SnapshotPath, []byte("{not json"), 0o644))

	result, err := Check(dir, dialect.SQLite)
	assert.Error(t, err)
	require.Len(t, result.Findings, 1)
	assert.Contains(t, result.Findings[0].Message, "parse failure")
}

func TestCheck_VersionOlderIsWarning(t *testing.T) {
	dir := t.TempDir()

	res, err := Generate(dir, usersSchema(), GenerateOptions{Name: "init", Now: fixedNow(1000)})
	require.NoError(t, err)

	snap, err := snapshot.Load(res.SnapshotPath)
	require.NoError(t, err)
	snap.Version = "6"
	require.NoError(t, snapshot.Save(res.SnapshotPath, snap))

	result, err := Check(dir, dialect.SQLite)
	require.NoError(t, err)
	assert.False(t, result.HasErrors())
	require.Len(t, result.Findings, 1)
	assert.Equal(t, SeverityWarning, result.Findings[0].Severity)
	assert.Contains(t, result.Findings[0].Message, "older")
}

func TestCheck_VersionNewerIsError(t *testing.T) {
	dir := t.TempDir()

	res, err := Generate(dir, usersSchema(), GenerateOptions{Name: "init", Now: fixedNow(1000)})
	require.NoError(t, err)

	snap, err := snapshot.Load(res.SnapshotPath)
	require.NoError(t, err)
	snap.Version = "99"
	require.NoError(t, snapshot.Save(res.SnapshotPath, snap))

	result, err := Check(dir, dialect.SQLite)
	assert.Error(t, err)
	assert.True(t, result.HasErrors())
	require.Len(t, result.Findings, 1)
	assert.Equal(t, SeverityError, result.Findings[0].Severity)
	assert.Contains(t, result.Findings[0].Message, "newer")
}

func TestCheck_PrevIDCollision(t *testing.T) {
	dir := t.TempDir()

	res0, err := Generate(dir, usersSchema(), GenerateOptions{Name: "init", Now: fixedNow(1000)})
	require.NoError(t, err)
	res1, err := Generate(dir, usersSchemaWithName(), GenerateOptions{Name: "add_name", Now: fixedNow(2000)})
	require.NoError(t, err)
	assert.Equal(t, 1, res1.Entry.Idx)
	res2, err := Generate(dir, usersSchemaWithName(), GenerateOptions{Name: "noop", Now: fixedNow(3000)})
	require.NoError(t, err)

	snap0, err := snapshot.Load(res0.SnapshotPath)
	require.NoError(t, err)
	snap2, err := snapshot.Load(res2.SnapshotPath)
	require.NoError(t, err)

	// Force the third snapshot to claim the same prev_id as the second one
	// (both descend from snap0), simulating a manually edited or corrupted
	// history where two migrations fork from the same parent.
	snap2.PrevIDs = []string{snap0.ID}
	require.NoError(t, snapshot.Save(res2.SnapshotPath, snap2))

	result, err := Check(dir, dialect.SQLite)
	assert.Error(t, err)
	assert.True(t, result.HasErrors())

	var collision *Finding
	for i := range result.Findings {
		if strings.Contains(result.Findings[i].Message, "declared by multiple snapshots") {
			collision = &result.Findings[i]
		}
	}
	require.NotNil(t, collision, "expected a prev_id collision finding, got %+v", result.Findings)
	assert.Equal(t, SeverityError, collision.Severity)
}

func TestCmpVersion(t *testing.T) {
	assert.Equal(t, -1, cmpVersion("6", "7"))
	assert.Equal(t, 0, cmpVersion("7", "7"))
	assert.Equal(t, 1, cmpVersion("8", "7"))
	assert.Equal(t, 1, cmpVersion("garbage", "7"))
	assert.Equal(t, 0, cmpVersion("x", "x"))
}
