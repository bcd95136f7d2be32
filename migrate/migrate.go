// Package migrate orchestrates the generate/check/plan lifecycle spec.md
// §4.6-§4.8 describes: it is the glue between differ, ddlgen, journal,
// and snapshot, in the exact order spec.md §5's "ordering guarantees for
// migration generation" requires (read journal -> read prev snapshot ->
// write SQL -> write new snapshot -> update journal), so that a crash
// between steps leaves a diagnosable, not silently-lost, state.
package migrate

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/sqlkit-go/sqlkit/ddlgen"
	"github.com/sqlkit-go/sqlkit/dialect"
	"github.com/sqlkit-go/sqlkit/differ"
	"github.com/sqlkit-go/sqlkit/journal"
	"github.com/sqlkit-go/sqlkit/schema"
	"github.com/sqlkit-go/sqlkit/snapshot"
)

// Error reports a migrate-package failure not already carried by a
// wrapped journal.Error/snapshot.Error/differ.Error.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return "migrate: " + e.Msg }

// Schema bundles the process-global metadata descriptors a generate/plan
// call diffs the prior snapshot against — the in-memory equivalent of
// spec.md §6.2's "schema path" generate argument, since this toolkit
// expresses schema as Go descriptors rather than a text file to parse.
type Schema struct {
	Dialect   dialect.Name
	Tables    []*schema.TableInfo
	Indexes   []*schema.IndexInfo
	Views     []*schema.ViewInfo
	Enums     []*schema.EnumInfo
	Sequences []*schema.SequenceInfo
}

func (s Schema) snapshot(prevIDs ...string) snapshot.Snapshot {
	return snapshot.FromSchema(s.Dialect, s.Tables, s.Indexes, s.Views, s.Enums, s.Sequences, prevIDs...)
}

// GenerateOptions configures one Generate call.
type GenerateOptions struct {
	// Name seeds the migration tag; if empty, RandomName derives one from
	// Seed.
	Name string
	// Seed feeds journal.RandomName when Name is empty. Callers that need
	// determinism (tests) should pass a fixed value; production callers
	// typically pass time.Now().UnixNano().
	Seed int64
	// TagStyle selects the tag format (spec.md §4.7); defaults to
	// journal.IndexTag.
	TagStyle journal.TagStyle
	// Breakpoints inserts the --> statement-breakpoint marker between
	// generated statements (spec.md §4.5 rule 5).
	Breakpoints bool
	// Custom scaffolds an empty SQL file for hand-written migrations
	// instead of diffing (SPEC_FULL.md §4's --custom generate flag); the
	// snapshot and journal are still advanced so the empty file is
	// tracked like any other migration.
	Custom bool
	// Now supplies the entry timestamp; defaults to a zero clock so
	// Generate stays pure and testable. Production callers should pass
	// func() int64 { return time.Now().UnixMilli() }.
	Now func() int64
}

func (o GenerateOptions) now() func() int64 {
	if o.Now != nil {
		return o.Now
	}
	return func() int64 { return 0 }
}

// GenerateResult reports what a Generate call wrote to disk.
type GenerateResult struct {
	Entry        journal.Entry
	SQLPath      string
	SnapshotPath string
	Statements   []string
}

func migrationsDir(outDir string) string {
	return filepath.Join(outDir, "migrations")
}

func sqlPath(outDir, tag string) string {
	return filepath.Join(migrationsDir(outDir), tag+".sql")
}

// Generate computes the statements transforming the previously recorded
// snapshot into s (or an empty placeholder if opts.Custom), writes the
// SQL file, the new snapshot, and the updated journal, in that order
// (spec.md §5), and returns what it wrote.
func Generate(outDir string, s Schema, opts GenerateOptions) (GenerateResult, error) {
	migDir := migrationsDir(outDir)
	jPath := journal.Path(migDir)

	j, err := journal.LoadOrCreate(jPath, s.Dialect)
	if err != nil {
		return GenerateResult{}, err
	}

	var prev snapshot.Snapshot
	var prevIDs []string
	if last, ok := j.Last(); ok {
		prev, err = snapshot.Load(snapshot.Path(migDir, last.Idx))
		if err != nil {
			return GenerateResult{}, err
		}
		prevIDs = []string{prev.ID}
	} else {
		prev = snapshot.Snapshot{Dialect: s.Dialect, Version: snapshot.VersionFor(s.Dialect)}
	}

	cur := s.snapshot(prevIDs...)

	var stmts []string
	if !opts.Custom {
		d, err := dialect.For(s.Dialect)
		if err != nil {
			return GenerateResult{}, err
		}
		cs, err := differ.Diff(prev, cur)
		if err != nil {
			return GenerateResult{}, err
		}
		stmts, err = ddlgen.Generate(cs, prev, cur, d, ddlgen.Options{Breakpoints: opts.Breakpoints})
		if err != nil {
			return GenerateResult{}, err
		}
	}

	idx := j.NextIdx()
	name := opts.Name
	if name == "" {
		name = journal.RandomName(opts.Seed)
	}
	tag := journal.DefaultTag(opts.TagStyle, idx, opts.now()(), name)

	sqlFile := sqlPath(outDir, tag)
	if err := writeFile(sqlFile, []byte(strings.Join(stmts, "\n")+"\n")); err != nil {
		return GenerateResult{}, &Error{Msg: err.Error()}
	}

	snapPath := snapshot.Path(migDir, idx)
	if err := snapshot.Save(snapPath, cur); err != nil {
		return GenerateResult{}, err
	}

	entry := j.AddEntry(tag, opts.Breakpoints, opts.now())
	if err := j.Save(jPath); err != nil {
		return GenerateResult{}, err
	}

	return GenerateResult{Entry: entry, SQLPath: sqlFile, SnapshotPath: snapPath, Statements: stmts}, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// PlanResult is the dry-run counterpart of GenerateResult: the
// statements Generate would write, without writing anything.
type PlanResult struct {
	HasChanges bool
	Statements []string
}

// Plan computes what Generate would write against the currently recorded
// snapshot, without touching disk beyond the read of the prior journal
// and snapshot (SPEC_FULL.md §4's migrate.Plan, backing the CLI's
// --plan dry-run mode, spec.md §6.2).
func Plan(outDir string, s Schema) (PlanResult, error) {
	migDir := migrationsDir(outDir)
	j, err := journal.LoadOrCreate(journal.Path(migDir), s.Dialect)
	if err != nil {
		return PlanResult{}, err
	}

	var prev snapshot.Snapshot
	if last, ok := j.Last(); ok {
		prev, err = snapshot.Load(snapshot.Path(migDir, last.Idx))
		if err != nil {
			return PlanResult{}, err
		}
	} else {
		prev = snapshot.Snapshot{Dialect: s.Dialect, Version: snapshot.VersionFor(s.Dialect)}
	}

	cur := s.snapshot()
	cs, err := differ.Diff(prev, cur)
	if err != nil {
		return PlanResult{}, err
	}
	d, err := dialect.For(s.Dialect)
	if err != nil {
		return PlanResult{}, err
	}
	stmts, err := ddlgen.Generate(cs, prev, cur, d, ddlgen.Options{})
	if err != nil {
		return PlanResult{}, err
	}
	return PlanResult{HasChanges: cs.HasChanges(), Statements: stmts}, nil
}

// FileHash pairs a migration tag with the SHA-256 hex digest of its SQL
// file's contents.
type FileHash struct {
	Idx  int
	Tag  string
	SHA256 string
}

// VerifyHashes reads every journal entry's SQL file and hashes its
// content (SPEC_FULL.md §4's migrate.VerifyHashes, backing the CLI's
// --safe apply mode, spec.md §6.2): a driver-delivered apply step
// compares these against hashes it recorded when the migration was
// previously applied, to detect a migration file edited after the fact.
// This package only computes the hashes; storing/comparing against a
// live database's applied-migrations table is the driver's concern
// (spec.md §6.4).
func VerifyHashes(outDir string, d dialect.Name) ([]FileHash, error) {
	migDir := migrationsDir(outDir)
	j, err := journal.LoadOrCreate(journal.Path(migDir), d)
	if err != nil {
		return nil, err
	}

	out := make([]FileHash, 0, len(j.Entries))
	var errs error
	for _, e := range j.Entries {
		data, err := os.ReadFile(sqlPath(outDir, e.Tag))
		if err != nil {
			errs = multierr.Append(errs, &Error{Msg: fmt.Sprintf("entry %d (%s): %s", e.Idx, e.Tag, err.Error())})
			continue
		}
		sum := sha256.Sum256(data)
		out = append(out, FileHash{Idx: e.Idx, Tag: e.Tag, SHA256: hex.EncodeToString(sum[:])})
	}
	return out, errs
}

// Severity classifies a Check finding.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Finding is one integrity problem Check reports against a journal
// entry (spec.md §4.8).
type Finding struct {
	Idx      int
	Tag      string
	Severity Severity
	Message  string
}

func (f Finding) Error() string {
	return fmt.Sprintf("entry %d (%s): %s: %s", f.Idx, f.Tag, f.Severity, f.Message)
}

// CheckResult is the full report of a Check call.
type CheckResult struct {
	Findings []Finding
}

// HasErrors reports whether any finding has SeverityError (spec.md
// §4.8's "exits non-zero if any error").
func (r CheckResult) HasErrors() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Check validates the on-disk migration state under outDir (spec.md
// §4.8): every journal entry's SQL file and snapshot are checked for
// presence, emptiness, parseability, and version skew, and snapshots are
// scanned for colliding prev_id declarations. The returned error
// aggregates every error-severity finding via multierr so a caller that
// only wants pass/fail can check err != nil, while CheckResult carries
// the full report including warnings.
func Check(outDir string, d dialect.Name) (CheckResult, error) {
	migDir := migrationsDir(outDir)
	jPath := journal.Path(migDir)

	j, err := journal.LoadOrCreate(jPath, d)
	if err != nil {
		return CheckResult{}, err
	}
	if err := j.Validate(); err != nil {
		f := Finding{Severity: SeverityError, Message: err.Error()}
		return CheckResult{Findings: []Finding{f}}, f
	}

	var result CheckResult
	var errs error
	prevIDOwners := map[string][]int{}

	for _, e := range j.Entries {
		add := func(sev Severity, format string, args ...interface{}) {
			f := Finding{Idx: e.Idx, Tag: e.Tag, Severity: sev, Message: fmt.Sprintf(format, args...)}
			result.Findings = append(result.Findings, f)
			if sev == SeverityError {
				errs = multierr.Append(errs, f)
			}
		}

		sqlData, err := os.ReadFile(sqlPath(outDir, e.Tag))
		switch {
		case os.IsNotExist(err):
			add(SeverityError, "missing SQL file")
		case err != nil:
			add(SeverityError, "reading SQL file: %s", err.Error())
		case strings.TrimSpace(string(sqlData)) == "":
			add(SeverityWarning, "SQL file is empty")
		}

		snapPath := snapshot.Path(migDir, e.Idx)
		raw, err := os.ReadFile(snapPath)
		if os.IsNotExist(err) {
			add(SeverityError, "missing snapshot")
			continue
		}
		if err != nil {
			add(SeverityError, "reading snapshot: %s", err.Error())
			continue
		}
		var snap snapshot.Snapshot
		if err := json.Unmarshal(raw, &snap); err != nil {
			add(SeverityError, "snapshot JSON parse failure: %s", err.Error())
			continue
		}

		switch cmpVersion(snap.Version, snapshot.VersionFor(d)) {
		case -1:
			add(SeverityWarning, "snapshot version %s is older than supported %s; suggest upgrade", snap.Version, snapshot.VersionFor(d))
		case 1:
			add(SeverityError, "snapshot version %s is newer than supported %s; suggest tool upgrade", snap.Version, snapshot.VersionFor(d))
		}

		for _, prevID := range snap.PrevIDs {
			prevIDOwners[prevID] = append(prevIDOwners[prevID], e.Idx)
		}
	}

	owners := make([]string, 0, len(prevIDOwners))
	for prevID := range prevIDOwners {
		owners = append(owners, prevID)
	}
	sort.Strings(owners)
	for _, prevID := range owners {
		idxs := prevIDOwners[prevID]
		if len(idxs) <= 1 {
			continue
		}
		f := Finding{Severity: SeverityError, Message: fmt.Sprintf("prev_id %q is declared by multiple snapshots (idx %v)", prevID, idxs)}
		result.Findings = append(result.Findings, f)
		errs = multierr.Append(errs, f)
	}

	return result, errs
}

// cmpVersion compares two numeric version strings, returning -1, 0, or 1
// as got is older, equal to, or newer than want. A non-numeric version
// is treated as newer than anything parseable, since an unrecognised
// format is exactly the "suggest tool upgrade" case.
func cmpVersion(got, want string) int {
	g, gerr := strconv.Atoi(got)
	w, werr := strconv.Atoi(want)
	if gerr != nil || werr != nil {
		if got == want {
			return 0
		}
		return 1
	}
	switch {
	case g < w:
		return -1
	case g > w:
		return 1
	default:
		return 0
	}
}
