// Package journal implements the append-only ledger of migration
// entries a project accumulates over time: the single source of truth
// for migration ordering that the differ/ddlgen output is filed under
// (spec.md §3.6, §4.6).
package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sqlkit-go/sqlkit/dialect"
)

// Version is the journal document format version this package writes.
const Version = "7"

// Entry is one migration step: an index into the ordered history, the
// creation time, a filename-safe tag, and whether its SQL file uses
// statement-breakpoint markers.
type Entry struct {
	Idx         int    `json:"idx"`
	When        int64  `json:"when"`
	Tag         string `json:"tag"`
	Breakpoints bool   `json:"breakpoints"`
}

// Journal is the full append-only document at meta/_journal.json.
type Journal struct {
	Version string       `json:"version"`
	Dialect dialect.Name `json:"dialect"`
	Entries []Entry      `json:"entries"`
}

// Error reports a journal missing/corrupt/contradictory condition
// (spec.md §7's JournalError(string)).
type Error struct {
	Msg string
}

func (e *Error) Error() string { return "journal: " + e.Msg }

// Path returns the path to the journal file under a migrations output
// directory.
func Path(outDir string) string {
	return filepath.Join(outDir, "meta", "_journal.json")
}

// LoadOrCreate reads the journal JSON at path; if the file does not
// exist, it returns a freshly constructed empty journal for d rather
// than an error (spec.md §4.6).
func LoadOrCreate(path string, d dialect.Name) (*Journal, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Journal{Version: Version, Dialect: d}, nil
	}
	if err != nil {
		return nil, &Error{Msg: err.Error()}
	}
	var j Journal
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, &Error{Msg: "parse failure: " + err.Error()}
	}
	if j.Dialect != d {
		return nil, &Error{Msg: fmt.Sprintf("journal at %s is for dialect %q, not %q", path, j.Dialect, d)}
	}
	return &j, nil
}

// NextIdx returns the index the next entry should use: one past the
// highest existing idx, or 0 for an empty journal.
func (j *Journal) NextIdx() int {
	max := -1
	for _, e := range j.Entries {
		if e.Idx > max {
			max = e.Idx
		}
	}
	return max + 1
}

// AddEntry appends a new entry at NextIdx(), timestamped now.
func (j *Journal) AddEntry(tag string, breakpoints bool, now func() int64) Entry {
	e := Entry{Idx: j.NextIdx(), When: now(), Tag: tag, Breakpoints: breakpoints}
	j.Entries = append(j.Entries, e)
	return e
}

// Last returns the most recently added entry and true, or the zero
// Entry and false if the journal is empty.
func (j *Journal) Last() (Entry, bool) {
	if len(j.Entries) == 0 {
		return Entry{}, false
	}
	return j.Entries[len(j.Entries)-1], true
}

// Save atomically writes the journal to path: write to a temp file in
// the same directory, then rename over the destination, so a crash
// mid-write never leaves a half-written journal (spec.md §4.6, §7's
// "leave no partial journal update" rule).
func (j *Journal) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &Error{Msg: err.Error()}
	}
	data, err := json.MarshalIndent(j, "", "  ")
	if err != nil {
		return &Error{Msg: err.Error()}
	}
	tmp, err := os.CreateTemp(dir, ".journal-*.tmp")
	if err != nil {
		return &Error{Msg: err.Error()}
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &Error{Msg: err.Error()}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &Error{Msg: err.Error()}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &Error{Msg: err.Error()}
	}
	return nil
}

// Validate checks the structural invariants spec.md §4.6 places on the
// journal: idx strictly increasing and contiguous from 0.
func (j *Journal) Validate() error {
	for i, e := range j.Entries {
		if e.Idx != i {
			return &Error{Msg: fmt.Sprintf("entry %d has idx %d, expected %d (gap or reorder)", i, e.Idx, i)}
		}
	}
	return nil
}

var tagUnsafe = regexp.MustCompile(`[^a-zA-Z0-9_\-]+`)

// TagStyle selects how DefaultTag formats a generated tag.
type TagStyle int

const (
	// IndexTag formats "<idx:04>_<name>", the default.
	IndexTag TagStyle = iota
	// TimestampTag formats "<unixmillis>_<name>".
	TimestampTag
	// BareTag uses name with no numeric prefix.
	BareTag
)

// DefaultTag formats a filename-safe tag for a new entry, per the
// configured style (spec.md §4.7).
func DefaultTag(style TagStyle, idx int, when int64, name string) string {
	name = tagUnsafe.ReplaceAllString(strings.ToLower(name), "_")
	name = strings.Trim(name, "_")
	switch style {
	case TimestampTag:
		return fmt.Sprintf("%d_%s", when, name)
	case BareTag:
		return name
	default:
		return fmt.Sprintf("%04d_%s", idx, name)
	}
}

var nameAdjectives = []string{
	"quiet", "brave", "tiny", "eager", "calm", "bold", "sly", "swift",
	"gentle", "hidden", "curious", "fuzzy", "lone", "bright", "sharp",
}

var nameNouns = []string{
	"falcon", "otter", "comet", "pebble", "harbor", "cedar", "maple",
	"badger", "lantern", "meadow", "thistle", "heron", "ridge", "brook",
}

// RandomName derives an adjective+noun tag name from seed (typically the
// current nanosecond time at call site — spec.md §4.7 accepts this as
// non-security-sensitive, non-deterministic naming).
func RandomName(seed int64) string {
	if seed < 0 {
		seed = -seed
	}
	a := nameAdjectives[seed%int64(len(nameAdjectives))]
	n := nameNouns[(seed/int64(len(nameAdjectives)))%int64(len(nameNouns))]
	return a + "_" + n
}
