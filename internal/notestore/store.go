package notestore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/notemark/internal/span"
	"github.com/dshills/notemark/internal/tags"
)

// ErrNotJSON is returned when the data file is not a JSON object.
var ErrNotJSON = errors.New("data file is not a JSON object")

// Store performs migrations on a notes data file.
type Store struct {
	path string
}

// New creates a store for the data file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the data file path.
func (s *Store) Path() string {
	return s.path
}

// Report summarizes one migration run.
type Report struct {
	// Notes is the total number of notes visited.
	Notes int

	// Migrated is the number of notes converted to span storage.
	Migrated int

	// Skipped is the number of notes that already carried spans.
	Skipped int

	// IDsAssigned is the number of notes that were given a fresh id.
	IDsAssigned int
}

// String returns a human-readable summary of the report.
func (r Report) String() string {
	return fmt.Sprintf("%d notes: %d migrated, %d skipped, %d ids assigned",
		r.Notes, r.Migrated, r.Skipped, r.IDsAssigned)
}

// Migrate converts every note in the data file from inline-markup content
// to plain content plus spans, and writes the file back atomically.
// Already-migrated notes are skipped, so Migrate is idempotent.
func (s *Store) Migrate() (Report, error) {
	var report Report

	data, err := os.ReadFile(s.path)
	if err != nil {
		return report, fmt.Errorf("reading data file: %w", err)
	}

	out, report, err := MigrateData(data)
	if err != nil {
		return report, err
	}

	if err := writeAtomic(s.path, out); err != nil {
		return report, fmt.Errorf("writing data file: %w", err)
	}
	return report, nil
}

// MigrateData runs the migration over a raw data document and returns the
// rewritten document. Exposed separately from Migrate for callers that
// manage persistence themselves.
func MigrateData(data []byte) ([]byte, Report, error) {
	var report Report

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, report, ErrNotJSON
	}

	out := data
	var err error

	root.Get("notebooks").ForEach(func(name, notebook gjson.Result) bool {
		base := "notebooks." + escapeKey(name.String()) + ".notes"
		out, err = migrateNotes(out, base, notebook.Get("notes"), &report)
		return err == nil
	})
	if err != nil {
		return nil, report, err
	}

	out, err = migrateNotes(out, "unassigned_notes", root.Get("unassigned_notes"), &report)
	if err != nil {
		return nil, report, err
	}
	return out, report, nil
}

// migrateNotes rewrites each note in the array at base.
func migrateNotes(doc []byte, base string, notes gjson.Result, report *Report) ([]byte, error) {
	if !notes.IsArray() {
		return doc, nil
	}

	var err error
	count := len(notes.Array())
	for i := 0; i < count; i++ {
		path := fmt.Sprintf("%s.%d", base, i)
		doc, err = migrateNote(doc, path, report)
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// migrateNote rewrites a single note in place.
func migrateNote(doc []byte, path string, report *Report) ([]byte, error) {
	note := gjson.GetBytes(doc, path)
	if !note.IsObject() {
		return doc, nil
	}
	report.Notes++

	var err error

	if id := note.Get("id"); !id.Exists() || id.String() == "" {
		doc, err = sjson.SetBytes(doc, path+".id", uuid.NewString())
		if err != nil {
			return nil, fmt.Errorf("assigning id at %s: %w", path, err)
		}
		report.IDsAssigned++
	}

	if note.Get("spans").Exists() {
		report.Skipped++
		return doc, nil
	}

	content := note.Get("content").String()
	plain, spans := span.Decode(content)
	spans = span.Normalize(spans)
	if spans == nil {
		spans = []span.Span{}
	}

	doc, err = sjson.SetBytes(doc, path+".content", plain)
	if err != nil {
		return nil, fmt.Errorf("setting content at %s: %w", path, err)
	}
	doc, err = sjson.SetBytes(doc, path+".spans", spans)
	if err != nil {
		return nil, fmt.Errorf("setting spans at %s: %w", path, err)
	}

	doc, err = sjson.SetBytes(doc, path+".tags", noteTags(note, plain))
	if err != nil {
		return nil, fmt.Errorf("setting tags at %s: %w", path, err)
	}

	report.Migrated++
	return doc, nil
}

// noteTags merges the note's stored tags (re-sanitized) with hashtags
// extracted from the plain content, deduplicated in first-seen order.
func noteTags(note gjson.Result, plain string) []string {
	out := []string{}
	seen := make(map[string]bool)

	add := func(list []string) {
		for _, t := range list {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}

	note.Get("tags").ForEach(func(_, t gjson.Result) bool {
		add(tags.SanitizeList(t.String()))
		return true
	})
	add(tags.Extract(plain))
	return out
}

// escapeKey escapes a map key for use in a gjson/sjson path.
func escapeKey(key string) string {
	var b strings.Builder
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '.', '*', '?', '\\', '|', '#', '@':
			b.WriteByte('\\')
		}
		b.WriteByte(key[i])
	}
	return b.String()
}

// writeAtomic replaces the file at path via a temp file and rename.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".notemark-*.json")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
