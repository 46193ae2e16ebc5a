// Package notestore migrates a notes data file from inline-markup storage
// to span storage.
//
// The data file is a single JSON document holding notebooks, their notes
// and unassigned notes. Migration walks every note and converts its
// marker-embedded content into plain text plus a normalized span list,
// refreshes the note's hashtags from the plain content, and assigns an id
// to notes that lack one. Notes that already carry a span list are left
// alone, so running the migration twice is safe.
//
// The rewrite is pure field surgery via gjson/sjson: only the touched
// fields change, and any fields this package does not know about survive
// the round trip byte-for-byte. The file is replaced atomically (write to
// a temp file, then rename).
package notestore
