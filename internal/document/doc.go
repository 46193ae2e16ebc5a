// Package document provides a thread-safe container for one note's text
// and formatting state. A Document owns either marker-embedded markup text
// (the storage model notes start in) or plain text plus formatting spans
// (the model notes migrate to), and applies the markup engine and span
// algebra to it under a single-writer discipline.
//
// The markup and span packages themselves are pure; Document is the layer
// that serializes concurrent edit sessions over one logical note. All
// methods are safe for concurrent use. Each mutation produces a new
// revision ID, and Snapshot returns a consistent read-only view.
package document
