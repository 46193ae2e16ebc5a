// Package span maintains formatting spans over plain (marker-free) text.
//
// A Span records one formatting run as half-open byte coordinates into the
// plain text. Spans are the storage model notes migrate to: Decode converts
// marker-embedded text into plain text plus spans in a single left-to-right
// pass, and the algebra functions (Normalize, Add, Remove, Toggle) maintain
// the span list under subsequent edits.
//
// All functions are pure: input slices are never mutated, and identical
// inputs always produce identical outputs.
package span
