// Package jsonfile provides a JSON-file implementation of driven.DatasetStore.
//
// Datasets are single JSON objects keyed by symbol name. Reading preserves the
// key order of the source document. Entry fields are matched case-sensitively,
// and params/return are kept as raw JSON so they round-trip unchanged.
//
// # Output Format
//
// Slim datasets are written compactly, with no whitespace between tokens and
// no trailing newline. HTML characters are not escaped. With ASCIIOnly set,
// every non-ASCII character is written as a \uXXXX escape, using surrogate
// pairs above the Basic Multilingual Plane.
//
// # Durability
//
// Output is written to a temporary file beside the destination and renamed
// into place, so readers never observe a partially written dataset.
package jsonfile
