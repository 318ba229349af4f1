// Package store persists the user collection to a single JSON file.
//
// Every command performs a full cycle: Load reads and validates the whole
// file, the caller mutates the in-memory users, and Save writes the whole
// collection back.
//
// # Missing file
//
// A missing data file is the normal state before first use. Load returns
// an empty collection and does not create the file; the first Save does.
//
// # Validation
//
// Load checks the file in two passes:
//
//  1. JSON Schema validation (draft 2020-12) against the bundled schema,
//     which reports every violation with its JSON path.
//  2. Record decoding through the tracker package, which rejects any value
//     the model cannot represent.
//
// Either failure is reported as an error wrapping ErrCorrupt. The file is
// never rewritten after a failed load.
//
// # File Format
//
// Save writes:
//   - 2-space indentation
//   - Trailing newline
//   - Stable key ordering (name/projects, name/tasks, title/completed)
//
// The data is written to a temporary file in the same directory and renamed
// over the target, so an interrupted save leaves the previous file intact.
package store
