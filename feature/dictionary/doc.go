// Package dictionary implements the reconciliation core of the build
// pipeline: it maps loosely-structured export records from either content
// source onto the normalized dictionary store and emits the flat
// distribution file.
//
// # Components
//
//   - Transform: pure shaping of one raw word record into a typed Record
//     (word row, example rows, topic names), including search-key
//     normalization and boolean coercion.
//   - Store: schema management and insert-or-ignore operations over the five
//     tables (words, videos, examples, topics, word_topics), plus the pruner.
//   - Importer: per-record transform + insert orchestration with outcome
//     logging.
//   - Linker: associates asset export records with their owning words,
//     back-fills picture/video/example references, and appends to the videos
//     ledger.
//
// # Idempotence
//
// Every insert ignores duplicate-key conflicts, so re-running an import after
// a crash is safe: existing rows are never overwritten, and children of an
// already-present word are re-attempted so an interrupted run self-heals.
package dictionary
