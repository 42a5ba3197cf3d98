// Package freelex implements the legacy content source: the Freelex
// XML-dump service.
//
// The dump predates any export discipline, so it has to be sanitized before
// parsing: stray 0x05 control bytes and literal "<->" tokens are dropped and
// bare ampersands are escaped. Entries are then reshaped into the same
// word/asset input records the Signbank source produces, so the rest of the
// pipeline is source-agnostic.
package freelex
