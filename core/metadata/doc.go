// Package metadata is the client of the metadata REST backend, the source of
// classification triplets, English names and per-entity attribute blocks.
//
// Every optional field is a guregu null type, so callers can tell "present with a
// zero value" from "absent". A missing record surfaces as backend.ErrNotFound.
package metadata
