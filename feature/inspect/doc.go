// Package inspect serves cross-backend presence and mismatch reports for items.
//
// Routes:
//
//	GET /inspect/items?ids=1002000,2000000
//	GET /inspect/items/:id
//
// Results are cached per ID for the server aggregate TTL, so repeated lookups do not
// hit the relational, metadata and tree backends again.
package inspect
