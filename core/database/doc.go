// Package database handles connections to the relational backend and schema inspection.
//
// It wraps GORM and picks the dialector from the configured driver: MySQL (default),
// PostgreSQL, or SQLite (offline snapshots and tests).
//
// # Handle
//
// A pipeline run owns exactly one connection. Handle opens it on first use and
// Close releases it; commands defer Close so the socket is freed on every exit path,
// including failures.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns let the relational client verify, before a run,
// that the tables it queries carry the columns it expects.
//
// # Usage
//
//	h := database.NewHandle(cfg.Database)
//	defer h.Close()
//	db, err := h.DB()
package database
