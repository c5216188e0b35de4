// Package models defines the corpus records (maps, monsters, items) exactly as they
// are persisted. Field order is the JSON field order on disk.
package models
