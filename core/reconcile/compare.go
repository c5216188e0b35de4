package reconcile

import (
	"fmt"

	"gopkg.in/guregu/null.v3"
)

// Mismatches accumulates field disagreements between the relational (db) and
// metadata (api) backends. Fields absent on either side are not compared.
type Mismatches []string

// String compares a string field.
func (m *Mismatches) String(label string, db, api null.String) {
	if db.Valid && api.Valid && db.String != api.String {
		*m = append(*m, fmt.Sprintf("%s: db=%q api=%q", label, db.String, api.String))
	}
}

// Int compares an integer field.
func (m *Mismatches) Int(label string, db, api null.Int) {
	if db.Valid && api.Valid && db.Int64 != api.Int64 {
		*m = append(*m, fmt.Sprintf("%s: db=%d api=%d", label, db.Int64, api.Int64))
	}
}

// Bool compares a boolean field.
func (m *Mismatches) Bool(label string, db, api null.Bool) {
	if db.Valid && api.Valid && db.Bool != api.Bool {
		*m = append(*m, fmt.Sprintf("%s: db=%t api=%t", label, db.Bool, api.Bool))
	}
}

// List returns the mismatches as a non-nil slice.
func (m Mismatches) List() []string {
	if m == nil {
		return []string{}
	}
	return m
}
