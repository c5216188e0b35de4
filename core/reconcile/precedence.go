package reconcile

import "gopkg.in/guregu/null.v3"

// String returns the first valid source value, or def.
func String(def string, sources ...null.String) string {
	for _, s := range sources {
		if s.Valid {
			return s.String
		}
	}
	return def
}

// Int returns the first valid source value, or def.
func Int(def int64, sources ...null.Int) int64 {
	if v := FirstInt(sources...); v.Valid {
		return v.Int64
	}
	return def
}

// FirstInt returns the first valid source value, invalid if none is.
func FirstInt(sources ...null.Int) null.Int {
	for _, s := range sources {
		if s.Valid {
			return s
		}
	}
	return null.Int{}
}

// Bool returns the first valid source value, or def.
func Bool(def bool, sources ...null.Bool) bool {
	for _, s := range sources {
		if s.Valid {
			return s.Bool
		}
	}
	return def
}

// Positive returns a pointer to the first valid value when it is strictly positive.
func Positive(sources ...null.Int) *int {
	v := FirstInt(sources...)
	if !v.Valid || v.Int64 <= 0 {
		return nil
	}
	n := int(v.Int64)
	return &n
}

// Present returns a pointer to the first valid value, zero included.
func Present(sources ...null.Int) *int {
	v := FirstInt(sources...)
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
