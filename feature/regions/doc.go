// Package regions assigns maps to a static region table by fuzzy name matching
// and supplies each region's recommended level band.
package regions
