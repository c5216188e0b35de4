// Package utils provides small text helpers shared across the corpus-builder packages:
// slug derivation for filenames and classification labels, backend markup cleaning,
// and ID list parsing for command flags.
package utils
