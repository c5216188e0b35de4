// Package drops turns raw relational drop rows into corpus drop entries and a
// currency (meso) descriptor.
package drops
