package persist

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"

	"corpus-builder/core/utils"
	"corpus-builder/feature/models"
)

// Kind is a top-level corpus directory.
type Kind string

const (
	KindMap     Kind = "maps"
	KindMonster Kind = "monsters"
	KindItem    Kind = "items"
)

// unknownName replaces names that sanitize to nothing.
const unknownName = "unknown"

var fileNamePattern = regexp.MustCompile(`^(\d+)_[a-z0-9-]+\.json$`)

// Sanitize converts a display name into a filename-safe slug.
func Sanitize(name string) string {
	if s := utils.Slug(name); s != "" {
		return s
	}
	return unknownName
}

// FileName returns the record filename for an ID and English name.
func FileName(id int, name string) string {
	return fmt.Sprintf("%d_%s.json", id, Sanitize(name))
}

// ParseFileName extracts the ID from a record filename.
func ParseFileName(name string) (int, bool) {
	m := fileNamePattern.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return id, true
}

// dir returns the directory of a kind; items are partitioned by type.
func (s *Store) dir(kind Kind, typ models.ItemType) string {
	if kind == KindItem {
		return filepath.Join(s.root, string(kind), string(typ))
	}
	return filepath.Join(s.root, string(kind))
}
