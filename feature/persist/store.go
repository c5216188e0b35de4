package persist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"corpus-builder/feature/models"

	"go.uber.org/zap"
)

// Options controls write behavior.
type Options struct {
	// OverwriteNames disables name preservation.
	OverwriteNames bool
}

// Store reads and writes corpus records under a root directory.
type Store struct {
	root   string
	opts   Options
	logger *zap.Logger
}

// NewStore creates a Store rooted at root.
func NewStore(root string, opts Options, logger *zap.Logger) *Store {
	return &Store{root: root, opts: opts, logger: logger}
}

// Root returns the corpus root directory.
func (s *Store) Root() string {
	return s.root
}

// WriteMap persists a map record and returns its path.
func (s *Store) WriteMap(m *models.Map) (string, error) {
	return s.write(s.dir(KindMap, ""), m)
}

// WriteMonster persists a monster record and returns its path.
func (s *Store) WriteMonster(m *models.Monster) (string, error) {
	return s.write(s.dir(KindMonster, ""), m)
}

// WriteItem persists an item record under its type directory and returns its path.
func (s *Store) WriteItem(i *models.Item) (string, error) {
	if i.Type == "" {
		return "", fmt.Errorf("item %d has no type", i.ID)
	}
	dir := s.dir(KindItem, i.Type)
	target, err := s.write(dir, i)
	if err != nil {
		return "", err
	}
	// A retyped item leaves its old file under the previous type directory.
	for _, t := range models.ItemTypes {
		if other := s.dir(KindItem, t); other != dir {
			s.removeStale(other, i.ID, target)
		}
	}
	return target, nil
}

func (s *Store) write(dir string, rec models.Record) (string, error) {
	names := rec.Naming()
	target := filepath.Join(dir, FileName(rec.Key(), names.English()))

	if !s.opts.OverwriteNames {
		if prior, ok := s.priorName(target); ok && prior != names.English() {
			names.Preserve(prior)
		}
	}

	data, err := Encode(rec)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", target, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	if err := writeAtomic(target, data); err != nil {
		return "", err
	}
	s.removeStale(dir, rec.Key(), target)
	return target, nil
}

// Encode renders a record as 2-space indented JSON with a trailing newline.
func Encode(rec any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeAtomic writes to a temp file in the same directory and renames it into place.
func writeAtomic(target string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(target), ".tmp-*.json")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", target, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", target, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", target, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", target, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("rename %s: %w", target, err)
	}
	return nil
}

// priorName reads the canonical name of an existing file. Unreadable or malformed
// files count as absent.
func (s *Store) priorName(path string) (string, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("Prior record unreadable", zap.String("path", path), zap.Error(err))
		}
		return "", false
	}
	var prior models.Names
	if err := json.Unmarshal(raw, &prior); err != nil || prior.Name == "" {
		s.logger.Debug("Prior record malformed", zap.String("path", path), zap.Error(err))
		return "", false
	}
	return prior.Name, true
}

// removeStale deletes other files of the same ID left behind by a renamed entity.
func (s *Store) removeStale(dir string, id int, keep string) {
	matches, _ := filepath.Glob(filepath.Join(dir, fmt.Sprintf("%d_*.json", id)))
	for _, m := range matches {
		if m == keep {
			continue
		}
		if other, ok := ParseFileName(filepath.Base(m)); !ok || other != id {
			continue
		}
		if err := os.Remove(m); err != nil {
			s.logger.Warn("Failed to remove stale record", zap.String("path", m), zap.Error(err))
			continue
		}
		s.logger.Debug("Removed stale record", zap.String("path", m))
	}
}
