package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"corpus-builder/feature/models"

	"go.uber.org/zap"
)

// find returns the path of the record with the given ID in dir.
func (s *Store) find(dir string, id int) (string, bool) {
	matches, err := filepath.Glob(filepath.Join(dir, fmt.Sprintf("%d_*.json", id)))
	if err != nil {
		return "", false
	}
	sort.Strings(matches)
	for _, m := range matches {
		if other, ok := ParseFileName(filepath.Base(m)); ok && other == id {
			return m, true
		}
	}
	return "", false
}

// FindMap returns the path of a persisted map.
func (s *Store) FindMap(id int) (string, bool) {
	return s.find(s.dir(KindMap, ""), id)
}

// FindMonster returns the path of a persisted monster.
func (s *Store) FindMonster(id int) (string, bool) {
	return s.find(s.dir(KindMonster, ""), id)
}

// FindItem returns the path of a persisted item in any type directory.
func (s *Store) FindItem(id int) (string, bool) {
	for _, t := range models.ItemTypes {
		if path, ok := s.find(s.dir(KindItem, t), id); ok {
			return path, true
		}
	}
	return "", false
}

// ReadMap loads a persisted map. Missing or malformed files return false.
func (s *Store) ReadMap(id int) (*models.Map, bool) {
	path, ok := s.FindMap(id)
	if !ok {
		return nil, false
	}
	var m models.Map
	if !s.decode(path, &m) {
		return nil, false
	}
	return &m, true
}

// ReadMonster loads a persisted monster. Missing or malformed files return false.
func (s *Store) ReadMonster(id int) (*models.Monster, bool) {
	path, ok := s.FindMonster(id)
	if !ok {
		return nil, false
	}
	var m models.Monster
	if !s.decode(path, &m) {
		return nil, false
	}
	return &m, true
}

// ReadItem loads a persisted item. Missing or malformed files return false.
func (s *Store) ReadItem(id int) (*models.Item, bool) {
	path, ok := s.FindItem(id)
	if !ok {
		return nil, false
	}
	var i models.Item
	if !s.decode(path, &i) {
		return nil, false
	}
	return &i, true
}

func (s *Store) decode(path string, v any) bool {
	raw, err := os.ReadFile(path)
	if err != nil {
		s.logger.Debug("Record unreadable", zap.String("path", path), zap.Error(err))
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		s.logger.Debug("Record malformed", zap.String("path", path), zap.Error(err))
		return false
	}
	return true
}

// Counts is the number of persisted records per directory.
type Counts struct {
	Maps     int                     `json:"maps"`
	Monsters int                     `json:"monsters"`
	Items    map[models.ItemType]int `json:"items"`
}

// Count tallies record files. Missing directories count as empty.
func (s *Store) Count() (Counts, error) {
	c := Counts{Items: make(map[models.ItemType]int)}
	var err error
	if c.Maps, err = s.countDir(s.dir(KindMap, "")); err != nil {
		return c, err
	}
	if c.Monsters, err = s.countDir(s.dir(KindMonster, "")); err != nil {
		return c, err
	}
	for _, t := range models.ItemTypes {
		n, err := s.countDir(s.dir(KindItem, t))
		if err != nil {
			return c, err
		}
		c.Items[t] = n
	}
	return c, nil
}

func (s *Store) countDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", dir, err)
	}
	n := 0
	for _, e := range entries {
		if _, ok := ParseFileName(e.Name()); ok && !e.IsDir() {
			n++
		}
	}
	return n, nil
}

// List returns the sorted IDs of every persisted record of a kind.
func (s *Store) List(kind Kind) ([]int, error) {
	dirs := []string{s.dir(kind, "")}
	if kind == KindItem {
		dirs = dirs[:0]
		for _, t := range models.ItemTypes {
			dirs = append(dirs, s.dir(KindItem, t))
		}
	}

	seen := make(map[int]struct{})
	var ids []int
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", dir, err)
		}
		for _, e := range entries {
			id, ok := ParseFileName(e.Name())
			if !ok || e.IsDir() {
				continue
			}
			if _, dup := seen[id]; !dup {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	sort.Ints(ids)
	return ids, nil
}
