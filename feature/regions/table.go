package regions

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"corpus-builder/core/utils"
	"corpus-builder/feature/models"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"
)

// Unknown is the region label of a map nothing matched.
const Unknown = "unknown"

//go:embed regions.yaml
var regionsYAML []byte

// Region is one entry of the static region table.
type Region struct {
	Key     string            `yaml:"key"`
	Aliases []string          `yaml:"aliases"`
	Level   models.LevelRange `yaml:"level"`
}

type regionFile struct {
	Regions []Region `yaml:"regions"`
}

type alias struct {
	slug   string
	region *Region
}

// Table matches map names against known regions.
type Table struct {
	regions []Region
	aliases []alias
}

// Load parses the embedded region table.
func Load() (*Table, error) {
	return Parse(regionsYAML)
}

// Parse builds a Table from YAML.
func Parse(raw []byte) (*Table, error) {
	var f regionFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse region table: %w", err)
	}
	t := &Table{regions: f.Regions}
	for i := range t.regions {
		r := &t.regions[i]
		if r.Key == "" {
			return nil, fmt.Errorf("region %d has no key", i)
		}
		for _, a := range append([]string{r.Key}, r.Aliases...) {
			if s := utils.Slug(a); s != "" {
				t.aliases = append(t.aliases, alias{slug: s, region: r})
			}
		}
	}
	// Longest aliases first, so "henesys-hunting-ground" beats "hunting-ground".
	sort.SliceStable(t.aliases, func(i, j int) bool { return len(t.aliases[i].slug) > len(t.aliases[j].slug) })
	return t, nil
}

// Match returns the best region for the given names, tried in order. Whole-word
// alias containment wins over fuzzy distance; no match returns false.
func (t *Table) Match(names ...string) (Region, bool) {
	var slugs []string
	for _, n := range names {
		if s := utils.Slug(n); s != "" {
			slugs = append(slugs, s)
		}
	}

	for _, s := range slugs {
		for _, a := range t.aliases {
			if containsWords(s, a.slug) {
				return *a.region, true
			}
		}
	}

	best, bestDist := (*Region)(nil), -1
	for _, s := range slugs {
		for _, a := range t.aliases {
			dist := levenshtein.ComputeDistance(s, a.slug)
			if dist > levenshteinLimit(len(a.slug)) {
				continue
			}
			if best == nil || dist < bestDist {
				best, bestDist = a.region, dist
			}
		}
	}
	if best == nil {
		return Region{}, false
	}
	return *best, true
}

// Label returns the region key for the names, or Unknown.
func (t *Table) Label(names ...string) (string, *models.LevelRange) {
	r, ok := t.Match(names...)
	if !ok {
		return Unknown, nil
	}
	level := r.Level
	if level.Min == 0 && level.Max == 0 {
		return r.Key, nil
	}
	return r.Key, &level
}

func containsWords(s, sub string) bool {
	return s == sub ||
		strings.HasPrefix(s, sub+"-") ||
		strings.HasSuffix(s, "-"+sub) ||
		strings.Contains(s, "-"+sub+"-")
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
