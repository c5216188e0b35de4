package merge

import (
	"fmt"
	"math"
	"sort"

	"corpus-builder/core/metadata"
	"corpus-builder/feature/models"
	"corpus-builder/feature/regions"
)

// MapSources is everything known about one map before merging.
type MapSources struct {
	API *metadata.Map
	// Search is the matching search hit, used when the detail lacks a street name.
	Search *metadata.Summary
}

// Map builds a map record with its spawn-weight table and region.
func Map(id int, src MapSources, table *regions.Table) (*models.Map, error) {
	if src.API == nil {
		return nil, fmt.Errorf("map %d: %w", id, ErrUnreconcilable)
	}
	api := src.API

	name := api.Name.String
	street := api.StreetName.String
	if src.Search != nil {
		if name == "" {
			name = src.Search.Name.String
		}
		if street == "" {
			street = src.Search.StreetName.String
		}
	}

	m := &models.Map{
		ID:         id,
		Names:      models.NewNames(name, name),
		StreetName: street,
		Region:     regions.Unknown,
		IsTown:     api.IsTown.Bool,
		BGM:        api.BackgroundMusic.String,
		Spawns:     SpawnWeights(api.Mobs),
	}
	if table != nil {
		m.Region, m.LevelRange = table.Label(street, name)
	}
	return m, nil
}

// SpawnWeights counts monster occurrences and converts them into rounded integer
// percentages, sorted by weight descending then monster ID ascending.
func SpawnWeights(mobs []metadata.MapMob) []models.Spawn {
	counts := make(map[int]int)
	for _, mob := range mobs {
		counts[mob.ID]++
	}
	spawns := make([]models.Spawn, 0, len(counts))
	for id, n := range counts {
		spawns = append(spawns, models.Spawn{
			MonsterID: id,
			Weight:    int(math.Round(float64(n) / float64(len(mobs)) * 100)),
		})
	}
	sort.Slice(spawns, func(i, j int) bool {
		if spawns[i].Weight != spawns[j].Weight {
			return spawns[i].Weight > spawns[j].Weight
		}
		return spawns[i].MonsterID < spawns[j].MonsterID
	})
	return spawns
}
