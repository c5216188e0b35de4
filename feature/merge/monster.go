package merge

import (
	"fmt"

	"corpus-builder/core/metadata"
	"corpus-builder/core/utils"
	"corpus-builder/feature/classify"
	"corpus-builder/feature/drops"
	"corpus-builder/feature/models"
)

// MonsterSources is everything known about one monster before merging.
type MonsterSources struct {
	API *metadata.Monster
	// Drops is the resolved drop table from the relational backend.
	Drops drops.Result
	// CanJump is nil when the tree backend could not be read.
	CanJump *bool
	// MaxFoundAt caps the number of distinct map IDs kept.
	MaxFoundAt int
}

// Monster builds a monster record. The metadata record is required.
func Monster(id int, src MonsterSources) (*models.Monster, error) {
	if src.API == nil {
		return nil, fmt.Errorf("monster %d: %w", id, ErrUnreconcilable)
	}
	api := src.API
	meta := api.Meta

	m := &models.Monster{
		ID:    id,
		Names: models.NewNames(api.Name.String, api.Name.String),
		Stats: models.MonsterStats{
			Level:        int(meta.Level.Int64),
			HP:           int(meta.MaxHP.Int64),
			MP:           int(meta.MaxMP.Int64),
			Attack:       int(meta.PhysicalDamage.Int64),
			MagicAttack:  int(meta.MagicDamage.Int64),
			Defense:      int(meta.PhysicalDefense.Int64),
			MagicDefense: int(meta.MagicDefense.Int64),
			Accuracy:     int(meta.Accuracy.Int64),
			Evasion:      int(meta.Evasion.Int64),
			Speed:        int(meta.Speed.Int64),
			Exp:          int(meta.Exp.Int64),
		},
		IsBoss:      classify.IsBoss(id),
		BodyAttack:  meta.IsBodyAttack.Bool,
		CanJump:     src.CanJump,
		Description: utils.CleanMarkup(api.Description.String),
		Meso:        src.Drops.Meso,
		Drops:       src.Drops.Drops,
		FoundAt:     distinctCapped(api.FoundAt, src.MaxFoundAt),
	}
	if m.Drops == nil {
		m.Drops = []models.Drop{}
	}
	return m, nil
}

// distinctCapped keeps the first max distinct values in first-seen order.
func distinctCapped(ids []int, max int) []int {
	if len(ids) == 0 || max <= 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, max)
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
		if len(out) == max {
			break
		}
	}
	return out
}
