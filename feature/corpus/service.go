package corpus

import (
	"context"
	"sort"
	"time"

	"corpus-builder/core/reconcile"
	"corpus-builder/feature/models"
	"corpus-builder/feature/persist"

	"go.uber.org/zap"
)

const (
	summaryKey  = "summary"
	droppersKey = "droppers"
)

// Dropper is a monster that drops a given item.
type Dropper struct {
	MonsterID int     `json:"monsterId"`
	Name      string  `json:"name"`
	Chance    float64 `json:"chance"`
}

// Service reads the persisted corpus. Aggregates are cached for ttl.
type Service struct {
	store     *persist.Store
	ttl       time.Duration
	summaries *reconcile.Cache[persist.Counts]
	droppers  *reconcile.Cache[map[int][]Dropper]
	logger    *zap.Logger
}

// NewService creates a corpus read service.
func NewService(store *persist.Store, ttl time.Duration, logger *zap.Logger) *Service {
	return &Service{
		store:     store,
		ttl:       ttl,
		summaries: reconcile.NewCache[persist.Counts](),
		droppers:  reconcile.NewCache[map[int][]Dropper](),
		logger:    logger,
	}
}

// Map returns a persisted map.
func (s *Service) Map(id int) (*models.Map, bool) {
	return s.store.ReadMap(id)
}

// Monster returns a persisted monster.
func (s *Service) Monster(id int) (*models.Monster, bool) {
	return s.store.ReadMonster(id)
}

// Item returns a persisted item.
func (s *Service) Item(id int) (*models.Item, bool) {
	return s.store.ReadItem(id)
}

// List returns the IDs persisted for a kind.
func (s *Service) List(kind persist.Kind) ([]int, error) {
	return s.store.List(kind)
}

// Summary returns the record counts of the corpus.
func (s *Service) Summary(ctx context.Context) (persist.Counts, error) {
	return s.summaries.GetOrBuild(ctx, summaryKey, s.ttl, func(context.Context) (persist.Counts, error) {
		return s.store.Count()
	})
}

// Droppers returns the monsters dropping an item, highest chance first.
func (s *Service) Droppers(ctx context.Context, itemID int) ([]Dropper, error) {
	index, err := s.droppers.GetOrBuild(ctx, droppersKey, s.ttl, s.buildDroppers)
	if err != nil {
		return nil, err
	}
	return index[itemID], nil
}

// Refresh drops the cached aggregates.
func (s *Service) Refresh() {
	s.summaries.Invalidate(summaryKey)
	s.droppers.Invalidate(droppersKey)
}

func (s *Service) buildDroppers(ctx context.Context) (map[int][]Dropper, error) {
	ids, err := s.store.List(persist.KindMonster)
	if err != nil {
		return nil, err
	}

	index := make(map[int][]Dropper)
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		mob, ok := s.store.ReadMonster(id)
		if !ok {
			s.logger.Warn("Skipping unreadable monster file", zap.Int("id", id))
			continue
		}
		for _, d := range mob.Drops {
			index[d.ItemID] = append(index[d.ItemID], Dropper{
				MonsterID: mob.ID,
				Name:      mob.Name,
				Chance:    d.Chance,
			})
		}
	}

	for _, list := range index {
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].Chance != list[j].Chance {
				return list[i].Chance > list[j].Chance
			}
			return list[i].MonsterID < list[j].MonsterID
		})
	}
	s.logger.Debug("Dropper index built", zap.Int("monsters", len(ids)), zap.Int("items", len(index)))
	return index, nil
}
