package cascade

import (
	"context"
	"errors"

	"corpus-builder/core/backend"
	"corpus-builder/core/metadata"
	"corpus-builder/feature/classify"
	"corpus-builder/feature/drops"
	"corpus-builder/feature/merge"
	"corpus-builder/feature/models"

	"go.uber.org/zap"
)

// searchLimit bounds the map search used to complete street names.
const searchLimit = 10

// mapStage handles one map and returns the monster IDs it references.
func (o *Orchestrator) mapStage(ctx context.Context, log *zap.Logger, id int, s *StageSummary) []int {
	switch o.cfg.Policies.Maps {
	case PolicyReuse:
		if prior, ok := o.store.ReadMap(id); ok && len(prior.Spawns) > 0 {
			s.Reused++
			log.Debug("Reusing map")
			return prior.MonsterIDs()
		}
	case PolicySkip:
		if _, ok := o.store.FindMap(id); ok {
			s.Skipped++
			log.Debug("Skipping existing map")
			if prior, ok := o.store.ReadMap(id); ok {
				return prior.MonsterIDs()
			}
			return nil
		}
	}

	detail, err := o.api.Map(ctx, id)
	if err != nil {
		o.failed(log, s, err)
		return nil
	}

	var hit *metadata.Summary
	if detail.Name.Valid && detail.Name.String != "" {
		hits, err := o.api.Search(ctx, metadata.KindMap, detail.Name.String, searchLimit)
		if err != nil {
			log.Debug("Map search failed", zap.Error(err))
		}
		for i := range hits {
			if hits[i].ID == id {
				hit = &hits[i]
				break
			}
		}
	}

	record, err := merge.Map(id, merge.MapSources{API: detail, Search: hit}, o.regions)
	if err != nil {
		o.failed(log, s, err)
		return nil
	}
	if !o.write(ctx, log, s, func() (string, error) { return o.store.WriteMap(record) }) {
		return nil
	}
	return record.MonsterIDs()
}

// monsterStage handles one monster and returns the item IDs it drops.
func (o *Orchestrator) monsterStage(ctx context.Context, log *zap.Logger, id int, s *StageSummary) []int {
	switch o.cfg.Policies.Monsters {
	case PolicyReuse:
		if prior, ok := o.store.ReadMonster(id); ok {
			s.Reused++
			log.Debug("Reusing monster")
			return prior.DropItemIDs()
		}
	case PolicySkip:
		if _, ok := o.store.FindMonster(id); ok {
			s.Skipped++
			log.Debug("Skipping existing monster")
			if prior, ok := o.store.ReadMonster(id); ok {
				return prior.DropItemIDs()
			}
			return nil
		}
	}

	detail, err := o.api.Monster(ctx, id)
	if err != nil {
		o.failed(log, s, err)
		return nil
	}
	rows, err := o.db.Drops(ctx, id)
	if err != nil {
		o.failed(log, s, err)
		return nil
	}
	table := drops.Resolve(rows)
	if table.DiscardedMeso > 0 {
		log.Debug("Discarded duplicate currency rows", zap.Int("count", table.DiscardedMeso))
	}

	record, err := merge.Monster(id, merge.MonsterSources{
		API:        detail,
		Drops:      table,
		CanJump:    o.walker.CanJump(ctx, id),
		MaxFoundAt: o.cfg.MaxFoundAt,
	})
	if err != nil {
		o.failed(log, s, err)
		return nil
	}
	if !o.write(ctx, log, s, func() (string, error) { return o.store.WriteMonster(record) }) {
		return nil
	}
	return record.DropItemIDs()
}

// itemStage handles one item and reports whether its classification fell back to ID bands.
func (o *Orchestrator) itemStage(ctx context.Context, log *zap.Logger, id int, s *StageSummary) bool {
	switch o.cfg.Policies.Items {
	case PolicyReuse:
		if _, ok := o.store.ReadItem(id); ok {
			s.Reused++
			log.Debug("Reusing item")
			return false
		}
	case PolicySkip:
		if _, ok := o.store.FindItem(id); ok {
			s.Skipped++
			log.Debug("Skipping existing item")
			return false
		}
	}

	// Unavailable backends count as absent sources; the merge decides if enough is left.
	row, dbErr := o.db.Item(ctx, id)
	api, apiErr := o.api.Item(ctx, id)
	if row == nil && api == nil {
		o.failed(log, s, itemError(dbErr, apiErr))
		return false
	}
	if dbErr != nil && !errors.Is(dbErr, backend.ErrNotFound) {
		log.Debug("Relational item lookup failed", zap.Error(dbErr))
	}
	if apiErr != nil && !errors.Is(apiErr, backend.ErrNotFound) {
		log.Debug("Metadata item lookup failed", zap.Error(apiErr))
	}

	var typeInfo *metadata.TypeInfo
	if api != nil {
		typeInfo = api.TypeInfo
	}
	class := classify.Classify(id, typeInfo)
	src := merge.ItemSources{DB: row, API: api, Classification: class, Icon: o.api.IconURL(id)}

	switch class.Type {
	case models.TypeGear:
		if row != nil {
			stats, err := o.db.GearStats(ctx, id)
			if err != nil {
				log.Debug("Gear stats unavailable", zap.Error(err))
			}
			src.Stats = stats
		}
	case models.TypeConsumable:
		src.Effects = o.walker.Effects(ctx, id)
	}

	record, err := merge.Item(id, src)
	if err != nil {
		o.failed(log, s, err)
		return false
	}
	written := o.write(ctx, log, s, func() (string, error) { return o.store.WriteItem(record) })
	return written && class.Fallback()
}

// itemError picks the failure to report when neither backend returned the item.
func itemError(dbErr, apiErr error) error {
	for _, err := range []error{dbErr, apiErr} {
		if err != nil && !errors.Is(err, backend.ErrNotFound) {
			return err
		}
	}
	return merge.ErrUnreconcilable
}

// write persists a record unless the run was cancelled. Backend calls made after
// cancellation fail, so a record merged past that point may be missing fields.
func (o *Orchestrator) write(ctx context.Context, log *zap.Logger, s *StageSummary, write func() (string, error)) bool {
	if err := ctx.Err(); err != nil {
		log.Warn("Run cancelled, record not written", zap.Error(err))
		return false
	}
	path, err := write()
	if err != nil {
		o.failed(log, s, &writeError{err: err})
		return false
	}
	s.Fetched++
	log.Info("Record written", zap.String("path", path))
	return true
}

func (o *Orchestrator) failed(log *zap.Logger, s *StageSummary, err error) {
	kind := s.fail(err)
	log.Warn("Entity skipped", zap.String("reason", kind), zap.Error(err))
}
