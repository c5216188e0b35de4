package cascade

import (
	"context"
	"fmt"
	"time"

	"corpus-builder/core/backend"
	"corpus-builder/core/database"
	"corpus-builder/core/logger"
	"corpus-builder/core/metadata"
	"corpus-builder/core/relational"
	"corpus-builder/core/tree"
	"corpus-builder/feature/effects"
	"corpus-builder/feature/persist"
	"corpus-builder/feature/regions"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Deps are the collaborators of an Orchestrator.
type Deps struct {
	// Handle is the relational connection of the run. The orchestrator owns it and
	// closes it when Run returns. Nil when DB is not backed by a handle.
	Handle *database.Handle

	DB      relational.Client
	API     metadata.Client
	Tree    tree.Client
	Store   *persist.Store
	Regions *regions.Table
}

// Config tunes a run.
type Config struct {
	// Delay follows every external call.
	Delay time.Duration
	// MaxFoundAt caps the map IDs listed on a monster.
	MaxFoundAt int
	Policies   Policies
}

// Request is what a run starts from.
type Request struct {
	Maps     Selection
	Monsters Selection
	Items    Selection
	// Cascade feeds the IDs referenced by each stage into the next one. Without it
	// each stage only handles its own selection.
	Cascade bool
}

// Orchestrator runs the Map, Monster, and Item stages in order, sequentially.
type Orchestrator struct {
	handle  *database.Handle
	db      relational.Client
	api     metadata.Client
	walker  *effects.Walker
	store   *persist.Store
	regions *regions.Table
	cfg     Config
	logger  *zap.Logger
}

// New creates an Orchestrator whose backend calls are paced by cfg.Delay.
func New(deps Deps, cfg Config, logger *zap.Logger) *Orchestrator {
	throttle := backend.NewThrottle(cfg.Delay)
	return &Orchestrator{
		handle:  deps.Handle,
		db:      &pacedRelational{Client: deps.DB, throttle: throttle},
		api:     &pacedMetadata{Client: deps.API, throttle: throttle},
		walker:  effects.NewWalker(&pacedTree{Client: deps.Tree, throttle: throttle}, logger),
		store:   deps.Store,
		regions: deps.Regions,
		cfg:     cfg,
		logger:  logger,
	}
}

// Run executes a request. Entity failures are logged and tallied, never returned;
// the error is non-nil only if the relational connection cannot be opened, the
// request is invalid, or ctx is cancelled. The summary is returned in every case
// where work began.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*Summary, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	if o.handle != nil {
		defer func() {
			if err := o.handle.Close(); err != nil {
				o.logger.Warn("Failed to close relational connection", zap.Error(err))
			}
		}()
		if _, err := o.handle.DB(); err != nil {
			return nil, fmt.Errorf("connect relational backend: %w", err)
		}
	}

	start := time.Now()
	summary := newSummary(uuid.NewString())
	log := logger.WithRun(o.logger, summary.RunID)
	log.Info("Run started", zap.Bool("cascade", req.Cascade))

	monsters := newIDSet()
	items := newIDSet()

	err := o.run(ctx, log, req, summary, monsters, items)
	summary.Duration = time.Since(start)
	log.Info("Run finished", summary.fields()...)
	return summary, err
}

func (o *Orchestrator) run(ctx context.Context, log *zap.Logger, req Request, summary *Summary, monsters, items *idSet) error {
	mapLog := log.With(zap.String("stage", "maps"))
	for _, id := range o.resolve(ctx, mapLog, metadata.KindMap, req.Maps) {
		if err := ctx.Err(); err != nil {
			return err
		}
		referenced := o.mapStage(ctx, mapLog.With(zap.Int("id", id)), id, &summary.Maps)
		if req.Cascade {
			monsters.add(referenced...)
		}
	}

	monsterLog := log.With(zap.String("stage", "monsters"))
	monsters.add(o.resolve(ctx, monsterLog, metadata.KindMonster, req.Monsters)...)
	for _, id := range monsters.ids() {
		if err := ctx.Err(); err != nil {
			return err
		}
		dropped := o.monsterStage(ctx, monsterLog.With(zap.Int("id", id)), id, &summary.Monsters)
		if req.Cascade {
			items.add(dropped...)
		}
	}

	itemLog := log.With(zap.String("stage", "items"))
	items.add(o.resolve(ctx, itemLog, metadata.KindItem, req.Items)...)
	for _, id := range items.ids() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if o.itemStage(ctx, itemLog.With(zap.Int("id", id)), id, &summary.Items) {
			summary.Fallbacks++
		}
	}
	return ctx.Err()
}

func (r Request) validate() error {
	for kind, sel := range map[metadata.Kind]Selection{
		metadata.KindMap:     r.Maps,
		metadata.KindMonster: r.Monsters,
		metadata.KindItem:    r.Items,
	} {
		if err := sel.Validate(kind); err != nil {
			return fmt.Errorf("%s selection: %w", kind, err)
		}
	}
	return nil
}
