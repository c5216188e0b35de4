package cascade

import (
	"context"

	"corpus-builder/core/backend"
	"corpus-builder/core/metadata"
	"corpus-builder/core/relational"
	"corpus-builder/core/tree"
)

// The paced clients wait on the throttle after every external call. A cancelled
// wait is surfaced by the orchestrator's next context check.

var (
	_ metadata.Client   = (*pacedMetadata)(nil)
	_ tree.Client       = (*pacedTree)(nil)
	_ relational.Client = (*pacedRelational)(nil)
)

type pacedMetadata struct {
	metadata.Client
	throttle *backend.Throttle
}

func (p *pacedMetadata) Map(ctx context.Context, id int) (*metadata.Map, error) {
	defer p.throttle.Wait(ctx)
	return p.Client.Map(ctx, id)
}

func (p *pacedMetadata) Monster(ctx context.Context, id int) (*metadata.Monster, error) {
	defer p.throttle.Wait(ctx)
	return p.Client.Monster(ctx, id)
}

func (p *pacedMetadata) Item(ctx context.Context, id int) (*metadata.Item, error) {
	defer p.throttle.Wait(ctx)
	return p.Client.Item(ctx, id)
}

func (p *pacedMetadata) Search(ctx context.Context, kind metadata.Kind, query string, limit int) ([]metadata.Summary, error) {
	defer p.throttle.Wait(ctx)
	return p.Client.Search(ctx, kind, query, limit)
}

type pacedTree struct {
	tree.Client
	throttle *backend.Throttle
}

func (p *pacedTree) Node(ctx context.Context, path string) (*tree.Node, error) {
	defer p.throttle.Wait(ctx)
	return p.Client.Node(ctx, path)
}

type pacedRelational struct {
	relational.Client
	throttle *backend.Throttle
}

func (p *pacedRelational) Item(ctx context.Context, id int) (*relational.ItemRow, error) {
	defer p.throttle.Wait(ctx)
	return p.Client.Item(ctx, id)
}

func (p *pacedRelational) GearStats(ctx context.Context, id int) (map[string]int, error) {
	defer p.throttle.Wait(ctx)
	return p.Client.GearStats(ctx, id)
}

func (p *pacedRelational) Drops(ctx context.Context, dropperID int) ([]relational.DropRow, error) {
	defer p.throttle.Wait(ctx)
	return p.Client.Drops(ctx, dropperID)
}

func (p *pacedRelational) ListItemIDs(ctx context.Context, filter relational.IDFilter) ([]int, error) {
	defer p.throttle.Wait(ctx)
	return p.Client.ListItemIDs(ctx, filter)
}
