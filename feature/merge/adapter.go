package merge

import (
	"context"
	"errors"

	"corpus-builder/core/backend"
	"corpus-builder/core/metadata"
	"corpus-builder/core/reconcile"
	"corpus-builder/core/relational"
	"corpus-builder/core/tree"
	"corpus-builder/feature/classify"
	"corpus-builder/feature/effects"
)

// Locator finds persisted records.
type Locator interface {
	FindItem(id int) (string, bool)
}

// ItemAdapter inspects items across the three backends and the corpus.
type ItemAdapter struct {
	db     relational.Client
	api    metadata.Client
	tree   tree.Client
	corpus Locator
}

// NewItemAdapter creates an ItemAdapter.
func NewItemAdapter(db relational.Client, api metadata.Client, t tree.Client, corpus Locator) *ItemAdapter {
	return &ItemAdapter{db: db, api: api, tree: t, corpus: corpus}
}

var _ reconcile.Adapter = (*ItemAdapter)(nil)

func (a *ItemAdapter) Name() string {
	return "item"
}

func (a *ItemAdapter) LoadDB(ctx context.Context, id int) (reconcile.DBItem, error) {
	row, err := a.db.Item(ctx, id)
	if errors.Is(err, backend.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (a *ItemAdapter) LoadAPI(ctx context.Context, id int) (reconcile.APIItem, error) {
	item, err := a.api.Item(ctx, id)
	if errors.Is(err, backend.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// CheckTree looks up the item node using the ID-band classification.
func (a *ItemAdapter) CheckTree(ctx context.Context, id int) (bool, error) {
	_, err := a.tree.Node(ctx, effects.ItemPath(id, classify.Classify(id, nil)))
	if errors.Is(err, backend.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (a *ItemAdapter) CheckCorpus(id int) (string, bool) {
	if a.corpus == nil {
		return "", false
	}
	return a.corpus.FindItem(id)
}

func (a *ItemAdapter) ResolveName(dbItem reconcile.DBItem, apiItem reconcile.APIItem) string {
	row, item := unpack(dbItem, apiItem)
	return reconcile.String("", row.Name, item.Description.Name)
}

func (a *ItemAdapter) CompareFields(dbItem reconcile.DBItem, apiItem reconcile.APIItem) []string {
	row, item := unpack(dbItem, apiItem)
	meta := item.MetaInfo

	var m reconcile.Mismatches
	m.String("name", row.Name, item.Description.Name)
	m.String("description", row.Description, item.Description.Description)
	m.Int("price", row.Price, meta.Price)
	m.Int("slot_max", row.SlotMax, meta.SlotMax)
	m.Int("upgrade_slots", row.UpgradeSlots, meta.TUC)
	m.Int("req_level", row.ReqLevel, meta.ReqLevel)
	m.Int("req_job", row.ReqJob, meta.ReqJob)
	m.Bool("tradeable", row.Tradeable, invert(meta.TradeBlock))
	m.Bool("quest", row.Quest, meta.Quest)
	m.Bool("cash", row.Cash, meta.Cash)
	m.Bool("unique", row.Only, meta.Only)
	return m.List()
}

func (a *ItemAdapter) GetMetadata(dbItem reconcile.DBItem, apiItem reconcile.APIItem) map[string]string {
	_, item := unpack(dbItem, apiItem)
	c := classify.Classify(item.ID, item.TypeInfo)
	out := map[string]string{
		"type":     string(c.Type),
		"category": c.Category,
		"source":   string(c.Source),
	}
	if c.Slot != "" {
		out["slot"] = c.Slot
	}
	return out
}

// unpack returns non-nil views of the adapter items.
func unpack(dbItem reconcile.DBItem, apiItem reconcile.APIItem) (*relational.ItemRow, *metadata.Item) {
	row, _ := dbItem.(*relational.ItemRow)
	item, _ := apiItem.(*metadata.Item)
	if row == nil {
		row = &relational.ItemRow{}
		if item != nil {
			row.ID = item.ID
		}
	}
	if item == nil {
		item = &metadata.Item{ID: row.ID}
	}
	return row, item
}
