package merge

import (
	"fmt"

	"corpus-builder/core/metadata"
	"corpus-builder/core/reconcile"
	"corpus-builder/core/relational"
	"corpus-builder/feature/classify"
	"corpus-builder/feature/models"

	"gopkg.in/guregu/null.v3"
)

const (
	stackGear    = 1
	stackDefault = 100
)

// ItemSources is everything known about one item before merging.
// DB and API may each be nil; Stats and Effects may be empty.
type ItemSources struct {
	DB    *relational.ItemRow
	Stats map[string]int
	API   *metadata.Item

	Classification classify.Classification
	Effects        map[string]float64
	Icon           string
}

// Item merges an item record under the fixed precedence: relational value, then
// metadata value, then a type default. Metadata-only fields are always merged.
func Item(id int, src ItemSources) (*models.Item, error) {
	if src.DB == nil && src.API == nil {
		return nil, fmt.Errorf("item %d: %w", id, ErrUnreconcilable)
	}

	db := src.DB
	if db == nil {
		db = &relational.ItemRow{ID: id}
	}
	api := src.API
	if api == nil {
		api = &metadata.Item{ID: id}
	}
	meta := api.MetaInfo
	class := src.Classification

	stack := int64(stackDefault)
	if class.Type == models.TypeGear {
		stack = stackGear
	}

	item := &models.Item{
		ID:           id,
		Names:        models.NewNames(reconcile.String("", db.Name, api.Description.Name), api.Description.Name.String),
		Description:  reconcile.String("", db.Description, api.Description.Description),
		Type:         class.Type,
		Category:     class.Category,
		Subcategory:  class.Subcategory,
		Slot:         class.Slot,
		Rarity:       models.RarityCommon,
		Price:        int(reconcile.Int(0, db.Price, meta.Price)),
		Sellable:     !reconcile.Bool(false, meta.NotSale),
		Tradeable:    reconcile.Bool(true, db.Tradeable, invert(meta.TradeBlock)),
		StackSize:    int(reconcile.Int(stack, db.SlotMax, meta.SlotMax)),
		UpgradeSlots: reconcile.Positive(db.UpgradeSlots, meta.TUC),
		ReqLevel:     reconcile.Positive(db.ReqLevel, meta.ReqLevel),
		ReqJob:       reconcile.Present(db.ReqJob, meta.ReqJob),
		Unique:       reconcile.Bool(false, db.Only, meta.Only),
		Quest:        reconcile.Bool(false, db.Quest, meta.Quest),
		Cash:         reconcile.Bool(false, db.Cash, meta.Cash),
		Icon:         src.Icon,
	}

	if class.Type == models.TypeGear {
		item.Stats = gearStats(src.Stats, meta)
	}
	if class.Type == models.TypeConsumable && len(src.Effects) > 0 {
		item.Effects = src.Effects
	}
	return item, nil
}

// gearStats prefers the relational stat table; only when it is empty are the
// metadata stat fields used, keeping nonzero values.
func gearStats(dbStats map[string]int, meta metadata.ItemMeta) map[string]int {
	if len(dbStats) > 0 {
		out := make(map[string]int, len(dbStats))
		for k, v := range dbStats {
			out[k] = v
		}
		return out
	}
	out := make(map[string]int)
	for k, v := range meta.Stats() {
		if v.Valid && v.Int64 != 0 {
			out[k] = int(v.Int64)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func invert(b null.Bool) null.Bool {
	if !b.Valid {
		return b
	}
	return null.BoolFrom(!b.Bool)
}
