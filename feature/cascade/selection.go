package cascade

import (
	"context"
	"errors"
	"fmt"

	"corpus-builder/core/metadata"
	"corpus-builder/core/relational"
	"corpus-builder/feature/models"

	"go.uber.org/zap"
)

const bandWidth = 1_000_000

// Selection describes which entities of one kind a run starts from.
type Selection struct {
	// IDs are explicit identifiers.
	IDs []int
	// From and To bound the ID range; To is exclusive. Zero disables a bound.
	From int
	To   int
	// Type restricts items to one type band.
	Type models.ItemType
	// Limit caps the number of selected IDs. Zero means no cap.
	Limit int
	// Search is a free-text query against the metadata backend.
	Search string
}

// Empty reports whether the selection names nothing.
func (s Selection) Empty() bool {
	return len(s.IDs) == 0 && s.Search == "" && s.From == 0 && s.To == 0 && s.Type == ""
}

func (s Selection) ranged() bool {
	return s.From > 0 || s.To > 0 || s.Type != ""
}

// Validate checks the selection for a given kind.
func (s Selection) Validate(kind metadata.Kind) error {
	if s.From < 0 || s.To < 0 || s.Limit < 0 {
		return errors.New("range bounds and limit must not be negative")
	}
	if s.To > 0 && s.From >= s.To {
		return fmt.Errorf("empty range [%d, %d)", s.From, s.To)
	}
	if s.Type != "" {
		if kind != metadata.KindItem {
			return errors.New("type filter only applies to items")
		}
		if _, err := models.ParseItemType(string(s.Type)); err != nil {
			return err
		}
	}
	if kind != metadata.KindItem && s.ranged() && s.Search == "" && len(s.IDs) == 0 {
		return fmt.Errorf("%s ranges need explicit ids or a search to filter", kind)
	}
	return nil
}

// bounds intersects the ID range with the type band.
func (s Selection) bounds() (from, to int) {
	from, to = s.From, s.To
	if s.Type == "" {
		return from, to
	}
	for i, t := range models.ItemTypes {
		if t != s.Type {
			continue
		}
		lo, hi := (i+1)*bandWidth, (i+2)*bandWidth
		if from < lo {
			from = lo
		}
		if to == 0 || to > hi {
			to = hi
		}
	}
	return from, to
}

func (s Selection) contains(id int) bool {
	from, to := s.bounds()
	return id >= from && (to == 0 || id < to)
}

// resolve expands a selection into IDs. Backend failures while searching or listing
// are logged and leave the explicit IDs in place.
func (o *Orchestrator) resolve(ctx context.Context, log *zap.Logger, kind metadata.Kind, sel Selection) []int {
	candidates := newIDSet()
	candidates.add(sel.IDs...)

	if sel.Search != "" {
		hits, err := o.api.Search(ctx, kind, sel.Search, sel.Limit)
		if err != nil {
			log.Warn("Search failed", zap.String("kind", string(kind)), zap.String("query", sel.Search), zap.Error(err))
		}
		for _, h := range hits {
			candidates.add(h.ID)
		}
	} else if kind == metadata.KindItem && sel.ranged() {
		from, to := sel.bounds()
		listed, err := o.db.ListItemIDs(ctx, relational.IDFilter{From: from, To: to, Limit: sel.Limit})
		if err != nil {
			log.Warn("Item listing failed", zap.Int("from", from), zap.Int("to", to), zap.Error(err))
		}
		candidates.add(listed...)
	}

	var out []int
	for _, id := range candidates.ids() {
		if !sel.contains(id) {
			continue
		}
		out = append(out, id)
		if sel.Limit > 0 && len(out) == sel.Limit {
			break
		}
	}
	return out
}
