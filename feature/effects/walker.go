package effects

import (
	"context"
	"fmt"

	"corpus-builder/core/tree"

	"go.uber.org/zap"
)

// Walker extracts consumable effects from the tree backend.
type Walker struct {
	tree   tree.Client
	logger *zap.Logger
}

// NewWalker creates a Walker.
func NewWalker(client tree.Client, logger *zap.Logger) *Walker {
	return &Walker{tree: client, logger: logger}
}

// Path returns the tree path of a consumable: a four digit bucket and the eight digit ID.
func Path(itemID int) string {
	return fmt.Sprintf("Item/Consume/%04d.img/%08d", itemID/10000, itemID)
}

// Effects returns the sparse effect map of an item, or nil when no known key resolved
// to a number. Failed tree calls leave the affected field out.
func (w *Walker) Effects(ctx context.Context, itemID int) map[string]float64 {
	root := Path(itemID)
	out := make(map[string]float64)
	w.walk(ctx, root+"/"+subtreeSpec, SpecKeys, out)
	w.walk(ctx, root+"/"+subtreeInfo, InfoKeys, out)

	if len(out) == 0 {
		return nil
	}
	deriveAttackPower(out)
	return out
}

func (w *Walker) walk(ctx context.Context, path string, keys []string, out map[string]float64) {
	node, err := w.tree.Node(ctx, path)
	if err != nil {
		w.logger.Debug("Effect subtree unavailable", zap.String("path", path), zap.Error(err))
		return
	}
	for _, key := range keys {
		if !node.Has(key) {
			continue
		}
		leaf, err := w.tree.Node(ctx, path+"/"+key)
		if err != nil {
			w.logger.Debug("Effect value unavailable", zap.String("path", path+"/"+key), zap.Error(err))
			continue
		}
		if v, ok := leaf.Number(); ok {
			out[key] = v
		}
	}
}

// deriveAttackPower renames incPAD to attackPower unless a success rate marks a scroll.
func deriveAttackPower(out map[string]float64) {
	if _, scroll := out[keySuccess]; scroll {
		return
	}
	if v, ok := out[keyIncPAD]; ok {
		out[keyAttackPower] = v
		delete(out, keyIncPAD)
	}
}
