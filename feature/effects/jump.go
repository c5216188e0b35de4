package effects

import (
	"context"
	"errors"

	"corpus-builder/core/backend"

	"go.uber.org/zap"
)

const keyJump = "jump"

// CanJump reports whether a monster's animation node has a jump action.
// It returns nil when the tree backend could not answer.
func (w *Walker) CanJump(ctx context.Context, monsterID int) *bool {
	node, err := w.tree.Node(ctx, MonsterPath(monsterID))
	if err != nil {
		if !errors.Is(err, backend.ErrNotFound) {
			w.logger.Debug("Monster node unavailable", zap.Int("id", monsterID), zap.Error(err))
		}
		return nil
	}
	can := node.Has(keyJump)
	return &can
}
