package cascade

import (
	"context"
	"fmt"
	"testing"

	"corpus-builder/core/backend"
	"corpus-builder/core/metadata"
	"corpus-builder/core/relational"
	"corpus-builder/feature/merge"
	"corpus-builder/feature/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSelection_Validate(t *testing.T) {
	tests := []struct {
		name    string
		kind    metadata.Kind
		sel     Selection
		wantErr bool
	}{
		{"Empty", metadata.KindMap, Selection{}, false},
		{"Item Range", metadata.KindItem, Selection{From: 2000000, To: 2100000}, false},
		{"Item Type", metadata.KindItem, Selection{Type: models.TypeConsumable, Limit: 5}, false},
		{"Inverted Range", metadata.KindItem, Selection{From: 5, To: 5}, true},
		{"Negative Limit", metadata.KindItem, Selection{Limit: -1}, true},
		{"Unknown Type", metadata.KindItem, Selection{Type: "weapon"}, true},
		{"Type On Monsters", metadata.KindMonster, Selection{IDs: []int{1}, Type: models.TypeGear}, true},
		{"Bare Map Range", metadata.KindMap, Selection{From: 100000000}, true},
		{"Map Range With Search", metadata.KindMap, Selection{From: 100000000, Search: "Henesys"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sel.Validate(tt.kind)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSelection_Bounds(t *testing.T) {
	from, to := Selection{Type: models.TypeConsumable}.bounds()
	assert.Equal(t, 2000000, from)
	assert.Equal(t, 3000000, to)

	from, to = Selection{Type: models.TypeGear, From: 1300000, To: 9000000}.bounds()
	assert.Equal(t, 1300000, from)
	assert.Equal(t, 2000000, to)

	from, to = Selection{From: 10}.bounds()
	assert.Equal(t, 10, from)
	assert.Zero(t, to)
}

func TestResolve_ItemListing(t *testing.T) {
	f := newFixture(t)
	f.db.On("ListItemIDs", mock.Anything, relational.IDFilter{From: 2000000, To: 3000000, Limit: 2}).
		Return([]int{2000000, 2000001}, nil)

	orch := f.orchestrator(t, DefaultPolicies(false))
	got := orch.resolve(context.Background(), zap.NewNop(), metadata.KindItem, Selection{
		IDs:   []int{4000000, 2000005},
		Type:  models.TypeConsumable,
		Limit: 2,
	})
	assert.Equal(t, []int{2000005, 2000000}, got, "explicit ids outside the band are dropped, limit applies last")
}

func TestResolve_SearchFailureKeepsExplicitIDs(t *testing.T) {
	f := newFixture(t)
	f.api.On("Search", mock.Anything, metadata.KindMonster, "snail", 0).Return(nil, backend.ErrUnavailable)
	f.api.On("Search", mock.Anything, metadata.KindMonster, "mushroom", 0).
		Return([]metadata.Summary{{ID: 1210102}, {ID: 2220000}}, nil)

	orch := f.orchestrator(t, DefaultPolicies(false))
	got := orch.resolve(context.Background(), zap.NewNop(), metadata.KindMonster, Selection{IDs: []int{100100}, Search: "snail"})
	assert.Equal(t, []int{100100}, got)

	got = orch.resolve(context.Background(), zap.NewNop(), metadata.KindMonster, Selection{Search: "mushroom", To: 2000000})
	assert.Equal(t, []int{1210102}, got)
}

func TestFailureKind(t *testing.T) {
	assert.Equal(t, backend.KindNotFound, failureKind(fmt.Errorf("x: %w", backend.ErrNotFound)))
	assert.Equal(t, backend.KindUnavailable, failureKind(backend.ErrUnavailable))
	assert.Equal(t, KindUnreconcilable, failureKind(fmt.Errorf("item 1: %w", merge.ErrUnreconcilable)))
	assert.Equal(t, KindWrite, failureKind(&writeError{err: fmt.Errorf("disk full")}))
	assert.Equal(t, backend.KindOther, failureKind(fmt.Errorf("boom")))
}

func TestPolicies(t *testing.T) {
	assert.Equal(t, Policies{Maps: PolicyReuse, Monsters: PolicyRefetch, Items: PolicyRefetch}, DefaultPolicies(false))
	assert.Equal(t, Policies{Maps: PolicyReuse, Monsters: PolicySkip, Items: PolicySkip}, DefaultPolicies(true))

	p, err := ParsePolicy("skip")
	require.NoError(t, err)
	assert.Equal(t, PolicySkip, p)
	_, err = ParsePolicy("maybe")
	assert.Error(t, err)
}
