package merge

import (
	"context"
	"testing"

	"corpus-builder/core/backend"
	metamocks "corpus-builder/core/metadata/mocks"
	"corpus-builder/core/reconcile"
	"corpus-builder/core/relational"
	relmocks "corpus-builder/core/relational/mocks"
	"corpus-builder/core/tree"
	treemocks "corpus-builder/core/tree/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"
)

type fakeLocator map[int]string

func (f fakeLocator) FindItem(id int) (string, bool) {
	p, ok := f[id]
	return p, ok
}

func TestItemAdapter_ReconcileOne(t *testing.T) {
	db := new(relmocks.Client)
	api := new(metamocks.Client)
	tr := new(treemocks.Client)

	row := fullRow(4000000)
	row.Price = null.IntFrom(99)
	db.On("Item", mock.Anything, 4000000).Return(row, nil)
	api.On("Item", mock.Anything, 4000000).Return(fullAPI(4000000), nil)
	tr.On("Node", mock.Anything, "Item/Etc/0400.img/04000000").Return(&tree.Node{}, nil)

	adapter := NewItemAdapter(db, api, tr, fakeLocator{4000000: "items/misc/4000000_api-name.json"})
	got, err := reconcile.ReconcileOne(context.Background(), &reconcile.Spec{Adapter: adapter}, 4000000)
	require.NoError(t, err)

	assert.True(t, got.DBPresent)
	assert.True(t, got.APIPresent)
	assert.True(t, got.TreePresent)
	assert.True(t, got.CorpusPresent)
	assert.Equal(t, "DB Name", got.Name)
	assert.Equal(t, "misc", got.Metadata["type"])
	assert.Equal(t, "metadata", got.Metadata["source"])
	assert.Contains(t, got.Mismatch, `name: db="DB Name" api="API Name"`)
	assert.Contains(t, got.Mismatch, "upgrade_slots: db=3 api=7")
	assert.Contains(t, got.Mismatch, "tradeable: db=false api=true")
	assert.NotContains(t, got.Mismatch, "price: db=99 api=99")
}

func TestItemAdapter_Absent(t *testing.T) {
	db := new(relmocks.Client)
	api := new(metamocks.Client)
	tr := new(treemocks.Client)

	db.On("Item", mock.Anything, 2000000).Return(nil, backend.ErrNotFound)
	api.On("Item", mock.Anything, 2000000).Return(nil, backend.ErrNotFound)
	tr.On("Node", mock.Anything, "Item/Consume/0200.img/02000000").Return(nil, backend.ErrNotFound)

	got, err := reconcile.ReconcileOne(context.Background(), &reconcile.Spec{Adapter: NewItemAdapter(db, api, tr, nil)}, 2000000)
	require.NoError(t, err)
	assert.False(t, got.DBPresent || got.APIPresent || got.TreePresent || got.CorpusPresent)
	assert.Empty(t, got.Mismatch)
}

func TestItemAdapter_Unavailable(t *testing.T) {
	db := new(relmocks.Client)
	db.On("Item", mock.Anything, 1).Return((*relational.ItemRow)(nil), backend.ErrUnavailable)

	_, err := reconcile.ReconcileOne(context.Background(), &reconcile.Spec{Adapter: NewItemAdapter(db, nil, nil, nil)}, 1)
	assert.ErrorIs(t, err, backend.ErrUnavailable)
}
