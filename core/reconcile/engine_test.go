package reconcile

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"
)

type dbRow struct {
	name  string
	price int64
}

type apiRow struct {
	name  string
	price int64
}

// mockAdapter is a simple test adapter
type mockAdapter struct {
	name     string
	db       map[int]dbRow
	api      map[int]apiRow
	tree     map[int]bool
	corpus   map[int]string
	dbErr    error
	apiErr   error
	treeErr  error
	dbLoads  atomic.Int32
	apiLoads atomic.Int32
}

func (m *mockAdapter) Name() string {
	if m.name == "" {
		return "mock"
	}
	return m.name
}

func (m *mockAdapter) LoadDB(ctx context.Context, id int) (DBItem, error) {
	m.dbLoads.Add(1)
	if m.dbErr != nil {
		return nil, m.dbErr
	}
	if row, ok := m.db[id]; ok {
		return row, nil
	}
	return nil, nil
}

func (m *mockAdapter) LoadAPI(ctx context.Context, id int) (APIItem, error) {
	m.apiLoads.Add(1)
	if m.apiErr != nil {
		return nil, m.apiErr
	}
	if row, ok := m.api[id]; ok {
		return row, nil
	}
	return nil, nil
}

func (m *mockAdapter) CheckTree(ctx context.Context, id int) (bool, error) {
	return m.tree[id], m.treeErr
}

func (m *mockAdapter) CheckCorpus(id int) (string, bool) {
	path, ok := m.corpus[id]
	return path, ok
}

func (m *mockAdapter) ResolveName(dbItem DBItem, apiItem APIItem) string {
	if dbItem != nil {
		return dbItem.(dbRow).name
	}
	return apiItem.(apiRow).name
}

func (m *mockAdapter) CompareFields(dbItem DBItem, apiItem APIItem) []string {
	var out Mismatches
	out.String("name", null.StringFrom(dbItem.(dbRow).name), null.StringFrom(apiItem.(apiRow).name))
	out.Int("price", null.IntFrom(dbItem.(dbRow).price), null.IntFrom(apiItem.(apiRow).price))
	return out.List()
}

func (m *mockAdapter) GetMetadata(dbItem DBItem, apiItem APIItem) map[string]string {
	return map[string]string{"kind": m.Name()}
}

func TestReconcileOne_Presence(t *testing.T) {
	adapter := &mockAdapter{
		db:     map[int]dbRow{1: {"빨간 포션", 50}, 2: {"Only DB", 1}},
		api:    map[int]apiRow{1: {"Red Potion", 50}, 3: {"Only API", 1}},
		tree:   map[int]bool{1: true},
		corpus: map[int]string{1: "items/consumable/1_red-potion.json"},
	}
	spec := &Spec{Adapter: adapter}

	tests := []struct {
		name string
		id   int
		want Result
	}{
		{
			name: "All sources",
			id:   1,
			want: Result{
				ID: 1, Name: "빨간 포션", DBPresent: true, APIPresent: true, TreePresent: true, CorpusPresent: true,
				Mismatch: []string{`name: db="빨간 포션" api="Red Potion"`},
				Metadata: map[string]string{"kind": "mock", "corpus_path": "items/consumable/1_red-potion.json"},
			},
		},
		{
			name: "DB only",
			id:   2,
			want: Result{ID: 2, Name: "Only DB", DBPresent: true, Mismatch: []string{}, Metadata: map[string]string{"kind": "mock"}},
		},
		{
			name: "API only",
			id:   3,
			want: Result{ID: 3, Name: "Only API", APIPresent: true, Mismatch: []string{}, Metadata: map[string]string{"kind": "mock"}},
		},
		{
			name: "Nowhere",
			id:   4,
			want: Result{ID: 4, Mismatch: []string{}, Metadata: map[string]string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReconcileOne(context.Background(), spec, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

// TestReconcileOne_ErrorHandling tests that lookup errors are propagated.
func TestReconcileOne_ErrorHandling(t *testing.T) {
	tests := []struct {
		name      string
		adapter   *mockAdapter
		expectErr string
	}{
		{"DB load error", &mockAdapter{dbErr: fmt.Errorf("db error")}, "db error"},
		{"API load error", &mockAdapter{apiErr: fmt.Errorf("api error")}, "api error"},
		{"Tree check error", &mockAdapter{treeErr: fmt.Errorf("tree error")}, "tree error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReconcileOne(context.Background(), &Spec{Adapter: tt.adapter}, 1)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectErr)
		})
	}
}

func TestReconcileMany_Sorted(t *testing.T) {
	adapter := &mockAdapter{db: map[int]dbRow{5: {"five", 0}, 2: {"two", 0}}}

	got, err := ReconcileMany(context.Background(), &Spec{Adapter: adapter}, []int{5, 2, 9})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int{2, 5, 9}, []int{got[0].ID, got[1].ID, got[2].ID})
}

func TestReconcileOne_Cached(t *testing.T) {
	adapter := &mockAdapter{name: "cached-test", db: map[int]dbRow{7: {"seven", 1}}}
	spec := &Spec{Adapter: adapter, CacheTTL: time.Minute}

	for i := 0; i < 3; i++ {
		got, err := ReconcileOne(context.Background(), spec, 7)
		require.NoError(t, err)
		assert.Equal(t, "seven", got.Name)
	}
	assert.Equal(t, int32(1), adapter.dbLoads.Load())
}

func TestReconcileOne_CachePerSpec(t *testing.T) {
	adapter := &mockAdapter{name: "per-spec", db: map[int]dbRow{7: {"seven", 1}}}
	first := &Spec{Adapter: adapter, CacheTTL: time.Minute}
	second := &Spec{Adapter: adapter, CacheTTL: time.Minute}

	_, err := ReconcileOne(context.Background(), first, 7)
	require.NoError(t, err)
	_, err = ReconcileOne(context.Background(), second, 7)
	require.NoError(t, err)
	_, err = ReconcileOne(context.Background(), first, 7)
	require.NoError(t, err)
	assert.Equal(t, int32(2), adapter.dbLoads.Load())
}

func TestCache_Singleflight(t *testing.T) {
	cache := NewCache[int]()
	var builds atomic.Int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := cache.GetOrBuild(context.Background(), "k", time.Minute, func(ctx context.Context) (int, error) {
				builds.Add(1)
				<-release
				return 42, nil
			})
			assert.NoError(t, err)
			assert.Equal(t, 42, v)
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, builds.Load(), int32(2))
	v, err := cache.GetOrBuild(context.Background(), "k", time.Minute, func(ctx context.Context) (int, error) {
		return 0, fmt.Errorf("must not rebuild")
	})
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestCache_ExpiryAndInvalidate(t *testing.T) {
	cache := NewCache[string]()
	calls := 0
	build := func(ctx context.Context) (string, error) {
		calls++
		return fmt.Sprintf("v%d", calls), nil
	}

	v, _ := cache.GetOrBuild(context.Background(), "k", 0, build)
	assert.Equal(t, "v1", v)
	v, _ = cache.GetOrBuild(context.Background(), "k", 0, build)
	assert.Equal(t, "v2", v, "zero ttl never serves from cache")

	v, _ = cache.GetOrBuild(context.Background(), "k", time.Hour, build)
	assert.Equal(t, "v3", v)
	cache.Invalidate("k")
	v, _ = cache.GetOrBuild(context.Background(), "k", time.Hour, build)
	assert.Equal(t, "v4", v)

	_, err := cache.GetOrBuild(context.Background(), "err", time.Hour, func(ctx context.Context) (string, error) {
		return "", fmt.Errorf("boom")
	})
	assert.EqualError(t, err, "boom")
}
