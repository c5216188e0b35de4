package persist

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"corpus-builder/feature/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T, opts Options) *Store {
	t.Helper()
	return NewStore(t.TempDir(), opts, zap.NewNop())
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "blue-sneaker-s", Sanitize("Blue Sneaker's!!"))
	assert.Equal(t, "unknown", Sanitize(""))
	assert.Equal(t, "unknown", Sanitize("달팽이"))
	assert.Equal(t, "orange-mushroom", Sanitize("  Orange   Mushroom "))
}

func TestFileName_Safety(t *testing.T) {
	names := []string{"Blue Sneaker's!!", "", "../../etc/passwd", "Zakum (Arm 1)", "Crème Brûlée", "a/b\\c", "...", "ÆØÅ"}
	for i, name := range names {
		id := 1000 + i
		got := FileName(id, name)
		pattern := regexp.MustCompile(fmt.Sprintf(`^%d_[a-z0-9-]+\.json$`, id))
		assert.Regexp(t, pattern, got, "name %q", name)

		parsed, ok := ParseFileName(got)
		assert.True(t, ok)
		assert.Equal(t, id, parsed)
	}
}

func TestStore_WriteItem_Layout(t *testing.T) {
	store := newTestStore(t, Options{})
	item := &models.Item{ID: 1072001, Names: models.NewNames("Blue Sneaker's!!", "Blue Sneaker's!!"), Type: models.TypeGear}

	path, err := store.WriteItem(item)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(store.Root(), "items", "gear", "1072001_blue-sneaker-s.json"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  \"id\": 1072001,\n")
	assert.Equal(t, byte('\n'), raw[len(raw)-1])

	_, err = store.WriteItem(&models.Item{ID: 1})
	assert.Error(t, err, "untyped items have no directory")
}

func TestStore_NamePreservation(t *testing.T) {
	store := newTestStore(t, Options{})
	first := &models.Monster{ID: 100100, Names: models.NewNames("Snail", "Snail")}
	path, err := store.WriteMonster(first)
	require.NoError(t, err)

	// A translator edits the canonical name by hand.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	edited := regexp.MustCompile(`"name": "Snail"`).ReplaceAll(raw, []byte(`"name": "달팽이"`))
	require.NoError(t, os.WriteFile(path, edited, 0o644))

	second := &models.Monster{ID: 100100, Names: models.NewNames("Snail", "Snail")}
	_, err = store.WriteMonster(second)
	require.NoError(t, err)
	assert.Equal(t, models.Names{Name: "달팽이", NameEn: "Snail"}, second.Names)

	got, ok := store.ReadMonster(100100)
	require.True(t, ok)
	assert.Equal(t, "달팽이", got.Name)
	assert.Equal(t, "Snail", got.NameEn)

	overwrite := NewStore(store.Root(), Options{OverwriteNames: true}, zap.NewNop())
	third := &models.Monster{ID: 100100, Names: models.NewNames("Snail", "Snail")}
	_, err = overwrite.WriteMonster(third)
	require.NoError(t, err)
	got, ok = store.ReadMonster(100100)
	require.True(t, ok)
	assert.Equal(t, "Snail", got.Name)
	assert.Empty(t, got.NameEn)
}

func TestStore_Idempotent(t *testing.T) {
	store := newTestStore(t, Options{})
	build := func() *models.Item {
		job := 0
		return &models.Item{
			ID: 2000000, Names: models.NewNames("빨간 포션", "Red Potion"), Type: models.TypeConsumable,
			Category: "potion", Rarity: models.RarityCommon, StackSize: 100, ReqJob: &job,
			Effects: map[string]float64{"hp": 50, "time": 0}, Icon: "icon://2000000",
		}
	}

	path, err := store.WriteItem(build())
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	path2, err := store.WriteItem(build())
	require.NoError(t, err)
	second, err := os.ReadFile(path2)
	require.NoError(t, err)

	assert.Equal(t, path, path2)
	assert.Equal(t, string(first), string(second))
}

func TestStore_MalformedPrior(t *testing.T) {
	store := newTestStore(t, Options{})
	dir := filepath.Join(store.Root(), "maps")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "104010001_henesys-hunting-ground-i.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, ok := store.ReadMap(104010001)
	assert.False(t, ok)

	m := &models.Map{ID: 104010001, Names: models.NewNames("Henesys Hunting Ground I", "Henesys Hunting Ground I"), Spawns: []models.Spawn{}}
	written, err := store.WriteMap(m)
	require.NoError(t, err)
	assert.Equal(t, path, written)
	assert.Equal(t, "Henesys Hunting Ground I", m.Name)

	got, ok := store.ReadMap(104010001)
	require.True(t, ok)
	assert.Equal(t, m.Name, got.Name)
}

func TestStore_RemovesStaleNames(t *testing.T) {
	store := newTestStore(t, Options{OverwriteNames: true})
	_, err := store.WriteMonster(&models.Monster{ID: 9, Names: models.NewNames("Old Name", "Old Name")})
	require.NoError(t, err)
	_, err = store.WriteMonster(&models.Monster{ID: 90, Names: models.NewNames("Other", "Other")})
	require.NoError(t, err)
	path, err := store.WriteMonster(&models.Monster{ID: 9, Names: models.NewNames("New Name", "New Name")})
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(store.Root(), "monsters", "9_*.json"))
	require.NoError(t, err)
	assert.Equal(t, []string{path}, matches)
	_, ok := store.FindMonster(90)
	assert.True(t, ok, "a different id sharing the prefix is kept")
}

func TestStore_WriteItem_Retyped(t *testing.T) {
	store := newTestStore(t, Options{})
	_, err := store.WriteItem(&models.Item{ID: 4000000, Names: models.NewNames("Snail Shell", ""), Type: models.TypeMisc})
	require.NoError(t, err)
	_, err = store.WriteItem(&models.Item{ID: 4000001, Names: models.NewNames("Blue Shell", ""), Type: models.TypeMisc})
	require.NoError(t, err)

	path, err := store.WriteItem(&models.Item{ID: 4000000, Names: models.NewNames("Snail Shell", ""), Type: models.TypePremium})
	require.NoError(t, err)

	found, ok := store.FindItem(4000000)
	require.True(t, ok)
	assert.Equal(t, path, found)
	item, ok := store.ReadItem(4000000)
	require.True(t, ok)
	assert.Equal(t, models.TypePremium, item.Type)

	counts, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Items[models.TypePremium])
	assert.Equal(t, 1, counts.Items[models.TypeMisc], "only the other item stays in misc")
}

func TestStore_Count(t *testing.T) {
	store := newTestStore(t, Options{})
	counts, err := store.Count()
	require.NoError(t, err)
	assert.Zero(t, counts.Maps)

	_, err = store.WriteItem(&models.Item{ID: 4000000, Names: models.NewNames("Snail Shell", ""), Type: models.TypeMisc})
	require.NoError(t, err)
	_, err = store.WriteMap(&models.Map{ID: 1, Names: models.NewNames("A", "")})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(store.Root(), "maps", "notes.txt"), []byte("x"), 0o644))

	counts, err = store.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Maps)
	assert.Equal(t, 1, counts.Items[models.TypeMisc])
	assert.Zero(t, counts.Items[models.TypeGear])

	_, ok := store.FindItem(4000000)
	assert.True(t, ok)
	_, ok = store.ReadItem(4000001)
	assert.False(t, ok)
}

func TestStore_List(t *testing.T) {
	store := newTestStore(t, Options{})
	ids, err := store.List(KindMonster)
	require.NoError(t, err)
	assert.Empty(t, ids)

	for _, item := range []*models.Item{
		{ID: 4000000, Names: models.NewNames("Snail Shell", ""), Type: models.TypeMisc},
		{ID: 1302000, Names: models.NewNames("Sword", ""), Type: models.TypeGear},
		{ID: 2000000, Names: models.NewNames("Red Potion", ""), Type: models.TypeConsumable},
	} {
		_, err := store.WriteItem(item)
		require.NoError(t, err)
	}
	_, err = store.WriteMonster(&models.Monster{ID: 100100, Names: models.NewNames("Snail", "")})
	require.NoError(t, err)

	ids, err = store.List(KindItem)
	require.NoError(t, err)
	assert.Equal(t, []int{1302000, 2000000, 4000000}, ids)

	ids, err = store.List(KindMonster)
	require.NoError(t, err)
	assert.Equal(t, []int{100100}, ids)
}
