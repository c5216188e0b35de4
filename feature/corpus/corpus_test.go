package corpus

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"corpus-builder/feature/models"
	"corpus-builder/feature/persist"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedStore(t *testing.T) *persist.Store {
	t.Helper()
	store := persist.NewStore(t.TempDir(), persist.Options{}, zap.NewNop())

	_, err := store.WriteMap(&models.Map{ID: 100000000, Names: models.NewNames("Henesys", "")})
	require.NoError(t, err)
	_, err = store.WriteItem(&models.Item{ID: 4000000, Names: models.NewNames("Snail Shell", ""), Type: models.TypeMisc})
	require.NoError(t, err)
	_, err = store.WriteMonster(&models.Monster{
		ID:    100100,
		Names: models.NewNames("Snail", ""),
		Drops: []models.Drop{{ItemID: 4000000, Name: "Snail Shell", Chance: 60}},
	})
	require.NoError(t, err)
	_, err = store.WriteMonster(&models.Monster{
		ID:    100101,
		Names: models.NewNames("Blue Snail", ""),
		Drops: []models.Drop{{ItemID: 4000000, Name: "Snail Shell", Chance: 75}},
	})
	require.NoError(t, err)
	return store
}

func setupTestApp(t *testing.T, store *persist.Store, ttl time.Duration) *fiber.App {
	app := fiber.New()
	require.NoError(t, NewFeature(store, ttl, zap.NewNop()).Load(app))
	return app
}

func get(t *testing.T, app *fiber.App, target string, out any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestFeature(t *testing.T) {
	feature := NewFeature(seedStore(t), 0, zap.NewNop())
	assert.Equal(t, "corpus", feature.Name())
	assert.True(t, feature.IsEnabled())
}

func TestHandleRecords(t *testing.T) {
	app := setupTestApp(t, seedStore(t), time.Minute)

	var m models.Map
	assert.Equal(t, 200, get(t, app, "/maps/100000000", &m))
	assert.Equal(t, "Henesys", m.Name)

	var mob models.Monster
	assert.Equal(t, 200, get(t, app, "/monsters/100100", &mob))
	assert.Equal(t, "Snail", mob.Name)
	require.Len(t, mob.Drops, 1)

	var item models.Item
	assert.Equal(t, 200, get(t, app, "/items/4000000", &item))
	assert.Equal(t, models.TypeMisc, item.Type)

	assert.Equal(t, 404, get(t, app, "/items/4000001", nil))
	assert.Equal(t, 400, get(t, app, "/maps/abc", nil))
}

func TestHandleList(t *testing.T) {
	app := setupTestApp(t, seedStore(t), time.Minute)

	var body struct {
		IDs   []int `json:"ids"`
		Count int   `json:"count"`
	}
	assert.Equal(t, 200, get(t, app, "/monsters", &body))
	assert.Equal(t, []int{100100, 100101}, body.IDs)
	assert.Equal(t, 2, body.Count)
}

func TestHandleDroppers(t *testing.T) {
	app := setupTestApp(t, seedStore(t), time.Minute)

	var droppers []Dropper
	assert.Equal(t, 200, get(t, app, "/items/4000000/droppers", &droppers))
	assert.Equal(t, []Dropper{
		{MonsterID: 100101, Name: "Blue Snail", Chance: 75},
		{MonsterID: 100100, Name: "Snail", Chance: 60},
	}, droppers)

	var none []Dropper
	assert.Equal(t, 200, get(t, app, "/items/2000000/droppers", &none))
	assert.Empty(t, none)
}

func TestHandleSummary_Cached(t *testing.T) {
	store := seedStore(t)
	app := setupTestApp(t, store, time.Hour)

	var counts persist.Counts
	assert.Equal(t, 200, get(t, app, "/summary", &counts))
	assert.Equal(t, 1, counts.Maps)
	assert.Equal(t, 2, counts.Monsters)
	assert.Equal(t, 1, counts.Items[models.TypeMisc])

	_, err := store.WriteMap(&models.Map{ID: 104000000, Names: models.NewNames("Lith Harbor", "")})
	require.NoError(t, err)

	assert.Equal(t, 200, get(t, app, "/summary", &counts))
	assert.Equal(t, 1, counts.Maps, "summary served from cache")

	resp, err := app.Test(httptest.NewRequest("POST", "/summary/refresh", nil))
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)

	assert.Equal(t, 200, get(t, app, "/summary", &counts))
	assert.Equal(t, 2, counts.Maps)
}
