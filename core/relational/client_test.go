package relational

import (
	"context"
	"testing"

	"corpus-builder/core/backend"
	"corpus-builder/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const schemaSQL = `
CREATE TABLE items (
	id INTEGER PRIMARY KEY, name TEXT, description TEXT, price INTEGER, slot_max INTEGER,
	tradeable INTEGER, upgrade_slots INTEGER, req_level INTEGER, req_job INTEGER,
	quest INTEGER, cash INTEGER, is_unique INTEGER
);
CREATE TABLE item_stats (item_id INTEGER, stat TEXT, value INTEGER);
CREATE TABLE drop_data (
	dropperid INTEGER, itemid INTEGER, minimum_quantity INTEGER, maximum_quantity INTEGER,
	questid INTEGER, chance INTEGER
);`

// setupSQLite creates a seeded in-memory relational backend.
func setupSQLite(t *testing.T) *database.Handle {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec(schemaSQL).Error)

	seed := []string{
		`INSERT INTO items (id, name, description, price, slot_max, tradeable, req_level, req_job)
			VALUES (1002000, '파란 모자', 'A blue hat.', 100, 1, 1, 10, 0)`,
		`INSERT INTO items (id, name) VALUES (2000000, '빨간 포션')`,
		`INSERT INTO items (id, name) VALUES (2000001, '주황 포션')`,
		`INSERT INTO items (id, name) VALUES (4000000, '달팽이 껍질')`,
		`INSERT INTO item_stats VALUES (1002000, 'defense', 5), (1002000, 'str', 1)`,
		`INSERT INTO drop_data VALUES (100100, 0, 10, 10, 0, 500000), (100100, 4000000, 1, 1, 0, 600000),
			(100100, 2000000, 1, 3, 0, 1000), (100100, 2000001, 1, 1, 2001, 9000)`,
	}
	for _, stmt := range seed {
		require.NoError(t, db.Exec(stmt).Error)
	}

	h := database.NewHandleFromDB(db)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

// setupMockDB creates a mock GORM DB for testing failure paths.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestClient_Item(t *testing.T) {
	client := NewClient(setupSQLite(t))
	ctx := context.Background()

	row, err := client.Item(ctx, 1002000)
	require.NoError(t, err)
	assert.Equal(t, "파란 모자", row.Name.String)
	assert.Equal(t, int64(100), row.Price.Int64)
	assert.True(t, row.Tradeable.Valid)
	assert.True(t, row.Tradeable.Bool)
	assert.True(t, row.ReqJob.Valid, "zero job code is still present")
	assert.Equal(t, int64(0), row.ReqJob.Int64)
	assert.False(t, row.UpgradeSlots.Valid)

	_, err = client.Item(ctx, 9999999)
	assert.ErrorIs(t, err, backend.ErrNotFound)
}

func TestClient_GearStats(t *testing.T) {
	client := NewClient(setupSQLite(t))

	stats, err := client.GearStats(context.Background(), 1002000)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"defense": 5, "str": 1}, stats)

	stats, err = client.GearStats(context.Background(), 2000000)
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestClient_Drops(t *testing.T) {
	client := NewClient(setupSQLite(t))

	rows, err := client.Drops(context.Background(), 100100)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	// Ordered by descending chance
	assert.Equal(t, 4000000, rows[0].ItemID)
	assert.Equal(t, "달팽이 껍질", rows[0].Name.String)
	assert.Equal(t, 0, rows[1].ItemID)
	assert.False(t, rows[1].Name.Valid, "currency rows have no item name")
	assert.Equal(t, 2001, rows[2].QuestID)
	assert.Equal(t, 3, rows[3].MaxQty)
}

func TestClient_ListItemIDs(t *testing.T) {
	client := NewClient(setupSQLite(t))
	ctx := context.Background()

	ids, err := client.ListItemIDs(ctx, IDFilter{From: 2000000, To: 3000000})
	require.NoError(t, err)
	assert.Equal(t, []int{2000000, 2000001}, ids)

	ids, err = client.ListItemIDs(ctx, IDFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []int{1002000, 2000000}, ids)
}

func TestClient_QueryFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SELECT (.+) FROM `items`").WillReturnError(assert.AnError)
	mock.ExpectQuery("(?s)SELECT (.+) FROM drop_data").WillReturnError(assert.AnError)

	client := NewClient(database.NewHandleFromDB(db))

	_, err := client.Item(context.Background(), 1)
	assert.ErrorIs(t, err, backend.ErrUnavailable)

	_, err = client.Drops(context.Background(), 100100)
	assert.ErrorIs(t, err, backend.ErrUnavailable)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_ClosedHandle(t *testing.T) {
	h := setupSQLite(t)
	require.NoError(t, h.Close())

	_, err := NewClient(h).Item(context.Background(), 1002000)
	assert.ErrorIs(t, err, backend.ErrUnavailable)
}

func TestCheckSchema(t *testing.T) {
	h := setupSQLite(t)
	db, err := h.DB()
	require.NoError(t, err)

	report, err := CheckSchema(db)
	require.NoError(t, err)
	assert.Empty(t, report)

	require.NoError(t, db.Exec("DROP TABLE item_stats").Error)
	report, err = CheckSchema(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"item_id", "stat", "value"}, report["item_stats"])
}
