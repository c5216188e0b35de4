package relational

import (
	"context"
	"errors"
	"fmt"

	"corpus-builder/core/backend"
	"corpus-builder/core/database"

	"gorm.io/gorm"
)

// Client is the relational backend.
type Client interface {
	// Item looks up item master data by ID.
	Item(ctx context.Context, id int) (*ItemRow, error)
	// GearStats returns the stat table of a gear item; empty when it has none.
	GearStats(ctx context.Context, id int) (map[string]int, error)
	// Drops returns the drop rows of a monster ordered by descending raw chance.
	Drops(ctx context.Context, dropperID int) ([]DropRow, error)
	// ListItemIDs returns item IDs matching the filter in ascending order.
	ListItemIDs(ctx context.Context, filter IDFilter) ([]int, error)
}

// expectedSchema lists the columns each query depends on.
var expectedSchema = map[string][]string{
	"items":      {"id", "name", "description", "price", "slot_max", "tradeable", "upgrade_slots", "req_level", "req_job", "quest", "cash", "is_unique"},
	"item_stats": {"item_id", "stat", "value"},
	"drop_data":  {"dropperid", "itemid", "minimum_quantity", "maximum_quantity", "questid", "chance"},
}

const dropsQuery = `SELECT d.itemid AS item_id, d.minimum_quantity AS min_qty, d.maximum_quantity AS max_qty,
	d.questid AS quest_id, d.chance AS chance, i.name AS name
	FROM drop_data d LEFT JOIN items i ON i.id = d.itemid
	WHERE d.dropperid = ? ORDER BY d.chance DESC`

type gormClient struct {
	handle *database.Handle
}

// NewClient creates a relational client on top of the run's connection handle.
func NewClient(handle *database.Handle) Client {
	return &gormClient{handle: handle}
}

func (c *gormClient) db(ctx context.Context) (*gorm.DB, error) {
	db, err := c.handle.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", backend.ErrUnavailable, err)
	}
	return db.WithContext(ctx), nil
}

func (c *gormClient) Item(ctx context.Context, id int) (*ItemRow, error) {
	db, err := c.db(ctx)
	if err != nil {
		return nil, err
	}

	var row ItemRow
	if err := db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item %d: %w", id, backend.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: item %d: %v", backend.ErrUnavailable, id, err)
	}
	return &row, nil
}

func (c *gormClient) GearStats(ctx context.Context, id int) (map[string]int, error) {
	db, err := c.db(ctx)
	if err != nil {
		return nil, err
	}

	var rows []StatRow
	if err := db.Where("item_id = ?", id).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: stats of item %d: %v", backend.ErrUnavailable, id, err)
	}

	stats := make(map[string]int, len(rows))
	for _, r := range rows {
		stats[r.Stat] = r.Value
	}
	return stats, nil
}

func (c *gormClient) Drops(ctx context.Context, dropperID int) ([]DropRow, error) {
	db, err := c.db(ctx)
	if err != nil {
		return nil, err
	}

	var rows []DropRow
	if err := db.Raw(dropsQuery, dropperID).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: drops of %d: %v", backend.ErrUnavailable, dropperID, err)
	}
	return rows, nil
}

func (c *gormClient) ListItemIDs(ctx context.Context, filter IDFilter) ([]int, error) {
	db, err := c.db(ctx)
	if err != nil {
		return nil, err
	}

	q := db.Model(&ItemRow{})
	if filter.From > 0 {
		q = q.Where("id >= ?", filter.From)
	}
	if filter.To > 0 {
		q = q.Where("id < ?", filter.To)
	}
	q = q.Order("id")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var ids []int
	if err := q.Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("%w: listing items: %v", backend.ErrUnavailable, err)
	}
	return ids, nil
}

// CheckSchema reports, per table, the expected columns the backend lacks.
// An empty map means every query can run.
func CheckSchema(db *gorm.DB) (map[string][]string, error) {
	report := make(map[string][]string)
	for table, columns := range expectedSchema {
		missing, err := database.MissingColumns(db, table, columns)
		if err != nil {
			return nil, err
		}
		if len(missing) > 0 {
			report[table] = missing
		}
	}
	return report, nil
}
