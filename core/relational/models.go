package relational

import (
	"gopkg.in/guregu/null.v3"
)

// ItemRow is a row of the item master table.
// Nullable columns stay invalid when the backend has no value.
type ItemRow struct {
	ID           int         `gorm:"column:id;primaryKey"`
	Name         null.String `gorm:"column:name"`
	Description  null.String `gorm:"column:description"`
	Price        null.Int    `gorm:"column:price"`
	SlotMax      null.Int    `gorm:"column:slot_max"`
	Tradeable    null.Bool   `gorm:"column:tradeable"`
	UpgradeSlots null.Int    `gorm:"column:upgrade_slots"`
	ReqLevel     null.Int    `gorm:"column:req_level"`
	ReqJob       null.Int    `gorm:"column:req_job"`
	Quest        null.Bool   `gorm:"column:quest"`
	Cash         null.Bool   `gorm:"column:cash"`
	Only         null.Bool   `gorm:"column:is_unique"`
}

// TableName overrides the table name.
func (ItemRow) TableName() string {
	return "items"
}

// StatRow is one stat of a gear item.
type StatRow struct {
	ItemID int    `gorm:"column:item_id"`
	Stat   string `gorm:"column:stat"`
	Value  int    `gorm:"column:value"`
}

// TableName overrides the table name.
func (StatRow) TableName() string {
	return "item_stats"
}

// DropRow is a drop_data row joined to the localized item name.
type DropRow struct {
	ItemID  int         `gorm:"column:item_id"`
	MinQty  int         `gorm:"column:min_qty"`
	MaxQty  int         `gorm:"column:max_qty"`
	QuestID int         `gorm:"column:quest_id"`
	Chance  int         `gorm:"column:chance"`
	Name    null.String `gorm:"column:name"`
}

// IDFilter narrows an ID listing. To is exclusive; zero values disable a bound.
type IDFilter struct {
	From  int
	To    int
	Limit int
}
