package models

// Record is implemented by every persisted entity.
type Record interface {
	// Key returns the numeric identifier of the record.
	Key() int
	// Naming exposes the names for filename derivation and name preservation.
	Naming() *Names
}

// Map is the corpus record of a map.
type Map struct {
	ID int `json:"id"`
	Names
	StreetName string      `json:"streetName,omitempty"`
	Region     string      `json:"region"`
	IsTown     bool        `json:"isTown"`
	BGM        string      `json:"bgm,omitempty"`
	Spawns     []Spawn     `json:"spawns"`
	LevelRange *LevelRange `json:"levelRange,omitempty"`
}

// Spawn is one row of a map's spawn table.
type Spawn struct {
	MonsterID int `json:"monsterId"`
	// Weight is the rounded percentage of observed spawn points.
	Weight int `json:"weight"`
}

// LevelRange is a recommended character level band.
type LevelRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (m *Map) Key() int       { return m.ID }
func (m *Map) Naming() *Names { return &m.Names }

// MonsterIDs returns the monsters of the spawn table in table order.
func (m *Map) MonsterIDs() []int {
	ids := make([]int, 0, len(m.Spawns))
	for _, s := range m.Spawns {
		ids = append(ids, s.MonsterID)
	}
	return ids
}

// Monster is the corpus record of a monster.
type Monster struct {
	ID int `json:"id"`
	Names
	Stats       MonsterStats `json:"stats"`
	IsBoss      bool         `json:"isBoss"`
	BodyAttack  bool         `json:"bodyAttack"`
	CanJump     *bool        `json:"canJump,omitempty"`
	Description string       `json:"description,omitempty"`
	Meso        *Meso        `json:"meso,omitempty"`
	Drops       []Drop       `json:"drops"`
	FoundAt     []int        `json:"foundAt,omitempty"`
}

// MonsterStats is the stat block of a monster.
type MonsterStats struct {
	Level        int `json:"level"`
	HP           int `json:"hp"`
	MP           int `json:"mp"`
	Attack       int `json:"attack"`
	MagicAttack  int `json:"magicAttack"`
	Defense      int `json:"defense"`
	MagicDefense int `json:"magicDefense"`
	Accuracy     int `json:"accuracy"`
	Evasion      int `json:"evasion"`
	Speed        int `json:"speed"`
	Exp          int `json:"exp"`
}

// Meso describes a currency drop.
type Meso struct {
	Amount int `json:"amount"`
	// Chance is an integer percentage.
	Chance int `json:"chance"`
}

// Drop is one droppable item.
type Drop struct {
	ItemID int    `json:"itemId"`
	Name   string `json:"name"`
	// Chance is a percentage with up to three decimals.
	Chance float64   `json:"chance"`
	Qty    *Quantity `json:"qty,omitempty"`
}

// Quantity bounds a drop stack.
type Quantity struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (m *Monster) Key() int       { return m.ID }
func (m *Monster) Naming() *Names { return &m.Names }

// DropItemIDs returns the item IDs of the drop list in list order.
func (m *Monster) DropItemIDs() []int {
	ids := make([]int, 0, len(m.Drops))
	for _, d := range m.Drops {
		ids = append(ids, d.ItemID)
	}
	return ids
}

// Item is the corpus record of an item.
type Item struct {
	ID int `json:"id"`
	Names
	Description  string             `json:"description"`
	Type         ItemType           `json:"type"`
	Category     string             `json:"category"`
	Subcategory  string             `json:"subcategory,omitempty"`
	Slot         string             `json:"slot,omitempty"`
	Rarity       string             `json:"rarity"`
	Price        int                `json:"price"`
	Sellable     bool               `json:"sellable"`
	Tradeable    bool               `json:"tradeable"`
	StackSize    int                `json:"stackSize"`
	UpgradeSlots *int               `json:"upgradeSlots,omitempty"`
	ReqLevel     *int               `json:"reqLevel,omitempty"`
	ReqJob       *int               `json:"reqJob,omitempty"`
	Unique       bool               `json:"unique,omitempty"`
	Quest        bool               `json:"quest,omitempty"`
	Cash         bool               `json:"cash,omitempty"`
	Stats        map[string]int     `json:"stats,omitempty"`
	Effects      map[string]float64 `json:"effects,omitempty"`
	Icon         string             `json:"icon"`
}

// RarityCommon is the only rarity the corpus assigns today.
const RarityCommon = "common"

func (i *Item) Key() int       { return i.ID }
func (i *Item) Naming() *Names { return &i.Names }
