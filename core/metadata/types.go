package metadata

import (
	"gopkg.in/guregu/null.v3"
)

// Kind selects the entity collection of a search.
type Kind string

const (
	KindMap     Kind = "map"
	KindMonster Kind = "mob"
	KindItem    Kind = "item"
)

// TypeInfo is the classification triplet the backend attaches to items.
type TypeInfo struct {
	OverallCategory string `json:"overallCategory"`
	Category        string `json:"category"`
	SubCategory     string `json:"subCategory"`
}

// Map is the detail response for a map.
type Map struct {
	ID              int         `json:"id"`
	Name            null.String `json:"name"`
	StreetName      null.String `json:"streetName"`
	IsTown          null.Bool   `json:"isTown"`
	BackgroundMusic null.String `json:"backgroundMusic"`
	// Mobs lists one entry per spawn point, so a monster repeats once per occurrence.
	Mobs []MapMob `json:"mobs"`
}

// MapMob is a single spawn point on a map.
type MapMob struct {
	ID int `json:"id"`
}

// Monster is the detail response for a monster.
type Monster struct {
	ID          int         `json:"id"`
	Name        null.String `json:"name"`
	Description null.String `json:"description"`
	Meta        MonsterMeta `json:"meta"`
	FoundAt     []int       `json:"foundAt"`
}

// MonsterMeta holds the stat block of a monster.
type MonsterMeta struct {
	Level           null.Int  `json:"level"`
	MaxHP           null.Int  `json:"maxHP"`
	MaxMP           null.Int  `json:"maxMP"`
	PhysicalDamage  null.Int  `json:"physicalDamage"`
	MagicDamage     null.Int  `json:"magicDamage"`
	PhysicalDefense null.Int  `json:"physicalDefense"`
	MagicDefense    null.Int  `json:"magicDefense"`
	Accuracy        null.Int  `json:"accuracy"`
	Evasion         null.Int  `json:"evasion"`
	Speed           null.Int  `json:"speed"`
	Exp             null.Int  `json:"exp"`
	IsBodyAttack    null.Bool `json:"isBodyAttack"`
}

// Item is the detail response for an item.
type Item struct {
	ID          int             `json:"id"`
	Description ItemDescription `json:"description"`
	MetaInfo    ItemMeta        `json:"metaInfo"`
	TypeInfo    *TypeInfo       `json:"typeInfo"`
}

// ItemDescription carries the English strings of an item.
type ItemDescription struct {
	Name        null.String `json:"name"`
	Description null.String `json:"description"`
}

// ItemMeta holds the attribute block of an item.
type ItemMeta struct {
	Price      null.Int  `json:"price"`
	SlotMax    null.Int  `json:"slotMax"`
	TUC        null.Int  `json:"tuc"`
	ReqLevel   null.Int  `json:"reqLevel"`
	ReqJob     null.Int  `json:"reqJob"`
	Only       null.Bool `json:"only"`
	Quest      null.Bool `json:"quest"`
	Cash       null.Bool `json:"cash"`
	NotSale    null.Bool `json:"notSale"`
	TradeBlock null.Bool `json:"tradeBlock"`

	IncSTR   null.Int `json:"incSTR"`
	IncDEX   null.Int `json:"incDEX"`
	IncINT   null.Int `json:"incINT"`
	IncLUK   null.Int `json:"incLUK"`
	IncMHP   null.Int `json:"incMHP"`
	IncMMP   null.Int `json:"incMMP"`
	IncPAD   null.Int `json:"incPAD"`
	IncMAD   null.Int `json:"incMAD"`
	IncPDD   null.Int `json:"incPDD"`
	IncMDD   null.Int `json:"incMDD"`
	IncACC   null.Int `json:"incACC"`
	IncEVA   null.Int `json:"incEVA"`
	IncSpeed null.Int `json:"incSpeed"`
	IncJump  null.Int `json:"incJump"`
}

// Stats returns the gear stat fields keyed by their corpus names.
func (m ItemMeta) Stats() map[string]null.Int {
	return map[string]null.Int{
		"str":          m.IncSTR,
		"dex":          m.IncDEX,
		"int":          m.IncINT,
		"luk":          m.IncLUK,
		"hp":           m.IncMHP,
		"mp":           m.IncMMP,
		"attack":       m.IncPAD,
		"magicAttack":  m.IncMAD,
		"defense":      m.IncPDD,
		"magicDefense": m.IncMDD,
		"accuracy":     m.IncACC,
		"avoidability": m.IncEVA,
		"speed":        m.IncSpeed,
		"jump":         m.IncJump,
	}
}

// Summary is a single search hit.
type Summary struct {
	ID         int         `json:"id"`
	Name       null.String `json:"name"`
	StreetName null.String `json:"streetName"`
}
