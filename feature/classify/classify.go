package classify

import (
	"strings"

	"corpus-builder/core/metadata"
	"corpus-builder/core/utils"
	"corpus-builder/feature/models"
)

const (
	categoryOther     = "other"
	categoryWeapon    = "weapon"
	categorySecondary = "secondary"
	categoryAccessory = "accessory"
)

var overallTypes = map[string]models.ItemType{
	"equip": models.TypeGear,
	"use":   models.TypeConsumable,
	"setup": models.TypeInstallable,
	"etc":   models.TypeMisc,
	"cash":  models.TypePremium,
}

// gearRule maps a subcategory fragment to a category and slot.
type gearRule struct {
	match    string
	category string
	slot     string
}

// Rules are evaluated in order; the first exact match wins, then the first substring match.
var armorRules = []gearRule{
	{"hat", "hat", "hat"},
	{"overall", "overall", "overall"},
	{"top", "top", "top"},
	{"bottom", "bottom", "bottom"},
	{"shoes", "shoes", "shoes"},
	{"glove", "gloves", "gloves"},
	{"shield", categorySecondary, categorySecondary},
	{"cape", "cape", "cape"},
}

var accessoryRules = []gearRule{
	{"ring", "ring", "ring"},
	{"pendant", "pendant", "pendant"},
	{"belt", "belt", "belt"},
	{"medal", "medal", "medal"},
	{"face", "face", "face"},
	{"eye", "eye", "eye"},
	{"earring", "earrings", "earrings"},
	{"shoulder", "shoulder", "shoulder"},
	{"badge", "badge", "badge"},
}

// Classify resolves an item's classification. meta may be nil, in which case the ID
// bands decide. Classify never fails; unknown input yields an "other" or "accessory" default.
func Classify(id int, meta *metadata.TypeInfo) Classification {
	if meta == nil {
		return byID(id)
	}
	typ, ok := overallTypes[strings.ToLower(strings.TrimSpace(meta.OverallCategory))]
	if !ok {
		return byID(id)
	}
	if typ == models.TypeGear {
		c := classifyGear(meta.Category, meta.SubCategory)
		c.Source = SourceMetadata
		return c
	}
	category := utils.Slug(meta.Category)
	if category == "" {
		category = categoryOther
	}
	return Classification{
		Type:        typ,
		Category:    category,
		Subcategory: utils.Slug(meta.SubCategory),
		Source:      SourceMetadata,
	}
}

func classifyGear(category, subcategory string) Classification {
	c := Classification{Type: models.TypeGear}
	cat := strings.TrimSpace(category)

	switch {
	case strings.EqualFold(cat, "Secondary Weapon"):
		c.Category, c.Slot = categorySecondary, categorySecondary
		c.Subcategory = utils.Slug(subcategory)
		return c
	case strings.Contains(strings.ToLower(cat), categoryWeapon):
		c.Category, c.Slot = categoryWeapon, categoryWeapon
		c.Subcategory = utils.Slug(subcategory)
		return c
	}

	rules := accessoryRules
	if strings.EqualFold(cat, "Armor") {
		rules = armorRules
	}
	if rule, ok := matchRule(rules, subcategory); ok {
		c.Category, c.Slot = rule.category, rule.slot
		return c
	}

	c.Category, c.Slot = categoryAccessory, categoryAccessory
	c.Subcategory = utils.Slug(subcategory)
	return c
}

func matchRule(rules []gearRule, subcategory string) (gearRule, bool) {
	sub := strings.ToLower(strings.TrimSpace(subcategory))
	if sub == "" {
		return gearRule{}, false
	}
	for _, r := range rules {
		if sub == r.match {
			return r, true
		}
	}
	for _, r := range rules {
		if strings.Contains(sub, r.match) {
			return r, true
		}
	}
	return gearRule{}, false
}

// byID classifies from the million-wide ID bands.
func byID(id int) Classification {
	c := Classification{Source: SourceIDRange}
	switch band := id / 1_000_000; {
	case id < 0 || band == 0 || band >= 6:
		c.Type, c.Category = models.TypeMisc, categoryOther
	case band == 1:
		c.Type = models.TypeGear
		c.Category, c.Subcategory, c.Slot = gearSlot(id)
	default:
		c.Type = models.ItemTypes[band-1]
		c.Category = categoryOther
	}
	return c
}

// gearSlot maps the ten-thousand-wide prefix of a gear ID.
func gearSlot(id int) (category, subcategory, slot string) {
	switch prefix := id / 10_000; {
	case prefix >= 100 && prefix <= 104:
		return "hat", "", "hat"
	case prefix == 105:
		return "overall", "", "overall"
	case prefix == 106:
		return "bottom", "", "bottom"
	case prefix == 107:
		return "shoes", "", "shoes"
	case prefix == 108:
		return "gloves", "", "gloves"
	case prefix == 109:
		return categorySecondary, "shield", categorySecondary
	case prefix == 110:
		return "cape", "", "cape"
	case prefix == 111:
		return "ring", "", "ring"
	case prefix == 112:
		return "pendant", "", "pendant"
	case prefix == 113:
		return "belt", "", "belt"
	case prefix == 114:
		return "medal", "", "medal"
	case prefix >= 130 && prefix <= 170:
		return categoryWeapon, "", categoryWeapon
	default:
		return categoryAccessory, "", categoryAccessory
	}
}
