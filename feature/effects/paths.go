package effects

import (
	"fmt"

	"corpus-builder/feature/classify"
	"corpus-builder/feature/models"
)

var itemDirs = map[models.ItemType]string{
	models.TypeConsumable:  "Consume",
	models.TypeInstallable: "Install",
	models.TypeMisc:        "Etc",
	models.TypePremium:     "Cash",
}

var gearDirs = map[string]string{
	"hat":       "Cap",
	"overall":   "Longcoat",
	"top":       "Coat",
	"bottom":    "Pants",
	"shoes":     "Shoes",
	"gloves":    "Glove",
	"secondary": "Shield",
	"cape":      "Cape",
	"weapon":    "Weapon",
}

// ItemPath returns the tree path of any item node given its classification.
func ItemPath(itemID int, c classify.Classification) string {
	if c.Type == models.TypeGear {
		dir, ok := gearDirs[c.Slot]
		if !ok {
			dir = "Accessory"
		}
		return fmt.Sprintf("Character/%s/%08d.img", dir, itemID)
	}
	dir, ok := itemDirs[c.Type]
	if !ok {
		dir = "Etc"
	}
	return fmt.Sprintf("Item/%s/%04d.img/%08d", dir, itemID/10000, itemID)
}

// MonsterPath returns the tree path of a monster's animation node.
func MonsterPath(monsterID int) string {
	return fmt.Sprintf("Mob/%07d.img", monsterID)
}
