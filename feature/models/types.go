package models

import "fmt"

// ItemType is the closed set of item types.
type ItemType string

const (
	TypeGear        ItemType = "gear"
	TypeConsumable  ItemType = "consumable"
	TypeInstallable ItemType = "installable"
	TypeMisc        ItemType = "misc"
	TypePremium     ItemType = "premium"
)

// ItemTypes lists every item type in band order.
var ItemTypes = []ItemType{TypeGear, TypeConsumable, TypeInstallable, TypeMisc, TypePremium}

// ParseItemType validates a type name.
func ParseItemType(s string) (ItemType, error) {
	for _, t := range ItemTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown item type %q", s)
}
