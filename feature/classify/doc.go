/*
Package classify resolves item classifications and boss membership.

Classify takes the classification triplet reported by the metadata backend
(overall category, category, subcategory) and maps it onto the five corpus
item types with a category, optional subcategory and equip slot. When the
backend has no triplet, the numeric ID decides:

	[0, 1e6)      misc / other
	[1e6, 2e6)    gear (slot from the ten-thousand prefix)
	[2e6, 3e6)    consumable
	[3e6, 4e6)    installable
	[4e6, 5e6)    misc
	[5e6, 6e6)    premium
	>= 6e6        misc / other

Every result carries its Source so callers can count ID-band guesses.
Classify never returns an error: gaps in the tables fall back to "other"
or "accessory" so a record can always be written.
*/
package classify
