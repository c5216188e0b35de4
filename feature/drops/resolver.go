package drops

import (
	"math"
	"sort"

	"corpus-builder/core/relational"
	"corpus-builder/feature/models"
)

// chanceScale is the denominator of raw drop chances.
const chanceScale = 1_000_000

// Result is a resolved drop table.
type Result struct {
	Drops []models.Drop
	Meso  *models.Meso
	// DiscardedMeso counts currency rows overwritten by a later one.
	DiscardedMeso int
	// QuestGated counts rows dropped because they require a quest.
	QuestGated int
}

// Resolve partitions raw drop rows into item drops and a currency descriptor.
// Rows are processed by descending chance; when several currency rows exist the last
// one processed wins.
func Resolve(rows []relational.DropRow) Result {
	ordered := make([]relational.DropRow, len(rows))
	copy(ordered, rows)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Chance > ordered[j].Chance })

	res := Result{Drops: []models.Drop{}}
	for _, row := range ordered {
		if row.ItemID == 0 {
			if res.Meso != nil {
				res.DiscardedMeso++
			}
			res.Meso = &models.Meso{
				Amount: int(math.Round(float64(row.MinQty+row.MaxQty) / 2)),
				Chance: int(math.Round(Percent(row.Chance))),
			}
			continue
		}
		if row.QuestID > 0 {
			res.QuestGated++
			continue
		}

		drop := models.Drop{
			ItemID: row.ItemID,
			Name:   row.Name.String,
			Chance: ChancePercent(row.Chance),
		}
		if row.MinQty != 1 || row.MaxQty != 1 {
			drop.Qty = &models.Quantity{Min: row.MinQty, Max: row.MaxQty}
		}
		res.Drops = append(res.Drops, drop)
	}
	return res
}

// Percent converts a raw chance into an unrounded percentage.
func Percent(raw int) float64 {
	return float64(raw) / chanceScale * 100
}

// ChancePercent converts a raw chance into a percentage rounded to three decimals,
// clamped to [0, 100].
func ChancePercent(raw int) float64 {
	// raw/1e6*100 scaled by 1000 is raw/10, which keeps the rounding exact.
	p := math.Round(float64(raw)/10) / 1000
	return math.Max(0, math.Min(100, p))
}
