package classify

import "corpus-builder/feature/models"

// Source records which path produced a classification.
type Source string

const (
	// SourceMetadata marks a classification confirmed by the metadata backend.
	SourceMetadata Source = "metadata"
	// SourceIDRange marks a classification guessed from the numeric ID bands.
	SourceIDRange Source = "id-range"
)

// Classification is the resolved type, category, subcategory and slot of an item.
type Classification struct {
	Type        models.ItemType
	Category    string
	Subcategory string
	Slot        string
	Source      Source
}

// Fallback reports whether the classification came from the ID bands.
func (c Classification) Fallback() bool {
	return c.Source == SourceIDRange
}
