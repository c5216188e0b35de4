package reconcile

import "context"

// Adapter defines the entity-specific side of a reconciliation.
// Lookups return a nil item and nil error when the entity is absent.
type Adapter interface {
	// Name returns the entity kind handled by this adapter (e.g. "item").
	Name() string

	// LoadDB fetches the entity from the relational backend.
	LoadDB(ctx context.Context, id int) (DBItem, error)

	// LoadAPI fetches the entity from the metadata backend.
	LoadAPI(ctx context.Context, id int) (APIItem, error)

	// CheckTree reports whether the tree backend has a node for the entity.
	CheckTree(ctx context.Context, id int) (bool, error)

	// CheckCorpus reports whether a record is persisted, and where.
	CheckCorpus(id int) (path string, ok bool)

	// ResolveName returns the display name given the available items. Either may be nil.
	ResolveName(dbItem DBItem, apiItem APIItem) string

	// CompareFields lists field mismatches. Both items are non-nil.
	CompareFields(dbItem DBItem, apiItem APIItem) []string

	// GetMetadata returns entity-specific metadata for the result.
	GetMetadata(dbItem DBItem, apiItem APIItem) map[string]string
}
