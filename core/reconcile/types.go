package reconcile

import (
	"sync"
	"time"
)

// Result is the reconciliation output for a single entity: where it is present and
// which fields the relational and metadata backends disagree on.
type Result struct {
	// ID is the entity identifier.
	ID int `json:"id"`

	// Name is the display name chosen by precedence.
	Name string `json:"name"`

	// DBPresent indicates whether the relational backend has the entity.
	DBPresent bool `json:"db_present"`

	// APIPresent indicates whether the metadata backend has the entity.
	APIPresent bool `json:"api_present"`

	// TreePresent indicates whether the tree backend has a node for the entity.
	TreePresent bool `json:"tree_present"`

	// CorpusPresent indicates whether a record is persisted in the output directory.
	CorpusPresent bool `json:"corpus_present"`

	// Mismatch describes fields present in both backends with different values,
	// e.g. "price: db=10 api=12".
	Mismatch []string `json:"mismatch"`

	// Metadata contains entity-specific data (classification, corpus path).
	Metadata map[string]string `json:"metadata"`
}

// Spec bundles an adapter with its cache settings.
type Spec struct {
	// Adapter provides entity-specific lookups and comparisons.
	Adapter Adapter

	// CacheTTL is the time-to-live of cached results. Zero disables caching.
	CacheTTL time.Duration

	once    sync.Once
	results *Cache[*Result]
}

// cache returns the result cache of this Spec, created on first use.
func (s *Spec) cache() *Cache[*Result] {
	s.once.Do(func() { s.results = NewCache[*Result]() })
	return s.results
}

// DBItem is an entity as returned by the relational backend.
type DBItem any

// APIItem is an entity as returned by the metadata backend.
type APIItem any
