// Package corpus serves the persisted corpus through a read-only HTTP API.
//
// Records are read straight from the corpus directory on every request, so a
// fetch running in parallel is visible immediately. The summary counts and the
// item-to-monster dropper index are aggregates over the whole directory; they are
// cached with a TTL and concurrent rebuilds are collapsed into one.
//
// # HTTP Endpoints
//
//   - GET /summary : Record counts per kind and item type.
//   - POST /summary/refresh : Drops the cached aggregates.
//   - GET /maps, /monsters, /items : Persisted IDs.
//   - GET /maps/:id, /monsters/:id, /items/:id : One record.
//   - GET /items/:id/droppers : Monsters dropping the item.
package corpus
