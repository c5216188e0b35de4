/*
Package cascade runs the dependency-ordered Map, Monster, Item pipeline.

A run resolves its starting selections, then walks three stages in order. The
maps stage collects the monsters of every spawn table; the monsters stage collects
every dropped item; the items stage fetches each item once. IDs are de-duplicated
across the whole run, so an item dropped by two monsters is fetched a single time.

Every stage consults its cache Policy before calling any backend:

	reuse    use a valid persisted record as is (maps: non-empty spawn table)
	skip     leave an existing file untouched, still reading its dependencies
	refetch  always fetch and overwrite

Execution is sequential and every backend call is followed by the configured
delay. A single entity failing is logged and tallied by kind in the Summary; it
never aborts the run. The relational connection Handle is opened up front, so an
unreachable database fails the run before any work, and is closed when Run returns.
*/
package cascade
