// Package relational is the client of the relational backend: the authoritative
// source of localized names, prices, flags, gear stat tables and monster drop tables.
//
// # Tables
//
//   - items: master data, one row per item (nullable columns map to null types)
//   - item_stats: (item_id, stat, value) gear stat rows
//   - drop_data: (dropperid, itemid, minimum_quantity, maximum_quantity, questid, chance),
//     chance out of 1,000,000; itemid 0 is a currency drop
//
// All queries share the run's database.Handle. Record absence is backend.ErrNotFound,
// query failures are backend.ErrUnavailable.
package relational
