/*
Package merge combines backend responses into corpus records.

Items follow a fixed per-field precedence: the relational value when present,
then the metadata value, then a type default (stack size 1 for gear, 100 for
everything else). The metadata backend still contributes the English name,
classification, and icon when the relational row exists. Gear stats come from
the relational stat table; only when it is empty are the fourteen metadata stat
fields used, keeping nonzero values.

Monsters and maps come from the metadata backend, enriched with the resolved
drop table, the tree backend's jump flag, and the region table.

ItemAdapter plugs item lookups into reconcile.ReconcileOne for inspection.
*/
package merge
