/*
Package persist stores corpus records as one JSON file per entity.

Layout:

	{root}/maps/{id}_{slug}.json
	{root}/monsters/{id}_{slug}.json
	{root}/items/{type}/{id}_{slug}.json

The slug is derived from the English name. Files are written to a temporary file
and renamed into place, so a record is either fully written or not at all.

Before writing, a file already at the target path is read: when its canonical
name differs from the record's English name, that name was localized by hand and
is carried forward (the English name moves to nameEn). Options.OverwriteNames
disables this. Malformed prior files are treated as absent.
*/
package persist
