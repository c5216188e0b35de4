// Package reconcile provides the field-level precedence rules and the cross-source
// inspection used to reconcile the three content backends: the relational database,
// the metadata REST service, and the tree attribute service.
//
// # Precedence
//
// String, Int, Bool, Positive, and Present pick the first present value from an
// ordered list of sources. Callers pass the relational value first, then the metadata
// value, then fall back to a default:
//
//	price := reconcile.Int(0, row.Price, api.MetaInfo.Price)
//	slots := reconcile.Positive(row.UpgradeSlots, api.MetaInfo.TUC)
//
// # Inspection
//
// An Adapter loads one entity from every source. ReconcileOne reports where the
// entity is present and which fields the relational and metadata backends disagree
// on, using Mismatches to format each difference:
//
//	spec := &reconcile.Spec{Adapter: merge.NewItemAdapter(...), CacheTTL: time.Minute}
//	result, err := reconcile.ReconcileOne(ctx, spec, 2000000)
//
// # Cache
//
// Cache is a TTL cache with stampede protection (singleflight). ReconcileOne uses it
// when Spec.CacheTTL is set; the corpus HTTP service uses it for its directory index.
package reconcile
