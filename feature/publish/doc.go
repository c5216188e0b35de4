// Package publish mirrors the persisted corpus into S3-compatible object storage.
//
// CheckStructure and FixStructure verify the maps/, monsters/ and items/ folders
// under the configured prefix. A Publisher walks the local corpus, uploads every
// file following the {id}_{slug}.json naming scheme and can prune remote files that
// were removed locally.
//
//	pub := publish.NewPublisher(client, cfg.Storage, cfg.Pipeline.OutputDir, logger)
//	report, err := pub.Publish(ctx, publish.Options{Prune: true})
package publish
