package cmd

import (
	"fmt"

	"corpus-builder/core/storage"
	"corpus-builder/feature/publish"

	"github.com/spf13/cobra"
)

var publishOpts publish.Options

// publishCmd uploads the corpus to object storage.
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload the corpus to S3-compatible object storage",
	Long: `Uploads every corpus file under maps/, monsters/ and items/ to the configured
bucket and prefix. With --prune, remote files whose local file is gone (for example
after a rename) are deleted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		defer e.logger.Sync()

		client, err := storage.NewClient(e.cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		ctx, stop := signalContext(cmd.Context())
		defer stop()

		pub := publish.NewPublisher(client, e.cfg.Storage, e.cfg.Pipeline.OutputDir, e.logger)
		report, err := pub.Publish(ctx, publishOpts)
		if err != nil {
			return fmt.Errorf("publish failed: %w", err)
		}

		fmt.Println("\n=== Publish Summary ===")
		fmt.Printf("Bucket:   %s\n", e.cfg.Storage.Bucket)
		fmt.Printf("Uploaded: %d\n", len(report.Uploaded))
		fmt.Printf("Pruned:   %d\n", len(report.Pruned))
		fmt.Printf("Failed:   %d\n", len(report.Failed))
		if len(report.Failed) > 0 {
			return fmt.Errorf("%d uploads failed", len(report.Failed))
		}
		return nil
	},
}

func init() {
	publishCmd.Flags().BoolVar(&publishOpts.CreateBucket, "create-bucket", false, "Create the bucket if it does not exist")
	publishCmd.Flags().BoolVar(&publishOpts.Prune, "prune", false, "Delete remote corpus files missing locally")
	publishCmd.Flags().BoolVar(&publishOpts.DryRun, "dry-run", false, "Only list what would be uploaded or pruned")
	RootCmd.AddCommand(publishCmd)
}
