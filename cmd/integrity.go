package cmd

import (
	"fmt"
	"sort"

	"corpus-builder/core/storage"
	"corpus-builder/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the storage bucket and the relational schema",
	Long:  `Checks that the storage bucket has the corpus folder structure and that the relational backend has every column the pipeline reads.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the bucket folder structure",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, false)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the relational backend schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, schemaCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Fix missing folders")
}

func runIntegrityChecks(cmd *cobra.Command, checkStructure, checkSchema bool) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	var client storage.Client
	if checkStructure {
		if client, err = storage.NewClient(e.cfg.Storage); err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	b := e.backends()
	defer b.handle.Close()
	svc := integrity.NewService(client, e.cfg.Storage, b.handle, e.logger)

	failed := false
	if checkStructure {
		missing, err := svc.CheckStructure(cmd.Context())
		switch {
		case err != nil:
			e.logger.Error("Structure check failed", zap.Error(err))
			failed = true
		case len(missing) == 0:
			e.logger.Info("Bucket structure is valid", zap.String("bucket", e.cfg.Storage.Bucket))
		case fixFlag:
			if err := svc.FixStructure(cmd.Context(), missing); err != nil {
				return fmt.Errorf("failed to fix structure: %w", err)
			}
		default:
			e.logger.Warn("Missing folders", zap.Strings("missing", missing))
			failed = true
		}
	}

	if checkSchema {
		report, err := svc.CheckSchema()
		if err != nil {
			e.logger.Error("Schema check failed", zap.Error(err))
			failed = true
		} else {
			fmt.Printf("\n=== Relational Schema (%s) ===\n", report.Driver)
			tables := make([]string, 0, len(report.Missing))
			for t := range report.Missing {
				tables = append(tables, t)
			}
			sort.Strings(tables)
			for _, t := range tables {
				fmt.Printf("%s: missing %v\n", t, report.Missing[t])
			}
			if report.Matched {
				fmt.Println("All expected columns present")
			} else {
				failed = true
			}
		}
	}

	if failed {
		return fmt.Errorf("integrity checks failed")
	}
	return nil
}
