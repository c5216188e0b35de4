package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"corpus-builder/core/reconcile"
	"corpus-builder/feature/merge"
	"corpus-builder/feature/persist"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// inspectCmd is the parent command for per-entity source checks.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspect an entity across every source",
}

// inspectItemCmd reports where an item exists and how the DB and API disagree.
var inspectItemCmd = &cobra.Command{
	Use:   "item [id...]",
	Short: "View presence and field mismatches of items",
	Long:  `Checks the presence of items in the database, the metadata API, the tree service and the corpus, and lists the fields where the database and the API disagree.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInspectItem,
}

func init() {
	inspectCmd.AddCommand(inspectItemCmd)
	RootCmd.AddCommand(inspectCmd)
}

func runInspectItem(cmd *cobra.Command, args []string) error {
	ids := make([]int, 0, len(args))
	for _, a := range args {
		id, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("invalid item id %q", a)
		}
		ids = append(ids, id)
	}

	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	b := e.backends()
	defer b.handle.Close()

	spec := &reconcile.Spec{
		Adapter: merge.NewItemAdapter(b.db, b.api, b.tree, e.store(persist.Options{})),
	}

	ctx, stop := signalContext(cmd.Context())
	defer stop()

	e.logger.Info("Inspecting items", zap.Ints("ids", ids))
	results, err := reconcile.ReconcileMany(ctx, spec, ids)
	if err != nil {
		return fmt.Errorf("inspect failed: %w", err)
	}
	for _, r := range results {
		printInspection(r)
	}
	return nil
}

func printInspection(r reconcile.Result) {
	fmt.Println("\n--- Item Detail View ---")
	fmt.Printf("ID:             %d\n", r.ID)
	fmt.Printf("Name:           %s\n", r.Name)

	keys := make([]string, 0, len(r.Metadata))
	for k := range r.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%-15s %s\n", k+":", r.Metadata[k])
	}

	fmt.Println("------------------------")
	fmt.Printf("In Database:    %v\n", r.DBPresent)
	fmt.Printf("In API:         %v\n", r.APIPresent)
	fmt.Printf("In Tree:        %v\n", r.TreePresent)
	fmt.Printf("In Corpus:      %v\n", r.CorpusPresent)

	status, color := "OK", "\033[32m"
	switch {
	case !r.DBPresent && !r.APIPresent:
		status, color = "MISSING", "\033[31m"
	case len(r.Mismatch) > 0 || !r.DBPresent || !r.APIPresent:
		status, color = "WARNING", "\033[33m"
	}
	fmt.Printf("Status:         %s%s\033[0m\n", color, status)

	if len(r.Mismatch) > 0 {
		fmt.Println("\nMismatches:")
		for _, m := range r.Mismatch {
			fmt.Printf("- %s\n", m)
		}
	}
	fmt.Println("------------------------")
}
