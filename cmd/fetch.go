package cmd

import (
	"corpus-builder/feature/cascade"

	"github.com/spf13/cobra"
)

var (
	fetchRun       runFlags
	fetchSelection selectionFlags
)

// fetchCmd is the parent command for single-stage fetches.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch one entity kind without following references",
	Long: `Fetch maps, monsters or items into the corpus directory.

Unlike cascade, a fetch only handles the selected kind: monsters spawning on a
fetched map or items dropped by a fetched monster are not fetched.

Examples:
  fetch maps --ids 100000000,104000000
  fetch monsters --search snail --limit 5
  fetch items --type consumable --from 2000000 --to 2000100 --skip-existing`,
}

var fetchMapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "Fetch maps",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFetch(cmd, func(req *cascade.Request, sel cascade.Selection) { req.Maps = sel })
	},
}

var fetchMonstersCmd = &cobra.Command{
	Use:   "monsters",
	Short: "Fetch monsters and their drop tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFetch(cmd, func(req *cascade.Request, sel cascade.Selection) { req.Monsters = sel })
	},
}

var fetchItemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Fetch items",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFetch(cmd, func(req *cascade.Request, sel cascade.Selection) { req.Items = sel })
	},
}

func init() {
	fetchRun.bind(fetchCmd.PersistentFlags())
	fetchSelection.bind(fetchMapsCmd.Flags(), "", false)
	fetchSelection.bind(fetchMonstersCmd.Flags(), "", false)
	fetchSelection.bind(fetchItemsCmd.Flags(), "", true)

	fetchCmd.AddCommand(fetchMapsCmd, fetchMonstersCmd, fetchItemsCmd)
	RootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, assign func(*cascade.Request, cascade.Selection)) error {
	sel, err := fetchSelection.selection()
	if err != nil {
		return err
	}
	var req cascade.Request
	assign(&req, sel)
	return execute(cmd.Context(), fetchRun, cascade.DefaultPolicies(fetchRun.skipExisting), req)
}
