package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"corpus-builder/core/utils"
	"corpus-builder/feature/cascade"
	"corpus-builder/feature/classify"
	"corpus-builder/feature/models"
	"corpus-builder/feature/persist"
	"corpus-builder/feature/regions"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// selectionFlags binds the flags selecting one entity kind.
type selectionFlags struct {
	ids    []string
	from   int
	to     int
	typ    string
	limit  int
	search string
}

func (s *selectionFlags) bind(fs *pflag.FlagSet, prefix string, withType bool) {
	name := func(n string) string {
		if prefix == "" {
			return n
		}
		return prefix + "-" + n
	}
	idsFlag := "ids"
	if prefix != "" {
		idsFlag = prefix
	}
	fs.StringSliceVar(&s.ids, idsFlag, nil, "Comma or space separated IDs")
	fs.IntVar(&s.from, name("from"), 0, "First ID of the range (inclusive)")
	fs.IntVar(&s.to, name("to"), 0, "End of the range (exclusive)")
	fs.IntVar(&s.limit, name("limit"), 0, "Maximum number of IDs to select")
	fs.StringVar(&s.search, name("search"), "", "Free-text search against the metadata API")
	if withType {
		fs.StringVar(&s.typ, name("type"), "", "Item type: "+itemTypeList())
	}
}

func (s *selectionFlags) selection() (cascade.Selection, error) {
	ids, err := utils.ParseIDs(s.ids)
	if err != nil {
		return cascade.Selection{}, err
	}
	sel := cascade.Selection{
		IDs:    ids,
		From:   s.from,
		To:     s.to,
		Limit:  s.limit,
		Search: s.search,
	}
	if s.typ != "" {
		t, err := models.ParseItemType(s.typ)
		if err != nil {
			return cascade.Selection{}, err
		}
		sel.Type = t
	}
	return sel, nil
}

func itemTypeList() string {
	names := make([]string, 0, len(models.ItemTypes))
	for _, t := range models.ItemTypes {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

// runFlags are shared by fetch and cascade.
type runFlags struct {
	skipExisting   bool
	overwriteNames bool
	jsonOutput     bool
}

func (r *runFlags) bind(fs *pflag.FlagSet) {
	fs.BoolVar(&r.skipExisting, "skip-existing", false, "Leave monsters and items that already have a file untouched")
	fs.BoolVar(&r.overwriteNames, "overwrite-names", false, "Replace preserved canonical names with the fetched ones")
	fs.BoolVar(&r.jsonOutput, "json", false, "Print the run summary as JSON")
}

// execute builds an orchestrator from the configuration and runs req.
func execute(ctx context.Context, flags runFlags, policies cascade.Policies, req cascade.Request) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	table, err := regions.Load()
	if err != nil {
		return err
	}
	if err := classify.LoadBosses(); err != nil {
		return err
	}

	b := e.backends()
	orch := cascade.New(cascade.Deps{
		Handle:  b.handle,
		DB:      b.db,
		API:     b.api,
		Tree:    b.tree,
		Store:   e.store(persist.Options{OverwriteNames: flags.overwriteNames}),
		Regions: table,
	}, cascade.Config{
		Delay:      time.Duration(e.cfg.Pipeline.DelayMS) * time.Millisecond,
		MaxFoundAt: e.cfg.Pipeline.MaxFoundAt,
		Policies:   policies,
	}, e.logger)

	ctx, stop := signalContext(ctx)
	defer stop()

	summary, err := orch.Run(ctx, req)
	if summary != nil {
		if printErr := printSummary(summary, flags.jsonOutput); printErr != nil {
			e.logger.Warn("Failed to print summary", zap.Error(printErr))
		}
	}
	return err
}

func printSummary(s *cascade.Summary, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	fmt.Println("\n=== Run Summary ===")
	fmt.Printf("Run ID:    %s\n", s.RunID)
	printStage("Maps", s.Maps)
	printStage("Monsters", s.Monsters)
	printStage("Items", s.Items)
	fmt.Printf("ID-range classifications: %d\n", s.Fallbacks)
	fmt.Printf("Execution Time: %s\n", s.Duration.Round(time.Millisecond))
	return nil
}

func printStage(label string, st cascade.StageSummary) {
	fmt.Printf("%-9s  fetched=%d reused=%d skipped=%d failed=%d\n",
		label+":", st.Fetched, st.Reused, st.Skipped, st.FailedTotal())

	kinds := make([]string, 0, len(st.Failed))
	for k := range st.Failed {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Printf("           - %s: %d\n", k, st.Failed[k])
	}
}
