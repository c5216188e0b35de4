package cmd

import (
	"corpus-builder/feature/cascade"

	"github.com/spf13/cobra"
)

var (
	cascadeRun      runFlags
	cascadeMaps     selectionFlags
	cascadeMonsters selectionFlags
	cascadeItems    selectionFlags

	mapPolicy     string
	monsterPolicy string
	itemPolicy    string
)

// cascadeCmd fetches maps, then their monsters, then the items those monsters drop.
var cascadeCmd = &cobra.Command{
	Use:   "cascade",
	Short: "Fetch maps, monsters and items following references",
	Long: `Run the map, monster and item stages in order. Monsters spawning on the
selected maps join the monster stage, and items dropped by every handled monster
join the item stage. Each entity is visited at most once per run.

Cache policies decide what happens with entities that already have a file:
  reuse    use a valid existing file without calling any backend (maps default)
  skip     leave the file untouched, still read it for references
  refetch  always fetch and overwrite (monsters and items default)

Examples:
  cascade --maps 100000000
  cascade --maps 100000000,104000000 --skip-existing
  cascade --monsters 100100 --items 2000000 --item-policy reuse`,
	Args: cobra.NoArgs,
	RunE: runCascade,
}

func init() {
	fs := cascadeCmd.Flags()
	cascadeRun.bind(fs)
	cascadeMaps.bind(fs, "maps", false)
	cascadeMonsters.bind(fs, "monsters", false)
	cascadeItems.bind(fs, "items", true)

	fs.StringVar(&mapPolicy, "map-policy", "", "Cache policy for maps (reuse, skip, refetch)")
	fs.StringVar(&monsterPolicy, "monster-policy", "", "Cache policy for monsters")
	fs.StringVar(&itemPolicy, "item-policy", "", "Cache policy for items")

	RootCmd.AddCommand(cascadeCmd)
}

func runCascade(cmd *cobra.Command, args []string) error {
	req := cascade.Request{Cascade: true}
	var err error
	if req.Maps, err = cascadeMaps.selection(); err != nil {
		return err
	}
	if req.Monsters, err = cascadeMonsters.selection(); err != nil {
		return err
	}
	if req.Items, err = cascadeItems.selection(); err != nil {
		return err
	}

	policies := cascade.DefaultPolicies(cascadeRun.skipExisting)
	for _, o := range []struct {
		flag   string
		target *cascade.Policy
	}{
		{mapPolicy, &policies.Maps},
		{monsterPolicy, &policies.Monsters},
		{itemPolicy, &policies.Items},
	} {
		if o.flag == "" {
			continue
		}
		p, err := cascade.ParsePolicy(o.flag)
		if err != nil {
			return err
		}
		*o.target = p
	}

	return execute(cmd.Context(), cascadeRun, policies, req)
}
