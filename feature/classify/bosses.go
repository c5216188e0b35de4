package classify

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed bosses.yaml
var bossesYAML []byte

type bossFile struct {
	Bosses []int `yaml:"bosses"`
}

var (
	bossOnce sync.Once
	bossSet  map[int]struct{}
	bossErr  error
)

func loadBosses() {
	var f bossFile
	if err := yaml.Unmarshal(bossesYAML, &f); err != nil {
		bossErr = fmt.Errorf("parse boss table: %w", err)
		return
	}
	bossSet = make(map[int]struct{}, len(f.Bosses))
	for _, id := range f.Bosses {
		bossSet[id] = struct{}{}
	}
}

// IsBoss reports membership of a monster in the static boss table.
func IsBoss(monsterID int) bool {
	bossOnce.Do(loadBosses)
	_, ok := bossSet[monsterID]
	return ok
}

// LoadBosses parses the embedded boss table. IsBoss reports false for every monster
// when it fails.
func LoadBosses() error {
	bossOnce.Do(loadBosses)
	return bossErr
}
