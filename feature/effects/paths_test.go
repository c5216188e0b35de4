package effects

import (
	"testing"

	"corpus-builder/feature/classify"

	"github.com/stretchr/testify/assert"
)

func TestItemPath(t *testing.T) {
	tests := map[int]string{
		1002000: "Character/Cap/01002000.img",
		1302000: "Character/Weapon/01302000.img",
		1112000: "Character/Accessory/01112000.img",
		2000000: "Item/Consume/0200.img/02000000",
		3010000: "Item/Install/0301.img/03010000",
		4000000: "Item/Etc/0400.img/04000000",
		5000000: "Item/Cash/0500.img/05000000",
	}

	for id, want := range tests {
		assert.Equal(t, want, ItemPath(id, classify.Classify(id, nil)))
	}
	assert.Equal(t, Path(2000000), ItemPath(2000000, classify.Classify(2000000, nil)))
}

func TestMonsterPath(t *testing.T) {
	assert.Equal(t, "Mob/0100100.img", MonsterPath(100100))
	assert.Equal(t, "Mob/8800000.img", MonsterPath(8800000))
}
