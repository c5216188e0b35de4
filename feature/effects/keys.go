package effects

// SpecKeys are the instantaneous and buff effect fields of the spec subtree.
var SpecKeys = []string{"hp", "mp", "hpR", "mpR", "pad", "mad", "pdd", "mdd", "acc", "eva", "speed", "jump", "time"}

// InfoKeys are the scroll stat deltas, success rate and projectile power of the info subtree.
var InfoKeys = []string{
	"incSTR", "incDEX", "incINT", "incLUK", "incMHP", "incMMP", "incPAD", "incMAD",
	"incPDD", "incMDD", "incACC", "incEVA", "incSpeed", "incJump", "success",
}

const (
	subtreeSpec = "spec"
	subtreeInfo = "info"

	keySuccess     = "success"
	keyIncPAD      = "incPAD"
	keyAttackPower = "attackPower"
)
