package cascade

import "fmt"

// Policy decides what happens when an entity already has a persisted record.
type Policy string

const (
	// PolicyReuse uses a valid existing record without calling any backend.
	// Invalid records (a map with no spawns) are fetched again.
	PolicyReuse Policy = "reuse"
	// PolicySkip leaves any existing file untouched but still reads it for dependencies.
	PolicySkip Policy = "skip"
	// PolicyRefetch always fetches and overwrites.
	PolicyRefetch Policy = "refetch"
)

// ParsePolicy validates a policy name.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyReuse, PolicySkip, PolicyRefetch:
		return p, nil
	default:
		return "", fmt.Errorf("unknown cache policy %q", s)
	}
}

// Policies holds the cache policy of each entity type.
type Policies struct {
	Maps     Policy
	Monsters Policy
	Items    Policy
}

// DefaultPolicies reuses maps and refetches monsters and items, or skips them
// when skipExisting is set.
func DefaultPolicies(skipExisting bool) Policies {
	p := Policies{Maps: PolicyReuse, Monsters: PolicyRefetch, Items: PolicyRefetch}
	if skipExisting {
		p.Monsters, p.Items = PolicySkip, PolicySkip
	}
	return p
}
