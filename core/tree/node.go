package tree

import (
	"strconv"

	"gopkg.in/guregu/null.v3"
)

// Node is a unit of the tree backend: the names of its children and an optional scalar.
type Node struct {
	Children []string
	Value    null.String
}

// Has reports whether key is one of the node's children.
func (n Node) Has(key string) bool {
	for _, child := range n.Children {
		if child == key {
			return true
		}
	}
	return false
}

// Number returns the scalar value as a number, if it is one.
func (n Node) Number() (float64, bool) {
	if !n.Value.Valid {
		return 0, false
	}
	f, err := strconv.ParseFloat(n.Value.String, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
