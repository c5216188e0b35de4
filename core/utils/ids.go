package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIDs parses a comma or whitespace separated list of numeric IDs.
// Duplicates are dropped, first-seen order is kept.
func ParseIDs(raw []string) ([]int, error) {
	var ids []int
	seen := make(map[int]struct{})
	for _, chunk := range raw {
		for _, field := range strings.FieldsFunc(chunk, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' }) {
			id, err := strconv.Atoi(field)
			if err != nil || id < 0 {
				return nil, fmt.Errorf("invalid id %q", field)
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids, nil
}
