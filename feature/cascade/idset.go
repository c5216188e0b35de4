package cascade

// idSet is an insertion-ordered set of IDs.
type idSet struct {
	seen  map[int]struct{}
	order []int
}

func newIDSet() *idSet {
	return &idSet{seen: make(map[int]struct{})}
}

// add inserts ids, ignoring those already present.
func (s *idSet) add(ids ...int) {
	for _, id := range ids {
		if _, ok := s.seen[id]; ok {
			continue
		}
		s.seen[id] = struct{}{}
		s.order = append(s.order, id)
	}
}

// ids returns the members in insertion order.
func (s *idSet) ids() []int {
	out := make([]int, len(s.order))
	copy(out, s.order)
	return out
}
