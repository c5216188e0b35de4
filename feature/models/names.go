package models

// Names holds the canonical (possibly localized) name of a record and, only when
// it differs, the English name.
type Names struct {
	Name   string `json:"name"`
	NameEn string `json:"nameEn,omitempty"`
}

// NewNames builds Names, recording english only when it differs from canonical.
// An empty canonical name falls back to the English one.
func NewNames(canonical, english string) Names {
	if canonical == "" {
		canonical = english
	}
	n := Names{Name: canonical}
	if english != "" && english != canonical {
		n.NameEn = english
	}
	return n
}

// English returns the English name: NameEn when recorded, otherwise Name.
func (n Names) English() string {
	if n.NameEn != "" {
		return n.NameEn
	}
	return n.Name
}

// Preserve replaces the canonical name with a previously persisted one, keeping
// the English name reachable through NameEn.
func (n *Names) Preserve(prior string) {
	english := n.English()
	*n = NewNames(prior, english)
}
