package domain

// DocRef identifies a stored document together with its lifecycle status,
// as returned by link resolution.
type DocRef struct {
	Doctype   Doctype   `json:"doctype"`
	Name      string    `json:"name"`
	DocStatus DocStatus `json:"docstatus"`
}

// LinkedDoc is one node of the linked-document listing: a DocRef plus the
// number of allow-listed direct links it has. Transient; never persisted.
type LinkedDoc struct {
	Doctype   Doctype   `json:"doctype"`
	Name      string    `json:"name"`
	DocStatus DocStatus `json:"docstatus"`
	LinkCount int       `json:"link_count"`
}

// linkAllowList restricts the traversal to project-management doctypes.
// Links to anything else are silently discarded and do not count.
var linkAllowList = map[Doctype]bool{
	DoctypeProject:   true,
	DoctypeTimesheet: true,
	DoctypeTask:      true,
}

// LinkAllowed reports whether a linked doctype participates in the
// linked-document listing.
func LinkAllowed(doctype Doctype) bool {
	return linkAllowList[doctype]
}
