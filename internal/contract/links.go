package contract

import "github.com/rowanmaas/veriflow/internal/domain"

// LinkedDocuments is the linked-document listing: nodes sorted ascending by
// link count, plus the number of allow-listed direct links of the root.
type LinkedDocuments struct {
	Docs  []domain.LinkedDoc `json:"docs"`
	Count int                `json:"count"`
}
