package contract

import "github.com/rowanmaas/veriflow/internal/domain"

// BillableUpdateRequest propagates a billable flag from a reference
// document down to timesheet entries. RefDoctype is one of Project, Task,
// Project Type, Project Template.
type BillableUpdateRequest struct {
	RefDoctype domain.Doctype `json:"ref_doctype"`
	RefName    string         `json:"ref_name"`
	Billable   bool           `json:"billable"`
}

// BillableUpdateResult reports what the cascade touched. Entries are the
// names of timesheet entries whose flag was set; Projects the projects
// saved along the way (empty for Project/Task references).
type BillableUpdateResult struct {
	Entries  []string `json:"entries"`
	Projects []string `json:"projects,omitempty"`
}
