package formatter

import (
	"testing"

	"github.com/rowanmaas/veriflow/internal/contract"
	"github.com/rowanmaas/veriflow/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatLinkedDocuments(t *testing.T) {
	result := &contract.LinkedDocuments{
		Docs: []domain.LinkedDoc{
			{Doctype: domain.DoctypeTask, Name: "T1", DocStatus: domain.DocStatusDraft, LinkCount: 0},
			{Doctype: domain.DoctypeTimesheet, Name: "TS-0001", DocStatus: domain.DocStatusSubmitted, LinkCount: 2},
		},
		Count: 2,
	}

	out := FormatLinkedDocuments(domain.DoctypeProject, "P1", result)
	assert.Contains(t, out, "T1")
	assert.Contains(t, out, "TS-0001")
	assert.Contains(t, out, "SUBMITTED")
	assert.Contains(t, out, "2 direct link(s)")
}

func TestFormatLinkedDocuments_Empty(t *testing.T) {
	result := &contract.LinkedDocuments{Docs: []domain.LinkedDoc{}, Count: 0}
	out := FormatLinkedDocuments(domain.DoctypeTask, "T1", result)
	assert.Contains(t, out, "No linked documents")
}

func TestFormatBillableResult(t *testing.T) {
	out := FormatBillableResult(&contract.BillableUpdateResult{
		Entries:  []string{"TSE-1", "TSE-2"},
		Projects: []string{"P1"},
	})
	assert.Contains(t, out, "1 project(s) saved")
	assert.Contains(t, out, "2 timesheet entries updated")

	out = FormatBillableResult(&contract.BillableUpdateResult{Entries: []string{"TSE-1"}})
	assert.Contains(t, out, "1 timesheet entry updated")

	out = FormatBillableResult(&contract.BillableUpdateResult{})
	assert.Contains(t, out, "nothing updated")
}
