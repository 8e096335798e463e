package formatter

import (
	"fmt"

	"github.com/rowanmaas/veriflow/internal/contract"
	"github.com/rowanmaas/veriflow/internal/domain"
)

// FormatLinkedDocuments renders the linked-document listing for a root
// document: one row per discovered node plus the root's direct link count.
func FormatLinkedDocuments(doctype domain.Doctype, name string, result *contract.LinkedDocuments) string {
	title := fmt.Sprintf("Links: %s %s", doctype, name)
	if len(result.Docs) == 0 {
		return RenderBox(title, Dim("No linked documents."))
	}

	headers := []string{"DOCTYPE", "NAME", "STATUS", "LINKS"}
	rows := make([][]string, 0, len(result.Docs))
	for _, doc := range result.Docs {
		rows = append(rows, []string{
			StyleBlue.Render(string(doc.Doctype)),
			Bold(doc.Name),
			DocStatusPill(doc.DocStatus),
			fmt.Sprintf("%d", doc.LinkCount),
		})
	}

	body := RenderTable(headers, rows) + "\n" +
		Dim(fmt.Sprintf("%d direct link(s) on %s %s", result.Count, doctype, name))
	return RenderBox(title, body)
}

// FormatBillableResult summarizes what a billable cascade touched.
func FormatBillableResult(result *contract.BillableUpdateResult) string {
	if len(result.Entries) == 0 && len(result.Projects) == 0 {
		return Dim("No timesheet entries matched; nothing updated.")
	}

	var b string
	if len(result.Projects) > 0 {
		b += fmt.Sprintf("%s %d project(s) saved\n", StyleGreen.Render("✓"), len(result.Projects))
	}
	b += fmt.Sprintf("%s %d timesheet entr%s updated", StyleGreen.Render("✓"), len(result.Entries), pluralY(len(result.Entries)))
	return b
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
