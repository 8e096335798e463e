package domain

import "time"

// Timesheet is the parent record of timesheet entries. Individual entries
// carry the project/task references; the parent carries the lifecycle
// status the linked-document listing reports.
type Timesheet struct {
	Name      string
	DocStatus DocStatus
	Entries   []TimesheetEntry
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TimesheetEntry is one logged block of work (the host's Timesheet Detail
// row). Parent names the owning timesheet.
type TimesheetEntry struct {
	Name      string
	Parent    string
	Project   string
	Task      string
	Billable  bool
	Hours     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// entryRefField maps a cascade reference doctype to the timesheet_entries
// column it selects on.
var entryRefField = map[Doctype]string{
	DoctypeProject: "project",
	DoctypeTask:    "task",
}

// EntryRefField returns the timesheet_entries column matching a Project or
// Task reference. ok is false for any other doctype.
func EntryRefField(doctype Doctype) (string, bool) {
	field, ok := entryRefField[doctype]
	return field, ok
}
