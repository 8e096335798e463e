package domain

import "time"

// Project groups tasks and timesheet entries. Billable is the flag the
// cascade propagates downward from the project's type or template.
type Project struct {
	Name            string
	ProjectName     string
	ProjectType     string
	ProjectTemplate string
	Billable        bool
	Status          ProjectStatus
	DocStatus       DocStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// projectRefField maps a cascade reference doctype to the projects column
// it selects on.
var projectRefField = map[Doctype]string{
	DoctypeProjectType:     "project_type",
	DoctypeProjectTemplate: "project_template",
}

// ProjectRefField returns the projects column matching a Project Type or
// Project Template reference. ok is false for any other doctype.
func ProjectRefField(doctype Doctype) (string, bool) {
	field, ok := projectRefField[doctype]
	return field, ok
}
