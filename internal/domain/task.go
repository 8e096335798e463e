package domain

import "time"

type Task struct {
	Name      string
	Project   string
	Subject   string
	Billable  bool
	Status    TaskStatus
	DocStatus DocStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
