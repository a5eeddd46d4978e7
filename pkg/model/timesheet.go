package model

// Timesheet is the only write path that advances a task's logged hours; the
// server folds timesheet hours into Task.HoursLogged on creation.
type Timesheet struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"projectId"`
	TaskID      string  `json:"taskId"`
	Employee    string  `json:"employee"`
	Date        string  `json:"date"`
	Hours       float64 `json:"hours"`
	Billable    bool    `json:"billable"`
	Description string  `json:"description"`
}
