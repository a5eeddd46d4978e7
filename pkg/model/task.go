package model

type TaskStatus string

const (
	TaskNew        TaskStatus = "new"
	TaskInProgress TaskStatus = "in_progress"
	TaskBlocked    TaskStatus = "blocked"
	TaskDone       TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskNew, TaskInProgress, TaskBlocked, TaskDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task belongs to a project. HoursLogged accumulates only through timesheet
// creation; the server recomputes it, the client never increments it locally.
type Task struct {
	ID             string       `json:"id"`
	ProjectID      string       `json:"projectId"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Assignee       string       `json:"assignee"`
	Status         TaskStatus   `json:"status"`
	Priority       TaskPriority `json:"priority"`
	DueDate        string       `json:"dueDate"`
	HoursLogged    float64      `json:"hoursLogged"`
	EstimatedHours float64      `json:"estimatedHours"`
}
