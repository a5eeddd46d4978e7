package form

import (
	"context"

	"github.com/oneflow/oneflow/pkg/api"
	"github.com/oneflow/oneflow/pkg/model"
)

type TaskForm struct {
	ProjectID      string
	Title          string
	Description    string
	Assignee       string
	Status         model.TaskStatus
	Priority       model.TaskPriority
	DueDate        string
	EstimatedHours float64

	initialProjectID string
	OnSuccess        func()
}

// NewTaskForm pins the dialog to a project when projectID is non-empty;
// Reset keeps that binding.
func NewTaskForm(projectID string) *TaskForm {
	f := &TaskForm{initialProjectID: projectID}
	f.Reset()
	return f
}

func (f *TaskForm) Reset() {
	f.ProjectID = f.initialProjectID
	f.Title = ""
	f.Description = ""
	f.Assignee = ""
	f.Status = model.TaskNew
	f.Priority = model.PriorityMedium
	f.DueDate = daysFromNow(7)
	f.EstimatedHours = 0
}

func (f *TaskForm) Validate() error {
	var errs Errors
	errs.require("projectId", f.ProjectID, "Project is required")
	errs.require("title", f.Title, "Title is required")
	errs.require("assignee", f.Assignee, "Assignee is required")
	if !f.Status.Valid() {
		errs.add("status", "Invalid status")
	}
	if !f.Priority.Valid() {
		errs.add("priority", "Invalid priority")
	}
	errs.require("dueDate", f.DueDate, "Due date is required")
	if f.EstimatedHours < 0 {
		errs.add("estimatedHours", "Estimated hours must be positive")
	}
	return errs.orNil()
}

// Submit creates the task with zero logged hours; hours only accumulate
// through timesheets.
func (f *TaskForm) Submit(ctx context.Context, tasks *api.TasksService) (*model.Task, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	task, err := tasks.Create(ctx, api.TaskCreate{
		ProjectID:      f.ProjectID,
		Title:          f.Title,
		Description:    f.Description,
		Assignee:       f.Assignee,
		Status:         f.Status,
		Priority:       f.Priority,
		DueDate:        f.DueDate,
		HoursLogged:    0,
		EstimatedHours: f.EstimatedHours,
	})
	if err != nil {
		return nil, err
	}

	if f.OnSuccess != nil {
		f.OnSuccess()
	}
	f.Reset()
	return task, nil
}
