package form

import (
	"context"

	"github.com/oneflow/oneflow/pkg/api"
	"github.com/oneflow/oneflow/pkg/model"
)

// TimesheetForm logs hours against a task. This is the only write path that
// advances the task's hoursLogged; the server folds the hours in and the
// owning view refetches to see the new total.
type TimesheetForm struct {
	ProjectID   string
	TaskID      string
	Employee    string
	Date        string
	Hours       float64
	Billable    bool
	Description string

	initialProjectID string
	initialTaskID    string
	OnSuccess        func()
}

func NewTimesheetForm(projectID, taskID string) *TimesheetForm {
	f := &TimesheetForm{initialProjectID: projectID, initialTaskID: taskID}
	f.Reset()
	return f
}

func (f *TimesheetForm) Reset() {
	f.ProjectID = f.initialProjectID
	f.TaskID = f.initialTaskID
	f.Employee = ""
	f.Date = today()
	f.Hours = 0
	f.Billable = true
	f.Description = ""
}

func (f *TimesheetForm) Validate() error {
	var errs Errors
	errs.require("projectId", f.ProjectID, "Project is required")
	errs.require("taskId", f.TaskID, "Task is required")
	errs.require("employee", f.Employee, "Employee is required")
	errs.require("date", f.Date, "Date is required")
	if f.Hours < 0 {
		errs.add("hours", "Hours must be positive")
	}
	return errs.orNil()
}

func (f *TimesheetForm) Submit(ctx context.Context, timesheets *api.TimesheetsService) (*model.Timesheet, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	ts, err := timesheets.Create(ctx, api.TimesheetCreate{
		ProjectID:   f.ProjectID,
		TaskID:      f.TaskID,
		Employee:    f.Employee,
		Date:        f.Date,
		Hours:       f.Hours,
		Billable:    f.Billable,
		Description: f.Description,
	})
	if err != nil {
		return nil, err
	}

	if f.OnSuccess != nil {
		f.OnSuccess()
	}
	f.Reset()
	return ts, nil
}
