package form

import (
	"context"

	"github.com/oneflow/oneflow/pkg/api"
	"github.com/oneflow/oneflow/pkg/model"
	"github.com/oneflow/oneflow/pkg/store"
)

// ProjectForm backs both the create and edit project dialogs; set ID to edit
// an existing project.
type ProjectForm struct {
	ID          string
	Name        string
	Description string
	Status      model.ProjectStatus
	Manager     string
	Team        []string
	StartDate   string
	EndDate     string
	Budget      float64
	Spent       float64
	Progress    float64

	OnSuccess func()
}

func NewProjectForm() *ProjectForm {
	f := &ProjectForm{}
	f.Reset()
	return f
}

func (f *ProjectForm) Reset() {
	f.ID = ""
	f.Name = ""
	f.Description = ""
	f.Status = model.ProjectPlanned
	f.Manager = ""
	f.Team = []string{}
	f.StartDate = ""
	f.EndDate = ""
	f.Budget = 0
	f.Spent = 0
	f.Progress = 0
}

func (f *ProjectForm) Validate() error {
	var errs Errors
	errs.require("name", f.Name, "Project name is required")
	if !f.Status.Valid() {
		errs.add("status", "Invalid status")
	}
	errs.require("manager", f.Manager, "Manager is required")
	errs.require("startDate", f.StartDate, "Start date is required")
	errs.require("endDate", f.EndDate, "End date is required")
	if f.Budget < 0 {
		errs.add("budget", "Budget must be positive")
	}
	if f.Spent < 0 {
		errs.add("spent", "Spent must be positive")
	}
	if f.Progress < 0 || f.Progress > 100 {
		errs.add("progress", "Progress must be between 0 and 100")
	}
	return errs.orNil()
}

// Submit writes through the project store so the cache resyncs; a validation
// failure returns before any network call.
func (f *ProjectForm) Submit(ctx context.Context, projects *store.ProjectStore) error {
	if err := f.Validate(); err != nil {
		return err
	}

	var err error
	if f.ID != "" {
		patch := api.ProjectPatch{
			Name:        &f.Name,
			Status:      &f.Status,
			Manager:     &f.Manager,
			Team:        &f.Team,
			StartDate:   &f.StartDate,
			EndDate:     &f.EndDate,
			Budget:      &f.Budget,
			Spent:       &f.Spent,
			Progress:    &f.Progress,
			Description: &f.Description,
		}
		err = projects.Update(ctx, f.ID, patch)
	} else {
		err = projects.Add(ctx, api.ProjectCreate{
			Name:        f.Name,
			Status:      f.Status,
			Manager:     f.Manager,
			Team:        f.Team,
			StartDate:   f.StartDate,
			EndDate:     f.EndDate,
			Budget:      f.Budget,
			Spent:       f.Spent,
			Progress:    f.Progress,
			Description: f.Description,
		})
	}
	if err != nil {
		return err
	}

	if f.OnSuccess != nil {
		f.OnSuccess()
	}
	f.Reset()
	return nil
}
