package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/oneflow/oneflow/pkg/model"
)

type TimesheetsService struct {
	client *Client
}

type TimesheetCreate struct {
	ProjectID   string  `json:"projectId"`
	TaskID      string  `json:"taskId"`
	Employee    string  `json:"employee"`
	Date        string  `json:"date"`
	Hours       float64 `json:"hours"`
	Billable    bool    `json:"billable"`
	Description string  `json:"description"`
}

type TimesheetPatch struct {
	Employee    *string  `json:"employee,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Hours       *float64 `json:"hours,omitempty"`
	Billable    *bool    `json:"billable,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// List filters by project and/or task; both filters are optional.
func (s *TimesheetsService) List(ctx context.Context, projectID, taskID string) ([]model.Timesheet, error) {
	query := url.Values{}
	if projectID != "" {
		query.Set("projectId", projectID)
	}
	if taskID != "" {
		query.Set("taskId", taskID)
	}
	var env struct {
		Timesheets []model.Timesheet `json:"timesheets"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/timesheets", query, nil, &env); err != nil {
		return nil, err
	}
	return env.Timesheets, nil
}

func (s *TimesheetsService) Create(ctx context.Context, payload TimesheetCreate) (*model.Timesheet, error) {
	var env struct {
		Timesheet model.Timesheet `json:"timesheet"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/timesheets", nil, payload, &env); err != nil {
		return nil, err
	}
	return &env.Timesheet, nil
}

func (s *TimesheetsService) Update(ctx context.Context, id string, patch TimesheetPatch) error {
	return s.client.do(ctx, http.MethodPut, "/timesheets/"+id, nil, patch, nil)
}

func (s *TimesheetsService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/timesheets/"+id, nil, nil, nil)
}
