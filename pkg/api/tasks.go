package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/oneflow/oneflow/pkg/model"
)

type TasksService struct {
	client *Client
}

// TaskCreate always carries hoursLogged 0; logged hours only ever advance
// through timesheet creation.
type TaskCreate struct {
	ProjectID      string             `json:"projectId"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	Assignee       string             `json:"assignee"`
	Status         model.TaskStatus   `json:"status"`
	Priority       model.TaskPriority `json:"priority"`
	DueDate        string             `json:"dueDate"`
	HoursLogged    float64            `json:"hoursLogged"`
	EstimatedHours float64            `json:"estimatedHours"`
}

type TaskPatch struct {
	Title          *string             `json:"title,omitempty"`
	Description    *string             `json:"description,omitempty"`
	Assignee       *string             `json:"assignee,omitempty"`
	Status         *model.TaskStatus   `json:"status,omitempty"`
	Priority       *model.TaskPriority `json:"priority,omitempty"`
	DueDate        *string             `json:"dueDate,omitempty"`
	EstimatedHours *float64            `json:"estimatedHours,omitempty"`
}

// List returns all visible tasks, or only a project's when projectID is set.
func (s *TasksService) List(ctx context.Context, projectID string) ([]model.Task, error) {
	var query url.Values
	if projectID != "" {
		query = url.Values{"projectId": {projectID}}
	}
	var env struct {
		Tasks []model.Task `json:"tasks"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/tasks", query, nil, &env); err != nil {
		return nil, err
	}
	return env.Tasks, nil
}

func (s *TasksService) Get(ctx context.Context, id string) (*model.Task, error) {
	var env struct {
		Task model.Task `json:"task"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/tasks/"+id, nil, nil, &env); err != nil {
		return nil, err
	}
	return &env.Task, nil
}

func (s *TasksService) Create(ctx context.Context, payload TaskCreate) (*model.Task, error) {
	var env struct {
		Task model.Task `json:"task"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/tasks", nil, payload, &env); err != nil {
		return nil, err
	}
	return &env.Task, nil
}

func (s *TasksService) Update(ctx context.Context, id string, patch TaskPatch) error {
	return s.client.do(ctx, http.MethodPut, "/tasks/"+id, nil, patch, nil)
}

func (s *TasksService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/tasks/"+id, nil, nil, nil)
}
