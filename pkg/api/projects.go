package api

import (
	"context"
	"net/http"

	"github.com/oneflow/oneflow/pkg/model"
)

type ProjectsService struct {
	client *Client
}

// ProjectCreate is the creation payload; the server assigns the id.
type ProjectCreate struct {
	Name        string              `json:"name"`
	Status      model.ProjectStatus `json:"status"`
	Manager     string              `json:"manager"`
	Team        []string            `json:"team"`
	StartDate   string              `json:"startDate"`
	EndDate     string              `json:"endDate"`
	Budget      float64             `json:"budget"`
	Spent       float64             `json:"spent"`
	Progress    float64             `json:"progress"`
	Description string              `json:"description"`
}

// ProjectPatch is a partial update; nil fields are left untouched.
type ProjectPatch struct {
	Name        *string              `json:"name,omitempty"`
	Status      *model.ProjectStatus `json:"status,omitempty"`
	Manager     *string              `json:"manager,omitempty"`
	Team        *[]string            `json:"team,omitempty"`
	StartDate   *string              `json:"startDate,omitempty"`
	EndDate     *string              `json:"endDate,omitempty"`
	Budget      *float64             `json:"budget,omitempty"`
	Spent       *float64             `json:"spent,omitempty"`
	Progress    *float64             `json:"progress,omitempty"`
	Description *string              `json:"description,omitempty"`
}

func (s *ProjectsService) List(ctx context.Context) ([]model.Project, error) {
	var env struct {
		Projects []model.Project `json:"projects"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/projects", nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Projects, nil
}

func (s *ProjectsService) Get(ctx context.Context, id string) (*model.Project, error) {
	var env struct {
		Project model.Project `json:"project"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/projects/"+id, nil, nil, &env); err != nil {
		return nil, err
	}
	return &env.Project, nil
}

func (s *ProjectsService) Create(ctx context.Context, payload ProjectCreate) (*model.Project, error) {
	var env struct {
		Project model.Project `json:"project"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/projects", nil, payload, &env); err != nil {
		return nil, err
	}
	return &env.Project, nil
}

func (s *ProjectsService) Update(ctx context.Context, id string, patch ProjectPatch) error {
	return s.client.do(ctx, http.MethodPut, "/projects/"+id, nil, patch, nil)
}

func (s *ProjectsService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/projects/"+id, nil, nil, nil)
}
