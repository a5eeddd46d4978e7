package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/oneflow/oneflow/pkg/model"
)

type ExpensesService struct {
	client *Client
}

type ExpenseCreate struct {
	ProjectID   string              `json:"projectId"`
	Employee    string              `json:"employee"`
	Amount      float64             `json:"amount"`
	Date        string              `json:"date"`
	Category    string              `json:"category"`
	Description string              `json:"description"`
	Billable    bool                `json:"billable"`
	Status      model.ExpenseStatus `json:"status"`
}

type ExpensePatch struct {
	Employee    *string              `json:"employee,omitempty"`
	Amount      *float64             `json:"amount,omitempty"`
	Date        *string              `json:"date,omitempty"`
	Category    *string              `json:"category,omitempty"`
	Description *string              `json:"description,omitempty"`
	Billable    *bool                `json:"billable,omitempty"`
	Status      *model.ExpenseStatus `json:"status,omitempty"`
}

func (s *ExpensesService) List(ctx context.Context, projectID string) ([]model.Expense, error) {
	var query url.Values
	if projectID != "" {
		query = url.Values{"projectId": {projectID}}
	}
	var env struct {
		Expenses []model.Expense `json:"expenses"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/expenses", query, nil, &env); err != nil {
		return nil, err
	}
	return env.Expenses, nil
}

func (s *ExpensesService) Create(ctx context.Context, payload ExpenseCreate) (*model.Expense, error) {
	var env struct {
		Expense model.Expense `json:"expense"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/expenses", nil, payload, &env); err != nil {
		return nil, err
	}
	return &env.Expense, nil
}

func (s *ExpensesService) Update(ctx context.Context, id string, patch ExpensePatch) error {
	return s.client.do(ctx, http.MethodPut, "/expenses/"+id, nil, patch, nil)
}

func (s *ExpensesService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/expenses/"+id, nil, nil, nil)
}
