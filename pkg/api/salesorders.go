package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/oneflow/oneflow/pkg/model"
)

type SalesOrdersService struct {
	client *Client
}

type SalesOrderCreate struct {
	ProjectID   string                 `json:"projectId"`
	Number      string                 `json:"number"`
	Customer    string                 `json:"customer"`
	Amount      float64                `json:"amount"`
	Date        string                 `json:"date"`
	Status      model.SalesOrderStatus `json:"status"`
	Description string                 `json:"description"`
}

type SalesOrderPatch struct {
	Number      *string                 `json:"number,omitempty"`
	Customer    *string                 `json:"customer,omitempty"`
	Amount      *float64                `json:"amount,omitempty"`
	Date        *string                 `json:"date,omitempty"`
	Status      *model.SalesOrderStatus `json:"status,omitempty"`
	Description *string                 `json:"description,omitempty"`
}

func (s *SalesOrdersService) List(ctx context.Context, projectID string) ([]model.SalesOrder, error) {
	var query url.Values
	if projectID != "" {
		query = url.Values{"projectId": {projectID}}
	}
	var env struct {
		SalesOrders []model.SalesOrder `json:"salesOrders"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/sales-orders", query, nil, &env); err != nil {
		return nil, err
	}
	return env.SalesOrders, nil
}

func (s *SalesOrdersService) Create(ctx context.Context, payload SalesOrderCreate) (*model.SalesOrder, error) {
	var env struct {
		SalesOrder model.SalesOrder `json:"salesOrder"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/sales-orders", nil, payload, &env); err != nil {
		return nil, err
	}
	return &env.SalesOrder, nil
}

func (s *SalesOrdersService) Update(ctx context.Context, id string, patch SalesOrderPatch) error {
	return s.client.do(ctx, http.MethodPut, "/sales-orders/"+id, nil, patch, nil)
}

func (s *SalesOrdersService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/sales-orders/"+id, nil, nil, nil)
}
