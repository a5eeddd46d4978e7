package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/oneflow/oneflow/pkg/model"
)

type PurchaseOrdersService struct {
	client *Client
}

type PurchaseOrderCreate struct {
	ProjectID   string                    `json:"projectId"`
	Number      string                    `json:"number"`
	Vendor      string                    `json:"vendor"`
	Amount      float64                   `json:"amount"`
	Date        string                    `json:"date"`
	Status      model.PurchaseOrderStatus `json:"status"`
	Description string                    `json:"description"`
}

type PurchaseOrderPatch struct {
	Number      *string                    `json:"number,omitempty"`
	Vendor      *string                    `json:"vendor,omitempty"`
	Amount      *float64                   `json:"amount,omitempty"`
	Date        *string                    `json:"date,omitempty"`
	Status      *model.PurchaseOrderStatus `json:"status,omitempty"`
	Description *string                    `json:"description,omitempty"`
}

func (s *PurchaseOrdersService) List(ctx context.Context, projectID string) ([]model.PurchaseOrder, error) {
	var query url.Values
	if projectID != "" {
		query = url.Values{"projectId": {projectID}}
	}
	var env struct {
		PurchaseOrders []model.PurchaseOrder `json:"purchaseOrders"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/purchase-orders", query, nil, &env); err != nil {
		return nil, err
	}
	return env.PurchaseOrders, nil
}

func (s *PurchaseOrdersService) Create(ctx context.Context, payload PurchaseOrderCreate) (*model.PurchaseOrder, error) {
	var env struct {
		PurchaseOrder model.PurchaseOrder `json:"purchaseOrder"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/purchase-orders", nil, payload, &env); err != nil {
		return nil, err
	}
	return &env.PurchaseOrder, nil
}

func (s *PurchaseOrdersService) Update(ctx context.Context, id string, patch PurchaseOrderPatch) error {
	return s.client.do(ctx, http.MethodPut, "/purchase-orders/"+id, nil, patch, nil)
}

func (s *PurchaseOrdersService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/purchase-orders/"+id, nil, nil, nil)
}
