package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/oneflow/oneflow/pkg/model"
)

type VendorBillsService struct {
	client *Client
}

type VendorBillCreate struct {
	ProjectID       string                 `json:"projectId"`
	PurchaseOrderID string                 `json:"purchaseOrderId,omitempty"`
	Number          string                 `json:"number"`
	Vendor          string                 `json:"vendor"`
	Amount          float64                `json:"amount"`
	Date            string                 `json:"date"`
	DueDate         string                 `json:"dueDate"`
	Status          model.VendorBillStatus `json:"status"`
	Description     string                 `json:"description"`
}

type VendorBillPatch struct {
	PurchaseOrderID *string                 `json:"purchaseOrderId,omitempty"`
	Number          *string                 `json:"number,omitempty"`
	Vendor          *string                 `json:"vendor,omitempty"`
	Amount          *float64                `json:"amount,omitempty"`
	Date            *string                 `json:"date,omitempty"`
	DueDate         *string                 `json:"dueDate,omitempty"`
	Status          *model.VendorBillStatus `json:"status,omitempty"`
	Description     *string                 `json:"description,omitempty"`
}

func (s *VendorBillsService) List(ctx context.Context, projectID string) ([]model.VendorBill, error) {
	var query url.Values
	if projectID != "" {
		query = url.Values{"projectId": {projectID}}
	}
	var env struct {
		VendorBills []model.VendorBill `json:"vendorBills"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/vendor-bills", query, nil, &env); err != nil {
		return nil, err
	}
	return env.VendorBills, nil
}

func (s *VendorBillsService) Create(ctx context.Context, payload VendorBillCreate) (*model.VendorBill, error) {
	var env struct {
		VendorBill model.VendorBill `json:"vendorBill"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/vendor-bills", nil, payload, &env); err != nil {
		return nil, err
	}
	return &env.VendorBill, nil
}

func (s *VendorBillsService) Update(ctx context.Context, id string, patch VendorBillPatch) error {
	return s.client.do(ctx, http.MethodPut, "/vendor-bills/"+id, nil, patch, nil)
}

func (s *VendorBillsService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/vendor-bills/"+id, nil, nil, nil)
}
