package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/oneflow/oneflow/pkg/model"
)

type InvoicesService struct {
	client *Client
}

// InvoiceCreate omits salesOrderId from the payload when unset rather than
// sending an empty string.
type InvoiceCreate struct {
	ProjectID    string              `json:"projectId"`
	SalesOrderID string              `json:"salesOrderId,omitempty"`
	Number       string              `json:"number"`
	Customer     string              `json:"customer"`
	Amount       float64             `json:"amount"`
	Date         string              `json:"date"`
	DueDate      string              `json:"dueDate"`
	Status       model.InvoiceStatus `json:"status"`
	Description  string              `json:"description"`
}

type InvoicePatch struct {
	SalesOrderID *string              `json:"salesOrderId,omitempty"`
	Number       *string              `json:"number,omitempty"`
	Customer     *string              `json:"customer,omitempty"`
	Amount       *float64             `json:"amount,omitempty"`
	Date         *string              `json:"date,omitempty"`
	DueDate      *string              `json:"dueDate,omitempty"`
	Status       *model.InvoiceStatus `json:"status,omitempty"`
	Description  *string              `json:"description,omitempty"`
}

func (s *InvoicesService) List(ctx context.Context, projectID string) ([]model.CustomerInvoice, error) {
	var query url.Values
	if projectID != "" {
		query = url.Values{"projectId": {projectID}}
	}
	var env struct {
		CustomerInvoices []model.CustomerInvoice `json:"customerInvoices"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/invoices", query, nil, &env); err != nil {
		return nil, err
	}
	return env.CustomerInvoices, nil
}

func (s *InvoicesService) Create(ctx context.Context, payload InvoiceCreate) (*model.CustomerInvoice, error) {
	var env struct {
		CustomerInvoice model.CustomerInvoice `json:"customerInvoice"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/invoices", nil, payload, &env); err != nil {
		return nil, err
	}
	return &env.CustomerInvoice, nil
}

func (s *InvoicesService) Update(ctx context.Context, id string, patch InvoicePatch) error {
	return s.client.do(ctx, http.MethodPut, "/invoices/"+id, nil, patch, nil)
}

func (s *InvoicesService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/invoices/"+id, nil, nil, nil)
}
