package form

import (
	"context"

	"github.com/oneflow/oneflow/pkg/api"
	"github.com/oneflow/oneflow/pkg/model"
)

type InvoiceForm struct {
	ProjectID    string
	SalesOrderID string // optional link; omitted from the payload when empty
	Number       string
	Customer     string
	Amount       float64
	Date         string
	DueDate      string
	Status       model.InvoiceStatus
	Description  string

	initialProjectID string
	OnSuccess        func()
}

func NewInvoiceForm(projectID string) *InvoiceForm {
	f := &InvoiceForm{initialProjectID: projectID}
	f.Reset()
	return f
}

func (f *InvoiceForm) Reset() {
	f.ProjectID = f.initialProjectID
	f.SalesOrderID = ""
	f.Number = documentNumber("INV")
	f.Customer = ""
	f.Amount = 0
	f.Date = today()
	f.DueDate = daysFromNow(30)
	f.Status = model.InvoiceDraft
	f.Description = ""
}

func (f *InvoiceForm) Validate() error {
	var errs Errors
	errs.require("projectId", f.ProjectID, "Project is required")
	errs.require("number", f.Number, "Invoice number is required")
	errs.require("customer", f.Customer, "Customer is required")
	if f.Amount < 0 {
		errs.add("amount", "Amount must be positive")
	}
	errs.require("date", f.Date, "Date is required")
	errs.require("dueDate", f.DueDate, "Due date is required")
	if !f.Status.Valid() {
		errs.add("status", "Invalid status")
	}
	return errs.orNil()
}

func (f *InvoiceForm) Submit(ctx context.Context, invoices *api.InvoicesService) (*model.CustomerInvoice, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	invoice, err := invoices.Create(ctx, api.InvoiceCreate{
		ProjectID:    f.ProjectID,
		SalesOrderID: f.SalesOrderID,
		Number:       f.Number,
		Customer:     f.Customer,
		Amount:       f.Amount,
		Date:         f.Date,
		DueDate:      f.DueDate,
		Status:       f.Status,
		Description:  f.Description,
	})
	if err != nil {
		return nil, err
	}

	if f.OnSuccess != nil {
		f.OnSuccess()
	}
	f.Reset()
	return invoice, nil
}
