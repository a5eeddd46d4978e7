package form

import (
	"context"

	"github.com/oneflow/oneflow/pkg/api"
	"github.com/oneflow/oneflow/pkg/model"
)

type SalesOrderForm struct {
	ProjectID   string
	Number      string
	Customer    string
	Amount      float64
	Date        string
	Status      model.SalesOrderStatus
	Description string

	initialProjectID string
	OnSuccess        func()
}

func NewSalesOrderForm(projectID string) *SalesOrderForm {
	f := &SalesOrderForm{initialProjectID: projectID}
	f.Reset()
	return f
}

func (f *SalesOrderForm) Reset() {
	f.ProjectID = f.initialProjectID
	f.Number = documentNumber("SO")
	f.Customer = ""
	f.Amount = 0
	f.Date = today()
	f.Status = model.SalesOrderDraft
	f.Description = ""
}

func (f *SalesOrderForm) Validate() error {
	var errs Errors
	errs.require("projectId", f.ProjectID, "Project is required")
	errs.require("number", f.Number, "Order number is required")
	errs.require("customer", f.Customer, "Customer is required")
	if f.Amount < 0 {
		errs.add("amount", "Amount must be positive")
	}
	errs.require("date", f.Date, "Date is required")
	if !f.Status.Valid() {
		errs.add("status", "Invalid status")
	}
	return errs.orNil()
}

func (f *SalesOrderForm) Submit(ctx context.Context, orders *api.SalesOrdersService) (*model.SalesOrder, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	order, err := orders.Create(ctx, api.SalesOrderCreate{
		ProjectID:   f.ProjectID,
		Number:      f.Number,
		Customer:    f.Customer,
		Amount:      f.Amount,
		Date:        f.Date,
		Status:      f.Status,
		Description: f.Description,
	})
	if err != nil {
		return nil, err
	}

	if f.OnSuccess != nil {
		f.OnSuccess()
	}
	f.Reset()
	return order, nil
}
