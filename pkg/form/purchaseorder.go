package form

import (
	"context"

	"github.com/oneflow/oneflow/pkg/api"
	"github.com/oneflow/oneflow/pkg/model"
)

type PurchaseOrderForm struct {
	ProjectID   string
	Number      string
	Vendor      string
	Amount      float64
	Date        string
	Status      model.PurchaseOrderStatus
	Description string

	initialProjectID string
	OnSuccess        func()
}

func NewPurchaseOrderForm(projectID string) *PurchaseOrderForm {
	f := &PurchaseOrderForm{initialProjectID: projectID}
	f.Reset()
	return f
}

func (f *PurchaseOrderForm) Reset() {
	f.ProjectID = f.initialProjectID
	f.Number = documentNumber("PO")
	f.Vendor = ""
	f.Amount = 0
	f.Date = today()
	f.Status = model.PurchaseOrderDraft
	f.Description = ""
}

func (f *PurchaseOrderForm) Validate() error {
	var errs Errors
	errs.require("projectId", f.ProjectID, "Project is required")
	errs.require("number", f.Number, "Order number is required")
	errs.require("vendor", f.Vendor, "Vendor is required")
	if f.Amount < 0 {
		errs.add("amount", "Amount must be positive")
	}
	errs.require("date", f.Date, "Date is required")
	if !f.Status.Valid() {
		errs.add("status", "Invalid status")
	}
	return errs.orNil()
}

func (f *PurchaseOrderForm) Submit(ctx context.Context, orders *api.PurchaseOrdersService) (*model.PurchaseOrder, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	order, err := orders.Create(ctx, api.PurchaseOrderCreate{
		ProjectID:   f.ProjectID,
		Number:      f.Number,
		Vendor:      f.Vendor,
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
