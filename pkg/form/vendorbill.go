package form

import (
	"context"

	"github.com/oneflow/oneflow/pkg/api"
	"github.com/oneflow/oneflow/pkg/model"
)

type VendorBillForm struct {
	ProjectID       string
	PurchaseOrderID string // optional link; omitted from the payload when empty
	Number          string
	Vendor          string
	Amount          float64
	Date            string
	DueDate         string
	Status          model.VendorBillStatus
	Description     string

	initialProjectID string
	OnSuccess        func()
}

func NewVendorBillForm(projectID string) *VendorBillForm {
	f := &VendorBillForm{initialProjectID: projectID}
	f.Reset()
	return f
}

func (f *VendorBillForm) Reset() {
	f.ProjectID = f.initialProjectID
	f.PurchaseOrderID = ""
	f.Number = documentNumber("BILL")
	f.Vendor = ""
	f.Amount = 0
	f.Date = today()
	f.DueDate = daysFromNow(30)
	f.Status = model.VendorBillDraft
	f.Description = ""
}

func (f *VendorBillForm) Validate() error {
	var errs Errors
	errs.require("projectId", f.ProjectID, "Project is required")
	errs.require("number", f.Number, "Bill number is required")
	errs.require("vendor", f.Vendor, "Vendor is required")
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

func (f *VendorBillForm) Submit(ctx context.Context, bills *api.VendorBillsService) (*model.VendorBill, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	bill, err := bills.Create(ctx, api.VendorBillCreate{
		ProjectID:       f.ProjectID,
		PurchaseOrderID: f.PurchaseOrderID,
		Number:          f.Number,
		Vendor:          f.Vendor,
		Amount:          f.Amount,
		Date:            f.Date,
		DueDate:         f.DueDate,
		Status:          f.Status,
		Description:     f.Description,
	})
	if err != nil {
		return nil, err
	}

	if f.OnSuccess != nil {
		f.OnSuccess()
	}
	f.Reset()
	return bill, nil
}
