package form

import (
	"context"

	"github.com/oneflow/oneflow/pkg/api"
	"github.com/oneflow/oneflow/pkg/model"
)

type ExpenseForm struct {
	ProjectID   string
	Employee    string
	Amount      float64
	Date        string
	Category    string
	Description string
	Billable    bool
	Status      model.ExpenseStatus

	initialProjectID string
	initialEmployee  string
	OnSuccess        func()
}

// NewExpenseForm defaults the employee field to the signed-in user's name,
// matching the dialog.
func NewExpenseForm(projectID, employee string) *ExpenseForm {
	f := &ExpenseForm{initialProjectID: projectID, initialEmployee: employee}
	f.Reset()
	return f
}

func (f *ExpenseForm) Reset() {
	f.ProjectID = f.initialProjectID
	f.Employee = f.initialEmployee
	f.Amount = 0
	f.Date = today()
	f.Category = ""
	f.Description = ""
	f.Billable = false
	f.Status = model.ExpensePending
}

func (f *ExpenseForm) Validate() error {
	var errs Errors
	errs.require("projectId", f.ProjectID, "Project is required")
	errs.require("employee", f.Employee, "Employee is required")
	if f.Amount < 0 {
		errs.add("amount", "Amount must be positive")
	}
	errs.require("date", f.Date, "Date is required")
	errs.require("category", f.Category, "Category is required")
	if !f.Status.Valid() {
		errs.add("status", "Invalid status")
	}
	return errs.orNil()
}

func (f *ExpenseForm) Submit(ctx context.Context, expenses *api.ExpensesService) (*model.Expense, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	expense, err := expenses.Create(ctx, api.ExpenseCreate{
		ProjectID:   f.ProjectID,
		Employee:    f.Employee,
		Amount:      f.Amount,
		Date:        f.Date,
		Category:    f.Category,
		Description: f.Description,
		Billable:    f.Billable,
		Status:      f.Status,
	})
	if err != nil {
		return nil, err
	}

	if f.OnSuccess != nil {
		f.OnSuccess()
	}
	f.Reset()
	return expense, nil
}
