package model

type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "pending"
	ExpenseApproved ExpenseStatus = "approved"
	ExpenseRejected ExpenseStatus = "rejected"
)

func (s ExpenseStatus) Valid() bool {
	switch s {
	case ExpensePending, ExpenseApproved, ExpenseRejected:
		return true
	}
	return false
}

type Expense struct {
	ID          string        `json:"id"`
	ProjectID   string        `json:"projectId"`
	Employee    string        `json:"employee"`
	Amount      float64       `json:"amount"`
	Date        string        `json:"date"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	Billable    bool          `json:"billable"`
	Status      ExpenseStatus `json:"status"`
	Receipt     string        `json:"receipt,omitempty"`
}
