package model

import "testing"

func TestStatusEnums(t *testing.T) {
	cases := []struct {
		name  string
		valid bool
		check func() bool
	}{
		{"project planned", true, ProjectPlanned.Valid},
		{"project bogus", false, ProjectStatus("archived").Valid},
		{"task blocked", true, TaskBlocked.Valid},
		{"task bogus", false, TaskStatus("paused").Valid},
		{"priority high", true, PriorityHigh.Valid},
		{"priority bogus", false, TaskPriority("urgent").Valid},
		{"sales order invoiced", true, SalesOrderInvoiced.Valid},
		{"purchase order billed", true, PurchaseOrderBilled.Valid},
		{"invoice sent", true, InvoiceSent.Valid},
		{"vendor bill paid", true, VendorBillPaid.Valid},
		{"expense rejected", true, ExpenseRejected.Valid},
		{"expense bogus", false, ExpenseStatus("reimbursed").Valid},
		{"role admin", true, RoleAdmin.Valid},
		{"role bogus", false, UserRole("superuser").Valid},
	}

	for _, tc := range cases {
		if got := tc.check(); got != tc.valid {
			t.Errorf("%s: expected valid=%v, got %v", tc.name, tc.valid, got)
		}
	}
}
