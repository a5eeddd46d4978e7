package model

type SalesOrderStatus string

const (
	SalesOrderDraft     SalesOrderStatus = "draft"
	SalesOrderConfirmed SalesOrderStatus = "confirmed"
	SalesOrderInvoiced  SalesOrderStatus = "invoiced"
)

func (s SalesOrderStatus) Valid() bool {
	switch s {
	case SalesOrderDraft, SalesOrderConfirmed, SalesOrderInvoiced:
		return true
	}
	return false
}

type SalesOrder struct {
	ID          string           `json:"id"`
	ProjectID   string           `json:"projectId"`
	Number      string           `json:"number"`
	Customer    string           `json:"customer"`
	Amount      float64          `json:"amount"`
	Date        string           `json:"date"`
	Status      SalesOrderStatus `json:"status"`
	Description string           `json:"description"`
}

type PurchaseOrderStatus string

const (
	PurchaseOrderDraft     PurchaseOrderStatus = "draft"
	PurchaseOrderConfirmed PurchaseOrderStatus = "confirmed"
	PurchaseOrderBilled    PurchaseOrderStatus = "billed"
)

func (s PurchaseOrderStatus) Valid() bool {
	switch s {
	case PurchaseOrderDraft, PurchaseOrderConfirmed, PurchaseOrderBilled:
		return true
	}
	return false
}

type PurchaseOrder struct {
	ID          string              `json:"id"`
	ProjectID   string              `json:"projectId"`
	Number      string              `json:"number"`
	Vendor      string              `json:"vendor"`
	Amount      float64             `json:"amount"`
	Date        string              `json:"date"`
	Status      PurchaseOrderStatus `json:"status"`
	Description string              `json:"description"`
}

type InvoiceStatus string

const (
	InvoiceDraft InvoiceStatus = "draft"
	InvoiceSent  InvoiceStatus = "sent"
	InvoicePaid  InvoiceStatus = "paid"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid:
		return true
	}
	return false
}

// CustomerInvoice is optionally linked to the sales order it invoices.
type CustomerInvoice struct {
	ID           string        `json:"id"`
	ProjectID    string        `json:"projectId"`
	SalesOrderID string        `json:"salesOrderId,omitempty"`
	Number       string        `json:"number"`
	Customer     string        `json:"customer"`
	Amount       float64       `json:"amount"`
	Date         string        `json:"date"`
	DueDate      string        `json:"dueDate"`
	Status       InvoiceStatus `json:"status"`
	Description  string        `json:"description"`
}

type VendorBillStatus string

const (
	VendorBillDraft     VendorBillStatus = "draft"
	VendorBillConfirmed VendorBillStatus = "confirmed"
	VendorBillPaid      VendorBillStatus = "paid"
)

func (s VendorBillStatus) Valid() bool {
	switch s {
	case VendorBillDraft, VendorBillConfirmed, VendorBillPaid:
		return true
	}
	return false
}

type VendorBill struct {
	ID              string           `json:"id"`
	ProjectID       string           `json:"projectId"`
	PurchaseOrderID string           `json:"purchaseOrderId,omitempty"`
	Number          string           `json:"number"`
	Vendor          string           `json:"vendor"`
	Amount          float64          `json:"amount"`
	Date            string           `json:"date"`
	DueDate         string           `json:"dueDate"`
	Status          VendorBillStatus `json:"status"`
	Description     string           `json:"description"`
}
