package form

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	"github.com/oneflow/oneflow/pkg/api"
	"github.com/oneflow/oneflow/pkg/apitest"
	"github.com/oneflow/oneflow/pkg/model"
	"github.com/oneflow/oneflow/pkg/session"
	"github.com/oneflow/oneflow/pkg/store"
)

// countingClient records how many requests actually reach the network.
func countingClient(t *testing.T) (*api.Client, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL, session.NewMemStore(), zap.NewNop()), &calls
}

func backendClient(t *testing.T) (*api.Client, *apitest.Server) {
	t.Helper()
	backend := apitest.NewServer(zap.NewNop())
	srv := httptest.NewServer(backend.Router())
	t.Cleanup(srv.Close)

	tokens := session.NewMemStore()
	client := api.NewClient(srv.URL, tokens, zap.NewNop())
	backend.SeedUser("pm@oneflow.dev", "secret", "PM", model.RoleProjectManager)
	sess, err := client.Auth.Login(context.Background(), "pm@oneflow.dev", "secret")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	tokens.Save(sess.Token)
	return client, backend
}

func fieldMessage(t *testing.T, err error, field string) string {
	t.Helper()
	errs, ok := err.(Errors)
	if !ok {
		t.Fatalf("expected form.Errors, got %T (%v)", err, err)
	}
	for _, fe := range errs {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

func TestProjectFormRejectsProgressOutOfRange(t *testing.T) {
	client, calls := countingClient(t)
	projects := store.NewProjectStore(client, zap.NewNop())

	f := NewProjectForm()
	f.Name = "Brand Website"
	f.Manager = "PM"
	f.StartDate = "2026-01-01"
	f.EndDate = "2026-03-31"
	f.Progress = 150

	err := f.Submit(context.Background(), projects)
	if err == nil {
		t.Fatal("expected validation to block submission")
	}
	if msg := fieldMessage(t, err, "progress"); msg != "Progress must be between 0 and 100" {
		t.Fatalf("unexpected progress message %q", msg)
	}
	if atomic.LoadInt32(calls) != 0 {
		t.Fatal("validation failures must not reach the network")
	}
}

func TestProjectFormRequiredFields(t *testing.T) {
	f := NewProjectForm()
	err := f.Validate()
	if err == nil {
		t.Fatal("expected empty form to fail validation")
	}
	expected := map[string]string{
		"name":      "Project name is required",
		"manager":   "Manager is required",
		"startDate": "Start date is required",
		"endDate":   "End date is required",
	}
	for field, message := range expected {
		if msg := fieldMessage(t, err, field); msg != message {
			t.Errorf("field %s: expected %q, got %q", field, message, msg)
		}
	}
}

func TestTaskFormRejectsNegativeEstimate(t *testing.T) {
	client, calls := countingClient(t)

	f := NewTaskForm("p-1")
	f.Title = "Implementation"
	f.Assignee = "Dev"
	f.EstimatedHours = -5

	_, err := f.Submit(context.Background(), client.Tasks)
	if err == nil {
		t.Fatal("expected validation to block submission")
	}
	if msg := fieldMessage(t, err, "estimatedHours"); msg != "Estimated hours must be positive" {
		t.Fatalf("unexpected message %q", msg)
	}
	if atomic.LoadInt32(calls) != 0 {
		t.Fatal("validation failures must not reach the network")
	}
}

func TestSalesOrderFormRejectsNegativeAmount(t *testing.T) {
	client, calls := countingClient(t)

	f := NewSalesOrderForm("p-1")
	f.Customer = "Acme"
	f.Amount = -100

	_, err := f.Submit(context.Background(), client.SalesOrders)
	if err == nil {
		t.Fatal("expected validation to block submission")
	}
	if msg := fieldMessage(t, err, "amount"); msg != "Amount must be positive" {
		t.Fatalf("unexpected message %q", msg)
	}
	if atomic.LoadInt32(calls) != 0 {
		t.Fatal("validation failures must not reach the network")
	}
}

func TestTaskFormSubmitInjectsDefaultsAndResets(t *testing.T) {
	client, backend := backendClient(t)
	project := backend.SeedProject(model.Project{Name: "One"})

	f := NewTaskForm(project.ID)
	if f.Status != model.TaskNew || f.Priority != model.PriorityMedium {
		t.Fatalf("unexpected defaults: %+v", f)
	}
	if f.DueDate == "" {
		t.Fatal("expected a default due date")
	}

	notified := false
	f.OnSuccess = func() { notified = true }
	f.Title = "Implementation"
	f.Assignee = "Dev"
	f.EstimatedHours = 16

	task, err := f.Submit(context.Background(), client.Tasks)
	if err != nil {
		t.Fatalf("submit error: %v", err)
	}
	if task.ID == "" {
		t.Fatal("expected a server-assigned id")
	}
	if task.HoursLogged != 0 {
		t.Fatalf("new tasks must start with zero logged hours, got %v", task.HoursLogged)
	}
	if !notified {
		t.Fatal("expected the success callback")
	}
	if f.Title != "" || f.EstimatedHours != 0 {
		t.Fatal("expected fields to reset after success")
	}
	if f.ProjectID != project.ID {
		t.Fatal("reset must keep the dialog's project binding")
	}
}

func TestProjectFormSubmitThroughStore(t *testing.T) {
	client, _ := backendClient(t)
	projects := store.NewProjectStore(client, zap.NewNop())

	f := NewProjectForm()
	f.Name = "Mobile App"
	f.Manager = "PM"
	f.StartDate = "2026-02-01"
	f.EndDate = "2026-06-30"
	f.Budget = 150000

	if err := f.Submit(context.Background(), projects); err != nil {
		t.Fatalf("submit error: %v", err)
	}

	cached := projects.Projects()
	if len(cached) != 1 || cached[0].Name != "Mobile App" {
		t.Fatalf("expected the project in the resynced cache, got %+v", cached)
	}
	if f.Name != "" {
		t.Fatal("expected fields to reset after success")
	}
}

func TestExpenseFormDefaults(t *testing.T) {
	f := NewExpenseForm("p-1", "PM")
	if f.Employee != "PM" {
		t.Fatalf("expected the employee default, got %q", f.Employee)
	}
	if f.Billable {
		t.Fatal("expenses default to non-billable")
	}
	if f.Status != model.ExpensePending {
		t.Fatalf("expected pending default, got %q", f.Status)
	}
	if err := f.Validate(); err == nil {
		t.Fatal("expected missing category to fail validation")
	}
}

func TestTimesheetFormValidation(t *testing.T) {
	f := NewTimesheetForm("p-1", "")
	f.Employee = "Dev"
	f.Hours = -1

	err := f.Validate()
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if msg := fieldMessage(t, err, "taskId"); msg != "Task is required" {
		t.Fatalf("unexpected task message %q", msg)
	}
	if msg := fieldMessage(t, err, "hours"); msg != "Hours must be positive" {
		t.Fatalf("unexpected hours message %q", msg)
	}
	if !f.Billable {
		t.Fatal("timesheets default to billable")
	}
}

func TestInvoiceFormOptionalLink(t *testing.T) {
	client, backend := backendClient(t)
	project := backend.SeedProject(model.Project{Name: "One"})

	f := NewInvoiceForm(project.ID)
	f.Customer = "Acme"
	f.Amount = 1200

	invoice, err := f.Submit(context.Background(), client.Invoices)
	if err != nil {
		t.Fatalf("submit error: %v", err)
	}
	if invoice.SalesOrderID != "" {
		t.Fatalf("expected no sales order link, got %q", invoice.SalesOrderID)
	}
	if invoice.DueDate == "" {
		t.Fatal("expected the default due date to be submitted")
	}
}
