package apitest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oneflow/oneflow/pkg/model"
)

func indexOf[T any](items []T, match func(T) bool) int {
	for i, item := range items {
		if match(item) {
			return i
		}
	}
	return -1
}

// Projects

// SeedProject inserts a project with a server-assigned id.
func (s *Server) SeedProject(p model.Project) model.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = uuid.NewString()
	s.projects = append(s.projects, p)
	return p
}

func (s *Server) listProjects(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failNextProjectList {
		s.failNextProjectList = false
		c.JSON(http.StatusInternalServerError, gin.H{"error": "simulated failure"})
		return
	}

	projects := make([]model.Project, len(s.projects))
	copy(projects, s.projects)
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (s *Server) getProject(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	i := indexOf(s.projects, func(p model.Project) bool { return p.ID == id })
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": s.projects[i]})
}

func (s *Server) createProject(c *gin.Context) {
	var p model.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = uuid.NewString()
	if p.Team == nil {
		p.Team = []string{}
	}
	s.projects = append(s.projects, p)
	c.JSON(http.StatusCreated, gin.H{"project": p})
}

func (s *Server) updateProject(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	i := indexOf(s.projects, func(p model.Project) bool { return p.ID == id })
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	// Binding over the existing record leaves absent fields untouched.
	updated := s.projects[i]
	if err := c.ShouldBindJSON(&updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	updated.ID = id
	s.projects[i] = updated
	c.JSON(http.StatusOK, gin.H{"project": updated})
}

func (s *Server) deleteProject(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	i := indexOf(s.projects, func(p model.Project) bool { return p.ID == id })
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	s.projects = append(s.projects[:i], s.projects[i+1:]...)
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// Tasks

func (s *Server) SeedTask(t model.Task) model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = uuid.NewString()
	s.tasks = append(s.tasks, t)
	return t
}

func (s *Server) listTasks(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projectID := c.Query("projectId")
	tasks := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if projectID == "" || t.ProjectID == projectID {
			tasks = append(tasks, t)
		}
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (s *Server) getTask(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	i := indexOf(s.tasks, func(t model.Task) bool { return t.ID == id })
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": s.tasks[i]})
}

func (s *Server) createTask(c *gin.Context) {
	var t model.Task
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = uuid.NewString()
	s.tasks = append(s.tasks, t)
	c.JSON(http.StatusCreated, gin.H{"task": t})
}

func (s *Server) updateTask(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	i := indexOf(s.tasks, func(t model.Task) bool { return t.ID == id })
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	updated := s.tasks[i]
	if err := c.ShouldBindJSON(&updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	updated.ID = id
	// Logged hours only move through timesheets.
	updated.HoursLogged = s.tasks[i].HoursLogged
	s.tasks[i] = updated
	c.JSON(http.StatusOK, gin.H{"task": updated})
}

func (s *Server) deleteTask(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	i := indexOf(s.tasks, func(t model.Task) bool { return t.ID == id })
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// Sales orders

func (s *Server) listSalesOrders(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projectID := c.Query("projectId")
	orders := make([]model.SalesOrder, 0, len(s.salesOrders))
	for _, o := range s.salesOrders {
		if projectID == "" || o.ProjectID == projectID {
			orders = append(orders, o)
		}
	}
	c.JSON(http.StatusOK, gin.H{"salesOrders": orders})
}

func (s *Server) createSalesOrder(c *gin.Context) {
	var o model.SalesOrder
	if err := c.ShouldBindJSON(&o); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = uuid.NewString()
	s.salesOrders = append(s.salesOrders, o)
	c.JSON(http.StatusCreated, gin.H{"salesOrder": o})
}

func (s *Server) updateSalesOrder(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	i := indexOf(s.salesOrders, func(o model.SalesOrder) bool { return o.ID == id })
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sales order not found"})
		return
	}

	updated := s.salesOrders[i]
	if err := c.ShouldBindJSON(&updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	updated.ID = id
	s.salesOrders[i] = updated
	c.JSON(http.StatusOK, gin.H{"salesOrder": updated})
}

func (s *Server) deleteSalesOrder(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	i := indexOf(s.salesOrders, func(o model.SalesOrder) bool { return o.ID == id })
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sales order not found"})
		return
	}
	s.salesOrders = append(s.salesOrders[:i], s.salesOrders[i+1:]...)
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// Purchase orders

func (s *Server) listPurchaseOrders(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projectID := c.Query("projectId")
	orders := make([]model.PurchaseOrder, 0, len(s.purchaseOrders))
	for _, o := range s.purchaseOrders {
		if projectID == "" || o.ProjectID == projectID {
			orders = append(orders, o)
		}
	}
	c.JSON(http.StatusOK, gin.H{"purchaseOrders": orders})
}

func (s *Server) createPurchaseOrder(c *gin.Context) {
	var o model.PurchaseOrder
	if err := c.ShouldBindJSON(&o); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = uuid.NewString()
	s.purchaseOrders = append(s.purchaseOrders, o)
	c.JSON(http.StatusCreated, gin.H{"purchaseOrder": o})
}

func (s *Server) updatePurchaseOrder(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	i := indexOf(s.purchaseOrders, func(o model.PurchaseOrder) bool { return o.ID == id })
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Purchase order not found"})
		return
	}

	updated := s.purchaseOrders[i]
	if err := c.ShouldBindJSON(&updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	updated.ID = id
	s.purchaseOrders[i] = updated
	c.JSON(http.StatusOK, gin.H{"purchaseOrder": updated})
}

func (s *Server) deletePurchaseOrder(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	i := indexOf(s.purchaseOrders, func(o model.PurchaseOrder) bool { return o.ID == id })
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Purchase order not found"})
		return
	}
	s.purchaseOrders = append(s.purchaseOrders[:i], s.purchaseOrders[i+1:]...)
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// Customer invoices

func (s *Server) listInvoices(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projectID := c.Query("projectId")
	invoices := make([]model.CustomerInvoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		if projectID == "" || inv.ProjectID == projectID {
			invoices = append(invoices, inv)
		}
	}
	c.JSON(http.StatusOK, gin.H{"customerInvoices": invoices})
}

func (s *Server) createInvoice(c *gin.Context) {
	var inv model.CustomerInvoice
	if err := c.ShouldBindJSON(&inv); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	inv.ID = uuid.NewString()
	s.invoices = append(s.invoices, inv)
	c.JSON(http.StatusCreated, gin.H{"customerInvoice": inv})
}

func (s *Server) updateInvoice(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	i := indexOf(s.invoices, func(inv model.CustomerInvoice) bool { return inv.ID == id })
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}

	updated := s.invoices[i]
	if err := c.ShouldBindJSON(&updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	updated.ID = id
	s.invoices[i] = updated
	c.JSON(http.StatusOK, gin.H{"customerInvoice": updated})
}

func (s *Server) deleteInvoice(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	i := indexOf(s.invoices, func(inv model.CustomerInvoice) bool { return inv.ID == id })
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		return
	}
	s.invoices = append(s.invoices[:i], s.invoices[i+1:]...)
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// Vendor bills

func (s *Server) listVendorBills(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projectID := c.Query("projectId")
	bills := make([]model.VendorBill, 0, len(s.vendorBills))
	for _, b := range s.vendorBills {
		if projectID == "" || b.ProjectID == projectID {
			bills = append(bills, b)
		}
	}
	c.JSON(http.StatusOK, gin.H{"vendorBills": bills})
}

func (s *Server) createVendorBill(c *gin.Context) {
	var b model.VendorBill
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = uuid.NewString()
	s.vendorBills = append(s.vendorBills, b)
	c.JSON(http.StatusCreated, gin.H{"vendorBill": b})
}

func (s *Server) updateVendorBill(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	i := indexOf(s.vendorBills, func(b model.VendorBill) bool { return b.ID == id })
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor bill not found"})
		return
	}

	updated := s.vendorBills[i]
	if err := c.ShouldBindJSON(&updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	updated.ID = id
	s.vendorBills[i] = updated
	c.JSON(http.StatusOK, gin.H{"vendorBill": updated})
}

func (s *Server) deleteVendorBill(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	i := indexOf(s.vendorBills, func(b model.VendorBill) bool { return b.ID == id })
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor bill not found"})
		return
	}
	s.vendorBills = append(s.vendorBills[:i], s.vendorBills[i+1:]...)
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// Expenses

func (s *Server) listExpenses(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projectID := c.Query("projectId")
	expenses := make([]model.Expense, 0, len(s.expenses))
	for _, e := range s.expenses {
		if projectID == "" || e.ProjectID == projectID {
			expenses = append(expenses, e)
		}
	}
	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

func (s *Server) createExpense(c *gin.Context) {
	var e model.Expense
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = uuid.NewString()
	s.expenses = append(s.expenses, e)
	c.JSON(http.StatusCreated, gin.H{"expense": e})
}

func (s *Server) updateExpense(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	i := indexOf(s.expenses, func(e model.Expense) bool { return e.ID == id })
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}

	updated := s.expenses[i]
	if err := c.ShouldBindJSON(&updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	updated.ID = id
	s.expenses[i] = updated
	c.JSON(http.StatusOK, gin.H{"expense": updated})
}

func (s *Server) deleteExpense(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	i := indexOf(s.expenses, func(e model.Expense) bool { return e.ID == id })
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}
	s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// Timesheets

func (s *Server) listTimesheets(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projectID := c.Query("projectId")
	taskID := c.Query("taskId")
	timesheets := make([]model.Timesheet, 0, len(s.timesheets))
	for _, t := range s.timesheets {
		if projectID != "" && t.ProjectID != projectID {
			continue
		}
		if taskID != "" && t.TaskID != taskID {
			continue
		}
		timesheets = append(timesheets, t)
	}
	c.JSON(http.StatusOK, gin.H{"timesheets": timesheets})
}

func (s *Server) createTimesheet(c *gin.Context) {
	var t model.Timesheet
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = uuid.NewString()
	s.timesheets = append(s.timesheets, t)
	s.adjustTaskHours(t.TaskID, t.Hours)
	c.JSON(http.StatusCreated, gin.H{"timesheet": t})
}

func (s *Server) updateTimesheet(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	i := indexOf(s.timesheets, func(t model.Timesheet) bool { return t.ID == id })
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Timesheet not found"})
		return
	}

	previous := s.timesheets[i]
	updated := previous
	if err := c.ShouldBindJSON(&updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	updated.ID = id
	s.timesheets[i] = updated
	s.adjustTaskHours(updated.TaskID, updated.Hours-previous.Hours)
	c.JSON(http.StatusOK, gin.H{"timesheet": updated})
}

func (s *Server) deleteTimesheet(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	i := indexOf(s.timesheets, func(t model.Timesheet) bool { return t.ID == id })
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Timesheet not found"})
		return
	}
	removed := s.timesheets[i]
	s.timesheets = append(s.timesheets[:i], s.timesheets[i+1:]...)
	s.adjustTaskHours(removed.TaskID, -removed.Hours)
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// adjustTaskHours folds a timesheet delta into the task's logged hours;
// callers hold s.mu.
func (s *Server) adjustTaskHours(taskID string, delta float64) {
	i := indexOf(s.tasks, func(t model.Task) bool { return t.ID == taskID })
	if i < 0 {
		return
	}
	s.tasks[i].HoursLogged += delta
}
