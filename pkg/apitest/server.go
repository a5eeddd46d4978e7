// Package apitest is an in-memory double of the OneFlow backend's REST
// surface, close enough for the client, stores and forms to be tested
// against realistic semantics: server-assigned IDs, bearer-token auth,
// envelope-wrapped responses and {error: string} failure bodies.
package apitest

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/oneflow/oneflow/pkg/auth"
	"github.com/oneflow/oneflow/pkg/model"
)

type userRecord struct {
	model.User
	password string
}

type Server struct {
	router *gin.Engine
	tokens *auth.TokenManager
	logger *zap.Logger

	mu             sync.Mutex
	users          []userRecord
	projects       []model.Project
	tasks          []model.Task
	salesOrders    []model.SalesOrder
	purchaseOrders []model.PurchaseOrder
	invoices       []model.CustomerInvoice
	vendorBills    []model.VendorBill
	expenses       []model.Expense
	timesheets     []model.Timesheet

	failNextProjectList bool
}

func NewServer(logger *zap.Logger) *Server {
	s := &Server{
		tokens: auth.NewTokenManager([]byte("apitest-signing-key"), time.Hour),
		logger: logger,
	}
	s.setupRouter()
	return s
}

func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRouter() {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/auth/login", s.handleLogin)
	r.POST("/auth/signup", s.handleSignup)

	authed := r.Group("/")
	authed.Use(s.requireAuth())
	{
		authed.GET("/auth/me", s.handleMe)

		authed.GET("/projects", s.listProjects)
		authed.POST("/projects", s.createProject)
		authed.GET("/projects/:id", s.getProject)
		authed.PUT("/projects/:id", s.updateProject)
		authed.DELETE("/projects/:id", s.deleteProject)

		authed.GET("/tasks", s.listTasks)
		authed.POST("/tasks", s.createTask)
		authed.GET("/tasks/:id", s.getTask)
		authed.PUT("/tasks/:id", s.updateTask)
		authed.DELETE("/tasks/:id", s.deleteTask)

		authed.GET("/sales-orders", s.listSalesOrders)
		authed.POST("/sales-orders", s.createSalesOrder)
		authed.PUT("/sales-orders/:id", s.updateSalesOrder)
		authed.DELETE("/sales-orders/:id", s.deleteSalesOrder)

		authed.GET("/purchase-orders", s.listPurchaseOrders)
		authed.POST("/purchase-orders", s.createPurchaseOrder)
		authed.PUT("/purchase-orders/:id", s.updatePurchaseOrder)
		authed.DELETE("/purchase-orders/:id", s.deletePurchaseOrder)

		authed.GET("/invoices", s.listInvoices)
		authed.POST("/invoices", s.createInvoice)
		authed.PUT("/invoices/:id", s.updateInvoice)
		authed.DELETE("/invoices/:id", s.deleteInvoice)

		authed.GET("/vendor-bills", s.listVendorBills)
		authed.POST("/vendor-bills", s.createVendorBill)
		authed.PUT("/vendor-bills/:id", s.updateVendorBill)
		authed.DELETE("/vendor-bills/:id", s.deleteVendorBill)

		authed.GET("/expenses", s.listExpenses)
		authed.POST("/expenses", s.createExpense)
		authed.PUT("/expenses/:id", s.updateExpense)
		authed.DELETE("/expenses/:id", s.deleteExpense)

		authed.GET("/timesheets", s.listTimesheets)
		authed.POST("/timesheets", s.createTimesheet)
		authed.PUT("/timesheets/:id", s.updateTimesheet)
		authed.DELETE("/timesheets/:id", s.deleteTimesheet)

		authed.GET("/analytics", s.handleAnalytics)

		authed.GET("/users", s.listUsers)
		authed.GET("/users/profile", s.getProfile)
		authed.PUT("/users/profile", s.updateProfile)
		authed.PUT("/users/password", s.changePassword)
	}

	s.router = r
}

func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authorization := c.GetHeader("Authorization")
		if authorization == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization"})
			return
		}
		parts := strings.SplitN(authorization, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization"})
			return
		}
		claims, err := s.tokens.ValidateSessionToken(strings.TrimSpace(parts[1]))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

// FailNextProjectsList makes the next GET /projects return 500, simulating a
// refresh failure after a successful write.
func (s *Server) FailNextProjectsList() {
	s.mu.Lock()
	s.failNextProjectList = true
	s.mu.Unlock()
}

func (s *Server) currentUser(c *gin.Context) *userRecord {
	id := c.GetString("user_id")
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i]
		}
	}
	return nil
}
