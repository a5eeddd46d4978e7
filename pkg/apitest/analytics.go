package apitest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oneflow/oneflow/pkg/model"
)

// handleAnalytics computes the snapshot from live state: revenue from
// customer invoices, cost from vendor bills plus expenses, utilization as
// logged over estimated hours per assignee.
func (s *Server) handleAnalytics(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := model.Analytics{
		TotalProjects:       len(s.projects),
		TotalTasks:          len(s.tasks),
		ProjectProgress:     make([]model.ProjectProgress, 0, len(s.projects)),
		ResourceUtilization: []model.ResourceUtilization{},
	}

	for _, t := range s.tasks {
		if t.Status == model.TaskDone {
			a.CompletedTasks++
		}
	}

	for _, ts := range s.timesheets {
		a.TotalHours += ts.Hours
		if ts.Billable {
			a.BillableHours += ts.Hours
		} else {
			a.NonBillableHours += ts.Hours
		}
	}

	for _, inv := range s.invoices {
		a.TotalRevenue += inv.Amount
	}
	for _, b := range s.vendorBills {
		a.TotalCost += b.Amount
	}
	for _, e := range s.expenses {
		a.TotalCost += e.Amount
	}
	a.Profit = a.TotalRevenue - a.TotalCost

	for _, p := range s.projects {
		a.ProjectProgress = append(a.ProjectProgress, model.ProjectProgress{
			Name:     p.Name,
			Progress: p.Progress,
		})
	}

	type hours struct{ logged, estimated float64 }
	byAssignee := map[string]*hours{}
	order := []string{}
	for _, t := range s.tasks {
		if t.Assignee == "" {
			continue
		}
		h, ok := byAssignee[t.Assignee]
		if !ok {
			h = &hours{}
			byAssignee[t.Assignee] = h
			order = append(order, t.Assignee)
		}
		h.logged += t.HoursLogged
		h.estimated += t.EstimatedHours
	}
	for _, name := range order {
		h := byAssignee[name]
		var utilization float64
		if h.estimated > 0 {
			utilization = 100 * h.logged / h.estimated
		}
		a.ResourceUtilization = append(a.ResourceUtilization, model.ResourceUtilization{
			Name:        name,
			Utilization: utilization,
		})
	}

	c.JSON(http.StatusOK, gin.H{"analytics": a})
}
