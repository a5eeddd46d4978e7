package model

type ProjectProgress struct {
	Name     string  `json:"name"`
	Progress float64 `json:"progress"`
}

type ResourceUtilization struct {
	Name        string  `json:"name"`
	Utilization float64 `json:"utilization"`
}

// Analytics is a server-computed snapshot across everything visible to the
// caller's auth scope.
type Analytics struct {
	TotalProjects       int                   `json:"totalProjects"`
	TotalTasks          int                   `json:"totalTasks"`
	CompletedTasks      int                   `json:"completedTasks"`
	TotalHours          float64               `json:"totalHours"`
	BillableHours       float64               `json:"billableHours"`
	NonBillableHours    float64               `json:"nonBillableHours"`
	TotalRevenue        float64               `json:"totalRevenue"`
	TotalCost           float64               `json:"totalCost"`
	Profit              float64               `json:"profit"`
	ProjectProgress     []ProjectProgress     `json:"projectProgress"`
	ResourceUtilization []ResourceUtilization `json:"resourceUtilization"`
}
