package model

type ProjectStatus string

const (
	ProjectPlanned    ProjectStatus = "planned"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectOnHold     ProjectStatus = "on_hold"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectPlanned, ProjectInProgress, ProjectCompleted, ProjectOnHold:
		return true
	}
	return false
}

// Project is a server-owned record; the server assigns IDs, the client never
// generates them. Progress is entered manually, not derived from tasks.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Status      ProjectStatus `json:"status"`
	Manager     string        `json:"manager"`
	Team        []string      `json:"team"`
	StartDate   string        `json:"startDate"`
	EndDate     string        `json:"endDate"`
	Budget      float64       `json:"budget"`
	Spent       float64       `json:"spent"`
	Progress    float64       `json:"progress"`
	Description string        `json:"description"`
}
