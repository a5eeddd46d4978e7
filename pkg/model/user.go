package model

type UserRole string

const (
	RoleAdmin          UserRole = "admin"
	RoleProjectManager UserRole = "project_manager"
	RoleTeamMember     UserRole = "team_member"
	RoleSalesFinance   UserRole = "sales_finance"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleProjectManager, RoleTeamMember, RoleSalesFinance:
		return true
	}
	return false
}

type User struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Role  UserRole `json:"role"`
}
