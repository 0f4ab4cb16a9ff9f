// Package authz maps (role, action) pairs to allow/deny decisions. The policy
// is a pure function over two closed enums so every combination is spelled
// out and testable.
package authz

import "github.com/ah0048/BrainWise-JobTask/internal/models"

type Action string

const (
	ActionCompanyCreate Action = "company:create"
	ActionCompanyRead   Action = "company:read"
	ActionCompanyUpdate Action = "company:update"
	ActionCompanyDelete Action = "company:delete"

	ActionDepartmentCreate Action = "department:create"
	ActionDepartmentRead   Action = "department:read"
	ActionDepartmentUpdate Action = "department:update"
	ActionDepartmentDelete Action = "department:delete"

	ActionEmployeeCreate Action = "employee:create"
	ActionEmployeeRead   Action = "employee:read"
	ActionEmployeeUpdate Action = "employee:update"
	ActionEmployeeDelete Action = "employee:delete"

	ActionUserList   Action = "user:list"
	ActionUserCreate Action = "user:create"
	ActionUserRead   Action = "user:read"
	ActionUserUpdate Action = "user:update"
)

// Allowed reports whether role may perform action. Admins may do everything;
// managers may write org records but not companies' existence or users;
// employees are read-only. The self-access override for a user's own record
// is applied by the handlers on top of this matrix.
func Allowed(role models.Role, action Action) bool {
	switch role {
	case models.RoleAdmin:
		return true
	case models.RoleManager:
		switch action {
		case ActionCompanyRead, ActionCompanyUpdate,
			ActionDepartmentCreate, ActionDepartmentRead, ActionDepartmentUpdate, ActionDepartmentDelete,
			ActionEmployeeCreate, ActionEmployeeRead, ActionEmployeeUpdate, ActionEmployeeDelete:
			return true
		}
		return false
	case models.RoleEmployee:
		switch action {
		case ActionCompanyRead, ActionDepartmentRead, ActionEmployeeRead:
			return true
		}
		return false
	}
	return false
}
