package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ah0048/BrainWise-JobTask/internal/models"
)

var allActions = []Action{
	ActionCompanyCreate, ActionCompanyRead, ActionCompanyUpdate, ActionCompanyDelete,
	ActionDepartmentCreate, ActionDepartmentRead, ActionDepartmentUpdate, ActionDepartmentDelete,
	ActionEmployeeCreate, ActionEmployeeRead, ActionEmployeeUpdate, ActionEmployeeDelete,
	ActionUserList, ActionUserCreate, ActionUserRead, ActionUserUpdate,
}

func TestAdminAllowedEverything(t *testing.T) {
	for _, action := range allActions {
		assert.True(t, Allowed(models.RoleAdmin, action), "admin should be allowed %s", action)
	}
}

func TestManagerMatrix(t *testing.T) {
	allowed := map[Action]bool{
		ActionCompanyRead:   true,
		ActionCompanyUpdate: true,

		ActionDepartmentCreate: true,
		ActionDepartmentRead:   true,
		ActionDepartmentUpdate: true,
		ActionDepartmentDelete: true,

		ActionEmployeeCreate: true,
		ActionEmployeeRead:   true,
		ActionEmployeeUpdate: true,
		ActionEmployeeDelete: true,
	}
	for _, action := range allActions {
		assert.Equal(t, allowed[action], Allowed(models.RoleManager, action), "manager on %s", action)
	}
}

func TestEmployeeReadOnly(t *testing.T) {
	allowed := map[Action]bool{
		ActionCompanyRead:    true,
		ActionDepartmentRead: true,
		ActionEmployeeRead:   true,
	}
	for _, action := range allActions {
		assert.Equal(t, allowed[action], Allowed(models.RoleEmployee, action), "employee on %s", action)
	}
}

func TestUnknownRoleDenied(t *testing.T) {
	for _, action := range allActions {
		assert.False(t, Allowed(models.Role("superuser"), action))
		assert.False(t, Allowed(models.Role(""), action))
	}
}
