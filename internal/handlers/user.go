package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ah0048/BrainWise-JobTask/internal/authz"
	"github.com/ah0048/BrainWise-JobTask/internal/middleware"
	"github.com/ah0048/BrainWise-JobTask/internal/models"
	"github.com/ah0048/BrainWise-JobTask/internal/records"
)

type UserHandler struct {
	Service *records.Service
}

type createUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

type updateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Name     *string `json:"name" binding:"omitempty,min=2"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	Role     *string `json:"role"`
}

func NewUserHandler(service *records.Service) *UserHandler {
	return &UserHandler{Service: service}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Service.ListUsers(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	user, err := h.Service.CreateUser(c.Request.Context(), records.UserInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     models.Role(req.Role),
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Get allows admins to read any user; everyone else only their own record.
func (h *UserHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if !h.selfOrAllowed(c, id, authz.ActionUserRead) {
		return
	}

	user, err := h.Service.GetUser(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if !h.selfOrAllowed(c, id, authz.ActionUserUpdate) {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	update := records.UserUpdate{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	}
	if req.Role != nil {
		// Only admins may change roles, including on their own record.
		role, _ := middleware.CurrentRole(c)
		if role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		newRole := models.Role(*req.Role)
		update.Role = &newRole
	}

	user, err := h.Service.UpdateUser(c.Request.Context(), id, update)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// selfOrAllowed applies the self-access override on top of the role policy:
// a user always passes for their own record.
func (h *UserHandler) selfOrAllowed(c *gin.Context, target uuid.UUID, action authz.Action) bool {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return false
	}
	if actorID == target.String() {
		return true
	}
	role, ok := middleware.CurrentRole(c)
	if !ok || !authz.Allowed(role, action) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return false
	}
	return true
}
