package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ah0048/BrainWise-JobTask/internal/records"
)

type DepartmentHandler struct {
	Service *records.Service
}

type createDepartmentRequest struct {
	CompanyID string `json:"companyId" binding:"required,uuid"`
	Name      string `json:"name" binding:"required,max=100"`
}

type updateDepartmentRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

func NewDepartmentHandler(service *records.Service) *DepartmentHandler {
	return &DepartmentHandler{Service: service}
}

func (h *DepartmentHandler) List(c *gin.Context) {
	departments, err := h.Service.ListDepartments(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, departments)
}

func (h *DepartmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	department, err := h.Service.GetDepartment(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, department)
}

func (h *DepartmentHandler) Create(c *gin.Context) {
	var req createDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid companyId"})
		return
	}

	department, err := h.Service.CreateDepartment(c.Request.Context(), records.DepartmentInput{
		CompanyID: companyID,
		Name:      req.Name,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, department)
}

func (h *DepartmentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req updateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	department, err := h.Service.UpdateDepartment(c.Request.Context(), id, req.Name)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, department)
}

func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.Service.DeleteDepartment(c.Request.Context(), id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
