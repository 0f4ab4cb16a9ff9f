package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ah0048/BrainWise-JobTask/internal/models"
	"github.com/ah0048/BrainWise-JobTask/internal/records"
)

type EmployeeHandler struct {
	Service *records.Service
}

type employeeRequest struct {
	CompanyID    string `json:"companyId" binding:"required,uuid"`
	DepartmentID string `json:"departmentId" binding:"required,uuid"`
	Status       string `json:"status"`
	Name         string `json:"name" binding:"required,max=100"`
	Email        string `json:"email" binding:"required,email"`
	MobileNumber string `json:"mobileNumber" binding:"required"`
	Address      string `json:"address"`
	Designation  string `json:"designation" binding:"max=100"`
}

func NewEmployeeHandler(service *records.Service) *EmployeeHandler {
	return &EmployeeHandler{Service: service}
}

func (r *employeeRequest) toInput() (records.EmployeeInput, error) {
	companyID, err := uuid.Parse(r.CompanyID)
	if err != nil {
		return records.EmployeeInput{}, err
	}
	departmentID, err := uuid.Parse(r.DepartmentID)
	if err != nil {
		return records.EmployeeInput{}, err
	}
	return records.EmployeeInput{
		CompanyID:    companyID,
		DepartmentID: departmentID,
		Status:       models.EmployeeStatus(r.Status),
		Name:         r.Name,
		Email:        r.Email,
		MobileNumber: r.MobileNumber,
		Address:      r.Address,
		Designation:  r.Designation,
	}, nil
}

func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.Service.ListEmployees(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	employee, err := h.Service.GetEmployee(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	employee, err := h.Service.CreateEmployee(c.Request.Context(), input)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	employee, err := h.Service.UpdateEmployee(c.Request.Context(), id, input)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.Service.DeleteEmployee(c.Request.Context(), id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
