package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HuongNguyenDev/beautycare-admin/internal/audit"
	"github.com/HuongNguyenDev/beautycare-admin/internal/models"
)

type EmployeeHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewEmployeeHandler(db *gorm.DB, audit *audit.Dispatcher) *EmployeeHandler {
	return &EmployeeHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateEmployeeRequest struct {
	Name               string   `json:"name" binding:"required"`
	MaxCustomersPerDay int      `json:"maxCustomersPerDay" binding:"min=0"`
	WorkSchedule       []string `json:"workSchedule"`
	ServiceIDs         []uint   `json:"services"`
}

type UpdateEmployeeRequest struct {
	Name               *string   `json:"name,omitempty"`
	MaxCustomersPerDay *int      `json:"maxCustomersPerDay,omitempty"`
	WorkSchedule       *[]string `json:"workSchedule,omitempty"`
	ServiceIDs         *[]uint   `json:"services,omitempty"`
}

// --------- Handlers ---------

func (h *EmployeeHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Session(&gorm.Session{})
	if query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+query+"%")
	}

	var employees []models.Employee
	if err := q.Order("id ASC").Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_employees"})
		return
	}

	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	employee := models.Employee{
		Name:               req.Name,
		MaxCustomersPerDay: req.MaxCustomersPerDay,
		WorkSchedule:       req.WorkSchedule,
		ServiceIDs:         req.ServiceIDs,
	}

	if err := h.db.Create(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_employee"})
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "employee_created",
		Entity:   "employee",
		EntityID: &employee.ID,
	})

	c.JSON(http.StatusCreated, employee)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var employee models.Employee
	if err := h.db.First(&employee, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "employee_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_employee"})
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.MaxCustomersPerDay != nil {
		employee.MaxCustomersPerDay = *req.MaxCustomersPerDay
	}
	if req.WorkSchedule != nil {
		employee.WorkSchedule = *req.WorkSchedule
	}
	if req.ServiceIDs != nil {
		employee.ServiceIDs = *req.ServiceIDs
	}

	if err := h.db.Save(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_employee"})
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "employee_updated",
		Entity:   "employee",
		EntityID: &employee.ID,
	})

	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var employee models.Employee
	if err := h.db.First(&employee, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "employee_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_employee"})
		return
	}

	if err := h.db.Delete(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_employee"})
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "employee_deleted",
		Entity:   "employee",
		EntityID: &employee.ID,
	})

	c.Status(http.StatusNoContent)
}
