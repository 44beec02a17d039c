package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HuongNguyenDev/beautycare-admin/internal/audit"
	"github.com/HuongNguyenDev/beautycare-admin/internal/models"
	"github.com/HuongNguyenDev/beautycare-admin/internal/validators"
)

type DecisionHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewDecisionHandler(db *gorm.DB, audit *audit.Dispatcher) *DecisionHandler {
	return &DecisionHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateDecisionRequest struct {
	DecisionNumber string `json:"decisionNumber" binding:"required"`
	IssuedDate     string `json:"issuedDate" binding:"required"`
	Description    string `json:"description"`
	DiplomaBookID  uint   `json:"diplomaBookId" binding:"required"`
}

type UpdateDecisionRequest struct {
	DecisionNumber *string `json:"decisionNumber,omitempty"`
	IssuedDate     *string `json:"issuedDate,omitempty"`
	Description    *string `json:"description,omitempty"`
	DiplomaBookID  *uint   `json:"diplomaBookId,omitempty"`
}

// --------- Handlers ---------

func (h *DecisionHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})

	if s := c.Query("diplomaBookId"); s != "" {
		q = q.Where("diploma_book_id = ?", s)
	}

	var decisions []models.GraduationDecision
	if err := q.Order("id ASC").Find(&decisions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_decisions"})
		return
	}

	c.JSON(http.StatusOK, decisions)
}

func (h *DecisionHandler) Create(c *gin.Context) {
	var req CreateDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !validators.IsValidDate(req.IssuedDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date_or_time"})
		return
	}

	var book models.DiplomaBook
	if err := h.db.First(&book, req.DiplomaBookID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "book_not_found"})
		return
	}

	decision := models.GraduationDecision{
		DecisionNumber: req.DecisionNumber,
		IssuedDate:     req.IssuedDate,
		Description:    req.Description,
		DiplomaBookID:  req.DiplomaBookID,
	}

	if err := h.db.Create(&decision).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_decision"})
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "decision_created",
		Entity:   "graduation_decision",
		EntityID: &decision.ID,
	})

	c.JSON(http.StatusCreated, decision)
}

func (h *DecisionHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var decision models.GraduationDecision
	if err := h.db.First(&decision, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "decision_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_decision"})
		return
	}

	var req UpdateDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.IssuedDate != nil && !validators.IsValidDate(*req.IssuedDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date_or_time"})
		return
	}

	if req.DecisionNumber != nil {
		decision.DecisionNumber = *req.DecisionNumber
	}
	if req.IssuedDate != nil {
		decision.IssuedDate = *req.IssuedDate
	}
	if req.Description != nil {
		decision.Description = *req.Description
	}
	if req.DiplomaBookID != nil {
		decision.DiplomaBookID = *req.DiplomaBookID
	}

	if err := h.db.Save(&decision).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_decision"})
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "decision_updated",
		Entity:   "graduation_decision",
		EntityID: &decision.ID,
	})

	c.JSON(http.StatusOK, decision)
}

func (h *DecisionHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var decision models.GraduationDecision
	if err := h.db.First(&decision, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "decision_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_decision"})
		return
	}

	if err := h.db.Delete(&decision).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_decision"})
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "decision_deleted",
		Entity:   "graduation_decision",
		EntityID: &decision.ID,
	})

	c.Status(http.StatusNoContent)
}
