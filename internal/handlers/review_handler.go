package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HuongNguyenDev/beautycare-admin/internal/audit"
	"github.com/HuongNguyenDev/beautycare-admin/internal/models"
	"github.com/HuongNguyenDev/beautycare-admin/internal/validators"
)

type ReviewHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewReviewHandler(db *gorm.DB, audit *audit.Dispatcher) *ReviewHandler {
	return &ReviewHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateReviewRequest struct {
	AppointmentID uint    `json:"appointmentId" binding:"required"`
	EmployeeID    uint    `json:"employeeId" binding:"required"`
	ServiceID     uint    `json:"serviceId" binding:"required"`
	Rating        float64 `json:"rating"`
	Comment       string  `json:"comment"`
}

type UpdateReviewRequest struct {
	Rating   *float64 `json:"rating,omitempty"`
	Comment  *string  `json:"comment,omitempty"`
	Response *string  `json:"response,omitempty"`
}

// --------- Handlers ---------

func (h *ReviewHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})

	if s := c.Query("employeeId"); s != "" {
		q = q.Where("employee_id = ?", s)
	}
	if s := c.Query("serviceId"); s != "" {
		q = q.Where("service_id = ?", s)
	}
	if s := c.Query("appointmentId"); s != "" {
		q = q.Where("appointment_id = ?", s)
	}

	var reviews []models.Review
	if err := q.Order("created_at DESC").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_reviews"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !validators.IsValidRating(req.Rating) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_rating"})
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, req.AppointmentID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "appointment_not_found"})
		return
	}

	review := models.Review{
		AppointmentID: req.AppointmentID,
		EmployeeID:    req.EmployeeID,
		ServiceID:     req.ServiceID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}

	if err := h.db.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_review"})
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "review_created",
		Entity:   "review",
		EntityID: &review.ID,
	})

	c.JSON(http.StatusCreated, review)
}

// Update covers both the customer editing their rating/comment and the
// business filling in the response.
func (h *ReviewHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var review models.Review
	if err := h.db.First(&review, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "review_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_review"})
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Rating != nil {
		if !validators.IsValidRating(*req.Rating) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_rating"})
			return
		}
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}
	if req.Response != nil {
		review.Response = *req.Response
	}

	if err := h.db.Save(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_review"})
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "review_updated",
		Entity:   "review",
		EntityID: &review.ID,
	})

	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var review models.Review
	if err := h.db.First(&review, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "review_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_review"})
		return
	}

	if err := h.db.Delete(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_review"})
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "review_deleted",
		Entity:   "review",
		EntityID: &review.ID,
	})

	c.Status(http.StatusNoContent)
}
