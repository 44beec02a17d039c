package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HuongNguyenDev/beautycare-admin/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List returns the newest entries first, optionally filtered by entity
// or action. The limit is capped to keep the console table snappy.
func (h *AuditLogsHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})

	if s := c.Query("entity"); s != "" {
		q = q.Where("entity = ?", s)
	}
	if s := c.Query("action"); s != "" {
		q = q.Where("action = ?", s)
	}

	limit := 100
	if s := c.Query("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 && v <= 500 {
			limit = v
		}
	}

	var logs []models.AuditLog
	if err := q.Order("created_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_audit_logs"})
		return
	}

	c.JSON(http.StatusOK, logs)
}
