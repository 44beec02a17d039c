package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HuongNguyenDev/beautycare-admin/internal/audit"
	"github.com/HuongNguyenDev/beautycare-admin/internal/models"
)

type DiplomaBookHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewDiplomaBookHandler(db *gorm.DB, audit *audit.Dispatcher) *DiplomaBookHandler {
	return &DiplomaBookHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateDiplomaBookRequest struct {
	Year int `json:"year" binding:"required,min=1990,max=2100"`
}

type UpdateDiplomaBookRequest struct {
	Year *int `json:"year,omitempty"`
}

// --------- Handlers ---------

func (h *DiplomaBookHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})

	if s := c.Query("year"); s != "" {
		q = q.Where("year = ?", s)
	}

	var books []models.DiplomaBook
	if err := q.Order("year DESC").Find(&books).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_books"})
		return
	}

	c.JSON(http.StatusOK, books)
}

func (h *DiplomaBookHandler) Create(c *gin.Context) {
	var req CreateDiplomaBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	// counter starts at zero; the first reservation hands out 1
	book := models.DiplomaBook{
		Year:               req.Year,
		CurrentEntryNumber: 0,
	}

	if err := h.db.Create(&book).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_book"})
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "diploma_book_created",
		Entity:   "diploma_book",
		EntityID: &book.ID,
	})

	c.JSON(http.StatusCreated, book)
}

// Update edits the year label only. The counter belongs to the
// issuance transaction and is never writable through the API.
func (h *DiplomaBookHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var book models.DiplomaBook
	if err := h.db.First(&book, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "book_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_book"})
		return
	}

	var req UpdateDiplomaBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Year != nil {
		book.Year = *req.Year
	}

	if err := h.db.Save(&book).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_book"})
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "diploma_book_updated",
		Entity:   "diploma_book",
		EntityID: &book.ID,
	})

	c.JSON(http.StatusOK, book)
}

func (h *DiplomaBookHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var book models.DiplomaBook
	if err := h.db.First(&book, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "book_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_book"})
		return
	}

	var linked int64
	if err := h.db.Model(&models.Diploma{}).
		Where("diploma_book_id = ?", book.ID).
		Count(&linked).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_book"})
		return
	}

	if linked > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "book_has_diplomas"})
		return
	}

	if err := h.db.Delete(&book).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_book"})
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "diploma_book_deleted",
		Entity:   "diploma_book",
		EntityID: &book.ID,
	})

	c.Status(http.StatusNoContent)
}
