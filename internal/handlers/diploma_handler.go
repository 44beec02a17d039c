package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HuongNguyenDev/beautycare-admin/internal/audit"
	"github.com/HuongNguyenDev/beautycare-admin/internal/httperr"
	"github.com/HuongNguyenDev/beautycare-admin/internal/httpresp"
	"github.com/HuongNguyenDev/beautycare-admin/internal/models"
	ucDiploma "github.com/HuongNguyenDev/beautycare-admin/internal/usecase/diploma"
	"github.com/HuongNguyenDev/beautycare-admin/internal/validators"
)

type DiplomaHandler struct {
	db       *gorm.DB
	audit    *audit.Dispatcher
	createUC *ucDiploma.CreateDiploma
}

func NewDiplomaHandler(
	db *gorm.DB,
	audit *audit.Dispatcher,
	createUC *ucDiploma.CreateDiploma,
) *DiplomaHandler {
	return &DiplomaHandler{
		db:       db,
		audit:    audit,
		createUC: createUC,
	}
}

// --------- Requests ---------

type CreateDiplomaRequest struct {
	DiplomaBookID  uint    `json:"diplomaBookId" binding:"required"`
	DiplomaNumber  string  `json:"diplomaNumber" binding:"required"`
	StudentName    string  `json:"studentName" binding:"required"`
	StudentID      string  `json:"studentId" binding:"required"`
	Major          string  `json:"major" binding:"required"`
	TrainingType   string  `json:"trainingType"`
	BirthDate      string  `json:"birthDate"`
	Birthplace     string  `json:"birthplace"`
	Ethnicity      string  `json:"ethnicity"`
	GPA            float64 `json:"gpa"`
	Ranking        string  `json:"ranking"`
	GraduationDate string  `json:"graduationDate" binding:"required"`
	DecisionID     *uint   `json:"decisionId,omitempty"`
}

type UpdateDiplomaRequest struct {
	DiplomaNumber  *string  `json:"diplomaNumber,omitempty"`
	StudentName    *string  `json:"studentName,omitempty"`
	StudentID      *string  `json:"studentId,omitempty"`
	Major          *string  `json:"major,omitempty"`
	TrainingType   *string  `json:"trainingType,omitempty"`
	BirthDate      *string  `json:"birthDate,omitempty"`
	Birthplace     *string  `json:"birthplace,omitempty"`
	Ethnicity      *string  `json:"ethnicity,omitempty"`
	GPA            *float64 `json:"gpa,omitempty"`
	Ranking        *string  `json:"ranking,omitempty"`
	GraduationDate *string  `json:"graduationDate,omitempty"`
	DecisionID     *uint    `json:"decisionId,omitempty"`
}

// --------- Handlers ---------

func (h *DiplomaHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})

	if s := c.Query("diplomaBookId"); s != "" {
		q = q.Where("diploma_book_id = ?", s)
	}
	if s := c.Query("decisionId"); s != "" {
		q = q.Where("decision_id = ?", s)
	}

	var diplomas []models.Diploma
	if err := q.Order("entry_number ASC").Find(&diplomas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_diplomas"})
		return
	}

	c.JSON(http.StatusOK, diplomas)
}

func (h *DiplomaHandler) Create(c *gin.Context) {
	var req CreateDiplomaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid diploma payload")
		return
	}

	d, err := h.createUC.Execute(c.Request.Context(), ucDiploma.CreateDiplomaInput{
		DiplomaBookID:  req.DiplomaBookID,
		DiplomaNumber:  req.DiplomaNumber,
		StudentName:    req.StudentName,
		StudentID:      req.StudentID,
		Major:          req.Major,
		TrainingType:   req.TrainingType,
		BirthDate:      req.BirthDate,
		Birthplace:     req.Birthplace,
		Ethnicity:      req.Ethnicity,
		GPA:            req.GPA,
		Ranking:        req.Ranking,
		GraduationDate: req.GraduationDate,
		DecisionID:     req.DecisionID,
	})
	if err != nil {
		respondUsecaseError(c, err, "failed_to_create_diploma")
		return
	}

	httpresp.Created(c, d)
}

// Update edits descriptive fields. The entry number and the owning
// book are fixed at issuance and stay out of the request shape.
func (h *DiplomaHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var d models.Diploma
	if err := h.db.First(&d, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "diploma_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_diploma"})
		return
	}

	var req UpdateDiplomaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.GraduationDate != nil && !validators.IsValidDate(*req.GraduationDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date_or_time"})
		return
	}
	if req.BirthDate != nil && *req.BirthDate != "" && !validators.IsValidDate(*req.BirthDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date_or_time"})
		return
	}

	if req.DiplomaNumber != nil {
		d.DiplomaNumber = *req.DiplomaNumber
	}
	if req.StudentName != nil {
		d.StudentName = *req.StudentName
	}
	if req.StudentID != nil {
		d.StudentID = *req.StudentID
	}
	if req.Major != nil {
		d.Major = *req.Major
	}
	if req.TrainingType != nil {
		d.TrainingType = *req.TrainingType
	}
	if req.BirthDate != nil {
		d.BirthDate = *req.BirthDate
	}
	if req.Birthplace != nil {
		d.Birthplace = *req.Birthplace
	}
	if req.Ethnicity != nil {
		d.Ethnicity = *req.Ethnicity
	}
	if req.GPA != nil {
		d.GPA = *req.GPA
	}
	if req.Ranking != nil {
		d.Ranking = *req.Ranking
	}
	if req.GraduationDate != nil {
		d.GraduationDate = *req.GraduationDate
	}
	if req.DecisionID != nil {
		d.DecisionID = req.DecisionID
	}

	if err := h.db.Save(&d).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_diploma"})
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "diploma_updated",
		Entity:   "diploma",
		EntityID: &d.ID,
	})

	c.JSON(http.StatusOK, d)
}

func (h *DiplomaHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var d models.Diploma
	if err := h.db.First(&d, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "diploma_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_diploma"})
		return
	}

	if err := h.db.Delete(&d).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_diploma"})
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "diploma_deleted",
		Entity:   "diploma",
		EntityID: &d.ID,
	})

	c.Status(http.StatusNoContent)
}
