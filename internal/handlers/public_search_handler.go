package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/HuongNguyenDev/beautycare-admin/internal/domain/diploma"
	"github.com/HuongNguyenDev/beautycare-admin/internal/httperr"
	"github.com/HuongNguyenDev/beautycare-admin/internal/httpresp"
	ucDiploma "github.com/HuongNguyenDev/beautycare-admin/internal/usecase/diploma"
)

// PublicSearchHandler backs the unauthenticated diploma lookup page.
type PublicSearchHandler struct {
	searchUC *ucDiploma.SearchDiplomas
	lookupUC *ucDiploma.LookupDiploma
}

func NewPublicSearchHandler(
	searchUC *ucDiploma.SearchDiplomas,
	lookupUC *ucDiploma.LookupDiploma,
) *PublicSearchHandler {
	return &PublicSearchHandler{
		searchUC: searchUC,
		lookupUC: lookupUC,
	}
}

func (h *PublicSearchHandler) Search(c *gin.Context) {
	q := domain.SearchQuery{
		DiplomaNumber: c.Query("diplomaNumber"),
		StudentName:   c.Query("studentName"),
		StudentID:     c.Query("studentId"),
		BirthDate:     c.Query("birthDate"),
	}

	if s := c.Query("entryNumber"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			httperr.BadRequest(c, "invalid_entry_number", "entryNumber must be a positive number")
			return
		}
		q.EntryNumber = v
	}

	if s := c.Query("decisionId"); s != "" {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_decision_id", "decisionId must be numeric")
			return
		}
		q.DecisionID = uint(v)
	}

	results, err := h.searchUC.Execute(c.Request.Context(), q)
	if err != nil {
		respondUsecaseError(c, err, "failed_to_search_diplomas")
		return
	}

	httpresp.List(c, results)
}

func (h *PublicSearchHandler) Lookup(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	result, err := h.lookupUC.Execute(c.Request.Context(), id)
	if err != nil {
		respondUsecaseError(c, err, "failed_to_lookup_diploma")
		return
	}

	httpresp.OK(c, result)
}
