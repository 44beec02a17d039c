package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/HuongNguyenDev/beautycare-admin/internal/httperr"
)

// respondUsecaseError maps a use-case error onto the HTTP envelope.
// Business codes keep their code string; anything else becomes a 500
// with the handler's fallback code.
func respondUsecaseError(c *gin.Context, err error, fallback string) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, fallback, "unexpected error")
		return
	}

	switch code {
	case "service_not_found",
		"employee_not_found",
		"appointment_not_found",
		"book_not_found",
		"diploma_not_found",
		"decision_not_found",
		"review_not_found":
		httperr.NotFound(c, code, "not found")

	case "time_conflict",
		"duplicate_diploma_number":
		httperr.Conflict(c, code, "conflict")

	default:
		httperr.BadRequest(c, code, "request refused")
	}
}
