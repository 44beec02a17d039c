package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/HuongNguyenDev/beautycare-admin/internal/httperr"
)

// idParam parses the :id path segment; on failure it writes the error
// response and returns ok=false.
func idParam(c *gin.Context) (uint, bool) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || v == 0 {
		httperr.BadRequest(c, "invalid_id", "id must be a positive number")
		return 0, false
	}
	return uint(v), true
}
