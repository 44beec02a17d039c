package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/HuongNguyenDev/beautycare-admin/internal/httpresp"
	ucStats "github.com/HuongNguyenDev/beautycare-admin/internal/usecase/stats"
)

type StatsHandler struct {
	revenueUC *ucStats.RevenueReport
}

func NewStatsHandler(revenueUC *ucStats.RevenueReport) *StatsHandler {
	return &StatsHandler{revenueUC: revenueUC}
}

// Revenue serves the report page. Omitting start and end covers the
// whole history; both bounds are inclusive calendar days.
func (h *StatsHandler) Revenue(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")

	result, err := h.revenueUC.Execute(c.Request.Context(), start, end)
	if err != nil {
		respondUsecaseError(c, err, "failed_to_calculate_stats")
		return
	}

	httpresp.OK(c, result)
}
