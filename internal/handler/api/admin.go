package api

import (
	"errors"
	"net/http"

	resdto "petagenda/internal/handler/dto/response"
	"petagenda/internal/handler/httperr"
	"petagenda/internal/usecase/commands"
	"petagenda/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	resetScheduler     commands.MonthlyResetScheduler
	resetMarkerQueries queries.ResetMarkerQueries
}

func NewAdminHandler(
	resetScheduler commands.MonthlyResetScheduler,
	resetMarkerQueries queries.ResetMarkerQueries,
) *AdminHandler {
	return &AdminHandler{
		resetScheduler:     resetScheduler,
		resetMarkerQueries: resetMarkerQueries,
	}
}

// @Summary Trigger monthly reset
// @Description Evaluate the monthly extras reset for the current period
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.ResetReportResponse
// @Router /admin/monthly-reset [post]
func (h *AdminHandler) RunMonthlyReset(c *gin.Context) {
	report, err := h.resetScheduler.RunMonthlyReset(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Monthly reset failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResetReport(report))
}

// @Summary List reset markers
// @Tags admin
// @Produce json
// @Success 200 {array} resdto.ResetMarkerResponse
// @Router /admin/reset-markers [get]
func (h *AdminHandler) ListResetMarkers(c *gin.Context) {
	views, err := h.resetMarkerQueries.ListRecent(c.Request.Context(), 0)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reset markers", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResetMarkerViews(views))
}

// @Summary Get reset marker
// @Tags admin
// @Produce json
// @Param period path string true "Period key (YYYY-MM)"
// @Success 200 {object} resdto.ResetMarkerResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/reset-markers/{period} [get]
func (h *AdminHandler) GetResetMarker(c *gin.Context) {
	view, err := h.resetMarkerQueries.GetByPeriod(c.Request.Context(), c.Param("period"))
	if err != nil {
		if errors.Is(err, queries.ErrResetMarkerNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reset marker not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reset marker", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResetMarkerView(view))
}
