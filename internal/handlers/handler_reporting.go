package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/JoelOntuDeveloper/banco-microservicios/internal/core/ports/services"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/dto"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/middleware"
	"github.com/gin-gonic/gin"
)

type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)
	rg.GET("/reports/:clientID", h.getStatement)
}

// getStatement godoc
// @Summary Get a client's account statement
// @Description Consolidates every active account of the client with its movements in the inclusive date range
// @Tags reports
// @Produce json
// @Param clientID path int true "Client ID"
// @Param startDate query string true "First day (YYYY-MM-DD)"
// @Param endDate query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} dto.StatementReportResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid date range"
// @Failure 404 {object} dto.ErrorResponse "No accounts or no movements"
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/{clientID} [get]
func (h *reportingHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	clientID, err := int64Param(c, "clientID")
	if err != nil {
		respondError(c, err)
		return
	}

	var query dto.StatementQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, err)
		return
	}
	startDate, err := dateQuery(query.StartDate)
	if err != nil {
		respondError(c, err)
		return
	}
	endDate, err := dateQuery(query.EndDate)
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := h.reportingService.GenerateStatement(c.Request.Context(), clientID, startDate, endDate)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Statement generated",
		slog.Int64("client_id", clientID),
		slog.Int("accounts", len(report.Accounts)))
	c.JSON(http.StatusOK, dto.ToStatementReportResponse(report))
}
