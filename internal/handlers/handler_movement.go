package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/JoelOntuDeveloper/banco-microservicios/internal/core/ports/services"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/dto"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/middleware"
	"github.com/gin-gonic/gin"
)

type movementHandler struct {
	movementService portssvc.MovementSvcFacade
}

func newMovementHandler(ms portssvc.MovementSvcFacade) *movementHandler {
	return &movementHandler{movementService: ms}
}

// registerMovementRoutes registers routes related to movements.
func registerMovementRoutes(rg *gin.RouterGroup, movementService portssvc.MovementSvcFacade) {
	h := newMovementHandler(movementService)

	movements := rg.Group("/movements")
	{
		movements.GET("", h.listMovements)
		movements.GET("/:movementID", h.getMovement)
		movements.POST("/account/:accountID", h.postMovement)
		movements.GET("/account/:accountID", h.listAccountMovements)
		movements.GET("/client/:clientID", h.listClientMovements)
	}
}

// postMovement godoc
// @Summary Post a movement to an account
// @Description A positive value deposits, a negative value withdraws
// @Tags movements
// @Accept  json
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   movement body dto.CreateMovementRequest true "Signed value"
// @Success 201 {object} dto.MovementResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid value"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 422 {object} dto.ErrorResponse "Inactive account or insufficient balance"
// @Failure 500 {object} dto.ErrorResponse
// @Router /movements/account/{accountID} [post]
func (h *movementHandler) postMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")
	var req dto.CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	record, err := h.movementService.PostMovement(c.Request.Context(), accountID, req.Value)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Movement posted",
		slog.String("account_id", accountID),
		slog.String("movement_id", record.MovementID),
		slog.String("kind", string(record.Kind)))
	c.JSON(http.StatusCreated, dto.ToMovementResponse(record))
}

// getMovement godoc
// @Summary Get a movement by ID
// @Tags movements
// @Produce  json
// @Param   movementID path string true "Movement ID"
// @Success 200 {object} dto.MovementResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /movements/{movementID} [get]
func (h *movementHandler) getMovement(c *gin.Context) {
	record, err := h.movementService.GetMovementByID(c.Request.Context(), c.Param("movementID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMovementResponse(record))
}

// listAccountMovements godoc
// @Summary List an account's movements, newest first
// @Tags movements
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListMovementsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /movements/account/{accountID} [get]
func (h *movementHandler) listAccountMovements(c *gin.Context) {
	var params dto.ListMovementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	page, err := h.movementService.ListMovementsByAccount(c.Request.Context(), c.Param("accountID"), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// listClientMovements godoc
// @Summary List the movements of every account of a client
// @Tags movements
// @Produce  json
// @Param   clientID path int true "Client ID"
// @Success 200 {array} dto.MovementResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /movements/client/{clientID} [get]
func (h *movementHandler) listClientMovements(c *gin.Context) {
	clientID, err := int64Param(c, "clientID")
	if err != nil {
		respondError(c, err)
		return
	}

	records, err := h.movementService.ListMovementsByClient(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMovementResponses(records))
}

// listMovements godoc
// @Summary List the latest movements across all accounts
// @Tags movements
// @Produce  json
// @Param   limit query int false "Maximum number of movements" default(20)
// @Success 200 {array} dto.MovementResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /movements [get]
func (h *movementHandler) listMovements(c *gin.Context) {
	var params dto.ListMovementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	records, err := h.movementService.ListMovements(c.Request.Context(), params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMovementResponses(records))
}
