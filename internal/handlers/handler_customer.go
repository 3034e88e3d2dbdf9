package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/JoelOntuDeveloper/banco-microservicios/internal/core/ports/services"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/dto"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/middleware"
	"github.com/gin-gonic/gin"
)

// customerHandler handles HTTP requests related to customers.
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
}

func newCustomerHandler(cs portssvc.CustomerSvcFacade) *customerHandler {
	return &customerHandler{customerService: cs}
}

// registerCustomerRoutes registers routes related to customers.
func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade) {
	h := newCustomerHandler(customerService)

	customers := rg.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
		customers.GET("/:customerID", h.getCustomer)
		customers.GET("/identification/:identification", h.getCustomerByIdentification)
		customers.PUT("/:customerID", h.updateCustomer)
		customers.DELETE("/:customerID", h.deactivateCustomer)
	}
}

// createCustomer godoc
// @Summary Register a customer
// @Description Registers a customer and announces it so that a default account gets opened
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Identification already registered"
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Customer registered", slog.Int64("customer_id", customer.CustomerID))
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// listCustomers godoc
// @Summary List customers
// @Tags customers
// @Produce  json
// @Success 200 {array} dto.CustomerResponse
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponses(customers))
}

// getCustomer godoc
// @Summary Get a customer by ID
// @Tags customers
// @Produce  json
// @Param   customerID path int true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /customers/{customerID} [get]
func (h *customerHandler) getCustomer(c *gin.Context) {
	customerID, err := int64Param(c, "customerID")
	if err != nil {
		respondError(c, err)
		return
	}
	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// getCustomerByIdentification godoc
// @Summary Get a customer by identification document
// @Tags customers
// @Produce  json
// @Param   identification path string true "Identification"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /customers/identification/{identification} [get]
func (h *customerHandler) getCustomerByIdentification(c *gin.Context) {
	customer, err := h.customerService.GetCustomerByIdentification(c.Request.Context(), c.Param("identification"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// updateCustomer godoc
// @Summary Update a customer
// @Description Only the provided fields change
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   customerID path int true "Customer ID"
// @Param   customer body dto.UpdateCustomerRequest true "Fields to update"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /customers/{customerID} [put]
func (h *customerHandler) updateCustomer(c *gin.Context) {
	customerID, err := int64Param(c, "customerID")
	if err != nil {
		respondError(c, err)
		return
	}
	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), customerID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// deactivateCustomer godoc
// @Summary Deactivate a customer
// @Description Soft delete: the customer is marked INACTIVE
// @Tags customers
// @Param   customerID path int true "Customer ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Already inactive"
// @Failure 404 {object} dto.ErrorResponse
// @Router /customers/{customerID} [delete]
func (h *customerHandler) deactivateCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customerID, err := int64Param(c, "customerID")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.customerService.DeactivateCustomer(c.Request.Context(), customerID); err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Customer deactivated", slog.Int64("customer_id", customerID))
	c.Status(http.StatusNoContent)
}
