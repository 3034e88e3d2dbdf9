package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusAndLabel(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantLabel string
	}{
		{"invalid movement", apperrors.NewInvalidMovementError("value required"), http.StatusBadRequest, "Validation Error"},
		{"invalid date range", apperrors.NewInvalidDateRangeError("future dates"), http.StatusBadRequest, "Validation Error"},
		{"account not found", &apperrors.AccountNotFoundError{AccountID: "a1"}, http.StatusNotFound, "Not Found"},
		{"no movements", &apperrors.NoMovementsFoundError{ClientID: 1}, http.StatusNotFound, "Not Found"},
		{"duplicate customer", &apperrors.CustomerAlreadyExistsError{Field: "identification", Value: "123"}, http.StatusConflict, "Conflict"},
		{"inactive account", &apperrors.AccountInactiveError{AccountNumber: "100", Status: "BLOCKED"}, http.StatusUnprocessableEntity, "Business Rule Violation"},
		{"insufficient balance", &apperrors.InsufficientBalanceError{Current: decimal.NewFromInt(1), Requested: decimal.NewFromInt(2)}, http.StatusUnprocessableEntity, "Business Rule Violation"},
		{"infrastructure", apperrors.NewInfrastructureError("load account", errors.New("conn refused")), http.StatusInternalServerError, "Internal Server Error"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "Internal Server Error"},
		{"wrapped validation", fmt.Errorf("create: %w", apperrors.NewValidationError("type required")), http.StatusBadRequest, "Validation Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, apperrors.HTTPStatus(tt.err))
			assert.Equal(t, tt.wantLabel, apperrors.Label(tt.err))
		})
	}
}

func TestInfrastructureError_KeepsCauseHidesMessage(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := apperrors.NewInfrastructureError("save movement", cause)

	assert.ErrorIs(t, err, apperrors.ErrInternal)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset by peer")
	assert.Equal(t, apperrors.GenericInternalMessage, apperrors.PublicMessage(err))
	assert.Nil(t, apperrors.NewInfrastructureError("noop", nil))
}

func TestInsufficientBalanceError_Fields(t *testing.T) {
	err := error(&apperrors.InsufficientBalanceError{
		Current:   decimal.RequireFromString("100.00"),
		Requested: decimal.RequireFromString("200.00"),
	})

	var target *apperrors.InsufficientBalanceError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, "insufficient balance: available 100.00, requested 200.00", err.Error())
	assert.Equal(t, err.Error(), apperrors.PublicMessage(err))
}
