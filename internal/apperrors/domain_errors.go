package apperrors

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InvalidMovementError is returned when a requested movement value is rejected.
type InvalidMovementError struct {
	Reason string
}

func (e *InvalidMovementError) Error() string { return "invalid movement: " + e.Reason }
func (e *InvalidMovementError) Unwrap() error { return ErrValidation }

// NewInvalidMovementError builds an InvalidMovementError.
func NewInvalidMovementError(reason string) error {
	return &InvalidMovementError{Reason: reason}
}

// InvalidDateRangeError is returned when a statement period is rejected.
type InvalidDateRangeError struct {
	Reason string
}

func (e *InvalidDateRangeError) Error() string { return "invalid date range: " + e.Reason }
func (e *InvalidDateRangeError) Unwrap() error { return ErrValidation }

// NewInvalidDateRangeError builds an InvalidDateRangeError.
func NewInvalidDateRangeError(reason string) error {
	return &InvalidDateRangeError{Reason: reason}
}

// AccountNotFoundError is returned when an account id does not resolve.
type AccountNotFoundError struct {
	AccountID string
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("account %s not found", e.AccountID)
}
func (e *AccountNotFoundError) Unwrap() error { return ErrNotFound }

// MovementNotFoundError is returned when a movement id does not resolve.
type MovementNotFoundError struct {
	MovementID string
}

func (e *MovementNotFoundError) Error() string {
	return fmt.Sprintf("movement %s not found", e.MovementID)
}
func (e *MovementNotFoundError) Unwrap() error { return ErrNotFound }

// CustomerNotFoundError is returned when a customer lookup by id or identification fails.
type CustomerNotFoundError struct {
	Key string
}

func (e *CustomerNotFoundError) Error() string {
	return fmt.Sprintf("customer %s not found", e.Key)
}
func (e *CustomerNotFoundError) Unwrap() error { return ErrNotFound }

// NoAccountsFoundError is returned when a client has no active accounts to report on.
type NoAccountsFoundError struct {
	ClientID int64
}

func (e *NoAccountsFoundError) Error() string {
	return fmt.Sprintf("no active accounts found for client %d", e.ClientID)
}
func (e *NoAccountsFoundError) Unwrap() error { return ErrNotFound }

// NoMovementsFoundError is returned when a statement period holds no movements.
type NoMovementsFoundError struct {
	ClientID int64
	Start    string
	End      string
}

func (e *NoMovementsFoundError) Error() string {
	return fmt.Sprintf("no movements found for client %d between %s and %s", e.ClientID, e.Start, e.End)
}
func (e *NoMovementsFoundError) Unwrap() error { return ErrNotFound }

// AccountInactiveError is returned when a movement targets an account that is not ACTIVE.
type AccountInactiveError struct {
	AccountNumber string
	Status        string
}

func (e *AccountInactiveError) Error() string {
	return fmt.Sprintf("account %s is not active (status %s)", e.AccountNumber, e.Status)
}
func (e *AccountInactiveError) Unwrap() error { return ErrBusinessRule }

// InsufficientBalanceError is returned when a withdrawal exceeds the available balance.
type InsufficientBalanceError struct {
	Current   decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: available %s, requested %s",
		e.Current.StringFixed(2), e.Requested.StringFixed(2))
}
func (e *InsufficientBalanceError) Unwrap() error { return ErrBusinessRule }

// CustomerAlreadyExistsError is returned when a unique customer attribute is taken.
type CustomerAlreadyExistsError struct {
	Field string
	Value string
}

func (e *CustomerAlreadyExistsError) Error() string {
	return fmt.Sprintf("customer with %s %s already exists", e.Field, e.Value)
}
func (e *CustomerAlreadyExistsError) Unwrap() error { return ErrDuplicate }

// InfrastructureError wraps an unexpected failure. The cause is kept for logging
// and matching, while PublicMessage hides it from callers.
type InfrastructureError struct {
	Op    string
	Cause error
}

func (e *InfrastructureError) Error() string {
	if e.Cause == nil {
		return e.Op
	}
	return e.Op + ": " + e.Cause.Error()
}
func (e *InfrastructureError) Unwrap() []error { return []error{ErrInternal, e.Cause} }

// NewInfrastructureError wraps cause, returning nil for a nil cause.
func NewInfrastructureError(op string, cause error) error {
	if cause == nil {
		return nil
	}
	return &InfrastructureError{Op: op, Cause: cause}
}

// NewValidationError wraps ErrValidation with a caller-facing message.
func NewValidationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
