package services

import (
	"context"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
)

// ProvisioningOutcome is the terminal state of handling one customer-created notification.
type ProvisioningOutcome string

const (
	ProvisioningCreated ProvisioningOutcome = "created"
	ProvisioningSkipped ProvisioningOutcome = "skipped"
	ProvisioningFailed  ProvisioningOutcome = "failed"
)

// AccountProvisionerSvc opens a default account for new customers.
// It never returns an error: failures are logged and reported as ProvisioningFailed.
type AccountProvisionerSvc interface {
	HandleCustomerCreated(ctx context.Context, event domain.CustomerCreatedEvent) ProvisioningOutcome
}
