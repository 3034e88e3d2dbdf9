package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
	portssvc "github.com/JoelOntuDeveloper/banco-microservicios/internal/core/ports/services"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/metrics"
)

// provisioningAccounts is what the provisioner needs from the account service.
// CreateDefaultAccount stores the account and its opening deposit together.
type provisioningAccounts interface {
	ListAccountsByClient(ctx context.Context, clientID int64) ([]domain.Account, error)
	CreateDefaultAccount(ctx context.Context, clientID int64) (*domain.Account, error)
}

// provisioningService opens a default account for every newly registered customer.
type provisioningService struct {
	BaseService
	accounts provisioningAccounts
}

// ProvisioningServiceOption is a functional option for configuring the provisioner
type ProvisioningServiceOption func(*provisioningService)

// WithProvisioningMetrics counts outcomes per notification.
func WithProvisioningMetrics(collector *metrics.Collector) ProvisioningServiceOption {
	return func(s *provisioningService) {
		s.Metrics = collector
	}
}

// NewProvisioningService creates the account provisioner.
func NewProvisioningService(
	accounts provisioningAccounts,
	options ...ProvisioningServiceOption,
) portssvc.AccountProvisionerSvc {
	svc := &provisioningService{
		accounts: accounts,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AccountProvisionerSvc = (*provisioningService)(nil)

// HandleCustomerCreated is idempotent per client: a client that already owns any account
// is skipped. Errors are logged and reported as ProvisioningFailed, never returned.
func (s *provisioningService) HandleCustomerCreated(ctx context.Context, event domain.CustomerCreatedEvent) (outcome portssvc.ProvisioningOutcome) {
	defer func() {
		if r := recover(); r != nil {
			s.LogError(ctx, fmt.Errorf("panic: %v", r), "Recovered while provisioning account",
				slog.Int64("client_id", event.ClientID))
			outcome = portssvc.ProvisioningFailed
		}
		s.Metrics.RecordProvisioning(string(outcome))
	}()

	if event.ClientID <= 0 {
		s.LogWarn(ctx, "Ignoring customer notification without client id",
			slog.String("identification", event.Identification))
		return portssvc.ProvisioningFailed
	}

	existing, err := s.accounts.ListAccountsByClient(ctx, event.ClientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up accounts for new customer",
			slog.Int64("client_id", event.ClientID))
		return portssvc.ProvisioningFailed
	}
	if len(existing) > 0 {
		s.LogInfo(ctx, "Customer already has accounts, skipping provisioning",
			slog.Int64("client_id", event.ClientID),
			slog.Int("accounts", len(existing)))
		return portssvc.ProvisioningSkipped
	}

	account, err := s.accounts.CreateDefaultAccount(ctx, event.ClientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to open default account",
			slog.Int64("client_id", event.ClientID))
		return portssvc.ProvisioningFailed
	}

	s.LogInfo(ctx, "Default account provisioned",
		slog.Int64("client_id", event.ClientID),
		slog.String("account_id", account.AccountID),
		slog.String("account_number", account.AccountNumber))
	return portssvc.ProvisioningCreated
}
