package services

import (
	portsrepo "github.com/JoelOntuDeveloper/banco-microservicios/internal/core/ports/repositories"
	portssvc "github.com/JoelOntuDeveloper/banco-microservicios/internal/core/ports/services"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/metrics"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/platform/config"
)

// NewAccountServiceContainer wires the services served by the account binary.
func NewAccountServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, collector *metrics.Collector) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The ledger comes first: accounts, reports and provisioning all read or seed it.
	container.Movement = NewMovementService(
		repos.MovementRepo,
		repos.AccountRepo,
		WithMovementMetrics(collector),
	)

	container.Account = NewAccountService(
		repos.AccountRepo,
		container.Movement,
		WithDefaultAccountType(cfg.DefaultAccountType),
		WithAccountMetrics(collector),
	)

	container.Reporting = NewReportingService(
		repos.AccountRepo,
		repos.MovementRepo,
		container.Movement,
		WithReportingMetrics(collector),
	)

	container.Provisioning = NewProvisioningService(
		container.Account,
		WithProvisioningMetrics(collector),
	)

	return container
}

// NewCustomerServiceContainer wires the services served by the customer binary.
func NewCustomerServiceContainer(repos portsrepo.RepositoryProvider, publisher portssvc.CustomerEventPublisher, collector *metrics.Collector) *portssvc.ServiceContainer {
	opts := []CustomerServiceOption{WithCustomerMetrics(collector)}
	if publisher != nil {
		opts = append(opts, WithCustomerEventPublisher(publisher))
	}
	return &portssvc.ServiceContainer{
		Customer: NewCustomerService(repos.CustomerRepo, opts...),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade      = (*accountService)(nil)
	_ portssvc.MovementSvcFacade     = (*movementService)(nil)
	_ portssvc.AccountProvisionerSvc = (*provisioningService)(nil)
)
