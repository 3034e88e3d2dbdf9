package services

import (
	"context"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/dto"
)

// CustomerReaderSvc defines read operations for customers
type CustomerReaderSvc interface {
	GetCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)
	GetCustomerByIdentification(ctx context.Context, identification string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	ExistsByIdentification(ctx context.Context, identification string) (bool, error)
}

// CustomerWriterSvc defines write operations for customers
type CustomerWriterSvc interface {
	// CreateCustomer registers a customer and announces it to other services.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)

	// UpdateCustomer applies the provided fields only.
	UpdateCustomer(ctx context.Context, customerID int64, req dto.UpdateCustomerRequest) (*domain.Customer, error)

	// DeactivateCustomer marks an ACTIVE customer INACTIVE.
	DeactivateCustomer(ctx context.Context, customerID int64) error
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}

// CustomerEventPublisher delivers customer lifecycle events to other services.
type CustomerEventPublisher interface {
	PublishCustomerCreated(ctx context.Context, event domain.CustomerCreatedEvent) error
}
