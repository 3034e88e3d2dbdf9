package repositories

import (
	"context"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)
	FindCustomerByIdentification(ctx context.Context, identification string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	ExistsByIdentification(ctx context.Context, identification string) (bool, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer inserts a customer and returns it with its generated id.
	SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error)

	// UpdateCustomer overwrites person data, password hash and status.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
