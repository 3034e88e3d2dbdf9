package services

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/apperrors"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
	portsrepo "github.com/JoelOntuDeveloper/banco-microservicios/internal/core/ports/repositories"
	portssvc "github.com/JoelOntuDeveloper/banco-microservicios/internal/core/ports/services"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/dto"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/metrics"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/utils"
)

// customerService implements the CustomerSvcFacade interface
type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
	publisher    portssvc.CustomerEventPublisher
}

// CustomerServiceOption is a functional option for configuring the customer service
type CustomerServiceOption func(*customerService)

// WithCustomerEventPublisher announces created customers. Without one no event is sent.
func WithCustomerEventPublisher(publisher portssvc.CustomerEventPublisher) CustomerServiceOption {
	return func(s *customerService) {
		s.publisher = publisher
	}
}

// WithCustomerMetrics counts published events.
func WithCustomerMetrics(collector *metrics.Collector) CustomerServiceOption {
	return func(s *customerService) {
		s.Metrics = collector
	}
}

// WithCustomerClock overrides the clock used for audit fields.
func WithCustomerClock(clock func() time.Time) CustomerServiceOption {
	return func(s *customerService) {
		s.clock = clock
	}
}

// NewCustomerService creates a new customer service with the provided options
func NewCustomerService(repo portsrepo.CustomerRepositoryFacade, options ...CustomerServiceOption) portssvc.CustomerSvcFacade {
	svc := &customerService{customerRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

// CreateCustomer persists a new ACTIVE customer, then publishes customer.created.
// A failed publish is logged only: the customer write is never undone.
func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	identification := strings.TrimSpace(req.Person.Identification)
	name := strings.TrimSpace(req.Person.Name)
	if identification == "" {
		return nil, apperrors.NewValidationError("identification is required")
	}
	if name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	exists, err := s.customerRepo.ExistsByIdentification(ctx, identification)
	if err != nil {
		s.LogError(ctx, err, "Failed to check identification", slog.String("identification", identification))
		return nil, apperrors.NewInfrastructureError("check identification", err)
	}
	if exists {
		return nil, &apperrors.CustomerAlreadyExistsError{Field: "identification", Value: identification}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, apperrors.NewInfrastructureError("hash password", err)
	}

	now := s.Now()
	customer := domain.Customer{
		Status: domain.CustomerActive,
		Person: domain.Person{
			Identification: identification,
			Name:           name,
			Gender:         req.Person.Gender,
			Age:            req.Person.Age,
			Address:        req.Person.Address,
			Phone:          req.Person.Phone,
		},
		PasswordHash: hash,
		AuditFields: domain.NewAuditFields(now),
	}

	saved, err := s.customerRepo.SaveCustomer(ctx, customer)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, &apperrors.CustomerAlreadyExistsError{Field: "identification", Value: identification}
		}
		s.LogError(ctx, err, "Failed to save customer", slog.String("identification", identification))
		return nil, apperrors.NewInfrastructureError("save customer", err)
	}

	s.LogInfo(ctx, "Customer created successfully", slog.Int64("customer_id", saved.CustomerID))
	s.publishCreated(ctx, saved)
	return saved, nil
}

func (s *customerService) publishCreated(ctx context.Context, customer *domain.Customer) {
	if s.publisher == nil {
		return
	}
	event := domain.CustomerCreatedEvent{
		ClientID:       customer.CustomerID,
		Name:           customer.Person.Name,
		Identification: customer.Person.Identification,
	}
	if err := s.publisher.PublishCustomerCreated(ctx, event); err != nil {
		s.Metrics.RecordEventPublished(false)
		s.LogError(ctx, err, "Failed to publish customer created event",
			slog.Int64("customer_id", customer.CustomerID))
		return
	}
	s.Metrics.RecordEventPublished(true)
	s.LogDebug(ctx, "Customer created event published", slog.Int64("customer_id", customer.CustomerID))
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, &apperrors.CustomerNotFoundError{Key: strconv.FormatInt(customerID, 10)}
		}
		s.LogError(ctx, err, "Failed to find customer", slog.Int64("customer_id", customerID))
		return nil, apperrors.NewInfrastructureError("find customer", err)
	}
	return customer, nil
}

func (s *customerService) GetCustomerByIdentification(ctx context.Context, identification string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByIdentification(ctx, identification)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, &apperrors.CustomerNotFoundError{Key: identification}
		}
		s.LogError(ctx, err, "Failed to find customer by identification", slog.String("identification", identification))
		return nil, apperrors.NewInfrastructureError("find customer", err)
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, apperrors.NewInfrastructureError("list customers", err)
	}
	return customers, nil
}

func (s *customerService) ExistsByIdentification(ctx context.Context, identification string) (bool, error) {
	exists, err := s.customerRepo.ExistsByIdentification(ctx, identification)
	if err != nil {
		s.LogError(ctx, err, "Failed to check identification", slog.String("identification", identification))
		return false, apperrors.NewInfrastructureError("check identification", err)
	}
	return exists, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID int64, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	customer, err := s.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	p := req.Person
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name cannot be blank")
		}
		customer.Person.Name = name
	}
	if p.Gender != nil {
		customer.Person.Gender = *p.Gender
	}
	if p.Age != nil {
		customer.Person.Age = p.Age
	}
	if p.Address != nil {
		customer.Person.Address = *p.Address
	}
	if p.Phone != nil {
		customer.Person.Phone = *p.Phone
	}
	if req.Password != nil {
		if err := utils.ValidatePassword(*req.Password); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.LogError(ctx, err, "Failed to hash password")
			return nil, apperrors.NewInfrastructureError("hash password", err)
		}
		customer.PasswordHash = hash
	}
	customer.Touch(s.Now())

	if err := s.saveUpdate(ctx, *customer); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Customer updated", slog.Int64("customer_id", customerID))
	return customer, nil
}

// DeactivateCustomer is a soft delete. Deactivating an INACTIVE customer is rejected.
func (s *customerService) DeactivateCustomer(ctx context.Context, customerID int64) error {
	customer, err := s.GetCustomerByID(ctx, customerID)
	if err != nil {
		return err
	}
	if customer.Status == domain.CustomerInactive {
		return apperrors.NewValidationError("customer is already inactive")
	}
	customer.Status = domain.CustomerInactive
	customer.Touch(s.Now())
	if err := s.saveUpdate(ctx, *customer); err != nil {
		return err
	}
	s.LogInfo(ctx, "Customer deactivated", slog.Int64("customer_id", customerID))
	return nil
}

func (s *customerService) saveUpdate(ctx context.Context, customer domain.Customer) error {
	if err := s.customerRepo.UpdateCustomer(ctx, customer); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &apperrors.CustomerNotFoundError{Key: strconv.FormatInt(customer.CustomerID, 10)}
		}
		s.LogError(ctx, err, "Failed to update customer", slog.Int64("customer_id", customer.CustomerID))
		return apperrors.NewInfrastructureError("update customer", err)
	}
	return nil
}
