package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/apperrors"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
	portssvc "github.com/JoelOntuDeveloper/banco-microservicios/internal/core/ports/services"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/services"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/dto"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CustomerServiceTestSuite struct {
	suite.Suite
	repo      *MockCustomerRepository
	publisher *MockEventPublisher
	service   portssvc.CustomerSvcFacade
	now       time.Time
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.repo = new(MockCustomerRepository)
	suite.publisher = new(MockEventPublisher)
	suite.now = time.Date(2024, 4, 2, 8, 30, 0, 0, time.UTC)
	suite.service = services.NewCustomerService(
		suite.repo,
		services.WithCustomerEventPublisher(suite.publisher),
		services.WithCustomerClock(func() time.Time { return suite.now }),
	)
}

func (suite *CustomerServiceTestSuite) createRequest() dto.CreateCustomerRequest {
	age := 31
	return dto.CreateCustomerRequest{
		Person: dto.PersonRequest{
			Identification: "1712345678",
			Name:           "Marianela Montalvo",
			Gender:         "F",
			Age:            &age,
			Address:        "Amazonas y NNUU",
			Phone:          "097548965",
		},
		Password: "5678secret",
	}
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_PublishesEvent() {
	ctx := context.Background()
	req := suite.createRequest()

	suite.repo.On("ExistsByIdentification", ctx, "1712345678").Return(false, nil).Once()
	suite.repo.On("SaveCustomer", ctx, mock.AnythingOfType("domain.Customer")).
		Return(func(_ context.Context, c domain.Customer) (*domain.Customer, error) {
			c.CustomerID = 21
			return &c, nil
		}).Once()
	suite.publisher.On("PublishCustomerCreated", ctx, domain.CustomerCreatedEvent{
		ClientID:       21,
		Name:           "Marianela Montalvo",
		Identification: "1712345678",
	}).Return(nil).Once()

	customer, err := suite.service.CreateCustomer(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(21), customer.CustomerID)
	suite.Equal(domain.CustomerActive, customer.Status)
	suite.Equal(suite.now, customer.CreatedAt)
	suite.NotEqual(req.Password, customer.PasswordHash)
	suite.True(utils.CheckPasswordHash(req.Password, customer.PasswordHash))
	suite.repo.AssertExpectations(suite.T())
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_PublishFailureDoesNotFail() {
	ctx := context.Background()
	suite.repo.On("ExistsByIdentification", ctx, mock.Anything).Return(false, nil).Once()
	suite.repo.On("SaveCustomer", ctx, mock.Anything).Return(&domain.Customer{CustomerID: 3}, nil).Once()
	suite.publisher.On("PublishCustomerCreated", ctx, mock.Anything).Return(assert.AnError).Once()

	customer, err := suite.service.CreateCustomer(ctx, suite.createRequest())

	suite.Require().NoError(err)
	suite.Equal(int64(3), customer.CustomerID)
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_DuplicateIdentification() {
	ctx := context.Background()
	suite.repo.On("ExistsByIdentification", ctx, "1712345678").Return(true, nil).Once()

	_, err := suite.service.CreateCustomer(ctx, suite.createRequest())

	var exists *apperrors.CustomerAlreadyExistsError
	suite.Require().ErrorAs(err, &exists)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.repo.AssertNotCalled(suite.T(), "SaveCustomer", mock.Anything, mock.Anything)
	suite.publisher.AssertNotCalled(suite.T(), "PublishCustomerCreated", mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_ConcurrentDuplicateOnSave() {
	ctx := context.Background()
	suite.repo.On("ExistsByIdentification", ctx, mock.Anything).Return(false, nil).Once()
	suite.repo.On("SaveCustomer", ctx, mock.Anything).Return(nil, apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateCustomer(ctx, suite.createRequest())

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_Validation() {
	ctx := context.Background()
	tests := []struct {
		name   string
		mutate func(*dto.CreateCustomerRequest)
	}{
		{"blank identification", func(r *dto.CreateCustomerRequest) { r.Person.Identification = "  " }},
		{"blank name", func(r *dto.CreateCustomerRequest) { r.Person.Name = "" }},
		{"short password", func(r *dto.CreateCustomerRequest) { r.Password = "123" }},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := suite.createRequest()
			tt.mutate(&req)
			_, err := suite.service.CreateCustomer(ctx, req)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.repo.AssertNotCalled(suite.T(), "ExistsByIdentification", mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_AppliesProvidedFields() {
	ctx := context.Background()
	existing := &domain.Customer{
		CustomerID: 4,
		Status:     domain.CustomerActive,
		Person:     domain.Person{Identification: "0101", Name: "Old", Phone: "111"},
	}
	newName := "New Name"
	suite.repo.On("FindCustomerByID", ctx, int64(4)).Return(existing, nil).Once()
	suite.repo.On("UpdateCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Person.Name == "New Name" && c.Person.Phone == "111" && c.Person.Identification == "0101"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateCustomer(ctx, 4, dto.UpdateCustomerRequest{
		Person: dto.UpdatePersonRequest{Name: &newName},
	})

	suite.Require().NoError(err)
	suite.Equal("New Name", updated.Person.Name)
	suite.Equal(suite.now, updated.LastUpdatedAt)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestDeactivateCustomer() {
	ctx := context.Background()
	suite.repo.On("FindCustomerByID", ctx, int64(4)).
		Return(&domain.Customer{CustomerID: 4, Status: domain.CustomerActive}, nil).Once()
	suite.repo.On("UpdateCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Status == domain.CustomerInactive
	})).Return(nil).Once()

	suite.NoError(suite.service.DeactivateCustomer(ctx, 4))
	suite.repo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestDeactivateCustomer_AlreadyInactive() {
	ctx := context.Background()
	suite.repo.On("FindCustomerByID", ctx, int64(5)).
		Return(&domain.Customer{CustomerID: 5, Status: domain.CustomerInactive}, nil).Once()

	err := suite.service.DeactivateCustomer(ctx, 5)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.repo.AssertNotCalled(suite.T(), "UpdateCustomer", mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestGetCustomer_NotFound() {
	ctx := context.Background()
	suite.repo.On("FindCustomerByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()
	suite.repo.On("FindCustomerByIdentification", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetCustomerByID(ctx, 99)
	var notFound *apperrors.CustomerNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Equal("99", notFound.Key)

	_, err = suite.service.GetCustomerByIdentification(ctx, "nope")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
