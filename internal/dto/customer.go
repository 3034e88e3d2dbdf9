package dto

import (
	"time"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
)

// PersonRequest holds the personal data sent when creating a customer.
type PersonRequest struct {
	Identification string `json:"identification" binding:"required,max=20"`
	Name           string `json:"name" binding:"required,max=100"`
	Gender         string `json:"gender" binding:"max=20"`
	Age            *int   `json:"age" binding:"omitempty,min=0,max=150"`
	Address        string `json:"address" binding:"max=200"`
	Phone          string `json:"phone" binding:"max=20"`
}

// CreateCustomerRequest defines the data needed to register a customer.
// Password rules are enforced by the service.
type CreateCustomerRequest struct {
	Person   PersonRequest `json:"person"`
	Password string        `json:"password"`
}

// UpdatePersonRequest uses pointers so that absent fields are left unchanged.
type UpdatePersonRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=100"`
	Gender  *string `json:"gender" binding:"omitempty,max=20"`
	Age     *int    `json:"age" binding:"omitempty,min=0,max=150"`
	Address *string `json:"address" binding:"omitempty,max=200"`
	Phone   *string `json:"phone" binding:"omitempty,max=20"`
}

// UpdateCustomerRequest defines the data allowed for updating a customer.
type UpdateCustomerRequest struct {
	Person   UpdatePersonRequest `json:"person"`
	Password *string             `json:"password"`
}

// PersonResponse mirrors domain.Person.
type PersonResponse struct {
	Identification string `json:"identification"`
	Name           string `json:"name"`
	Gender         string `json:"gender,omitempty"`
	Age            *int   `json:"age,omitempty"`
	Address        string `json:"address,omitempty"`
	Phone          string `json:"phone,omitempty"`
}

// CustomerResponse defines the data returned for a customer. The password hash never leaves the service.
type CustomerResponse struct {
	CustomerID    int64                 `json:"customerId"`
	Status        domain.CustomerStatus `json:"status"`
	Person        PersonResponse        `json:"person"`
	CreatedAt     time.Time             `json:"createdAt"`
	LastUpdatedAt time.Time             `json:"lastUpdatedAt"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		Status:     c.Status,
		Person: PersonResponse{
			Identification: c.Person.Identification,
			Name:           c.Person.Name,
			Gender:         c.Person.Gender,
			Age:            c.Person.Age,
			Address:        c.Person.Address,
			Phone:          c.Person.Phone,
		},
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToCustomerResponses converts a slice of domain.Customer to []CustomerResponse.
func ToCustomerResponses(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		res[i] = ToCustomerResponse(&c)
	}
	return res
}
