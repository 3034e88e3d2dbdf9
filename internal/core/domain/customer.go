package domain

// CustomerStatus is the lifecycle state of a customer.
type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "ACTIVE"
	CustomerInactive CustomerStatus = "INACTIVE"
)

// Person holds the personal data of a customer.
type Person struct {
	Identification string `json:"identification"`
	Name           string `json:"name"`
	Gender         string `json:"gender,omitempty"`
	Age            *int   `json:"age,omitempty"`
	Address        string `json:"address,omitempty"`
	Phone          string `json:"phone,omitempty"`
}

// Customer is a registered bank client.
type Customer struct {
	CustomerID   int64          `json:"customerID"`
	Status       CustomerStatus `json:"status"`
	Person       Person         `json:"person"`
	PasswordHash string         `json:"-"`
	AuditFields
}

// CustomerCreatedEvent is emitted once a customer has been persisted.
type CustomerCreatedEvent struct {
	ClientID       int64  `json:"clientId"`
	Name           string `json:"name"`
	Identification string `json:"identification"`
}

// CustomerCreatedEventType names the event on the wire.
const CustomerCreatedEventType = "customer.created"
