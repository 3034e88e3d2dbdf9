package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/apperrors"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
	portsrepo "github.com/JoelOntuDeveloper/banco-microservicios/internal/core/ports/repositories"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/models"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const customerColumns = `customer_id, identification, name, gender, age, address, phone, password_hash, status, created_at, last_updated_at`

type PgxCustomerRepository struct {
	BaseRepository
}

// newPgxCustomerRepository creates a new repository for customer data.
func newPgxCustomerRepository(pool *pgxpool.Pool) *PgxCustomerRepository {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func scanCustomer(row pgx.Row) (models.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerID,
		&m.Identification,
		&m.Name,
		&m.Gender,
		&m.Age,
		&m.Address,
		&m.Phone,
		&m.PasswordHash,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxCustomerRepository) findOne(ctx context.Context, where string, arg any) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE ` + where + `;`
	m, err := scanCustomer(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	customer := mapping.ToDomainCustomer(m)
	return &customer, nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	customer, err := r.findOne(ctx, "customer_id = $1", customerID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find customer %d: %w", customerID, err)
	}
	return customer, err
}

func (r *PgxCustomerRepository) FindCustomerByIdentification(ctx context.Context, identification string) (*domain.Customer, error) {
	customer, err := r.findOne(ctx, "identification = $1", identification)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find customer by identification %s: %w", identification, err)
	}
	return customer, err
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY customer_id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		m, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, mapping.ToDomainCustomer(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return customers, nil
}

func (r *PgxCustomerRepository) ExistsByIdentification(ctx context.Context, identification string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE identification = $1);`, identification).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check identification %s: %w", identification, err)
	}
	return exists, nil
}

// SaveCustomer inserts a customer and returns it with the id assigned by the database.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	m := mapping.ToModelCustomer(customer)
	query := `
		INSERT INTO customers (identification, name, gender, age, address, phone, password_hash, status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING customer_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.Identification,
		m.Name,
		m.Gender,
		m.Age,
		m.Address,
		m.Phone,
		m.PasswordHash,
		m.Status,
		m.CreatedAt,
		m.LastUpdatedAt,
	).Scan(&m.CustomerID)
	if err != nil {
		if isUniqueViolation(err, "") {
			return nil, fmt.Errorf("%w: identification %s already registered", apperrors.ErrDuplicate, m.Identification)
		}
		return nil, fmt.Errorf("failed to save customer %s: %w", m.Identification, err)
	}
	saved := mapping.ToDomainCustomer(m)
	return &saved, nil
}

// UpdateCustomer overwrites the mutable columns. Identification is never changed.
func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		UPDATE customers
		SET name = $2, gender = $3, age = $4, address = $5, phone = $6, password_hash = $7, status = $8, last_updated_at = $9
		WHERE customer_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.CustomerID,
		m.Name,
		m.Gender,
		m.Age,
		m.Address,
		m.Phone,
		m.PasswordHash,
		m.Status,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer %d: %w", m.CustomerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
