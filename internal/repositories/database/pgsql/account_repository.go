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

const accountColumns = `account_id, account_number, account_type, initial_balance, status, client_id, created_at, last_updated_at`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.AccountNumber,
		&m.AccountType,
		&m.InitialBalance,
		&m.Status,
		&m.ClientID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxAccountRepository) queryAccounts(ctx context.Context, query string, args ...any) ([]domain.Account, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return mapping.ToDomainAccountSlice(accounts), nil
}

const insertAccountQuery = `
	INSERT INTO accounts (` + accountColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

// SaveAccountInTx inserts a new account inside tx, so the opening movement commits with it.
func (r *PgxAccountRepository) SaveAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	_, err := tx.Exec(ctx, insertAccountQuery,
		m.AccountID,
		m.AccountNumber,
		m.AccountType,
		m.InitialBalance,
		m.Status,
		m.ClientID,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return fmt.Errorf("%w: account number %s already exists", apperrors.ErrDuplicate, m.AccountNumber)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	if !isUUID(accountID) {
		return nil, apperrors.ErrNotFound
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// FindAccountsByClientID lists a client's accounts, oldest first.
func (r *PgxAccountRepository) FindAccountsByClientID(ctx context.Context, clientID int64) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE client_id = $1 ORDER BY created_at, account_id;`

	accounts, err := r.queryAccounts(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for client %d: %w", clientID, err)
	}
	return accounts, nil
}

// FindAccountsByClientIDAndStatus lists a client's accounts in one status, oldest first.
func (r *PgxAccountRepository) FindAccountsByClientIDAndStatus(ctx context.Context, clientID int64, status domain.AccountStatus) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE client_id = $1 AND status = $2 ORDER BY created_at, account_id;`

	accounts, err := r.queryAccounts(ctx, query, clientID, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s accounts for client %d: %w", status, clientID, err)
	}
	return accounts, nil
}

func (r *PgxAccountRepository) ExistsByID(ctx context.Context, accountID string) (bool, error) {
	if !isUUID(accountID) {
		return false, nil
	}
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE account_id = $1);`, accountID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check account %s: %w", accountID, err)
	}
	return exists, nil
}

// UpdateAccountStatus writes the status and last_updated_at of an existing account.
func (r *PgxAccountRepository) UpdateAccountStatus(ctx context.Context, account domain.Account) error {
	if !isUUID(account.AccountID) {
		return apperrors.ErrNotFound
	}
	query := `
		UPDATE accounts
		SET status = $2, last_updated_at = $3
		WHERE account_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, account.AccountID, string(account.Status), account.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update status of account %s: %w", account.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindAccountByIDForUpdate loads an account and locks its row. Must be called within a transaction.
func (r *PgxAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error) {
	if !isUUID(accountID) {
		return nil, apperrors.ErrNotFound
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1 FOR UPDATE;`

	m, err := scanAccount(tx.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock account %s: %w", accountID, err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}
