package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/apperrors"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
	portsrepo "github.com/JoelOntuDeveloper/banco-microservicios/internal/core/ports/repositories"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/models"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	movementColumns = `m.movement_id, m.account_id, m.occurred_at, m.kind, m.magnitude, m.resulting_balance`

	movementWithAccountSelect = `
		SELECT ` + movementColumns + `, a.account_number
		FROM movements m
		JOIN accounts a ON a.account_id = m.account_id`

	// seq breaks ties between movements sharing a timestamp so the tail is deterministic.
	latestMovementQuery = `
		SELECT ` + movementColumns + `
		FROM movements m
		WHERE m.account_id = $1
		ORDER BY m.occurred_at DESC, m.seq DESC
		LIMIT 1;`
)

type PgxMovementRepository struct {
	BaseRepository
}

// newPgxMovementRepository creates a new repository for the movement ledger.
func newPgxMovementRepository(pool *pgxpool.Pool) *PgxMovementRepository {
	return &PgxMovementRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MovementRepositoryWithTx = (*PgxMovementRepository)(nil)

func scanMovement(row pgx.Row) (models.Movement, error) {
	var m models.Movement
	err := row.Scan(&m.MovementID, &m.AccountID, &m.Timestamp, &m.Kind, &m.Magnitude, &m.ResultingBalance)
	return m, err
}

func scanMovementWithAccount(row pgx.Row) (models.MovementWithAccount, error) {
	var m models.MovementWithAccount
	err := row.Scan(&m.MovementID, &m.AccountID, &m.Timestamp, &m.Kind, &m.Magnitude, &m.ResultingBalance, &m.AccountNumber)
	return m, err
}

func (r *PgxMovementRepository) queryRecords(ctx context.Context, query string, args ...any) ([]domain.MovementRecord, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []domain.MovementRecord{}
	for rows.Next() {
		m, err := scanMovementWithAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movement row: %w", err)
		}
		records = append(records, mapping.ToDomainMovementRecord(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movement rows: %w", err)
	}
	return records, nil
}

func (r *PgxMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.MovementRecord, error) {
	if !isUUID(movementID) {
		return nil, apperrors.ErrNotFound
	}
	query := movementWithAccountSelect + ` WHERE m.movement_id = $1;`

	m, err := scanMovementWithAccount(r.Pool.QueryRow(ctx, query, movementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find movement %s: %w", movementID, err)
	}
	record := mapping.ToDomainMovementRecord(m)
	return &record, nil
}

func findLatest(ctx context.Context, q querier, accountID string) (*domain.Movement, error) {
	if !isUUID(accountID) {
		return nil, nil
	}
	m, err := scanMovement(q.QueryRow(ctx, latestMovementQuery, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read latest movement of account %s: %w", accountID, err)
	}
	movement := mapping.ToDomainMovement(m)
	return &movement, nil
}

// FindLatestByAccount returns the ledger tail, or nil for an account without movements.
func (r *PgxMovementRepository) FindLatestByAccount(ctx context.Context, accountID string) (*domain.Movement, error) {
	return findLatest(ctx, r.Pool, accountID)
}

// FindLatestByAccountInTx reads the ledger tail inside tx, after the account row is locked.
func (r *PgxMovementRepository) FindLatestByAccountInTx(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Movement, error) {
	return findLatest(ctx, tx, accountID)
}

// FindByAccount lists an account's movements newest first, resuming after the
// (afterTimestamp, afterID) key when one is given.
func (r *PgxMovementRepository) FindByAccount(ctx context.Context, accountID string, limit int, afterTimestamp *time.Time, afterID string) ([]domain.MovementRecord, error) {
	if !isUUID(accountID) || (afterTimestamp != nil && !isUUID(afterID)) {
		return []domain.MovementRecord{}, nil
	}
	var (
		records []domain.MovementRecord
		err     error
	)
	if afterTimestamp == nil {
		query := movementWithAccountSelect + `
			WHERE m.account_id = $1
			ORDER BY m.occurred_at DESC, m.movement_id DESC
			LIMIT $2;`
		records, err = r.queryRecords(ctx, query, accountID, limit)
	} else {
		query := movementWithAccountSelect + `
			WHERE m.account_id = $1 AND (m.occurred_at, m.movement_id) < ($2, $3)
			ORDER BY m.occurred_at DESC, m.movement_id DESC
			LIMIT $4;`
		records, err = r.queryRecords(ctx, query, accountID, *afterTimestamp, afterID, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list movements of account %s: %w", accountID, err)
	}
	return records, nil
}

func (r *PgxMovementRepository) FindByClient(ctx context.Context, clientID int64) ([]domain.MovementRecord, error) {
	query := movementWithAccountSelect + `
		WHERE a.client_id = $1
		ORDER BY m.occurred_at DESC, m.movement_id DESC;`

	records, err := r.queryRecords(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements of client %d: %w", clientID, err)
	}
	return records, nil
}

// FindByClientAndDateRange lists every movement of the client's accounts within the inclusive span.
func (r *PgxMovementRepository) FindByClientAndDateRange(ctx context.Context, clientID int64, start, end time.Time) ([]domain.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements m
		JOIN accounts a ON a.account_id = m.account_id
		WHERE a.client_id = $1 AND m.occurred_at BETWEEN $2 AND $3
		ORDER BY m.occurred_at DESC, m.seq DESC;`

	rows, err := r.Pool.Query(ctx, query, clientID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements of client %d in range: %w", clientID, err)
	}
	defer rows.Close()

	movements := []domain.Movement{}
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movement row: %w", err)
		}
		movements = append(movements, mapping.ToDomainMovement(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movement rows: %w", err)
	}
	return movements, nil
}

func (r *PgxMovementRepository) ListMovements(ctx context.Context, limit int) ([]domain.MovementRecord, error) {
	query := movementWithAccountSelect + `
		ORDER BY m.occurred_at DESC, m.movement_id DESC
		LIMIT $1;`

	records, err := r.queryRecords(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}
	return records, nil
}

const insertMovementQuery = `
	INSERT INTO movements (movement_id, account_id, occurred_at, kind, magnitude, resulting_balance)
	VALUES ($1, $2, $3, $4, $5, $6);`

func insertMovement(ctx context.Context, q querier, movement domain.Movement) error {
	m := mapping.ToModelMovement(movement)
	_, err := q.Exec(ctx, insertMovementQuery,
		m.MovementID,
		m.AccountID,
		m.Timestamp,
		m.Kind,
		m.Magnitude,
		m.ResultingBalance,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return fmt.Errorf("%w: movement %s already exists", apperrors.ErrDuplicate, m.MovementID)
		}
		return fmt.Errorf("failed to save movement %s: %w", m.MovementID, err)
	}
	return nil
}

// SaveMovement appends a movement outside any caller transaction.
func (r *PgxMovementRepository) SaveMovement(ctx context.Context, movement domain.Movement) error {
	return insertMovement(ctx, r.Pool, movement)
}

// SaveMovementInTx appends a movement inside tx.
func (r *PgxMovementRepository) SaveMovementInTx(ctx context.Context, tx pgx.Tx, movement domain.Movement) error {
	return insertMovement(ctx, tx, movement)
}
