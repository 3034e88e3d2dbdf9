package pgsql

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/apperrors"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "accounts_account_number_key"}

	assert.True(t, isUniqueViolation(dup, ""))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", dup), "accounts_account_number_key"))
	assert.False(t, isUniqueViolation(dup, "customers_identification_key"))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}, ""))
	assert.False(t, isUniqueViolation(errors.New("boom"), ""))
}

func TestIsUUID(t *testing.T) {
	assert.True(t, isUUID("6f1c2a9e-3b7d-4e21-9c55-0a8d2f4b7e10"))
	assert.False(t, isUUID("abc"))
	assert.False(t, isUUID(""))
	assert.False(t, isUUID("6f1c2a9e-3b7d-4e21-9c55"))
}

// Malformed ids never reach Postgres, so a nil pool or tx is never touched.
func TestMalformedIDsResolveAsAbsent(t *testing.T) {
	ctx := context.Background()
	accounts := newPgxAccountRepository(nil)
	movements := newPgxMovementRepository(nil)

	_, err := accounts.FindAccountByID(ctx, "abc")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = accounts.FindAccountByIDForUpdate(ctx, nil, "abc")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	exists, err := accounts.ExistsByID(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, exists)

	err = accounts.UpdateAccountStatus(ctx, domain.Account{AccountID: "abc", Status: domain.AccountBlocked})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = movements.FindMovementByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	latest, err := movements.FindLatestByAccount(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, latest)

	latest, err = movements.FindLatestByAccountInTx(ctx, nil, "abc")
	require.NoError(t, err)
	assert.Nil(t, latest)

	page, err := movements.FindByAccount(ctx, "abc", 10, nil, "")
	require.NoError(t, err)
	assert.Empty(t, page)
}
