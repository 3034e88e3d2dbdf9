package pgsql

import (
	portsrepo "github.com/JoelOntuDeveloper/banco-microservicios/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds every repository on one pool. Each binary only
// uses the repositories backed by its own schema.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:  newPgxAccountRepository(dbPool),
		MovementRepo: newPgxMovementRepository(dbPool),
		CustomerRepo: newPgxCustomerRepository(dbPool),
	}
}
