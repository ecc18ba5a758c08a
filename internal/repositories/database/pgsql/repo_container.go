package pgsql

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/retailcore/cashdesk/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the pgx-backed repositories. shiftLockTimeout
// bounds lock waits in the movement and shift-close protocols.
func NewRepositoryProvider(dbPool *pgxpool.Pool, shiftLockTimeout time.Duration) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ShiftRepo:       newPgxShiftRepository(dbPool, shiftLockTimeout),
		MovementRepo:    newPgxMovementRepository(dbPool),
		BankAccountRepo: newPgxBankAccountRepository(dbPool),
		SaleRepo:        newPgxSaleRepository(dbPool),
		SalesGoalRepo:   newPgxSalesGoalRepository(dbPool),
	}
}
