package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/retailcore/cashdesk/internal/apperrors"
	"github.com/retailcore/cashdesk/internal/core/domain"
	portsrepo "github.com/retailcore/cashdesk/internal/core/ports/repositories"
	"github.com/retailcore/cashdesk/internal/models"
	"github.com/retailcore/cashdesk/internal/utils/mapping"
)

type PgxBankAccountRepository struct {
	BaseRepository
}

// newPgxBankAccountRepository creates a new repository for the bank account
// directory. The ledger only reads it.
func newPgxBankAccountRepository(pool *pgxpool.Pool) portsrepo.BankAccountRepositoryFacade {
	return &PgxBankAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BankAccountRepositoryFacade = (*PgxBankAccountRepository)(nil)

// FindBankAccountByID retrieves a bank account by id.
func (r *PgxBankAccountRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	query := `SELECT bank_account_id, branch_id, bank_name, alias, masked_number FROM bank_accounts WHERE bank_account_id = $1;`

	var m models.BankAccount
	err := r.Pool.QueryRow(ctx, query, bankAccountID).Scan(
		&m.BankAccountID,
		&m.BranchID,
		&m.BankName,
		&m.Alias,
		&m.MaskedNumber,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: bank account %s", apperrors.ErrNotFound, bankAccountID)
		}
		return nil, fmt.Errorf("failed to find bank account %s: %w", bankAccountID, err)
	}

	account := mapping.ToDomainBankAccount(m)
	return &account, nil
}

// ListBankAccountsByBranch retrieves the bank accounts of a branch ordered by alias.
func (r *PgxBankAccountRepository) ListBankAccountsByBranch(ctx context.Context, branchID string) ([]domain.BankAccount, error) {
	query := `SELECT bank_account_id, branch_id, bank_name, alias, masked_number FROM bank_accounts WHERE branch_id = $1 ORDER BY alias;`

	rows, err := r.Pool.Query(ctx, query, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank accounts for branch %s: %w", branchID, err)
	}
	defer rows.Close()

	accounts := make([]models.BankAccount, 0)
	for rows.Next() {
		var m models.BankAccount
		if err := rows.Scan(&m.BankAccountID, &m.BranchID, &m.BankName, &m.Alias, &m.MaskedNumber); err != nil {
			return nil, fmt.Errorf("failed to scan bank account row: %w", err)
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank account rows for branch %s: %w", branchID, err)
	}

	return mapping.ToDomainBankAccountSlice(accounts), nil
}
