package services_test

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/retailcore/cashdesk/internal/core/domain"
	portsrepo "github.com/retailcore/cashdesk/internal/core/ports/repositories"
)

// fakeTx satisfies pgx.Tx for service tests. The services only thread it
// through to repositories, which are mocked, so every method is inert.
type fakeTx struct{}

func (fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return fakeTx{}, nil }
func (fakeTx) Commit(ctx context.Context) error          { return nil }
func (fakeTx) Rollback(ctx context.Context) error        { return nil }
func (fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (fakeTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (fakeTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (fakeTx) Conn() *pgx.Conn                                               { return nil }

// --- Mock ShiftRepository ---

type MockShiftRepository struct {
	mock.Mock
}

var _ portsrepo.ShiftRepositoryWithTx = (*MockShiftRepository)(nil)

func (m *MockShiftRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockShiftRepository) BeginSerializable(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockShiftRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockShiftRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *MockShiftRepository) FindShiftByID(ctx context.Context, q portsrepo.Querier, shiftID string) (*domain.Shift, error) {
	args := m.Called(ctx, q, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindOpenShift(ctx context.Context, branchID, userID string) (*domain.Shift, error) {
	args := m.Called(ctx, branchID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) LockShift(ctx context.Context, tx pgx.Tx, shiftID string) (*domain.Shift, error) {
	args := m.Called(ctx, tx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) LockOpenShift(ctx context.Context, tx pgx.Tx, branchID, userID string) (*domain.Shift, error) {
	args := m.Called(ctx, tx, branchID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) CloseShift(ctx context.Context, tx pgx.Tx, shift domain.Shift) error {
	args := m.Called(ctx, tx, shift)
	return args.Error(0)
}

// --- Mock MovementRepository ---

type MockMovementRepository struct {
	mock.Mock
}

var _ portsrepo.MovementRepositoryFacade = (*MockMovementRepository)(nil)

func (m *MockMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.FinancialMovement, error) {
	args := m.Called(ctx, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialMovement), args.Error(1)
}

func (m *MockMovementRepository) SumCashDeltasByShift(ctx context.Context, q portsrepo.Querier, shiftID string) (decimal.Decimal, error) {
	args := m.Called(ctx, q, shiftID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockMovementRepository) ListMovements(ctx context.Context, filters portsrepo.MovementFilters, limit int, nextToken *string) ([]domain.FinancialMovement, *string, error) {
	args := m.Called(ctx, filters, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		token = &tokenVal
	}
	return args.Get(0).([]domain.FinancialMovement), token, args.Error(2)
}

func (m *MockMovementRepository) SaveMovement(ctx context.Context, tx pgx.Tx, movement domain.FinancialMovement) error {
	args := m.Called(ctx, tx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) ReassignMovementsToShift(ctx context.Context, tx pgx.Tx, movementIDs []string, shiftID string) error {
	args := m.Called(ctx, tx, movementIDs, shiftID)
	return args.Error(0)
}

// --- Mock BankAccountRepository ---

type MockBankAccountRepository struct {
	mock.Mock
}

var _ portsrepo.BankAccountRepositoryFacade = (*MockBankAccountRepository)(nil)

func (m *MockBankAccountRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) ListBankAccountsByBranch(ctx context.Context, branchID string) ([]domain.BankAccount, error) {
	args := m.Called(ctx, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

// --- Mock SaleRepository ---

type MockSaleRepository struct {
	mock.Mock
}

var _ portsrepo.SaleRepositoryFacade = (*MockSaleRepository)(nil)

func (m *MockSaleRepository) AssignSalesToShift(ctx context.Context, tx pgx.Tx, saleIDs []string, shiftID string) error {
	args := m.Called(ctx, tx, saleIDs, shiftID)
	return args.Error(0)
}

func (m *MockSaleRepository) SumSaleTotals(ctx context.Context, q portsrepo.Querier, saleIDs []string) (decimal.Decimal, error) {
	args := m.Called(ctx, q, saleIDs)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockSaleRepository) ListSalesByShift(ctx context.Context, shiftID string) ([]domain.Sale, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

// --- Mock SalesGoalRepository ---

type MockSalesGoalRepository struct {
	mock.Mock
}

var _ portsrepo.SalesGoalRepositoryFacade = (*MockSalesGoalRepository)(nil)

func (m *MockSalesGoalRepository) FindLatestGoalForUser(ctx context.Context, q portsrepo.Querier, userID string) (*domain.SalesGoal, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesGoal), args.Error(1)
}

func (m *MockSalesGoalRepository) UpdateGoalProgress(ctx context.Context, tx pgx.Tx, goal domain.SalesGoal) error {
	args := m.Called(ctx, tx, goal)
	return args.Error(0)
}
