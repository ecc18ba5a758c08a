package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/retailcore/cashdesk/internal/apperrors"
	"github.com/retailcore/cashdesk/internal/core/domain"
	portsrepo "github.com/retailcore/cashdesk/internal/core/ports/repositories"
	portssvc "github.com/retailcore/cashdesk/internal/core/ports/services"
	"github.com/retailcore/cashdesk/internal/core/services"
	"github.com/retailcore/cashdesk/internal/dto"
)

type MovementServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	shiftRepo    *MockShiftRepository
	movementRepo *MockMovementRepository
	bankRepo     *MockBankAccountRepository
	service      portssvc.MovementSvcFacade

	branchID string
	userID   string
	shift    *domain.Shift
}

func (s *MovementServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.shiftRepo = new(MockShiftRepository)
	s.movementRepo = new(MockMovementRepository)
	s.bankRepo = new(MockBankAccountRepository)
	guard := services.NewBalanceGuard(s.movementRepo)
	s.service = services.NewMovementService(s.shiftRepo, s.movementRepo, s.bankRepo, guard)

	s.branchID = uuid.NewString()
	s.userID = uuid.NewString()
	s.shift = &domain.Shift{
		ShiftID:        uuid.NewString(),
		BranchID:       s.branchID,
		OpenedByUserID: s.userID,
		Status:         domain.ShiftOpen,
		OpeningBalance: decimal.NewFromInt(100),
		FixedFloat:     decimal.NewFromInt(50),
	}
}

func (s *MovementServiceTestSuite) expectTx() {
	s.shiftRepo.On("BeginSerializable", s.ctx).Return(fakeTx{}, nil).Once()
	s.shiftRepo.On("Rollback", s.ctx, fakeTx{}).Return(nil)
}

func (s *MovementServiceTestSuite) TestCreateCashSale() {
	s.expectTx()
	s.shiftRepo.On("LockOpenShift", s.ctx, fakeTx{}, s.branchID, s.userID).Return(s.shift, nil).Once()
	// Pre-guard sees an empty shift; post-check sees the new row.
	s.movementRepo.On("SumCashDeltasByShift", s.ctx, fakeTx{}, s.shift.ShiftID).Return(decimal.Zero, nil).Once()
	s.movementRepo.On("SaveMovement", s.ctx, fakeTx{}, mock.AnythingOfType("domain.FinancialMovement")).Return(nil).Once()
	s.movementRepo.On("SumCashDeltasByShift", s.ctx, fakeTx{}, s.shift.ShiftID).Return(decimal.NewFromInt(50), nil).Once()
	s.shiftRepo.On("Commit", s.ctx, fakeTx{}).Return(nil).Once()

	movement, err := s.service.CreateMovement(s.ctx, dto.CreateMovementRequest{
		BranchID: s.branchID,
		Motive:   string(domain.MotiveSale),
		Amount:   decimal.NewFromInt(50),
	}, s.userID)

	s.Require().NoError(err)
	s.Equal(domain.MotiveSale, movement.Motive)
	s.Equal(domain.PaymentCash, movement.PaymentMethod)
	s.Equal(domain.ClassificationIncome, movement.Classification)
	s.True(decimal.NewFromInt(50).Equal(movement.CashDelta))
	s.True(movement.BankDelta.IsZero())
	s.Require().NotNil(movement.ShiftID)
	s.Equal(s.shift.ShiftID, *movement.ShiftID)
	s.Equal(s.userID, movement.CreatedBy)
	s.shiftRepo.AssertExpectations(s.T())
	s.movementRepo.AssertExpectations(s.T())
}

func (s *MovementServiceTestSuite) TestCreateCashExpense_InsufficientFunds() {
	s.expectTx()
	s.shiftRepo.On("LockOpenShift", s.ctx, fakeTx{}, s.branchID, s.userID).Return(s.shift, nil).Once()
	s.movementRepo.On("SumCashDeltasByShift", s.ctx, fakeTx{}, s.shift.ShiftID).Return(decimal.Zero, nil).Once()

	_, err := s.service.CreateMovement(s.ctx, dto.CreateMovementRequest{
		BranchID: s.branchID,
		Motive:   string(domain.MotiveOperatingExpense),
		Amount:   decimal.NewFromInt(150),
	}, s.userID)

	var insufficientErr *apperrors.InsufficientFundsError
	s.Require().True(errors.As(err, &insufficientErr))
	s.True(decimal.NewFromInt(100).Equal(insufficientErr.MaxEgress))
	s.movementRepo.AssertNotCalled(s.T(), "SaveMovement", mock.Anything, mock.Anything, mock.Anything)
	s.shiftRepo.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *MovementServiceTestSuite) TestCreateMovement_NoOpenShift() {
	s.expectTx()
	s.shiftRepo.On("LockOpenShift", s.ctx, fakeTx{}, s.branchID, s.userID).Return(nil, apperrors.ErrNoOpenShift).Once()

	_, err := s.service.CreateMovement(s.ctx, dto.CreateMovementRequest{
		BranchID: s.branchID,
		Motive:   string(domain.MotiveSale),
		Amount:   decimal.NewFromInt(10),
	}, s.userID)

	s.True(errors.Is(err, apperrors.ErrNoOpenShift))
}

func (s *MovementServiceTestSuite) TestCreateMovement_PostCheckAborts() {
	s.expectTx()
	s.shiftRepo.On("LockOpenShift", s.ctx, fakeTx{}, s.branchID, s.userID).Return(s.shift, nil).Once()
	// Pre-guard passes, but the post-persist aggregate comes back negative.
	s.movementRepo.On("SumCashDeltasByShift", s.ctx, fakeTx{}, s.shift.ShiftID).Return(decimal.NewFromInt(100), nil).Once()
	s.movementRepo.On("SaveMovement", s.ctx, fakeTx{}, mock.AnythingOfType("domain.FinancialMovement")).Return(nil).Once()
	s.movementRepo.On("SumCashDeltasByShift", s.ctx, fakeTx{}, s.shift.ShiftID).Return(decimal.NewFromInt(-250), nil).Once()

	_, err := s.service.CreateMovement(s.ctx, dto.CreateMovementRequest{
		BranchID: s.branchID,
		Motive:   string(domain.MotiveOperatingExpense),
		Amount:   decimal.NewFromInt(150),
	}, s.userID)

	s.True(errors.Is(err, apperrors.ErrConsistency))
	s.shiftRepo.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *MovementServiceTestSuite) TestClosingDeposit_DefaultsToTransfer() {
	bankAccountID := uuid.NewString()
	s.bankRepo.On("FindBankAccountByID", s.ctx, bankAccountID).Return(&domain.BankAccount{
		BankAccountID: bankAccountID,
		BranchID:      s.branchID,
	}, nil).Once()

	s.expectTx()
	s.shiftRepo.On("LockOpenShift", s.ctx, fakeTx{}, s.branchID, s.userID).Return(s.shift, nil).Once()
	// Guards and post-check each aggregate once; the drawer holds 100 + 200.
	s.movementRepo.On("SumCashDeltasByShift", s.ctx, fakeTx{}, s.shift.ShiftID).Return(decimal.NewFromInt(200), nil).Twice()
	s.movementRepo.On("SaveMovement", s.ctx, fakeTx{}, mock.AnythingOfType("domain.FinancialMovement")).Return(nil).Once()
	s.movementRepo.On("SumCashDeltasByShift", s.ctx, fakeTx{}, s.shift.ShiftID).Return(decimal.NewFromInt(100), nil).Once()
	s.shiftRepo.On("Commit", s.ctx, fakeTx{}).Return(nil).Once()

	movement, err := s.service.CreateMovement(s.ctx, dto.CreateMovementRequest{
		BranchID:      s.branchID,
		Motive:        string(domain.MotiveClosingDeposit),
		Amount:        decimal.NewFromInt(100),
		BankAccountID: &bankAccountID,
	}, s.userID)

	s.Require().NoError(err)
	s.Equal(domain.PaymentTransfer, movement.PaymentMethod)
	s.True(decimal.NewFromInt(-100).Equal(movement.CashDelta))
	s.True(decimal.NewFromInt(100).Equal(movement.BankDelta))
	s.True(movement.IsClosingDeposit)
}

func (s *MovementServiceTestSuite) TestClosingDeposit_ExceedsWithdrawable() {
	bankAccountID := uuid.NewString()
	s.bankRepo.On("FindBankAccountByID", s.ctx, bankAccountID).Return(&domain.BankAccount{
		BankAccountID: bankAccountID,
	}, nil).Once()

	s.expectTx()
	s.shiftRepo.On("LockOpenShift", s.ctx, fakeTx{}, s.branchID, s.userID).Return(s.shift, nil).Once()
	// Cash on hand 100, fixed float 50: at most 50 can leave as a deposit.
	s.movementRepo.On("SumCashDeltasByShift", s.ctx, fakeTx{}, s.shift.ShiftID).Return(decimal.Zero, nil)

	_, err := s.service.CreateMovement(s.ctx, dto.CreateMovementRequest{
		BranchID:      s.branchID,
		Motive:        string(domain.MotiveClosingDeposit),
		Amount:        decimal.NewFromInt(80),
		BankAccountID: &bankAccountID,
	}, s.userID)

	var depositErr *apperrors.DepositExceedsAvailableError
	s.Require().True(errors.As(err, &depositErr))
	s.True(decimal.NewFromInt(50).Equal(depositErr.MaxDeposit))
	s.movementRepo.AssertNotCalled(s.T(), "SaveMovement", mock.Anything, mock.Anything, mock.Anything)
}

func (s *MovementServiceTestSuite) TestBankPayment_RequiresBankAccount() {
	_, err := s.service.CreateMovement(s.ctx, dto.CreateMovementRequest{
		BranchID: s.branchID,
		Motive:   string(domain.MotiveBankSupplierPayment),
		Amount:   decimal.NewFromInt(40),
	}, s.userID)

	s.True(errors.Is(err, apperrors.ErrValidation))
	s.shiftRepo.AssertNotCalled(s.T(), "BeginSerializable", mock.Anything)
}

func (s *MovementServiceTestSuite) TestCashMethod_CannotTouchBank() {
	cash := string(domain.PaymentCash)
	bankAccountID := uuid.NewString()

	_, err := s.service.CreateMovement(s.ctx, dto.CreateMovementRequest{
		BranchID:      s.branchID,
		Motive:        string(domain.MotiveBankSupplierPayment),
		Amount:        decimal.NewFromInt(40),
		PaymentMethod: &cash,
		BankAccountID: &bankAccountID,
	}, s.userID)

	s.True(errors.Is(err, apperrors.ErrValidation))
}

func (s *MovementServiceTestSuite) TestBankOnlyMovement_SkipsShift() {
	bankAccountID := uuid.NewString()
	s.bankRepo.On("FindBankAccountByID", s.ctx, bankAccountID).Return(&domain.BankAccount{
		BankAccountID: bankAccountID,
	}, nil).Once()

	s.expectTx()
	s.movementRepo.On("SaveMovement", s.ctx, fakeTx{}, mock.AnythingOfType("domain.FinancialMovement")).Return(nil).Once()
	s.shiftRepo.On("Commit", s.ctx, fakeTx{}).Return(nil).Once()

	movement, err := s.service.CreateMovement(s.ctx, dto.CreateMovementRequest{
		BranchID:      s.branchID,
		Motive:        string(domain.MotiveBankSupplierPayment),
		Amount:        decimal.NewFromInt(40),
		BankAccountID: &bankAccountID,
	}, s.userID)

	s.Require().NoError(err)
	s.Nil(movement.ShiftID)
	s.True(movement.CashDelta.IsZero())
	s.True(decimal.NewFromInt(-40).Equal(movement.BankDelta))
	s.shiftRepo.AssertNotCalled(s.T(), "LockOpenShift", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *MovementServiceTestSuite) TestBankOnlyMovement_RejectsShiftID() {
	bankAccountID := uuid.NewString()
	shiftID := uuid.NewString()
	s.bankRepo.On("FindBankAccountByID", s.ctx, bankAccountID).Return(&domain.BankAccount{
		BankAccountID: bankAccountID,
	}, nil).Once()
	s.expectTx()

	_, err := s.service.CreateMovement(s.ctx, dto.CreateMovementRequest{
		BranchID:      s.branchID,
		Motive:        string(domain.MotiveBankSupplierPayment),
		Amount:        decimal.NewFromInt(40),
		BankAccountID: &bankAccountID,
		ShiftID:       &shiftID,
	}, s.userID)

	s.True(errors.Is(err, apperrors.ErrValidation))
}

func (s *MovementServiceTestSuite) TestExplicitShift_ForeignUserNeedsOverride() {
	foreignShift := &domain.Shift{
		ShiftID:        uuid.NewString(),
		BranchID:       s.branchID,
		OpenedByUserID: uuid.NewString(),
		Status:         domain.ShiftOpen,
		OpeningBalance: decimal.NewFromInt(100),
	}

	s.expectTx()
	s.shiftRepo.On("LockShift", s.ctx, fakeTx{}, foreignShift.ShiftID).Return(foreignShift, nil).Once()

	_, err := s.service.CreateMovement(s.ctx, dto.CreateMovementRequest{
		BranchID: s.branchID,
		Motive:   string(domain.MotiveSale),
		Amount:   decimal.NewFromInt(10),
		ShiftID:  &foreignShift.ShiftID,
	}, s.userID)
	s.True(errors.Is(err, apperrors.ErrValidation))

	// With the override the same movement goes through.
	s.expectTx()
	s.shiftRepo.On("LockShift", s.ctx, fakeTx{}, foreignShift.ShiftID).Return(foreignShift, nil).Once()
	s.movementRepo.On("SumCashDeltasByShift", s.ctx, fakeTx{}, foreignShift.ShiftID).Return(decimal.Zero, nil).Once()
	s.movementRepo.On("SaveMovement", s.ctx, fakeTx{}, mock.AnythingOfType("domain.FinancialMovement")).Return(nil).Once()
	s.movementRepo.On("SumCashDeltasByShift", s.ctx, fakeTx{}, foreignShift.ShiftID).Return(decimal.NewFromInt(10), nil).Once()
	s.shiftRepo.On("Commit", s.ctx, fakeTx{}).Return(nil).Once()

	movement, err := s.service.CreateMovement(s.ctx, dto.CreateMovementRequest{
		BranchID:          s.branchID,
		Motive:            string(domain.MotiveSale),
		Amount:            decimal.NewFromInt(10),
		ShiftID:           &foreignShift.ShiftID,
		AllowForeignShift: true,
	}, s.userID)
	s.Require().NoError(err)
	s.Equal(foreignShift.ShiftID, *movement.ShiftID)
}

func (s *MovementServiceTestSuite) TestExplicitShift_MustBeOpen() {
	closedShift := &domain.Shift{
		ShiftID:        uuid.NewString(),
		BranchID:       s.branchID,
		OpenedByUserID: s.userID,
		Status:         domain.ShiftClosed,
	}

	s.expectTx()
	s.shiftRepo.On("LockShift", s.ctx, fakeTx{}, closedShift.ShiftID).Return(closedShift, nil).Once()

	_, err := s.service.CreateMovement(s.ctx, dto.CreateMovementRequest{
		BranchID: s.branchID,
		Motive:   string(domain.MotiveSale),
		Amount:   decimal.NewFromInt(10),
		ShiftID:  &closedShift.ShiftID,
	}, s.userID)

	s.True(errors.Is(err, apperrors.ErrShiftNotOpen))
}

func (s *MovementServiceTestSuite) TestCreateMovement_ShiftBusyPassesThrough() {
	s.expectTx()
	s.shiftRepo.On("LockOpenShift", s.ctx, fakeTx{}, s.branchID, s.userID).Return(nil, apperrors.ErrShiftBusy).Once()

	_, err := s.service.CreateMovement(s.ctx, dto.CreateMovementRequest{
		BranchID: s.branchID,
		Motive:   string(domain.MotiveSale),
		Amount:   decimal.NewFromInt(10),
	}, s.userID)

	s.True(errors.Is(err, apperrors.ErrShiftBusy))
}

func (s *MovementServiceTestSuite) TestListMovements_MapsFilters() {
	shiftID := uuid.NewString()
	motive := string(domain.MotiveSale)

	expected := portsrepo.MovementFilters{
		BranchID: s.branchID,
		ShiftID:  &shiftID,
	}
	m := domain.MovementMotive(motive)
	expected.Motive = &m

	s.movementRepo.On("ListMovements", s.ctx, expected, 10, (*string)(nil)).
		Return([]domain.FinancialMovement{{MovementID: uuid.NewString()}}, nil, nil).Once()

	page, err := s.service.ListMovements(s.ctx, dto.ListMovementsParams{
		BranchID: s.branchID,
		ShiftID:  &shiftID,
		Motive:   &motive,
		Limit:    10,
	})

	s.Require().NoError(err)
	s.Len(page.Movements, 1)
	s.Nil(page.NextToken)
	s.movementRepo.AssertExpectations(s.T())
}

func TestMovementService(t *testing.T) {
	suite.Run(t, new(MovementServiceTestSuite))
}
