package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/retailcore/cashdesk/internal/apperrors"
	"github.com/retailcore/cashdesk/internal/core/domain"
	portssvc "github.com/retailcore/cashdesk/internal/core/ports/services"
	"github.com/retailcore/cashdesk/internal/dto"
	"github.com/retailcore/cashdesk/internal/handlers"
	"github.com/retailcore/cashdesk/internal/middleware"
)

// --- Mock ShiftService ---

type MockShiftService struct {
	mock.Mock
}

var _ portssvc.ShiftSvcFacade = (*MockShiftService)(nil)

func (m *MockShiftService) OpenShift(ctx context.Context, req dto.OpenShiftRequest, userID string) (*domain.Shift, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftService) FindOpenShift(ctx context.Context, branchID, userID string) (*domain.Shift, error) {
	args := m.Called(ctx, branchID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftService) CloseShift(ctx context.Context, shiftID string, req dto.CloseShiftRequest, userID string) (*domain.Shift, error) {
	args := m.Called(ctx, shiftID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftService) ShiftBalances(ctx context.Context, shiftID string) (*domain.ShiftBalances, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftBalances), args.Error(1)
}

func (m *MockShiftService) ListShiftSales(ctx context.Context, shiftID string) ([]domain.Sale, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

type ShiftHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockShiftService *MockShiftService
	jwtSecret        string
	userID           string
}

func (suite *ShiftHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	suite.Require().NoError(err)
	return signed
}

func (suite *ShiftHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockShiftService = new(MockShiftService)
	v1 := suite.router.Group("/api/v1")
	handlers.RegisterShiftRoutes(v1, suite.mockShiftService)
}

func (suite *ShiftHandlerTestSuite) doRequest(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ShiftHandlerTestSuite) TestOpenShift_Success() {
	branchID := uuid.NewString()
	shift := &domain.Shift{
		ShiftID:        uuid.NewString(),
		BranchID:       branchID,
		OpenedByUserID: suite.userID,
		Status:         domain.ShiftOpen,
		OpeningBalance: decimal.NewFromInt(200),
	}

	suite.mockShiftService.On("OpenShift", mock.Anything, mock.AnythingOfType("dto.OpenShiftRequest"), suite.userID).
		Return(shift, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/shifts", gin.H{
		"branchID":       branchID,
		"openingBalance": "200",
		"fixedFloat":     "50",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ShiftResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(shift.ShiftID, resp.ShiftID)
	suite.Equal("OPEN", resp.Status)
	suite.mockShiftService.AssertExpectations(suite.T())
}

func (suite *ShiftHandlerTestSuite) TestOpenShift_AlreadyOpenConflict() {
	suite.mockShiftService.On("OpenShift", mock.Anything, mock.AnythingOfType("dto.OpenShiftRequest"), suite.userID).
		Return(nil, apperrors.ErrShiftAlreadyOpen).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/shifts", gin.H{
		"branchID":       uuid.NewString(),
		"openingBalance": "100",
	})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *ShiftHandlerTestSuite) TestOpenShift_Unauthorized() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shifts", bytes.NewBufferString("{}"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *ShiftHandlerTestSuite) TestFindOpenShift_NotFound() {
	branchID := uuid.NewString()
	suite.mockShiftService.On("FindOpenShift", mock.Anything, branchID, suite.userID).
		Return(nil, apperrors.ErrNoOpenShift).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/shifts/open?branchID="+branchID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ShiftHandlerTestSuite) TestShiftBalances_Success() {
	shiftID := uuid.NewString()
	suite.mockShiftService.On("ShiftBalances", mock.Anything, shiftID).
		Return(&domain.ShiftBalances{
			OpeningBalance:  decimal.NewFromInt(100),
			FixedFloat:      decimal.NewFromInt(50),
			CashOnHand:      decimal.NewFromInt(300),
			OperableCash:    decimal.NewFromInt(300),
			MaxWithdrawable: decimal.NewFromInt(250),
		}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/shifts/"+shiftID+"/balances", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ShiftBalancesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(decimal.NewFromInt(300).Equal(resp.CashOnHand))
	suite.True(decimal.NewFromInt(250).Equal(resp.MaxWithdrawable))
}

func (suite *ShiftHandlerTestSuite) TestCloseShift_Busy() {
	shiftID := uuid.NewString()
	suite.mockShiftService.On("CloseShift", mock.Anything, shiftID, mock.AnythingOfType("dto.CloseShiftRequest"), suite.userID).
		Return(nil, apperrors.ErrShiftBusy).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/shifts/"+shiftID+"/close", gin.H{
		"closingBalance": "100",
	})

	suite.Equal(http.StatusConflict, w.Code)
}

func TestShiftHandler(t *testing.T) {
	suite.Run(t, new(ShiftHandlerTestSuite))
}
