package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/YumDrop/yum_recipes_backend/internal/core/domain"
	portssvc "github.com/YumDrop/yum_recipes_backend/internal/core/ports/services"
	"github.com/YumDrop/yum_recipes_backend/internal/core/services"
	"github.com/YumDrop/yum_recipes_backend/internal/dto"
	"github.com/YumDrop/yum_recipes_backend/internal/handlers"
	"github.com/YumDrop/yum_recipes_backend/internal/platform/config"
	"github.com/YumDrop/yum_recipes_backend/internal/utils"
)

// --- Mock PurchaseService ---
type MockPurchaseService struct {
	mock.Mock
}

func (m *MockPurchaseService) PurchaseRecipe(ctx context.Context, userID string, recipeID string) (*domain.Purchase, decimal.Decimal, error) {
	args := m.Called(ctx, userID, recipeID)
	var purchase *domain.Purchase
	if args.Get(0) != nil {
		purchase = args.Get(0).(*domain.Purchase)
	}
	return purchase, args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockPurchaseService) ListPurchases(ctx context.Context, userID string, params dto.ListPurchasesParams) (*dto.ListPurchasesResponse, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListPurchasesResponse), args.Error(1)
}

func (m *MockPurchaseService) HasPurchased(ctx context.Context, userID string, recipeID string) (bool, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Bool(0), args.Error(1)
}

var _ portssvc.PurchaseSvc = (*MockPurchaseService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	args := m.Called(ctx, userID, requestingUserID)
	return args.Error(0)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock RecipeService ---
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) GetRecipeByID(ctx context.Context, recipeID string) (*domain.Recipe, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *MockRecipeService) ListRecipes(ctx context.Context, params dto.ListRecipesParams) (*dto.ListRecipesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListRecipesResponse), args.Error(1)
}

func (m *MockRecipeService) GetExclusiveRecipeByID(ctx context.Context, recipeID string, requestingUserID string) (*dto.ExclusiveRecipeResponse, error) {
	args := m.Called(ctx, recipeID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ExclusiveRecipeResponse), args.Error(1)
}

func (m *MockRecipeService) ListExclusiveRecipes(ctx context.Context, params dto.ListRecipesParams) (*dto.ListExclusiveRecipesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListExclusiveRecipesResponse), args.Error(1)
}

var _ portssvc.RecipeSvcFacade = (*MockRecipeService)(nil)

// --- Mock RewardService ---
type MockRewardService struct {
	mock.Mock
}

func (m *MockRewardService) ListRewards(ctx context.Context, userID string) ([]domain.Reward, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reward), args.Error(1)
}

var _ portssvc.RewardSvc = (*MockRewardService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Test Suite ---
type PurchaseHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	jwtSecret           string
	mockPurchaseService *MockPurchaseService

	userID   string
	recipeID string
}

func (suite *PurchaseHandlerTestSuite) generateTestToken(userID string) string {
	token, err := utils.GenerateJWT(userID, suite.jwtSecret, time.Hour, "test-issuer")
	suite.Require().NoError(err)
	return token
}

func (suite *PurchaseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockPurchaseService = new(MockPurchaseService)

	cfg := &config.Config{
		JWTSecret:         suite.jwtSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test-issuer",
		IsProduction:      true, // skip swagger registration
		PurchaseRateLimit: "1000-M",
	}

	container := &portssvc.ServiceContainer{
		User:     new(MockUserService),
		Recipe:   new(MockRecipeService),
		Purchase: suite.mockPurchaseService,
		Reward:   new(MockRewardService),
		Token:    new(MockTokenService),
	}
	handlers.RegisterRoutes(suite.router, cfg, container)

	suite.userID = uuid.NewString()
	suite.recipeID = uuid.NewString()
}

func (suite *PurchaseHandlerTestSuite) postPurchase(token string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/purchases", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *PurchaseHandlerTestSuite) decodeOutcome(w *httptest.ResponseRecorder) dto.PurchaseOutcome {
	var outcome dto.PurchaseOutcome
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &outcome))
	return outcome
}

func (suite *PurchaseHandlerTestSuite) TestPurchase_Success() {
	newBalance := decimal.RequireFromString("9.01")
	purchase := &domain.Purchase{
		PurchaseID:   uuid.NewString(),
		UserID:       suite.userID,
		RecipeID:     suite.recipeID,
		PricePaid:    decimal.RequireFromString("10.99"),
		PurchaseDate: time.Now().UTC(),
	}

	suite.mockPurchaseService.On("PurchaseRecipe", mock.Anything, suite.userID, suite.recipeID).
		Return(purchase, newBalance, nil).Once()

	w := suite.postPurchase(suite.generateTestToken(suite.userID), dto.PurchaseRequest{RecipeID: suite.recipeID})

	suite.Equal(http.StatusOK, w.Code)
	outcome := suite.decodeOutcome(w)
	suite.True(outcome.Success)
	suite.Require().NotNil(outcome.NewBalance)
	suite.True(outcome.NewBalance.Equal(newBalance))
	suite.Require().NotNil(outcome.Purchase)
	suite.Equal(purchase.PurchaseID, outcome.Purchase.PurchaseID)
	suite.Empty(outcome.ErrorKind)
	suite.mockPurchaseService.AssertExpectations(suite.T())
}

func (suite *PurchaseHandlerTestSuite) TestPurchase_InsufficientBalance() {
	suite.mockPurchaseService.On("PurchaseRecipe", mock.Anything, suite.userID, suite.recipeID).
		Return(nil, decimal.Zero, fmt.Errorf("%w: price 10.99 exceeds balance 10.00", services.ErrInsufficientBalance)).Once()

	w := suite.postPurchase(suite.generateTestToken(suite.userID), dto.PurchaseRequest{RecipeID: suite.recipeID})

	suite.Equal(http.StatusPaymentRequired, w.Code)
	outcome := suite.decodeOutcome(w)
	suite.False(outcome.Success)
	suite.Equal("INSUFFICIENT_BALANCE", outcome.ErrorKind)
	suite.Nil(outcome.NewBalance)
	suite.Nil(outcome.Purchase)
}

func (suite *PurchaseHandlerTestSuite) TestPurchase_AlreadyOwned() {
	suite.mockPurchaseService.On("PurchaseRecipe", mock.Anything, suite.userID, suite.recipeID).
		Return(nil, decimal.Zero, services.ErrAlreadyOwned).Once()

	w := suite.postPurchase(suite.generateTestToken(suite.userID), dto.PurchaseRequest{RecipeID: suite.recipeID})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("ALREADY_OWNED", suite.decodeOutcome(w).ErrorKind)
}

func (suite *PurchaseHandlerTestSuite) TestPurchase_RecipeUnavailable() {
	suite.mockPurchaseService.On("PurchaseRecipe", mock.Anything, suite.userID, suite.recipeID).
		Return(nil, decimal.Zero, services.ErrRecipeUnavailable).Once()

	w := suite.postPurchase(suite.generateTestToken(suite.userID), dto.PurchaseRequest{RecipeID: suite.recipeID})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("RECIPE_UNAVAILABLE", suite.decodeOutcome(w).ErrorKind)
}

func (suite *PurchaseHandlerTestSuite) TestPurchase_TransactionFailure() {
	suite.mockPurchaseService.On("PurchaseRecipe", mock.Anything, suite.userID, suite.recipeID).
		Return(nil, decimal.Zero, fmt.Errorf("%w: commit aborted", services.ErrPurchaseFailed)).Once()

	w := suite.postPurchase(suite.generateTestToken(suite.userID), dto.PurchaseRequest{RecipeID: suite.recipeID})

	suite.Equal(http.StatusBadGateway, w.Code)
	suite.Equal("PURCHASE_FAILED", suite.decodeOutcome(w).ErrorKind)
}

func (suite *PurchaseHandlerTestSuite) TestPurchase_MissingToken() {
	w := suite.postPurchase("", dto.PurchaseRequest{RecipeID: suite.recipeID})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPurchaseService.AssertNotCalled(suite.T(), "PurchaseRecipe", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PurchaseHandlerTestSuite) TestPurchase_InvalidBody() {
	w := suite.postPurchase(suite.generateTestToken(suite.userID), gin.H{"recipeID": "not-a-uuid"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPurchaseService.AssertNotCalled(suite.T(), "PurchaseRecipe", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PurchaseHandlerTestSuite) TestListPurchases_Success() {
	resp := &dto.ListPurchasesResponse{
		Purchases: []dto.PurchaseResponse{{
			PurchaseID:   uuid.NewString(),
			RecipeID:     suite.recipeID,
			PricePaid:    decimal.RequireFromString("10.99"),
			PurchaseDate: time.Now().UTC(),
		}},
	}

	suite.mockPurchaseService.On("ListPurchases", mock.Anything, suite.userID, mock.AnythingOfType("dto.ListPurchasesParams")).
		Return(resp, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/purchases", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.ListPurchasesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Len(got.Purchases, 1)
}

func (suite *PurchaseHandlerTestSuite) TestCheckOwnership() {
	suite.mockPurchaseService.On("HasPurchased", mock.Anything, suite.userID, suite.recipeID).Return(true, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/purchases/ownership/"+suite.recipeID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.OwnershipResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.True(got.Owned)
	suite.Equal(suite.recipeID, got.RecipeID)
}

func TestPurchaseHandler(t *testing.T) {
	suite.Run(t, new(PurchaseHandlerTestSuite))
}
