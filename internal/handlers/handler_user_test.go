package handlers_test

import (
	"bytes"
	"encoding/json"
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
	"github.com/YumDrop/yum_recipes_backend/internal/dto"
	"github.com/YumDrop/yum_recipes_backend/internal/handlers"
	"github.com/YumDrop/yum_recipes_backend/internal/platform/config"
	"github.com/YumDrop/yum_recipes_backend/internal/utils"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	jwtSecret       string
	mockUserService *MockUserService

	userID string
}

func (suite *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockUserService = new(MockUserService)

	cfg := &config.Config{
		JWTSecret:         suite.jwtSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test-issuer",
		IsProduction:      true, // skip swagger registration
		PurchaseRateLimit: "1000-M",
	}

	container := &portssvc.ServiceContainer{
		User:     suite.mockUserService,
		Recipe:   new(MockRecipeService),
		Purchase: new(MockPurchaseService),
		Reward:   new(MockRewardService),
		Token:    new(MockTokenService),
	}
	handlers.RegisterRoutes(suite.router, cfg, container)

	suite.userID = uuid.NewString()
}

func (suite *UserHandlerTestSuite) doGet(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *UserHandlerTestSuite) generateTestToken(userID string) string {
	token, err := utils.GenerateJWT(userID, suite.jwtSecret, time.Hour, "test-issuer")
	suite.Require().NoError(err)
	return token
}

func (suite *UserHandlerTestSuite) TestGetUser_OwnRecordIncludesBalance() {
	user := &domain.User{
		UserID:   suite.userID,
		Username: "alice",
		Name:     "Alice",
		Balance:  decimal.RequireFromString("42.50"),
	}
	suite.mockUserService.On("GetUserByID", mock.Anything, suite.userID).Return(user, nil).Once()

	w := suite.doGet("/api/v1/users/"+suite.userID, suite.generateTestToken(suite.userID))

	suite.Equal(http.StatusOK, w.Code)
	var got dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.True(got.Balance.Equal(user.Balance))
}

func (suite *UserHandlerTestSuite) TestGetUser_OtherUserForbidden() {
	otherID := uuid.NewString()

	w := suite.doGet("/api/v1/users/"+otherID, suite.generateTestToken(suite.userID))

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "GetUserByID", mock.Anything, mock.Anything)
}

func (suite *UserHandlerTestSuite) TestListUsers_OmitsBalances() {
	users := []domain.User{
		{UserID: uuid.NewString(), Username: "alice", Name: "Alice", Balance: decimal.RequireFromString("42.50")},
		{UserID: uuid.NewString(), Username: "bob", Name: "Bob", Balance: decimal.RequireFromString("7.25")},
	}
	suite.mockUserService.On("ListUsers", mock.Anything, 20, 0).Return(users, nil).Once()

	w := suite.doGet("/api/v1/users", suite.generateTestToken(suite.userID))

	suite.Equal(http.StatusOK, w.Code)

	var got dto.ListUsersResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Len(got.Users, 2)
	suite.Equal("alice", got.Users[0].Username)

	// The listing must never leak another account's balance.
	var raw struct {
		Users []map[string]json.RawMessage `json:"users"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &raw))
	for _, entry := range raw.Users {
		suite.NotContains(entry, "balance")
	}
}

func (suite *UserHandlerTestSuite) TestCreateUser_NegativeInitialBalance() {
	negative := decimal.RequireFromString("-5")
	payload, err := json.Marshal(dto.CreateUserRequest{
		Username:       "mallory",
		Password:       "password123",
		Name:           "Mallory",
		InitialBalance: &negative,
	})
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "CreateUser", mock.Anything, mock.Anything)
}

func (suite *UserHandlerTestSuite) TestListUsers_MissingToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "ListUsers", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserHandler(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
