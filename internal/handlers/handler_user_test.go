package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SafeHavenApp/safehaven_backend/internal/apperrors"
	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
	"github.com/SafeHavenApp/safehaven_backend/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	mocks  *mockServices
	user   *domain.User
}

func (suite *UserHandlerTestSuite) SetupTest() {
	suite.mocks = newMockServices()
	suite.router, _ = newTestRouter(suite.mocks)
	suite.user = &domain.User{UserID: uuid.NewString(), Email: "jane@example.com"}
	suite.mocks.Auth.On("CurrentUser", mock.Anything, "valid-session-token").Return(suite.user, nil)
}

func (suite *UserHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer valid-session-token")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *UserHandlerTestSuite) TestSearchUsers_Success() {
	results := []domain.User{
		{UserID: uuid.NewString(), FullName: "John Smith", Email: "john@example.com"},
		{UserID: uuid.NewString(), FullName: "Johanna Doe", Email: "johanna@example.com"},
	}
	suite.mocks.User.On("SearchUsers", mock.Anything, "joh").Return(results, nil).Once()

	w := suite.get("/api/users/search?q=joh")

	suite.Equal(http.StatusOK, w.Code)

	var resp envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)

	var data []dto.UserSearchResult
	suite.Require().NoError(json.Unmarshal(resp.Data, &data))
	suite.Require().Len(data, 2)
	suite.Equal("John Smith", data[0].FullName)
	suite.mocks.User.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestSearchUsers_QueryTooShort() {
	validationErr := apperrors.NewAppError(http.StatusBadRequest, "Search query must be at least 2 characters", apperrors.ErrValidation)
	suite.mocks.User.On("SearchUsers", mock.Anything, "a").Return(nil, validationErr).Once()

	w := suite.get("/api/users/search?q=a")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Search query must be at least 2 characters")
}

func (suite *UserHandlerTestSuite) TestSearchUsers_Unauthenticated() {
	req, _ := http.NewRequest(http.MethodGet, "/api/users/search?q=joh", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mocks.User.AssertNotCalled(suite.T(), "SearchUsers")
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
