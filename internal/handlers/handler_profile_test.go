package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
	portssvc "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/services"
	"github.com/SafeHavenApp/safehaven_backend/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProfileHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	mocks  *mockServices
	user   *domain.User
}

func (suite *ProfileHandlerTestSuite) SetupTest() {
	suite.mocks = newMockServices()
	suite.router, _ = newTestRouter(suite.mocks)
	suite.user = &domain.User{
		UserID:    uuid.NewString(),
		Email:     "jane@example.com",
		FullName:  "Jane Doe",
		CreatedAt: time.Now(),
	}
	suite.mocks.Auth.On("CurrentUser", mock.Anything, "valid-session-token").Return(suite.user, nil).Maybe()
}

func (suite *ProfileHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer valid-session-token")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ProfileHandlerTestSuite) TestGetProfile_Success() {
	overview := &portssvc.ProfileOverview{
		Profile: &domain.UserProfile{ProfileID: uuid.NewString(), UserID: suite.user.UserID, City: "Pune"},
		EmergencyContacts: []domain.EmergencyContact{
			{ContactID: uuid.NewString(), Name: "Mom", Relationship: "mother", Phone: "12345", IsPrimary: true},
		},
		Experiences: []domain.HarassmentExperience{
			{ExperienceID: uuid.NewString(), Category: "workplace", Description: "repeated verbal harassment"},
		},
	}
	suite.mocks.Profile.On("GetProfile", mock.Anything, suite.user.UserID).Return(overview, nil).Once()

	w := suite.get("/api/profile")

	suite.Equal(http.StatusOK, w.Code)

	var resp envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)

	var data dto.ProfileOverviewResponse
	suite.Require().NoError(json.Unmarshal(resp.Data, &data))
	suite.Require().NotNil(data.Profile)
	suite.Equal("Pune", data.Profile.City)
	suite.Require().Len(data.EmergencyContacts, 1)
	suite.Equal("Mom", data.EmergencyContacts[0].Name)
	suite.Require().Len(data.Experiences, 1)
	suite.Equal("workplace", data.Experiences[0].Category)
	suite.mocks.Profile.AssertExpectations(suite.T())
}

func (suite *ProfileHandlerTestSuite) TestGetProfile_EmptyOverview() {
	overview := &portssvc.ProfileOverview{}
	suite.mocks.Profile.On("GetProfile", mock.Anything, suite.user.UserID).Return(overview, nil).Once()

	w := suite.get("/api/profile")

	suite.Equal(http.StatusOK, w.Code)

	var resp envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	var data dto.ProfileOverviewResponse
	suite.Require().NoError(json.Unmarshal(resp.Data, &data))
	suite.Nil(data.Profile)
	suite.Empty(data.EmergencyContacts)
	suite.Empty(data.Experiences)
}

func (suite *ProfileHandlerTestSuite) TestGetProfile_Unauthenticated() {
	req, _ := http.NewRequest(http.MethodGet, "/api/profile", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mocks.Profile.AssertNotCalled(suite.T(), "GetProfile")
}

func TestProfileHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileHandlerTestSuite))
}
