package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SafeHavenApp/safehaven_backend/internal/apperrors"
	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
	"github.com/SafeHavenApp/safehaven_backend/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AlertHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	mocks  *mockServices
	user   *domain.User
}

func (suite *AlertHandlerTestSuite) SetupTest() {
	suite.mocks = newMockServices()
	suite.router, _ = newTestRouter(suite.mocks)
	suite.user = &domain.User{UserID: uuid.NewString(), Email: "jane@example.com"}
	suite.mocks.Auth.On("CurrentUser", mock.Anything, "valid-session-token").Return(suite.user, nil)
}

func (suite *AlertHandlerTestSuite) do(method, url string, body []byte) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-session-token")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AlertHandlerTestSuite) TestTriggerAlert_WithLocation() {
	lat, lng := 18.5204, 73.8567
	alert := &domain.EmergencyAlert{
		AlertID:   uuid.NewString(),
		UserID:    suite.user.UserID,
		Latitude:  &lat,
		Longitude: &lng,
		Status:    domain.AlertStatusActive,
		CreatedAt: time.Now(),
	}
	suite.mocks.Alert.On("TriggerAlert", mock.Anything, suite.user.UserID, mock.MatchedBy(func(req dto.CreateAlertRequest) bool {
		return req.Latitude != nil && *req.Latitude == lat
	})).Return(alert, nil).Once()

	body, _ := json.Marshal(dto.CreateAlertRequest{Latitude: &lat, Longitude: &lng})
	w := suite.do(http.MethodPost, "/api/emergency/alerts", body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	var data dto.AlertResponse
	suite.Require().NoError(json.Unmarshal(resp.Data, &data))
	suite.Equal(alert.AlertID, data.AlertID)
	suite.Equal("active", data.Status)
	suite.mocks.Alert.AssertExpectations(suite.T())
}

func (suite *AlertHandlerTestSuite) TestTriggerAlert_EmptyBody() {
	alert := &domain.EmergencyAlert{AlertID: uuid.NewString(), UserID: suite.user.UserID, Status: domain.AlertStatusActive, CreatedAt: time.Now()}
	suite.mocks.Alert.On("TriggerAlert", mock.Anything, suite.user.UserID, dto.CreateAlertRequest{}).Return(alert, nil).Once()

	// The panic button sends no payload at all.
	w := suite.do(http.MethodPost, "/api/emergency/alerts", nil)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mocks.Alert.AssertExpectations(suite.T())
}

func (suite *AlertHandlerTestSuite) TestListAlerts_Success() {
	alerts := []domain.EmergencyAlert{
		{AlertID: uuid.NewString(), UserID: suite.user.UserID, Status: domain.AlertStatusActive, CreatedAt: time.Now()},
	}
	suite.mocks.Alert.On("ListAlerts", mock.Anything, suite.user.UserID).Return(alerts, nil).Once()

	w := suite.do(http.MethodGet, "/api/emergency/alerts", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	var data []dto.AlertResponse
	suite.Require().NoError(json.Unmarshal(resp.Data, &data))
	suite.Len(data, 1)
}

func (suite *AlertHandlerTestSuite) TestResolveAlert_Success() {
	resolvedAt := time.Now()
	alert := &domain.EmergencyAlert{
		AlertID:    uuid.NewString(),
		UserID:     suite.user.UserID,
		Status:     domain.AlertStatusResolved,
		CreatedAt:  time.Now().Add(-time.Hour),
		ResolvedAt: &resolvedAt,
	}
	suite.mocks.Alert.On("ResolveAlert", mock.Anything, alert.AlertID, suite.user.UserID).Return(alert, nil).Once()

	w := suite.do(http.MethodPost, "/api/emergency/alerts/"+alert.AlertID+"/resolve", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	var data dto.AlertResponse
	suite.Require().NoError(json.Unmarshal(resp.Data, &data))
	suite.Equal("resolved", data.Status)
	suite.NotEmpty(data.ResolvedAt)
}

func (suite *AlertHandlerTestSuite) TestResolveAlert_NotOwned() {
	alertID := uuid.NewString()
	suite.mocks.Alert.On("ResolveAlert", mock.Anything, alertID, suite.user.UserID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPost, "/api/emergency/alerts/"+alertID+"/resolve", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AlertHandlerTestSuite) TestTriggerAlert_Unauthenticated() {
	req, _ := http.NewRequest(http.MethodPost, "/api/emergency/alerts", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mocks.Alert.AssertNotCalled(suite.T(), "TriggerAlert")
}

func TestAlertHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AlertHandlerTestSuite))
}
