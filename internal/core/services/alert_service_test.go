package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SafeHavenApp/safehaven_backend/internal/apperrors"
	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
	portssvc "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/services"
	"github.com/SafeHavenApp/safehaven_backend/internal/core/services"
	"github.com/SafeHavenApp/safehaven_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AlertServiceTestSuite struct {
	suite.Suite
	mockAlertRepo *MockAlertRepository
	service       portssvc.AlertSvcFacade
}

func (suite *AlertServiceTestSuite) SetupTest() {
	suite.mockAlertRepo = new(MockAlertRepository)
	suite.service = services.NewAlertService(suite.mockAlertRepo)
}

func (suite *AlertServiceTestSuite) TestTriggerAlert_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	lat, lng := 18.5204, 73.8567

	suite.mockAlertRepo.On("SaveAlert", ctx, mock.MatchedBy(func(a domain.EmergencyAlert) bool {
		return a.UserID == userID && a.Status == domain.AlertStatusActive &&
			a.Latitude != nil && *a.Latitude == lat && a.Message == "need help"
	})).Return(nil).Once()

	alert, err := suite.service.TriggerAlert(ctx, userID, dto.CreateAlertRequest{
		Latitude:  &lat,
		Longitude: &lng,
		Message:   "  need help  ",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(alert)
	suite.NotEmpty(alert.AlertID)
	suite.Equal(domain.AlertStatusActive, alert.Status)
	suite.mockAlertRepo.AssertExpectations(suite.T())
}

func (suite *AlertServiceTestSuite) TestTriggerAlert_EmptyBodyAllowed() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockAlertRepo.On("SaveAlert", ctx, mock.MatchedBy(func(a domain.EmergencyAlert) bool {
		return a.UserID == userID && a.Latitude == nil && a.Longitude == nil && a.Message == ""
	})).Return(nil).Once()

	alert, err := suite.service.TriggerAlert(ctx, userID, dto.CreateAlertRequest{})

	suite.Require().NoError(err)
	suite.NotNil(alert)
}

func (suite *AlertServiceTestSuite) TestListAlerts_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	expected := []domain.EmergencyAlert{{AlertID: uuid.NewString(), UserID: userID}}

	suite.mockAlertRepo.On("FindAlertsByUserID", ctx, userID).Return(expected, nil).Once()

	alerts, err := suite.service.ListAlerts(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(expected, alerts)
}

func (suite *AlertServiceTestSuite) TestResolveAlert_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	alertID := uuid.NewString()
	resolvedAt := time.Now()
	resolved := &domain.EmergencyAlert{AlertID: alertID, UserID: userID, Status: domain.AlertStatusResolved, ResolvedAt: &resolvedAt}

	suite.mockAlertRepo.On("ResolveAlert", ctx, alertID, userID, mock.AnythingOfType("time.Time")).Return(resolved, nil).Once()

	alert, err := suite.service.ResolveAlert(ctx, alertID, userID)

	suite.Require().NoError(err)
	suite.Equal(resolved, alert)
	suite.mockAlertRepo.AssertExpectations(suite.T())
}

func (suite *AlertServiceTestSuite) TestResolveAlert_NotActiveOrNotOwned() {
	ctx := context.Background()

	suite.mockAlertRepo.On("ResolveAlert", ctx, mock.Anything, mock.Anything, mock.AnythingOfType("time.Time")).Return(nil, apperrors.ErrNotFound).Once()

	alert, err := suite.service.ResolveAlert(ctx, uuid.NewString(), uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(alert)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestAlertServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AlertServiceTestSuite))
}
