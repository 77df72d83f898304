package services_test

import (
	"context"
	"testing"

	"github.com/SafeHavenApp/safehaven_backend/internal/apperrors"
	"github.com/SafeHavenApp/safehaven_backend/internal/core/domain"
	portssvc "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/services"
	"github.com/SafeHavenApp/safehaven_backend/internal/core/services"
	"github.com/SafeHavenApp/safehaven_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- CreateUser Tests ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == "jane@example.com" &&
			user.FullName == "Jane Doe" &&
			user.PasswordHash != "Str0ngPass" &&
			utils.CheckPasswordHash("Str0ngPass", user.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, "  Jane@Example.com ", "Str0ngPass", "Jane Doe")

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("jane@example.com", user.Email) // lowercased and trimmed
	suite.NotEmpty(user.UserID)
	suite.False(user.IsAdmin)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_InvalidEmail() {
	user, err := suite.service.CreateUser(context.Background(), "not-an-email", "Str0ngPass", "Jane Doe")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestCreateUser_WeakPassword() {
	cases := []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"}
	for _, password := range cases {
		user, err := suite.service.CreateUser(context.Background(), "jane@example.com", password, "Jane Doe")
		suite.Require().Error(err, "password %q should be rejected", password)
		suite.Nil(user)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestCreateUser_ShortFullName() {
	user, err := suite.service.CreateUser(context.Background(), "jane@example.com", "Str0ngPass", "J")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicatePassesThrough() {
	ctx := context.Background()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.CreateUser(ctx, "jane@example.com", "Str0ngPass", "Jane Doe")

	suite.Require().Error(err)
	suite.Nil(user)
	// The registration flow depends on recognizing this sentinel unchanged.
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- GetUserByEmail Tests ---

func (suite *UserServiceTestSuite) TestGetUserByEmail_NormalizesEmail() {
	ctx := context.Background()
	expected := &domain.User{UserID: uuid.NewString(), Email: "jane@example.com"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "jane@example.com").Return(expected, nil).Once()

	user, err := suite.service.GetUserByEmail(ctx, " Jane@Example.COM ")

	suite.Require().NoError(err)
	suite.Equal(expected, user)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- SearchUsers Tests ---

func (suite *UserServiceTestSuite) TestSearchUsers_QueryTooShort() {
	users, err := suite.service.SearchUsers(context.Background(), " a ")

	suite.Require().Error(err)
	suite.Nil(users)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SearchUsers")
}

func (suite *UserServiceTestSuite) TestSearchUsers_Success() {
	ctx := context.Background()
	expected := []domain.User{{UserID: uuid.NewString(), FullName: "Jane Doe"}}

	suite.mockUserRepo.On("SearchUsers", ctx, "jane", 20).Return(expected, nil).Once()

	users, err := suite.service.SearchUsers(ctx, "jane")

	suite.Require().NoError(err)
	suite.Equal(expected, users)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestSearchUsers_RepoError() {
	ctx := context.Background()
	suite.mockUserRepo.On("SearchUsers", ctx, "jane", 20).Return(nil, assert.AnError).Once()

	users, err := suite.service.SearchUsers(ctx, "jane")

	suite.Require().Error(err)
	suite.Nil(users)
	suite.ErrorIs(err, assert.AnError)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
