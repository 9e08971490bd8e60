package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/davimoreiraredraw/limify-sub000/internal/apperrors"
	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	portssvc "github.com/davimoreiraredraw/limify-sub000/internal/core/ports/services"
	"github.com/davimoreiraredraw/limify-sub000/internal/core/services"
	"github.com/davimoreiraredraw/limify-sub000/internal/dto"
	"github.com/davimoreiraredraw/limify-sub000/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository (full facade) ---
type MockUserRepository struct {
	MockUserReader
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedByUserID string, now time.Time) error {
	args := m.Called(ctx, userID, deletedByUserID, now)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime *time.Time, now time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiryTime, now)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestCreateUser_HashesPassword() {
	ctx := context.Background()

	req := dto.CreateUserRequest{
		Username: "davi@estudio.com",
		Password: "senha-muito-forte",
		Name:     "Davi",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == req.Username &&
			u.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, u.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()

	req := dto.CreateUserRequest{
		Username: "davi@estudio.com",
		Password: "senha-muito-forte",
		Name:     "Davi",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_ReturnsExistingByEmail() {
	ctx := context.Background()
	existing := &domain.User{UserID: uuid.NewString(), Username: "davi@estudio.com"}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "davi@estudio.com").Return(existing, nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, &domain.GoogleUserInfo{Email: "davi@estudio.com", Name: "Davi"})

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, user.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_CreatesWithoutPassword() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "nova@estudio.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "nova@estudio.com" && u.PasswordHash == ""
	})).Return(nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, &domain.GoogleUserInfo{Email: "nova@estudio.com", Name: "Nova"})

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_OnlySelf() {
	ctx := context.Background()

	user, err := suite.service.UpdateUser(ctx, uuid.NewString(), dto.UpdateUserRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser")
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	password := "senha-muito-forte"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	suite.mockUserRepo.On("FindUserByUsername", ctx, "davi@estudio.com").Return(&domain.User{
		UserID:       uuid.NewString(),
		Username:     "davi@estudio.com",
		PasswordHash: hash,
	}, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "davi@estudio.com", password)

	suite.Require().NoError(err)
	suite.NotNil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_SameErrorForUnknownUserAndBadPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("senha-correta")
	suite.Require().NoError(err)

	suite.mockUserRepo.On("FindUserByUsername", ctx, "desconhecida@estudio.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "davi@estudio.com").Return(&domain.User{
		UserID:       uuid.NewString(),
		PasswordHash: hash,
	}, nil).Once()

	_, errUnknown := suite.service.AuthenticateUser(ctx, "desconhecida@estudio.com", "qualquer")
	_, errBadPassword := suite.service.AuthenticateUser(ctx, "davi@estudio.com", "senha-errada")

	suite.ErrorIs(errUnknown, apperrors.ErrUnauthorized)
	suite.ErrorIs(errBadPassword, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_DeletedUserRejected() {
	ctx := context.Background()
	password := "senha-muito-forte"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	deletedAt := time.Now()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "antiga@estudio.com").Return(&domain.User{
		UserID:       uuid.NewString(),
		PasswordHash: hash,
		DeletedAt:    &deletedAt,
	}, nil).Once()

	_, authErr := suite.service.AuthenticateUser(ctx, "antiga@estudio.com", password)

	suite.ErrorIs(authErr, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestClearRefreshToken_SendsEmptyHash() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("UpdateRefreshToken", ctx, userID, "", (*time.Time)(nil), mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.ClearRefreshToken(ctx, userID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
