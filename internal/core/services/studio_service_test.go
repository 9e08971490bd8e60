package services_test

import (
	"context"
	"testing"

	"github.com/davimoreiraredraw/limify-sub000/internal/apperrors"
	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	portssvc "github.com/davimoreiraredraw/limify-sub000/internal/core/ports/services"
	"github.com/davimoreiraredraw/limify-sub000/internal/core/services"
	"github.com/davimoreiraredraw/limify-sub000/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock StudioRepository (full facade) ---
type MockStudioRepository struct {
	MockStudioReader
}

func (m *MockStudioRepository) SaveStudio(ctx context.Context, studio domain.Studio, creatorMembership domain.UserStudio) error {
	args := m.Called(ctx, studio, creatorMembership)
	return args.Error(0)
}

func (m *MockStudioRepository) UpdateStudio(ctx context.Context, studio domain.Studio) error {
	args := m.Called(ctx, studio)
	return args.Error(0)
}

func (m *MockStudioRepository) UpsertMembership(ctx context.Context, membership domain.UserStudio) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

// --- Mock UserReader ---
type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserReader) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserReader) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

// --- Test Suite ---
type StudioServiceTestSuite struct {
	suite.Suite
	mockStudioRepo *MockStudioRepository
	mockUserRepo   *MockUserReader
	service        portssvc.StudioSvcFacade
	authorizer     portssvc.StudioAuthorizerSvc
}

func (suite *StudioServiceTestSuite) SetupTest() {
	suite.mockStudioRepo = new(MockStudioRepository)
	suite.mockUserRepo = new(MockUserReader)
	suite.service = services.NewStudioService(suite.mockStudioRepo, suite.mockUserRepo)
	suite.authorizer = suite.service.(portssvc.StudioAuthorizerSvc)
}

func (suite *StudioServiceTestSuite) TestAuthorizeUserAction_NonMemberGetsNotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	studioID := uuid.NewString()

	suite.mockStudioRepo.On("FindUserStudioRole", ctx, userID, studioID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.authorizer.AuthorizeUserAction(ctx, userID, studioID, domain.RoleReadOnly)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *StudioServiceTestSuite) TestAuthorizeUserAction_RemovedMemberGetsNotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	studioID := uuid.NewString()

	suite.mockStudioRepo.On("FindUserStudioRole", ctx, userID, studioID).Return(&domain.UserStudio{
		UserID:   userID,
		StudioID: studioID,
		Role:     domain.RoleRemoved,
	}, nil).Once()

	err := suite.authorizer.AuthorizeUserAction(ctx, userID, studioID, domain.RoleReadOnly)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *StudioServiceTestSuite) TestAuthorizeUserAction_ReadOnlyCannotWrite() {
	ctx := context.Background()
	userID := uuid.NewString()
	studioID := uuid.NewString()

	suite.mockStudioRepo.On("FindUserStudioRole", ctx, userID, studioID).Return(&domain.UserStudio{
		UserID:   userID,
		StudioID: studioID,
		Role:     domain.RoleReadOnly,
	}, nil).Once()

	err := suite.authorizer.AuthorizeUserAction(ctx, userID, studioID, domain.RoleMember)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *StudioServiceTestSuite) TestAuthorizeUserAction_AdminCoversLowerRoles() {
	ctx := context.Background()
	userID := uuid.NewString()
	studioID := uuid.NewString()

	suite.mockStudioRepo.On("FindUserStudioRole", ctx, userID, studioID).Return(&domain.UserStudio{
		UserID:   userID,
		StudioID: studioID,
		Role:     domain.RoleAdmin,
	}, nil)

	suite.NoError(suite.authorizer.AuthorizeUserAction(ctx, userID, studioID, domain.RoleReadOnly))
	suite.NoError(suite.authorizer.AuthorizeUserAction(ctx, userID, studioID, domain.RoleMember))
	suite.NoError(suite.authorizer.AuthorizeUserAction(ctx, userID, studioID, domain.RoleAdmin))
}

func (suite *StudioServiceTestSuite) TestCreateStudio_CreatorBecomesAdmin() {
	ctx := context.Background()
	creatorID := uuid.NewString()

	req := dto.CreateStudioRequest{
		Name:           "Estúdio Traço",
		Description:    "Arquitetura residencial",
		BaseHourlyRate: decimal.NewFromInt(120),
	}

	suite.mockStudioRepo.On("SaveStudio", ctx,
		mock.MatchedBy(func(s domain.Studio) bool {
			return s.Name == "Estúdio Traço" && s.IsActive && s.CreatedBy == creatorID
		}),
		mock.MatchedBy(func(m domain.UserStudio) bool {
			return m.UserID == creatorID && m.Role == domain.RoleAdmin
		}),
	).Return(nil).Once()

	studio, err := suite.service.CreateStudio(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(studio)
	suite.NotEmpty(studio.StudioID)
	suite.mockStudioRepo.AssertExpectations(suite.T())
}

func (suite *StudioServiceTestSuite) TestListStudioMembers_FiltersRemoved() {
	ctx := context.Background()
	studioID := uuid.NewString()
	requesterID := uuid.NewString()

	suite.mockStudioRepo.On("FindUserStudioRole", ctx, requesterID, studioID).Return(&domain.UserStudio{
		UserID:   requesterID,
		StudioID: studioID,
		Role:     domain.RoleMember,
	}, nil).Once()
	suite.mockStudioRepo.On("ListStudioMembers", ctx, studioID).Return([]domain.UserStudio{
		{UserID: requesterID, Role: domain.RoleMember},
		{UserID: uuid.NewString(), Role: domain.RoleAdmin},
		{UserID: uuid.NewString(), Role: domain.RoleRemoved},
	}, nil).Once()

	members, err := suite.service.ListStudioMembers(ctx, studioID, requesterID)

	suite.Require().NoError(err)
	suite.Len(members, 2)
	for _, m := range members {
		suite.NotEqual(domain.RoleRemoved, m.Role)
	}
}

func (suite *StudioServiceTestSuite) TestRemoveUserFromStudio_SelfRemovalForbidden() {
	ctx := context.Background()
	studioID := uuid.NewString()
	adminID := uuid.NewString()

	suite.mockStudioRepo.On("FindUserStudioRole", ctx, adminID, studioID).Return(&domain.UserStudio{
		UserID:   adminID,
		StudioID: studioID,
		Role:     domain.RoleAdmin,
	}, nil).Once()

	err := suite.service.RemoveUserFromStudio(ctx, adminID, adminID, studioID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockStudioRepo.AssertNotCalled(suite.T(), "UpsertMembership")
}

func (suite *StudioServiceTestSuite) TestRemoveUserFromStudio_MarksRemoved() {
	ctx := context.Background()
	studioID := uuid.NewString()
	adminID := uuid.NewString()
	targetID := uuid.NewString()

	suite.mockStudioRepo.On("FindUserStudioRole", ctx, adminID, studioID).Return(&domain.UserStudio{
		UserID:   adminID,
		StudioID: studioID,
		Role:     domain.RoleAdmin,
	}, nil).Once()
	suite.mockStudioRepo.On("FindUserStudioRole", ctx, targetID, studioID).Return(&domain.UserStudio{
		UserID:   targetID,
		StudioID: studioID,
		Role:     domain.RoleMember,
	}, nil).Once()
	suite.mockStudioRepo.On("UpsertMembership", ctx, mock.MatchedBy(func(m domain.UserStudio) bool {
		return m.UserID == targetID && m.Role == domain.RoleRemoved
	})).Return(nil).Once()

	err := suite.service.RemoveUserFromStudio(ctx, adminID, targetID, studioID)

	suite.Require().NoError(err)
	suite.mockStudioRepo.AssertExpectations(suite.T())
}

func (suite *StudioServiceTestSuite) TestAddUserToStudio_UnknownTargetRejected() {
	ctx := context.Background()
	studioID := uuid.NewString()
	adminID := uuid.NewString()
	targetID := uuid.NewString()

	suite.mockStudioRepo.On("FindUserStudioRole", ctx, adminID, studioID).Return(&domain.UserStudio{
		UserID:   adminID,
		StudioID: studioID,
		Role:     domain.RoleAdmin,
	}, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, targetID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.AddUserToStudio(ctx, adminID, targetID, studioID, domain.RoleMember)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockStudioRepo.AssertNotCalled(suite.T(), "UpsertMembership")
}

func TestStudioServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StudioServiceTestSuite))
}
