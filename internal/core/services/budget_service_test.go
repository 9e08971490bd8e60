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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// allowAllAuthorizer authorizes every action; tests that care about
// authorization use denyAuthorizer instead.
type allowAllAuthorizer struct{}

func (allowAllAuthorizer) AuthorizeUserAction(ctx context.Context, userID, studioID string, requiredRole domain.UserStudioRole) error {
	return nil
}

type denyAuthorizer struct{}

func (denyAuthorizer) AuthorizeUserAction(ctx context.Context, userID, studioID string, requiredRole domain.UserStudioRole) error {
	return apperrors.ErrForbidden
}

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	args := m.Called(ctx, budgetID)
	var budget *domain.Budget
	if args.Get(0) != nil {
		budget = args.Get(0).(*domain.Budget)
	}
	return budget, args.Error(1)
}

func (m *MockBudgetRepository) ListBudgets(ctx context.Context, studioID string, limit int, nextToken *string) ([]domain.Budget, *string, error) {
	args := m.Called(ctx, studioID, limit, nextToken)
	var budgets []domain.Budget
	if args.Get(0) != nil {
		budgets = args.Get(0).([]domain.Budget)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return budgets, next, args.Error(2)
}

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeactivateBudget(ctx context.Context, budgetID string, userID string, now time.Time) error {
	args := m.Called(ctx, budgetID, userID, now)
	return args.Error(0)
}

func (m *MockBudgetRepository) UpsertAdditional(ctx context.Context, additional domain.BudgetAdditional) error {
	args := m.Called(ctx, additional)
	return args.Error(0)
}

func (m *MockBudgetRepository) SaveReference(ctx context.Context, reference domain.BudgetReference) error {
	args := m.Called(ctx, reference)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeleteReference(ctx context.Context, referenceID string) error {
	args := m.Called(ctx, referenceID)
	return args.Error(0)
}

// --- Mock ClientReader ---
type MockClientReader struct {
	mock.Mock
}

func (m *MockClientReader) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	var client *domain.Client
	if args.Get(0) != nil {
		client = args.Get(0).(*domain.Client)
	}
	return client, args.Error(1)
}

func (m *MockClientReader) ListClients(ctx context.Context, studioID string, limit int, offset int) ([]domain.Client, error) {
	args := m.Called(ctx, studioID, limit, offset)
	var clients []domain.Client
	if args.Get(0) != nil {
		clients = args.Get(0).([]domain.Client)
	}
	return clients, args.Error(1)
}

// --- Mock StudioReader ---
type MockStudioReader struct {
	mock.Mock
}

func (m *MockStudioReader) FindStudioByID(ctx context.Context, studioID string) (*domain.Studio, error) {
	args := m.Called(ctx, studioID)
	var studio *domain.Studio
	if args.Get(0) != nil {
		studio = args.Get(0).(*domain.Studio)
	}
	return studio, args.Error(1)
}

func (m *MockStudioReader) ListStudiosByUser(ctx context.Context, userID string) ([]domain.Studio, error) {
	args := m.Called(ctx, userID)
	var studios []domain.Studio
	if args.Get(0) != nil {
		studios = args.Get(0).([]domain.Studio)
	}
	return studios, args.Error(1)
}

func (m *MockStudioReader) FindUserStudioRole(ctx context.Context, userID string, studioID string) (*domain.UserStudio, error) {
	args := m.Called(ctx, userID, studioID)
	var membership *domain.UserStudio
	if args.Get(0) != nil {
		membership = args.Get(0).(*domain.UserStudio)
	}
	return membership, args.Error(1)
}

func (m *MockStudioReader) ListStudioMembers(ctx context.Context, studioID string) ([]domain.UserStudio, error) {
	args := m.Called(ctx, studioID)
	var members []domain.UserStudio
	if args.Get(0) != nil {
		members = args.Get(0).([]domain.UserStudio)
	}
	return members, args.Error(1)
}

// --- Test Suite ---
type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo *MockBudgetRepository
	mockClientRepo *MockClientReader
	mockStudioRepo *MockStudioReader
	service        portssvc.BudgetSvcFacade
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockClientRepo = new(MockClientReader)
	suite.mockStudioRepo = new(MockStudioReader)
	suite.service = services.NewBudgetService(suite.mockBudgetRepo, suite.mockClientRepo, suite.mockStudioRepo, allowAllAuthorizer{})
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_CompleteRecomputesTotals() {
	ctx := context.Background()
	studioID := uuid.NewString()
	userID := uuid.NewString()

	// Two phases: 10h x 50 = 500 direct, plus a segment activity 2h x 15 = 30.
	req := dto.CreateBudgetRequest{
		Name:      "Residencial Jardins",
		Type:      domain.BudgetTypeComplete,
		BaseValue: decimal.NewFromInt(150),
		Phases: []dto.CreateBudgetPhaseRequest{
			{
				Name: "Projeto executivo",
				Activities: []dto.CreateBudgetActivityRequest{
					{Name: "Plantas", Hours: decimal.NewFromInt(10), CostPerHour: decimal.NewFromInt(50)},
				},
				Segments: []dto.CreateBudgetSegmentRequest{
					{
						Name: "Sala",
						Activities: []dto.CreateBudgetActivityRequest{
							{Name: "Detalhamento", Hours: decimal.NewFromInt(2), CostPerHour: decimal.NewFromInt(15)},
						},
					},
				},
			},
		},
	}

	var saved domain.Budget
	suite.mockBudgetRepo.On("SaveBudget", ctx, mock.AnythingOfType("domain.Budget")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(domain.Budget)
	}).Return(nil).Once()

	budget, err := suite.service.CreateBudget(ctx, studioID, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(budget)
	suite.True(decimal.NewFromInt(530).Equal(budget.Total), "expected 530, got %s", budget.Total)
	suite.True(decimal.NewFromInt(530).Equal(saved.Total))
	suite.Equal(studioID, saved.StudioID)
	suite.Len(saved.Phases, 1)
	suite.Len(saved.Phases[0].Activities, 1)
	suite.True(decimal.NewFromInt(500).Equal(saved.Phases[0].Activities[0].TotalCost))
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_SquareMeterWithPercentageDiscount() {
	ctx := context.Background()
	studioID := uuid.NewString()

	// 80m2 x 20 + 50m2 x 20 = 2600, minus 10% = 2340.
	req := dto.CreateBudgetRequest{
		Name:         "Apartamento 501",
		Type:         domain.BudgetTypeSquareMeter,
		BaseValue:    decimal.NewFromInt(150),
		Discount:     decimal.NewFromInt(10),
		DiscountType: domain.DiscountPercentage,
		Items: []dto.CreateBudgetItemRequest{
			{Name: "Área social", SquareMeters: decimal.NewFromInt(80), PricePerM2: decimal.NewFromInt(20)},
			{Name: "Área íntima", SquareMeters: decimal.NewFromInt(50), PricePerM2: decimal.NewFromInt(20)},
		},
	}

	suite.mockBudgetRepo.On("SaveBudget", ctx, mock.AnythingOfType("domain.Budget")).Return(nil).Once()

	budget, err := suite.service.CreateBudget(ctx, studioID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(2340).Equal(budget.Total), "expected 2340, got %s", budget.Total)
	// 2340 / 130 m2 = 18
	suite.True(decimal.NewFromInt(18).Equal(budget.AveragePricePerM2), "expected 18, got %s", budget.AveragePricePerM2)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_RenderUsesStudioRateFallback() {
	ctx := context.Background()
	studioID := uuid.NewString()

	// No budget rate: falls back to the studio rate of 100.
	// 2h x 100 x 1.5 (medium) x 2 images = 600.
	req := dto.CreateBudgetRequest{
		Name: "Render fachada",
		Type: domain.BudgetTypeRender,
		Items: []dto.CreateBudgetItemRequest{
			{Name: "Fachada", DevelopmentTime: decimal.NewFromInt(2), ImagesQuantity: 2, Complexity: domain.ComplexityMedium},
		},
	}

	suite.mockStudioRepo.On("FindStudioByID", ctx, studioID).Return(&domain.Studio{
		StudioID:       studioID,
		BaseHourlyRate: decimal.NewFromInt(100),
	}, nil).Once()
	suite.mockBudgetRepo.On("SaveBudget", ctx, mock.AnythingOfType("domain.Budget")).Return(nil).Once()

	budget, err := suite.service.CreateBudget(ctx, studioID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(600).Equal(budget.Total), "expected 600, got %s", budget.Total)
	suite.True(decimal.NewFromInt(600).Equal(budget.Items[0].Total))
	suite.mockBudgetRepo.AssertExpectations(suite.T())
	suite.mockStudioRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_ShapeMismatchRejected() {
	ctx := context.Background()

	req := dto.CreateBudgetRequest{
		Name: "Errado",
		Type: domain.BudgetTypeComplete,
		Items: []dto.CreateBudgetItemRequest{
			{Name: "Item solto", SquareMeters: decimal.NewFromInt(10), PricePerM2: decimal.NewFromInt(20)},
		},
	}

	budget, err := suite.service.CreateBudget(ctx, uuid.NewString(), req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(budget)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "SaveBudget")
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_BothShapesRejected() {
	ctx := context.Background()

	req := dto.CreateBudgetRequest{
		Name:   "Misturado",
		Type:   domain.BudgetTypeSquareMeter,
		Phases: []dto.CreateBudgetPhaseRequest{{Name: "Fase"}},
		Items:  []dto.CreateBudgetItemRequest{{Name: "Item"}},
	}

	_, err := suite.service.CreateBudget(ctx, uuid.NewString(), req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_DiscountAndIncreaseMutuallyExclusive() {
	ctx := context.Background()

	req := dto.CreateBudgetRequest{
		Name:            "Ajuste duplo",
		Type:            domain.BudgetTypeSquareMeter,
		BaseValue:       decimal.NewFromInt(150),
		AdditionalValue: decimal.NewFromInt(100),
		Discount:        decimal.NewFromInt(50),
		DiscountType:    domain.DiscountFlat,
		Items: []dto.CreateBudgetItemRequest{
			{Name: "Item", SquareMeters: decimal.NewFromInt(10), PricePerM2: decimal.NewFromInt(20)},
		},
	}

	_, err := suite.service.CreateBudget(ctx, uuid.NewString(), req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_WetAreaAndUrgencySurcharges() {
	ctx := context.Background()
	studioID := uuid.NewString()

	// Base 2000 + wet area (150 x 3 x 20% = 90) + urgency level 1 = 10% (200) = 2290.
	req := dto.CreateBudgetRequest{
		Name:            "Com adicionais",
		Type:            domain.BudgetTypeSquareMeter,
		BaseValue:       decimal.NewFromInt(150),
		DeliveryUrgency: 1,
		Items: []dto.CreateBudgetItemRequest{
			{Name: "Projeto", SquareMeters: decimal.NewFromInt(100), PricePerM2: decimal.NewFromInt(20)},
		},
		Additional: &dto.BudgetAdditionalRequest{
			WetAreaQuantity:   3,
			WetAreaPercentage: decimal.NewFromInt(20),
		},
	}

	suite.mockBudgetRepo.On("SaveBudget", ctx, mock.AnythingOfType("domain.Budget")).Return(nil).Once()

	budget, err := suite.service.CreateBudget(ctx, studioID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(2000).Equal(budget.Total), "expected 2000, got %s", budget.Total)
	suite.True(decimal.NewFromInt(2290).Equal(budget.TotalWithAdditions), "expected 2290, got %s", budget.TotalWithAdditions)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_SurchargeLevelsMapToTable() {
	ctx := context.Background()
	studioID := uuid.NewString()

	// Levels are ordinal: complexity 2 -> 20%, urgency 3 -> 30%.
	// Base 1000 + 20% (200) + 30% (300) = 1500.
	req := dto.CreateBudgetRequest{
		Name:            "Niveis ordinais",
		Type:            domain.BudgetTypeSquareMeter,
		BaseValue:       decimal.NewFromInt(100),
		Complexity:      2,
		DeliveryUrgency: 3,
		Items: []dto.CreateBudgetItemRequest{
			{Name: "Planta", SquareMeters: decimal.NewFromInt(50), PricePerM2: decimal.NewFromInt(20)},
		},
	}

	suite.mockBudgetRepo.On("SaveBudget", ctx, mock.AnythingOfType("domain.Budget")).Return(nil).Once()

	budget, err := suite.service.CreateBudget(ctx, studioID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(20).Equal(budget.ComplexityPct), "expected 20, got %s", budget.ComplexityPct)
	suite.True(decimal.NewFromInt(30).Equal(budget.DeliveryUrgencyPct), "expected 30, got %s", budget.DeliveryUrgencyPct)
	suite.True(decimal.NewFromInt(1500).Equal(budget.TotalWithAdditions), "expected 1500, got %s", budget.TotalWithAdditions)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_SurchargeLevelOutOfRangeRejected() {
	ctx := context.Background()

	req := dto.CreateBudgetRequest{
		Name:       "Nivel invalido",
		Type:       domain.BudgetTypeSquareMeter,
		BaseValue:  decimal.NewFromInt(100),
		Complexity: 7,
		Items: []dto.CreateBudgetItemRequest{
			{Name: "Planta", SquareMeters: decimal.NewFromInt(10), PricePerM2: decimal.NewFromInt(20)},
		},
	}

	_, err := suite.service.CreateBudget(ctx, uuid.NewString(), req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_UnknownClientRejected() {
	ctx := context.Background()
	studioID := uuid.NewString()
	clientID := uuid.NewString()

	req := dto.CreateBudgetRequest{
		Name:      "Com cliente",
		ClientID:  clientID,
		Type:      domain.BudgetTypeSquareMeter,
		BaseValue: decimal.NewFromInt(150),
		Items: []dto.CreateBudgetItemRequest{
			{Name: "Item", SquareMeters: decimal.NewFromInt(10), PricePerM2: decimal.NewFromInt(20)},
		},
	}

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateBudget(ctx, studioID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestGetBudgetByID_WrongStudioHidden() {
	ctx := context.Background()
	budgetID := uuid.NewString()

	suite.mockBudgetRepo.On("FindBudgetByID", ctx, budgetID).Return(&domain.Budget{
		BudgetID: budgetID,
		StudioID: uuid.NewString(),
	}, nil).Once()

	budget, err := suite.service.GetBudgetByID(ctx, uuid.NewString(), budgetID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(budget)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BudgetServiceTestSuite) TestListBudgets_InvalidTokenRejected() {
	ctx := context.Background()

	_, _, err := suite.service.ListBudgets(ctx, uuid.NewString(), uuid.NewString(), 10, "not-a-valid-token")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "ListBudgets")
}

func (suite *BudgetServiceTestSuite) TestDeleteBudget_Unauthorized() {
	ctx := context.Background()
	denied := services.NewBudgetService(suite.mockBudgetRepo, suite.mockClientRepo, suite.mockStudioRepo, denyAuthorizer{})

	err := denied.DeleteBudget(ctx, uuid.NewString(), uuid.NewString(), uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "DeactivateBudget")
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
