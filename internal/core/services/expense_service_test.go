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

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	var expense *domain.Expense
	if args.Get(0) != nil {
		expense = args.Get(0).(*domain.Expense)
	}
	return expense, args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, studioID string, includeArchived bool, limit int, offset int) ([]domain.Expense, error) {
	args := m.Called(ctx, studioID, includeArchived, limit, offset)
	var expenses []domain.Expense
	if args.Get(0) != nil {
		expenses = args.Get(0).([]domain.Expense)
	}
	return expenses, args.Error(1)
}

func (m *MockExpenseRepository) ListExpensesByCategory(ctx context.Context, studioID string) (map[string][]domain.Expense, error) {
	args := m.Called(ctx, studioID)
	var grouped map[string][]domain.Expense
	if args.Get(0) != nil {
		grouped = args.Get(0).(map[string][]domain.Expense)
	}
	return grouped, args.Error(1)
}

func (m *MockExpenseRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error) {
	args := m.Called(ctx, categoryID)
	var category *domain.ExpenseCategory
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.ExpenseCategory)
	}
	return category, args.Error(1)
}

func (m *MockExpenseRepository) ListCategories(ctx context.Context, studioID string) ([]domain.ExpenseCategory, error) {
	args := m.Called(ctx, studioID)
	var categories []domain.ExpenseCategory
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.ExpenseCategory)
	}
	return categories, args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) ArchiveExpense(ctx context.Context, expenseID string, archived bool, userID string, now time.Time) error {
	args := m.Called(ctx, expenseID, archived, userID, now)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeactivateExpense(ctx context.Context, expenseID string, userID string, now time.Time) error {
	args := m.Called(ctx, expenseID, userID, now)
	return args.Error(0)
}

func (m *MockExpenseRepository) SaveCategory(ctx context.Context, category domain.ExpenseCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockExpenseRepository) UpdateCategory(ctx context.Context, category domain.ExpenseCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// --- Test Suite ---
type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo *MockExpenseRepository
	service         portssvc.ExpenseSvcFacade
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.service = services.NewExpenseService(suite.mockExpenseRepo, allowAllAuthorizer{})
}

func (suite *ExpenseServiceTestSuite) TestGetExpenseSummary_AggregatesPerCategory() {
	ctx := context.Background()
	studioID := uuid.NewString()
	softwareID := uuid.NewString()
	officeID := uuid.NewString()

	categories := []domain.ExpenseCategory{
		{CategoryID: softwareID, StudioID: studioID, Name: "Software", Color: "#3366FF"},
		{CategoryID: officeID, StudioID: studioID, Name: "Escritório", Color: "#FF9900"},
	}
	grouped := map[string][]domain.Expense{
		softwareID: {
			// 120/year = 10/month; fixed
			{ExpenseID: uuid.NewString(), Value: decimal.NewFromInt(120), Frequency: domain.FrequencyAnnual, IsFixed: true},
			// 50/week = 200/month, 2600/year; variable
			{ExpenseID: uuid.NewString(), Value: decimal.NewFromInt(50), Frequency: domain.FrequencyWeekly},
		},
		officeID: {
			// 300/month
			{ExpenseID: uuid.NewString(), Value: decimal.NewFromInt(300), Frequency: domain.FrequencyMonthly, IsFixed: true},
		},
	}

	suite.mockExpenseRepo.On("ListCategories", ctx, studioID).Return(categories, nil).Once()
	suite.mockExpenseRepo.On("ListExpensesByCategory", ctx, studioID).Return(grouped, nil).Once()

	summaries, err := suite.service.GetExpenseSummary(ctx, studioID, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().Len(summaries, 2)

	// Sorted by category name: Escritório before Software.
	suite.Equal("Escritório", summaries[0].CategoryName)
	suite.Equal(1, summaries[0].ExpenseCount)
	suite.True(decimal.NewFromInt(300).Equal(summaries[0].MonthlyTotal))
	suite.True(decimal.NewFromInt(3600).Equal(summaries[0].AnnualTotal))

	suite.Equal("Software", summaries[1].CategoryName)
	suite.Equal(2, summaries[1].ExpenseCount)
	suite.True(decimal.NewFromInt(210).Equal(summaries[1].MonthlyTotal), "expected 210, got %s", summaries[1].MonthlyTotal)
	suite.True(decimal.NewFromInt(2720).Equal(summaries[1].AnnualTotal), "expected 2720, got %s", summaries[1].AnnualTotal)
	suite.True(decimal.NewFromInt(10).Equal(summaries[1].FixedMonthly))
	suite.True(decimal.NewFromInt(200).Equal(summaries[1].VariableMonthly))
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestGetExpenseSummary_EmptyCategoryIncluded() {
	ctx := context.Background()
	studioID := uuid.NewString()
	categoryID := uuid.NewString()

	suite.mockExpenseRepo.On("ListCategories", ctx, studioID).Return([]domain.ExpenseCategory{
		{CategoryID: categoryID, StudioID: studioID, Name: "Marketing"},
	}, nil).Once()
	suite.mockExpenseRepo.On("ListExpensesByCategory", ctx, studioID).Return(map[string][]domain.Expense{}, nil).Once()

	summaries, err := suite.service.GetExpenseSummary(ctx, studioID, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().Len(summaries, 1)
	suite.Equal(0, summaries[0].ExpenseCount)
	suite.True(summaries[0].MonthlyTotal.IsZero())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_Success() {
	ctx := context.Background()
	studioID := uuid.NewString()
	categoryID := uuid.NewString()
	userID := uuid.NewString()

	req := dto.CreateExpenseRequest{
		CategoryID: categoryID,
		Name:       "Licença CAD",
		Value:      decimal.NewFromInt(450),
		Frequency:  domain.FrequencyMonthly,
		IsFixed:    true,
	}

	suite.mockExpenseRepo.On("FindCategoryByID", ctx, categoryID).Return(&domain.ExpenseCategory{
		CategoryID: categoryID,
		StudioID:   studioID,
	}, nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.StudioID == studioID && e.CategoryID == categoryID && e.IsActive && e.CreatedBy == userID
	})).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, studioID, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.NotEmpty(expense.ExpenseID)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_CategoryFromOtherStudioRejected() {
	ctx := context.Background()
	categoryID := uuid.NewString()

	req := dto.CreateExpenseRequest{
		CategoryID: categoryID,
		Name:       "Assinatura",
		Value:      decimal.NewFromInt(99),
		Frequency:  domain.FrequencyMonthly,
	}

	suite.mockExpenseRepo.On("FindCategoryByID", ctx, categoryID).Return(&domain.ExpenseCategory{
		CategoryID: categoryID,
		StudioID:   uuid.NewString(),
	}, nil).Once()

	expense, err := suite.service.CreateExpense(ctx, uuid.NewString(), req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense")
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_NegativeValueRejected() {
	ctx := context.Background()
	studioID := uuid.NewString()
	categoryID := uuid.NewString()

	req := dto.CreateExpenseRequest{
		CategoryID: categoryID,
		Name:       "Valor negativo",
		Value:      decimal.NewFromInt(-10),
		Frequency:  domain.FrequencyMonthly,
	}

	suite.mockExpenseRepo.On("FindCategoryByID", ctx, categoryID).Return(&domain.ExpenseCategory{
		CategoryID: categoryID,
		StudioID:   studioID,
	}, nil).Once()

	_, err := suite.service.CreateExpense(ctx, studioID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExpenseServiceTestSuite) TestArchiveExpense_Success() {
	ctx := context.Background()
	studioID := uuid.NewString()
	expenseID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, expenseID).Return(&domain.Expense{
		ExpenseID: expenseID,
		StudioID:  studioID,
	}, nil).Once()
	suite.mockExpenseRepo.On("ArchiveExpense", ctx, expenseID, true, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.ArchiveExpense(ctx, studioID, expenseID, true, userID)

	suite.Require().NoError(err)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestDeleteCategory_ConflictWhileReferenced() {
	ctx := context.Background()
	studioID := uuid.NewString()
	categoryID := uuid.NewString()

	suite.mockExpenseRepo.On("FindCategoryByID", ctx, categoryID).Return(&domain.ExpenseCategory{
		CategoryID: categoryID,
		StudioID:   studioID,
	}, nil).Once()
	suite.mockExpenseRepo.On("DeleteCategory", ctx, categoryID).Return(apperrors.ErrConflict).Once()

	err := suite.service.DeleteCategory(ctx, studioID, categoryID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_CrossStudioHidden() {
	ctx := context.Background()
	expenseID := uuid.NewString()

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, expenseID).Return(&domain.Expense{
		ExpenseID: expenseID,
		StudioID:  uuid.NewString(),
	}, nil).Once()

	name := "Novo nome"
	_, err := suite.service.UpdateExpense(ctx, uuid.NewString(), expenseID, dto.UpdateExpenseRequest{Name: &name}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "UpdateExpense")
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
