package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/davimoreiraredraw/limify-sub000/internal/apperrors"
	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	portssvc "github.com/davimoreiraredraw/limify-sub000/internal/core/ports/services"
	"github.com/davimoreiraredraw/limify-sub000/internal/dto"
	"github.com/davimoreiraredraw/limify-sub000/internal/handlers"
	"github.com/davimoreiraredraw/limify-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BudgetService ---
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) CreateBudget(ctx context.Context, studioID string, req dto.CreateBudgetRequest, creatorUserID string) (*domain.Budget, error) {
	args := m.Called(ctx, studioID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}
func (m *MockBudgetService) GetBudgetByID(ctx context.Context, studioID string, budgetID string, requestingUserID string) (*domain.Budget, error) {
	args := m.Called(ctx, studioID, budgetID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}
func (m *MockBudgetService) ListBudgets(ctx context.Context, studioID string, requestingUserID string, limit int, nextToken string) ([]domain.Budget, string, error) {
	args := m.Called(ctx, studioID, requestingUserID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Budget), args.String(1), args.Error(2)
}
func (m *MockBudgetService) UpdateBudget(ctx context.Context, studioID string, budgetID string, req dto.UpdateBudgetRequest, requestingUserID string) (*domain.Budget, error) {
	args := m.Called(ctx, studioID, budgetID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}
func (m *MockBudgetService) DeleteBudget(ctx context.Context, studioID string, budgetID string, requestingUserID string) error {
	args := m.Called(ctx, studioID, budgetID, requestingUserID)
	return args.Error(0)
}
func (m *MockBudgetService) AddReference(ctx context.Context, studioID string, budgetID string, projectName string, requestingUserID string) (*domain.BudgetReference, error) {
	args := m.Called(ctx, studioID, budgetID, projectName, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetReference), args.Error(1)
}
func (m *MockBudgetService) RemoveReference(ctx context.Context, studioID string, budgetID string, referenceID string, requestingUserID string) error {
	args := m.Called(ctx, studioID, budgetID, referenceID, requestingUserID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.BudgetSvcFacade = (*MockBudgetService)(nil)

// --- Mock ProposalService ---
type MockProposalService struct {
	mock.Mock
}

func (m *MockProposalService) GetProposalByBudgetID(ctx context.Context, studioID string, budgetID string, requestingUserID string) (*domain.Proposal, error) {
	args := m.Called(ctx, studioID, budgetID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}
func (m *MockProposalService) GetPublicProposal(ctx context.Context, slug string) (*domain.Proposal, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}
func (m *MockProposalService) GenerateProposal(ctx context.Context, studioID string, budgetID string, requestingUserID string) (*domain.Proposal, error) {
	args := m.Called(ctx, studioID, budgetID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}
func (m *MockProposalService) PublishProposal(ctx context.Context, studioID string, proposalID string, published bool, requestingUserID string) (*domain.Proposal, error) {
	args := m.Called(ctx, studioID, proposalID, published, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}
func (m *MockProposalService) BeginDraft(ctx context.Context, studioID string, proposalID string, requestingUserID string) (*domain.Proposal, error) {
	args := m.Called(ctx, studioID, proposalID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}
func (m *MockProposalService) UpdateDraftSection(ctx context.Context, studioID string, proposalID string, sectionID string, req dto.UpdateDraftSectionRequest, requestingUserID string) (*domain.Proposal, error) {
	args := m.Called(ctx, studioID, proposalID, sectionID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}
func (m *MockProposalService) ReorderDraftItems(ctx context.Context, studioID string, proposalID string, sectionID string, orderedItemIDs []string, requestingUserID string) (*domain.Proposal, error) {
	args := m.Called(ctx, studioID, proposalID, sectionID, orderedItemIDs, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}
func (m *MockProposalService) CommitDraft(ctx context.Context, studioID string, proposalID string, requestingUserID string) (*domain.Proposal, error) {
	args := m.Called(ctx, studioID, proposalID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}
func (m *MockProposalService) DiscardDraft(ctx context.Context, studioID string, proposalID string, requestingUserID string) (*domain.Proposal, error) {
	args := m.Called(ctx, studioID, proposalID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ProposalSvcFacade = (*MockProposalService)(nil)

// --- Test Suite ---
type BudgetHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockBudgetService   *MockBudgetService
	mockProposalService *MockProposalService
	jwtSecret           string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *BudgetHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "limify-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *BudgetHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockBudgetService = new(MockBudgetService)
	suite.mockProposalService = new(MockProposalService)

	v1 := suite.router.Group("/api/v1/studios/:studio_id")
	handlers.RegisterBudgetRoutes(v1, suite.mockBudgetService, suite.mockProposalService)
}

// --- Test Cases ---

func (suite *BudgetHandlerTestSuite) TestListBudgets_Success() {
	studioID := uuid.NewString()
	requestingUserID := uuid.NewString()
	limit := 10

	expectedBudgets := []domain.Budget{
		{
			BudgetID: uuid.NewString(),
			StudioID: studioID,
			Name:     "Apartment renovation",
			Type:     domain.BudgetTypeComplete,
			Total:    decimal.NewFromInt(12000),
		},
		{
			BudgetID: uuid.NewString(),
			StudioID: studioID,
			Name:     "Facade renders",
			Type:     domain.BudgetTypeRender,
			Total:    decimal.NewFromInt(3500),
		},
	}
	expectedToken := "opaque-next-token"

	suite.mockBudgetService.On("ListBudgets",
		mock.AnythingOfType("*context.valueCtx"),
		studioID,
		requestingUserID,
		limit,
		"",
	).Return(expectedBudgets, expectedToken, nil).Once()

	url := fmt.Sprintf("/api/v1/studios/%s/budgets?limit=%d", studioID, limit)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(requestingUserID))
	req.Header.Set("Accept", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code, "Expected status OK")

	var responseBody dto.ListBudgetsResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.Len(responseBody.Budgets, len(expectedBudgets))
	if len(responseBody.Budgets) == len(expectedBudgets) {
		suite.Equal(expectedBudgets[0].BudgetID, responseBody.Budgets[0].BudgetID)
		suite.Equal(expectedBudgets[1].BudgetID, responseBody.Budgets[1].BudgetID)
	}
	suite.Equal(expectedToken, responseBody.NextToken)

	suite.mockBudgetService.AssertExpectations(suite.T())
	suite.mockProposalService.AssertNotCalled(suite.T(), "GenerateProposal")
}

func (suite *BudgetHandlerTestSuite) TestCreateBudget_Success() {
	studioID := uuid.NewString()
	creatorUserID := uuid.NewString()

	reqBody := dto.CreateBudgetRequest{
		Name: "Office interior",
		Type: domain.BudgetTypeSquareMeter,
		Items: []dto.CreateBudgetItemRequest{
			{
				Name:         "Open plan floor",
				PricePerM2:   decimal.NewFromInt(80),
				SquareMeters: decimal.NewFromInt(120),
			},
		},
	}

	createdBudget := &domain.Budget{
		BudgetID: uuid.NewString(),
		StudioID: studioID,
		Name:     reqBody.Name,
		Type:     domain.BudgetTypeSquareMeter,
		Total:    decimal.NewFromInt(9600),
	}

	suite.mockBudgetService.On("CreateBudget",
		mock.AnythingOfType("*context.valueCtx"),
		studioID,
		mock.MatchedBy(func(r dto.CreateBudgetRequest) bool {
			return r.Name == reqBody.Name && r.Type == domain.BudgetTypeSquareMeter && len(r.Items) == 1
		}),
		creatorUserID,
	).Return(createdBudget, nil).Once()

	payload, _ := json.Marshal(reqBody)
	url := fmt.Sprintf("/api/v1/studios/%s/budgets", studioID)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(creatorUserID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code, "Expected status Created")

	var responseBody dto.BudgetResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.Equal(createdBudget.BudgetID, responseBody.BudgetID)
	suite.True(createdBudget.Total.Equal(responseBody.Total))

	suite.mockBudgetService.AssertExpectations(suite.T())
}

func (suite *BudgetHandlerTestSuite) TestCreateBudget_InvalidType() {
	studioID := uuid.NewString()
	creatorUserID := uuid.NewString()

	payload := []byte(`{"name":"Bad budget","type":"HOURLY"}`)
	url := fmt.Sprintf("/api/v1/studios/%s/budgets", studioID)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(creatorUserID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code, "Expected binding to reject unknown budget type")
	suite.mockBudgetService.AssertNotCalled(suite.T(), "CreateBudget")
}

func (suite *BudgetHandlerTestSuite) TestGetBudget_NotFound() {
	studioID := uuid.NewString()
	budgetID := uuid.NewString()
	requestingUserID := uuid.NewString()

	suite.mockBudgetService.On("GetBudgetByID",
		mock.AnythingOfType("*context.valueCtx"),
		studioID,
		budgetID,
		requestingUserID,
	).Return(nil, apperrors.ErrNotFound).Once()

	url := fmt.Sprintf("/api/v1/studios/%s/budgets/%s", studioID, budgetID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(requestingUserID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code, "Expected status NotFound")
	suite.mockBudgetService.AssertExpectations(suite.T())
}

func (suite *BudgetHandlerTestSuite) TestDeleteBudget_Forbidden() {
	studioID := uuid.NewString()
	budgetID := uuid.NewString()
	requestingUserID := uuid.NewString()

	suite.mockBudgetService.On("DeleteBudget",
		mock.AnythingOfType("*context.valueCtx"),
		studioID,
		budgetID,
		requestingUserID,
	).Return(apperrors.ErrForbidden).Once()

	url := fmt.Sprintf("/api/v1/studios/%s/budgets/%s", studioID, budgetID)
	req, _ := http.NewRequest(http.MethodDelete, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(requestingUserID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code, "Expected status Forbidden")
	suite.mockBudgetService.AssertExpectations(suite.T())
}

func (suite *BudgetHandlerTestSuite) TestGenerateProposal_Success() {
	studioID := uuid.NewString()
	budgetID := uuid.NewString()
	requestingUserID := uuid.NewString()

	expectedProposal := &domain.Proposal{
		ProposalID: uuid.NewString(),
		BudgetID:   budgetID,
		StudioID:   studioID,
		ShareSlug:  "a1b2c3d4",
		Sections: []domain.ProposalSection{
			{SectionID: uuid.NewString(), Kind: domain.SectionDeliverables, Title: "Deliverables"},
		},
	}

	suite.mockProposalService.On("GenerateProposal",
		mock.AnythingOfType("*context.valueCtx"),
		studioID,
		budgetID,
		requestingUserID,
	).Return(expectedProposal, nil).Once()

	url := fmt.Sprintf("/api/v1/studios/%s/budgets/%s/proposal", studioID, budgetID)
	req, _ := http.NewRequest(http.MethodPost, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(requestingUserID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code, "Expected status Created")

	var responseBody dto.ProposalResponse
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.Equal(expectedProposal.ProposalID, responseBody.ProposalID)
	suite.Equal(expectedProposal.ShareSlug, responseBody.ShareSlug)

	suite.mockProposalService.AssertExpectations(suite.T())
	suite.mockBudgetService.AssertNotCalled(suite.T(), "GetBudgetByID")
}

func (suite *BudgetHandlerTestSuite) TestRequest_MissingToken() {
	url := fmt.Sprintf("/api/v1/studios/%s/budgets", uuid.NewString())
	req, _ := http.NewRequest(http.MethodGet, url, nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code, "Expected status Unauthorized")
	suite.mockBudgetService.AssertNotCalled(suite.T(), "ListBudgets")
}

// --- Run Test Suite ---
func TestBudgetHandler(t *testing.T) {
	suite.Run(t, new(BudgetHandlerTestSuite))
}
