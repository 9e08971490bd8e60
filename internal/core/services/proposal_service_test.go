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

// --- Mock ProposalRepository ---
type MockProposalRepository struct {
	mock.Mock
}

func (m *MockProposalRepository) FindProposalByID(ctx context.Context, proposalID string) (*domain.Proposal, error) {
	args := m.Called(ctx, proposalID)
	var proposal *domain.Proposal
	if args.Get(0) != nil {
		proposal = args.Get(0).(*domain.Proposal)
	}
	return proposal, args.Error(1)
}

func (m *MockProposalRepository) FindProposalByBudgetID(ctx context.Context, budgetID string) (*domain.Proposal, error) {
	args := m.Called(ctx, budgetID)
	var proposal *domain.Proposal
	if args.Get(0) != nil {
		proposal = args.Get(0).(*domain.Proposal)
	}
	return proposal, args.Error(1)
}

func (m *MockProposalRepository) FindProposalBySlug(ctx context.Context, slug string) (*domain.Proposal, error) {
	args := m.Called(ctx, slug)
	var proposal *domain.Proposal
	if args.Get(0) != nil {
		proposal = args.Get(0).(*domain.Proposal)
	}
	return proposal, args.Error(1)
}

func (m *MockProposalRepository) SaveProposal(ctx context.Context, proposal domain.Proposal) error {
	args := m.Called(ctx, proposal)
	return args.Error(0)
}

func (m *MockProposalRepository) UpdateProposal(ctx context.Context, proposal domain.Proposal) error {
	args := m.Called(ctx, proposal)
	return args.Error(0)
}

// --- Test Suite ---
type ProposalServiceTestSuite struct {
	suite.Suite
	mockProposalRepo *MockProposalRepository
	mockBudgetRepo   *MockBudgetRepository
	mockStudioRepo   *MockStudioReader
	service          portssvc.ProposalSvcFacade
}

func (suite *ProposalServiceTestSuite) SetupTest() {
	suite.mockProposalRepo = new(MockProposalRepository)
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockStudioRepo = new(MockStudioReader)
	suite.service = services.NewProposalService(suite.mockProposalRepo, suite.mockBudgetRepo, suite.mockStudioRepo, allowAllAuthorizer{})
}

func sectionByKind(suite *ProposalServiceTestSuite, sections []domain.ProposalSection, kind domain.SectionKind) domain.ProposalSection {
	for _, s := range sections {
		if s.Kind == kind {
			return s
		}
	}
	suite.FailNowf("section missing", "no section of kind %s", kind)
	return domain.ProposalSection{}
}

func (suite *ProposalServiceTestSuite) TestGenerateProposal_NewBudget() {
	ctx := context.Background()
	studioID := uuid.NewString()
	budgetID := uuid.NewString()
	userID := uuid.NewString()

	budget := &domain.Budget{
		BudgetID:           budgetID,
		StudioID:           studioID,
		Type:               domain.BudgetTypeSquareMeter,
		Total:              decimal.NewFromInt(2340),
		TotalWithAdditions: decimal.NewFromInt(2340),
		Items: []domain.BudgetItem{
			{ItemID: uuid.NewString(), Name: "Área social", Description: "Sala e cozinha"},
			{ItemID: uuid.NewString(), Name: "Área íntima"},
		},
	}
	studio := &domain.Studio{StudioID: studioID, Name: "Estúdio Traço", Description: "Arquitetura residencial"}

	suite.mockBudgetRepo.On("FindBudgetByID", ctx, budgetID).Return(budget, nil).Once()
	suite.mockStudioRepo.On("FindStudioByID", ctx, studioID).Return(studio, nil).Once()
	suite.mockProposalRepo.On("FindProposalByBudgetID", ctx, budgetID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockProposalRepo.On("SaveProposal", ctx, mock.AnythingOfType("domain.Proposal")).Return(nil).Once()

	proposal, err := suite.service.GenerateProposal(ctx, studioID, budgetID, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(proposal)
	suite.NotEmpty(proposal.ShareSlug)
	suite.False(proposal.Published)
	suite.Len(proposal.Sections, 5)

	deliverables := sectionByKind(suite, proposal.Sections, domain.SectionDeliverables)
	suite.Len(deliverables.Items, 2)
	suite.Equal("Área social", deliverables.Items[0].Title)

	investment := sectionByKind(suite, proposal.Sections, domain.SectionInvestment)
	suite.Require().Len(investment.Items, 2)
	suite.Equal("R$ 2.340,00", investment.Items[0].Value)

	team := sectionByKind(suite, proposal.Sections, domain.SectionTeam)
	suite.True(team.Hidden)

	suite.mockProposalRepo.AssertExpectations(suite.T())
}

func (suite *ProposalServiceTestSuite) TestGenerateProposal_RegenerateKeepsSlug() {
	ctx := context.Background()
	studioID := uuid.NewString()
	budgetID := uuid.NewString()

	budget := &domain.Budget{BudgetID: budgetID, StudioID: studioID, Type: domain.BudgetTypeComplete}
	existing := &domain.Proposal{
		ProposalID:    uuid.NewString(),
		BudgetID:      budgetID,
		StudioID:      studioID,
		ShareSlug:     "abc12345",
		Published:     true,
		DraftSections: []domain.ProposalSection{{SectionID: uuid.NewString()}},
	}

	suite.mockBudgetRepo.On("FindBudgetByID", ctx, budgetID).Return(budget, nil).Once()
	suite.mockStudioRepo.On("FindStudioByID", ctx, studioID).Return(&domain.Studio{StudioID: studioID}, nil).Once()
	suite.mockProposalRepo.On("FindProposalByBudgetID", ctx, budgetID).Return(existing, nil).Once()
	suite.mockProposalRepo.On("UpdateProposal", ctx, mock.AnythingOfType("domain.Proposal")).Return(nil).Once()

	proposal, err := suite.service.GenerateProposal(ctx, studioID, budgetID, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("abc12345", proposal.ShareSlug)
	suite.Nil(proposal.DraftSections, "regenerating must drop a stale draft")
	suite.Len(proposal.Sections, 5)
	suite.mockProposalRepo.AssertExpectations(suite.T())
	suite.mockProposalRepo.AssertNotCalled(suite.T(), "SaveProposal")
}

func (suite *ProposalServiceTestSuite) TestGetPublicProposal_UnpublishedHidden() {
	ctx := context.Background()

	suite.mockProposalRepo.On("FindProposalBySlug", ctx, "secreto12").Return(&domain.Proposal{
		ProposalID: uuid.NewString(),
		ShareSlug:  "secreto12",
		Published:  false,
	}, nil).Once()

	proposal, err := suite.service.GetPublicProposal(ctx, "secreto12")

	suite.Require().Error(err)
	suite.Nil(proposal)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ProposalServiceTestSuite) TestDraftLifecycle() {
	ctx := context.Background()
	studioID := uuid.NewString()
	proposalID := uuid.NewString()
	sectionID := uuid.NewString()
	userID := uuid.NewString()

	stored := &domain.Proposal{
		ProposalID: proposalID,
		StudioID:   studioID,
		Sections: []domain.ProposalSection{
			{
				SectionID: sectionID,
				Kind:      domain.SectionDeliverables,
				Title:     "O que está incluso",
				Items: []domain.SectionItem{
					{ItemID: "item-1", Title: "Plantas"},
					{ItemID: "item-2", Title: "Renders"},
				},
			},
		},
	}

	suite.mockProposalRepo.On("FindProposalByID", ctx, proposalID).Return(stored, nil)
	suite.mockProposalRepo.On("UpdateProposal", ctx, mock.AnythingOfType("domain.Proposal")).Return(nil)

	// Begin: draft is a copy of the published sections.
	proposal, err := suite.service.BeginDraft(ctx, studioID, proposalID, userID)
	suite.Require().NoError(err)
	suite.Require().True(proposal.HasDraft())
	suite.Equal("Plantas", proposal.DraftSections[0].Items[0].Title)

	// Edit the draft title; the published copy stays untouched.
	newTitle := "Entregáveis"
	proposal, err = suite.service.UpdateDraftSection(ctx, studioID, proposalID, sectionID, dto.UpdateDraftSectionRequest{Title: &newTitle}, userID)
	suite.Require().NoError(err)
	suite.Equal("Entregáveis", proposal.DraftSections[0].Title)
	suite.Equal("O que está incluso", proposal.Sections[0].Title)

	// Reorder the draft items.
	proposal, err = suite.service.ReorderDraftItems(ctx, studioID, proposalID, sectionID, []string{"item-2", "item-1"}, userID)
	suite.Require().NoError(err)
	suite.Equal("item-2", proposal.DraftSections[0].Items[0].ItemID)

	// Commit: the draft becomes the published content.
	proposal, err = suite.service.CommitDraft(ctx, studioID, proposalID, userID)
	suite.Require().NoError(err)
	suite.False(proposal.HasDraft())
	suite.Equal("Entregáveis", proposal.Sections[0].Title)
	suite.Equal("item-2", proposal.Sections[0].Items[0].ItemID)
}

func (suite *ProposalServiceTestSuite) TestCommitDraft_WithoutDraftRejected() {
	ctx := context.Background()
	studioID := uuid.NewString()
	proposalID := uuid.NewString()

	suite.mockProposalRepo.On("FindProposalByID", ctx, proposalID).Return(&domain.Proposal{
		ProposalID: proposalID,
		StudioID:   studioID,
	}, nil).Once()

	_, err := suite.service.CommitDraft(ctx, studioID, proposalID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockProposalRepo.AssertNotCalled(suite.T(), "UpdateProposal")
}

func (suite *ProposalServiceTestSuite) TestReorderDraftItems_ForeignItemRejected() {
	ctx := context.Background()
	studioID := uuid.NewString()
	proposalID := uuid.NewString()
	sectionID := uuid.NewString()

	stored := &domain.Proposal{
		ProposalID: proposalID,
		StudioID:   studioID,
		Sections: []domain.ProposalSection{
			{SectionID: sectionID, Items: []domain.SectionItem{{ItemID: "item-1"}}},
		},
	}
	stored.BeginDraft()

	suite.mockProposalRepo.On("FindProposalByID", ctx, proposalID).Return(stored, nil).Once()

	_, err := suite.service.ReorderDraftItems(ctx, studioID, proposalID, sectionID, []string{"intruso"}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ProposalServiceTestSuite) TestDiscardDraft_RevertsToPublished() {
	ctx := context.Background()
	studioID := uuid.NewString()
	proposalID := uuid.NewString()
	sectionID := uuid.NewString()

	stored := &domain.Proposal{
		ProposalID: proposalID,
		StudioID:   studioID,
		Sections:   []domain.ProposalSection{{SectionID: sectionID, Title: "Original"}},
	}
	stored.BeginDraft()
	stored.DraftSections[0].Title = "Alterado"

	suite.mockProposalRepo.On("FindProposalByID", ctx, proposalID).Return(stored, nil).Once()
	suite.mockProposalRepo.On("UpdateProposal", ctx, mock.AnythingOfType("domain.Proposal")).Return(nil).Once()

	proposal, err := suite.service.DiscardDraft(ctx, studioID, proposalID, uuid.NewString())

	suite.Require().NoError(err)
	suite.False(proposal.HasDraft())
	suite.Equal("Original", proposal.Sections[0].Title)
}

func (suite *ProposalServiceTestSuite) TestGetProposalByBudgetID_CrossStudioHidden() {
	ctx := context.Background()
	budgetID := uuid.NewString()

	suite.mockProposalRepo.On("FindProposalByBudgetID", ctx, budgetID).Return(&domain.Proposal{
		ProposalID: uuid.NewString(),
		BudgetID:   budgetID,
		StudioID:   uuid.NewString(),
	}, nil).Once()

	proposal, err := suite.service.GetProposalByBudgetID(ctx, uuid.NewString(), budgetID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(proposal)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestProposalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProposalServiceTestSuite))
}
