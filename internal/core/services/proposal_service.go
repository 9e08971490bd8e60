package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/davimoreiraredraw/limify-sub000/internal/apperrors"
	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	portsrepo "github.com/davimoreiraredraw/limify-sub000/internal/core/ports/repositories"
	portssvc "github.com/davimoreiraredraw/limify-sub000/internal/core/ports/services"
	"github.com/davimoreiraredraw/limify-sub000/internal/dto"
	"github.com/davimoreiraredraw/limify-sub000/internal/utils"
	"github.com/davimoreiraredraw/limify-sub000/internal/utils/pricing"
	"github.com/google/uuid"
)

// proposalService implements the ProposalSvcFacade interface
type proposalService struct {
	BaseService
	proposalRepo portsrepo.ProposalRepositoryFacade
	budgetRepo   portsrepo.BudgetReader
	studioRepo   portsrepo.StudioReader
}

// NewProposalService creates a new proposal service with the provided dependencies
func NewProposalService(
	proposalRepo portsrepo.ProposalRepositoryFacade,
	budgetRepo portsrepo.BudgetReader,
	studioRepo portsrepo.StudioReader,
	authorizer portssvc.StudioAuthorizerSvc,
) portssvc.ProposalSvcFacade {
	return &proposalService{
		BaseService:  BaseService{StudioAuthorizer: authorizer},
		proposalRepo: proposalRepo,
		budgetRepo:   budgetRepo,
		studioRepo:   studioRepo,
	}
}

// Ensure proposalService implements the ProposalSvcFacade interface
var _ portssvc.ProposalSvcFacade = (*proposalService)(nil)

// GetProposalByBudgetID retrieves the proposal attached to a budget
func (s *proposalService) GetProposalByBudgetID(ctx context.Context, studioID string, budgetID string, requestingUserID string) (*domain.Proposal, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, studioID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	proposal, err := s.proposalRepo.FindProposalByBudgetID(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	if proposal.StudioID != studioID {
		return nil, apperrors.ErrNotFound
	}
	return proposal, nil
}

// GetPublicProposal retrieves a published proposal by its share slug. No
// authentication is required; unpublished proposals stay hidden.
func (s *proposalService) GetPublicProposal(ctx context.Context, slug string) (*domain.Proposal, error) {
	proposal, err := s.proposalRepo.FindProposalBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !proposal.Published {
		return nil, apperrors.ErrNotFound
	}
	return proposal, nil
}

// GenerateProposal builds the landing-page sections from the budget's line
// items and persists a new proposal. Regenerating replaces the published
// sections but keeps the slug, so shared links survive.
func (s *proposalService) GenerateProposal(ctx context.Context, studioID string, budgetID string, requestingUserID string) (*domain.Proposal, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, studioID, domain.RoleMember); err != nil {
		return nil, err
	}

	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	if budget.StudioID != studioID {
		return nil, apperrors.ErrNotFound
	}

	studio, err := s.studioRepo.FindStudioByID(ctx, studioID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sections := buildSections(budget, studio)

	existing, err := s.proposalRepo.FindProposalByBudgetID(ctx, budgetID)
	if err == nil {
		existing.Sections = sections
		existing.DraftSections = nil
		existing.LastUpdatedAt = now
		existing.LastUpdatedBy = requestingUserID
		if err := s.proposalRepo.UpdateProposal(ctx, *existing); err != nil {
			s.LogError(ctx, err, "Failed to regenerate proposal", slog.String("budget_id", budgetID))
			return nil, err
		}
		s.LogInfo(ctx, "Proposal regenerated", slog.String("proposal_id", existing.ProposalID))
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	slug, err := utils.GenerateSecureRandomString(8)
	if err != nil {
		return nil, fmt.Errorf("failed to generate share slug: %w", err)
	}

	proposal := domain.Proposal{
		ProposalID: uuid.NewString(),
		BudgetID:   budgetID,
		StudioID:   studioID,
		ShareSlug:  slug,
		Published:  false,
		Sections:   sections,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.proposalRepo.SaveProposal(ctx, proposal); err != nil {
		s.LogError(ctx, err, "Failed to save proposal", slog.String("budget_id", budgetID))
		return nil, err
	}

	s.LogInfo(ctx, "Proposal generated",
		slog.String("proposal_id", proposal.ProposalID),
		slog.String("budget_id", budgetID))
	return &proposal, nil
}

// PublishProposal toggles public visibility of the proposal page
func (s *proposalService) PublishProposal(ctx context.Context, studioID string, proposalID string, published bool, requestingUserID string) (*domain.Proposal, error) {
	proposal, err := s.getOwnedProposal(ctx, studioID, proposalID, requestingUserID)
	if err != nil {
		return nil, err
	}

	proposal.Published = published
	proposal.LastUpdatedAt = time.Now()
	proposal.LastUpdatedBy = requestingUserID

	if err := s.proposalRepo.UpdateProposal(ctx, *proposal); err != nil {
		s.LogError(ctx, err, "Failed to publish proposal", slog.String("proposal_id", proposalID))
		return nil, err
	}
	return proposal, nil
}

// BeginDraft opens an edit session by copying the published sections into a
// working draft
func (s *proposalService) BeginDraft(ctx context.Context, studioID string, proposalID string, requestingUserID string) (*domain.Proposal, error) {
	proposal, err := s.getOwnedProposal(ctx, studioID, proposalID, requestingUserID)
	if err != nil {
		return nil, err
	}

	proposal.BeginDraft()
	return s.persist(ctx, proposal, requestingUserID)
}

// UpdateDraftSection applies edits to one section of the draft
func (s *proposalService) UpdateDraftSection(ctx context.Context, studioID string, proposalID string, sectionID string, req dto.UpdateDraftSectionRequest, requestingUserID string) (*domain.Proposal, error) {
	proposal, err := s.getOwnedProposal(ctx, studioID, proposalID, requestingUserID)
	if err != nil {
		return nil, err
	}

	section, err := proposal.DraftSection(sectionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if req.Title != nil {
		section.Title = *req.Title
	}
	if req.Subtitle != nil {
		section.Subtitle = *req.Subtitle
	}
	if req.Hidden != nil {
		section.Hidden = *req.Hidden
	}
	if req.Items != nil {
		for i := range req.Items {
			if req.Items[i].ItemID == "" {
				req.Items[i].ItemID = uuid.NewString()
			}
		}
		section.Items = req.Items
	}

	return s.persist(ctx, proposal, requestingUserID)
}

// ReorderDraftItems rearranges one draft section's items
func (s *proposalService) ReorderDraftItems(ctx context.Context, studioID string, proposalID string, sectionID string, orderedItemIDs []string, requestingUserID string) (*domain.Proposal, error) {
	proposal, err := s.getOwnedProposal(ctx, studioID, proposalID, requestingUserID)
	if err != nil {
		return nil, err
	}

	section, err := proposal.DraftSection(sectionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if err := section.Reorder(orderedItemIDs); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	return s.persist(ctx, proposal, requestingUserID)
}

// CommitDraft publishes the draft atomically
func (s *proposalService) CommitDraft(ctx context.Context, studioID string, proposalID string, requestingUserID string) (*domain.Proposal, error) {
	proposal, err := s.getOwnedProposal(ctx, studioID, proposalID, requestingUserID)
	if err != nil {
		return nil, err
	}
	if !proposal.HasDraft() {
		return nil, fmt.Errorf("%w: no draft in progress", apperrors.ErrValidation)
	}

	proposal.CommitDraft()
	return s.persist(ctx, proposal, requestingUserID)
}

// DiscardDraft drops the draft, reverting to the last saved sections
func (s *proposalService) DiscardDraft(ctx context.Context, studioID string, proposalID string, requestingUserID string) (*domain.Proposal, error) {
	proposal, err := s.getOwnedProposal(ctx, studioID, proposalID, requestingUserID)
	if err != nil {
		return nil, err
	}

	proposal.DiscardDraft()
	return s.persist(ctx, proposal, requestingUserID)
}

func (s *proposalService) getOwnedProposal(ctx context.Context, studioID string, proposalID string, requestingUserID string) (*domain.Proposal, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, studioID, domain.RoleMember); err != nil {
		return nil, err
	}

	proposal, err := s.proposalRepo.FindProposalByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if proposal.StudioID != studioID {
		return nil, apperrors.ErrNotFound
	}
	return proposal, nil
}

func (s *proposalService) persist(ctx context.Context, proposal *domain.Proposal, userID string) (*domain.Proposal, error) {
	proposal.LastUpdatedAt = time.Now()
	proposal.LastUpdatedBy = userID

	if err := s.proposalRepo.UpdateProposal(ctx, *proposal); err != nil {
		s.LogError(ctx, err, "Failed to persist proposal", slog.String("proposal_id", proposal.ProposalID))
		return nil, err
	}
	return proposal, nil
}

// buildSections derives the landing-page content from the budget tree. Every
// section is created even when empty so the editor can fill it in later.
func buildSections(budget *domain.Budget, studio *domain.Studio) []domain.ProposalSection {
	deliverables := domain.ProposalSection{
		SectionID: uuid.NewString(),
		Kind:      domain.SectionDeliverables,
		Title:     "O que está incluso",
		Items:     []domain.SectionItem{},
	}
	for _, item := range budget.Items {
		deliverables.Items = append(deliverables.Items, domain.SectionItem{
			ItemID:      uuid.NewString(),
			Title:       item.Name,
			Description: item.Description,
		})
	}

	phases := domain.ProposalSection{
		SectionID: uuid.NewString(),
		Kind:      domain.SectionPhases,
		Title:     "Etapas do projeto",
		Items:     []domain.SectionItem{},
	}
	for _, phase := range budget.Phases {
		phases.Items = append(phases.Items, domain.SectionItem{
			ItemID:      uuid.NewString(),
			Title:       phase.Name,
			Description: phase.Description,
			Value:       utils.FormatBRL(pricing.PhaseTotal(phase)),
		})
	}

	investment := domain.ProposalSection{
		SectionID: uuid.NewString(),
		Kind:      domain.SectionInvestment,
		Title:     "Investimento",
		Items: []domain.SectionItem{
			{
				ItemID: uuid.NewString(),
				Title:  "Valor do projeto",
				Value:  utils.FormatBRL(budget.Total),
			},
			{
				ItemID: uuid.NewString(),
				Title:  "Valor com adicionais",
				Value:  utils.FormatBRL(budget.TotalWithAdditions),
			},
		},
	}

	team := domain.ProposalSection{
		SectionID: uuid.NewString(),
		Kind:      domain.SectionTeam,
		Title:     "Quem faz",
		Hidden:    true,
		Items:     []domain.SectionItem{},
	}

	about := domain.ProposalSection{
		SectionID: uuid.NewString(),
		Kind:      domain.SectionAbout,
		Title:     "Sobre o estúdio",
		Subtitle:  studio.Name,
		Items:     []domain.SectionItem{},
	}
	if studio.Description != "" {
		about.Items = append(about.Items, domain.SectionItem{
			ItemID:      uuid.NewString(),
			Title:       studio.Name,
			Description: studio.Description,
		})
	}

	return []domain.ProposalSection{deliverables, phases, investment, team, about}
}
