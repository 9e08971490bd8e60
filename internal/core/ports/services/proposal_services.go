package services

import (
	"context"

	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	"github.com/davimoreiraredraw/limify-sub000/internal/dto"
)

// ProposalReaderSvc defines read operations for proposal data
type ProposalReaderSvc interface {
	// GetProposalByBudgetID retrieves the proposal attached to a budget.
	GetProposalByBudgetID(ctx context.Context, studioID string, budgetID string, requestingUserID string) (*domain.Proposal, error)

	// GetPublicProposal retrieves a published proposal by its share slug.
	// No authentication is required; hidden sections and drafts never leak.
	GetPublicProposal(ctx context.Context, slug string) (*domain.Proposal, error)
}

// ProposalWriterSvc defines write operations for proposal data
type ProposalWriterSvc interface {
	// GenerateProposal builds the landing-page sections from the budget's
	// line items and persists a new proposal. Regenerating replaces the
	// published sections.
	GenerateProposal(ctx context.Context, studioID string, budgetID string, requestingUserID string) (*domain.Proposal, error)

	// PublishProposal toggles public visibility of the proposal page.
	PublishProposal(ctx context.Context, studioID string, proposalID string, published bool, requestingUserID string) (*domain.Proposal, error)
}

// ProposalDraftSvc defines the edit-session operations on a proposal
type ProposalDraftSvc interface {
	// BeginDraft opens an edit session by copying the published sections
	// into a working draft. An existing draft is discarded.
	BeginDraft(ctx context.Context, studioID string, proposalID string, requestingUserID string) (*domain.Proposal, error)

	// UpdateDraftSection applies edits to one section of the draft.
	UpdateDraftSection(ctx context.Context, studioID string, proposalID string, sectionID string, req dto.UpdateDraftSectionRequest, requestingUserID string) (*domain.Proposal, error)

	// ReorderDraftItems rearranges one draft section's items. The new order
	// must be a permutation of the current item IDs.
	ReorderDraftItems(ctx context.Context, studioID string, proposalID string, sectionID string, orderedItemIDs []string, requestingUserID string) (*domain.Proposal, error)

	// CommitDraft publishes the draft atomically.
	CommitDraft(ctx context.Context, studioID string, proposalID string, requestingUserID string) (*domain.Proposal, error)

	// DiscardDraft drops the draft, reverting to the last saved sections.
	DiscardDraft(ctx context.Context, studioID string, proposalID string, requestingUserID string) (*domain.Proposal, error)
}

// ProposalSvcFacade combines all proposal-related service interfaces
type ProposalSvcFacade interface {
	ProposalReaderSvc
	ProposalWriterSvc
	ProposalDraftSvc
}
