package repositories

import (
	"context"

	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
)

// ProposalReader defines read operations for proposal data
type ProposalReader interface {
	// FindProposalByID retrieves a proposal by its unique identifier.
	FindProposalByID(ctx context.Context, proposalID string) (*domain.Proposal, error)

	// FindProposalByBudgetID retrieves the proposal attached to a budget.
	FindProposalByBudgetID(ctx context.Context, budgetID string) (*domain.Proposal, error)

	// FindProposalBySlug retrieves a published proposal by its public share slug.
	FindProposalBySlug(ctx context.Context, slug string) (*domain.Proposal, error)
}

// ProposalWriter defines write operations for proposal data
type ProposalWriter interface {
	// SaveProposal inserts a new proposal.
	SaveProposal(ctx context.Context, proposal domain.Proposal) error

	// UpdateProposal persists the proposal's sections, draft and publish flag.
	UpdateProposal(ctx context.Context, proposal domain.Proposal) error
}

// ProposalRepositoryFacade combines all proposal-related repository interfaces.
type ProposalRepositoryFacade interface {
	ProposalReader
	ProposalWriter
}
