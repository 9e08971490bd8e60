package dto

import (
	"time"

	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
)

// ProposalResponse defines the data returned for a proposal to its owner.
// DraftSections is present only while an edit session is open.
type ProposalResponse struct {
	ProposalID    string                   `json:"proposalID"`
	BudgetID      string                   `json:"budgetID"`
	StudioID      string                   `json:"studioID"`
	ShareSlug     string                   `json:"shareSlug"`
	Published     bool                     `json:"published"`
	HasDraft      bool                     `json:"hasDraft"`
	Sections      []domain.ProposalSection `json:"sections"`
	DraftSections []domain.ProposalSection `json:"draftSections,omitempty"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
}

// ToProposalResponse converts a domain.Proposal to ProposalResponse DTO
func ToProposalResponse(p *domain.Proposal) ProposalResponse {
	return ProposalResponse{
		ProposalID:    p.ProposalID,
		BudgetID:      p.BudgetID,
		StudioID:      p.StudioID,
		ShareSlug:     p.ShareSlug,
		Published:     p.Published,
		HasDraft:      p.HasDraft(),
		Sections:      p.Sections,
		DraftSections: p.DraftSections,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.LastUpdatedAt,
	}
}

// PublicProposalResponse is the read-only shape served on the public page.
// Hidden sections are filtered out and the draft never leaks.
type PublicProposalResponse struct {
	ShareSlug string                   `json:"shareSlug"`
	Sections  []domain.ProposalSection `json:"sections"`
}

// ToPublicProposalResponse converts a domain.Proposal to its public shape.
func ToPublicProposalResponse(p *domain.Proposal) PublicProposalResponse {
	visible := make([]domain.ProposalSection, 0, len(p.Sections))
	for _, s := range p.Sections {
		if !s.Hidden {
			visible = append(visible, s)
		}
	}
	return PublicProposalResponse{
		ShareSlug: p.ShareSlug,
		Sections:  visible,
	}
}

// PublishProposalRequest toggles the public visibility of a proposal page.
type PublishProposalRequest struct {
	Published *bool `json:"published" binding:"required"`
}

// UpdateDraftSectionRequest defines the edits applied to one draft section.
// Use pointers to distinguish zero values from omitted fields; Items, when
// present, replaces the section's items wholesale.
type UpdateDraftSectionRequest struct {
	Title    *string              `json:"title"`
	Subtitle *string              `json:"subtitle"`
	Hidden   *bool                `json:"hidden"`
	Items    []domain.SectionItem `json:"items"`
}

// ReorderItemsRequest defines the new item order for one draft section. The
// IDs must be a permutation of the section's current item IDs.
type ReorderItemsRequest struct {
	OrderedItemIDs []string `json:"orderedItemIDs" binding:"required,min=1"`
}
