package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	"github.com/davimoreiraredraw/limify-sub000/internal/models"
)

// ToModelProposal converts a domain Proposal to a model Proposal, serializing
// the section documents to JSON.
func ToModelProposal(d domain.Proposal) (models.Proposal, error) {
	sections, err := json.Marshal(d.Sections)
	if err != nil {
		return models.Proposal{}, fmt.Errorf("failed to marshal proposal sections: %w", err)
	}
	m := models.Proposal{
		ProposalID:  d.ProposalID,
		BudgetID:    d.BudgetID,
		StudioID:    d.StudioID,
		ShareSlug:   d.ShareSlug,
		Published:   d.Published,
		Sections:    sections,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.DraftSections != nil {
		draft, err := json.Marshal(d.DraftSections)
		if err != nil {
			return models.Proposal{}, fmt.Errorf("failed to marshal proposal draft sections: %w", err)
		}
		m.DraftSections = draft
	}
	return m, nil
}

// ToDomainProposal converts a model Proposal to a domain Proposal, decoding
// the JSON section documents.
func ToDomainProposal(m models.Proposal) (domain.Proposal, error) {
	d := domain.Proposal{
		ProposalID:  m.ProposalID,
		BudgetID:    m.BudgetID,
		StudioID:    m.StudioID,
		ShareSlug:   m.ShareSlug,
		Published:   m.Published,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if len(m.Sections) > 0 {
		if err := json.Unmarshal(m.Sections, &d.Sections); err != nil {
			return domain.Proposal{}, fmt.Errorf("failed to unmarshal proposal sections: %w", err)
		}
	}
	if len(m.DraftSections) > 0 {
		if err := json.Unmarshal(m.DraftSections, &d.DraftSections); err != nil {
			return domain.Proposal{}, fmt.Errorf("failed to unmarshal proposal draft sections: %w", err)
		}
	}
	return d, nil
}
