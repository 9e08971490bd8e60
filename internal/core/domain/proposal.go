package domain

import "fmt"

// SectionKind identifies one of the fixed landing-page sections.
type SectionKind string

const (
	SectionDeliverables SectionKind = "DELIVERABLES"
	SectionPhases       SectionKind = "PHASES"
	SectionInvestment   SectionKind = "INVESTMENT"
	SectionTeam         SectionKind = "TEAM"
	SectionAbout        SectionKind = "ABOUT"
)

// SectionItem is one entry inside a proposal section (a deliverable, a phase
// card, an investment line, a team member, ...).
type SectionItem struct {
	ItemID      string `json:"itemID"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageURL,omitempty"`
	Value       string `json:"value,omitempty"` // Formatted monetary value for investment lines
}

// ProposalSection is an ordered, editable block of the landing page.
type ProposalSection struct {
	SectionID string        `json:"sectionID"`
	Kind      SectionKind   `json:"kind"`
	Title     string        `json:"title"`
	Subtitle  string        `json:"subtitle,omitempty"`
	Hidden    bool          `json:"hidden"`
	Items     []SectionItem `json:"items"`
}

// Proposal is the client-facing landing page generated from a budget.
//
// Sections holds the published content; DraftSections holds the working copy
// while the owner is editing. Saving commits the draft into Sections, cancel
// discards it. Reads of the public page always use Sections.
type Proposal struct {
	ProposalID    string            `json:"proposalID"`
	BudgetID      string            `json:"budgetID"` // FK -> budgets.budget_id (NON-NULL, unique)
	StudioID      string            `json:"studioID"`
	ShareSlug     string            `json:"shareSlug"` // Public URL component
	Published     bool              `json:"published"`
	Sections      []ProposalSection `json:"sections"`
	DraftSections []ProposalSection `json:"draftSections,omitempty"`
	AuditFields
}

// HasDraft reports whether an edit session is in progress.
func (p *Proposal) HasDraft() bool {
	return p.DraftSections != nil
}

// BeginDraft copies the published sections into a working draft. Starting a
// new draft while one exists discards the previous draft.
func (p *Proposal) BeginDraft() {
	p.DraftSections = cloneSections(p.Sections)
}

// CommitDraft publishes the draft atomically. It is a no-op without a draft.
func (p *Proposal) CommitDraft() {
	if p.DraftSections == nil {
		return
	}
	p.Sections = p.DraftSections
	p.DraftSections = nil
}

// DiscardDraft drops the working copy, reverting to the last saved sections.
func (p *Proposal) DiscardDraft() {
	p.DraftSections = nil
}

// DraftSection returns a pointer to the draft section with the given ID.
func (p *Proposal) DraftSection(sectionID string) (*ProposalSection, error) {
	if p.DraftSections == nil {
		return nil, fmt.Errorf("no draft in progress for proposal %s", p.ProposalID)
	}
	for i := range p.DraftSections {
		if p.DraftSections[i].SectionID == sectionID {
			return &p.DraftSections[i], nil
		}
	}
	return nil, fmt.Errorf("section %s not found in draft", sectionID)
}

// Reorder rearranges the section's items to match orderedIDs. The new order
// must be a permutation of the current item IDs; cross-section moves are not
// supported.
func (s *ProposalSection) Reorder(orderedIDs []string) error {
	if len(orderedIDs) != len(s.Items) {
		return fmt.Errorf("reorder of section %s: got %d IDs, section has %d items", s.SectionID, len(orderedIDs), len(s.Items))
	}
	byID := make(map[string]SectionItem, len(s.Items))
	for _, it := range s.Items {
		byID[it.ItemID] = it
	}
	reordered := make([]SectionItem, 0, len(orderedIDs))
	for _, id := range orderedIDs {
		it, ok := byID[id]
		if !ok {
			return fmt.Errorf("reorder of section %s: item %s is not part of the section", s.SectionID, id)
		}
		delete(byID, id) // Reject duplicate IDs in the permutation
		reordered = append(reordered, it)
	}
	s.Items = reordered
	return nil
}

func cloneSections(sections []ProposalSection) []ProposalSection {
	out := make([]ProposalSection, len(sections))
	for i, s := range sections {
		out[i] = s
		out[i].Items = make([]SectionItem, len(s.Items))
		copy(out[i].Items, s.Items)
	}
	return out
}
