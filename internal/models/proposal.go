package models

// Proposal is the database representation of a proposal row. Section content
// is stored as JSON documents; draft_sections is NULL when no edit session is
// open.
type Proposal struct {
	ProposalID    string `db:"proposal_id"`
	BudgetID      string `db:"budget_id"`
	StudioID      string `db:"studio_id"`
	ShareSlug     string `db:"share_slug"`
	Published     bool   `db:"published"`
	Sections      []byte `db:"sections"`
	DraftSections []byte `db:"draft_sections"` // Nullable
	AuditFields
}
