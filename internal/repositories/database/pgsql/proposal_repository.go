package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/davimoreiraredraw/limify-sub000/internal/apperrors"
	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	portsrepo "github.com/davimoreiraredraw/limify-sub000/internal/core/ports/repositories"
	"github.com/davimoreiraredraw/limify-sub000/internal/models"
	"github.com/davimoreiraredraw/limify-sub000/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProposalRepository struct {
	db *pgxpool.Pool
}

func newPgxProposalRepository(pool *pgxpool.Pool) portsrepo.ProposalRepositoryFacade {
	return &PgxProposalRepository{db: pool}
}

// Ensure PgxProposalRepository implements portsrepo.ProposalRepositoryFacade
var _ portsrepo.ProposalRepositoryFacade = (*PgxProposalRepository)(nil)

const proposalColumns = `proposal_id, budget_id, studio_id, share_slug, published, sections, draft_sections, created_at, created_by, last_updated_at, last_updated_by`

func scanProposal(row pgx.Row) (models.Proposal, error) {
	var m models.Proposal
	err := row.Scan(
		&m.ProposalID,
		&m.BudgetID,
		&m.StudioID,
		&m.ShareSlug,
		&m.Published,
		&m.Sections,
		&m.DraftSections,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxProposalRepository) SaveProposal(ctx context.Context, proposal domain.Proposal) error {
	m, err := mapping.ToModelProposal(proposal)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO proposals (proposal_id, budget_id, studio_id, share_slug, published, sections, draft_sections, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = r.db.Exec(ctx, query,
		m.ProposalID,
		m.BudgetID,
		m.StudioID,
		m.ShareSlug,
		m.Published,
		m.Sections,
		m.DraftSections,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("proposal for budget %s already exists: %w", m.BudgetID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save proposal %s: %w", m.ProposalID, err)
	}
	return nil
}

func (r *PgxProposalRepository) UpdateProposal(ctx context.Context, proposal domain.Proposal) error {
	m, err := mapping.ToModelProposal(proposal)
	if err != nil {
		return err
	}

	query := `
		UPDATE proposals
		SET published = $1, sections = $2, draft_sections = $3, last_updated_at = $4, last_updated_by = $5
		WHERE proposal_id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.Published,
		m.Sections,
		m.DraftSections,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ProposalID,
	)
	if err != nil {
		return fmt.Errorf("failed to update proposal %s: %w", m.ProposalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("proposal %s not found: %w", m.ProposalID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProposalRepository) FindProposalByID(ctx context.Context, proposalID string) (*domain.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals WHERE proposal_id = $1;`
	return r.findOne(ctx, query, proposalID)
}

func (r *PgxProposalRepository) FindProposalByBudgetID(ctx context.Context, budgetID string) (*domain.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals WHERE budget_id = $1;`
	return r.findOne(ctx, query, budgetID)
}

func (r *PgxProposalRepository) FindProposalBySlug(ctx context.Context, slug string) (*domain.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals WHERE share_slug = $1;`
	return r.findOne(ctx, query, slug)
}

func (r *PgxProposalRepository) findOne(ctx context.Context, query string, arg string) (*domain.Proposal, error) {
	m, err := scanProposal(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find proposal: %w", err)
	}

	proposal, err := mapping.ToDomainProposal(m)
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}
