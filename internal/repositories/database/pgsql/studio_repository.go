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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxStudioRepository struct {
	BaseRepository
}

func newPgxStudioRepository(pool *pgxpool.Pool) portsrepo.StudioRepositoryFacade {
	return &PgxStudioRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxStudioRepository implements portsrepo.StudioRepositoryFacade
var _ portsrepo.StudioRepositoryFacade = (*PgxStudioRepository)(nil)

const studioColumns = `studio_id, name, description, base_hourly_rate, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanStudio(row pgx.Row) (models.Studio, error) {
	var m models.Studio
	err := row.Scan(
		&m.StudioID,
		&m.Name,
		&m.Description,
		&m.BaseHourlyRate,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveStudio inserts the studio row and the creator's ADMIN membership in one
// transaction so a studio can never exist without an admin.
func (r *PgxStudioRepository) SaveStudio(ctx context.Context, studio domain.Studio, creatorMembership domain.UserStudio) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelStudio := mapping.ToModelStudio(studio)
	studioQuery := `
		INSERT INTO studios (studio_id, name, description, base_hourly_rate, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, studioQuery,
		modelStudio.StudioID,
		modelStudio.Name,
		modelStudio.Description,
		modelStudio.BaseHourlyRate,
		modelStudio.IsActive,
		modelStudio.CreatedAt,
		modelStudio.CreatedBy,
		modelStudio.LastUpdatedAt,
		modelStudio.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert studio %s: %w", modelStudio.StudioID, err)
	}

	modelMembership := mapping.ToModelUserStudio(creatorMembership)
	membershipQuery := `
		INSERT INTO user_studios (user_id, studio_id, role, joined_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err = tx.Exec(ctx, membershipQuery,
		modelMembership.UserID,
		modelMembership.StudioID,
		modelMembership.Role,
		modelMembership.JoinedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert creator membership for studio %s: %w", modelStudio.StudioID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxStudioRepository) FindStudioByID(ctx context.Context, studioID string) (*domain.Studio, error) {
	query := `SELECT ` + studioColumns + ` FROM studios WHERE studio_id = $1 AND is_active = TRUE;`
	modelStudio, err := scanStudio(r.Pool.QueryRow(ctx, query, studioID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find studio by ID %s: %w", studioID, err)
	}

	domainStudio := mapping.ToDomainStudio(modelStudio)
	return &domainStudio, nil
}

func (r *PgxStudioRepository) ListStudiosByUser(ctx context.Context, userID string) ([]domain.Studio, error) {
	query := `
		SELECT s.studio_id, s.name, s.description, s.base_hourly_rate, s.is_active, s.created_at, s.created_by, s.last_updated_at, s.last_updated_by
		FROM studios s
		JOIN user_studios us ON us.studio_id = s.studio_id
		WHERE us.user_id = $1 AND us.role != 'REMOVED' AND s.is_active = TRUE
		ORDER BY s.created_at;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query studios for user %s: %w", userID, err)
	}
	defer rows.Close()

	studios := []domain.Studio{}
	for rows.Next() {
		modelStudio, err := scanStudio(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan studio row: %w", err)
		}
		studios = append(studios, mapping.ToDomainStudio(modelStudio))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating studio rows: %w", rows.Err())
	}

	return studios, nil
}

func (r *PgxStudioRepository) FindUserStudioRole(ctx context.Context, userID string, studioID string) (*domain.UserStudio, error) {
	query := `
		SELECT user_id, studio_id, role, joined_at
		FROM user_studios
		WHERE user_id = $1 AND studio_id = $2;
	`
	var m models.UserStudio
	err := r.Pool.QueryRow(ctx, query, userID, studioID).Scan(
		&m.UserID,
		&m.StudioID,
		&m.Role,
		&m.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find membership for user %s in studio %s: %w", userID, studioID, err)
	}

	membership := mapping.ToDomainUserStudio(m)
	return &membership, nil
}

func (r *PgxStudioRepository) ListStudioMembers(ctx context.Context, studioID string) ([]domain.UserStudio, error) {
	query := `
		SELECT user_id, studio_id, role, joined_at
		FROM user_studios
		WHERE studio_id = $1
		ORDER BY joined_at;
	`
	rows, err := r.Pool.Query(ctx, query, studioID)
	if err != nil {
		return nil, fmt.Errorf("failed to query members of studio %s: %w", studioID, err)
	}
	defer rows.Close()

	members := []domain.UserStudio{}
	for rows.Next() {
		var m models.UserStudio
		if err := rows.Scan(&m.UserID, &m.StudioID, &m.Role, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership row: %w", err)
		}
		members = append(members, mapping.ToDomainUserStudio(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating membership rows: %w", rows.Err())
	}

	return members, nil
}

func (r *PgxStudioRepository) UpdateStudio(ctx context.Context, studio domain.Studio) error {
	modelStudio := mapping.ToModelStudio(studio)
	query := `
		UPDATE studios
		SET name = $1, description = $2, base_hourly_rate = $3, last_updated_at = $4, last_updated_by = $5
		WHERE studio_id = $6 AND is_active = TRUE;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelStudio.Name,
		modelStudio.Description,
		modelStudio.BaseHourlyRate,
		modelStudio.LastUpdatedAt,
		modelStudio.LastUpdatedBy,
		modelStudio.StudioID,
	)
	if err != nil {
		return fmt.Errorf("failed to update studio %s: %w", modelStudio.StudioID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("studio %s not found: %w", modelStudio.StudioID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxStudioRepository) UpsertMembership(ctx context.Context, membership domain.UserStudio) error {
	m := mapping.ToModelUserStudio(membership)
	query := `
		INSERT INTO user_studios (user_id, studio_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, studio_id) DO UPDATE SET
			role = EXCLUDED.role;
	`
	_, err := r.Pool.Exec(ctx, query, m.UserID, m.StudioID, m.Role, m.JoinedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert membership for user %s in studio %s: %w", m.UserID, m.StudioID, err)
	}
	return nil
}
