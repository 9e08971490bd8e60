package repositories

import (
	"context"

	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
)

// StudioReader defines read operations for studio data
type StudioReader interface {
	// FindStudioByID retrieves a studio by its unique identifier.
	FindStudioByID(ctx context.Context, studioID string) (*domain.Studio, error)

	// ListStudiosByUser retrieves all studios a user belongs to.
	ListStudiosByUser(ctx context.Context, userID string) ([]domain.Studio, error)

	// FindUserStudioRole retrieves the membership row for a user in a studio.
	// Returns apperrors.ErrNotFound when the user is not a member.
	FindUserStudioRole(ctx context.Context, userID string, studioID string) (*domain.UserStudio, error)

	// ListStudioMembers retrieves all memberships of a studio.
	ListStudioMembers(ctx context.Context, studioID string) ([]domain.UserStudio, error)
}

// StudioWriter defines write operations for studio data
type StudioWriter interface {
	// SaveStudio inserts a studio and its creator's ADMIN membership atomically.
	SaveStudio(ctx context.Context, studio domain.Studio, creatorMembership domain.UserStudio) error

	// UpdateStudio updates mutable studio fields.
	UpdateStudio(ctx context.Context, studio domain.Studio) error

	// UpsertMembership adds a user to a studio or updates an existing role.
	UpsertMembership(ctx context.Context, membership domain.UserStudio) error
}

// StudioRepositoryFacade combines all studio-related repository interfaces.
type StudioRepositoryFacade interface {
	StudioReader
	StudioWriter
}
