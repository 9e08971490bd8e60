package services

import (
	"context"

	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	"github.com/davimoreiraredraw/limify-sub000/internal/dto"
)

// StudioReaderSvc defines read operations for studio data
type StudioReaderSvc interface {
	// FindStudioByID retrieves a specific studio by its ID.
	FindStudioByID(ctx context.Context, studioID string) (*domain.Studio, error)

	// ListUserStudios retrieves the studios a user belongs to.
	ListUserStudios(ctx context.Context, userID string) ([]domain.Studio, error)

	// ListStudioMembers retrieves all users and their roles for a studio.
	// Only members of the studio can access this data.
	ListStudioMembers(ctx context.Context, studioID string, requestingUserID string) ([]domain.UserStudio, error)
}

// StudioWriterSvc defines write operations for studio data
type StudioWriterSvc interface {
	// CreateStudio persists a new studio with the creator as ADMIN.
	CreateStudio(ctx context.Context, req dto.CreateStudioRequest, creatorUserID string) (*domain.Studio, error)

	// UpdateStudio updates a studio's name, description and default rate.
	UpdateStudio(ctx context.Context, studioID string, req dto.UpdateStudioRequest, requestingUserID string) (*domain.Studio, error)
}

// StudioMembershipSvc defines operations for managing studio membership
type StudioMembershipSvc interface {
	// AddUserToStudio adds a user to a studio with a specific role.
	// Only studio admins can add users.
	AddUserToStudio(ctx context.Context, addingUserID, targetUserID, studioID string, role domain.UserStudioRole) error

	// RemoveUserFromStudio marks a membership as REMOVED.
	// Only studio admins can remove users, and an admin cannot remove themselves.
	RemoveUserFromStudio(ctx context.Context, requestingUserID, targetUserID, studioID string) error

	// UpdateUserStudioRole updates a user's role in a studio.
	// Only studio admins can update roles.
	UpdateUserStudioRole(ctx context.Context, requestingUserID, targetUserID, studioID string, newRole domain.UserStudioRole) error
}

// StudioAuthorizerSvc defines operations for studio authorization
type StudioAuthorizerSvc interface {
	// AuthorizeUserAction checks if a user has required permissions for a studio.
	AuthorizeUserAction(ctx context.Context, userID, studioID string, requiredRole domain.UserStudioRole) error
}

// StudioSvcFacade combines all studio-related service interfaces
// This is a facade for clients that need access to all operations
type StudioSvcFacade interface {
	StudioReaderSvc
	StudioWriterSvc
	StudioMembershipSvc
	StudioAuthorizerSvc
}
