package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/davimoreiraredraw/limify-sub000/internal/apperrors"
	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	portsrepo "github.com/davimoreiraredraw/limify-sub000/internal/core/ports/repositories"
	portssvc "github.com/davimoreiraredraw/limify-sub000/internal/core/ports/services"
	"github.com/davimoreiraredraw/limify-sub000/internal/dto"
	"github.com/google/uuid"
)

// roleRank orders roles for authorization checks. Higher ranks cover lower
// required roles; REMOVED never authorizes anything.
var roleRank = map[domain.UserStudioRole]int{
	domain.RoleReadOnly: 1,
	domain.RoleMember:   2,
	domain.RoleAdmin:    3,
}

// studioService implements the StudioSvcFacade interface
type studioService struct {
	BaseService
	studioRepo portsrepo.StudioRepositoryFacade
	userRepo   portsrepo.UserReader
}

// NewStudioService creates a new studio service with the provided dependencies
func NewStudioService(studioRepo portsrepo.StudioRepositoryFacade, userRepo portsrepo.UserReader) portssvc.StudioSvcFacade {
	return &studioService{
		studioRepo: studioRepo,
		userRepo:   userRepo,
	}
}

// Ensure studioService implements the StudioSvcFacade interface
var _ portssvc.StudioSvcFacade = (*studioService)(nil)

// FindStudioByID retrieves a studio by its ID
func (s *studioService) FindStudioByID(ctx context.Context, studioID string) (*domain.Studio, error) {
	studio, err := s.studioRepo.FindStudioByID(ctx, studioID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find studio by ID",
				slog.String("studio_id", studioID))
		}
		return nil, err
	}
	return studio, nil
}

// ListUserStudios retrieves all studios a user belongs to
func (s *studioService) ListUserStudios(ctx context.Context, userID string) ([]domain.Studio, error) {
	studios, err := s.studioRepo.ListStudiosByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list studios for user",
			slog.String("user_id", userID))
		return nil, err
	}

	if studios == nil {
		return []domain.Studio{}, nil
	}
	return studios, nil
}

// ListStudioMembers retrieves all users and their roles for a studio
func (s *studioService) ListStudioMembers(ctx context.Context, studioID string, requestingUserID string) ([]domain.UserStudio, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, studioID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	members, err := s.studioRepo.ListStudioMembers(ctx, studioID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list studio members",
			slog.String("studio_id", studioID))
		return nil, err
	}

	// Removed memberships are kept for history but never exposed
	active := make([]domain.UserStudio, 0, len(members))
	for _, m := range members {
		if m.Role != domain.RoleRemoved {
			active = append(active, m)
		}
	}
	return active, nil
}

// CreateStudio creates a new studio and makes the creator the initial admin
func (s *studioService) CreateStudio(ctx context.Context, req dto.CreateStudioRequest, creatorUserID string) (*domain.Studio, error) {
	now := time.Now()
	studioID := uuid.NewString()

	studio := domain.Studio{
		StudioID:       studioID,
		Name:           req.Name,
		Description:    req.Description,
		BaseHourlyRate: req.BaseHourlyRate,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	membership := domain.UserStudio{
		UserID:   creatorUserID,
		StudioID: studioID,
		Role:     domain.RoleAdmin,
		JoinedAt: now,
	}

	if err := s.studioRepo.SaveStudio(ctx, studio, membership); err != nil {
		s.LogError(ctx, err, "Failed to save studio",
			slog.String("studio_id", studioID))
		return nil, err
	}

	s.LogInfo(ctx, "Studio created successfully",
		slog.String("studio_id", studioID),
		slog.String("creator_user_id", creatorUserID))
	return &studio, nil
}

// UpdateStudio updates a studio's name, description and default rate
func (s *studioService) UpdateStudio(ctx context.Context, studioID string, req dto.UpdateStudioRequest, requestingUserID string) (*domain.Studio, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, studioID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	studio, err := s.studioRepo.FindStudioByID(ctx, studioID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		studio.Name = *req.Name
	}
	if req.Description != nil {
		studio.Description = *req.Description
	}
	if req.BaseHourlyRate != nil {
		studio.BaseHourlyRate = *req.BaseHourlyRate
	}
	studio.LastUpdatedAt = time.Now()
	studio.LastUpdatedBy = requestingUserID

	if err := s.studioRepo.UpdateStudio(ctx, *studio); err != nil {
		s.LogError(ctx, err, "Failed to update studio",
			slog.String("studio_id", studioID))
		return nil, err
	}
	return studio, nil
}

// AddUserToStudio adds a user to a studio with a specific role
func (s *studioService) AddUserToStudio(ctx context.Context, addingUserID, targetUserID, studioID string, role domain.UserStudioRole) error {
	if err := s.AuthorizeUserAction(ctx, addingUserID, studioID, domain.RoleAdmin); err != nil {
		return err
	}

	// Validate the target user exists
	if _, err := s.userRepo.FindUserByID(ctx, targetUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}

	membership := domain.UserStudio{
		UserID:   targetUserID,
		StudioID: studioID,
		Role:     role,
		JoinedAt: time.Now(),
	}
	if err := s.studioRepo.UpsertMembership(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to add user to studio",
			slog.String("target_user_id", targetUserID),
			slog.String("studio_id", studioID))
		return err
	}

	s.LogInfo(ctx, "User added to studio",
		slog.String("target_user_id", targetUserID),
		slog.String("studio_id", studioID),
		slog.String("role", string(role)))
	return nil
}

// RemoveUserFromStudio marks a membership as REMOVED
func (s *studioService) RemoveUserFromStudio(ctx context.Context, requestingUserID, targetUserID, studioID string) error {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, studioID, domain.RoleAdmin); err != nil {
		return err
	}

	if requestingUserID == targetUserID {
		return apperrors.ErrForbidden
	}

	membership, err := s.studioRepo.FindUserStudioRole(ctx, targetUserID, studioID)
	if err != nil {
		return err
	}

	membership.Role = domain.RoleRemoved
	if err := s.studioRepo.UpsertMembership(ctx, *membership); err != nil {
		s.LogError(ctx, err, "Failed to remove user from studio",
			slog.String("target_user_id", targetUserID),
			slog.String("studio_id", studioID))
		return err
	}
	return nil
}

// UpdateUserStudioRole updates a user's role in a studio
func (s *studioService) UpdateUserStudioRole(ctx context.Context, requestingUserID, targetUserID, studioID string, newRole domain.UserStudioRole) error {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, studioID, domain.RoleAdmin); err != nil {
		return err
	}

	membership, err := s.studioRepo.FindUserStudioRole(ctx, targetUserID, studioID)
	if err != nil {
		return err
	}

	membership.Role = newRole
	if err := s.studioRepo.UpsertMembership(ctx, *membership); err != nil {
		s.LogError(ctx, err, "Failed to update user studio role",
			slog.String("target_user_id", targetUserID),
			slog.String("studio_id", studioID),
			slog.String("new_role", string(newRole)))
		return err
	}
	return nil
}

// AuthorizeUserAction checks if a user has the required role (or higher) within a studio.
// Returns apperrors.ErrNotFound if the user is not a member, so studio
// existence is not revealed to outsiders. Returns apperrors.ErrForbidden when
// the user is a member but lacks the required role.
func (s *studioService) AuthorizeUserAction(ctx context.Context, userID, studioID string, requiredRole domain.UserStudioRole) error {
	membership, err := s.studioRepo.FindUserStudioRole(ctx, userID, studioID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Authorization failed: user not a member",
				slog.String("user_id", userID),
				slog.String("studio_id", studioID))
			return apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to check user studio role",
			slog.String("user_id", userID),
			slog.String("studio_id", studioID))
		return err
	}

	if membership.Role == domain.RoleRemoved {
		return apperrors.ErrNotFound
	}

	if roleRank[membership.Role] >= roleRank[requiredRole] {
		return nil
	}

	s.LogDebug(ctx, "Authorization failed: user lacks required role",
		slog.String("user_id", userID),
		slog.String("studio_id", studioID),
		slog.String("user_role", string(membership.Role)),
		slog.String("required_role", string(requiredRole)))
	return apperrors.ErrForbidden
}
