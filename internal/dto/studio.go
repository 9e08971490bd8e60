package dto

import (
	"time"

	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateStudioRequest defines the data needed to create a new studio.
type CreateStudioRequest struct {
	Name           string          `json:"name" binding:"required"`
	Description    string          `json:"description"`
	BaseHourlyRate decimal.Decimal `json:"baseHourlyRate" binding:"omitempty,gte=0"`
}

// UpdateStudioRequest defines the data allowed for updating a studio.
type UpdateStudioRequest struct {
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	BaseHourlyRate *decimal.Decimal `json:"baseHourlyRate"`
}

// StudioResponse defines the data returned for a studio.
type StudioResponse struct {
	StudioID       string          `json:"studioID"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	BaseHourlyRate decimal.Decimal `json:"baseHourlyRate"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToStudioResponse converts a domain.Studio to StudioResponse DTO
func ToStudioResponse(s *domain.Studio) StudioResponse {
	return StudioResponse{
		StudioID:       s.StudioID,
		Name:           s.Name,
		Description:    s.Description,
		BaseHourlyRate: s.BaseHourlyRate,
		IsActive:       s.IsActive,
		CreatedAt:      s.CreatedAt,
	}
}

// ListStudiosResponse wraps the list of studios a user belongs to.
type ListStudiosResponse struct {
	Studios []StudioResponse `json:"studios"`
}

// AddMemberRequest adds a user to a studio with a role.
type AddMemberRequest struct {
	UserID string                `json:"userID" binding:"required"`
	Role   domain.UserStudioRole `json:"role" binding:"required,oneof=ADMIN MEMBER READONLY"`
}

// UpdateMemberRoleRequest changes a member's role in a studio.
type UpdateMemberRoleRequest struct {
	Role domain.UserStudioRole `json:"role" binding:"required,oneof=ADMIN MEMBER READONLY"`
}

// MemberResponse describes one studio membership.
type MemberResponse struct {
	UserID   string                `json:"userID"`
	UserName string                `json:"userName"`
	Role     domain.UserStudioRole `json:"role"`
	JoinedAt time.Time             `json:"joinedAt"`
}

// ToMemberResponse converts a domain.UserStudio to MemberResponse DTO
func ToMemberResponse(m domain.UserStudio) MemberResponse {
	return MemberResponse{
		UserID:   m.UserID,
		UserName: m.UserName,
		Role:     m.Role,
		JoinedAt: m.JoinedAt,
	}
}

// ListMembersResponse wraps a studio's member list.
type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}
