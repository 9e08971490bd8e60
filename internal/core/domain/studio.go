package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Studio represents an isolated environment containing clients, budgets, expenses, etc.
// Every design office using the application works inside its own studio.
type Studio struct {
	StudioID    string `json:"studioID"`    // Primary Key (e.g., UUID)
	Name        string `json:"name"`        // User-defined name for the studio
	Description string `json:"description"` // Optional description
	// BaseHourlyRate is the studio-wide default rate used for render items and
	// wet-area surcharges when a budget does not override it. Zero means
	// "use the application default".
	BaseHourlyRate decimal.Decimal `json:"baseHourlyRate"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}

// UserStudioRole defines the possible roles a user can have within a studio.
type UserStudioRole string

const (
	RoleAdmin    UserStudioRole = "ADMIN"
	RoleMember   UserStudioRole = "MEMBER"
	RoleReadOnly UserStudioRole = "READONLY"
	RoleRemoved  UserStudioRole = "REMOVED" // For users who have been removed from the studio
)

// UserStudio represents the membership of a User in a Studio.
type UserStudio struct {
	UserID   string         `json:"userID"`   // FK -> users.user_id
	UserName string         `json:"userName"` // Name of the user
	StudioID string         `json:"studioID"` // FK -> studios.studio_id
	Role     UserStudioRole `json:"role"`     // Role of the user in this specific studio
	JoinedAt time.Time      `json:"joinedAt"`
}
