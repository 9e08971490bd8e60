package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Studio is the database representation of a studio row.
type Studio struct {
	StudioID       string          `db:"studio_id"`
	Name           string          `db:"name"`
	Description    string          `db:"description"`
	BaseHourlyRate decimal.Decimal `db:"base_hourly_rate"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}

// UserStudio is the membership row linking a user to a studio.
type UserStudio struct {
	UserID   string    `db:"user_id"`
	StudioID string    `db:"studio_id"`
	Role     string    `db:"role"`
	JoinedAt time.Time `db:"joined_at"`
}
