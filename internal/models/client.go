package models

// Client is the database representation of a client row.
type Client struct {
	ClientID       string `db:"client_id"`
	StudioID       string `db:"studio_id"`
	Name           string `db:"name"`
	Company        string `db:"company"`
	Email          string `db:"email"`
	Phone          string `db:"phone"`
	Document       string `db:"document"`
	PhotoURL       string `db:"photo_url"`
	AdditionalInfo string `db:"additional_info"`
	IsActive       bool   `db:"is_active"`
	AuditFields
}
