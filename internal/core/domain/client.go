package domain

// Client represents a customer of the studio, the recipient of budgets and proposals.
type Client struct {
	ClientID       string `json:"clientID"` // Primary Key (e.g., UUID)
	StudioID       string `json:"studioID"` // FK -> studios.studio_id (NON-NULL)
	Name           string `json:"name"`
	Company        string `json:"company"`  // Optional company name
	Email          string `json:"email"`    // Optional contact email
	Phone          string `json:"phone"`    // Optional contact phone
	Document       string `json:"document"` // Optional tax document (CPF/CNPJ)
	PhotoURL       string `json:"photoURL"` // Optional avatar/photo URL
	AdditionalInfo string `json:"additionalInfo"`
	IsActive       bool   `json:"isActive"`
	AuditFields
}
