package dto

import (
	"time"

	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
)

// CreateClientRequest defines the data needed to create a new client.
type CreateClientRequest struct {
	Name           string `json:"name" binding:"required"`
	Company        string `json:"company"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone"`
	Document       string `json:"document"`
	PhotoURL       string `json:"photoURL" binding:"omitempty,url"`
	AdditionalInfo string `json:"additionalInfo"`
}

// UpdateClientRequest defines the data allowed for updating a client.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateClientRequest struct {
	Name           *string `json:"name"`
	Company        *string `json:"company"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Phone          *string `json:"phone"`
	Document       *string `json:"document"`
	PhotoURL       *string `json:"photoURL" binding:"omitempty,url"`
	AdditionalInfo *string `json:"additionalInfo"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID       string    `json:"clientID"`
	StudioID       string    `json:"studioID"`
	Name           string    `json:"name"`
	Company        string    `json:"company"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Document       string    `json:"document"`
	PhotoURL       string    `json:"photoURL"`
	AdditionalInfo string    `json:"additionalInfo"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:       c.ClientID,
		StudioID:       c.StudioID,
		Name:           c.Name,
		Company:        c.Company,
		Email:          c.Email,
		Phone:          c.Phone,
		Document:       c.Document,
		PhotoURL:       c.PhotoURL,
		AdditionalInfo: c.AdditionalInfo,
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
	}
}

// ListClientsParams defines query parameters for listing clients.
type ListClientsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListClientsResponse wraps the list of clients.
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}
