package services

import (
	"context"

	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	"github.com/davimoreiraredraw/limify-sub000/internal/dto"
)

// ClientReaderSvc defines read operations for client data
type ClientReaderSvc interface {
	// GetClientByID retrieves a client, verifying it belongs to the studio.
	GetClientByID(ctx context.Context, studioID string, clientID string, requestingUserID string) (*domain.Client, error)

	// ListClients retrieves a paginated list of a studio's active clients.
	ListClients(ctx context.Context, studioID string, requestingUserID string, limit, offset int) ([]domain.Client, error)
}

// ClientWriterSvc defines write operations for client data
type ClientWriterSvc interface {
	// CreateClient creates a new client in the studio.
	CreateClient(ctx context.Context, studioID string, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error)

	// UpdateClient updates an existing client.
	UpdateClient(ctx context.Context, studioID string, clientID string, req dto.UpdateClientRequest, requestingUserID string) (*domain.Client, error)

	// DeactivateClient marks a client as inactive. Budgets referencing the
	// client keep their reference.
	DeactivateClient(ctx context.Context, studioID string, clientID string, requestingUserID string) error
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
