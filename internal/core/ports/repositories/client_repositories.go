package repositories

import (
	"context"
	"time"

	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a client by its unique identifier.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves a paginated list of active clients for a studio.
	ListClients(ctx context.Context, studioID string, limit int, offset int) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// SaveClient inserts a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient updates mutable client fields.
	UpdateClient(ctx context.Context, client domain.Client) error

	// DeactivateClient marks a client as inactive.
	DeactivateClient(ctx context.Context, clientID string, userID string, now time.Time) error
}

// ClientRepositoryFacade combines all client-related repository interfaces.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
