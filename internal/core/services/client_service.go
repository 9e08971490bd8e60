package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/davimoreiraredraw/limify-sub000/internal/apperrors"
	"github.com/davimoreiraredraw/limify-sub000/internal/core/domain"
	portsrepo "github.com/davimoreiraredraw/limify-sub000/internal/core/ports/repositories"
	portssvc "github.com/davimoreiraredraw/limify-sub000/internal/core/ports/services"
	"github.com/davimoreiraredraw/limify-sub000/internal/dto"
	"github.com/google/uuid"
)

// clientService implements the ClientSvcFacade interface
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new client service with the provided dependencies
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade, authorizer portssvc.StudioAuthorizerSvc) portssvc.ClientSvcFacade {
	return &clientService{
		BaseService: BaseService{StudioAuthorizer: authorizer},
		clientRepo:  clientRepo,
	}
}

// Ensure clientService implements the ClientSvcFacade interface
var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// GetClientByID retrieves a client, verifying it belongs to the studio
func (s *clientService) GetClientByID(ctx context.Context, studioID string, clientID string, requestingUserID string) (*domain.Client, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, studioID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client.StudioID != studioID {
		// The client exists but in another studio; do not reveal it
		return nil, apperrors.ErrNotFound
	}
	return client, nil
}

// ListClients retrieves a paginated list of a studio's active clients
func (s *clientService) ListClients(ctx context.Context, studioID string, requestingUserID string, limit, offset int) ([]domain.Client, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, studioID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	clients, err := s.clientRepo.ListClients(ctx, studioID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients", slog.String("studio_id", studioID))
		return nil, err
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

// CreateClient creates a new client in the studio
func (s *clientService) CreateClient(ctx context.Context, studioID string, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, studioID, domain.RoleMember); err != nil {
		return nil, err
	}

	now := time.Now()
	client := domain.Client{
		ClientID:       uuid.NewString(),
		StudioID:       studioID,
		Name:           req.Name,
		Company:        req.Company,
		Email:          req.Email,
		Phone:          req.Phone,
		Document:       req.Document,
		PhotoURL:       req.PhotoURL,
		AdditionalInfo: req.AdditionalInfo,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client", slog.String("studio_id", studioID))
		return nil, err
	}

	s.LogInfo(ctx, "Client created successfully",
		slog.String("client_id", client.ClientID),
		slog.String("studio_id", studioID))
	return &client, nil
}

// UpdateClient updates an existing client
func (s *clientService) UpdateClient(ctx context.Context, studioID string, clientID string, req dto.UpdateClientRequest, requestingUserID string) (*domain.Client, error) {
	client, err := s.GetClientByID(ctx, studioID, clientID, requestingUserID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeUser(ctx, requestingUserID, studioID, domain.RoleMember); err != nil {
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Company != nil {
		client.Company = *req.Company
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Document != nil {
		client.Document = *req.Document
	}
	if req.PhotoURL != nil {
		client.PhotoURL = *req.PhotoURL
	}
	if req.AdditionalInfo != nil {
		client.AdditionalInfo = *req.AdditionalInfo
	}
	client.LastUpdatedAt = time.Now()
	client.LastUpdatedBy = requestingUserID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to update client", slog.String("client_id", clientID))
		return nil, err
	}
	return client, nil
}

// DeactivateClient marks a client as inactive. Budgets keep their reference.
func (s *clientService) DeactivateClient(ctx context.Context, studioID string, clientID string, requestingUserID string) error {
	if _, err := s.GetClientByID(ctx, studioID, clientID, requestingUserID); err != nil {
		return err
	}
	if err := s.AuthorizeUser(ctx, requestingUserID, studioID, domain.RoleMember); err != nil {
		return err
	}

	if err := s.clientRepo.DeactivateClient(ctx, clientID, requestingUserID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate client", slog.String("client_id", clientID))
		return err
	}

	s.LogInfo(ctx, "Client deactivated", slog.String("client_id", clientID))
	return nil
}
