package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	portsrepo "github.com/mamunbank/bank_trainer_app/internal/core/ports/repositories"
	portssvc "github.com/mamunbank/bank_trainer_app/internal/core/ports/services"
	"github.com/mamunbank/bank_trainer_app/internal/dto"
	"github.com/mamunbank/bank_trainer_app/internal/middleware"
)

// ClientService mirrors the training API's client resource into the local
// session. The API is the source of record; the local list is a cache that
// creates append to.
type ClientService struct {
	api        portsrepo.TrainingAPIFacade
	clientRepo portsrepo.ClientRepositoryFacade
}

var _ portssvc.ClientSvcFacade = (*ClientService)(nil)

func NewClientService(api portsrepo.TrainingAPIFacade, clientRepo portsrepo.ClientRepositoryFacade) *ClientService {
	return &ClientService{api: api, clientRepo: clientRepo}
}

// RefreshClients replaces the local list with a fresh fetch. On failure the
// previous list stays untouched.
func (s *ClientService) RefreshClients(ctx context.Context) error {
	clients, err := s.api.ListClients(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch clients: %w", err)
	}
	if err := s.clientRepo.ReplaceClients(ctx, clients); err != nil {
		return fmt.Errorf("failed to store fetched clients: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Clients refreshed", slog.Int("count", len(clients)))
	return nil
}

// CreateClient registers the client remotely first; the server-assigned id
// becomes the local id.
func (s *ClientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, creator domain.User) (*domain.Client, error) {
	client := domain.Client{
		FullName:             req.FullName,
		Phone:                req.Phone,
		PassportSeriesNumber: req.PassportSeriesNumber,
		BirthDate:            req.BirthDate,
		PassportIssuedDate:   req.PassportIssuedDate,
		Address:              req.Address,
		Notes:                req.Notes,
		CreatedAt:            time.Now(),
		CreatedBy:            creator.UserID,
	}

	clientID, err := s.api.CreateClient(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create client remotely: %w", err)
	}
	client.ClientID = clientID

	if err := s.clientRepo.AddClient(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to store created client: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Client created", slog.String("client_id", clientID))
	return &client, nil
}

func (s *ClientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

func (s *ClientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client %s: %w", clientID, err)
	}
	return client, nil
}
