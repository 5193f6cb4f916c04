package state

import (
	"context"

	"github.com/mamunbank/bank_trainer_app/internal/apperrors"
	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	portsrepo "github.com/mamunbank/bank_trainer_app/internal/core/ports/repositories"
)

var _ portsrepo.ClientRepositoryFacade = (*Store)(nil)

// ReplaceClients swaps the client list wholesale with a fresh fetch result.
func (s *Store) ReplaceClients(ctx context.Context, clients []domain.Client) error {
	s.update(func(st *sessionState) {
		st.Clients = copySlice(clients)
	})
	return nil
}

// AddClient appends a newly created client. No dedup, no validation.
func (s *Store) AddClient(ctx context.Context, client domain.Client) error {
	s.update(func(st *sessionState) {
		st.Clients = append(st.Clients, client)
	})
	return nil
}

func (s *Store) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	var found *domain.Client
	s.read(func(st *sessionState) {
		for i := range st.Clients {
			if st.Clients[i].ClientID == clientID {
				c := st.Clients[i]
				found = &c
				return
			}
		}
	})
	if found == nil {
		return nil, apperrors.ErrNotFound
	}
	return found, nil
}

func (s *Store) ListClients(ctx context.Context) ([]domain.Client, error) {
	var out []domain.Client
	s.read(func(st *sessionState) {
		out = copySlice(st.Clients)
	})
	return out, nil
}
