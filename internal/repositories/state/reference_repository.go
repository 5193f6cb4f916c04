package state

import (
	"context"

	"github.com/mamunbank/bank_trainer_app/internal/apperrors"
	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	portsrepo "github.com/mamunbank/bank_trainer_app/internal/core/ports/repositories"
)

var _ portsrepo.ReferenceRepositoryFacade = (*Store)(nil)

func (s *Store) ListOperationCodes(ctx context.Context) ([]domain.OperationCode, error) {
	var out []domain.OperationCode
	s.read(func(st *sessionState) { out = copySlice(st.OperationCodes) })
	return out, nil
}

func (s *Store) FindOperationCode(ctx context.Context, code string) (*domain.OperationCode, error) {
	var found *domain.OperationCode
	s.read(func(st *sessionState) {
		for i := range st.OperationCodes {
			if st.OperationCodes[i].Code == code {
				c := st.OperationCodes[i]
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

// SaveOperationCode inserts the code or replaces the existing entry with the
// same code value.
func (s *Store) SaveOperationCode(ctx context.Context, code domain.OperationCode) error {
	s.update(func(st *sessionState) {
		for i := range st.OperationCodes {
			if st.OperationCodes[i].Code == code.Code {
				st.OperationCodes[i] = code
				return
			}
		}
		st.OperationCodes = append(st.OperationCodes, code)
	})
	return nil
}

func (s *Store) DeleteOperationCode(ctx context.Context, code string) error {
	err := apperrors.ErrNotFound
	s.update(func(st *sessionState) {
		for i := range st.OperationCodes {
			if st.OperationCodes[i].Code == code {
				st.OperationCodes = append(st.OperationCodes[:i], st.OperationCodes[i+1:]...)
				err = nil
				return
			}
		}
	})
	return err
}

func (s *Store) ReplaceOperationCodes(ctx context.Context, codes []domain.OperationCode) error {
	s.update(func(st *sessionState) { st.OperationCodes = copySlice(codes) })
	return nil
}
