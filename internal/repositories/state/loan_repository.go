package state

import (
	"context"

	"github.com/mamunbank/bank_trainer_app/internal/apperrors"
	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	portsrepo "github.com/mamunbank/bank_trainer_app/internal/core/ports/repositories"
)

var _ portsrepo.LoanRepositoryFacade = (*Store)(nil)

func (s *Store) AddLoan(ctx context.Context, loan domain.LoanApplicationRecord) error {
	s.update(func(st *sessionState) { st.LoanOps = append(st.LoanOps, loan) })
	return nil
}

func (s *Store) FindLoanByID(ctx context.Context, operID string) (*domain.LoanApplicationRecord, error) {
	var found *domain.LoanApplicationRecord
	s.read(func(st *sessionState) {
		for i := range st.LoanOps {
			if st.LoanOps[i].OperID == operID {
				l := st.LoanOps[i]
				found = &l
				return
			}
		}
	})
	if found == nil {
		return nil, apperrors.ErrNotFound
	}
	return found, nil
}

// UpdateLoan replaces the stored loan carrying the same oper_id.
func (s *Store) UpdateLoan(ctx context.Context, loan domain.LoanApplicationRecord) error {
	err := apperrors.ErrNotFound
	s.update(func(st *sessionState) {
		for i := range st.LoanOps {
			if st.LoanOps[i].OperID == loan.OperID {
				st.LoanOps[i] = loan
				err = nil
				return
			}
		}
	})
	return err
}

func (s *Store) ListLoans(ctx context.Context) ([]domain.LoanApplicationRecord, error) {
	var out []domain.LoanApplicationRecord
	s.read(func(st *sessionState) { out = copySlice(st.LoanOps) })
	return out, nil
}
