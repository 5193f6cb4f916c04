package state

import (
	"context"

	"github.com/mamunbank/bank_trainer_app/internal/apperrors"
	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	portsrepo "github.com/mamunbank/bank_trainer_app/internal/core/ports/repositories"
)

var _ portsrepo.OperationRepositoryFacade = (*Store)(nil)

func (s *Store) ReplaceCashIn(ctx context.Context, ops []domain.CashIn) error {
	s.update(func(st *sessionState) { st.CashInOps = copySlice(ops) })
	return nil
}

func (s *Store) AddCashIn(ctx context.Context, op domain.CashIn) error {
	s.update(func(st *sessionState) { st.CashInOps = append(st.CashInOps, op) })
	return nil
}

func (s *Store) ListCashIn(ctx context.Context) ([]domain.CashIn, error) {
	var out []domain.CashIn
	s.read(func(st *sessionState) { out = copySlice(st.CashInOps) })
	return out, nil
}

func (s *Store) ReplaceCashOut(ctx context.Context, ops []domain.CashOut) error {
	s.update(func(st *sessionState) { st.CashOutOps = copySlice(ops) })
	return nil
}

func (s *Store) AddCashOut(ctx context.Context, op domain.CashOut) error {
	s.update(func(st *sessionState) { st.CashOutOps = append(st.CashOutOps, op) })
	return nil
}

func (s *Store) ListCashOut(ctx context.Context) ([]domain.CashOut, error) {
	var out []domain.CashOut
	s.read(func(st *sessionState) { out = copySlice(st.CashOutOps) })
	return out, nil
}

func (s *Store) ReplaceFX(ctx context.Context, ops []domain.FXOperation) error {
	s.update(func(st *sessionState) { st.FXOps = copySlice(ops) })
	return nil
}

func (s *Store) AddFX(ctx context.Context, op domain.FXOperation) error {
	s.update(func(st *sessionState) { st.FXOps = append(st.FXOps, op) })
	return nil
}

func (s *Store) ListFX(ctx context.Context) ([]domain.FXOperation, error) {
	var out []domain.FXOperation
	s.read(func(st *sessionState) { out = copySlice(st.FXOps) })
	return out, nil
}

func (s *Store) ReplaceCards(ctx context.Context, ops []domain.CardOpen) error {
	s.update(func(st *sessionState) { st.CardOps = copySlice(ops) })
	return nil
}

func (s *Store) AddCard(ctx context.Context, op domain.CardOpen) error {
	s.update(func(st *sessionState) { st.CardOps = append(st.CardOps, op) })
	return nil
}

func (s *Store) ListCards(ctx context.Context) ([]domain.CardOpen, error) {
	var out []domain.CardOpen
	s.read(func(st *sessionState) { out = copySlice(st.CardOps) })
	return out, nil
}

func (s *Store) ReplaceDeposits(ctx context.Context, ops []domain.DepositOpen) error {
	s.update(func(st *sessionState) { st.DepositOps = copySlice(ops) })
	return nil
}

func (s *Store) AddDeposit(ctx context.Context, op domain.DepositOpen) error {
	s.update(func(st *sessionState) { st.DepositOps = append(st.DepositOps, op) })
	return nil
}

func (s *Store) ListDeposits(ctx context.Context) ([]domain.DepositOpen, error) {
	var out []domain.DepositOpen
	s.read(func(st *sessionState) { out = copySlice(st.DepositOps) })
	return out, nil
}

// UpdateOperationStatus flips the status of one operation in the list picked
// by opType. Returns ErrNotFound when no operation carries operID.
func (s *Store) UpdateOperationStatus(ctx context.Context, opType domain.OperationType, operID string, status domain.OperationStatus) error {
	err := apperrors.ErrNotFound
	s.update(func(st *sessionState) {
		switch opType {
		case domain.OpCashIn:
			for i := range st.CashInOps {
				if st.CashInOps[i].OperID == operID {
					st.CashInOps[i].Status = status
					err = nil
				}
			}
		case domain.OpCashOut:
			for i := range st.CashOutOps {
				if st.CashOutOps[i].OperID == operID {
					st.CashOutOps[i].Status = status
					err = nil
				}
			}
		case domain.OpFX:
			for i := range st.FXOps {
				if st.FXOps[i].OperID == operID {
					st.FXOps[i].Status = status
					err = nil
				}
			}
		case domain.OpCard:
			for i := range st.CardOps {
				if st.CardOps[i].OperID == operID {
					st.CardOps[i].Status = status
					err = nil
				}
			}
		case domain.OpDeposit:
			for i := range st.DepositOps {
				if st.DepositOps[i].OperID == operID {
					st.DepositOps[i].Status = status
					err = nil
				}
			}
		case domain.OpLoan:
			for i := range st.LoanOps {
				if st.LoanOps[i].OperID == operID {
					st.LoanOps[i].Status = status
					err = nil
				}
			}
		}
	})
	return err
}
