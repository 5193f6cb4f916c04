package repositories

import (
	"context"

	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
)

// CreatedOperation is the canonical identity the training API assigns to a
// newly created record. The API response is the sole source of truth for the
// locally cached copy; callers must not invent ids of their own.
type CreatedOperation struct {
	ID            int64
	OperID        string // type-prefixed, e.g. "CI-42"
	OperationDate string
}

// TrainingAPIFacade is the outbound port to the remote training backend.
// List calls map the wire shape into domain records; create calls return the
// server-assigned identity. No retries: a failed call is reported once.
type TrainingAPIFacade interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	CreateClient(ctx context.Context, client domain.Client) (string, error)

	ListCashIn(ctx context.Context) ([]domain.CashIn, error)
	CreateCashIn(ctx context.Context, op domain.CashIn) (CreatedOperation, error)

	ListCashOut(ctx context.Context) ([]domain.CashOut, error)
	CreateCashOut(ctx context.Context, op domain.CashOut) (CreatedOperation, error)

	ListFX(ctx context.Context) ([]domain.FXOperation, error)
	CreateFX(ctx context.Context, op domain.FXOperation) (CreatedOperation, error)

	ListCards(ctx context.Context) ([]domain.CardOpen, error)
	CreateCard(ctx context.Context, op domain.CardOpen) (CreatedOperation, error)

	ListDeposits(ctx context.Context) ([]domain.DepositOpen, error)
	CreateDeposit(ctx context.Context, op domain.DepositOpen) (CreatedOperation, error)

	ListManagerReport(ctx context.Context) ([]domain.ManagerReportItem, error)
}
