package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	portsrepo "github.com/mamunbank/bank_trainer_app/internal/core/ports/repositories"
	portssvc "github.com/mamunbank/bank_trainer_app/internal/core/ports/services"
	"github.com/mamunbank/bank_trainer_app/internal/dto"
	"github.com/mamunbank/bank_trainer_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// operationNames are the Uzbek activity-feed labels per operation type.
var operationNames = map[domain.OperationType]string{
	domain.OpCashIn:  "Naqd pul kirim",
	domain.OpCashOut: "Naqd pul chiqim",
	domain.OpFX:      "Valyuta ayirboshlash",
	domain.OpCard:    "Karta ochish",
	domain.OpDeposit: "Omonat ochish",
	domain.OpLoan:    "Kredit berish",
}

// fxCommissionPercent is the fixed commission applied to every exchange.
var fxCommissionPercent = decimal.NewFromInt(1)

// depositRates is the product table: yearly percent per term, per deposit
// type. Terms not in the table fall back to the product's shortest term.
var depositRates = map[domain.DepositType][]struct {
	Months int
	Rate   int64
}{
	domain.DepositTerm:     {{3, 18}, {6, 20}, {12, 22}, {24, 24}},
	domain.DepositSavings:  {{3, 16}, {6, 18}, {12, 20}, {24, 22}},
	domain.DepositChildren: {{12, 25}, {24, 27}, {36, 29}},
}

func depositRate(depositType domain.DepositType, termMonths int) decimal.Decimal {
	rates := depositRates[depositType]
	if len(rates) == 0 {
		return decimal.Zero
	}
	for _, r := range rates {
		if r.Months == termMonths {
			return decimal.NewFromInt(r.Rate)
		}
	}
	return decimal.NewFromInt(rates[0].Rate)
}

// OperationService drives the five remote-backed operation flows. The
// training API response is the sole source of identity for every created
// record; the local lists only mirror it.
type OperationService struct {
	api          portsrepo.TrainingAPIFacade
	opRepo       portsrepo.OperationRepositoryFacade
	activityRepo portsrepo.ActivityRepositoryFacade
	clientRepo   portsrepo.ClientRepositoryFacade
	ledger       portssvc.LedgerSvcFacade
	scoring      portssvc.ScoringSvcFacade
}

var _ portssvc.OperationSvcFacade = (*OperationService)(nil)

func NewOperationService(
	api portsrepo.TrainingAPIFacade,
	opRepo portsrepo.OperationRepositoryFacade,
	activityRepo portsrepo.ActivityRepositoryFacade,
	clientRepo portsrepo.ClientRepositoryFacade,
	ledger portssvc.LedgerSvcFacade,
	scoring portssvc.ScoringSvcFacade,
) *OperationService {
	return &OperationService{
		api:          api,
		opRepo:       opRepo,
		activityRepo: activityRepo,
		clientRepo:   clientRepo,
		ledger:       ledger,
		scoring:      scoring,
	}
}

// recordCompletion appends the side effects of one successfully booked
// operation: the activity-feed entry, the derived journal entry (a no-op for
// types without a posting rule) and the correct-operation score credit.
func (s *OperationService) recordCompletion(ctx context.Context, opType domain.OperationType, operID, clientName string, amount decimal.Decimal, currency domain.Currency, operator domain.User) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry := domain.ActivityLog{
		ID:            uuid.NewString(),
		OccurredAt:    time.Now(),
		StaffID:       operator.UserID,
		StaffName:     operator.Name,
		Role:          operator.Role,
		OperationName: operationNames[opType],
		OperID:        operID,
		ClientName:    clientName,
		Amount:        amount,
		Currency:      currency,
		Status:        domain.StatusCompleted,
	}
	if err := s.activityRepo.AddActivity(ctx, entry); err != nil {
		logger.Error("Failed to append activity entry", slog.String("oper_id", operID), slog.String("error", err.Error()))
	}

	if _, err := s.ledger.RecordOperation(ctx, opType, operID, amount, currency, operator.Name); err != nil {
		logger.Error("Failed to record journal entry", slog.String("oper_id", operID), slog.String("error", err.Error()))
	}

	if _, err := s.scoring.RecordCorrectOperation(ctx); err != nil {
		logger.Error("Failed to credit student score", slog.String("oper_id", operID), slog.String("error", err.Error()))
	}
}

func (s *OperationService) RefreshCashIn(ctx context.Context) error {
	ops, err := s.api.ListCashIn(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch cash-in operations: %w", err)
	}
	return s.opRepo.ReplaceCashIn(ctx, ops)
}

func (s *OperationService) CreateCashIn(ctx context.Context, req dto.CreateCashInRequest, operator domain.User) (*domain.CashIn, error) {
	client, err := s.clientRepo.FindClientByID(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve client %s: %w", req.ClientID, err)
	}

	op := domain.CashIn{
		OccurredAt:  time.Now(),
		CashierID:   operator.UserID,
		CashierName: operator.Name,
		ClientID:    client.ClientID,
		ClientName:  client.FullName,
		Currency:    domain.Currency(req.Currency),
		Amount:      req.Amount,
		Purpose:     req.Purpose,
		Notes:       req.Notes,
		Status:      domain.StatusCompleted,
	}

	created, err := s.api.CreateCashIn(ctx, op)
	if err != nil {
		return nil, fmt.Errorf("failed to create cash-in operation: %w", err)
	}
	op.OperID = created.OperID

	if err := s.opRepo.AddCashIn(ctx, op); err != nil {
		return nil, fmt.Errorf("failed to store cash-in operation: %w", err)
	}
	s.recordCompletion(ctx, domain.OpCashIn, op.OperID, op.ClientName, op.Amount, op.Currency, operator)
	return &op, nil
}

func (s *OperationService) ListCashIn(ctx context.Context) ([]domain.CashIn, error) {
	ops, err := s.opRepo.ListCashIn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash-in operations: %w", err)
	}
	if ops == nil {
		return []domain.CashIn{}, nil
	}
	return ops, nil
}

func (s *OperationService) RefreshCashOut(ctx context.Context) error {
	ops, err := s.api.ListCashOut(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch cash-out operations: %w", err)
	}
	return s.opRepo.ReplaceCashOut(ctx, ops)
}

func (s *OperationService) CreateCashOut(ctx context.Context, req dto.CreateCashOutRequest, operator domain.User) (*domain.CashOut, error) {
	client, err := s.clientRepo.FindClientByID(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve client %s: %w", req.ClientID, err)
	}

	op := domain.CashOut{
		OccurredAt:  time.Now(),
		CashierID:   operator.UserID,
		CashierName: operator.Name,
		ClientID:    client.ClientID,
		ClientName:  client.FullName,
		Currency:    domain.Currency(req.Currency),
		Amount:      req.Amount,
		Reason:      req.Reason,
		Notes:       req.Notes,
		Status:      domain.StatusCompleted,
	}

	created, err := s.api.CreateCashOut(ctx, op)
	if err != nil {
		return nil, fmt.Errorf("failed to create cash-out operation: %w", err)
	}
	op.OperID = created.OperID

	if err := s.opRepo.AddCashOut(ctx, op); err != nil {
		return nil, fmt.Errorf("failed to store cash-out operation: %w", err)
	}
	s.recordCompletion(ctx, domain.OpCashOut, op.OperID, op.ClientName, op.Amount, op.Currency, operator)
	return &op, nil
}

func (s *OperationService) ListCashOut(ctx context.Context) ([]domain.CashOut, error) {
	ops, err := s.opRepo.ListCashOut(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash-out operations: %w", err)
	}
	if ops == nil {
		return []domain.CashOut{}, nil
	}
	return ops, nil
}

func (s *OperationService) RefreshFX(ctx context.Context) error {
	ops, err := s.api.ListFX(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch currency exchanges: %w", err)
	}
	return s.opRepo.ReplaceFX(ctx, ops)
}

func (s *OperationService) CreateFX(ctx context.Context, req dto.CreateFXRequest, operator domain.User) (*domain.FXOperation, error) {
	client, err := s.clientRepo.FindClientByID(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve client %s: %w", req.ClientID, err)
	}

	op := domain.FXOperation{
		OccurredAt:        time.Now(),
		OperatorID:        operator.UserID,
		OperatorName:      operator.Name,
		ClientID:          client.ClientID,
		ClientName:        client.FullName,
		Direction:         domain.FXDirection(req.Direction),
		GivenCurrency:     domain.Currency(req.GivenCurrency),
		GivenAmount:       req.GivenAmount,
		ReceivedCurrency:  domain.Currency(req.ReceivedCurrency),
		ReceivedAmount:    req.GivenAmount.Mul(req.Rate),
		Rate:              req.Rate,
		CommissionPercent: fxCommissionPercent,
		Notes:             req.Notes,
		Status:            domain.StatusCompleted,
	}

	created, err := s.api.CreateFX(ctx, op)
	if err != nil {
		return nil, fmt.Errorf("failed to create currency exchange: %w", err)
	}
	op.OperID = created.OperID

	if err := s.opRepo.AddFX(ctx, op); err != nil {
		return nil, fmt.Errorf("failed to store currency exchange: %w", err)
	}
	s.recordCompletion(ctx, domain.OpFX, op.OperID, op.ClientName, op.GivenAmount, op.GivenCurrency, operator)
	return &op, nil
}

func (s *OperationService) ListFX(ctx context.Context) ([]domain.FXOperation, error) {
	ops, err := s.opRepo.ListFX(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currency exchanges: %w", err)
	}
	if ops == nil {
		return []domain.FXOperation{}, nil
	}
	return ops, nil
}

func (s *OperationService) RefreshCards(ctx context.Context) error {
	ops, err := s.api.ListCards(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch card applications: %w", err)
	}
	return s.opRepo.ReplaceCards(ctx, ops)
}

func (s *OperationService) CreateCard(ctx context.Context, req dto.CreateCardRequest, operator domain.User) (*domain.CardOpen, error) {
	client, err := s.clientRepo.FindClientByID(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve client %s: %w", req.ClientID, err)
	}

	op := domain.CardOpen{
		OccurredAt:      time.Now(),
		OperatorID:      operator.UserID,
		OperatorName:    operator.Name,
		ClientID:        client.ClientID,
		ClientName:      client.FullName,
		CardType:        domain.CardType(req.CardType),
		Currency:        domain.Currency(req.Currency),
		SMSNotification: req.SMSNotification,
		Phone:           req.Phone,
		Delivery:        domain.DeliveryType(req.Delivery),
		InitialDeposit:  req.InitialDeposit,
		CardState:       domain.CardPending,
		Status:          domain.StatusCompleted,
	}

	created, err := s.api.CreateCard(ctx, op)
	if err != nil {
		return nil, fmt.Errorf("failed to create card application: %w", err)
	}
	op.OperID = created.OperID

	if err := s.opRepo.AddCard(ctx, op); err != nil {
		return nil, fmt.Errorf("failed to store card application: %w", err)
	}
	s.recordCompletion(ctx, domain.OpCard, op.OperID, op.ClientName, op.InitialDeposit, op.Currency, operator)
	return &op, nil
}

func (s *OperationService) ListCards(ctx context.Context) ([]domain.CardOpen, error) {
	ops, err := s.opRepo.ListCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list card applications: %w", err)
	}
	if ops == nil {
		return []domain.CardOpen{}, nil
	}
	return ops, nil
}

func (s *OperationService) RefreshDeposits(ctx context.Context) error {
	ops, err := s.api.ListDeposits(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch deposits: %w", err)
	}
	return s.opRepo.ReplaceDeposits(ctx, ops)
}

func (s *OperationService) CreateDeposit(ctx context.Context, req dto.CreateDepositRequest, operator domain.User) (*domain.DepositOpen, error) {
	client, err := s.clientRepo.FindClientByID(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve client %s: %w", req.ClientID, err)
	}

	depositType := domain.DepositType(req.DepositType)
	op := domain.DepositOpen{
		OccurredAt:   time.Now(),
		OperatorID:   operator.UserID,
		OperatorName: operator.Name,
		ClientID:     client.ClientID,
		ClientName:   client.FullName,
		DepositType:  depositType,
		Currency:     domain.Currency(req.Currency),
		Amount:       req.Amount,
		TermMonths:   req.TermMonths,
		InterestRate: depositRate(depositType, req.TermMonths),
		Status:       domain.StatusCompleted,
	}

	created, err := s.api.CreateDeposit(ctx, op)
	if err != nil {
		return nil, fmt.Errorf("failed to create deposit: %w", err)
	}
	op.OperID = created.OperID

	if err := s.opRepo.AddDeposit(ctx, op); err != nil {
		return nil, fmt.Errorf("failed to store deposit: %w", err)
	}
	s.recordCompletion(ctx, domain.OpDeposit, op.OperID, op.ClientName, op.Amount, op.Currency, operator)
	return &op, nil
}

func (s *OperationService) ListDeposits(ctx context.Context) ([]domain.DepositOpen, error) {
	ops, err := s.opRepo.ListDeposits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list deposits: %w", err)
	}
	if ops == nil {
		return []domain.DepositOpen{}, nil
	}
	return ops, nil
}

// UpdateOperationStatus flips the nominal status of one mirrored operation.
// This is a purely local annotation; the training API is not told.
func (s *OperationService) UpdateOperationStatus(ctx context.Context, opType domain.OperationType, operID string, status domain.OperationStatus) error {
	if err := s.opRepo.UpdateOperationStatus(ctx, opType, operID, status); err != nil {
		return fmt.Errorf("failed to update status of %s: %w", operID, err)
	}
	return nil
}

func (s *OperationService) ListActivity(ctx context.Context) ([]domain.ActivityLog, error) {
	entries, err := s.activityRepo.ListActivity(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity log: %w", err)
	}
	if entries == nil {
		return []domain.ActivityLog{}, nil
	}
	return entries, nil
}
