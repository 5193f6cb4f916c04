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
	"github.com/mamunbank/bank_trainer_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// LedgerService derives double-entry journal records from completed
// operations. The posting rule table is the whole rule engine: one fixed
// debit/credit account pair per operation type.
type LedgerService struct {
	journalRepo portsrepo.JournalRepositoryFacade
}

var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

func NewLedgerService(journalRepo portsrepo.JournalRepositoryFacade) *LedgerService {
	return &LedgerService{journalRepo: journalRepo}
}

// RecordOperation appends the derived journal entry for one operation.
// Operation types without a posting rule (card applications) are a silent
// no-op and return (nil, nil).
func (s *LedgerService) RecordOperation(ctx context.Context, opType domain.OperationType, operID string, amount decimal.Decimal, currency domain.Currency, createdBy string) (*domain.JournalEntry, error) {
	rule, ok := domain.PostingRules[opType]
	if !ok {
		middleware.GetLoggerFromCtx(ctx).Debug("No posting rule for operation type, skipping journal entry",
			slog.String("operation_type", string(opType)), slog.String("oper_id", operID))
		return nil, nil
	}

	entry := domain.JournalEntry{
		ID:            uuid.NewString(),
		OperationID:   operID,
		OperationType: opType,
		DebitAccount:  rule.DebitAccount,
		CreditAccount: rule.CreditAccount,
		Amount:        amount,
		Currency:      currency,
		CreatedAt:     time.Now(),
		CreatedBy:     createdBy,
	}
	if err := s.journalRepo.AddJournalEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to record journal entry: %w", err)
	}
	return &entry, nil
}

func (s *LedgerService) ListEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	entries, err := s.journalRepo.ListJournalEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	if entries == nil {
		return []domain.JournalEntry{}, nil
	}
	return entries, nil
}
