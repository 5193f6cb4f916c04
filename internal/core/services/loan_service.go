package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mamunbank/bank_trainer_app/internal/apperrors"
	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	portsrepo "github.com/mamunbank/bank_trainer_app/internal/core/ports/repositories"
	portssvc "github.com/mamunbank/bank_trainer_app/internal/core/ports/services"
	"github.com/mamunbank/bank_trainer_app/internal/dto"
	"github.com/mamunbank/bank_trainer_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// LoanService runs the loan workflow entirely inside the simulator. Loans
// never touch the training API: the five-step flow, scoring and disbursement
// are local teaching material.
type LoanService struct {
	loanRepo     portsrepo.LoanRepositoryFacade
	clientRepo   portsrepo.ClientRepositoryFacade
	activityRepo portsrepo.ActivityRepositoryFacade
	ledger       portssvc.LedgerSvcFacade
	scoring      portssvc.ScoringSvcFacade
}

var _ portssvc.LoanSvcFacade = (*LoanService)(nil)

func NewLoanService(
	loanRepo portsrepo.LoanRepositoryFacade,
	clientRepo portsrepo.ClientRepositoryFacade,
	activityRepo portsrepo.ActivityRepositoryFacade,
	ledger portssvc.LedgerSvcFacade,
	scoring portssvc.ScoringSvcFacade,
) *LoanService {
	return &LoanService{
		loanRepo:     loanRepo,
		clientRepo:   clientRepo,
		activityRepo: activityRepo,
		ledger:       ledger,
		scoring:      scoring,
	}
}

// CreateLoan files a loan application with its scoring checklist completed.
// At least one checklist criterion must hold: a fully unchecked application
// cannot be decided and is rejected as invalid input.
func (s *LoanService) CreateLoan(ctx context.Context, req dto.CreateLoanRequest, operator domain.User) (*domain.LoanApplicationRecord, error) {
	scoringResult := req.Scoring.Result()
	if scoringResult == domain.ScoringPending {
		return nil, fmt.Errorf("at least one scoring criterion must be checked: %w", apperrors.ErrValidation)
	}

	client, err := s.clientRepo.FindClientByID(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve client %s: %w", req.ClientID, err)
	}

	loanStatus := domain.LoanRejected
	if scoringResult == domain.ScoringRecommended {
		loanStatus = domain.LoanApproved
	}

	loan := domain.LoanApplicationRecord{
		OperID:         "LOAN-" + uuid.NewString(),
		OccurredAt:     time.Now(),
		OperatorID:     operator.UserID,
		OperatorName:   operator.Name,
		ClientID:       client.ClientID,
		ClientName:     client.FullName,
		Amount:         req.Amount,
		Currency:       domain.Currency(req.Currency),
		TermMonths:     req.TermMonths,
		InterestRate:   decimal.NewFromInt(domain.AnnualLoanRatePercent),
		Purpose:        req.Purpose,
		MonthlyPayment: domain.MonthlyLoanPayment(req.Amount, req.TermMonths),
		CurrentStep:    domain.LoanStepDisbursement,
		Scoring:        req.Scoring,
		ScoringResult:  scoringResult,
		LoanStatus:     loanStatus,
		Status:         domain.StatusCompleted,
	}

	if err := s.loanRepo.AddLoan(ctx, loan); err != nil {
		return nil, fmt.Errorf("failed to store loan application: %w", err)
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	entry := domain.ActivityLog{
		ID:            uuid.NewString(),
		OccurredAt:    time.Now(),
		StaffID:       operator.UserID,
		StaffName:     operator.Name,
		Role:          operator.Role,
		OperationName: operationNames[domain.OpLoan],
		OperID:        loan.OperID,
		ClientName:    loan.ClientName,
		Amount:        loan.Amount,
		Currency:      loan.Currency,
		Status:        domain.StatusCompleted,
	}
	if err := s.activityRepo.AddActivity(ctx, entry); err != nil {
		logger.Error("Failed to append loan activity entry", slog.String("oper_id", loan.OperID), slog.String("error", err.Error()))
	}
	if _, err := s.ledger.RecordOperation(ctx, domain.OpLoan, loan.OperID, loan.Amount, loan.Currency, operator.Name); err != nil {
		logger.Error("Failed to record loan journal entry", slog.String("oper_id", loan.OperID), slog.String("error", err.Error()))
	}
	if _, err := s.scoring.RecordCorrectOperation(ctx); err != nil {
		logger.Error("Failed to credit student score", slog.String("oper_id", loan.OperID), slog.String("error", err.Error()))
	}

	logger.Info("Loan application filed",
		slog.String("oper_id", loan.OperID),
		slog.String("scoring_result", string(scoringResult)),
		slog.String("loan_status", string(loanStatus)))
	return &loan, nil
}

func (s *LoanService) GetLoanByID(ctx context.Context, operID string) (*domain.LoanApplicationRecord, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, operID)
	if err != nil {
		return nil, fmt.Errorf("failed to get loan %s: %w", operID, err)
	}
	return loan, nil
}

// UpdateLoanScoring toggles checklist criteria during loan analysis and
// re-derives the scoring result and loan status.
func (s *LoanService) UpdateLoanScoring(ctx context.Context, operID string, req dto.UpdateLoanScoringRequest) (*domain.LoanApplicationRecord, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, operID)
	if err != nil {
		return nil, fmt.Errorf("failed to get loan %s: %w", operID, err)
	}

	if req.HasIncome != nil {
		loan.Scoring.HasIncome = *req.HasIncome
	}
	if req.NoExistingDebt != nil {
		loan.Scoring.NoExistingDebt = *req.NoExistingDebt
	}
	if req.InsuranceConfirmed != nil {
		loan.Scoring.InsuranceConfirmed = *req.InsuranceConfirmed
	}

	loan.ScoringResult = loan.Scoring.Result()
	switch loan.ScoringResult {
	case domain.ScoringRecommended:
		loan.LoanStatus = domain.LoanApproved
	case domain.ScoringPending:
		loan.LoanStatus = domain.LoanDecision
	default:
		loan.LoanStatus = domain.LoanRejected
	}

	if err := s.loanRepo.UpdateLoan(ctx, *loan); err != nil {
		return nil, fmt.Errorf("failed to update loan %s: %w", operID, err)
	}
	return loan, nil
}

func (s *LoanService) ListLoans(ctx context.Context) ([]domain.LoanApplicationRecord, error) {
	loans, err := s.loanRepo.ListLoans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	if loans == nil {
		return []domain.LoanApplicationRecord{}, nil
	}
	return loans, nil
}
