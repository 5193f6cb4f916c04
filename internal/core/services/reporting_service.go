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
	"github.com/shopspring/decimal"
)

// ReportingService aggregates the local session into dashboard stats and the
// daily report, and mirrors the server-side manager report.
type ReportingService struct {
	api        portsrepo.TrainingAPIFacade
	opRepo     portsrepo.OperationRepositoryFacade
	loanRepo   portsrepo.LoanRepositoryFacade
	clientRepo portsrepo.ClientRepositoryFacade
	scoreRepo  portsrepo.ScoreRepositoryFacade
	reportRepo portsrepo.ReportRepositoryFacade
	clients    portssvc.ClientSvcFacade
	operations portssvc.OperationSvcFacade
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

func NewReportingService(
	api portsrepo.TrainingAPIFacade,
	opRepo portsrepo.OperationRepositoryFacade,
	loanRepo portsrepo.LoanRepositoryFacade,
	clientRepo portsrepo.ClientRepositoryFacade,
	scoreRepo portsrepo.ScoreRepositoryFacade,
	reportRepo portsrepo.ReportRepositoryFacade,
	clients portssvc.ClientSvcFacade,
	operations portssvc.OperationSvcFacade,
) *ReportingService {
	return &ReportingService{
		api:        api,
		opRepo:     opRepo,
		loanRepo:   loanRepo,
		clientRepo: clientRepo,
		scoreRepo:  scoreRepo,
		reportRepo: reportRepo,
		clients:    clients,
		operations: operations,
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func addAmount(totals map[domain.Currency]decimal.Decimal, currency domain.Currency, amount decimal.Decimal) {
	totals[currency] = totals[currency].Add(amount)
}

func emptyTotals() map[domain.Currency]decimal.Decimal {
	totals := make(map[domain.Currency]decimal.Decimal, len(domain.Currencies))
	for _, c := range domain.Currencies {
		totals[c] = decimal.Zero
	}
	return totals
}

// Stats is the dashboard aggregate. Loans stay out of the operation counts,
// and the amount total sums the cash-in list only: the dashboard shows money
// taken in at the desk, not turnover.
func (s *ReportingService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	cashIn, err := s.opRepo.ListCashIn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash-in operations: %w", err)
	}
	cashOut, err := s.opRepo.ListCashOut(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash-out operations: %w", err)
	}
	fx, err := s.opRepo.ListFX(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currency exchanges: %w", err)
	}
	cards, err := s.opRepo.ListCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list card applications: %w", err)
	}
	deposits, err := s.opRepo.ListDeposits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list deposits: %w", err)
	}
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	now := time.Now()
	resp := &dto.StatsResponse{
		TotalClients: len(clients),
		TotalAmount:  emptyTotals(),
	}

	count := func(occurredAt time.Time) {
		resp.TotalOperations++
		if sameDay(occurredAt, now) {
			resp.TodayOperations++
		}
	}
	for _, op := range cashIn {
		count(op.OccurredAt)
		addAmount(resp.TotalAmount, op.Currency, op.Amount)
	}
	for _, op := range cashOut {
		count(op.OccurredAt)
	}
	for _, op := range fx {
		count(op.OccurredAt)
	}
	for _, op := range cards {
		count(op.OccurredAt)
	}
	for _, op := range deposits {
		count(op.OccurredAt)
	}

	return resp, nil
}

// DailyReport is the end-of-day summary over today's operations. Incoming
// cash is the cash-in total; outgoing is cash-out plus disbursed loans.
func (s *ReportingService) DailyReport(ctx context.Context) (*dto.DailyReportResponse, error) {
	cashIn, err := s.opRepo.ListCashIn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash-in operations: %w", err)
	}
	cashOut, err := s.opRepo.ListCashOut(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash-out operations: %w", err)
	}
	fx, err := s.opRepo.ListFX(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currency exchanges: %w", err)
	}
	cards, err := s.opRepo.ListCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list card applications: %w", err)
	}
	deposits, err := s.opRepo.ListDeposits(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list deposits: %w", err)
	}
	loans, err := s.loanRepo.ListLoans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	score, err := s.scoreRepo.StudentScore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load student score: %w", err)
	}

	now := time.Now()
	resp := &dto.DailyReportResponse{
		TotalIncoming: emptyTotals(),
		TotalOutgoing: emptyTotals(),
		ErrorCount:    score.ErrorCount,
		Score:         score.Score,
	}

	for _, op := range cashIn {
		if sameDay(op.OccurredAt, now) {
			resp.CashIn++
			addAmount(resp.TotalIncoming, op.Currency, op.Amount)
		}
	}
	for _, op := range cashOut {
		if sameDay(op.OccurredAt, now) {
			resp.CashOut++
			addAmount(resp.TotalOutgoing, op.Currency, op.Amount)
		}
	}
	for _, op := range fx {
		if sameDay(op.OccurredAt, now) {
			resp.FX++
		}
	}
	for _, op := range cards {
		if sameDay(op.OccurredAt, now) {
			resp.Cards++
		}
	}
	for _, op := range deposits {
		if sameDay(op.OccurredAt, now) {
			resp.Deposits++
		}
	}
	for _, op := range loans {
		if sameDay(op.OccurredAt, now) {
			resp.Loans++
			addAmount(resp.TotalOutgoing, op.Currency, op.Amount)
		}
	}
	resp.TotalOperations = resp.CashIn + resp.CashOut + resp.FX + resp.Cards + resp.Deposits + resp.Loans

	return resp, nil
}

// RefreshManagerReport replaces the cached manager report with a fresh fetch.
func (s *ReportingService) RefreshManagerReport(ctx context.Context) error {
	items, err := s.api.ListManagerReport(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch manager report: %w", err)
	}
	if err := s.reportRepo.ReplaceManagerReport(ctx, items); err != nil {
		return fmt.Errorf("failed to store manager report: %w", err)
	}
	return nil
}

func (s *ReportingService) ManagerReport(ctx context.Context) ([]domain.ManagerReportItem, error) {
	items, err := s.reportRepo.ListManagerReport(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list manager report: %w", err)
	}
	if items == nil {
		return []domain.ManagerReportItem{}, nil
	}
	return items, nil
}

// SyncAll refreshes every mirrored resource, reporting per-resource outcomes
// instead of failing on the first error. A failed refresh leaves the prior
// list in place.
func (s *ReportingService) SyncAll(ctx context.Context) dto.SyncResultResponse {
	logger := middleware.GetLoggerFromCtx(ctx)
	result := dto.SyncResultResponse{}

	record := func(resource string, err error) {
		if err != nil {
			logger.Warn("Resource sync failed", slog.String("resource", resource), slog.String("error", err.Error()))
			result[resource] = err.Error()
			return
		}
		result[resource] = "ok"
	}

	record("clients", s.clients.RefreshClients(ctx))
	record("cash_in", s.operations.RefreshCashIn(ctx))
	record("cash_out", s.operations.RefreshCashOut(ctx))
	record("currency_exchange", s.operations.RefreshFX(ctx))
	record("card_applications", s.operations.RefreshCards(ctx))
	record("deposits", s.operations.RefreshDeposits(ctx))
	record("manager_report", s.RefreshManagerReport(ctx))

	return result
}
