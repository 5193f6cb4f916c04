package services_test

import (
	"context"

	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	portsrepo "github.com/mamunbank/bank_trainer_app/internal/core/ports/repositories"
	"github.com/mamunbank/bank_trainer_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// Shared mocks for the service suites. Each mock implements the facade it is
// named after; suites only register expectations for the methods they hit.

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) ReplaceClients(ctx context.Context, clients []domain.Client) error {
	args := m.Called(ctx, clients)
	return args.Error(0)
}

func (m *MockClientRepository) AddClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

// --- Mock OperationRepository ---
type MockOperationRepository struct {
	mock.Mock
}

func (m *MockOperationRepository) ReplaceCashIn(ctx context.Context, ops []domain.CashIn) error {
	args := m.Called(ctx, ops)
	return args.Error(0)
}

func (m *MockOperationRepository) AddCashIn(ctx context.Context, op domain.CashIn) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockOperationRepository) ListCashIn(ctx context.Context) ([]domain.CashIn, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashIn), args.Error(1)
}

func (m *MockOperationRepository) ReplaceCashOut(ctx context.Context, ops []domain.CashOut) error {
	args := m.Called(ctx, ops)
	return args.Error(0)
}

func (m *MockOperationRepository) AddCashOut(ctx context.Context, op domain.CashOut) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockOperationRepository) ListCashOut(ctx context.Context) ([]domain.CashOut, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashOut), args.Error(1)
}

func (m *MockOperationRepository) ReplaceFX(ctx context.Context, ops []domain.FXOperation) error {
	args := m.Called(ctx, ops)
	return args.Error(0)
}

func (m *MockOperationRepository) AddFX(ctx context.Context, op domain.FXOperation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockOperationRepository) ListFX(ctx context.Context) ([]domain.FXOperation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FXOperation), args.Error(1)
}

func (m *MockOperationRepository) ReplaceCards(ctx context.Context, ops []domain.CardOpen) error {
	args := m.Called(ctx, ops)
	return args.Error(0)
}

func (m *MockOperationRepository) AddCard(ctx context.Context, op domain.CardOpen) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockOperationRepository) ListCards(ctx context.Context) ([]domain.CardOpen, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CardOpen), args.Error(1)
}

func (m *MockOperationRepository) ReplaceDeposits(ctx context.Context, ops []domain.DepositOpen) error {
	args := m.Called(ctx, ops)
	return args.Error(0)
}

func (m *MockOperationRepository) AddDeposit(ctx context.Context, op domain.DepositOpen) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockOperationRepository) ListDeposits(ctx context.Context) ([]domain.DepositOpen, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DepositOpen), args.Error(1)
}

func (m *MockOperationRepository) UpdateOperationStatus(ctx context.Context, opType domain.OperationType, operID string, status domain.OperationStatus) error {
	args := m.Called(ctx, opType, operID, status)
	return args.Error(0)
}

// --- Mock LoanRepository ---
type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) AddLoan(ctx context.Context, loan domain.LoanApplicationRecord) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockLoanRepository) FindLoanByID(ctx context.Context, operID string) (*domain.LoanApplicationRecord, error) {
	args := m.Called(ctx, operID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanApplicationRecord), args.Error(1)
}

func (m *MockLoanRepository) UpdateLoan(ctx context.Context, loan domain.LoanApplicationRecord) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockLoanRepository) ListLoans(ctx context.Context) ([]domain.LoanApplicationRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LoanApplicationRecord), args.Error(1)
}

// --- Mock ActivityRepository ---
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) AddActivity(ctx context.Context, entry domain.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityRepository) ListActivity(ctx context.Context) ([]domain.ActivityLog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityLog), args.Error(1)
}

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) AddJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) ListJournalEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

// --- Mock ScoreRepository ---
type MockScoreRepository struct {
	mock.Mock
}

func (m *MockScoreRepository) StudentScore(ctx context.Context) (domain.StudentScore, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.StudentScore), args.Error(1)
}

func (m *MockScoreRepository) SaveStudentScore(ctx context.Context, score domain.StudentScore) error {
	args := m.Called(ctx, score)
	return args.Error(0)
}

func (m *MockScoreRepository) AddManualScore(ctx context.Context, score domain.ManualScore) error {
	args := m.Called(ctx, score)
	return args.Error(0)
}

func (m *MockScoreRepository) UpdateManualScore(ctx context.Context, score domain.ManualScore) error {
	args := m.Called(ctx, score)
	return args.Error(0)
}

func (m *MockScoreRepository) FindManualScoreByID(ctx context.Context, id string) (*domain.ManualScore, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ManualScore), args.Error(1)
}

func (m *MockScoreRepository) ListManualScores(ctx context.Context) ([]domain.ManualScore, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ManualScore), args.Error(1)
}

// --- Mock AuditRepository ---
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) UpsertAuditMark(ctx context.Context, mark domain.AuditMark) error {
	args := m.Called(ctx, mark)
	return args.Error(0)
}

func (m *MockAuditRepository) FindAuditMarkByOperationID(ctx context.Context, operationID string) (*domain.AuditMark, error) {
	args := m.Called(ctx, operationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuditMark), args.Error(1)
}

func (m *MockAuditRepository) ListAuditMarks(ctx context.Context) ([]domain.AuditMark, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditMark), args.Error(1)
}

// --- Mock ReportRepository ---
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) ReplaceManagerReport(ctx context.Context, items []domain.ManagerReportItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockReportRepository) ListManagerReport(ctx context.Context) ([]domain.ManagerReportItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ManagerReportItem), args.Error(1)
}

// --- Mock TrainingAPI ---
type MockTrainingAPI struct {
	mock.Mock
}

func (m *MockTrainingAPI) ListClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockTrainingAPI) CreateClient(ctx context.Context, client domain.Client) (string, error) {
	args := m.Called(ctx, client)
	return args.String(0), args.Error(1)
}

func (m *MockTrainingAPI) ListCashIn(ctx context.Context) ([]domain.CashIn, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashIn), args.Error(1)
}

func (m *MockTrainingAPI) CreateCashIn(ctx context.Context, op domain.CashIn) (portsrepo.CreatedOperation, error) {
	args := m.Called(ctx, op)
	return args.Get(0).(portsrepo.CreatedOperation), args.Error(1)
}

func (m *MockTrainingAPI) ListCashOut(ctx context.Context) ([]domain.CashOut, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashOut), args.Error(1)
}

func (m *MockTrainingAPI) CreateCashOut(ctx context.Context, op domain.CashOut) (portsrepo.CreatedOperation, error) {
	args := m.Called(ctx, op)
	return args.Get(0).(portsrepo.CreatedOperation), args.Error(1)
}

func (m *MockTrainingAPI) ListFX(ctx context.Context) ([]domain.FXOperation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FXOperation), args.Error(1)
}

func (m *MockTrainingAPI) CreateFX(ctx context.Context, op domain.FXOperation) (portsrepo.CreatedOperation, error) {
	args := m.Called(ctx, op)
	return args.Get(0).(portsrepo.CreatedOperation), args.Error(1)
}

func (m *MockTrainingAPI) ListCards(ctx context.Context) ([]domain.CardOpen, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CardOpen), args.Error(1)
}

func (m *MockTrainingAPI) CreateCard(ctx context.Context, op domain.CardOpen) (portsrepo.CreatedOperation, error) {
	args := m.Called(ctx, op)
	return args.Get(0).(portsrepo.CreatedOperation), args.Error(1)
}

func (m *MockTrainingAPI) ListDeposits(ctx context.Context) ([]domain.DepositOpen, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DepositOpen), args.Error(1)
}

func (m *MockTrainingAPI) CreateDeposit(ctx context.Context, op domain.DepositOpen) (portsrepo.CreatedOperation, error) {
	args := m.Called(ctx, op)
	return args.Get(0).(portsrepo.CreatedOperation), args.Error(1)
}

func (m *MockTrainingAPI) ListManagerReport(ctx context.Context) ([]domain.ManagerReportItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ManagerReportItem), args.Error(1)
}

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) RecordOperation(ctx context.Context, opType domain.OperationType, operID string, amount decimal.Decimal, currency domain.Currency, createdBy string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, opType, operID, amount, currency, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockLedgerService) ListEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

// --- Mock ScoringService ---
type MockScoringService struct {
	mock.Mock
}

func (m *MockScoringService) Score(ctx context.Context) (domain.StudentScore, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.StudentScore), args.Error(1)
}

func (m *MockScoringService) RecordCorrectOperation(ctx context.Context) (domain.StudentScore, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.StudentScore), args.Error(1)
}

func (m *MockScoringService) RecordMistake(ctx context.Context) (domain.StudentScore, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.StudentScore), args.Error(1)
}

func (m *MockScoringService) AddManualScore(ctx context.Context, req dto.CreateManualScoreRequest, assigner domain.User) (*domain.ManualScore, error) {
	args := m.Called(ctx, req, assigner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ManualScore), args.Error(1)
}

func (m *MockScoringService) UpdateManualScore(ctx context.Context, id string, req dto.UpdateManualScoreRequest) (*domain.ManualScore, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ManualScore), args.Error(1)
}

func (m *MockScoringService) ListManualScores(ctx context.Context) ([]domain.ManualScore, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ManualScore), args.Error(1)
}

func (m *MockScoringService) StudentSummaries(ctx context.Context) ([]dto.StudentScoreSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.StudentScoreSummary), args.Error(1)
}
