package services

import (
	"context"

	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	"github.com/mamunbank/bank_trainer_app/internal/dto"
	"github.com/shopspring/decimal"
)

// AuthSvcFacade issues trainee sessions. There are no passwords: a student
// logs in with a display name and a role.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context) error
}

// ClientSvcFacade mirrors the client resource of the training API.
type ClientSvcFacade interface {
	RefreshClients(ctx context.Context) error
	CreateClient(ctx context.Context, req dto.CreateClientRequest, creator domain.User) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)
}

// OperationSvcFacade drives the five remote-backed operation flows. Every
// successful create appends the local mirror record, an activity-log entry,
// a derived journal entry and a correct-operation score credit.
type OperationSvcFacade interface {
	RefreshCashIn(ctx context.Context) error
	CreateCashIn(ctx context.Context, req dto.CreateCashInRequest, operator domain.User) (*domain.CashIn, error)
	ListCashIn(ctx context.Context) ([]domain.CashIn, error)

	RefreshCashOut(ctx context.Context) error
	CreateCashOut(ctx context.Context, req dto.CreateCashOutRequest, operator domain.User) (*domain.CashOut, error)
	ListCashOut(ctx context.Context) ([]domain.CashOut, error)

	RefreshFX(ctx context.Context) error
	CreateFX(ctx context.Context, req dto.CreateFXRequest, operator domain.User) (*domain.FXOperation, error)
	ListFX(ctx context.Context) ([]domain.FXOperation, error)

	RefreshCards(ctx context.Context) error
	CreateCard(ctx context.Context, req dto.CreateCardRequest, operator domain.User) (*domain.CardOpen, error)
	ListCards(ctx context.Context) ([]domain.CardOpen, error)

	RefreshDeposits(ctx context.Context) error
	CreateDeposit(ctx context.Context, req dto.CreateDepositRequest, operator domain.User) (*domain.DepositOpen, error)
	ListDeposits(ctx context.Context) ([]domain.DepositOpen, error)

	UpdateOperationStatus(ctx context.Context, opType domain.OperationType, operID string, status domain.OperationStatus) error
	ListActivity(ctx context.Context) ([]domain.ActivityLog, error)
}

// LoanSvcFacade runs the purely local loan workflow.
type LoanSvcFacade interface {
	CreateLoan(ctx context.Context, req dto.CreateLoanRequest, operator domain.User) (*domain.LoanApplicationRecord, error)
	GetLoanByID(ctx context.Context, operID string) (*domain.LoanApplicationRecord, error)
	UpdateLoanScoring(ctx context.Context, operID string, req dto.UpdateLoanScoringRequest) (*domain.LoanApplicationRecord, error)
	ListLoans(ctx context.Context) ([]domain.LoanApplicationRecord, error)
}

// LedgerSvcFacade derives accounting journal entries from completed
// operations via the fixed posting rule table.
type LedgerSvcFacade interface {
	RecordOperation(ctx context.Context, opType domain.OperationType, operID string, amount decimal.Decimal, currency domain.Currency, createdBy string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context) ([]domain.JournalEntry, error)
}

// ScoringSvcFacade maintains the automatic student score and the
// supervisor-assigned manual scores.
type ScoringSvcFacade interface {
	Score(ctx context.Context) (domain.StudentScore, error)
	RecordCorrectOperation(ctx context.Context) (domain.StudentScore, error)
	RecordMistake(ctx context.Context) (domain.StudentScore, error)

	AddManualScore(ctx context.Context, req dto.CreateManualScoreRequest, assigner domain.User) (*domain.ManualScore, error)
	UpdateManualScore(ctx context.Context, id string, req dto.UpdateManualScoreRequest) (*domain.ManualScore, error)
	ListManualScores(ctx context.Context) ([]domain.ManualScore, error)
	StudentSummaries(ctx context.Context) ([]dto.StudentScoreSummary, error)
}

// AuditSvcFacade records supervisor verdicts on operations.
type AuditSvcFacade interface {
	SetMark(ctx context.Context, req dto.SetAuditMarkRequest, markedBy string) (*domain.AuditMark, error)
	ListMarks(ctx context.Context) ([]domain.AuditMark, error)
	Overview(ctx context.Context) (*dto.AuditOverviewResponse, error)
}

// ReferenceSvcFacade manages the operation code reference table.
type ReferenceSvcFacade interface {
	ListCodes(ctx context.Context) ([]domain.OperationCode, error)
	CreateCode(ctx context.Context, req dto.OperationCodeRequest) (*domain.OperationCode, error)
	UpdateCode(ctx context.Context, code string, req dto.UpdateOperationCodeRequest) (*domain.OperationCode, error)
	DeleteCode(ctx context.Context, code string) error
	ResetCodes(ctx context.Context) ([]domain.OperationCode, error)
}

// ReportingSvcFacade aggregates local state and mirrors the manager report.
type ReportingSvcFacade interface {
	Stats(ctx context.Context) (*dto.StatsResponse, error)
	DailyReport(ctx context.Context) (*dto.DailyReportResponse, error)
	RefreshManagerReport(ctx context.Context) error
	ManagerReport(ctx context.Context) ([]domain.ManagerReportItem, error)
	SyncAll(ctx context.Context) dto.SyncResultResponse
}

// ServiceContainer bundles every service facade for route registration.
type ServiceContainer struct {
	Auth      AuthSvcFacade
	Client    ClientSvcFacade
	Operation OperationSvcFacade
	Loan      LoanSvcFacade
	Ledger    LedgerSvcFacade
	Scoring   ScoringSvcFacade
	Audit     AuditSvcFacade
	Reference ReferenceSvcFacade
	Reporting ReportingSvcFacade
}
