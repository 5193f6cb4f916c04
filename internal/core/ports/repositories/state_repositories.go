package repositories

import (
	"context"

	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
)

// The state repositories are facades over the in-memory session state.
// Fetch-style methods replace a list wholesale; Add methods are pure appends.

// SessionRepositoryFacade holds the current trainee and the full-state reset.
type SessionRepositoryFacade interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
	SetCurrentUser(ctx context.Context, user domain.User) error
	UpdateUserRole(ctx context.Context, role domain.Role) error
	Reset(ctx context.Context) error
}

// ClientRepositoryFacade mirrors the client list.
type ClientRepositoryFacade interface {
	ReplaceClients(ctx context.Context, clients []domain.Client) error
	AddClient(ctx context.Context, client domain.Client) error
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// OperationRepositoryFacade mirrors the five operation lists. Each list has
// its own replace/append pair; the status mutator addresses an operation by
// its type-prefixed id.
type OperationRepositoryFacade interface {
	ReplaceCashIn(ctx context.Context, ops []domain.CashIn) error
	AddCashIn(ctx context.Context, op domain.CashIn) error
	ListCashIn(ctx context.Context) ([]domain.CashIn, error)

	ReplaceCashOut(ctx context.Context, ops []domain.CashOut) error
	AddCashOut(ctx context.Context, op domain.CashOut) error
	ListCashOut(ctx context.Context) ([]domain.CashOut, error)

	ReplaceFX(ctx context.Context, ops []domain.FXOperation) error
	AddFX(ctx context.Context, op domain.FXOperation) error
	ListFX(ctx context.Context) ([]domain.FXOperation, error)

	ReplaceCards(ctx context.Context, ops []domain.CardOpen) error
	AddCard(ctx context.Context, op domain.CardOpen) error
	ListCards(ctx context.Context) ([]domain.CardOpen, error)

	ReplaceDeposits(ctx context.Context, ops []domain.DepositOpen) error
	AddDeposit(ctx context.Context, op domain.DepositOpen) error
	ListDeposits(ctx context.Context) ([]domain.DepositOpen, error)

	UpdateOperationStatus(ctx context.Context, opType domain.OperationType, operID string, status domain.OperationStatus) error
}

// LoanRepositoryFacade holds the purely local loan applications.
type LoanRepositoryFacade interface {
	AddLoan(ctx context.Context, loan domain.LoanApplicationRecord) error
	FindLoanByID(ctx context.Context, operID string) (*domain.LoanApplicationRecord, error)
	UpdateLoan(ctx context.Context, loan domain.LoanApplicationRecord) error
	ListLoans(ctx context.Context) ([]domain.LoanApplicationRecord, error)
}

// ActivityRepositoryFacade keeps the reverse-chronological activity feed.
type ActivityRepositoryFacade interface {
	AddActivity(ctx context.Context, entry domain.ActivityLog) error
	ListActivity(ctx context.Context) ([]domain.ActivityLog, error)
}

// JournalRepositoryFacade keeps the append-only accounting journal.
type JournalRepositoryFacade interface {
	AddJournalEntry(ctx context.Context, entry domain.JournalEntry) error
	ListJournalEntries(ctx context.Context) ([]domain.JournalEntry, error)
}

// ScoreRepositoryFacade holds the automatic score and the manual scores.
type ScoreRepositoryFacade interface {
	StudentScore(ctx context.Context) (domain.StudentScore, error)
	SaveStudentScore(ctx context.Context, score domain.StudentScore) error

	AddManualScore(ctx context.Context, score domain.ManualScore) error
	UpdateManualScore(ctx context.Context, score domain.ManualScore) error
	FindManualScoreByID(ctx context.Context, id string) (*domain.ManualScore, error)
	ListManualScores(ctx context.Context) ([]domain.ManualScore, error)
}

// AuditRepositoryFacade holds audit marks, upsert-by-operation-id.
type AuditRepositoryFacade interface {
	UpsertAuditMark(ctx context.Context, mark domain.AuditMark) error
	FindAuditMarkByOperationID(ctx context.Context, operationID string) (*domain.AuditMark, error)
	ListAuditMarks(ctx context.Context) ([]domain.AuditMark, error)
}

// ReferenceRepositoryFacade holds the operation code reference table.
type ReferenceRepositoryFacade interface {
	ListOperationCodes(ctx context.Context) ([]domain.OperationCode, error)
	FindOperationCode(ctx context.Context, code string) (*domain.OperationCode, error)
	SaveOperationCode(ctx context.Context, code domain.OperationCode) error
	DeleteOperationCode(ctx context.Context, code string) error
	ReplaceOperationCodes(ctx context.Context, codes []domain.OperationCode) error
}

// ReportRepositoryFacade caches the server-provided manager report.
type ReportRepositoryFacade interface {
	ReplaceManagerReport(ctx context.Context, items []domain.ManagerReportItem) error
	ListManagerReport(ctx context.Context) ([]domain.ManagerReportItem, error)
}
