package services

import (
	portsrepo "github.com/mamunbank/bank_trainer_app/internal/core/ports/repositories"
	portssvc "github.com/mamunbank/bank_trainer_app/internal/core/ports/services"
	"github.com/mamunbank/bank_trainer_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Ledger and scoring come first since the operation flows depend on them
	container.Ledger = NewLedgerService(repos.JournalRepo)
	container.Scoring = NewScoringService(repos.ScoreRepo)

	container.Auth = NewAuthService(repos.SessionRepo, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)
	container.Client = NewClientService(repos.TrainingAPI, repos.ClientRepo)
	container.Operation = NewOperationService(
		repos.TrainingAPI,
		repos.OperationRepo,
		repos.ActivityRepo,
		repos.ClientRepo,
		container.Ledger,
		container.Scoring,
	)
	container.Loan = NewLoanService(
		repos.LoanRepo,
		repos.ClientRepo,
		repos.ActivityRepo,
		container.Ledger,
		container.Scoring,
	)
	container.Audit = NewAuditService(repos.AuditRepo, repos.ReportRepo, container.Scoring)
	container.Reference = NewReferenceService(repos.ReferenceRepo)
	container.Reporting = NewReportingService(
		repos.TrainingAPI,
		repos.OperationRepo,
		repos.LoanRepo,
		repos.ClientRepo,
		repos.ScoreRepo,
		repos.ReportRepo,
		container.Client,
		container.Operation,
	)

	return container
}
