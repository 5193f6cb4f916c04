package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	SessionRepo   SessionRepositoryFacade
	ClientRepo    ClientRepositoryFacade
	OperationRepo OperationRepositoryFacade
	LoanRepo      LoanRepositoryFacade
	ActivityRepo  ActivityRepositoryFacade
	JournalRepo   JournalRepositoryFacade
	ScoreRepo     ScoreRepositoryFacade
	AuditRepo     AuditRepositoryFacade
	ReferenceRepo ReferenceRepositoryFacade
	ReportRepo    ReportRepositoryFacade
	TrainingAPI   TrainingAPIFacade
}
