package state

import (
	"log/slog"
	"sync"

	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
)

// sessionState is the authoritative in-memory copy of all domain lists.
// Its JSON shape is exactly the persisted snapshot slice; transient data
// (nothing at present) stays out of this struct.
type sessionState struct {
	CurrentUser    *domain.User                   `json:"currentUser,omitempty"`
	Clients        []domain.Client                `json:"clients"`
	CashInOps      []domain.CashIn                `json:"cashInOps"`
	CashOutOps     []domain.CashOut               `json:"cashOutOps"`
	FXOps          []domain.FXOperation           `json:"fxOps"`
	CardOps        []domain.CardOpen              `json:"cardOps"`
	DepositOps     []domain.DepositOpen           `json:"depositOps"`
	LoanOps        []domain.LoanApplicationRecord `json:"loanOps"`
	ManagerReport  []domain.ManagerReportItem     `json:"managerReport"`
	ActivityLog    []domain.ActivityLog           `json:"activityLog"`
	JournalEntries []domain.JournalEntry          `json:"journalEntries"`
	StudentScore   domain.StudentScore            `json:"studentScore"`
	AuditMarks     []domain.AuditMark             `json:"auditMarks"`
	ManualScores   []domain.ManualScore           `json:"manualScores"`
	OperationCodes []domain.OperationCode         `json:"operationCodes"`
}

// defaultState seeds a fresh session: empty lists, zero score, the default
// operation code table.
func defaultState() sessionState {
	return sessionState{
		StudentScore:   domain.NewStudentScore(""),
		OperationCodes: domain.DefaultOperationCodes(),
	}
}

// Store holds the session state behind a RWMutex and implements every state
// repository facade. Each mutation persists a best-effort snapshot: a save
// failure is logged and swallowed, never surfaced, and no transaction spans
// two mutations.
type Store struct {
	mu     sync.RWMutex
	state  sessionState
	path   string
	logger *slog.Logger
}

// NewStore loads the snapshot at path (migrating old versions) or starts a
// fresh session when no snapshot exists. An unreadable snapshot is treated
// as absent so a corrupt file never blocks startup.
func NewStore(path string, logger *slog.Logger) *Store {
	s := &Store{path: path, logger: logger}
	st, err := loadSnapshot(path)
	if err != nil {
		if logger != nil {
			logger.Warn("Starting with a fresh session state", slog.String("path", path), slog.String("reason", err.Error()))
		}
		s.state = defaultState()
		return s
	}
	s.state = st
	return s
}

// update runs mutate under the write lock and persists the result.
func (s *Store) update(mutate func(*sessionState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mutate(&s.state)
	s.persistLocked()
}

// read runs view under the read lock.
func (s *Store) read(view func(*sessionState)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	view(&s.state)
}

// persistLocked writes the snapshot; the caller holds the write lock.
func (s *Store) persistLocked() {
	if s.path == "" {
		return
	}
	if err := saveSnapshot(s.path, s.state); err != nil && s.logger != nil {
		s.logger.Error("Failed to persist session snapshot", slog.String("path", s.path), slog.String("error", err.Error()))
	}
}

// copySlice returns a defensive copy so callers never alias store internals.
func copySlice[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
