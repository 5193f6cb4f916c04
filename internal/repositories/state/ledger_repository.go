package state

import (
	"context"

	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	portsrepo "github.com/mamunbank/bank_trainer_app/internal/core/ports/repositories"
)

var (
	_ portsrepo.JournalRepositoryFacade  = (*Store)(nil)
	_ portsrepo.ActivityRepositoryFacade = (*Store)(nil)
)

// AddJournalEntry prepends one derived entry; the journal only grows and
// entries are never edited.
func (s *Store) AddJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	s.update(func(st *sessionState) {
		st.JournalEntries = append([]domain.JournalEntry{entry}, st.JournalEntries...)
	})
	return nil
}

func (s *Store) ListJournalEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	var out []domain.JournalEntry
	s.read(func(st *sessionState) { out = copySlice(st.JournalEntries) })
	return out, nil
}

// AddActivity prepends one feed entry, keeping the feed newest-first.
func (s *Store) AddActivity(ctx context.Context, entry domain.ActivityLog) error {
	s.update(func(st *sessionState) {
		st.ActivityLog = append([]domain.ActivityLog{entry}, st.ActivityLog...)
	})
	return nil
}

func (s *Store) ListActivity(ctx context.Context) ([]domain.ActivityLog, error) {
	var out []domain.ActivityLog
	s.read(func(st *sessionState) { out = copySlice(st.ActivityLog) })
	return out, nil
}
