package state

import (
	"context"

	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	portsrepo "github.com/mamunbank/bank_trainer_app/internal/core/ports/repositories"
)

var _ portsrepo.AuditRepositoryFacade = (*Store)(nil)

// UpsertAuditMark keeps at most one mark per operation id; the latest mark
// wins.
func (s *Store) UpsertAuditMark(ctx context.Context, mark domain.AuditMark) error {
	s.update(func(st *sessionState) {
		kept := st.AuditMarks[:0]
		for _, m := range st.AuditMarks {
			if m.OperationID != mark.OperationID {
				kept = append(kept, m)
			}
		}
		st.AuditMarks = append(kept, mark)
	})
	return nil
}

// FindAuditMarkByOperationID returns (nil, nil) for an unmarked operation:
// most operations never receive a mark and that is not an error.
func (s *Store) FindAuditMarkByOperationID(ctx context.Context, operationID string) (*domain.AuditMark, error) {
	var found *domain.AuditMark
	s.read(func(st *sessionState) {
		for i := range st.AuditMarks {
			if st.AuditMarks[i].OperationID == operationID {
				m := st.AuditMarks[i]
				found = &m
				return
			}
		}
	})
	return found, nil
}

func (s *Store) ListAuditMarks(ctx context.Context) ([]domain.AuditMark, error) {
	var out []domain.AuditMark
	s.read(func(st *sessionState) { out = copySlice(st.AuditMarks) })
	return out, nil
}
