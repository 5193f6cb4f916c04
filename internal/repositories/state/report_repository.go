package state

import (
	"context"

	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	portsrepo "github.com/mamunbank/bank_trainer_app/internal/core/ports/repositories"
)

var _ portsrepo.ReportRepositoryFacade = (*Store)(nil)

func (s *Store) ReplaceManagerReport(ctx context.Context, items []domain.ManagerReportItem) error {
	s.update(func(st *sessionState) { st.ManagerReport = copySlice(items) })
	return nil
}

func (s *Store) ListManagerReport(ctx context.Context) ([]domain.ManagerReportItem, error) {
	var out []domain.ManagerReportItem
	s.read(func(st *sessionState) { out = copySlice(st.ManagerReport) })
	return out, nil
}
