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
)

// AuditService records supervisor verdicts and builds the control-department
// overview over the manager report.
type AuditService struct {
	auditRepo  portsrepo.AuditRepositoryFacade
	reportRepo portsrepo.ReportRepositoryFacade
	scoring    portssvc.ScoringSvcFacade
}

var _ portssvc.AuditSvcFacade = (*AuditService)(nil)

func NewAuditService(auditRepo portsrepo.AuditRepositoryFacade, reportRepo portsrepo.ReportRepositoryFacade, scoring portssvc.ScoringSvcFacade) *AuditService {
	return &AuditService{auditRepo: auditRepo, reportRepo: reportRepo, scoring: scoring}
}

// SetMark upserts the verdict for one operation. An error_found verdict also
// debits the trainee score: the mistake was confirmed by the supervisor.
func (s *AuditService) SetMark(ctx context.Context, req dto.SetAuditMarkRequest, markedBy string) (*domain.AuditMark, error) {
	mark := domain.AuditMark{
		OperationID:   req.OperationID,
		OperationType: req.OperationType,
		AuditStatus:   domain.AuditStatus(req.AuditStatus),
		MarkedBy:      markedBy,
		MarkedAt:      time.Now(),
		Note:          req.Note,
	}
	if err := s.auditRepo.UpsertAuditMark(ctx, mark); err != nil {
		return nil, fmt.Errorf("failed to save audit mark: %w", err)
	}

	if mark.AuditStatus == domain.AuditErrorFound {
		if _, err := s.scoring.RecordMistake(ctx); err != nil {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to record mistake for audited operation",
				slog.String("operation_id", mark.OperationID), slog.String("error", err.Error()))
		}
	}
	return &mark, nil
}

func (s *AuditService) ListMarks(ctx context.Context) ([]domain.AuditMark, error) {
	marks, err := s.auditRepo.ListAuditMarks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit marks: %w", err)
	}
	if marks == nil {
		return []domain.AuditMark{}, nil
	}
	return marks, nil
}

// Overview joins the cached manager report with audit marks. Report rows are
// keyed by a type-prefixed operation id so marks on locally listed operations
// line up with the server-side report.
func (s *AuditService) Overview(ctx context.Context) (*dto.AuditOverviewResponse, error) {
	report, err := s.reportRepo.ListManagerReport(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list manager report: %w", err)
	}
	marks, err := s.auditRepo.ListAuditMarks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit marks: %w", err)
	}

	marksByOperID := make(map[string]domain.AuditMark, len(marks))
	for _, mark := range marks {
		marksByOperID[mark.OperationID] = mark
	}

	resp := &dto.AuditOverviewResponse{Operations: make([]dto.AuditOverviewRow, 0, len(report))}
	for _, item := range report {
		operID := fmt.Sprintf("%s-%d", domain.AuditPrefixForReportType(item.OperationType), item.OperationID)
		status := domain.AuditUnchecked
		if mark, ok := marksByOperID[operID]; ok {
			status = mark.AuditStatus
		}

		resp.Operations = append(resp.Operations, dto.AuditOverviewRow{
			ManagerReportItem: item,
			OperID:            operID,
			AuditStatus:       status,
		})
		resp.Total++
		switch status {
		case domain.AuditChecked:
			resp.Checked++
		case domain.AuditErrorFound:
			resp.Errors++
		default:
			resp.Unchecked++
		}
	}
	return resp, nil
}
