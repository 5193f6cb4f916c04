package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mamunbank/bank_trainer_app/internal/apperrors"
	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	portsrepo "github.com/mamunbank/bank_trainer_app/internal/core/ports/repositories"
	portssvc "github.com/mamunbank/bank_trainer_app/internal/core/ports/services"
	"github.com/mamunbank/bank_trainer_app/internal/dto"
)

// ReferenceService manages the small operation-code reference table.
type ReferenceService struct {
	refRepo portsrepo.ReferenceRepositoryFacade
}

var _ portssvc.ReferenceSvcFacade = (*ReferenceService)(nil)

func NewReferenceService(refRepo portsrepo.ReferenceRepositoryFacade) *ReferenceService {
	return &ReferenceService{refRepo: refRepo}
}

func (s *ReferenceService) ListCodes(ctx context.Context) ([]domain.OperationCode, error) {
	codes, err := s.refRepo.ListOperationCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list operation codes: %w", err)
	}
	if codes == nil {
		return []domain.OperationCode{}, nil
	}
	return codes, nil
}

func (s *ReferenceService) CreateCode(ctx context.Context, req dto.OperationCodeRequest) (*domain.OperationCode, error) {
	if _, err := s.refRepo.FindOperationCode(ctx, req.Code); err == nil {
		return nil, fmt.Errorf("operation code %s already exists: %w", req.Code, apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check operation code %s: %w", req.Code, err)
	}

	status := domain.OperationCodeStatus(req.Status)
	if status == "" {
		status = domain.CodeActive
	}
	code := domain.OperationCode{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
	}
	if err := s.refRepo.SaveOperationCode(ctx, code); err != nil {
		return nil, fmt.Errorf("failed to save operation code %s: %w", req.Code, err)
	}
	return &code, nil
}

func (s *ReferenceService) UpdateCode(ctx context.Context, codeValue string, req dto.UpdateOperationCodeRequest) (*domain.OperationCode, error) {
	existing, err := s.refRepo.FindOperationCode(ctx, codeValue)
	if err != nil {
		return nil, fmt.Errorf("failed to find operation code %s: %w", codeValue, err)
	}
	existing.Name = req.Name
	existing.Description = req.Description
	existing.Status = domain.OperationCodeStatus(req.Status)
	if err := s.refRepo.SaveOperationCode(ctx, *existing); err != nil {
		return nil, fmt.Errorf("failed to update operation code %s: %w", codeValue, err)
	}
	return existing, nil
}

func (s *ReferenceService) DeleteCode(ctx context.Context, code string) error {
	if err := s.refRepo.DeleteOperationCode(ctx, code); err != nil {
		return fmt.Errorf("failed to delete operation code %s: %w", code, err)
	}
	return nil
}

// ResetCodes restores the seeded default table.
func (s *ReferenceService) ResetCodes(ctx context.Context) ([]domain.OperationCode, error) {
	defaults := domain.DefaultOperationCodes()
	if err := s.refRepo.ReplaceOperationCodes(ctx, defaults); err != nil {
		return nil, fmt.Errorf("failed to reset operation codes: %w", err)
	}
	return defaults, nil
}
