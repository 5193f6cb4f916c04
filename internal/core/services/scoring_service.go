package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	portsrepo "github.com/mamunbank/bank_trainer_app/internal/core/ports/repositories"
	portssvc "github.com/mamunbank/bank_trainer_app/internal/core/ports/services"
	"github.com/mamunbank/bank_trainer_app/internal/dto"
)

// ScoringService maintains the automatic trainee score and the manual scores
// a supervisor hands out.
type ScoringService struct {
	scoreRepo portsrepo.ScoreRepositoryFacade
}

var _ portssvc.ScoringSvcFacade = (*ScoringService)(nil)

func NewScoringService(scoreRepo portsrepo.ScoreRepositoryFacade) *ScoringService {
	return &ScoringService{scoreRepo: scoreRepo}
}

func (s *ScoringService) Score(ctx context.Context) (domain.StudentScore, error) {
	return s.scoreRepo.StudentScore(ctx)
}

// RecordCorrectOperation credits the trainee for one correct operation.
func (s *ScoringService) RecordCorrectOperation(ctx context.Context) (domain.StudentScore, error) {
	score, err := s.scoreRepo.StudentScore(ctx)
	if err != nil {
		return domain.StudentScore{}, fmt.Errorf("failed to load student score: %w", err)
	}
	score = score.ApplyCorrect()
	if err := s.scoreRepo.SaveStudentScore(ctx, score); err != nil {
		return domain.StudentScore{}, fmt.Errorf("failed to save student score: %w", err)
	}
	return score, nil
}

// RecordMistake debits the trainee for one mistake and re-derives the
// penalty standing.
func (s *ScoringService) RecordMistake(ctx context.Context) (domain.StudentScore, error) {
	score, err := s.scoreRepo.StudentScore(ctx)
	if err != nil {
		return domain.StudentScore{}, fmt.Errorf("failed to load student score: %w", err)
	}
	score = score.ApplyMistake()
	if err := s.scoreRepo.SaveStudentScore(ctx, score); err != nil {
		return domain.StudentScore{}, fmt.Errorf("failed to save student score: %w", err)
	}
	return score, nil
}

// AddManualScore records a supervisor-assigned score. The student id is
// derived from the display name; the session id groups scores by day.
func (s *ScoringService) AddManualScore(ctx context.Context, req dto.CreateManualScoreRequest, assigner domain.User) (*domain.ManualScore, error) {
	now := time.Now()
	score := domain.ManualScore{
		ID:             uuid.NewString(),
		StudentID:      studentIDFromName(req.StudentName),
		StudentName:    req.StudentName,
		AssignedBy:     assigner.UserID,
		AssignedByName: assigner.Name,
		Score:          req.Score,
		Comment:        req.Comment,
		SessionID:      "SESSION-" + now.Format("2006-01-02"),
		CreatedAt:      now,
	}
	if err := s.scoreRepo.AddManualScore(ctx, score); err != nil {
		return nil, fmt.Errorf("failed to add manual score: %w", err)
	}
	return &score, nil
}

func (s *ScoringService) UpdateManualScore(ctx context.Context, id string, req dto.UpdateManualScoreRequest) (*domain.ManualScore, error) {
	existing, err := s.scoreRepo.FindManualScoreByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find manual score %s: %w", id, err)
	}
	existing.Score = req.Score
	existing.Comment = req.Comment
	if err := s.scoreRepo.UpdateManualScore(ctx, *existing); err != nil {
		return nil, fmt.Errorf("failed to update manual score %s: %w", id, err)
	}
	return existing, nil
}

func (s *ScoringService) ListManualScores(ctx context.Context) ([]domain.ManualScore, error) {
	scores, err := s.scoreRepo.ListManualScores(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list manual scores: %w", err)
	}
	if scores == nil {
		return []domain.ManualScore{}, nil
	}
	return scores, nil
}

// StudentSummaries folds the manual scores into one total per student.
func (s *ScoringService) StudentSummaries(ctx context.Context) ([]dto.StudentScoreSummary, error) {
	scores, err := s.scoreRepo.ListManualScores(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list manual scores: %w", err)
	}

	byStudent := make(map[string]*dto.StudentScoreSummary)
	order := make([]string, 0)
	for _, score := range scores {
		summary, ok := byStudent[score.StudentID]
		if !ok {
			summary = &dto.StudentScoreSummary{StudentID: score.StudentID, StudentName: score.StudentName}
			byStudent[score.StudentID] = summary
			order = append(order, score.StudentID)
		}
		summary.Total += score.Score
		summary.Count++
	}

	out := make([]dto.StudentScoreSummary, 0, len(order))
	for _, id := range order {
		out = append(out, *byStudent[id])
	}
	return out, nil
}

// studentIDFromName normalizes a display name into a stable id, so repeated
// scores for the same name fold together.
func studentIDFromName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
