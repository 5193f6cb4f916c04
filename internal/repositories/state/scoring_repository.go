package state

import (
	"context"

	"github.com/mamunbank/bank_trainer_app/internal/apperrors"
	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	portsrepo "github.com/mamunbank/bank_trainer_app/internal/core/ports/repositories"
)

var _ portsrepo.ScoreRepositoryFacade = (*Store)(nil)

func (s *Store) StudentScore(ctx context.Context) (domain.StudentScore, error) {
	var score domain.StudentScore
	s.read(func(st *sessionState) { score = st.StudentScore })
	return score, nil
}

func (s *Store) SaveStudentScore(ctx context.Context, score domain.StudentScore) error {
	s.update(func(st *sessionState) { st.StudentScore = score })
	return nil
}

func (s *Store) AddManualScore(ctx context.Context, score domain.ManualScore) error {
	s.update(func(st *sessionState) { st.ManualScores = append(st.ManualScores, score) })
	return nil
}

// UpdateManualScore replaces the entry carrying the same id.
func (s *Store) UpdateManualScore(ctx context.Context, score domain.ManualScore) error {
	err := apperrors.ErrNotFound
	s.update(func(st *sessionState) {
		for i := range st.ManualScores {
			if st.ManualScores[i].ID == score.ID {
				st.ManualScores[i] = score
				err = nil
				return
			}
		}
	})
	return err
}

func (s *Store) FindManualScoreByID(ctx context.Context, id string) (*domain.ManualScore, error) {
	var found *domain.ManualScore
	s.read(func(st *sessionState) {
		for i := range st.ManualScores {
			if st.ManualScores[i].ID == id {
				m := st.ManualScores[i]
				found = &m
				return
			}
		}
	})
	if found == nil {
		return nil, apperrors.ErrNotFound
	}
	return found, nil
}

func (s *Store) ListManualScores(ctx context.Context) ([]domain.ManualScore, error) {
	var out []domain.ManualScore
	s.read(func(st *sessionState) { out = copySlice(st.ManualScores) })
	return out, nil
}
