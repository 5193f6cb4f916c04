package state

import (
	"context"

	"github.com/mamunbank/bank_trainer_app/internal/apperrors"
	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	portsrepo "github.com/mamunbank/bank_trainer_app/internal/core/ports/repositories"
)

var _ portsrepo.SessionRepositoryFacade = (*Store)(nil)

// CurrentUser returns the logged-in trainee, or ErrNotFound when nobody is
// logged in.
func (s *Store) CurrentUser(ctx context.Context) (*domain.User, error) {
	var user *domain.User
	s.read(func(st *sessionState) {
		if st.CurrentUser != nil {
			u := *st.CurrentUser
			user = &u
		}
	})
	if user == nil {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

// SetCurrentUser stores the session identity and ties the student score to it.
func (s *Store) SetCurrentUser(ctx context.Context, user domain.User) error {
	s.update(func(st *sessionState) {
		u := user
		st.CurrentUser = &u
		if st.StudentScore.UserID == "" {
			st.StudentScore.UserID = user.UserID
		}
	})
	return nil
}

// UpdateUserRole switches the current trainee to another role.
func (s *Store) UpdateUserRole(ctx context.Context, role domain.Role) error {
	err := apperrors.ErrNotFound
	s.update(func(st *sessionState) {
		if st.CurrentUser != nil {
			st.CurrentUser.Role = role
			err = nil
		}
	})
	return err
}

// Reset clears the whole session back to the seeded defaults. Used on logout.
func (s *Store) Reset(ctx context.Context) error {
	s.update(func(st *sessionState) {
		*st = defaultState()
	})
	return nil
}
