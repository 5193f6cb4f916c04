package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mamunbank/bank_trainer_app/internal/apperrors"
	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	portsrepo "github.com/mamunbank/bank_trainer_app/internal/core/ports/repositories"
	portssvc "github.com/mamunbank/bank_trainer_app/internal/core/ports/services"
	"github.com/mamunbank/bank_trainer_app/internal/dto"
	"github.com/mamunbank/bank_trainer_app/internal/middleware"
	"github.com/mamunbank/bank_trainer_app/internal/utils"
)

// AuthService issues trainee sessions. The simulator has no passwords: a
// student picks a display name and a role, and the whole session lives in
// the signed token plus the session state.
type AuthService struct {
	sessionRepo portsrepo.SessionRepositoryFacade
	jwtSecret   string
	jwtExpiry   time.Duration
	jwtIssuer   string
}

var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

func NewAuthService(sessionRepo portsrepo.SessionRepositoryFacade, jwtSecret string, jwtExpiry time.Duration, jwtIssuer string) *AuthService {
	return &AuthService{
		sessionRepo: sessionRepo,
		jwtSecret:   jwtSecret,
		jwtExpiry:   jwtExpiry,
		jwtIssuer:   jwtIssuer,
	}
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if !domain.IsKnownRole(req.Role) {
		return nil, fmt.Errorf("unknown role %q: %w", req.Role, apperrors.ErrValidation)
	}

	user := domain.User{
		UserID:    uuid.NewString(),
		Name:      req.Name,
		Role:      domain.Role(req.Role),
		CreatedAt: time.Now(),
	}
	if err := s.sessionRepo.SetCurrentUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to store session user: %w", err)
	}

	token, err := utils.GenerateJWT(user, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Trainee logged in",
		slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return &dto.LoginResponse{User: user, Token: token}, nil
}

// Logout resets the whole session state back to the seeded defaults, the
// same way closing the trainer and starting over would.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessionRepo.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset session: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Session reset on logout")
	return nil
}
