package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	portssvc "github.com/mamunbank/bank_trainer_app/internal/core/ports/services"
	"github.com/mamunbank/bank_trainer_app/internal/dto"
	"github.com/mamunbank/bank_trainer_app/internal/handlers"
	"github.com/mamunbank/bank_trainer_app/internal/platform/config"
	"github.com/mamunbank/bank_trainer_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ScoringService ---
type MockScoringSvc struct {
	mock.Mock
}

func (m *MockScoringSvc) Score(ctx context.Context) (domain.StudentScore, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.StudentScore), args.Error(1)
}

func (m *MockScoringSvc) RecordCorrectOperation(ctx context.Context) (domain.StudentScore, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.StudentScore), args.Error(1)
}

func (m *MockScoringSvc) RecordMistake(ctx context.Context) (domain.StudentScore, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.StudentScore), args.Error(1)
}

func (m *MockScoringSvc) AddManualScore(ctx context.Context, req dto.CreateManualScoreRequest, assigner domain.User) (*domain.ManualScore, error) {
	args := m.Called(ctx, req, assigner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ManualScore), args.Error(1)
}

func (m *MockScoringSvc) UpdateManualScore(ctx context.Context, id string, req dto.UpdateManualScoreRequest) (*domain.ManualScore, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ManualScore), args.Error(1)
}

func (m *MockScoringSvc) ListManualScores(ctx context.Context) ([]domain.ManualScore, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ManualScore), args.Error(1)
}

func (m *MockScoringSvc) StudentSummaries(ctx context.Context) ([]dto.StudentScoreSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.StudentScoreSummary), args.Error(1)
}

var _ portssvc.ScoringSvcFacade = (*MockScoringSvc)(nil)

// --- Test Suite ---
type ScoreHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockScoring *MockScoringSvc
	jwtSecret   string
}

func (suite *ScoreHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockScoring = new(MockScoringSvc)

	cfg := &config.Config{JWTSecret: suite.jwtSecret}
	services := &portssvc.ServiceContainer{Scoring: suite.mockScoring}
	handlers.RegisterRoutes(suite.router, cfg, services, nil)
}

func (suite *ScoreHandlerTestSuite) generateTestToken(role domain.Role) string {
	user := domain.User{UserID: "test-user", Name: "Test User", Role: role}
	token, err := utils.GenerateJWT(user, suite.jwtSecret, time.Hour, "test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *ScoreHandlerTestSuite) doRequest(method, url string, body any, role domain.Role) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(role))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ScoreHandlerTestSuite) TestGetScore() {
	expected := domain.StudentScore{UserID: "test-user", Score: 30, CorrectCount: 3, PenaltyStatus: domain.PenaltyNormal}
	suite.mockScoring.On("Score", mock.Anything).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/score", nil, domain.RoleKassir)

	suite.Equal(http.StatusOK, w.Code)
	var got domain.StudentScore
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(expected, got)
	suite.mockScoring.AssertExpectations(suite.T())
}

func (suite *ScoreHandlerTestSuite) TestAddManualScore_RequiresInstructorRole() {
	req := dto.CreateManualScoreRequest{StudentName: "Aziza Karimova", Score: 85}

	w := suite.doRequest(http.MethodPost, "/api/v1/manual-scores", req, domain.RoleKassir)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockScoring.AssertNotCalled(suite.T(), "AddManualScore", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ScoreHandlerTestSuite) TestAddManualScore_AsInstructor() {
	req := dto.CreateManualScoreRequest{StudentName: "Aziza Karimova", Score: 85, Comment: "yaxshi"}
	expected := &domain.ManualScore{ID: "ms-1", StudentID: "aziza-karimova", Score: 85}

	suite.mockScoring.On("AddManualScore", mock.Anything, req, mock.MatchedBy(func(u domain.User) bool {
		return u.Role == domain.RoleRahbar
	})).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/manual-scores", req, domain.RoleRahbar)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockScoring.AssertExpectations(suite.T())
}

func (suite *ScoreHandlerTestSuite) TestGetScore_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/score", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

// --- Run Suite ---
func TestScoreHandler(t *testing.T) {
	suite.Run(t, new(ScoreHandlerTestSuite))
}
