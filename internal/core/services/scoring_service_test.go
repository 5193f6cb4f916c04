package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	portssvc "github.com/mamunbank/bank_trainer_app/internal/core/ports/services"
	"github.com/mamunbank/bank_trainer_app/internal/core/services"
	"github.com/mamunbank/bank_trainer_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ScoringServiceTestSuite struct {
	suite.Suite
	mockRepo *MockScoreRepository
	service  portssvc.ScoringSvcFacade
}

func (suite *ScoringServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockScoreRepository)
	suite.service = services.NewScoringService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *ScoringServiceTestSuite) TestRecordCorrectOperation() {
	ctx := context.Background()
	current := domain.StudentScore{UserID: "u1", Score: 30, CorrectCount: 3, PenaltyStatus: domain.PenaltyNormal}

	suite.mockRepo.On("StudentScore", ctx).Return(current, nil).Once()
	suite.mockRepo.On("SaveStudentScore", ctx, mock.MatchedBy(func(s domain.StudentScore) bool {
		return s.Score == 40 && s.CorrectCount == 4 && s.ErrorCount == 0
	})).Return(nil).Once()

	score, err := suite.service.RecordCorrectOperation(ctx)

	suite.Require().NoError(err)
	suite.Equal(40, score.Score)
	suite.Equal(4, score.CorrectCount)
	suite.Equal(domain.PenaltyNormal, score.PenaltyStatus)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ScoringServiceTestSuite) TestRecordMistake_FlooredAtZero() {
	ctx := context.Background()
	current := domain.StudentScore{UserID: "u1", Score: 3, PenaltyStatus: domain.PenaltyNormal}

	suite.mockRepo.On("StudentScore", ctx).Return(current, nil).Once()
	suite.mockRepo.On("SaveStudentScore", ctx, mock.AnythingOfType("domain.StudentScore")).Return(nil).Once()

	score, err := suite.service.RecordMistake(ctx)

	suite.Require().NoError(err)
	suite.Equal(0, score.Score)
	suite.Equal(1, score.ErrorCount)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ScoringServiceTestSuite) TestRecordMistake_PenaltyThresholds() {
	ctx := context.Background()

	testCases := []struct {
		name           string
		priorErrors    int
		expectedStatus domain.PenaltyStatus
	}{
		{"second mistake stays normal", 1, domain.PenaltyNormal},
		{"third mistake warns", 2, domain.PenaltyWarning},
		{"fifth mistake penalizes", 4, domain.PenaltyPenalty},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			current := domain.StudentScore{UserID: "u1", Score: 100, ErrorCount: tc.priorErrors}
			suite.mockRepo.On("StudentScore", ctx).Return(current, nil).Once()
			suite.mockRepo.On("SaveStudentScore", ctx, mock.AnythingOfType("domain.StudentScore")).Return(nil).Once()

			score, err := suite.service.RecordMistake(ctx)

			suite.Require().NoError(err)
			suite.Equal(tc.priorErrors+1, score.ErrorCount)
			suite.Equal(tc.expectedStatus, score.PenaltyStatus)
		})
	}
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ScoringServiceTestSuite) TestAddManualScore() {
	ctx := context.Background()
	assigner := domain.User{UserID: uuid.NewString(), Name: "Rahbar aka", Role: domain.RoleRahbar}
	req := dto.CreateManualScoreRequest{StudentName: "Aziza Karimova", Score: 85, Comment: "yaxshi"}
	expectedSession := "SESSION-" + time.Now().Format("2006-01-02")

	suite.mockRepo.On("AddManualScore", ctx, mock.MatchedBy(func(s domain.ManualScore) bool {
		return s.StudentID == "aziza-karimova" && s.SessionID == expectedSession && s.AssignedBy == assigner.UserID
	})).Return(nil).Once()

	score, err := suite.service.AddManualScore(ctx, req, assigner)

	suite.Require().NoError(err)
	suite.Require().NotNil(score)
	suite.Equal("aziza-karimova", score.StudentID)
	suite.Equal(85, score.Score)
	suite.NotEmpty(score.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ScoringServiceTestSuite) TestUpdateManualScore_NotFound() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("FindManualScoreByID", ctx, "missing").Return(nil, expectedErr).Once()

	score, err := suite.service.UpdateManualScore(ctx, "missing", dto.UpdateManualScoreRequest{Score: 50})

	suite.Require().Error(err)
	suite.Nil(score)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ScoringServiceTestSuite) TestStudentSummaries_FoldsByStudent() {
	ctx := context.Background()
	scores := []domain.ManualScore{
		{ID: "1", StudentID: "aziza-karimova", StudentName: "Aziza Karimova", Score: 80},
		{ID: "2", StudentID: "bobur-aliev", StudentName: "Bobur Aliev", Score: 60},
		{ID: "3", StudentID: "aziza-karimova", StudentName: "Aziza Karimova", Score: 90},
	}

	suite.mockRepo.On("ListManualScores", ctx).Return(scores, nil).Once()

	summaries, err := suite.service.StudentSummaries(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(summaries, 2)
	suite.Equal("aziza-karimova", summaries[0].StudentID)
	suite.Equal(170, summaries[0].Total)
	suite.Equal(2, summaries[0].Count)
	suite.Equal("bobur-aliev", summaries[1].StudentID)
	suite.Equal(60, summaries[1].Total)
	suite.Equal(1, summaries[1].Count)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestScoringService(t *testing.T) {
	suite.Run(t, new(ScoringServiceTestSuite))
}
