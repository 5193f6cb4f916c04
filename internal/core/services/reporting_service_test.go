package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	portssvc "github.com/mamunbank/bank_trainer_app/internal/core/ports/services"
	"github.com/mamunbank/bank_trainer_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockAPI        *MockTrainingAPI
	mockOpRepo     *MockOperationRepository
	mockLoanRepo   *MockLoanRepository
	mockClientRepo *MockClientRepository
	mockScoreRepo  *MockScoreRepository
	mockReportRepo *MockReportRepository
	service        portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockAPI = new(MockTrainingAPI)
	suite.mockOpRepo = new(MockOperationRepository)
	suite.mockLoanRepo = new(MockLoanRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockScoreRepo = new(MockScoreRepository)
	suite.mockReportRepo = new(MockReportRepository)

	// SyncAll delegates to the real client/operation services; their refresh
	// paths only touch the API and the replace methods.
	clientSvc := services.NewClientService(suite.mockAPI, suite.mockClientRepo)
	operationSvc := services.NewOperationService(
		suite.mockAPI, suite.mockOpRepo, new(MockActivityRepository), suite.mockClientRepo,
		new(MockLedgerService), new(MockScoringService),
	)
	suite.service = services.NewReportingService(
		suite.mockAPI,
		suite.mockOpRepo,
		suite.mockLoanRepo,
		suite.mockClientRepo,
		suite.mockScoreRepo,
		suite.mockReportRepo,
		clientSvc,
		operationSvc,
	)
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestStats_CountsRemoteListsOnly() {
	ctx := context.Background()
	today := time.Now()
	lastWeek := today.AddDate(0, 0, -7)

	suite.mockOpRepo.On("ListCashIn", ctx).Return([]domain.CashIn{
		{OperID: "CI-1", OccurredAt: today, Currency: domain.UZS, Amount: decimal.NewFromInt(500000)},
		{OperID: "CI-2", OccurredAt: lastWeek, Currency: domain.USD, Amount: decimal.NewFromInt(100)},
	}, nil).Once()
	suite.mockOpRepo.On("ListCashOut", ctx).Return([]domain.CashOut{
		{OperID: "CO-1", OccurredAt: today, Currency: domain.UZS, Amount: decimal.NewFromInt(200000)},
	}, nil).Once()
	suite.mockOpRepo.On("ListFX", ctx).Return([]domain.FXOperation{}, nil).Once()
	suite.mockOpRepo.On("ListCards", ctx).Return([]domain.CardOpen{}, nil).Once()
	suite.mockOpRepo.On("ListDeposits", ctx).Return([]domain.DepositOpen{
		{OperID: "DEP-1", OccurredAt: lastWeek, Currency: domain.UZS, Amount: decimal.NewFromInt(900000)},
	}, nil).Once()
	suite.mockClientRepo.On("ListClients", ctx).Return([]domain.Client{{ClientID: "1"}, {ClientID: "2"}}, nil).Once()

	stats, err := suite.service.Stats(ctx)

	suite.Require().NoError(err)
	suite.Equal(4, stats.TotalOperations)
	suite.Equal(2, stats.TodayOperations)
	suite.Equal(2, stats.TotalClients)
	// Amount totals come from the cash-in list alone
	suite.True(stats.TotalAmount[domain.UZS].Equal(decimal.NewFromInt(500000)),
		"unexpected UZS total %s", stats.TotalAmount[domain.UZS])
	suite.True(stats.TotalAmount[domain.USD].Equal(decimal.NewFromInt(100)))
	suite.True(stats.TotalAmount[domain.EUR].IsZero())
	suite.mockOpRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestDailyReport_TodayOnly() {
	ctx := context.Background()
	today := time.Now()
	yesterday := today.AddDate(0, 0, -1)

	suite.mockOpRepo.On("ListCashIn", ctx).Return([]domain.CashIn{
		{OperID: "CI-1", OccurredAt: today, Currency: domain.UZS, Amount: decimal.NewFromInt(300000)},
		{OperID: "CI-2", OccurredAt: yesterday, Currency: domain.UZS, Amount: decimal.NewFromInt(999999)},
	}, nil).Once()
	suite.mockOpRepo.On("ListCashOut", ctx).Return([]domain.CashOut{
		{OperID: "CO-1", OccurredAt: today, Currency: domain.UZS, Amount: decimal.NewFromInt(100000)},
	}, nil).Once()
	suite.mockOpRepo.On("ListFX", ctx).Return([]domain.FXOperation{
		{OperID: "FX-1", OccurredAt: today},
	}, nil).Once()
	suite.mockOpRepo.On("ListCards", ctx).Return([]domain.CardOpen{}, nil).Once()
	suite.mockOpRepo.On("ListDeposits", ctx).Return([]domain.DepositOpen{}, nil).Once()
	suite.mockLoanRepo.On("ListLoans", ctx).Return([]domain.LoanApplicationRecord{
		{OperID: "LOAN-1", OccurredAt: today, Currency: domain.UZS, Amount: decimal.NewFromInt(5000000)},
		{OperID: "LOAN-2", OccurredAt: yesterday, Currency: domain.UZS, Amount: decimal.NewFromInt(7000000)},
	}, nil).Once()
	suite.mockScoreRepo.On("StudentScore", ctx).Return(domain.StudentScore{Score: 45, ErrorCount: 2}, nil).Once()

	report, err := suite.service.DailyReport(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, report.CashIn)
	suite.Equal(1, report.CashOut)
	suite.Equal(1, report.FX)
	suite.Equal(0, report.Cards)
	suite.Equal(1, report.Loans)
	suite.Equal(4, report.TotalOperations)
	suite.True(report.TotalIncoming[domain.UZS].Equal(decimal.NewFromInt(300000)))
	// Outgoing cash is today's cash-out plus today's disbursed loans
	suite.True(report.TotalOutgoing[domain.UZS].Equal(decimal.NewFromInt(5100000)),
		"unexpected outgoing %s", report.TotalOutgoing[domain.UZS])
	suite.Equal(45, report.Score)
	suite.Equal(2, report.ErrorCount)
	suite.mockScoreRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestRefreshManagerReport() {
	ctx := context.Background()
	items := []domain.ManagerReportItem{{ID: 1, OperationType: "cash_in"}}

	suite.mockAPI.On("ListManagerReport", ctx).Return(items, nil).Once()
	suite.mockReportRepo.On("ReplaceManagerReport", ctx, items).Return(nil).Once()

	err := suite.service.RefreshManagerReport(ctx)

	suite.Require().NoError(err)
	suite.mockAPI.AssertExpectations(suite.T())
	suite.mockReportRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestSyncAll_ReportsPerResourceOutcome() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockAPI.On("ListClients", ctx).Return([]domain.Client{}, nil).Once()
	suite.mockClientRepo.On("ReplaceClients", ctx, mock.Anything).Return(nil).Once()
	suite.mockAPI.On("ListCashIn", ctx).Return([]domain.CashIn{}, nil).Once()
	suite.mockOpRepo.On("ReplaceCashIn", ctx, mock.Anything).Return(nil).Once()
	suite.mockAPI.On("ListCashOut", ctx).Return(nil, expectedErr).Once()
	suite.mockAPI.On("ListFX", ctx).Return([]domain.FXOperation{}, nil).Once()
	suite.mockOpRepo.On("ReplaceFX", ctx, mock.Anything).Return(nil).Once()
	suite.mockAPI.On("ListCards", ctx).Return([]domain.CardOpen{}, nil).Once()
	suite.mockOpRepo.On("ReplaceCards", ctx, mock.Anything).Return(nil).Once()
	suite.mockAPI.On("ListDeposits", ctx).Return([]domain.DepositOpen{}, nil).Once()
	suite.mockOpRepo.On("ReplaceDeposits", ctx, mock.Anything).Return(nil).Once()
	suite.mockAPI.On("ListManagerReport", ctx).Return([]domain.ManagerReportItem{}, nil).Once()
	suite.mockReportRepo.On("ReplaceManagerReport", ctx, mock.Anything).Return(nil).Once()

	result := suite.service.SyncAll(ctx)

	suite.Equal("ok", result["clients"])
	suite.Equal("ok", result["cash_in"])
	suite.Contains(result["cash_out"], expectedErr.Error())
	suite.Equal("ok", result["currency_exchange"])
	suite.Equal("ok", result["card_applications"])
	suite.Equal("ok", result["deposits"])
	suite.Equal("ok", result["manager_report"])
	suite.mockAPI.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
