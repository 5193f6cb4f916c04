package dto

import (
	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatsResponse is the dashboard aggregate over the local operation lists.
// TotalAmount sums the cash-in list only, keyed by currency.
type StatsResponse struct {
	TotalOperations int                                 `json:"totalOperations"`
	TodayOperations int                                 `json:"todayOperations"`
	TotalClients    int                                 `json:"totalClients"`
	TotalAmount     map[domain.Currency]decimal.Decimal `json:"totalAmount"`
}

// DailyReportResponse is the end-of-day summary: per-type counts for today,
// incoming cash (cash-in) and outgoing cash (cash-out plus disbursed loans)
// per currency, and the trainee's current standing.
type DailyReportResponse struct {
	TotalOperations int                                 `json:"totalOperations"`
	CashIn          int                                 `json:"cashIn"`
	CashOut         int                                 `json:"cashOut"`
	FX              int                                 `json:"fx"`
	Cards           int                                 `json:"cards"`
	Deposits        int                                 `json:"deposits"`
	Loans           int                                 `json:"loans"`
	TotalIncoming   map[domain.Currency]decimal.Decimal `json:"totalIncoming"`
	TotalOutgoing   map[domain.Currency]decimal.Decimal `json:"totalOutgoing"`
	ErrorCount      int                                 `json:"errorCount"`
	Score           int                                 `json:"score"`
}

// SyncResultResponse reports per-resource outcomes of a full refresh from
// the training API. A missing key means the resource was not attempted.
type SyncResultResponse map[string]string
