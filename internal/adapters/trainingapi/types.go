package trainingapi

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// The training backend wraps list responses in {status, data: {items: [...]}}
// and create responses in a looser shape that differs per resource; the create
// envelope below carries every variant it is known to emit.

type listEnvelope struct {
	Status int `json:"status"`
	Data   struct {
		Items json.RawMessage `json:"items"`
	} `json:"data"`
}

type createEnvelope struct {
	Status   int         `json:"status"`
	OperID   string      `json:"oper_id"`
	ClientID json.Number `json:"client_id"`
	Message  string      `json:"message"`
	Data     struct {
		ID            int64  `json:"id"`
		OperID        string `json:"oper_id"`
		OperationDate string `json:"operation_date"`
		ClientName    string `json:"client_name"`
	} `json:"data"`
}

type clientItem struct {
	ID                   int64  `json:"id"`
	FullName             string `json:"full_name"`
	BirthDate            string `json:"birth_date"`
	Phone                string `json:"phone"`
	PassportSeriesNumber string `json:"passport_series_number"`
	PassportIssuedDate   string `json:"passport_issued_date"`
	Address              string `json:"address"`
	Notes                string `json:"notes"`
	CreatedAt            string `json:"created_at"`
}

type cashItem struct {
	ID            int64           `json:"id"`
	OperationDate string          `json:"operation_date"`
	OperatorName  string          `json:"operator_name"`
	ClientID      json.Number     `json:"client_id"`
	ClientName    string          `json:"client_name"`
	Currency      string          `json:"currency"`
	Amount        decimal.Decimal `json:"amount"`
	Purpose       string          `json:"purpose"`
	Reason        string          `json:"reason"`
	Notes         string          `json:"notes"`
	Status        string          `json:"status"`
	PrintCount    int             `json:"print_count"`
}

type fxItem struct {
	ID                int64            `json:"id"`
	OperationDate     string           `json:"operation_date"`
	OperatorName      string           `json:"operator_name"`
	ClientID          json.Number      `json:"client_id"`
	ClientName        string           `json:"client_name"`
	OperationType     string           `json:"operation_type"`
	GivenCurrency     string           `json:"given_currency"`
	GivenAmount       decimal.Decimal  `json:"given_amount"`
	ReceivedCurrency  string           `json:"received_currency"`
	ReceivedAmount    *decimal.Decimal `json:"received_amount"`
	ExchangeRate      decimal.Decimal  `json:"exchange_rate"`
	CommissionPercent decimal.Decimal  `json:"commission_percent"`
	Notes             string           `json:"notes"`
	Status            string           `json:"status"`
}

type cardItem struct {
	ID              int64           `json:"id"`
	OperationDate   string          `json:"operation_date"`
	OperatorName    string          `json:"operator_name"`
	ClientID        json.Number     `json:"client_id"`
	ClientName      string          `json:"client_name"`
	CardType        string          `json:"card_type"`
	Currency        string          `json:"currency"`
	SMSNotification bool            `json:"sms_notification"`
	Phone           string          `json:"phone"`
	DeliveryType    string          `json:"delivery_type"`
	InitialDeposit  decimal.Decimal `json:"initial_deposit"`
	CardStatus      string          `json:"card_status"`
	Status          string          `json:"status"`
}

type depositItem struct {
	ID            int64           `json:"id"`
	OperationDate string          `json:"operation_date"`
	OperatorName  string          `json:"operator_name"`
	ClientID      json.Number     `json:"client_id"`
	ClientName    string          `json:"client_name"`
	DepositType   string          `json:"deposit_type"`
	Currency      string          `json:"currency"`
	Amount        decimal.Decimal `json:"amount"`
	TermMonths    int             `json:"term_months"`
	InterestRate  decimal.Decimal `json:"interest_rate"`
	Status        string          `json:"status"`
}

type createClientPayload struct {
	FullName             string `json:"full_name"`
	Phone                string `json:"phone"`
	PassportSeriesNumber string `json:"passport_series_number"`
	BirthDate            string `json:"birth_date"`
	PassportIssuedDate   string `json:"passport_issued_date"`
	Address              string `json:"address"`
	Notes                string `json:"notes"`
}

type createCashInPayload struct {
	OperationDate string          `json:"operation_date"`
	OperatorName  string          `json:"operator_name"`
	ClientID      int64           `json:"client_id"`
	Currency      string          `json:"currency"`
	Amount        decimal.Decimal `json:"amount"`
	Purpose       string          `json:"purpose"`
	OperatorRole  string          `json:"operator_role"`
	BankName      string          `json:"bank_name"`
	BranchName    string          `json:"branch_name"`
	Notes         string          `json:"notes"`
	Status        string          `json:"status"`
}

type createCashOutPayload struct {
	OperationDate string          `json:"operation_date"`
	OperatorName  string          `json:"operator_name"`
	ClientID      int64           `json:"client_id"`
	Currency      string          `json:"currency"`
	Amount        decimal.Decimal `json:"amount"`
	Reason        string          `json:"reason"`
	OperatorRole  string          `json:"operator_role"`
	BankName      string          `json:"bank_name"`
	BranchName    string          `json:"branch_name"`
	Notes         string          `json:"notes"`
	Status        string          `json:"status"`
}

type createFXPayload struct {
	OperationDate     string          `json:"operation_date"`
	OperatorName      string          `json:"operator_name"`
	ClientID          int64           `json:"client_id"`
	OperationType     string          `json:"operation_type"`
	GivenCurrency     string          `json:"given_currency"`
	GivenAmount       decimal.Decimal `json:"given_amount"`
	ReceivedCurrency  string          `json:"received_currency"`
	ExchangeRate      decimal.Decimal `json:"exchange_rate"`
	CommissionPercent decimal.Decimal `json:"commission_percent"`
	OperatorRole      string          `json:"operator_role"`
	BankName          string          `json:"bank_name"`
	BranchName        string          `json:"branch_name"`
	Notes             string          `json:"notes"`
	Status            string          `json:"status"`
}

type createCardPayload struct {
	OperationDate   string          `json:"operation_date"`
	OperatorName    string          `json:"operator_name"`
	ClientID        int64           `json:"client_id"`
	CardType        string          `json:"card_type"`
	Currency        string          `json:"currency"`
	Phone           string          `json:"phone"`
	DeliveryType    string          `json:"delivery_type"`
	SMSNotification bool            `json:"sms_notification"`
	InitialDeposit  decimal.Decimal `json:"initial_deposit"`
	CardStatus      string          `json:"card_status"`
	OperatorRole    string          `json:"operator_role"`
	BankName        string          `json:"bank_name"`
	BranchName      string          `json:"branch_name"`
	Notes           string          `json:"notes"`
	Status          string          `json:"status"`
}

type createDepositPayload struct {
	OperationDate string          `json:"operation_date"`
	OperatorName  string          `json:"operator_name"`
	ClientID      int64           `json:"client_id"`
	DepositType   string          `json:"deposit_type"`
	Currency      string          `json:"currency"`
	Amount        decimal.Decimal `json:"amount"`
	TermMonths    int             `json:"term_months"`
	InterestRate  decimal.Decimal `json:"interest_rate"`
	OperatorRole  string          `json:"operator_role"`
	BankName      string          `json:"bank_name"`
	BranchName    string          `json:"branch_name"`
	Notes         string          `json:"notes"`
	Status        string          `json:"status"`
}

// wireDateLayout is the backend's operation_date format.
const wireDateLayout = "2006-01-02 15:04:05"

// parseWireDate tolerates both the backend layout and RFC3339 timestamps.
func parseWireDate(s string) time.Time {
	if t, err := time.Parse(wireDateLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

// formatWireDate renders a timestamp the way the backend expects it.
func formatWireDate(t time.Time) string {
	return t.Format(wireDateLayout)
}
