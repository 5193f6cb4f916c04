package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// The five teller operation variants mirror the training API resources.
// Field names follow the simulator's wire shape (a mix of Uzbek and English
// keys) so the persisted snapshot and the UI payloads line up exactly.

// CashIn is a cash deposit taken at the cash desk.
type CashIn struct {
	OperID      string          `json:"oper_id"`
	OccurredAt  time.Time       `json:"sana_vaqt"`
	CashierID   string          `json:"kassir_id"`
	CashierName string          `json:"kassir_fio"`
	ClientID    string          `json:"client_id"`
	ClientName  string          `json:"client_fio"`
	Currency    Currency        `json:"valuta"`
	Amount      decimal.Decimal `json:"summa"`
	Purpose     string          `json:"maqsad"`
	Notes       string          `json:"izoh,omitempty"`
	Status      OperationStatus `json:"status"`
	PrintCount  int             `json:"print_count"`
}

// CashOut is a cash withdrawal paid out at the cash desk.
type CashOut struct {
	OperID      string          `json:"oper_id"`
	OccurredAt  time.Time       `json:"sana_vaqt"`
	CashierID   string          `json:"kassir_id"`
	CashierName string          `json:"kassir_fio"`
	ClientID    string          `json:"client_id"`
	ClientName  string          `json:"client_fio"`
	Currency    Currency        `json:"valuta"`
	Amount      decimal.Decimal `json:"summa"`
	Reason      string          `json:"asos"`
	Notes       string          `json:"izoh,omitempty"`
	Status      OperationStatus `json:"status"`
	PrintCount  int             `json:"print_count"`
}

// FXDirection says whether the bank buys or sells foreign currency.
type FXDirection string

const (
	FXBuy  FXDirection = "buy"
	FXSell FXDirection = "sell"
)

// FXOperation is a currency exchange at the FX desk.
type FXOperation struct {
	OperID            string          `json:"oper_id"`
	OccurredAt        time.Time       `json:"sana_vaqt"`
	OperatorID        string          `json:"operator_id"`
	OperatorName      string          `json:"operator_fio"`
	ClientID          string          `json:"client_id"`
	ClientName        string          `json:"client_fio"`
	Direction         FXDirection     `json:"turi"`
	GivenCurrency     Currency        `json:"berilgan_valyuta"`
	GivenAmount       decimal.Decimal `json:"berilgan_summa"`
	ReceivedCurrency  Currency        `json:"olinadigan_valyuta"`
	ReceivedAmount    decimal.Decimal `json:"olinadigan_summa"`
	Rate              decimal.Decimal `json:"kurs"`
	CommissionPercent decimal.Decimal `json:"komissiya"`
	Notes             string          `json:"izoh,omitempty"`
	Status            OperationStatus `json:"status"`
}

// CardType is the card scheme offered by the simulator.
type CardType string

const (
	CardHumo   CardType = "Humo"
	CardUzcard CardType = "Uzcard"
	CardVisa   CardType = "Visa"
)

// DeliveryType is how the issued card reaches the client.
type DeliveryType string

const (
	DeliveryBranch  DeliveryType = "filial"
	DeliveryCourier DeliveryType = "kuryer"
)

// CardState tracks the issued card itself, separate from the operation status.
type CardState string

const (
	CardPending CardState = "pending"
	CardActive  CardState = "active"
	CardBlocked CardState = "blocked"
)

// CardOpen is a card issuance application.
type CardOpen struct {
	OperID          string          `json:"oper_id"`
	OccurredAt      time.Time       `json:"sana_vaqt"`
	OperatorID      string          `json:"operator_id"`
	OperatorName    string          `json:"operator_fio"`
	ClientID        string          `json:"client_id"`
	ClientName      string          `json:"client_fio"`
	CardType        CardType        `json:"karta_turi"`
	Currency        Currency        `json:"valuta"`
	SMSNotification bool            `json:"sms"`
	Phone           string          `json:"telefon"`
	Delivery        DeliveryType    `json:"yetkazish_turi"`
	InitialDeposit  decimal.Decimal `json:"boshlangich_depozit"`
	CardState       CardState       `json:"kartaning_holati"`
	Notes           string          `json:"izoh,omitempty"`
	Status          OperationStatus `json:"status"`
}

// DepositType is the savings product variant.
type DepositType string

const (
	DepositTerm     DepositType = "muddatli"
	DepositSavings  DepositType = "jamgarma"
	DepositChildren DepositType = "bolalar"
)

// DepositOpen opens a savings account for a client.
type DepositOpen struct {
	OperID       string          `json:"oper_id"`
	OccurredAt   time.Time       `json:"sana_vaqt"`
	OperatorID   string          `json:"operator_id"`
	OperatorName string          `json:"operator_fio"`
	ClientID     string          `json:"client_id"`
	ClientName   string          `json:"client_fio"`
	DepositType  DepositType     `json:"omonat_turi"`
	Currency     Currency        `json:"valuta"`
	Amount       decimal.Decimal `json:"summa"`
	TermMonths   int             `json:"muddat_oy"`
	InterestRate decimal.Decimal `json:"foiz"`
	Notes        string          `json:"izoh,omitempty"`
	Status       OperationStatus `json:"status"`
}

// ManagerReportItem is one row of the server-side aggregate report consumed
// read-only by the supervisor role. Field names are the API's own.
type ManagerReportItem struct {
	ID            int64           `json:"id"`
	OperationDate string          `json:"operation_date"`
	OperatorName  string          `json:"operator_name"`
	OperatorRole  string          `json:"operator_role"`
	OperationType string          `json:"operation_type"`
	OperationID   int64           `json:"operation_id"`
	ClientName    string          `json:"client_name"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Status        OperationStatus `json:"status"`
	CreatedAt     string          `json:"created_at"`
}
