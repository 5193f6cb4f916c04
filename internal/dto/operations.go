package dto

import (
	"github.com/shopspring/decimal"
)

// Create requests for the five remote-backed operation flows. Currency
// fields use the custom "currency" validator registered at startup.

// CreateCashInRequest books a cash deposit.
type CreateCashInRequest struct {
	ClientID string          `json:"client_id" binding:"required"`
	Currency string          `json:"valuta" binding:"required,currency"`
	Amount   decimal.Decimal `json:"summa" binding:"required"`
	Purpose  string          `json:"maqsad" binding:"required"`
	Notes    string          `json:"izoh"`
}

// CreateCashOutRequest books a cash withdrawal.
type CreateCashOutRequest struct {
	ClientID string          `json:"client_id" binding:"required"`
	Currency string          `json:"valuta" binding:"required,currency"`
	Amount   decimal.Decimal `json:"summa" binding:"required"`
	Reason   string          `json:"asos" binding:"required"`
	Notes    string          `json:"izoh"`
}

// CreateFXRequest books a currency exchange. The received amount is derived
// from the given amount and the rate when the API does not echo it back.
type CreateFXRequest struct {
	ClientID         string          `json:"client_id" binding:"required"`
	Direction        string          `json:"turi" binding:"required,oneof=buy sell"`
	GivenCurrency    string          `json:"berilgan_valyuta" binding:"required,currency"`
	GivenAmount      decimal.Decimal `json:"berilgan_summa" binding:"required"`
	ReceivedCurrency string          `json:"olinadigan_valyuta" binding:"required,currency"`
	Rate             decimal.Decimal `json:"kurs" binding:"required"`
	Notes            string          `json:"izoh"`
}

// CreateCardRequest files a card issuance application.
type CreateCardRequest struct {
	ClientID        string          `json:"client_id" binding:"required"`
	CardType        string          `json:"karta_turi" binding:"required,oneof=Humo Uzcard Visa"`
	Currency        string          `json:"valuta" binding:"required,currency"`
	Phone           string          `json:"telefon" binding:"required"`
	Delivery        string          `json:"yetkazish_turi" binding:"required,oneof=filial kuryer"`
	SMSNotification bool            `json:"sms"`
	InitialDeposit  decimal.Decimal `json:"boshlangich_depozit"`
	Notes           string          `json:"izoh"`
}

// CreateDepositRequest opens a savings account. The interest rate is derived
// from the deposit type; the client cannot choose it.
type CreateDepositRequest struct {
	ClientID    string          `json:"client_id" binding:"required"`
	DepositType string          `json:"omonat_turi" binding:"required,oneof=muddatli jamgarma bolalar"`
	Currency    string          `json:"valuta" binding:"required,currency"`
	Amount      decimal.Decimal `json:"summa" binding:"required"`
	TermMonths  int             `json:"muddat_oy" binding:"required,gt=0"`
}

// UpdateOperationStatusRequest flips the nominal operation status.
type UpdateOperationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft completed cancelled"`
}
