package utils

import (
	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyPrecision returns the display precision for a trainer currency.
// Sum amounts are whole numbers; foreign currencies keep two decimals.
func CurrencyPrecision(currency domain.Currency) int32 {
	switch currency {
	case domain.UZS:
		return 0
	default:
		return 2
	}
}

// FormatWithCurrencyPrecision renders an amount with the precision of its
// currency, e.g. 12750.5 UZS -> "12751", 100.456 USD -> "100.46".
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return amount.Round(CurrencyPrecision(currency)).String()
}
