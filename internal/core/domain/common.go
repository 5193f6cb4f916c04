package domain

// Currency is one of the three currencies the trainer operates with.
type Currency string

const (
	UZS Currency = "UZS"
	USD Currency = "USD"
	EUR Currency = "EUR"
)

// Currencies lists every supported currency, in display order.
var Currencies = []Currency{UZS, USD, EUR}

// IsSupportedCurrency reports whether code is one of the trainer currencies.
func IsSupportedCurrency(code string) bool {
	switch Currency(code) {
	case UZS, USD, EUR:
		return true
	}
	return false
}

// OperationStatus is the nominal lifecycle state of an operation.
// Every creation path sets Completed directly; Draft and Cancelled exist for
// the explicit status-change mutator.
type OperationStatus string

const (
	StatusDraft     OperationStatus = "draft"
	StatusCompleted OperationStatus = "completed"
	StatusCancelled OperationStatus = "cancelled"
)

// OperationType tags an operation list and keys the posting rule table.
type OperationType string

const (
	OpCashIn  OperationType = "cash_in"
	OpCashOut OperationType = "cash_out"
	OpFX      OperationType = "fx"
	OpCard    OperationType = "card"
	OpDeposit OperationType = "deposit"
	OpLoan    OperationType = "loan"
)
