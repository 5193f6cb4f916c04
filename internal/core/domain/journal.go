package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a derived debit/credit bookkeeping record, auto-generated
// from a completed operation via the fixed posting rule table. Entries are
// write-once; the journal only grows.
type JournalEntry struct {
	ID            string          `json:"id"`
	OperationID   string          `json:"operation_id"`
	OperationType OperationType   `json:"operation_type"`
	DebitAccount  string          `json:"debit_account"`
	CreditAccount string          `json:"credit_account"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      Currency        `json:"currency"`
	CreatedAt     time.Time       `json:"created_at"`
	CreatedBy     string          `json:"created_by"`
}

// PostingRule is one row of the fixed operation-type to account-pair mapping.
type PostingRule struct {
	DebitAccount  string
	CreditAccount string
}

// PostingRules is the entire rule engine of the accounting journal: one
// hardcoded debit/credit account pair per operation type. Card applications
// deliberately have no rule, so they never hit the journal.
var PostingRules = map[OperationType]PostingRule{
	OpCashIn:  {DebitAccount: "Kassa", CreditAccount: "Mijoz hisobi"},
	OpCashOut: {DebitAccount: "Mijoz hisobi", CreditAccount: "Kassa"},
	OpFX:      {DebitAccount: "Valyuta kassasi", CreditAccount: "Kassa"},
	OpDeposit: {DebitAccount: "Kassa", CreditAccount: "Omonat hisobi"},
	OpLoan:    {DebitAccount: "Kredit hisobi", CreditAccount: "Kassa"},
}
