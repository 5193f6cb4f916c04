package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActivityLog is a write-once denormalized summary of one operation, kept in
// reverse-chronological order for the activity feed.
type ActivityLog struct {
	ID            string          `json:"id"`
	OccurredAt    time.Time       `json:"sana_vaqt"`
	StaffID       string          `json:"xodim_id"`
	StaffName     string          `json:"xodim_fio"`
	Role          Role            `json:"rol"`
	OperationName string          `json:"operatsiya_turi"`
	OperID        string          `json:"oper_id"`
	ClientName    string          `json:"mijoz_fio"`
	Amount        decimal.Decimal `json:"summa"`
	Currency      Currency        `json:"valuta"`
	Status        OperationStatus `json:"status"`
}
