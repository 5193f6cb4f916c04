package domain

import "time"

// AuditStatus is the supervisor's verdict on one operation.
type AuditStatus string

const (
	AuditUnchecked  AuditStatus = "unchecked"
	AuditChecked    AuditStatus = "checked"
	AuditErrorFound AuditStatus = "error_found"
)

// AuditMark is a manual annotation on a specific operation, keyed by the
// prefixed operation id. At most one mark exists per operation; a new mark
// replaces the previous one.
type AuditMark struct {
	OperationID   string      `json:"operation_id"`
	OperationType string      `json:"operation_type"`
	AuditStatus   AuditStatus `json:"audit_status"`
	MarkedBy      string      `json:"marked_by"`
	MarkedAt      time.Time   `json:"marked_at"`
	Note          string      `json:"note,omitempty"`
}

// AuditPrefixForReportType maps a manager-report operation type to the local
// operation id prefix used when joining report rows with audit marks.
func AuditPrefixForReportType(reportType string) string {
	switch reportType {
	case "cash_in":
		return "CI"
	case "cash_out":
		return "CO"
	case "currency_exchange":
		return "FX"
	case "card_application":
		return "CARD"
	case "deposit":
		return "DEP"
	default:
		return "OP"
	}
}
