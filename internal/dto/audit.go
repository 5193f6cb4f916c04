package dto

import "github.com/mamunbank/bank_trainer_app/internal/core/domain"

// SetAuditMarkRequest records a supervisor verdict on one operation.
type SetAuditMarkRequest struct {
	OperationID   string `json:"operation_id" binding:"required"`
	OperationType string `json:"operation_type" binding:"required"`
	AuditStatus   string `json:"audit_status" binding:"required,oneof=unchecked checked error_found"`
	Note          string `json:"note"`
}

// AuditOverviewRow is one manager-report row joined with its audit mark.
type AuditOverviewRow struct {
	domain.ManagerReportItem
	OperID      string             `json:"oper_id"`
	AuditStatus domain.AuditStatus `json:"audit_status"`
}

// AuditOverviewResponse is the control-department view: all report rows with
// their marks plus per-status counts.
type AuditOverviewResponse struct {
	Operations []AuditOverviewRow `json:"operations"`
	Total      int                `json:"total"`
	Checked    int                `json:"checked"`
	Errors     int                `json:"errors"`
	Unchecked  int                `json:"unchecked"`
}
