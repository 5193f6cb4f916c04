package dto

import (
	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLoanRequest files a loan application with its credit checklist.
type CreateLoanRequest struct {
	ClientID   string             `json:"client_id" binding:"required"`
	Amount     decimal.Decimal    `json:"summa" binding:"required"`
	Currency   string             `json:"valuta" binding:"required,currency"`
	TermMonths int                `json:"muddat_oy" binding:"required,gt=0"`
	Purpose    string             `json:"maqsad" binding:"required"`
	Scoring    domain.LoanScoring `json:"scoring"`
}

// UpdateLoanScoringRequest toggles individual checklist criteria during loan
// analysis. Nil fields are left as they are.
type UpdateLoanScoringRequest struct {
	HasIncome          *bool `json:"has_income"`
	NoExistingDebt     *bool `json:"no_existing_debt"`
	InsuranceConfirmed *bool `json:"insurance_confirmed"`
}
