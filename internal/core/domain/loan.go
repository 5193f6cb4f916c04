package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStep is the position in the five-step loan workflow.
type LoanStep int

const (
	LoanStepApplication  LoanStep = 1
	LoanStepVerification LoanStep = 2
	LoanStepInsurance    LoanStep = 3
	LoanStepDecision     LoanStep = 4
	LoanStepDisbursement LoanStep = 5
)

// LoanStatus is the workflow outcome of a loan application.
type LoanStatus string

const (
	LoanApplication  LoanStatus = "application"
	LoanVerification LoanStatus = "verification"
	LoanInsurance    LoanStatus = "insurance"
	LoanDecision     LoanStatus = "decision"
	LoanDisbursement LoanStatus = "disbursement"
	LoanApproved     LoanStatus = "approved"
	LoanRejected     LoanStatus = "rejected"
)

// ScoringResult classifies a loan by how many checklist criteria hold.
type ScoringResult string

const (
	ScoringRecommended ScoringResult = "recommended"
	ScoringRisky       ScoringResult = "risky"
	ScoringPending     ScoringResult = "pending"
)

// AnnualLoanRatePercent is the simulator's fixed simple annual rate.
const AnnualLoanRatePercent = 24

// LoanScoring is the manual credit checklist filled by the loan officer.
type LoanScoring struct {
	HasIncome          bool `json:"has_income"`
	NoExistingDebt     bool `json:"no_existing_debt"`
	InsuranceConfirmed bool `json:"insurance_confirmed"`
}

// Result derives the scoring classification from the checklist:
// two or more criteria recommend the loan, exactly one is risky,
// none leaves it pending.
func (s LoanScoring) Result() ScoringResult {
	checked := 0
	for _, ok := range []bool{s.HasIncome, s.NoExistingDebt, s.InsuranceConfirmed} {
		if ok {
			checked++
		}
	}
	switch {
	case checked >= 2:
		return ScoringRecommended
	case checked == 1:
		return ScoringRisky
	default:
		return ScoringPending
	}
}

// LoanApplicationRecord is a loan processed entirely inside the simulator;
// loans never touch the training API.
type LoanApplicationRecord struct {
	OperID         string          `json:"oper_id"`
	OccurredAt     time.Time       `json:"sana_vaqt"`
	OperatorID     string          `json:"operator_id"`
	OperatorName   string          `json:"operator_fio"`
	ClientID       string          `json:"client_id"`
	ClientName     string          `json:"client_fio"`
	Amount         decimal.Decimal `json:"summa"`
	Currency       Currency        `json:"valuta"`
	TermMonths     int             `json:"muddat_oy"`
	InterestRate   decimal.Decimal `json:"foiz"`
	Purpose        string          `json:"maqsad"`
	MonthlyPayment decimal.Decimal `json:"oylik_tolov"`
	CurrentStep    LoanStep        `json:"current_step"`
	Scoring        LoanScoring     `json:"scoring"`
	ScoringResult  ScoringResult   `json:"scoring_result"`
	LoanStatus     LoanStatus      `json:"loan_status"`
	Status         OperationStatus `json:"status"`
}

// MonthlyLoanPayment computes the equal monthly payment under the fixed
// simple annual rate: principal plus amount*rate*months/1200, spread evenly.
func MonthlyLoanPayment(amount decimal.Decimal, termMonths int) decimal.Decimal {
	if termMonths <= 0 {
		return decimal.Zero
	}
	months := decimal.NewFromInt(int64(termMonths))
	totalInterest := amount.Mul(decimal.NewFromInt(AnnualLoanRatePercent)).Mul(months).Div(decimal.NewFromInt(1200))
	return amount.Add(totalInterest).Div(months)
}
