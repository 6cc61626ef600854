package loan

import (
	"time"

	"github.com/shopspring/decimal"

	"microloan-backend/internal/domain/approval"
	"microloan-backend/internal/domain/loan"
	"microloan-backend/internal/domain/repayment"
)

type ApplyInput struct {
	MemberID    string          `json:"member_id"`
	Principal   decimal.Decimal `json:"principal"`
	RatePercent decimal.Decimal `json:"rate_percent"`
	TermMonths  int             `json:"term_months"`
	Frequency   loan.Frequency  `json:"frequency"`
}

type PreviewInput struct {
	Principal   decimal.Decimal
	RatePercent decimal.Decimal
	TermMonths  int
	Frequency   loan.Frequency
}

type LoanDTO struct {
	LoanID          string          `json:"loan_id"`
	MemberID        string          `json:"member_id"`
	Principal       decimal.Decimal `json:"principal"`
	RatePercent     decimal.Decimal `json:"rate_percent"`
	TermMonths      int             `json:"term_months"`
	Frequency       loan.Frequency  `json:"frequency"`
	Status          loan.Status     `json:"status"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	CreatedAt       time.Time       `json:"created_at"`
}

// LoanDetailDTO is the full read model: the loan plus its approval trail and
// repayment schedule.
type LoanDetailDTO struct {
	LoanDTO
	ApprovalLogs []approval.Log          `json:"approval_logs"`
	Installments []repayment.Installment `json:"installments"`
}

func toDTO(l *loan.Loan) LoanDTO {
	return LoanDTO{
		LoanID:          l.LoanID,
		MemberID:        l.MemberID,
		Principal:       l.Principal,
		RatePercent:     l.RatePercent,
		TermMonths:      l.TermMonths,
		Frequency:       l.Frequency,
		Status:          l.Status,
		RemainingAmount: l.RemainingAmount,
		CreatedAt:       l.CreatedAt,
	}
}
