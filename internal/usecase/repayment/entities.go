package repayment

import (
	"time"

	"github.com/shopspring/decimal"

	"microloan-backend/internal/domain/loan"
	"microloan-backend/internal/domain/repayment"
)

type PayInput struct {
	LoanID    string
	Amount    decimal.Decimal
	PaidAt    time.Time
	Source    repayment.Source
	Reference string
}

// LoanDTO is the updated-loan view returned after a payment is applied.
type LoanDTO struct {
	LoanID          string          `json:"loan_id"`
	MemberID        string          `json:"member_id"`
	Status          loan.Status     `json:"status"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	PaymentID       string          `json:"payment_id"`
	Allocated       decimal.Decimal `json:"allocated"`
	Excess          decimal.Decimal `json:"excess"`
}
