package approval

import (
	"time"

	"github.com/shopspring/decimal"

	"microloan-backend/internal/domain/approval"
	"microloan-backend/internal/domain/loan"
)

type SubmitInput struct {
	LoanID    string
	ActorID   string
	ActorRole approval.Role
	Decision  approval.Decision
	Comments  string
}

// LoanDTO is the updated-loan view returned after a transition.
type LoanDTO struct {
	LoanID          string          `json:"loan_id"`
	MemberID        string          `json:"member_id"`
	Status          loan.Status     `json:"status"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	ApprovalID      string          `json:"approval_id"`
	ApprovalOrder   int             `json:"approval_order"`
	Installments    int             `json:"installments,omitempty"`
	StatusUpdatedAt time.Time       `json:"status_updated_at"`
}
