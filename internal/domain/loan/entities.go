package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound     = errors.New("loan not found")
	ErrInvalidState = errors.New("loan is in a terminal state")
	ErrValidation   = errors.New("invalid loan input")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusVerified  Status = "verified"
	StatusApproved  Status = "approved"
	StatusDisbursed Status = "disbursed"
	StatusRepaid    Status = "repaid"
	StatusRejected  Status = "rejected"
)

// Terminal reports whether no further approval action is allowed.
// Repaid loans are closed; they only ever got there through disbursement.
func (s Status) Terminal() bool {
	return s == StatusDisbursed || s == StatusRejected || s == StatusRepaid
}

// InPipeline reports whether the loan still sits somewhere in the approval
// chain (blocks a member from applying again).
func (s Status) InPipeline() bool {
	return s == StatusPending || s == StatusVerified || s == StatusApproved
}

type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyAnnually  Frequency = "annually"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencyAnnually:
		return true
	}
	return false
}

type Loan struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"-"`
	LoanID   string `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	MemberID string `gorm:"size:32;index:idx_loans_member" json:"member_id"`
	// Principal is the amount applied for; RemainingAmount is the outstanding
	// repayable (principal + scheduled interest) once disbursed, recomputed
	// from the installments after every allocation.
	Principal       decimal.Decimal `gorm:"type:decimal(18,2)" json:"principal"`
	RatePercent     decimal.Decimal `gorm:"type:decimal(6,3)" json:"rate_percent"`
	TermMonths      int             `gorm:"column:term_months" json:"term_months"`
	Frequency       Frequency       `gorm:"size:16;default:'monthly'" json:"frequency"`
	Status          Status          `gorm:"type:enum('pending','verified','approved','disbursed','repaid','rejected');default:'pending'" json:"status"`
	RemainingAmount decimal.Decimal `gorm:"type:decimal(18,2)" json:"remaining_amount"`
	StatusUpdatedAt time.Time       `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }
