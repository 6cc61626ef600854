package repayment

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount    = errors.New("payment amount must be positive")
	ErrInsufficientData = errors.New("loan has no repayment schedule")
)

type InstallmentStatus string

const (
	InstallmentPending InstallmentStatus = "pending"
	InstallmentPaid    InstallmentStatus = "paid"
)

// Installment is one scheduled repayment obligation, written at disbursement
// from the amortization schedule. PaidAmount never exceeds Amount; Status
// flips to paid exactly when PaidAmount reaches Amount.
type Installment struct {
	ID               uint64            `gorm:"primaryKey;column:id" json:"-"`
	LoanID           uint64            `gorm:"column:loan_id;not null;index:idx_installments_loan" json:"-"`
	Seq              int               `gorm:"column:seq" json:"seq"`
	DueDate          time.Time         `gorm:"column:due_date;type:date" json:"due_date"`
	Amount           decimal.Decimal   `gorm:"type:decimal(18,2)" json:"amount"`
	PrincipalPortion decimal.Decimal   `gorm:"type:decimal(18,2)" json:"principal_portion"`
	InterestPortion  decimal.Decimal   `gorm:"type:decimal(18,2)" json:"interest_portion"`
	PaidAmount       decimal.Decimal   `gorm:"type:decimal(18,2)" json:"paid_amount"`
	Status           InstallmentStatus `gorm:"size:16;default:'pending'" json:"status"`
	CreatedAt        time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Installment) TableName() string { return "repayment_installments" }

// Unpaid is the portion of this installment still owed.
func (i *Installment) Unpaid() decimal.Decimal {
	return i.Amount.Sub(i.PaidAmount)
}

type Source string

const (
	SourceManual  Source = "manual"
	SourcePayroll Source = "payroll"
	SourceBank    Source = "bank"
)

func (s Source) Valid() bool {
	switch s {
	case SourceManual, SourcePayroll, SourceBank:
		return true
	}
	return false
}

// Payment is the immutable audit record of money received. It always carries
// the full requested amount, even when part of it could not be allocated.
type Payment struct {
	ID        uint64          `gorm:"primaryKey;column:id" json:"-"`
	PaymentID string          `gorm:"size:32;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	LoanID    uint64          `gorm:"column:loan_id;not null;index:idx_payments_loan" json:"-"`
	MemberID  string          `gorm:"size:32;index:idx_payments_member" json:"member_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	PaidAt    time.Time       `gorm:"column:paid_at" json:"paid_at"`
	Source    Source          `gorm:"size:16" json:"source"`
	Reference string          `gorm:"size:255" json:"reference"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Payment) TableName() string { return "payments" }
