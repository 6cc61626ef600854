package savings

import (
	"time"

	"github.com/shopspring/decimal"
)

type TxType string

const (
	TxDeposit         TxType = "deposit"
	TxLoanOverpayment TxType = "loan_overpayment"
)

// Transaction is one append-only savings ledger row. A member's balance is
// always derived as SUM(amount); rows are never edited.
type Transaction struct {
	ID        uint64          `gorm:"primaryKey;column:id" json:"-"`
	TxID      string          `gorm:"size:32;uniqueIndex:ux_savings_tx_id" json:"tx_id"`
	MemberID  string          `gorm:"size:32;index:idx_savings_member" json:"member_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	Type      TxType          `gorm:"size:32" json:"type"`
	Reference string          `gorm:"size:255" json:"reference"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Transaction) TableName() string { return "savings_transactions" }
