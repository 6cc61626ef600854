package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

type EntryKind string

const (
	KindDisbursement EntryKind = "disbursement"
	KindRepayment    EntryKind = "repayment"
	KindOverpayment  EntryKind = "overpayment"
)

// Entry is an append-only internal posting. Account codes come from the
// injected posting config, never from constants inside the engine.
type Entry struct {
	ID            uint64          `gorm:"primaryKey;column:id" json:"-"`
	EntryID       string          `gorm:"size:32;uniqueIndex:ux_ledger_entry_id" json:"entry_id"`
	LoanID        uint64          `gorm:"column:loan_id;index:idx_ledger_loan" json:"-"`
	Kind          EntryKind       `gorm:"size:32" json:"kind"`
	DebitAccount  string          `gorm:"size:32" json:"debit_account"`
	CreditAccount string          `gorm:"size:32" json:"credit_account"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	PostedAt      time.Time       `gorm:"column:posted_at" json:"posted_at"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Entry) TableName() string { return "ledger_entries" }

// PostingAccounts holds the chart-of-account codes the engine posts against.
type PostingAccounts struct {
	LoanReceivable string
	Cash           string
	MemberSavings  string
}
