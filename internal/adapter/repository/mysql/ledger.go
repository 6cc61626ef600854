package mysql

import (
	"context"

	ledgerDomain "microloan-backend/internal/domain/ledger"

	"gorm.io/gorm"
)

type LedgerRepository struct{ db *gorm.DB }

func NewLedgerRepository(db *gorm.DB) *LedgerRepository { return &LedgerRepository{db: db} }

func (r *LedgerRepository) Append(ctx context.Context, e *ledgerDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *LedgerRepository) ListByLoanID(ctx context.Context, loanNumericID uint64) ([]ledgerDomain.Entry, error) {
	var out []ledgerDomain.Entry
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanNumericID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
