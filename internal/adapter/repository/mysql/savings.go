package mysql

import (
	"context"
	"database/sql"

	savingsDomain "microloan-backend/internal/domain/savings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SavingsRepository struct{ db *gorm.DB }

func NewSavingsRepository(db *gorm.DB) *SavingsRepository { return &SavingsRepository{db: db} }

func (r *SavingsRepository) Create(ctx context.Context, t *savingsDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *SavingsRepository) ListByMemberID(ctx context.Context, memberID string) ([]savingsDomain.Transaction, error) {
	var out []savingsDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *SavingsRepository) BalanceByMemberID(ctx context.Context, memberID string) (decimal.Decimal, error) {
	var out sql.NullString
	res := r.db.WithContext(ctx).
		Model(&savingsDomain.Transaction{}).
		Select("SUM(amount)").
		Where("member_id = ?", memberID).
		Scan(&out)
	if res.Error != nil {
		return decimal.Zero, res.Error
	}
	if !out.Valid {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(out.String)
}
