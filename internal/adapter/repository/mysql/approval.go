package mysql

import (
	"context"

	approvalDomain "microloan-backend/internal/domain/approval"

	"gorm.io/gorm"
)

type ApprovalRepository struct{ db *gorm.DB }

func NewApprovalRepository(db *gorm.DB) *ApprovalRepository { return &ApprovalRepository{db: db} }

func (r *ApprovalRepository) Append(ctx context.Context, l *approvalDomain.Log) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *ApprovalRepository) GetLastByLoanID(ctx context.Context, loanNumericID uint64) (*approvalDomain.Log, error) {
	var out approvalDomain.Log
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanNumericID).
		Order("approval_order DESC, id DESC").
		First(&out)
	return &out, res.Error
}

func (r *ApprovalRepository) ListByLoanID(ctx context.Context, loanNumericID uint64) ([]approvalDomain.Log, error) {
	var out []approvalDomain.Log
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanNumericID).
		Order("approval_order ASC, id ASC").
		Find(&out)
	return out, res.Error
}
