package mysql

import (
	"context"
	"database/sql"

	repaymentDomain "microloan-backend/internal/domain/repayment"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InstallmentRepository struct{ db *gorm.DB }

func NewInstallmentRepository(db *gorm.DB) *InstallmentRepository {
	return &InstallmentRepository{db: db}
}

func (r *InstallmentRepository) CreateBatch(ctx context.Context, rows []repaymentDomain.Installment) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *InstallmentRepository) ListByLoanID(ctx context.Context, loanNumericID uint64) ([]repaymentDomain.Installment, error) {
	var out []repaymentDomain.Installment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanNumericID).
		Order("due_date ASC, seq ASC").
		Find(&out)
	return out, res.Error
}

// ListPendingByLoanIDForUpdate locks the pending rows; only meaningful inside
// a transaction that already holds the loan row lock.
func (r *InstallmentRepository) ListPendingByLoanIDForUpdate(ctx context.Context, loanNumericID uint64) ([]*repaymentDomain.Installment, error) {
	var out []*repaymentDomain.Installment
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_id = ? AND status = ?", loanNumericID, repaymentDomain.InstallmentPending).
		Order("due_date ASC, seq ASC").
		Find(&out)
	return out, res.Error
}

func (r *InstallmentRepository) Save(ctx context.Context, i *repaymentDomain.Installment) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *InstallmentRepository) OutstandingByLoanID(ctx context.Context, loanNumericID uint64) (decimal.Decimal, error) {
	var out sql.NullString
	res := r.db.WithContext(ctx).
		Model(&repaymentDomain.Installment{}).
		Select("SUM(amount - paid_amount)").
		Where("loan_id = ?", loanNumericID).
		Scan(&out)
	if res.Error != nil {
		return decimal.Zero, res.Error
	}
	if !out.Valid {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(out.String)
}

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *repaymentDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) ListByLoanID(ctx context.Context, loanNumericID uint64) ([]repaymentDomain.Payment, error) {
	var out []repaymentDomain.Payment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanNumericID).
		Order("paid_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}
