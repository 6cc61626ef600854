package repaymentmock

import (
	"context"

	"github.com/shopspring/decimal"

	domain "microloan-backend/internal/domain/repayment"
)

// InstallmentRepo is a function-backed mock for domain.InstallmentRepository.
type InstallmentRepo struct {
	CreateBatchFn                  func(ctx context.Context, rows []domain.Installment) error
	ListByLoanIDFn                 func(ctx context.Context, loanNumericID uint64) ([]domain.Installment, error)
	ListPendingByLoanIDForUpdateFn func(ctx context.Context, loanNumericID uint64) ([]*domain.Installment, error)
	SaveFn                         func(ctx context.Context, i *domain.Installment) error
	OutstandingByLoanIDFn          func(ctx context.Context, loanNumericID uint64) (decimal.Decimal, error)
}

var _ domain.InstallmentRepository = (*InstallmentRepo)(nil)

func (m *InstallmentRepo) CreateBatch(ctx context.Context, rows []domain.Installment) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, rows)
	}
	return nil
}

func (m *InstallmentRepo) ListByLoanID(ctx context.Context, loanNumericID uint64) ([]domain.Installment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanNumericID)
	}
	return nil, nil
}

func (m *InstallmentRepo) ListPendingByLoanIDForUpdate(ctx context.Context, loanNumericID uint64) ([]*domain.Installment, error) {
	if m.ListPendingByLoanIDForUpdateFn != nil {
		return m.ListPendingByLoanIDForUpdateFn(ctx, loanNumericID)
	}
	return nil, context.Canceled
}

func (m *InstallmentRepo) Save(ctx context.Context, i *domain.Installment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, i)
	}
	return nil
}

func (m *InstallmentRepo) OutstandingByLoanID(ctx context.Context, loanNumericID uint64) (decimal.Decimal, error) {
	if m.OutstandingByLoanIDFn != nil {
		return m.OutstandingByLoanIDFn(ctx, loanNumericID)
	}
	return decimal.Zero, nil
}

// PaymentRepo is a function-backed mock for domain.PaymentRepository.
type PaymentRepo struct {
	CreateFn       func(ctx context.Context, p *domain.Payment) error
	ListByLoanIDFn func(ctx context.Context, loanNumericID uint64) ([]domain.Payment, error)
}

var _ domain.PaymentRepository = (*PaymentRepo)(nil)

func (m *PaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *PaymentRepo) ListByLoanID(ctx context.Context, loanNumericID uint64) ([]domain.Payment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanNumericID)
	}
	return nil, nil
}
