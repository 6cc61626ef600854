package repayment

import (
	"context"

	"github.com/shopspring/decimal"
)

type InstallmentRepository interface {
	CreateBatch(ctx context.Context, rows []Installment) error
	ListByLoanID(ctx context.Context, loanNumericID uint64) ([]Installment, error)
	// ListPendingByLoanIDForUpdate returns pending installments ordered by due
	// date ascending, locked for the rest of the transaction (FIFO allocation
	// must not race a concurrent payment).
	ListPendingByLoanIDForUpdate(ctx context.Context, loanNumericID uint64) ([]*Installment, error)
	Save(ctx context.Context, i *Installment) error
	// OutstandingByLoanID is SUM(amount - paid_amount) over every installment
	// of the loan, paid or not.
	OutstandingByLoanID(ctx context.Context, loanNumericID uint64) (decimal.Decimal, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *Payment) error
	ListByLoanID(ctx context.Context, loanNumericID uint64) ([]Payment, error)
}
