package uow

import (
	"context"

	"microloan-backend/internal/domain/approval"
	"microloan-backend/internal/domain/ledger"
	"microloan-backend/internal/domain/loan"
	"microloan-backend/internal/domain/repayment"
	"microloan-backend/internal/domain/savings"
)

type Repos struct {
	Loans        loan.Repository
	Approvals    approval.Repository
	Installments repayment.InstallmentRepository
	Payments     repayment.PaymentRepository
	Savings      savings.Repository
	Ledger       ledger.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in. Every multi-entity
	// write on a single loan (approval + log, allocation + balance) goes
	// through here so concurrent submissions serialize on the row lock.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
