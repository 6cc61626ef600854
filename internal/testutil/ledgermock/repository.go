package ledgermock

import (
	"context"

	domain "microloan-backend/internal/domain/ledger"
)

// Repo is a function-backed mock for domain.Repository.
type Repo struct {
	AppendFn       func(ctx context.Context, e *domain.Entry) error
	ListByLoanIDFn func(ctx context.Context, loanNumericID uint64) ([]domain.Entry, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Append(ctx context.Context, e *domain.Entry) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, e)
	}
	return nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanNumericID uint64) ([]domain.Entry, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanNumericID)
	}
	return nil, nil
}
