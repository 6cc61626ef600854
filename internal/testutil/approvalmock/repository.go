package approvalmock

import (
	"context"

	domain "microloan-backend/internal/domain/approval"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	AppendFn          func(ctx context.Context, l *domain.Log) error
	GetLastByLoanIDFn func(ctx context.Context, loanNumericID uint64) (*domain.Log, error)
	ListByLoanIDFn    func(ctx context.Context, loanNumericID uint64) ([]domain.Log, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Append(ctx context.Context, l *domain.Log) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetLastByLoanID(ctx context.Context, loanNumericID uint64) (*domain.Log, error) {
	if m.GetLastByLoanIDFn != nil {
		return m.GetLastByLoanIDFn(ctx, loanNumericID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByLoanID(ctx context.Context, loanNumericID uint64) ([]domain.Log, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanNumericID)
	}
	return nil, nil
}
