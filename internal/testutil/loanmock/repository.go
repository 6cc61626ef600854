package loanmock

import (
	"context"

	domain "microloan-backend/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in only the methods a test needs.
type Repo struct {
	CreateFn                    func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn               func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn      func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetPipelineLoanByMemberIDFn func(ctx context.Context, memberID string) (*domain.Loan, error)
	SaveFn                      func(ctx context.Context, l *domain.Loan) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetPipelineLoanByMemberID(ctx context.Context, memberID string) (*domain.Loan, error) {
	if m.GetPipelineLoanByMemberIDFn != nil {
		return m.GetPipelineLoanByMemberIDFn(ctx, memberID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
