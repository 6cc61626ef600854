package savingsmock

import (
	"context"

	"github.com/shopspring/decimal"

	domain "microloan-backend/internal/domain/savings"
)

// Repo is a function-backed mock for domain.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, t *domain.Transaction) error
	ListByMemberIDFn    func(ctx context.Context, memberID string) ([]domain.Transaction, error)
	BalanceByMemberIDFn func(ctx context.Context, memberID string) (decimal.Decimal, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, t *domain.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) ListByMemberID(ctx context.Context, memberID string) ([]domain.Transaction, error) {
	if m.ListByMemberIDFn != nil {
		return m.ListByMemberIDFn(ctx, memberID)
	}
	return nil, nil
}

func (m *Repo) BalanceByMemberID(ctx context.Context, memberID string) (decimal.Decimal, error) {
	if m.BalanceByMemberIDFn != nil {
		return m.BalanceByMemberIDFn(ctx, memberID)
	}
	return decimal.Zero, nil
}
